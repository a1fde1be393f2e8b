package cache

import "github.com/dmitrijs2005/garden/internal/client/models"

// AppendPage returns e with p added after its last page.
func AppendPage(p models.Page) func(Entry) Entry {
	return func(e Entry) Entry {
		e.Pages = append(e.Pages, p)
		return e
	}
}

// Liked marks seedID as liked by the viewer and adds one to its count,
// wherever it appears in e.
func Liked(seedID string) func(Entry) Entry {
	return func(e Entry) Entry {
		return SetLiked(e, seedID, true)
	}
}

// Unliked clears the viewer's like on seedID and removes one from its count,
// never going below zero.
func Unliked(seedID string) func(Entry) Entry {
	return func(e Entry) Entry {
		return SetLiked(e, seedID, false)
	}
}

// SetLiked returns a copy of e with the like state of seedID patched.
// Entries that do not contain seedID come back unchanged.
func SetLiked(e Entry, seedID string, liked bool) Entry {
	out := e.clone()
	for pi := range out.Pages {
		seeds := out.Pages[pi].Seeds
		for si := range seeds {
			if seeds[si].ID != seedID {
				continue
			}
			seeds[si] = patchSeed(seeds[si], liked)
		}
	}
	return out
}

func patchSeed(s models.Seed, liked bool) models.Seed {
	s.ViewerHasLiked = liked
	if liked {
		s.LikeCount++
	} else if s.LikeCount > 0 {
		s.LikeCount--
	}
	return s
}
