package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/garden/internal/common"
)

var getMultiline = GetMultiline

// Garden shows the first screen of everyone's garden, or of one author's
// garden when author is set. Switching author starts the list over.
func (a *App) Garden(ctx context.Context, author string) error {
	var err error
	if a.loaded && a.feed.Key().AuthorName == author {
		err = a.feed.Load(ctx)
	} else {
		err = a.feed.SetFilter(ctx, author)
	}
	if err != nil {
		return err
	}

	a.loaded = true
	a.show()
	return nil
}

// Refresh reloads the current garden from its first page.
func (a *App) Refresh(ctx context.Context) error {
	if !a.loaded {
		return a.Garden(ctx, "")
	}
	if err := a.feed.Refresh(ctx); err != nil {
		return err
	}
	a.show()
	return nil
}

// Down scrolls one screen further. Near the end of the list the controller
// loads the next page; Down waits for it so the new rows can be shown.
func (a *App) Down(ctx context.Context) error {
	if !a.loaded {
		return a.Garden(ctx, "")
	}
	a.viewport.Down(a.scrollStep())
	a.feed.Wait()
	a.viewport.SetTotal(len(a.feed.Seeds()))
	a.render()
	return nil
}

// Up scrolls one screen back.
func (a *App) Up(ctx context.Context) error {
	if !a.loaded {
		return a.Garden(ctx, "")
	}
	a.viewport.Up(a.scrollStep())
	a.render()
	return nil
}

// Plant asks for the seed text and plants it. The garden is shown again
// from the top so the new seed is visible.
func (a *App) Plant(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}

	text, err := getMultiline(a.reader, "What is growing? (10-340 characters)", a.out)
	if err != nil {
		return err
	}

	seed, err := a.gardenService.Plant(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Planted seed %s\n", seed.ID)

	if err := a.feed.Load(ctx); err != nil {
		return err
	}
	a.loaded = true
	a.show()
	return nil
}

// Like likes the seed given by its list number or id.
func (a *App) Like(ctx context.Context, ref string) error {
	return a.toggleLike(ctx, ref, true)
}

// Unlike removes the viewer's like from the seed given by number or id.
func (a *App) Unlike(ctx context.Context, ref string) error {
	return a.toggleLike(ctx, ref, false)
}

func (a *App) toggleLike(ctx context.Context, ref string, like bool) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}

	id, err := a.resolveSeed(ref)
	if err != nil {
		return err
	}

	key := a.feed.Key()
	if like {
		err = a.gardenService.Like(ctx, key, id)
	} else {
		err = a.gardenService.Unlike(ctx, key, id)
	}
	if err != nil {
		return err
	}

	now := nowFn()
	for i, s := range a.feed.Seeds() {
		if s.ID == id {
			fmt.Fprintln(a.out, formatSeed(i+1, s, now))
			return nil
		}
	}
	if like {
		fmt.Fprintln(a.out, "Liked")
	} else {
		fmt.Fprintln(a.out, "Unliked")
	}
	return nil
}

// Avatar uploads the image at path as the viewer's avatar.
func (a *App) Avatar(ctx context.Context, path string) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	if err := a.gardenService.UploadAvatar(ctx, path); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Avatar updated")
	return nil
}

// resolveSeed maps a list number to a seed id. Anything that is not a
// number is taken as an id.
func (a *App) resolveSeed(ref string) (string, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	seeds := a.feed.Seeds()
	if n < 1 || n > len(seeds) {
		return "", common.NewValidationError("seed", common.RuleRange, fmt.Sprintf("no seed number %d in the list", n))
	}
	return seeds[n-1].ID, nil
}

// show renders the first screen of the current list.
func (a *App) show() {
	a.viewport.Reset()
	a.viewport.SetTotal(len(a.feed.Seeds()))
	a.render()
}

func (a *App) scrollStep() int {
	if a.config == nil || a.config.ViewportHeight < 1 {
		return 1
	}
	return a.config.ViewportHeight
}
