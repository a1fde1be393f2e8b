// Package models defines the client-side view of garden data.
package models

import "time"

// User is a seed author as shown in the feed.
type User struct {
	ID        string
	Name      string
	AvatarURL string
}

// Seed is one feed entry. Values are copied, never shared, so a cached page
// can only change through the cache store.
type Seed struct {
	ID             string
	Text           string
	CreatedAt      time.Time
	Author         User
	LikeCount      int64
	ViewerHasLiked bool
}

// Page is one garden page. NextCursor is empty at the end of the feed.
type Page struct {
	Seeds      []Seed
	NextCursor string
}

// HasMore reports whether another page can be requested.
func (p Page) HasMore() bool {
	return p.NextCursor != ""
}
