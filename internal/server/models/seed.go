// Package models defines server-side data models persisted in the database.
package models

import "time"

// Seed is a feed entry together with the values derived for one viewer.
type Seed struct {
	ID        string
	AuthorID  string
	Text      string
	CreatedAt time.Time

	// Author is filled by feed queries and by Create.
	Author *User

	LikeCount      int64
	ViewerHasLiked bool
}

// GardenFilter narrows a feed query. Zero values mean "no restriction".
type GardenFilter struct {
	Limit      int
	Cursor     string
	AuthorName string
	ViewerID   string
}

// GardenPage is one page of the feed. NextCursor is empty at the end.
type GardenPage struct {
	Seeds      []*Seed
	NextCursor string
}
