package models

import "time"

type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	AvatarKey string
	// AvatarURL is a presigned GET URL for AvatarKey, set on feed results.
	AvatarURL string
	CreatedAt time.Time
}
