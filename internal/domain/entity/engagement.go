package entity

import (
	"time"
)

// UserSummary is the minimal actor profile joined onto engagement listings.
type UserSummary struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// Like records that a user liked a song or playlist. The triple
// (UserID, TargetID, TargetType) is unique, enforced by a compound index.
type Like struct {
	ID         string      `bson:"_id,omitempty" json:"id"`
	UserID     string      `bson:"user_id" json:"user_id"`
	TargetID   string      `bson:"target_id" json:"target_id"`
	TargetType ContentType `bson:"target_type" json:"target_type"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`

	// Actor is filled at listing time by joining to the user store.
	Actor *UserSummary `bson:"-" json:"actor,omitempty"`
}

// Comment is a user comment on a song or playlist. Content is mutable by the
// author only; there is no uniqueness constraint.
type Comment struct {
	ID         string      `bson:"_id,omitempty" json:"id"`
	UserID     string      `bson:"user_id" json:"user_id"`
	TargetID   string      `bson:"target_id" json:"target_id"`
	TargetType ContentType `bson:"target_type" json:"target_type"`
	Content    string      `bson:"content" json:"content"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updated_at"`

	// Actor is filled at listing time by joining to the user store.
	Actor *UserSummary `bson:"-" json:"actor,omitempty"`
}

// SongSummary is the slice of song fields joined onto download history.
type SongSummary struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Image    string `bson:"image" json:"image"`
	Duration string `bson:"duration" json:"duration"`
	Artist   string `bson:"artist" json:"artist"`
	Album    string `bson:"album" json:"album"`
}

// Download records one download of a song by a user. Downloads are
// append-only: they are never deleted and the same user may download the
// same song any number of times.
type Download struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	SongID       string    `bson:"song_id" json:"song_id"`
	DownloadedAt time.Time `bson:"downloaded_at" json:"downloaded_at"`

	// Song is filled at listing time by joining to the songs collection.
	Song *SongSummary `bson:"-" json:"song,omitempty"`
}
