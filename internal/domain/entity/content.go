package entity

import (
	"time"
)

// ContentType identifies which catalog collection a content item lives in.
type ContentType string

const (
	ContentTypeSong     ContentType = "song"
	ContentTypeAlbum    ContentType = "album"
	ContentTypePlaylist ContentType = "playlist"
)

// EngagementTargetTypes lists the content types that can receive likes and
// comments. Albums carry the counter fields in the schema but are not
// reachable through the engagement operations.
var EngagementTargetTypes = []ContentType{ContentTypeSong, ContentTypePlaylist}

// IsEngagementTarget reports whether a like or comment may target this type.
func (t ContentType) IsEngagementTarget() bool {
	for _, target := range EngagementTargetTypes {
		if t == target {
			return true
		}
	}
	return false
}

// IsSearchable reports whether the type is a valid search type filter.
func (t ContentType) IsSearchable() bool {
	return t == ContentTypeSong || t == ContentTypeAlbum || t == ContentTypePlaylist
}

// CounterField names a denormalized counter stored on a content item.
type CounterField string

const (
	CounterLikes     CounterField = "likes_count"
	CounterComments  CounterField = "comments_count"
	CounterDownloads CounterField = "downloads_count"
)

// Song is a platform-owned track in the catalog.
type Song struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Desc           string    `bson:"desc" json:"desc"`
	Album          string    `bson:"album" json:"album"`
	Artist         string    `bson:"artist" json:"artist"`
	Genre          string    `bson:"genre" json:"genre"`
	ReleaseYear    int       `bson:"release_year,omitempty" json:"release_year,omitempty"`
	Image          string    `bson:"image" json:"image"`
	File           string    `bson:"file" json:"file"`
	Duration       string    `bson:"duration" json:"duration"`
	Downloadable   bool      `bson:"downloadable" json:"downloadable"`
	LikesCount     int64     `bson:"likes_count" json:"likes_count"`
	CommentsCount  int64     `bson:"comments_count" json:"comments_count"`
	DownloadsCount int64     `bson:"downloads_count" json:"downloads_count"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// Album is a platform-owned album in the catalog.
type Album struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Desc          string    `bson:"desc" json:"desc"`
	BgColor       string    `bson:"bg_color" json:"bg_color"`
	Image         string    `bson:"image" json:"image"`
	Artist        string    `bson:"artist" json:"artist"`
	ReleaseYear   int       `bson:"release_year,omitempty" json:"release_year,omitempty"`
	Genre         string    `bson:"genre" json:"genre"`
	LikesCount    int64     `bson:"likes_count" json:"likes_count"`
	CommentsCount int64     `bson:"comments_count" json:"comments_count"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Playlist is a user-owned collection of songs. Unlike songs and albums it
// has an owner and a visibility flag.
type Playlist struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	CoverImage    string    `bson:"cover_image" json:"cover_image"`
	OwnerID       string    `bson:"owner_id" json:"owner_id"`
	SongIDs       []string  `bson:"song_ids" json:"song_ids"`
	IsPublic      bool      `bson:"is_public" json:"is_public"`
	LikesCount    int64     `bson:"likes_count" json:"likes_count"`
	CommentsCount int64     `bson:"comments_count" json:"comments_count"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// VisibleTo reports whether the playlist may be shown to the requester.
// An empty requesterID means an anonymous caller.
func (p *Playlist) VisibleTo(requesterID string) bool {
	return p.IsPublic || p.OwnedBy(requesterID)
}

// OwnedBy reports whether the actor may mutate the playlist.
func (p *Playlist) OwnedBy(actorID string) bool {
	return actorID != "" && p.OwnerID == actorID
}

// ContentRef is the resolved view of a (targetType, targetID) pair that the
// engagement operations need: enough to check visibility, ownership and
// downloadability without caring which collection the item came from.
type ContentRef struct {
	ID           string
	Type         ContentType
	Name         string
	OwnerID      string
	IsPublic     bool
	Downloadable bool
	FileURL      string
}

// VisibleTo mirrors Playlist.VisibleTo for resolved references. Songs and
// albums are always visible.
func (c *ContentRef) VisibleTo(requesterID string) bool {
	if c.Type != ContentTypePlaylist {
		return true
	}
	return c.IsPublic || (requesterID != "" && c.OwnerID == requesterID)
}
