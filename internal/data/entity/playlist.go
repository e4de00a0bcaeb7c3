package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlaylistPrivacy string

const (
	PrivacyPublic  PlaylistPrivacy = "public"
	PrivacyPrivate PlaylistPrivacy = "private"
)

// Playlist with a nil OwnerID is a global playlist created by an admin.
type Playlist struct {
	BaseSimple
	OwnerID     *uuid.UUID      `db:"user_id"`
	Title       string          `db:"title"`
	Description *string         `db:"description"`
	CoverImage  *string         `db:"cover_image"`
	Privacy     PlaylistPrivacy `db:"privacy"`
	IsGlobal    bool            `db:"is_global"`

	// Filled by joined queries.
	OwnerName *string `db:"owner_name"`
	ItemCount int64   `db:"item_count"`
}

// PlaylistStory is a story row as it appears inside a playlist,
// carrying the time it was added.
type PlaylistStory struct {
	Story
	AddedAt time.Time `db:"added_at"`
}
