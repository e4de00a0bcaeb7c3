package usecase

import (
	"errors"

	"goppo-soppo/internal/data/entity"
)

// Authorization failures. Messages are what the client sees.
var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrAdminRequired   = errors.New("admin access required")
	ErrPrivateResource = errors.New("this playlist is private")
	// ErrNotOwner deliberately matches the not-found wording so write
	// attempts cannot probe for the existence of other users' playlists.
	ErrNotOwner = errors.New("playlist not found or access denied")
)

// The authorization rules are pure functions of a resource snapshot and
// the requesting identity; no hidden state, so they are testable in
// isolation.

// AuthorizePlaylistRead allows public and global playlists for anyone,
// private playlists only for their owner.
func AuthorizePlaylistRead(playlist *entity.Playlist, identity entity.Identity) error {
	if playlist.Privacy == entity.PrivacyPublic || playlist.IsGlobal {
		return nil
	}
	if isPlaylistOwner(playlist, identity) {
		return nil
	}
	return ErrPrivateResource
}

// AuthorizePlaylistWrite allows mutation only for the owner. Global
// playlists have no owner, so no end user can write them; they are
// managed through the admin-gated endpoints.
func AuthorizePlaylistWrite(playlist *entity.Playlist, identity entity.Identity) error {
	if !identity.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if !isPlaylistOwner(playlist, identity) {
		return ErrNotOwner
	}
	return nil
}

// AuthorizeAdmin gates content ingestion and full listings.
func AuthorizeAdmin(identity entity.Identity) error {
	if !identity.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if !identity.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

func isPlaylistOwner(playlist *entity.Playlist, identity entity.Identity) bool {
	return identity.IsAuthenticated() &&
		playlist.OwnerID != nil &&
		*playlist.OwnerID == identity.UserID
}
