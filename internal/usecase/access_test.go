package usecase

import (
	"testing"

	"goppo-soppo/internal/data/entity"

	"github.com/google/uuid"
)

func TestAuthorizePlaylistRead(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	owner := entity.Identity{UserID: ownerID, Role: entity.RoleUser, Name: "Owner"}
	stranger := entity.Identity{UserID: strangerID, Role: entity.RoleUser, Name: "Other"}
	anonymous := entity.Identity{}

	tests := []struct {
		name     string
		playlist entity.Playlist
		identity entity.Identity
		wantErr  error
	}{
		{"public readable by anyone", entity.Playlist{Privacy: entity.PrivacyPublic, OwnerID: &ownerID}, anonymous, nil},
		{"global readable by anyone", entity.Playlist{Privacy: entity.PrivacyPrivate, IsGlobal: true}, anonymous, nil},
		{"private readable by owner", entity.Playlist{Privacy: entity.PrivacyPrivate, OwnerID: &ownerID}, owner, nil},
		{"private denied for stranger", entity.Playlist{Privacy: entity.PrivacyPrivate, OwnerID: &ownerID}, stranger, ErrPrivateResource},
		{"private denied for anonymous", entity.Playlist{Privacy: entity.PrivacyPrivate, OwnerID: &ownerID}, anonymous, ErrPrivateResource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorizePlaylistRead(&tt.playlist, tt.identity); got != tt.wantErr {
				t.Fatalf("got %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestAuthorizePlaylistWrite(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	owner := entity.Identity{UserID: ownerID, Role: entity.RoleUser, Name: "Owner"}
	stranger := entity.Identity{UserID: strangerID, Role: entity.RoleUser, Name: "Other"}
	admin := entity.Identity{UserID: strangerID, Role: entity.RoleAdmin, Name: "Admin"}

	tests := []struct {
		name     string
		playlist entity.Playlist
		identity entity.Identity
		wantErr  error
	}{
		{"owner may write", entity.Playlist{OwnerID: &ownerID}, owner, nil},
		{"stranger denied", entity.Playlist{OwnerID: &ownerID}, stranger, ErrNotOwner},
		{"anonymous denied", entity.Playlist{OwnerID: &ownerID, Privacy: entity.PrivacyPublic}, entity.Identity{}, ErrUnauthenticated},
		{"even public playlists are owner-only for writes", entity.Playlist{OwnerID: &ownerID, Privacy: entity.PrivacyPublic}, stranger, ErrNotOwner},
		{"global playlists have no writable owner", entity.Playlist{IsGlobal: true}, admin, ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorizePlaylistWrite(&tt.playlist, tt.identity); got != tt.wantErr {
				t.Fatalf("got %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeAdmin(t *testing.T) {
	if err := AuthorizeAdmin(entity.Identity{}); err != ErrUnauthenticated {
		t.Fatalf("anonymous should be unauthenticated, got %v", err)
	}
	user := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "A"}
	if err := AuthorizeAdmin(user); err != ErrAdminRequired {
		t.Fatalf("plain user should be denied, got %v", err)
	}
	admin := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin, Name: "Admin"}
	if err := AuthorizeAdmin(admin); err != nil {
		t.Fatalf("admin should pass, got %v", err)
	}
}
