package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newPlaylistFixture() (PlaylistService, *repository.Repository) {
	repo := &repository.Repository{
		Playlist:     newStubPlaylistRepo(),
		PlaylistItem: newStubPlaylistItemRepo(),
		Story:        newStubStoryRepo(),
	}
	return NewPlaylistService(repo, nil, zap.NewNop()), repo
}

func seedStory(repo *repository.Repository) uuid.UUID {
	story := &entity.Story{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Title:      "The Midnight Caller",
		AudioPath:  "/audio/midnight.mp3",
	}
	repo.Story.(*stubStoryRepo).add(story)
	return story.ID
}

func TestPlaylistPrivateRoundTrip(t *testing.T) {
	svc, _ := newPlaylistFixture()
	ctx := context.Background()

	owner := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Owner"}
	stranger := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Other"}

	created, err := svc.Create(ctx, owner, &request.CreatePlaylistRequest{Title: "Night Stories"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Privacy != entity.PrivacyPrivate {
		t.Fatalf("privacy should default to private, got %s", created.Privacy)
	}
	id := uuid.MustParse(created.ID)

	// Owner sees it with the isOwner flag set.
	detail, err := svc.GetDetail(ctx, owner, id)
	if err != nil {
		t.Fatalf("owner detail: %v", err)
	}
	if !detail.IsOwner {
		t.Fatal("owner should see isOwner=true")
	}

	// Everyone else is shut out while it stays private.
	if _, err := svc.GetDetail(ctx, stranger, id); !errors.Is(err, ErrPrivateResource) {
		t.Fatalf("stranger read: expected ErrPrivateResource, got %v", err)
	}
	if _, err := svc.GetDetail(ctx, entity.Identity{}, id); !errors.Is(err, ErrPrivateResource) {
		t.Fatalf("anonymous read: expected ErrPrivateResource, got %v", err)
	}

	// Flipping to public opens reads but not writes.
	public := "public"
	if _, err := svc.Update(ctx, owner, id, &request.UpdatePlaylistRequest{Privacy: &public}); err != nil {
		t.Fatalf("update: %v", err)
	}
	detail, err = svc.GetDetail(ctx, stranger, id)
	if err != nil {
		t.Fatalf("stranger read after publish: %v", err)
	}
	if detail.IsOwner {
		t.Fatal("stranger should see isOwner=false")
	}
}

func TestPlaylistNonOwnerWritesRejected(t *testing.T) {
	svc, repo := newPlaylistFixture()
	ctx := context.Background()

	owner := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Owner"}
	stranger := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Other"}
	storyID := seedStory(repo)

	created, err := svc.Create(ctx, owner, &request.CreatePlaylistRequest{Title: "Mine", Privacy: "public"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	addReq := &request.AddPlaylistItemRequest{StoryID: storyID.String()}
	if err := svc.AddItem(ctx, stranger, id, addReq); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("stranger add: expected ErrNotOwner, got %v", err)
	}
	if err := svc.AddItem(ctx, entity.Identity{}, id, addReq); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous add: expected ErrUnauthenticated, got %v", err)
	}

	// The rejected writes must not have touched the playlist.
	if n, _ := repo.PlaylistItem.CountByPlaylist(ctx, id); n != 0 {
		t.Fatalf("expected 0 items after rejected adds, got %d", n)
	}

	// A write against a playlist that does not exist reads the same as
	// a denied one.
	if err := svc.AddItem(ctx, stranger, uuid.New(), addReq); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("missing playlist: expected ErrNotOwner, got %v", err)
	}
}

func TestPlaylistDuplicateAdd(t *testing.T) {
	svc, repo := newPlaylistFixture()
	ctx := context.Background()

	owner := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Owner"}
	storyID := seedStory(repo)

	created, err := svc.Create(ctx, owner, &request.CreatePlaylistRequest{Title: "Mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	addReq := &request.AddPlaylistItemRequest{StoryID: storyID.String()}
	if err := svc.AddItem(ctx, owner, id, addReq); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddItem(ctx, owner, id, addReq); !errors.Is(err, repository.ErrDuplicateItem) {
		t.Fatalf("second add: expected ErrDuplicateItem, got %v", err)
	}
	if n, _ := repo.PlaylistItem.CountByPlaylist(ctx, id); n != 1 {
		t.Fatalf("expected exactly 1 item, got %d", n)
	}

	unknownStory := &request.AddPlaylistItemRequest{StoryID: uuid.NewString()}
	if err := svc.AddItem(ctx, owner, id, unknownStory); !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("unknown story: expected ErrStoryNotFound, got %v", err)
	}
}

func TestPlaylistRemoveItemIdempotent(t *testing.T) {
	svc, repo := newPlaylistFixture()
	ctx := context.Background()

	owner := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Owner"}
	storyID := seedStory(repo)

	created, err := svc.Create(ctx, owner, &request.CreatePlaylistRequest{Title: "Mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	if err := svc.AddItem(ctx, owner, id, &request.AddPlaylistItemRequest{StoryID: storyID.String()}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.RemoveItem(ctx, owner, id, storyID); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if err := svc.RemoveItem(ctx, owner, id, storyID); err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}
	if n, _ := repo.PlaylistItem.CountByPlaylist(ctx, id); n != 0 {
		t.Fatalf("expected 0 items, got %d", n)
	}
}

func TestPlaylistDelete(t *testing.T) {
	svc, _ := newPlaylistFixture()
	ctx := context.Background()

	owner := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Owner"}
	stranger := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "Other"}

	created, err := svc.Create(ctx, owner, &request.CreatePlaylistRequest{Title: "Short lived"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	if err := svc.Delete(ctx, stranger, id); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("stranger delete: expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(ctx, owner, id); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.GetDetail(ctx, owner, id); !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("detail after delete: expected ErrPlaylistNotFound, got %v", err)
	}
}
