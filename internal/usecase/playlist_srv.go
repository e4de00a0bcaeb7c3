package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/dto/request"
	"goppo-soppo/internal/dto/response"
	"goppo-soppo/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrPlaylistNotFound = errors.New("playlist not found")

// FileRemover deletes a previously stored upload by its web path.
// Cleanup is best effort; a leftover file on disk is not worth failing
// the request over.
type FileRemover interface {
	Remove(webPath string) error
}

type PlaylistService interface {
	Create(ctx context.Context, identity entity.Identity, req *request.CreatePlaylistRequest) (*response.PlaylistResponse, error)
	ListMine(ctx context.Context, identity entity.Identity) ([]response.PlaylistResponse, error)
	GetDetail(ctx context.Context, identity entity.Identity, id uuid.UUID) (*response.PlaylistDetailResponse, error)
	Update(ctx context.Context, identity entity.Identity, id uuid.UUID, req *request.UpdatePlaylistRequest) (*response.PlaylistResponse, error)
	Delete(ctx context.Context, identity entity.Identity, id uuid.UUID) error
	AddItem(ctx context.Context, identity entity.Identity, playlistID uuid.UUID, req *request.AddPlaylistItemRequest) error
	RemoveItem(ctx context.Context, identity entity.Identity, playlistID, storyID uuid.UUID) error
}

type playlistService struct {
	repo  *repository.Repository
	files FileRemover
	log   *zap.Logger
}

func NewPlaylistService(repo *repository.Repository, files FileRemover, log *zap.Logger) PlaylistService {
	return &playlistService{
		repo:  repo,
		files: files,
		log:   log,
	}
}

func (s *playlistService) Create(ctx context.Context, identity entity.Identity, req *request.CreatePlaylistRequest) (*response.PlaylistResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create playlist validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID := identity.UserID
	playlist := &entity.Playlist{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		OwnerID:    &ownerID,
		Title:      req.Title,
		Privacy:    entity.PrivacyPrivate,
		CoverImage: req.CoverImage,
	}
	if req.Description != "" {
		description := req.Description
		playlist.Description = &description
	}
	if req.Privacy != "" {
		playlist.Privacy = entity.PlaylistPrivacy(req.Privacy)
	}

	if err := s.repo.Playlist.Create(ctx, playlist); err != nil {
		s.log.Error("Failed to create playlist", zap.Error(err), zap.String("user_id", ownerID.String()))
		return nil, fmt.Errorf("failed to create playlist")
	}

	s.log.Info("Playlist created",
		zap.String("playlist_id", playlist.ID.String()),
		zap.String("user_id", ownerID.String()),
	)

	resp := response.PlaylistToResponse(playlist)
	return &resp, nil
}

func (s *playlistService) ListMine(ctx context.Context, identity entity.Identity) ([]response.PlaylistResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	playlists, err := s.repo.Playlist.FindByOwner(ctx, identity.UserID)
	if err != nil {
		s.log.Error("Failed to list playlists", zap.Error(err), zap.String("user_id", identity.UserID.String()))
		return nil, fmt.Errorf("failed to list playlists")
	}

	return response.PlaylistsToResponse(playlists), nil
}

func (s *playlistService) GetDetail(ctx context.Context, identity entity.Identity, id uuid.UUID) (*response.PlaylistDetailResponse, error) {
	playlist, err := s.repo.Playlist.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find playlist", zap.Error(err), zap.String("playlist_id", id.String()))
		return nil, fmt.Errorf("failed to load playlist")
	}
	if playlist == nil {
		return nil, ErrPlaylistNotFound
	}

	if err := AuthorizePlaylistRead(playlist, identity); err != nil {
		return nil, err
	}

	items, err := s.repo.PlaylistItem.FindStories(ctx, id)
	if err != nil {
		s.log.Error("Failed to load playlist items", zap.Error(err), zap.String("playlist_id", id.String()))
		return nil, fmt.Errorf("failed to load playlist")
	}

	return response.PlaylistToDetailResponse(playlist, items, isPlaylistOwner(playlist, identity)), nil
}

func (s *playlistService) Update(ctx context.Context, identity entity.Identity, id uuid.UUID, req *request.UpdatePlaylistRequest) (*response.PlaylistResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update playlist validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playlist, err := s.writable(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	oldCover := playlist.CoverImage
	if req.Title != nil {
		playlist.Title = *req.Title
	}
	if req.Description != nil {
		playlist.Description = req.Description
	}
	if req.Privacy != nil {
		playlist.Privacy = entity.PlaylistPrivacy(*req.Privacy)
	}
	if req.CoverImage != nil {
		playlist.CoverImage = req.CoverImage
	}

	if err := s.repo.Playlist.Update(ctx, playlist); err != nil {
		s.log.Error("Failed to update playlist", zap.Error(err), zap.String("playlist_id", id.String()))
		return nil, fmt.Errorf("failed to update playlist")
	}

	// The replaced cover is no longer referenced by any row.
	if req.CoverImage != nil && oldCover != nil && *oldCover != *req.CoverImage {
		s.removeFile(*oldCover)
	}

	resp := response.PlaylistToResponse(playlist)
	return &resp, nil
}

func (s *playlistService) Delete(ctx context.Context, identity entity.Identity, id uuid.UUID) error {
	playlist, err := s.writable(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := s.repo.Playlist.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete playlist", zap.Error(err), zap.String("playlist_id", id.String()))
		return fmt.Errorf("failed to delete playlist")
	}

	if playlist.CoverImage != nil {
		s.removeFile(*playlist.CoverImage)
	}

	s.log.Info("Playlist deleted",
		zap.String("playlist_id", id.String()),
		zap.String("user_id", identity.UserID.String()),
	)

	return nil
}

func (s *playlistService) AddItem(ctx context.Context, identity entity.Identity, playlistID uuid.UUID, req *request.AddPlaylistItemRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add playlist item validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	storyID, err := utils.ParseUUID(req.StoryID)
	if err != nil {
		return fmt.Errorf("validation failed: storyId must be a valid UUID")
	}

	if _, err := s.writable(ctx, identity, playlistID); err != nil {
		return err
	}

	story, err := s.repo.Story.FindByID(ctx, storyID)
	if err != nil {
		s.log.Error("Failed to find story", zap.Error(err), zap.String("story_id", storyID.String()))
		return fmt.Errorf("failed to add story to playlist")
	}
	if story == nil {
		return ErrStoryNotFound
	}

	// Duplicates are caught by the unique pair constraint, not a prior
	// read, so concurrent adds of the same story cannot slip through.
	if err := s.repo.PlaylistItem.Insert(ctx, playlistID, storyID); err != nil {
		if errors.Is(err, repository.ErrDuplicateItem) {
			return repository.ErrDuplicateItem
		}
		s.log.Error("Failed to add playlist item",
			zap.Error(err),
			zap.String("playlist_id", playlistID.String()),
			zap.String("story_id", storyID.String()),
		)
		return fmt.Errorf("failed to add story to playlist")
	}

	return nil
}

func (s *playlistService) RemoveItem(ctx context.Context, identity entity.Identity, playlistID, storyID uuid.UUID) error {
	if _, err := s.writable(ctx, identity, playlistID); err != nil {
		return err
	}

	if err := s.repo.PlaylistItem.Delete(ctx, playlistID, storyID); err != nil {
		s.log.Error("Failed to remove playlist item",
			zap.Error(err),
			zap.String("playlist_id", playlistID.String()),
			zap.String("story_id", storyID.String()),
		)
		return fmt.Errorf("failed to remove story from playlist")
	}

	return nil
}

// writable loads the playlist and enforces ownership. A missing
// playlist and someone else's playlist answer identically.
func (s *playlistService) writable(ctx context.Context, identity entity.Identity, id uuid.UUID) (*entity.Playlist, error) {
	if !identity.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	playlist, err := s.repo.Playlist.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find playlist", zap.Error(err), zap.String("playlist_id", id.String()))
		return nil, fmt.Errorf("failed to load playlist")
	}
	if playlist == nil {
		return nil, ErrNotOwner
	}

	if err := AuthorizePlaylistWrite(playlist, identity); err != nil {
		return nil, err
	}

	return playlist, nil
}

func (s *playlistService) removeFile(webPath string) {
	if s.files == nil {
		return
	}
	if err := s.files.Remove(webPath); err != nil {
		s.log.Warn("Failed to remove stored file", zap.Error(err), zap.String("path", webPath))
	}
}
