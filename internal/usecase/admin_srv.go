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

type AdminService interface {
	AddWriter(ctx context.Context, identity entity.Identity, req *request.AddWriterRequest) (*response.WriterResponse, error)
	ListWriters(ctx context.Context, identity entity.Identity) ([]response.WriterResponse, error)
	AddStory(ctx context.Context, identity entity.Identity, req *request.AddStoryRequest) (*response.StoryResponse, error)
	// ListStories returns the slim id+title shape the story picker
	// needs.
	ListStories(ctx context.Context, identity entity.Identity) ([]response.StoryTitleResponse, error)
	CreateGlobalPlaylist(ctx context.Context, identity entity.Identity, req *request.CreateGlobalPlaylistRequest) (*response.PlaylistResponse, error)
	ListPlaylists(ctx context.Context, identity entity.Identity) ([]response.PlaylistResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log,
	}
}

func (s *adminService) AddWriter(ctx context.Context, identity entity.Identity, req *request.AddWriterRequest) (*response.WriterResponse, error) {
	if err := AuthorizeAdmin(identity); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add writer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	writer := &entity.Writer{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       req.Name,
		ImagePath:  req.ImagePath,
	}
	if req.Bio != "" {
		bio := req.Bio
		writer.Bio = &bio
	}

	if err := s.repo.Writer.Create(ctx, writer); err != nil {
		s.log.Error("Failed to create writer", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create writer")
	}

	s.log.Info("Writer added",
		zap.String("writer_id", writer.ID.String()),
		zap.String("admin_id", identity.UserID.String()),
	)

	resp := response.WriterToResponse(writer)
	return &resp, nil
}

func (s *adminService) ListWriters(ctx context.Context, identity entity.Identity) ([]response.WriterResponse, error) {
	if err := AuthorizeAdmin(identity); err != nil {
		return nil, err
	}

	writers, err := s.repo.Writer.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list writers", zap.Error(err))
		return nil, fmt.Errorf("failed to list writers")
	}

	return response.WritersToResponse(writers), nil
}

func (s *adminService) AddStory(ctx context.Context, identity entity.Identity, req *request.AddStoryRequest) (*response.StoryResponse, error) {
	if err := AuthorizeAdmin(identity); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add story validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	writerID, err := utils.ParseUUID(req.WriterID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: writer_id must be a valid UUID")
	}

	// A story must point at a writer that actually exists; the FK
	// would reject it anyway, but this way the client gets a clear
	// message.
	writer, err := s.repo.Writer.FindByID(ctx, writerID)
	if err != nil {
		s.log.Error("Failed to find writer", zap.Error(err), zap.String("writer_id", req.WriterID))
		return nil, fmt.Errorf("failed to create story")
	}
	if writer == nil {
		return nil, ErrWriterNotFound
	}

	story := &entity.Story{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Title:         req.Title,
		WriterID:      &writerID,
		AudioPath:     req.AudioPath,
		ThumbnailPath: req.ThumbnailPath,
		IsSeries:      req.IsSeries,
	}
	if req.Description != "" {
		description := req.Description
		story.Description = &description
	}
	if req.Genre != "" {
		genre := req.Genre
		story.Genre = &genre
	}

	if err := s.repo.Story.Create(ctx, story); err != nil {
		s.log.Error("Failed to create story", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create story")
	}

	s.log.Info("Story added",
		zap.String("story_id", story.ID.String()),
		zap.String("admin_id", identity.UserID.String()),
	)

	story.WriterName = &writer.Name
	resp := response.StoryToResponse(story)
	return &resp, nil
}

func (s *adminService) ListStories(ctx context.Context, identity entity.Identity) ([]response.StoryTitleResponse, error) {
	if err := AuthorizeAdmin(identity); err != nil {
		return nil, err
	}

	stories, err := s.repo.Story.ListTitles(ctx)
	if err != nil {
		s.log.Error("Failed to list stories", zap.Error(err))
		return nil, fmt.Errorf("failed to list stories")
	}

	titles := make([]response.StoryTitleResponse, len(stories))
	for i, story := range stories {
		titles[i] = response.StoryTitleResponse{
			ID:    story.ID.String(),
			Title: story.Title,
		}
	}

	return titles, nil
}

func (s *adminService) CreateGlobalPlaylist(ctx context.Context, identity entity.Identity, req *request.CreateGlobalPlaylistRequest) (*response.PlaylistResponse, error) {
	if err := AuthorizeAdmin(identity); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create global playlist validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Global playlists are ownerless and always public.
	playlist := &entity.Playlist{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Title:      req.Title,
		Privacy:    entity.PrivacyPublic,
		IsGlobal:   true,
		CoverImage: req.ThumbnailPath,
	}
	if req.Description != "" {
		description := req.Description
		playlist.Description = &description
	}

	if err := s.repo.Playlist.Create(ctx, playlist); err != nil {
		s.log.Error("Failed to create global playlist", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create playlist")
	}

	// Seed the initial batch. Bad IDs and duplicates are skipped, not
	// fatal; the playlist itself already exists.
	for _, rawID := range req.StoryIDs {
		storyID, err := utils.ParseUUID(rawID)
		if err != nil {
			s.log.Warn("Skipping invalid story ID in batch", zap.String("story_id", rawID))
			continue
		}
		if err := s.repo.PlaylistItem.Insert(ctx, playlist.ID, storyID); err != nil {
			if errors.Is(err, repository.ErrDuplicateItem) {
				continue
			}
			s.log.Warn("Skipping story that could not be added",
				zap.Error(err),
				zap.String("story_id", rawID),
				zap.String("playlist_id", playlist.ID.String()),
			)
		} else {
			playlist.ItemCount++
		}
	}

	s.log.Info("Global playlist created",
		zap.String("playlist_id", playlist.ID.String()),
		zap.Int64("items", playlist.ItemCount),
		zap.String("admin_id", identity.UserID.String()),
	)

	resp := response.PlaylistToResponse(playlist)
	return &resp, nil
}

func (s *adminService) ListPlaylists(ctx context.Context, identity entity.Identity) ([]response.PlaylistResponse, error) {
	if err := AuthorizeAdmin(identity); err != nil {
		return nil, err
	}

	playlists, err := s.repo.Playlist.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list playlists", zap.Error(err))
		return nil, fmt.Errorf("failed to list playlists")
	}

	return response.PlaylistsToResponse(playlists), nil
}
