package usecase

import (
	"context"
	"errors"
	"fmt"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/dto/request"
	"goppo-soppo/internal/dto/response"
	"goppo-soppo/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrStoryNotFound = errors.New("story not found")

type LibraryService interface {
	// ToggleLike flips the like state for (user, story) and reports
	// the new state plus the story's like count.
	ToggleLike(ctx context.Context, identity entity.Identity, req *request.ToggleLikeRequest) (*response.LikeResponse, error)
	GetLibrary(ctx context.Context, identity entity.Identity) (*response.LibraryResponse, error)
	// StoryMeta is public; isLiked is always false for anonymous
	// viewers.
	StoryMeta(ctx context.Context, identity entity.Identity, storyID uuid.UUID) (*response.StoryMetaResponse, error)
}

type libraryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLibraryService(repo *repository.Repository, log *zap.Logger) LibraryService {
	return &libraryService{
		repo: repo,
		log:  log,
	}
}

func (s *libraryService) ToggleLike(ctx context.Context, identity entity.Identity, req *request.ToggleLikeRequest) (*response.LikeResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Toggle like validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	storyID, err := utils.ParseUUID(req.StoryID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: storyId must be a valid UUID")
	}

	story, err := s.repo.Story.FindByID(ctx, storyID)
	if err != nil {
		s.log.Error("Failed to find story", zap.Error(err), zap.String("story_id", storyID.String()))
		return nil, fmt.Errorf("failed to toggle like")
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}

	// Delete first: if a row was there this toggle is an unlike. If
	// not, insert; ON CONFLICT makes a concurrent duplicate insert a
	// no-op rather than an error.
	liked := false
	removed, err := s.repo.Like.Delete(ctx, identity.UserID, storyID)
	if err != nil {
		s.log.Error("Failed to remove like", zap.Error(err), zap.String("story_id", storyID.String()))
		return nil, fmt.Errorf("failed to toggle like")
	}
	if !removed {
		if _, err := s.repo.Like.Insert(ctx, identity.UserID, storyID); err != nil {
			s.log.Error("Failed to add like", zap.Error(err), zap.String("story_id", storyID.String()))
			return nil, fmt.Errorf("failed to toggle like")
		}
		liked = true
	}

	count, err := s.repo.Like.CountByStory(ctx, storyID)
	if err != nil {
		s.log.Error("Failed to count likes", zap.Error(err), zap.String("story_id", storyID.String()))
		return nil, fmt.Errorf("failed to toggle like")
	}

	return &response.LikeResponse{
		Liked: liked,
		Count: count,
	}, nil
}

func (s *libraryService) GetLibrary(ctx context.Context, identity entity.Identity) (*response.LibraryResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	stories, err := s.repo.Like.FindStoriesByUser(ctx, identity.UserID)
	if err != nil {
		s.log.Error("Failed to load library", zap.Error(err), zap.String("user_id", identity.UserID.String()))
		return nil, fmt.Errorf("failed to load library")
	}

	return &response.LibraryResponse{
		Liked: response.StoriesToResponse(stories),
	}, nil
}

func (s *libraryService) StoryMeta(ctx context.Context, identity entity.Identity, storyID uuid.UUID) (*response.StoryMetaResponse, error) {
	story, err := s.repo.Story.FindByID(ctx, storyID)
	if err != nil {
		s.log.Error("Failed to find story", zap.Error(err), zap.String("story_id", storyID.String()))
		return nil, fmt.Errorf("failed to load story meta")
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}

	count, err := s.repo.Like.CountByStory(ctx, storyID)
	if err != nil {
		s.log.Error("Failed to count likes", zap.Error(err), zap.String("story_id", storyID.String()))
		return nil, fmt.Errorf("failed to load story meta")
	}

	isLiked := false
	if identity.IsAuthenticated() {
		isLiked, err = s.repo.Like.Exists(ctx, identity.UserID, storyID)
		if err != nil {
			s.log.Error("Failed to check like", zap.Error(err), zap.String("story_id", storyID.String()))
			return nil, fmt.Errorf("failed to load story meta")
		}
	}

	return &response.StoryMetaResponse{
		Count:   count,
		IsLiked: isLiked,
	}, nil
}
