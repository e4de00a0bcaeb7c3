package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrWriterNotFound = errors.New("writer not found")

// Home feed shelf sizes, matching what the client renders.
const (
	homeTrendingCount  = 5
	homeDetectiveCount = 5
	homeWriterCount    = 5
	homeGlobalCount    = 5

	detectiveGenre = "Detective"
)

type PublicService interface {
	Home(ctx context.Context) (*response.HomeResponse, error)
	Search(ctx context.Context, q string) (*response.SearchResponse, error)
	Genres(ctx context.Context) ([]string, error)
	WriterDetail(ctx context.Context, writerID uuid.UUID) (*response.WriterDetailResponse, error)
}

type publicService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPublicService(repo *repository.Repository, log *zap.Logger) PublicService {
	return &publicService{
		repo: repo,
		log:  log,
	}
}

// Home composes the landing feed: the newest story as hero, a random
// trending shelf, the detective shelf, featured writers, and the latest
// global playlists.
func (s *publicService) Home(ctx context.Context) (*response.HomeResponse, error) {
	latest, err := s.repo.Story.FindLatest(ctx, 1)
	if err != nil {
		s.log.Error("Failed to load hero story", zap.Error(err))
		return nil, fmt.Errorf("failed to load home feed")
	}

	trending, err := s.repo.Story.FindRandom(ctx, homeTrendingCount)
	if err != nil {
		s.log.Error("Failed to load trending stories", zap.Error(err))
		return nil, fmt.Errorf("failed to load home feed")
	}

	detective, err := s.repo.Story.FindByGenre(ctx, detectiveGenre, homeDetectiveCount)
	if err != nil {
		s.log.Error("Failed to load detective stories", zap.Error(err))
		return nil, fmt.Errorf("failed to load home feed")
	}

	writers, err := s.repo.Writer.FindRandom(ctx, homeWriterCount)
	if err != nil {
		s.log.Error("Failed to load featured writers", zap.Error(err))
		return nil, fmt.Errorf("failed to load home feed")
	}

	globals, err := s.repo.Playlist.FindGlobal(ctx, homeGlobalCount)
	if err != nil {
		s.log.Error("Failed to load global playlists", zap.Error(err))
		return nil, fmt.Errorf("failed to load home feed")
	}

	home := &response.HomeResponse{
		Trending:  response.StoriesToResponse(trending),
		Detective: response.StoriesToResponse(detective),
		Writers:   response.WritersToResponse(writers),
		Playlists: response.PlaylistsToResponse(globals),
	}
	if len(latest) > 0 {
		hero := response.StoryToResponse(latest[0])
		home.Hero = &hero
	}

	return home, nil
}

func (s *publicService) Search(ctx context.Context, q string) (*response.SearchResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return &response.SearchResponse{
			Stories: []response.StoryResponse{},
			Writers: []response.WriterResponse{},
		}, nil
	}

	stories, err := s.repo.Story.Search(ctx, q)
	if err != nil {
		s.log.Error("Failed to search stories", zap.Error(err), zap.String("q", q))
		return nil, fmt.Errorf("failed to search")
	}

	writers, err := s.repo.Writer.Search(ctx, q)
	if err != nil {
		s.log.Error("Failed to search writers", zap.Error(err), zap.String("q", q))
		return nil, fmt.Errorf("failed to search")
	}

	return &response.SearchResponse{
		Stories: response.StoriesToResponse(stories),
		Writers: response.WritersToResponse(writers),
	}, nil
}

func (s *publicService) Genres(ctx context.Context) ([]string, error) {
	genres, err := s.repo.Story.DistinctGenres(ctx)
	if err != nil {
		s.log.Error("Failed to load genres", zap.Error(err))
		return nil, fmt.Errorf("failed to load genres")
	}
	return genres, nil
}

func (s *publicService) WriterDetail(ctx context.Context, writerID uuid.UUID) (*response.WriterDetailResponse, error) {
	writer, err := s.repo.Writer.FindByID(ctx, writerID)
	if err != nil {
		s.log.Error("Failed to find writer", zap.Error(err), zap.String("writer_id", writerID.String()))
		return nil, fmt.Errorf("failed to load writer")
	}
	if writer == nil {
		return nil, ErrWriterNotFound
	}

	stories, err := s.repo.Story.FindByWriter(ctx, writerID)
	if err != nil {
		s.log.Error("Failed to load writer stories", zap.Error(err), zap.String("writer_id", writerID.String()))
		return nil, fmt.Errorf("failed to load writer")
	}

	return &response.WriterDetailResponse{
		Writer:  response.WriterToResponse(writer),
		Stories: response.StoriesToResponse(stories),
	}, nil
}
