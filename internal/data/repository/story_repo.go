package repository

import (
	"context"
	"fmt"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// storyColumns is every stories column plus the joined writer name.
const storyColumns = `
	s.id, s.title, s.description, s.writer_id, s.genre,
	s.audio_path, s.thumbnail_path, s.is_series, s.created_at,
	w.name AS writer_name
`

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error)
	FindLatest(ctx context.Context, limit int) ([]*entity.Story, error)
	FindRandom(ctx context.Context, limit int) ([]*entity.Story, error)
	FindByGenre(ctx context.Context, genre string, limit int) ([]*entity.Story, error)
	FindByWriter(ctx context.Context, writerID uuid.UUID) ([]*entity.Story, error)
	Search(ctx context.Context, q string) ([]*entity.Story, error)
	ListTitles(ctx context.Context) ([]*entity.Story, error)
	DistinctGenres(ctx context.Context) ([]string, error)
}

type storyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoryRepository(db database.PgxIface, log *zap.Logger) StoryRepository {
	return &storyRepository{
		db:  db,
		log: log.With(zap.String("repository", "story")),
	}
}

func (r *storyRepository) Create(ctx context.Context, story *entity.Story) error {
	query := `
		INSERT INTO stories (id, title, description, writer_id, genre,
		                     audio_path, thumbnail_path, is_series, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		story.ID,
		story.Title,
		story.Description,
		story.WriterID,
		story.Genre,
		story.AudioPath,
		story.ThumbnailPath,
		story.IsSeries,
		story.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create story",
			zap.Error(err),
			zap.String("title", story.Title),
		)
		return fmt.Errorf("create story %s: %w", story.Title, err)
	}

	return nil
}

func (r *storyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories s
		LEFT JOIN writers w ON s.writer_id = w.id
		WHERE s.id = $1
	`

	var story entity.Story
	err := r.db.QueryRow(ctx, query, id).Scan(storyFields(&story)...)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find story by ID",
			zap.Error(err),
			zap.String("story_id", id.String()),
		)
		return nil, fmt.Errorf("find story by ID %s: %w", id.String(), err)
	}

	return &story, nil
}

func (r *storyRepository) FindLatest(ctx context.Context, limit int) ([]*entity.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories s
		LEFT JOIN writers w ON s.writer_id = w.id
		ORDER BY s.created_at DESC
		LIMIT $1
	`

	return r.queryStories(ctx, "find latest stories", query, limit)
}

func (r *storyRepository) FindRandom(ctx context.Context, limit int) ([]*entity.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories s
		LEFT JOIN writers w ON s.writer_id = w.id
		ORDER BY RANDOM()
		LIMIT $1
	`

	return r.queryStories(ctx, "find random stories", query, limit)
}

func (r *storyRepository) FindByGenre(ctx context.Context, genre string, limit int) ([]*entity.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories s
		LEFT JOIN writers w ON s.writer_id = w.id
		WHERE s.genre = $1
		ORDER BY s.created_at DESC
		LIMIT $2
	`

	return r.queryStories(ctx, "find stories by genre", query, genre, limit)
}

func (r *storyRepository) FindByWriter(ctx context.Context, writerID uuid.UUID) ([]*entity.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories s
		LEFT JOIN writers w ON s.writer_id = w.id
		WHERE s.writer_id = $1
		ORDER BY s.created_at DESC
	`

	return r.queryStories(ctx, "find stories by writer", query, writerID)
}

func (r *storyRepository) Search(ctx context.Context, q string) ([]*entity.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories s
		LEFT JOIN writers w ON s.writer_id = w.id
		WHERE s.title ILIKE $1 OR s.description ILIKE $1
		ORDER BY s.created_at DESC
	`

	return r.queryStories(ctx, "search stories", query, "%"+q+"%")
}

// ListTitles returns id and title only (admin story picker).
func (r *storyRepository) ListTitles(ctx context.Context) ([]*entity.Story, error) {
	query := `SELECT id, title FROM stories ORDER BY title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list story titles", zap.Error(err))
		return nil, fmt.Errorf("list story titles: %w", err)
	}
	defer rows.Close()

	var stories []*entity.Story
	for rows.Next() {
		var story entity.Story
		if err := rows.Scan(&story.ID, &story.Title); err != nil {
			return nil, fmt.Errorf("scan story title row: %w", err)
		}
		stories = append(stories, &story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate story title rows: %w", err)
	}

	return stories, nil
}

func (r *storyRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT genre FROM stories
		WHERE genre IS NOT NULL AND genre <> ''
		ORDER BY genre ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("distinct genres: %w", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

func (r *storyRepository) queryStories(ctx context.Context, op, query string, args ...any) ([]*entity.Story, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var stories []*entity.Story
	for rows.Next() {
		var story entity.Story
		if err := rows.Scan(storyFields(&story)...); err != nil {
			return nil, fmt.Errorf("scan story row: %w", err)
		}
		stories = append(stories, &story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate story rows: %w", err)
	}

	return stories, nil
}

// storyFields keeps scan targets in one place; order matches storyColumns.
func storyFields(s *entity.Story) []any {
	return []any{
		&s.ID,
		&s.Title,
		&s.Description,
		&s.WriterID,
		&s.Genre,
		&s.AudioPath,
		&s.ThumbnailPath,
		&s.IsSeries,
		&s.CreatedAt,
		&s.WriterName,
	}
}
