package repository

import (
	"context"
	"fmt"
	"time"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LikeRepository interface {
	// Insert is a no-op when the pair already exists (ON CONFLICT DO
	// NOTHING); returns whether a row was actually inserted.
	Insert(ctx context.Context, userID, storyID uuid.UUID) (bool, error)
	// Delete returns whether a row was actually removed.
	Delete(ctx context.Context, userID, storyID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, storyID uuid.UUID) (bool, error)
	CountByStory(ctx context.Context, storyID uuid.UUID) (int64, error)
	// FindStoriesByUser returns liked stories, most-recently-liked
	// first, with writer names.
	FindStoriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Story, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Insert(ctx context.Context, userID, storyID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO likes (id, user_id, story_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, story_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, uuid.New(), userID, storyID, time.Now())
	if err != nil {
		r.log.Error("Failed to insert like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("story_id", storyID.String()),
		)
		return false, fmt.Errorf("like story %s: %w", storyID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, storyID uuid.UUID) (bool, error) {
	query := `DELETE FROM likes WHERE user_id = $1 AND story_id = $2`

	result, err := r.db.Exec(ctx, query, userID, storyID)
	if err != nil {
		r.log.Error("Failed to delete like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("story_id", storyID.String()),
		)
		return false, fmt.Errorf("unlike story %s: %w", storyID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, storyID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND story_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, storyID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("story_id", storyID.String()),
		)
		return false, fmt.Errorf("check like for story %s: %w", storyID.String(), err)
	}

	return exists, nil
}

func (r *likeRepository) CountByStory(ctx context.Context, storyID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM likes WHERE story_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, storyID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count likes",
			zap.Error(err),
			zap.String("story_id", storyID.String()),
		)
		return 0, fmt.Errorf("count likes of story %s: %w", storyID.String(), err)
	}

	return count, nil
}

func (r *likeRepository) FindStoriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Story, error) {
	query := `
		SELECT s.id, s.title, s.description, s.writer_id, s.genre,
		       s.audio_path, s.thumbnail_path, s.is_series, s.created_at,
		       w.name AS writer_name
		FROM stories s
		JOIN likes l ON s.id = l.story_id
		LEFT JOIN writers w ON s.writer_id = w.id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get liked stories",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find liked stories for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var stories []*entity.Story
	for rows.Next() {
		var story entity.Story
		err := rows.Scan(
			&story.ID,
			&story.Title,
			&story.Description,
			&story.WriterID,
			&story.Genre,
			&story.AudioPath,
			&story.ThumbnailPath,
			&story.IsSeries,
			&story.CreatedAt,
			&story.WriterName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan liked story row: %w", err)
		}
		stories = append(stories, &story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate liked story rows: %w", err)
	}

	return stories, nil
}
