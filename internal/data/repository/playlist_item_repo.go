package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDuplicateItem signals the (playlist, story) pair already exists.
// Raised by the unique constraint, so concurrent adds cannot slip a
// duplicate row past a pre-check.
var ErrDuplicateItem = errors.New("story already in playlist")

type PlaylistItemRepository interface {
	Insert(ctx context.Context, playlistID, storyID uuid.UUID) error
	// Delete is idempotent: removing an absent pair is not an error.
	Delete(ctx context.Context, playlistID, storyID uuid.UUID) error
	// FindStories returns the playlist's stories joined with writer
	// names, most-recently-added first.
	FindStories(ctx context.Context, playlistID uuid.UUID) ([]*entity.PlaylistStory, error)
	CountByPlaylist(ctx context.Context, playlistID uuid.UUID) (int64, error)
}

type playlistItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlaylistItemRepository(db database.PgxIface, log *zap.Logger) PlaylistItemRepository {
	return &playlistItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "playlist_item")),
	}
}

func (r *playlistItemRepository) Insert(ctx context.Context, playlistID, storyID uuid.UUID) error {
	query := `
		INSERT INTO playlist_items (id, playlist_id, story_id, added_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), playlistID, storyID, time.Now())
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateItem
		}
		r.log.Error("Failed to add playlist item",
			zap.Error(err),
			zap.String("playlist_id", playlistID.String()),
			zap.String("story_id", storyID.String()),
		)
		return fmt.Errorf("add story %s to playlist %s: %w", storyID.String(), playlistID.String(), err)
	}

	return nil
}

func (r *playlistItemRepository) Delete(ctx context.Context, playlistID, storyID uuid.UUID) error {
	query := `DELETE FROM playlist_items WHERE playlist_id = $1 AND story_id = $2`

	_, err := r.db.Exec(ctx, query, playlistID, storyID)
	if err != nil {
		r.log.Error("Failed to remove playlist item",
			zap.Error(err),
			zap.String("playlist_id", playlistID.String()),
			zap.String("story_id", storyID.String()),
		)
		return fmt.Errorf("remove story %s from playlist %s: %w", storyID.String(), playlistID.String(), err)
	}

	return nil
}

func (r *playlistItemRepository) FindStories(ctx context.Context, playlistID uuid.UUID) ([]*entity.PlaylistStory, error) {
	query := `
		SELECT s.id, s.title, s.description, s.writer_id, s.genre,
		       s.audio_path, s.thumbnail_path, s.is_series, s.created_at,
		       w.name AS writer_name, pi.added_at
		FROM playlist_items pi
		JOIN stories s ON pi.story_id = s.id
		LEFT JOIN writers w ON s.writer_id = w.id
		WHERE pi.playlist_id = $1
		ORDER BY pi.added_at DESC
	`

	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		r.log.Error("Failed to get playlist stories",
			zap.Error(err),
			zap.String("playlist_id", playlistID.String()),
		)
		return nil, fmt.Errorf("find stories of playlist %s: %w", playlistID.String(), err)
	}
	defer rows.Close()

	var items []*entity.PlaylistStory
	for rows.Next() {
		var item entity.PlaylistStory
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.WriterID,
			&item.Genre,
			&item.AudioPath,
			&item.ThumbnailPath,
			&item.IsSeries,
			&item.CreatedAt,
			&item.WriterName,
			&item.AddedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan playlist story row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist story rows: %w", err)
	}

	return items, nil
}

func (r *playlistItemRepository) CountByPlaylist(ctx context.Context, playlistID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM playlist_items WHERE playlist_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, playlistID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count playlist items",
			zap.Error(err),
			zap.String("playlist_id", playlistID.String()),
		)
		return 0, fmt.Errorf("count items of playlist %s: %w", playlistID.String(), err)
	}

	return count, nil
}
