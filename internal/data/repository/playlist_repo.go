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

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	// FindByID also loads the owner display name (outer join; nil for
	// global playlists).
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)
	FindGlobal(ctx context.Context, limit int) ([]*entity.Playlist, error)
	FindAll(ctx context.Context) ([]*entity.Playlist, error)
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type playlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlaylistRepository(db database.PgxIface, log *zap.Logger) PlaylistRepository {
	return &playlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "playlist")),
	}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	query := `
		INSERT INTO playlists (id, user_id, title, description, cover_image,
		                       privacy, is_global, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		playlist.ID,
		playlist.OwnerID,
		playlist.Title,
		playlist.Description,
		playlist.CoverImage,
		playlist.Privacy,
		playlist.IsGlobal,
		playlist.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create playlist",
			zap.Error(err),
			zap.String("title", playlist.Title),
		)
		return fmt.Errorf("create playlist %s: %w", playlist.Title, err)
	}

	return nil
}

func (r *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	query := `
		SELECT p.id, p.user_id, p.title, p.description, p.cover_image,
		       p.privacy, p.is_global, p.created_at,
		       u.name AS owner_name
		FROM playlists p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`

	var playlist entity.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.OwnerID,
		&playlist.Title,
		&playlist.Description,
		&playlist.CoverImage,
		&playlist.Privacy,
		&playlist.IsGlobal,
		&playlist.CreatedAt,
		&playlist.OwnerName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find playlist by ID",
			zap.Error(err),
			zap.String("playlist_id", id.String()),
		)
		return nil, fmt.Errorf("find playlist by ID %s: %w", id.String(), err)
	}

	return &playlist, nil
}

// FindByOwner includes the item count per playlist for the library view.
func (r *playlistRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	query := `
		SELECT p.id, p.user_id, p.title, p.description, p.cover_image,
		       p.privacy, p.is_global, p.created_at,
		       (SELECT COUNT(*) FROM playlist_items pi WHERE pi.playlist_id = p.id) AS item_count
		FROM playlists p
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to get playlists by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find playlists by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var playlists []*entity.Playlist
	for rows.Next() {
		var playlist entity.Playlist
		err := rows.Scan(
			&playlist.ID,
			&playlist.OwnerID,
			&playlist.Title,
			&playlist.Description,
			&playlist.CoverImage,
			&playlist.Privacy,
			&playlist.IsGlobal,
			&playlist.CreatedAt,
			&playlist.ItemCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}
		playlists = append(playlists, &playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist rows: %w", err)
	}

	return playlists, nil
}

func (r *playlistRepository) FindGlobal(ctx context.Context, limit int) ([]*entity.Playlist, error) {
	query := `
		SELECT id, user_id, title, description, cover_image,
		       privacy, is_global, created_at
		FROM playlists
		WHERE is_global = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`

	return r.queryPlaylists(ctx, "find global playlists", query, limit)
}

func (r *playlistRepository) FindAll(ctx context.Context) ([]*entity.Playlist, error) {
	query := `
		SELECT id, user_id, title, description, cover_image,
		       privacy, is_global, created_at
		FROM playlists
		ORDER BY created_at DESC
	`

	return r.queryPlaylists(ctx, "find all playlists", query)
}

func (r *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	query := `
		UPDATE playlists
		SET title = $2, description = $3, cover_image = $4, privacy = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		playlist.ID,
		playlist.Title,
		playlist.Description,
		playlist.CoverImage,
		playlist.Privacy,
	)

	if err != nil {
		r.log.Error("Failed to update playlist",
			zap.Error(err),
			zap.String("playlist_id", playlist.ID.String()),
		)
		return fmt.Errorf("update playlist %s: %w", playlist.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("playlist %s not found", playlist.ID.String())
	}

	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// playlist_items rows go with it via ON DELETE CASCADE
	query := `DELETE FROM playlists WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete playlist",
			zap.Error(err),
			zap.String("playlist_id", id.String()),
		)
		return fmt.Errorf("delete playlist %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("playlist %s not found", id.String())
	}

	r.log.Info("Playlist deleted", zap.String("playlist_id", id.String()))
	return nil
}

func (r *playlistRepository) queryPlaylists(ctx context.Context, op, query string, args ...any) ([]*entity.Playlist, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var playlists []*entity.Playlist
	for rows.Next() {
		var playlist entity.Playlist
		err := rows.Scan(
			&playlist.ID,
			&playlist.OwnerID,
			&playlist.Title,
			&playlist.Description,
			&playlist.CoverImage,
			&playlist.Privacy,
			&playlist.IsGlobal,
			&playlist.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}
		playlists = append(playlists, &playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist rows: %w", err)
	}

	return playlists, nil
}
