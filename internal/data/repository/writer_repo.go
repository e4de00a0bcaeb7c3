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

type WriterRepository interface {
	Create(ctx context.Context, writer *entity.Writer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Writer, error)
	FindAll(ctx context.Context) ([]*entity.Writer, error)
	FindRandom(ctx context.Context, limit int) ([]*entity.Writer, error)
	Search(ctx context.Context, q string) ([]*entity.Writer, error)
}

type writerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWriterRepository(db database.PgxIface, log *zap.Logger) WriterRepository {
	return &writerRepository{
		db:  db,
		log: log.With(zap.String("repository", "writer")),
	}
}

func (r *writerRepository) Create(ctx context.Context, writer *entity.Writer) error {
	query := `
		INSERT INTO writers (id, name, bio, image_path, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		writer.ID,
		writer.Name,
		writer.Bio,
		writer.ImagePath,
		writer.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create writer",
			zap.Error(err),
			zap.String("name", writer.Name),
		)
		return fmt.Errorf("create writer %s: %w", writer.Name, err)
	}

	return nil
}

func (r *writerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Writer, error) {
	query := `
		SELECT id, name, bio, image_path, created_at
		FROM writers
		WHERE id = $1
	`

	var writer entity.Writer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&writer.ID,
		&writer.Name,
		&writer.Bio,
		&writer.ImagePath,
		&writer.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find writer by ID",
			zap.Error(err),
			zap.String("writer_id", id.String()),
		)
		return nil, fmt.Errorf("find writer by ID %s: %w", id.String(), err)
	}

	return &writer, nil
}

func (r *writerRepository) FindAll(ctx context.Context) ([]*entity.Writer, error) {
	query := `
		SELECT id, name, bio, image_path, created_at
		FROM writers
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all writers", zap.Error(err))
		return nil, fmt.Errorf("find all writers: %w", err)
	}
	defer rows.Close()

	return scanWriters(rows)
}

func (r *writerRepository) FindRandom(ctx context.Context, limit int) ([]*entity.Writer, error) {
	query := `
		SELECT id, name, bio, image_path, created_at
		FROM writers
		ORDER BY RANDOM()
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to get random writers", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find random writers: %w", err)
	}
	defer rows.Close()

	return scanWriters(rows)
}

func (r *writerRepository) Search(ctx context.Context, q string) ([]*entity.Writer, error) {
	query := `
		SELECT id, name, bio, image_path, created_at
		FROM writers
		WHERE name ILIKE $1
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query, "%"+q+"%")
	if err != nil {
		r.log.Error("Failed to search writers", zap.Error(err), zap.String("q", q))
		return nil, fmt.Errorf("search writers %q: %w", q, err)
	}
	defer rows.Close()

	return scanWriters(rows)
}

func scanWriters(rows pgx.Rows) ([]*entity.Writer, error) {
	var writers []*entity.Writer
	for rows.Next() {
		var writer entity.Writer
		err := rows.Scan(
			&writer.ID,
			&writer.Name,
			&writer.Bio,
			&writer.ImagePath,
			&writer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan writer row: %w", err)
		}
		writers = append(writers, &writer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate writer rows: %w", err)
	}

	return writers, nil
}
