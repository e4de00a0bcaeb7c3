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

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTP) error
	// FindLatestByUser returns the most-recently-issued code for the
	// user; older codes are never considered valid.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.OTP, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	query := `
		INSERT INTO otps (id, user_id, otp_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.UserID,
		otp.OTPHash,
		otp.ExpiresAt,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("user_id", otp.UserID.String()),
		)
		return fmt.Errorf("create OTP for user %s: %w", otp.UserID.String(), err)
	}

	return nil
}

func (r *otpRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.OTP, error) {
	query := `
		SELECT id, user_id, otp_hash, expires_at, created_at
		FROM otps
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&otp.ID,
		&otp.UserID,
		&otp.OTPHash,
		&otp.ExpiresAt,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest OTP",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find latest OTP for user %s: %w", userID.String(), err)
	}

	return &otp, nil
}

func (r *otpRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM otps WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete OTPs",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete OTPs for user %s: %w", userID.String(), err)
	}

	return nil
}
