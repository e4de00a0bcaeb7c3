package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTP holds only the bcrypt hash of the 6-digit code, never the code itself.
type OTP struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	OTPHash   string    `db:"otp_hash"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (o *OTP) IsExpired(at time.Time) bool {
	return at.After(o.ExpiresAt)
}
