package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	BaseSimple
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password"`
	DOB            *time.Time `db:"dob"`
	Gender         *string    `db:"gender"`
	PreferredGenre *string    `db:"preferred_genre"`
	IsVerified     bool       `db:"is_verified"`
	Role           UserRole   `db:"role"`
}
