package response

import (
	"goppo-soppo/internal/data/entity"
)

// SessionUser is the identity the client sees: what the session stores,
// nothing more.
type SessionUser struct {
	ID   string          `json:"id"`
	Role entity.UserRole `json:"role"`
	Name string          `json:"name"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type AuthResponse struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token,omitempty"`
}

type MeResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *SessionUser `json:"user,omitempty"`
}

// Helper converters

func IdentityToSessionUser(identity entity.Identity) SessionUser {
	return SessionUser{
		ID:   identity.UserID.String(),
		Role: identity.Role,
		Name: identity.Name,
	}
}
