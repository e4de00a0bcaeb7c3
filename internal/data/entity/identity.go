package entity

import "github.com/google/uuid"

// Identity is the authenticated user context attached to a request.
// A zero Identity means the request is anonymous.
type Identity struct {
	UserID uuid.UUID `json:"id"`
	Role   UserRole  `json:"role"`
	Name   string    `json:"name"`
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != uuid.Nil
}

func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && i.Role == RoleAdmin
}

func IdentityOf(u *User) Identity {
	return Identity{
		UserID: u.ID,
		Role:   u.Role,
		Name:   u.Name,
	}
}
