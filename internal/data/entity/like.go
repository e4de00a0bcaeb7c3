package entity

import "github.com/google/uuid"

// Like existence means "user liked story". (user_id, story_id) is
// unique at the schema level.
type Like struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	StoryID uuid.UUID `db:"story_id"`
}
