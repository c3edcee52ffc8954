package models

import (
	"time"

	"github.com/google/uuid"
)

// UpvoteDB represents an upvote record in the database.
// At most one row exists per (user_id, feedback_id) pair, enforced by a
// uniqueness constraint.
type UpvoteDB struct {
	UpvoteID   uuid.UUID `json:"id" db:"upvote_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	FeedbackID uuid.UUID `json:"feedback_id" db:"feedback_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
