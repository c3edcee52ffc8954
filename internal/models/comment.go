package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment record in the database.
// Comments are immutable once created.
type CommentDB struct {
	CommentID  uuid.UUID `json:"id" db:"comment_id"`
	Content    string    `json:"content" db:"content"`
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	FeedbackID uuid.UUID `json:"feedback_id" db:"feedback_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Comment is the API projection of a comment with its author attached.
// swagger:model Comment
type Comment struct {
	// Comment id
	ID string `json:"id"`

	// Content
	// example: Weather effects on gameplay would be amazing.
	Content string `json:"content"`

	CreatedAt time.Time `json:"createdAt"`

	// Author id
	AuthorID string `json:"authorId"`

	// Feedback id the comment belongs to
	FeedbackID string `json:"feedbackId"`

	Author Author `json:"author"`
}
