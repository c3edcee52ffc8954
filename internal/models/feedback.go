package models

import (
	"time"

	"github.com/google/uuid"
)

// Sort orders accepted by the feedback listing.
const (
	SortRecent  = "recent"  // createdAt descending (default)
	SortUpvotes = "upvotes" // upvoteCount descending
)

// FeedbackDB represents a feedback record in the database.
// UpvoteCount is a denormalized copy of the upvotes relation cardinality,
// adjusted in the same transaction as every upvote insert/delete.
type FeedbackDB struct {
	FeedbackID  uuid.UUID `json:"id" db:"feedback_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	UpvoteCount int       `json:"upvote_count" db:"upvote_count"`
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// UpvoteAggregate carries the live relation cardinality returned alongside
// each listed feedback item.
// swagger:model UpvoteAggregate
type UpvoteAggregate struct {
	// Number of upvote rows referencing the feedback
	// example: 156
	Upvotes int `json:"upvotes"`
}

// Feedback is the API projection of a feedback item with its author and
// comments attached.
// swagger:model Feedback
type Feedback struct {
	// Feedback id
	ID string `json:"id"`

	// Title
	// example: Dynamic Weather and Day/Night Cycle
	Title string `json:"title"`

	// Description
	Description string `json:"description"`

	// Category
	// example: WORLD
	Category string `json:"category"`

	// Denormalized upvote count
	UpvoteCount int `json:"upvoteCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Author id
	AuthorID string `json:"authorId"`

	Author   Author          `json:"author"`
	Comments []Comment       `json:"comments"`
	Count    UpvoteAggregate `json:"_count"`
}

// ListFilter describes one page of the feedback listing.
// Category is the normalized enum value or empty for no filter; Search is a
// case-insensitive substring matched against title and description.
type ListFilter struct {
	Category string
	Search   string
	SortBy   string
	Offset   int
	Limit    int
}
