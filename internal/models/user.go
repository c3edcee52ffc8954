package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username  string    `json:"username" db:"username"`     // Unique username
	Email     *string   `json:"email" db:"email"`           // Optional email
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Author is the public projection of a user attached to feedback and comments.
// Email is intentionally never exposed here.
// swagger:model Author
type Author struct {
	// User id
	ID string `json:"id"`

	// Username
	// example: GTAFan2024
	Username string `json:"username"`
}
