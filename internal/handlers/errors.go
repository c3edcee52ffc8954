package handlers

import "github.com/sbilibin2017/feedback-board/internal/services"

// ErrorResponse is the error payload shared by all endpoints. Details is
// populated for validation failures only.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Short error message
	// default: Validation failed
	Error string `json:"error"`

	// Field-level problems, present on validation failures
	Details []services.FieldError `json:"details,omitempty"`
}
