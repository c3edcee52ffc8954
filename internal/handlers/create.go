package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/services"
)

// FeedbackCreator defines the interface that the service must implement.
type FeedbackCreator interface {
	Create(ctx context.Context, title, description, category, authorUsername string) (*models.Feedback, error)
}

// IdentityProvider resolves the acting username when the request body
// carries none.
type IdentityProvider interface {
	CurrentUsername(ctx context.Context, r *http.Request) (string, error)
}

// CreateFeedbackRequest represents the JSON body for submitting feedback
// swagger:model CreateFeedbackRequest
type CreateFeedbackRequest struct {
	// Title, 1-200 characters
	// required: true
	// default: Improved Vehicle Physics System
	Title string `json:"title"`

	// Description, 1-2000 characters
	// required: true
	Description string `json:"description"`

	// Category, one of GAMEPLAY, STORY, GRAPHICS, MULTIPLAYER, MECHANICS, WORLD
	// required: true
	// default: GAMEPLAY
	Category string `json:"category"`

	// Author username; resolved from the request identity when omitted
	// default: GTAFan2024
	AuthorUsername string `json:"authorUsername"`
}

// NewCreateFeedbackHandler returns an HTTP handler for submitting feedback.
// @Summary Submit feedback
// @Description Creates a new feedback item. The author is created on first use (find-or-create by username).
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body handlers.CreateFeedbackRequest true "Feedback submission"
// @Success 201 {object} models.Feedback "Created feedback"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/feedback [post]
func NewCreateFeedbackHandler(svc FeedbackCreator, who IdentityProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateFeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create feedback request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.AuthorUsername == "" && who != nil {
			if username, err := who.CurrentUsername(ctx, r); err == nil {
				req.AuthorUsername = username
			}
		}

		feedback, err := svc.Create(ctx, req.Title, req.Description, req.Category, req.AuthorUsername)
		if err != nil {
			if ve, ok := services.AsValidation(err); ok {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Validation failed", Details: ve.Fields})
				return
			}
			logger.Log.Errorw("failed to create feedback", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(feedback)
	}
}
