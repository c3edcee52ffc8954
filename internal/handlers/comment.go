package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/services"
)

// CommentAdder defines the interface that the service must implement.
type CommentAdder interface {
	Add(ctx context.Context, feedbackID uuid.UUID, content, authorUsername string) (*models.Comment, error)
}

// AddCommentRequest represents the JSON body for adding a comment
// swagger:model AddCommentRequest
type AddCommentRequest struct {
	// Content, 1-1000 characters
	// required: true
	// default: This would make the game so much more immersive!
	Content string `json:"content"`

	// Author username; resolved from the request identity when omitted
	// default: ViceCityLover
	AuthorUsername string `json:"authorUsername"`
}

// NewAddCommentHandler returns an HTTP handler for commenting on feedback.
// @Summary Add comment
// @Description Appends an immutable comment to a feedback item. The author is created on first use.
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback id"
// @Param request body handlers.AddCommentRequest true "Comment request"
// @Success 201 {object} models.Comment "Created comment"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Feedback not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/feedback/{id}/comments [post]
func NewAddCommentHandler(svc CommentAdder, who IdentityProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		feedbackID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Feedback not found"})
			return
		}

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode comment request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.AuthorUsername == "" && who != nil {
			if username, err := who.CurrentUsername(ctx, r); err == nil {
				req.AuthorUsername = username
			}
		}

		comment, err := svc.Add(ctx, feedbackID, req.Content, req.AuthorUsername)
		if err != nil {
			if ve, ok := services.AsValidation(err); ok {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Validation failed", Details: ve.Fields})
				return
			}
			if errors.Is(err, services.ErrFeedbackNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Feedback not found"})
				return
			}
			logger.Log.Errorw("failed to add comment", "feedbackID", feedbackID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(comment)
	}
}
