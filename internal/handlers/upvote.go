package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/services"
)

// UpvoteToggler defines the interface that the service must implement.
type UpvoteToggler interface {
	ToggleUpvote(ctx context.Context, feedbackID uuid.UUID, username string) (bool, error)
}

// ToggleUpvoteRequest represents the JSON body for toggling an upvote
// swagger:model ToggleUpvoteRequest
type ToggleUpvoteRequest struct {
	// Username; resolved from the request identity when omitted
	// default: GTAFan2024
	Username string `json:"username"`
}

// ToggleUpvoteResponse represents the upvote toggle result
// swagger:model ToggleUpvoteResponse
type ToggleUpvoteResponse struct {
	// New upvote state for the (user, feedback) pair
	Upvoted bool `json:"upvoted"`

	// Human-readable result
	// default: Upvote added
	Message string `json:"message"`
}

// NewToggleUpvoteHandler returns an HTTP handler for the upvote toggle.
// The route must be wrapped in TxMiddleware: the upvote row mutation and
// the counter adjustment commit as one transaction.
// @Summary Toggle upvote
// @Description Adds the user's upvote when absent, removes it when present. Idempotent per repeated pair of calls.
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback id"
// @Param request body handlers.ToggleUpvoteRequest true "Upvote toggle request"
// @Success 200 {object} handlers.ToggleUpvoteResponse "New upvote state"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Feedback not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/feedback/{id}/upvote [post]
func NewToggleUpvoteHandler(svc UpvoteToggler, who IdentityProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		feedbackID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Feedback not found"})
			return
		}

		var req ToggleUpvoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode upvote request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" && who != nil {
			if username, err := who.CurrentUsername(ctx, r); err == nil {
				req.Username = username
			}
		}

		upvoted, err := svc.ToggleUpvote(ctx, feedbackID, req.Username)
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
			logger.Log.Errorw("failed to toggle upvote", "feedbackID", feedbackID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		message := "Upvote removed"
		if upvoted {
			message = "Upvote added"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ToggleUpvoteResponse{
			Upvoted: upvoted,
			Message: message,
		})
	}
}
