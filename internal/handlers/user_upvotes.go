package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/feedback-board/internal/logger"
)

// UserUpvotesLister defines the interface that the service must implement.
type UserUpvotesLister interface {
	ListUserUpvotes(ctx context.Context, username string) ([]string, error)
}

// UserUpvotesResponse represents the set of feedback ids a user has upvoted
// swagger:model UserUpvotesResponse
type UserUpvotesResponse struct {
	// Feedback ids the user has upvoted; empty for unknown users
	UpvotedFeedbackIDs []string `json:"upvotedFeedbackIds"`
}

// NewUserUpvotesHandler returns an HTTP handler for a user's upvoted feedback ids.
// @Summary List user upvotes
// @Description Returns the feedback ids the user has upvoted. A never-seen username yields an empty set.
// @Tags user
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.UserUpvotesResponse "Upvoted feedback ids"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/user/{username}/upvotes [get]
func NewUserUpvotesHandler(svc UserUpvotesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := chi.URLParam(r, "username")

		ids, err := svc.ListUserUpvotes(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to list user upvotes", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if ids == nil {
			ids = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserUpvotesResponse{UpvotedFeedbackIDs: ids})
	}
}
