package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/services"
)

// Pagination defaults for the feedback listing.
const (
	defaultPage  = 1
	defaultLimit = 20
)

// FeedbackLister defines the interface that the service must implement.
type FeedbackLister interface {
	List(ctx context.Context, category, search, sortBy string, page, limit int) ([]models.Feedback, models.Pagination, error)
}

// ListFeedbackResponse represents the feedback listing payload
// swagger:model ListFeedbackResponse
type ListFeedbackResponse struct {
	// One page of feedback items
	Feedbacks []models.Feedback `json:"feedbacks"`

	// Paging information
	Pagination models.Pagination `json:"pagination"`
}

// NewListFeedbackHandler returns an HTTP handler for the feedback listing.
// @Summary List feedback
// @Description Returns feedback filtered by category and search term, sorted by recency or upvotes, paginated.
// @Tags feedback
// @Produce json
// @Param category query string false "Category filter; 'all' or absent disables it"
// @Param search query string false "Case-insensitive substring matched against title and description"
// @Param sortBy query string false "Sort order: recent (default) or upvotes"
// @Param page query int false "1-indexed page, default 1"
// @Param limit query int false "Items per page, default 20"
// @Success 200 {object} handlers.ListFeedbackResponse "One page of feedback"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/feedback [get]
func NewListFeedbackHandler(svc FeedbackLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		page := defaultPage
		if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
			page = v
		}
		limit := defaultLimit
		if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
			limit = v
		}

		feedbacks, pagination, err := svc.List(ctx, q.Get("category"), q.Get("search"), q.Get("sortBy"), page, limit)
		if err != nil {
			if ve, ok := services.AsValidation(err); ok {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Validation failed", Details: ve.Fields})
				return
			}
			logger.Log.Errorw("failed to list feedback", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if feedbacks == nil {
			feedbacks = []models.Feedback{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListFeedbackResponse{
			Feedbacks:  feedbacks,
			Pagination: pagination,
		})
	}
}
