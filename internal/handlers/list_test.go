package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListFeedbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedbacks := []models.Feedback{
		{
			ID:          uuid.New().String(),
			Title:       "Dynamic Weather and Day/Night Cycle",
			Category:    "WORLD",
			UpvoteCount: 156,
			Comments:    []models.Comment{},
			Count:       models.UpvoteAggregate{Upvotes: 156},
		},
		{
			ID:          uuid.New().String(),
			Title:       "Improved Vehicle Physics System",
			Category:    "GAMEPLAY",
			UpvoteCount: 47,
			Comments:    []models.Comment{},
			Count:       models.UpvoteAggregate{Upvotes: 47},
		},
	}

	tests := []struct {
		name          string
		query         string
		mockSetup     func(m *MockFeedbackLister)
		expectedCode  int
		expectedErr   string
		expectedCount int
	}{
		{
			name:  "success with defaults",
			query: "",
			mockSetup: func(m *MockFeedbackLister) {
				m.EXPECT().
					List(gomock.Any(), "", "", "", 1, 20).
					Return(feedbacks, models.Pagination{Page: 1, Limit: 20, Total: 2, Pages: 1}, nil)
			},
			expectedCode:  200,
			expectedCount: 2,
		},
		{
			name:  "query parameters forwarded",
			query: "?category=WORLD&search=weather&sortBy=upvotes&page=2&limit=5",
			mockSetup: func(m *MockFeedbackLister) {
				m.EXPECT().
					List(gomock.Any(), "WORLD", "weather", "upvotes", 2, 5).
					Return(feedbacks[:1], models.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2}, nil)
			},
			expectedCode:  200,
			expectedCount: 1,
		},
		{
			name:  "non-numeric paging falls back to defaults",
			query: "?page=abc&limit=-3",
			mockSetup: func(m *MockFeedbackLister) {
				m.EXPECT().
					List(gomock.Any(), "", "", "", 1, 20).
					Return(nil, models.Pagination{Page: 1, Limit: 20}, nil)
			},
			expectedCode:  200,
			expectedCount: 0,
		},
		{
			name:  "invalid sort",
			query: "?sortBy=oldest",
			mockSetup: func(m *MockFeedbackLister) {
				m.EXPECT().
					List(gomock.Any(), "", "", "oldest", 1, 20).
					Return(nil, models.Pagination{}, &services.ValidationError{Fields: []services.FieldError{
						{Field: "sortBy", Message: "Unknown sort order"},
					}})
			},
			expectedCode: 400,
			expectedErr:  "Validation failed",
		},
		{
			name:  "internal server error",
			query: "",
			mockSetup: func(m *MockFeedbackLister) {
				m.EXPECT().
					List(gomock.Any(), "", "", "", 1, 20).
					Return(nil, models.Pagination{}, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFeedbackLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListFeedbackHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/feedback"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp ListFeedbackResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.NotNil(t, resp.Feedbacks)
			assert.Len(t, resp.Feedbacks, tt.expectedCount)
		})
	}
}
