package services

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/repositories"
)

// Input length limits in characters, mirrored by the store's varchar columns.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxCommentLen     = 1000
)

// UserProvider resolves usernames to user rows, creating them when absent.
type UserProvider interface {
	GetOrCreate(ctx context.Context, username string) (*models.UserDB, error)
}

// FeedbackWriter defines write operations for feedback items.
type FeedbackWriter interface {
	Save(ctx context.Context, title, description, category string, authorID uuid.UUID) (*models.FeedbackDB, error)
}

// FeedbackLister defines the paginated feedback listing.
type FeedbackLister interface {
	List(ctx context.Context, filter models.ListFilter) ([]repositories.FeedbackRow, int, error)
}

// CommentLister loads the comments of a set of feedback items.
type CommentLister interface {
	ListByFeedbackIDs(ctx context.Context, feedbackIDs []uuid.UUID) (map[uuid.UUID][]repositories.CommentRow, error)
}

// FeedbackService handles feedback creation and listing.
type FeedbackService struct {
	users       UserProvider
	writer      FeedbackWriter
	lister      FeedbackLister
	comments    CommentLister
	kafkaWriter KafkaWriter
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(
	users UserProvider,
	writer FeedbackWriter,
	lister FeedbackLister,
	comments CommentLister,
	kafkaWriter KafkaWriter,
) *FeedbackService {
	return &FeedbackService{
		users:       users,
		writer:      writer,
		lister:      lister,
		comments:    comments,
		kafkaWriter: kafkaWriter,
	}
}

// Create validates and stores a new feedback item, resolving the author by
// username with find-or-create semantics.
func (svc *FeedbackService) Create(ctx context.Context, title, description, category, authorUsername string) (*models.Feedback, error) {
	var fields []FieldError
	if title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "Title is required"})
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		fields = append(fields, FieldError{Field: "title", Message: "Title too long"})
	}
	if description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "Description is required"})
	} else if utf8.RuneCountInString(description) > maxDescriptionLen {
		fields = append(fields, FieldError{Field: "description", Message: "Description too long"})
	}
	normalized, ok := models.NormalizeCategory(category)
	if !ok {
		fields = append(fields, FieldError{Field: "category", Message: "Invalid category"})
	}
	if authorUsername == "" {
		fields = append(fields, FieldError{Field: "authorUsername", Message: "Username is required"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	user, err := svc.users.GetOrCreate(ctx, authorUsername)
	if err != nil {
		logger.Log.Errorw("failed to resolve author", "username", authorUsername, "err", err)
		return nil, err
	}

	fb, err := svc.writer.Save(ctx, title, description, normalized, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to save feedback", "title", title, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Type:       models.EventFeedbackCreated,
		FeedbackID: fb.FeedbackID.String(),
		UserID:     user.UserID.String(),
	})

	view := feedbackView(repositories.FeedbackRow{
		FeedbackDB:     *fb,
		AuthorUsername: user.Username,
		LiveUpvotes:    0,
	}, nil)

	return &view, nil
}

// List returns one page of feedback with authors and comments attached.
// An empty or "all" category disables the filter; an unknown category token
// matches nothing rather than erroring. Unknown sort orders are rejected.
func (svc *FeedbackService) List(ctx context.Context, category, search, sortBy string, page, limit int) ([]models.Feedback, models.Pagination, error) {
	if sortBy == "" {
		sortBy = models.SortRecent
	}
	if sortBy != models.SortRecent && sortBy != models.SortUpvotes {
		return nil, models.Pagination{}, &ValidationError{Fields: []FieldError{
			{Field: "sortBy", Message: "Invalid sort order"},
		}}
	}

	filter := models.ListFilter{
		Search: search,
		SortBy: sortBy,
	}
	if category != "" && category != models.CategoryAll {
		// Unknown tokens pass through upper-cased and match no rows.
		filter.Category, _ = models.NormalizeCategory(category)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	rows, total, err := svc.lister.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list feedback", "filter", filter, "err", err)
		return nil, models.Pagination{}, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.FeedbackID)
	}

	commentsByFeedback, err := svc.comments.ListByFeedbackIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load comments", "err", err)
		return nil, models.Pagination{}, err
	}

	items := make([]models.Feedback, 0, len(rows))
	for _, row := range rows {
		items = append(items, feedbackView(row, commentsByFeedback[row.FeedbackID]))
	}

	return items, models.NewPagination(page, limit, total), nil
}

// feedbackView assembles the API projection of one feedback row.
func feedbackView(row repositories.FeedbackRow, comments []repositories.CommentRow) models.Feedback {
	commentViews := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		commentViews = append(commentViews, commentView(c.CommentDB, c.AuthorUsername))
	}

	return models.Feedback{
		ID:          row.FeedbackID.String(),
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		UpvoteCount: row.UpvoteCount,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		AuthorID:    row.AuthorID.String(),
		Author: models.Author{
			ID:       row.AuthorID.String(),
			Username: row.AuthorUsername,
		},
		Comments: commentViews,
		Count:    models.UpvoteAggregate{Upvotes: row.LiveUpvotes},
	}
}

// commentView assembles the API projection of one comment row.
func commentView(c models.CommentDB, authorUsername string) models.Comment {
	return models.Comment{
		ID:         c.CommentID.String(),
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
		AuthorID:   c.AuthorID.String(),
		FeedbackID: c.FeedbackID.String(),
		Author: models.Author{
			ID:       c.AuthorID.String(),
			Username: authorUsername,
		},
	}
}
