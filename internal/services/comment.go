package services

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/repositories"
)

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, feedbackID, authorID uuid.UUID, content string) (*models.CommentDB, error)
}

// CommentService handles appending comments to feedback items.
type CommentService struct {
	users       UserProvider
	writer      CommentWriter
	kafkaWriter KafkaWriter
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(users UserProvider, writer CommentWriter, kafkaWriter KafkaWriter) *CommentService {
	return &CommentService{
		users:       users,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Add validates and stores a comment on a feedback item, resolving the
// author by username with find-or-create semantics. A missing feedback item
// surfaces as ErrFeedbackNotFound.
func (svc *CommentService) Add(ctx context.Context, feedbackID uuid.UUID, content, authorUsername string) (*models.Comment, error) {
	var fields []FieldError
	if content == "" {
		fields = append(fields, FieldError{Field: "content", Message: "Comment content is required"})
	} else if utf8.RuneCountInString(content) > maxCommentLen {
		fields = append(fields, FieldError{Field: "content", Message: "Comment too long"})
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

	comment, err := svc.writer.Save(ctx, feedbackID, user.UserID, content)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentFeedbackMissing) {
			return nil, ErrFeedbackNotFound
		}
		logger.Log.Errorw("failed to save comment", "feedbackID", feedbackID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Type:       models.EventCommentAdded,
		FeedbackID: feedbackID.String(),
		UserID:     user.UserID.String(),
	})

	view := commentView(*comment, user.Username)
	return &view, nil
}
