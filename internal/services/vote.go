package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// FeedbackReader reads single feedback rows.
type FeedbackReader interface {
	GetByID(ctx context.Context, feedbackID uuid.UUID) (*models.FeedbackDB, error)
}

// UpvoteCountAdjuster shifts the denormalized upvote count of a feedback row.
type UpvoteCountAdjuster interface {
	AdjustUpvoteCount(ctx context.Context, feedbackID uuid.UUID, delta int) error
}

// UpvoteWriter defines write operations for upvote rows.
type UpvoteWriter interface {
	Delete(ctx context.Context, userID, feedbackID uuid.UUID) (bool, error)
	Insert(ctx context.Context, userID, feedbackID uuid.UUID) (bool, error)
}

// UpvoteReader defines read operations for upvote rows.
type UpvoteReader interface {
	ListFeedbackIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// UserUpvotesCache caches per-user upvoted feedback id sets.
type UserUpvotesCache interface {
	GetUserUpvotes(ctx context.Context, username string) ([]string, error)
	SetUserUpvotes(ctx context.Context, username string, feedbackIDs []string) error
	InvalidateUserUpvotes(ctx context.Context, username string) error
}

// VoteService handles the upvote toggle and per-user upvote lookups.
type VoteService struct {
	users       UserProvider
	userReader  UserReader
	feedback    FeedbackReader
	counts      UpvoteCountAdjuster
	writer      UpvoteWriter
	reader      UpvoteReader
	cache       UserUpvotesCache
	kafkaWriter KafkaWriter
}

// NewVoteService creates a new VoteService instance.
func NewVoteService(
	users UserProvider,
	userReader UserReader,
	feedback FeedbackReader,
	counts UpvoteCountAdjuster,
	writer UpvoteWriter,
	reader UpvoteReader,
	cache UserUpvotesCache,
	kafkaWriter KafkaWriter,
) *VoteService {
	return &VoteService{
		users:       users,
		userReader:  userReader,
		feedback:    feedback,
		counts:      counts,
		writer:      writer,
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// ToggleUpvote flips the upvote state for the (user, feedback) pair and
// returns the new state. The caller must run it inside a transaction (the
// upvote route is wrapped in TxMiddleware) so the row mutation and the
// counter adjustment commit or roll back together.
//
// The count can never go negative: the decrement only runs after Delete
// confirmed a row within the same transaction. A duplicate insert lost to a
// concurrent toggle is absorbed as "already upvoted" rather than an error.
func (svc *VoteService) ToggleUpvote(ctx context.Context, feedbackID uuid.UUID, username string) (bool, error) {
	if username == "" {
		return false, &ValidationError{Fields: []FieldError{
			{Field: "username", Message: "Username is required"},
		}}
	}

	fb, err := svc.feedback.GetByID(ctx, feedbackID)
	if err != nil {
		logger.Log.Errorw("failed to read feedback", "feedbackID", feedbackID, "err", err)
		return false, err
	}
	if fb == nil {
		return false, ErrFeedbackNotFound
	}

	user, err := svc.users.GetOrCreate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "username", username, "err", err)
		return false, err
	}

	removed, err := svc.writer.Delete(ctx, user.UserID, feedbackID)
	if err != nil {
		logger.Log.Errorw("failed to delete upvote", "userID", user.UserID, "feedbackID", feedbackID, "err", err)
		return false, err
	}

	if removed {
		if err := svc.counts.AdjustUpvoteCount(ctx, feedbackID, -1); err != nil {
			logger.Log.Errorw("failed to decrement upvote count", "feedbackID", feedbackID, "err", err)
			return false, err
		}
		svc.invalidate(ctx, username)
		publishEvent(ctx, svc.kafkaWriter, models.Event{
			EventID:    uuid.NewString(),
			Timestamp:  time.Now().Unix(),
			Type:       models.EventUpvoteRemoved,
			FeedbackID: feedbackID.String(),
			UserID:     user.UserID.String(),
		})
		return false, nil
	}

	inserted, err := svc.writer.Insert(ctx, user.UserID, feedbackID)
	if err != nil {
		logger.Log.Errorw("failed to insert upvote", "userID", user.UserID, "feedbackID", feedbackID, "err", err)
		return false, err
	}

	if inserted {
		if err := svc.counts.AdjustUpvoteCount(ctx, feedbackID, 1); err != nil {
			logger.Log.Errorw("failed to increment upvote count", "feedbackID", feedbackID, "err", err)
			return false, err
		}
		publishEvent(ctx, svc.kafkaWriter, models.Event{
			EventID:    uuid.NewString(),
			Timestamp:  time.Now().Unix(),
			Type:       models.EventUpvoteAdded,
			FeedbackID: feedbackID.String(),
			UserID:     user.UserID.String(),
		})
	}
	// Not inserted means a concurrent toggle won the race; the pair is in
	// the upvoted state either way and the count was adjusted by the winner.

	svc.invalidate(ctx, username)
	return true, nil
}

// ListUserUpvotes returns the feedback ids the user has upvoted. A username
// that resolves to no user yields an empty set, not an error.
func (svc *VoteService) ListUserUpvotes(ctx context.Context, username string) ([]string, error) {
	if svc.cache != nil {
		if ids, err := svc.cache.GetUserUpvotes(ctx, username); err == nil {
			return ids, nil
		}
	}

	user, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to read user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return []string{}, nil
	}

	feedbackIDs, err := svc.reader.ListFeedbackIDsByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list upvotes", "userID", user.UserID, "err", err)
		return nil, err
	}

	ids := make([]string, 0, len(feedbackIDs))
	for _, id := range feedbackIDs {
		ids = append(ids, id.String())
	}

	if svc.cache != nil {
		if err := svc.cache.SetUserUpvotes(ctx, username, ids); err != nil {
			logger.Log.Errorw("failed to cache upvotes", "username", username, "err", err)
		}
	}

	return ids, nil
}

func (svc *VoteService) invalidate(ctx context.Context, username string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.InvalidateUserUpvotes(ctx, username); err != nil {
		logger.Log.Errorw("failed to invalidate upvotes cache", "username", username, "err", err)
	}
}
