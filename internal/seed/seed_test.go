package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/sbilibin2017/feedback-board/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestRun_InsertsSampleCorpus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserCreator(ctrl)
	feedbackWriter := NewMockFeedbackSaver(ctrl)
	feedbackReader := NewMockFeedbackCounter(ctrl)
	comments := NewMockCommentSaver(ctrl)
	upvotes := NewMockUpvoteSaver(ctrl)

	feedbackReader.EXPECT().
		List(gomock.Any(), models.ListFilter{Limit: 1}).
		Return(nil, 0, nil)

	emails := map[string]string{
		"GTAFan2024":    "gtafan@example.com",
		"ViceCityLover": "vicecity@example.com",
		"RockstarDev":   "dev@rockstar.com",
	}
	for username, email := range emails {
		userID := uuid.New()
		users.EXPECT().
			GetOrCreate(gomock.Any(), username).
			Return(&models.UserDB{UserID: userID, Username: username}, nil)
		users.EXPECT().
			SetEmail(gomock.Any(), userID, email).
			Return(nil)
	}

	feedbackWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, title, description, category string, authorID uuid.UUID) (*models.FeedbackDB, error) {
			return &models.FeedbackDB{
				FeedbackID: uuid.New(),
				Title:      title,
				Category:   category,
				AuthorID:   authorID,
			}, nil
		}).
		Times(4)

	comments.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.CommentDB{CommentID: uuid.New()}, nil).
		Times(5)

	upvotes.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(6)

	feedbackWriter.EXPECT().
		AdjustUpvoteCount(gomock.Any(), gomock.Any(), 1).
		Return(nil).
		Times(6)

	err := Run(context.Background(), users, feedbackWriter, feedbackReader, comments, upvotes)
	assert.NoError(t, err)
}

func TestRun_SkipsWhenFeedbackPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserCreator(ctrl)
	feedbackWriter := NewMockFeedbackSaver(ctrl)
	feedbackReader := NewMockFeedbackCounter(ctrl)
	comments := NewMockCommentSaver(ctrl)
	upvotes := NewMockUpvoteSaver(ctrl)

	feedbackReader.EXPECT().
		List(gomock.Any(), models.ListFilter{Limit: 1}).
		Return([]repositories.FeedbackRow{{}}, 4, nil)

	err := Run(context.Background(), users, feedbackWriter, feedbackReader, comments, upvotes)
	assert.NoError(t, err)
}

func TestRun_DuplicateUpvoteDoesNotAdjustCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserCreator(ctrl)
	feedbackWriter := NewMockFeedbackSaver(ctrl)
	feedbackReader := NewMockFeedbackCounter(ctrl)
	comments := NewMockCommentSaver(ctrl)
	upvotes := NewMockUpvoteSaver(ctrl)

	feedbackReader.EXPECT().
		List(gomock.Any(), models.ListFilter{Limit: 1}).
		Return(nil, 0, nil)

	users.EXPECT().
		GetOrCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, username string) (*models.UserDB, error) {
			return &models.UserDB{UserID: uuid.New(), Username: username}, nil
		}).
		Times(3)

	users.EXPECT().
		SetEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)

	feedbackWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.FeedbackDB{FeedbackID: uuid.New()}, nil).
		Times(4)

	comments.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.CommentDB{}, nil).
		Times(5)

	// every upvote reported as already present: no count adjustments
	upvotes.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(6)

	err := Run(context.Background(), users, feedbackWriter, feedbackReader, comments, upvotes)
	assert.NoError(t, err)
}

func TestRun_UserError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserCreator(ctrl)
	feedbackWriter := NewMockFeedbackSaver(ctrl)
	feedbackReader := NewMockFeedbackCounter(ctrl)
	comments := NewMockCommentSaver(ctrl)
	upvotes := NewMockUpvoteSaver(ctrl)

	feedbackReader.EXPECT().
		List(gomock.Any(), models.ListFilter{Limit: 1}).
		Return(nil, 0, nil)

	users.EXPECT().
		GetOrCreate(gomock.Any(), "GTAFan2024").
		Return(nil, errors.New("database failure"))

	err := Run(context.Background(), users, feedbackWriter, feedbackReader, comments, upvotes)
	assert.Error(t, err)
}
