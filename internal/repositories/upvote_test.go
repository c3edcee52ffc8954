package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUpvoteWriteRepository_InsertAndDelete(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db, noTx)
	feedback := NewFeedbackWriteRepository(db, noTx)
	repo := NewUpvoteWriteRepository(db, noTx)

	author, err := users.GetOrCreate(ctx, "GTAFan2024")
	assert.NoError(t, err)
	voter, err := users.GetOrCreate(ctx, "ViceCityLover")
	assert.NoError(t, err)
	fb, err := feedback.Save(ctx, "Improved Vehicle Physics System", "More realistic driving.", models.CategoryGameplay, author.UserID)
	assert.NoError(t, err)

	t.Run("InsertNew", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, voter.UserID, fb.FeedbackID)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("InsertDuplicateAbsorbed", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, voter.UserID, fb.FeedbackID)
		assert.NoError(t, err)
		assert.False(t, inserted)

		var count int
		err = db.Get(&count, "SELECT COUNT(*) FROM upvotes WHERE user_id=$1 AND feedback_id=$2", voter.UserID, fb.FeedbackID)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("DeleteExisting", func(t *testing.T) {
		existed, err := repo.Delete(ctx, voter.UserID, fb.FeedbackID)
		assert.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("DeleteAbsent", func(t *testing.T) {
		existed, err := repo.Delete(ctx, voter.UserID, fb.FeedbackID)
		assert.NoError(t, err)
		assert.False(t, existed)
	})
}

func TestUpvoteReadRepository_ListFeedbackIDsByUserID(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db, noTx)
	feedback := NewFeedbackWriteRepository(db, noTx)
	writeRepo := NewUpvoteWriteRepository(db, noTx)
	readRepo := NewUpvoteReadRepository(db)

	author, err := users.GetOrCreate(ctx, "GTAFan2024")
	assert.NoError(t, err)
	voter, err := users.GetOrCreate(ctx, "RockstarDev")
	assert.NoError(t, err)

	fb1, err := feedback.Save(ctx, "Dynamic Weather and Day/Night Cycle", "Weather should affect gameplay.", models.CategoryWorld, author.UserID)
	assert.NoError(t, err)
	fb2, err := feedback.Save(ctx, "Branching Storyline Paths", "Multiple story paths.", models.CategoryStory, author.UserID)
	assert.NoError(t, err)

	_, err = writeRepo.Insert(ctx, voter.UserID, fb1.FeedbackID)
	assert.NoError(t, err)
	_, err = writeRepo.Insert(ctx, voter.UserID, fb2.FeedbackID)
	assert.NoError(t, err)

	ids, err := readRepo.ListFeedbackIDsByUserID(ctx, voter.UserID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{fb1.FeedbackID.String(), fb2.FeedbackID.String()}, []string{ids[0].String(), ids[1].String()})

	t.Run("NoUpvotes", func(t *testing.T) {
		ids, err := readRepo.ListFeedbackIDsByUserID(ctx, author.UserID)
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})
}
