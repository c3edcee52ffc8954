package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/feedback-board/internal/models"
	"github.com/stretchr/testify/assert"
)

func seedListCorpus(t *testing.T, db *sqlx.DB) map[string]*models.FeedbackDB {
	t.Helper()

	ctx := context.Background()
	users := NewUserWriteRepository(db, noTx)
	feedback := NewFeedbackWriteRepository(db, noTx)
	upvotes := NewUpvoteWriteRepository(db, noTx)

	fan, err := users.GetOrCreate(ctx, "GTAFan2024")
	assert.NoError(t, err)
	lover, err := users.GetOrCreate(ctx, "ViceCityLover")
	assert.NoError(t, err)
	dev, err := users.GetOrCreate(ctx, "RockstarDev")
	assert.NoError(t, err)

	items := map[string]*models.FeedbackDB{}

	type entry struct {
		title       string
		description string
		category    string
		author      uuid.UUID
		upvoters    []uuid.UUID
	}
	for _, e := range []entry{
		{"Improved Vehicle Physics System", "More realistic driving mechanics.", models.CategoryGameplay, fan.UserID, []uuid.UUID{lover.UserID}},
		{"Enhanced Character Customization", "More detailed character creation options.", models.CategoryGraphics, lover.UserID, []uuid.UUID{fan.UserID}},
		{"Dynamic Weather and Day/Night Cycle", "Weather should affect gameplay.", models.CategoryWorld, fan.UserID, []uuid.UUID{lover.UserID, dev.UserID, fan.UserID}},
		{"Branching Storyline Paths", "Multiple story paths based on player choices.", models.CategoryStory, lover.UserID, []uuid.UUID{fan.UserID, dev.UserID}},
	} {
		fb, err := feedback.Save(ctx, e.title, e.description, e.category, e.author)
		assert.NoError(t, err)
		for _, voter := range e.upvoters {
			inserted, err := upvotes.Insert(ctx, voter, fb.FeedbackID)
			assert.NoError(t, err)
			assert.True(t, inserted)
			assert.NoError(t, feedback.AdjustUpvoteCount(ctx, fb.FeedbackID, 1))
		}
		items[e.title] = fb
	}

	return items
}

func TestFeedbackWriteRepository_Save(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db, noTx)
	repo := NewFeedbackWriteRepository(db, noTx)

	author, err := users.GetOrCreate(ctx, "GTAFan2024")
	assert.NoError(t, err)

	fb, err := repo.Save(ctx, "Improved Vehicle Physics System", "More realistic driving mechanics.", models.CategoryGameplay, author.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, fb)
	assert.Equal(t, 0, fb.UpvoteCount)
	assert.Equal(t, author.UserID, fb.AuthorID)
	assert.NotEqual(t, uuid.Nil, fb.FeedbackID)
}

func TestFeedbackWriteRepository_AdjustUpvoteCount(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db, noTx)
	repo := NewFeedbackWriteRepository(db, noTx)
	readRepo := NewFeedbackReadRepository(db, noTx)

	author, err := users.GetOrCreate(ctx, "GTAFan2024")
	assert.NoError(t, err)
	fb, err := repo.Save(ctx, "Branching Storyline Paths", "Multiple story paths.", models.CategoryStory, author.UserID)
	assert.NoError(t, err)

	assert.NoError(t, repo.AdjustUpvoteCount(ctx, fb.FeedbackID, 1))
	assert.NoError(t, repo.AdjustUpvoteCount(ctx, fb.FeedbackID, 1))
	assert.NoError(t, repo.AdjustUpvoteCount(ctx, fb.FeedbackID, -1))

	got, err := readRepo.GetByID(ctx, fb.FeedbackID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, 1, got.UpvoteCount)
}

func TestFeedbackReadRepository_GetByID(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db, noTx)
	writeRepo := NewFeedbackWriteRepository(db, noTx)
	readRepo := NewFeedbackReadRepository(db, noTx)

	author, err := users.GetOrCreate(ctx, "ViceCityLover")
	assert.NoError(t, err)
	fb, err := writeRepo.Save(ctx, "Enhanced Character Customization", "More options.", models.CategoryGraphics, author.UserID)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, fb.FeedbackID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, fb.Title, got.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `50\%`, likeEscaper.Replace("50%"))
	assert.Equal(t, `a\_c`, likeEscaper.Replace("a_c"))
	assert.Equal(t, `back\\slash`, likeEscaper.Replace(`back\slash`))
	assert.Equal(t, "plain term", likeEscaper.Replace("plain term"))
}

func TestFeedbackReadRepository_List(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	seedListCorpus(t, db)
	repo := NewFeedbackReadRepository(db, noTx)

	t.Run("NoFilter", func(t *testing.T) {
		rows, total, err := repo.List(ctx, models.ListFilter{Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, rows, 4)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		rows, total, err := repo.List(ctx, models.ListFilter{Category: models.CategoryWorld, Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Dynamic Weather and Day/Night Cycle", rows[0].Title)
		assert.Equal(t, "GTAFan2024", rows[0].AuthorUsername)
		assert.Equal(t, 3, rows[0].LiveUpvotes)
	})

	t.Run("UnknownCategoryMatchesNothing", func(t *testing.T) {
		rows, total, err := repo.List(ctx, models.ListFilter{Category: "SOUNDTRACK", Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, rows)
	})

	t.Run("SearchMatchesTitleAndDescription", func(t *testing.T) {
		rows, total, err := repo.List(ctx, models.ListFilter{Search: "weather", Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, rows, 1)

		// matched in the description only
		rows, total, err = repo.List(ctx, models.ListFilter{Search: "PLAYER CHOICES", Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Branching Storyline Paths", rows[0].Title)
	})

	t.Run("SearchMetacharactersMatchLiterally", func(t *testing.T) {
		// "_" would match any single character if passed through as a
		// LIKE wildcard; no title or description contains "V_hicle"
		rows, total, err := repo.List(ctx, models.ListFilter{Search: "V_hicle", Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, rows)

		// same for "%": "Physics%System" is not a literal substring
		rows, total, err = repo.List(ctx, models.ListFilter{Search: "Physics%System", Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, rows)

		_, total, err = repo.List(ctx, models.ListFilter{Search: "Vehicle", Limit: 20})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("SortByUpvotes", func(t *testing.T) {
		rows, _, err := repo.List(ctx, models.ListFilter{SortBy: models.SortUpvotes, Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, rows, 4)
		assert.Equal(t, "Dynamic Weather and Day/Night Cycle", rows[0].Title)
		assert.Equal(t, "Branching Storyline Paths", rows[1].Title)
		for i := 1; i < len(rows); i++ {
			assert.GreaterOrEqual(t, rows[i-1].UpvoteCount, rows[i].UpvoteCount)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		first, total, err := repo.List(ctx, models.ListFilter{Limit: 2})
		assert.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, first, 2)

		second, total, err := repo.List(ctx, models.ListFilter{Limit: 2, Offset: 2})
		assert.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, second, 2)

		assert.NotEqual(t, first[0].FeedbackID, second[0].FeedbackID)

		third, total, err := repo.List(ctx, models.ListFilter{Limit: 2, Offset: 4})
		assert.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Empty(t, third)
	})
}
