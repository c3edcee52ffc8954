package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
)

// FeedbackRow is one listed feedback item with its author joined and the
// live cardinality of the upvotes relation.
type FeedbackRow struct {
	models.FeedbackDB
	AuthorUsername string `db:"author_username"`
	LiveUpvotes    int    `db:"live_upvotes"`
}

// FeedbackWriteRepository handles feedback write operations
type FeedbackWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFeedbackWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FeedbackWriteRepository {
	return &FeedbackWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a feedback row with a zero upvote count.
func (r *FeedbackWriteRepository) Save(ctx context.Context, title, description, category string, authorID uuid.UUID) (*models.FeedbackDB, error) {
	query := `
		INSERT INTO feedback (feedback_id, title, description, category, upvote_count, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, NOW(), NOW())
		RETURNING feedback_id, title, description, category, upvote_count, author_id, created_at, updated_at
	`
	args := []any{uuid.New(), title, description, category, authorID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var fb models.FeedbackDB
	err := sqlx.GetContext(ctx, executor, &fb, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", fb,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &fb, nil
}

// AdjustUpvoteCount shifts the denormalized upvote count by delta. Callers
// must run it in the same transaction as the upvote row mutation it mirrors.
func (r *FeedbackWriteRepository) AdjustUpvoteCount(ctx context.Context, feedbackID uuid.UUID, delta int) error {
	query := `
		UPDATE feedback
		SET upvote_count = upvote_count + $2, updated_at = NOW()
		WHERE feedback_id = $1
	`
	args := []any{feedbackID, delta}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// FeedbackReadRepository handles feedback read operations
type FeedbackReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFeedbackReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FeedbackReadRepository {
	return &FeedbackReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the feedback with the given id, or nil when absent.
func (r *FeedbackReadRepository) GetByID(ctx context.Context, feedbackID uuid.UUID) (*models.FeedbackDB, error) {
	const query = `
		SELECT feedback_id, title, description, category, upvote_count, author_id, created_at, updated_at
		FROM feedback
		WHERE feedback_id = $1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var fb models.FeedbackDB
	err := sqlx.GetContext(ctx, executor, &fb, query, feedbackID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{feedbackID},
		"result", fb,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &fb, nil
}

// likeEscaper neutralizes LIKE metacharacters so a search term always
// matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List returns one page of feedback matching the filter plus the total
// matching count. Category and search are optional; empty strings disable
// the corresponding predicate.
func (r *FeedbackReadRepository) List(ctx context.Context, filter models.ListFilter) ([]FeedbackRow, int, error) {
	const query = `
		SELECT f.feedback_id, f.title, f.description, f.category, f.upvote_count,
		       f.author_id, f.created_at, f.updated_at,
		       u.username AS author_username,
		       (SELECT COUNT(*) FROM upvotes up WHERE up.feedback_id = f.feedback_id) AS live_upvotes
		FROM feedback f
		JOIN users u ON u.user_id = f.author_id
		WHERE ($1 = '' OR f.category = $1)
		  AND ($2 = '' OR f.title ILIKE '%' || $2 || '%' ESCAPE '\' OR f.description ILIKE '%' || $2 || '%' ESCAPE '\')
		ORDER BY CASE WHEN $3 = 'upvotes' THEN f.upvote_count END DESC,
		         f.created_at DESC
		LIMIT $4 OFFSET $5
	`
	search := likeEscaper.Replace(filter.Search)
	args := []any{filter.Category, search, filter.SortBy, filter.Limit, filter.Offset}

	var rows []FeedbackRow
	err := r.db.SelectContext(ctx, &rows, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	const countQuery = `
		SELECT COUNT(*)
		FROM feedback f
		WHERE ($1 = '' OR f.category = $1)
		  AND ($2 = '' OR f.title ILIKE '%' || $2 || '%' ESCAPE '\' OR f.description ILIKE '%' || $2 || '%' ESCAPE '\')
	`

	var total int
	err = r.db.GetContext(ctx, &total, countQuery, filter.Category, search)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(countQuery), " "),
		"args", []any{filter.Category, search},
		"result", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
