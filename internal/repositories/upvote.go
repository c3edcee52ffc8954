package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
)

// UpvoteWriteRepository handles upvote write operations
type UpvoteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUpvoteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UpvoteWriteRepository {
	return &UpvoteWriteRepository{db: db, txGetter: txGetter}
}

// Delete removes the upvote for the (user, feedback) pair and reports
// whether a row existed. Callers adjust the denormalized count only when it
// returns true, within the same transaction.
func (r *UpvoteWriteRepository) Delete(ctx context.Context, userID, feedbackID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM upvotes
		WHERE user_id = $1 AND feedback_id = $2
	`
	args := []any{userID, feedbackID}

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

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Insert adds an upvote for the (user, feedback) pair and reports whether a
// row was actually written. ON CONFLICT DO NOTHING absorbs the duplicate
// race: a concurrent toggle that lost the insert reports false instead of a
// constraint error.
func (r *UpvoteWriteRepository) Insert(ctx context.Context, userID, feedbackID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO upvotes (upvote_id, user_id, feedback_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, feedback_id) DO NOTHING
	`
	args := []any{uuid.New(), userID, feedbackID}

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

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// UpvoteReadRepository handles upvote read operations
type UpvoteReadRepository struct {
	db *sqlx.DB
}

func NewUpvoteReadRepository(db *sqlx.DB) *UpvoteReadRepository {
	return &UpvoteReadRepository{db: db}
}

// ListFeedbackIDsByUserID returns the feedback ids the user has upvoted,
// sorted for a stable payload.
func (r *UpvoteReadRepository) ListFeedbackIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT upvote_id, user_id, feedback_id, created_at
		FROM upvotes
		WHERE user_id = $1
		ORDER BY feedback_id
	`

	var rows []models.UpvoteDB
	err := r.db.SelectContext(ctx, &rows, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.FeedbackID)
	}

	return ids, nil
}
