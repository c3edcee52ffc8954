package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
)

// pgForeignKeyViolation is the Postgres error code for a foreign key violation.
const pgForeignKeyViolation = "23503"

// ErrCommentFeedbackMissing is returned when a comment references a feedback
// row that does not exist.
var ErrCommentFeedbackMissing = errors.New("feedback referenced by comment does not exist")

// CommentRow is one comment with its author joined.
type CommentRow struct {
	models.CommentDB
	AuthorUsername string `db:"author_username"`
}

// CommentWriteRepository handles comment write operations
type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a comment row. A missing feedback row surfaces as
// ErrCommentFeedbackMissing via the foreign key constraint.
func (r *CommentWriteRepository) Save(ctx context.Context, feedbackID, authorID uuid.UUID, content string) (*models.CommentDB, error) {
	query := `
		INSERT INTO comments (comment_id, content, author_id, feedback_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING comment_id, content, author_id, feedback_id, created_at
	`
	args := []any{uuid.New(), content, authorID, feedbackID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, executor, &comment, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", comment,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, ErrCommentFeedbackMissing
		}
		return nil, err
	}

	return &comment, nil
}

// CommentReadRepository handles comment read operations
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByFeedbackIDs returns the comments of the given feedback items keyed
// by feedback id, each list ordered oldest first.
func (r *CommentReadRepository) ListByFeedbackIDs(ctx context.Context, feedbackIDs []uuid.UUID) (map[uuid.UUID][]CommentRow, error) {
	grouped := make(map[uuid.UUID][]CommentRow, len(feedbackIDs))
	if len(feedbackIDs) == 0 {
		return grouped, nil
	}

	query, args, err := sqlx.In(`
		SELECT c.comment_id, c.content, c.author_id, c.feedback_id, c.created_at,
		       u.username AS author_username
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.feedback_id IN (?)
		ORDER BY c.created_at ASC
	`, feedbackIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var rows []CommentRow
	err = r.db.SelectContext(ctx, &rows, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.FeedbackID] = append(grouped[row.FeedbackID], row)
	}

	return grouped, nil
}
