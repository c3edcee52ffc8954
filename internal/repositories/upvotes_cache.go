package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/feedback-board/internal/logger"
)

// UserUpvotesCacheRepository caches the set of feedback ids a user has
// upvoted, using Redis with a short TTL. Entries are invalidated on toggle.
type UserUpvotesCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached sets
}

// NewUserUpvotesCacheRepository creates a new repository instance with the given TTL
func NewUserUpvotesCacheRepository(client *redis.Client, expiration time.Duration) *UserUpvotesCacheRepository {
	return &UserUpvotesCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userUpvotesKey(username string) string {
	return fmt.Sprintf("user_upvotes:%s", username)
}

// GetUserUpvotes fetches the cached upvoted feedback ids for a username.
func (r *UserUpvotesCacheRepository) GetUserUpvotes(ctx context.Context, username string) ([]string, error) {
	key := userUpvotesKey(username)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("upvotes not found in cache for %s", username)
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(ids),
		"error", nil,
	)

	return ids, nil
}

// SetUserUpvotes caches the upvoted feedback ids for a username with expiration.
func (r *UserUpvotesCacheRepository) SetUserUpvotes(ctx context.Context, username string, feedbackIDs []string) error {
	key := userUpvotesKey(username)

	data, err := json.Marshal(feedbackIDs)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"ids", len(feedbackIDs),
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateUserUpvotes drops the cached set for a username.
func (r *UserUpvotesCacheRepository) InvalidateUserUpvotes(ctx context.Context, username string) error {
	key := userUpvotesKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
