package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestUserUpvotesCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewUserUpvotesCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get upvoted ids", func(t *testing.T) {
		ids := []string{uuid.New().String(), uuid.New().String()}

		err := repo.SetUserUpvotes(ctx, "GTAFan2024", ids)
		assert.NoError(t, err)

		got, err := repo.GetUserUpvotes(ctx, "GTAFan2024")
		assert.NoError(t, err)
		assert.Equal(t, ids, got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.GetUserUpvotes(ctx, "nobody")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upvotes not found")
	})

	t.Run("Empty set round-trips", func(t *testing.T) {
		err := repo.SetUserUpvotes(ctx, "ViceCityLover", []string{})
		assert.NoError(t, err)

		got, err := repo.GetUserUpvotes(ctx, "ViceCityLover")
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Invalidate drops the set", func(t *testing.T) {
		ids := []string{uuid.New().String()}
		err := repo.SetUserUpvotes(ctx, "RockstarDev", ids)
		assert.NoError(t, err)

		err = repo.InvalidateUserUpvotes(ctx, "RockstarDev")
		assert.NoError(t, err)

		_, err = repo.GetUserUpvotes(ctx, "RockstarDev")
		assert.Error(t, err)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.SetUserUpvotes(ctx, "expiring", []string{uuid.New().String()})
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetUserUpvotes(ctx, "expiring")
		assert.Error(t, err)
	})
}
