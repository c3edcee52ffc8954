package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// boardSchema is the full storage layout: feedback.upvote_count is the
// denormalized copy of the upvotes relation cardinality, and the
// unique(user_id, feedback_id) pair makes the upvote toggle race-safe.
const boardSchema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100),
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS feedback (
	feedback_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	title VARCHAR(200) NOT NULL,
	description VARCHAR(2000) NOT NULL,
	category VARCHAR(20) NOT NULL,
	upvote_count INT NOT NULL DEFAULT 0 CHECK (upvote_count >= 0),
	author_id UUID NOT NULL REFERENCES users(user_id),
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
	comment_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	content VARCHAR(1000) NOT NULL,
	author_id UUID NOT NULL REFERENCES users(user_id),
	feedback_id UUID NOT NULL REFERENCES feedback(feedback_id),
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS upvotes (
	upvote_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	user_id UUID NOT NULL REFERENCES users(user_id),
	feedback_id UUID NOT NULL REFERENCES feedback(feedback_id),
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, feedback_id)
);
`

func setupBoardPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	_, err = db.Exec(boardSchema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func noTx(ctx context.Context) *sqlx.Tx { return nil }

func TestUserWriteRepository_GetOrCreate(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, noTx)
	ctx := context.Background()

	created, err := repo.GetOrCreate(ctx, "GTAFan2024")
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "GTAFan2024", created.Username)

	// second call finds the same user instead of creating a new one
	found, err := repo.GetOrCreate(ctx, "GTAFan2024")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, created.UserID, found.UserID)

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM users WHERE username=$1", "GTAFan2024")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserWriteRepository_SetEmail(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, noTx)
	ctx := context.Background()

	user, err := repo.GetOrCreate(ctx, "RockstarDev")
	assert.NoError(t, err)
	assert.Nil(t, user.Email)

	err = repo.SetEmail(ctx, user.UserID, "dev@rockstar.com")
	assert.NoError(t, err)

	var email string
	err = db.Get(&email, "SELECT email FROM users WHERE user_id=$1", user.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "dev@rockstar.com", email)

	// a stored email is not overwritten
	err = repo.SetEmail(ctx, user.UserID, "other@rockstar.com")
	assert.NoError(t, err)

	err = db.Get(&email, "SELECT email FROM users WHERE user_id=$1", user.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "dev@rockstar.com", email)
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, teardown := setupBoardPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, noTx)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.GetOrCreate(ctx, "ViceCityLover")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "ViceCityLover")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, created.UserID, user.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
