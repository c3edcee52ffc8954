package identity

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenIdentity_IssueAndResolve(t *testing.T) {
	p := New("secret", time.Minute, "")
	ctx := context.Background()

	token, err := p.Issue(ctx, "GTAFan2024")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	username, err := p.CurrentUsername(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "GTAFan2024", username)
}

func TestTokenIdentity_InvalidToken(t *testing.T) {
	p := New("secret", time.Minute, "")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	_, err := p.CurrentUsername(context.Background(), req)
	assert.Error(t, err)
}

func TestTokenIdentity_WrongKey(t *testing.T) {
	issuer := New("secret-a", time.Minute, "")
	verifier := New("secret-b", time.Minute, "")

	token, err := issuer.Issue(context.Background(), "alice")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, err = verifier.CurrentUsername(context.Background(), req)
	assert.Error(t, err)
}

func TestTokenIdentity_ExpiredToken(t *testing.T) {
	p := New("secret", -time.Minute, "")

	token, err := p.Issue(context.Background(), "alice")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, err = p.CurrentUsername(context.Background(), req)
	assert.Error(t, err)
}

func TestTokenIdentity_HeaderFallback(t *testing.T) {
	p := New("secret", time.Minute, "")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Username", "ViceCityLover")

	username, err := p.CurrentUsername(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "ViceCityLover", username)
}

func TestTokenIdentity_PlaceholderFallback(t *testing.T) {
	p := New("secret", time.Minute, "CurrentUser")

	req := httptest.NewRequest("GET", "/", nil)

	username, err := p.CurrentUsername(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "CurrentUser", username)
}

func TestTokenIdentity_NoIdentity(t *testing.T) {
	p := New("secret", time.Minute, "")

	req := httptest.NewRequest("GET", "/", nil)

	_, err := p.CurrentUsername(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoIdentity)
}
