package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoIdentity is returned when a request carries no resolvable identity
// and no fallback username is configured.
var ErrNoIdentity = errors.New("no identity in request")

// Provider resolves the acting username for a request. The presentation
// layer's hardcoded "current user" lives behind this interface instead of
// being wired into handlers.
type Provider interface {
	CurrentUsername(ctx context.Context, r *http.Request) (string, error)
}

// TokenIdentity resolves identities from signed bearer tokens, falling back
// to the X-Username header and then to a configured placeholder username.
type TokenIdentity struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
	Fallback  string        // Placeholder username when the request carries no identity
}

// New creates a new TokenIdentity instance
func New(secretKey string, expiration time.Duration, fallback string) *TokenIdentity {
	return &TokenIdentity{
		SecretKey: secretKey,
		Exp:       expiration,
		Fallback:  fallback,
	}
}

// Issue creates a signed token carrying the given username
func (p *TokenIdentity) Issue(ctx context.Context, username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(p.Exp).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.SecretKey))
}

// CurrentUsername resolves the acting username for the request: bearer
// token first, then the X-Username header, then the configured fallback.
func (p *TokenIdentity) CurrentUsername(ctx context.Context, r *http.Request) (string, error) {
	if tokenString, err := p.getTokenFromRequest(r); err == nil {
		username, err := p.parseUsername(tokenString)
		if err != nil {
			return "", err
		}
		return username, nil
	}

	if username := r.Header.Get("X-Username"); username != "" {
		return username, nil
	}

	if p.Fallback != "" {
		return p.Fallback, nil
	}

	return "", ErrNoIdentity
}

// parseUsername validates the token string and returns the username claim
func (p *TokenIdentity) parseUsername(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(p.SecretKey), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if username, ok := claims["username"].(string); ok && username != "" {
			return username, nil
		}
		return "", errors.New("username not found in token")
	}
	return "", errors.New("invalid token")
}

// getTokenFromRequest extracts the token string from the Authorization header
func (p *TokenIdentity) getTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
