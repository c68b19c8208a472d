// Package session holds server-side session state keyed by an opaque
// token carried in a cookie.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/aminebt/khadamat/internal/models"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

type Store interface {
	// Create stores the session and returns its opaque token.
	Create(ctx context.Context, sess Session) (string, error)
	// Get returns the session for the token, or ErrNotFound when the
	// token is unknown or expired.
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
