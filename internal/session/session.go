// Package session keeps the per-client state a browser would otherwise hold
// in local storage: the logged-in user, their cart id and last TDEE.
package session

import (
	"context"
	"errors"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store persists sessions by id.
type Store interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
}

// New returns an empty session with a fresh random id.
func New() *model.Session {
	return &model.Session{ID: uuid.NewString()}
}

// ValidID reports whether id looks like a session id issued by New.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	return now.Add(ttl)
}
