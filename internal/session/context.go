package session

import (
	"context"

	"storefront/internal/model"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by NewContext, or a fresh anonymous
// session when there is none.
func FromContext(ctx context.Context) *model.Session {
	if s, ok := ctx.Value(contextKey{}).(*model.Session); ok && s != nil {
		return s
	}
	return New()
}
