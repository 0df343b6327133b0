package cart

import (
	"context"
	"sync"
	"time"

	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

type registryEntry struct {
	manager  *Manager
	lastUsed time.Time
}

// Registry hands out one Manager per cart id so concurrent requests from the
// same session share local state. Managers nobody asked for within the idle
// window are dropped by EvictIdle.
type Registry struct {
	repo   repository.CartRepository
	base   zerolog.Logger
	logger zerolog.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries map[int]*registryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry(repo repository.CartRepository, logger zerolog.Logger) *Registry {
	return &Registry{
		repo:    repo,
		base:    logger,
		logger:  logger.With().Str("component", "cart_registry").Logger(),
		now:     time.Now,
		entries: make(map[int]*registryEntry),
	}
}

// Get returns the manager for cartID, creating it and loading the server cart
// on first use. A failed load is not cached.
func (r *Registry) Get(ctx context.Context, cartID int) (*Manager, error) {
	m, _, err := r.get(ctx, cartID)
	return m, err
}

// Open is Get for a freshly established session: a manager that was already
// live is reloaded from the server so no stale lines survive a re-login.
func (r *Registry) Open(ctx context.Context, cartID int) (*Manager, error) {
	m, loaded, err := r.get(ctx, cartID)
	if err != nil || loaded {
		return m, err
	}
	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// get reports whether the returned manager was loaded by this call.
func (r *Registry) get(ctx context.Context, cartID int) (*Manager, bool, error) {
	r.mu.Lock()
	if e, ok := r.entries[cartID]; ok {
		e.lastUsed = r.now()
		r.mu.Unlock()
		return e.manager, false, nil
	}
	r.mu.Unlock()

	m := NewManager(cartID, r.repo, r.base)
	if err := m.Load(ctx); err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// another request may have loaded the same cart meanwhile
	if e, ok := r.entries[cartID]; ok {
		e.lastUsed = r.now()
		return e.manager, false, nil
	}
	r.entries[cartID] = &registryEntry{manager: m, lastUsed: r.now()}
	return m, true, nil
}

// Drop clears and forgets the manager for cartID (logout).
func (r *Registry) Drop(cartID int) {
	r.mu.Lock()
	e, ok := r.entries[cartID]
	delete(r.entries, cartID)
	r.mu.Unlock()

	if ok {
		e.manager.Clear()
	}
}

// EvictIdle drops every manager not used for at least maxIdle and returns how
// many were dropped. A later Get reloads the cart from the server.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var idle []*Manager
	for id, e := range r.entries {
		if !e.lastUsed.After(cutoff) {
			idle = append(idle, e.manager)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, m := range idle {
		m.Clear()
	}
	if len(idle) > 0 {
		r.logger.Debug().Int("evicted", len(idle)).Msg("idle carts evicted")
	}
	return len(idle)
}

// Len returns the number of live managers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
