// Package cart keeps the client-side view of a shopper's cart in step with the
// server-authoritative cart held by the backend.
//
// Every mutation is sent to the backend first. The local lines change only
// when the backend accepts it, so a refused or failed call leaves the local
// state exactly as it was.
package cart

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Manager holds the local lines of one cart.
type Manager struct {
	cartID int
	repo   repository.CartRepository
	logger zerolog.Logger

	mu    sync.Mutex
	items []model.CartItem
}

// NewManager creates an empty manager for cartID.
func NewManager(cartID int, repo repository.CartRepository, logger zerolog.Logger) *Manager {
	return &Manager{
		cartID: cartID,
		repo:   repo,
		logger: logger.With().Str("component", "cart").Int("cart_id", cartID).Logger(),
	}
}

// CartID returns the backend identifier of the cart.
func (m *Manager) CartID() int {
	return m.cartID
}

// Load replaces the local lines with the server's cart.
func (m *Manager) Load(ctx context.Context) error {
	details, err := m.repo.Get(ctx, m.cartID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	n := m.replace(details)
	m.logger.Debug().Int("lines", n).Msg("cart loaded")
	return nil
}

// replace swaps the local lines for the server's and returns how many lines
// are kept. Lines with a quantity below one are dropped.
func (m *Manager) replace(details []model.CartDetail) int {
	items := make([]model.CartItem, 0, len(details))
	for _, d := range details {
		if d.Quantity < 1 {
			continue
		}
		items = append(items, model.CartItem{ProductID: d.ProductID, Quantity: d.Quantity})
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	return len(items)
}

// Add puts one more of productID in the cart.
func (m *Manager) Add(ctx context.Context, productID int) (*model.CartResult, error) {
	result, err := m.repo.Add(ctx, m.cartID, productID, 1)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		m.logger.Info().Int("product_id", productID).Str("message", result.Message).Msg("add refused")
		return result, nil
	}

	m.mu.Lock()
	if i := m.indexOf(productID); i >= 0 {
		m.items[i].Quantity++
	} else {
		m.items = append(m.items, model.CartItem{ProductID: productID, Quantity: 1})
	}
	m.mu.Unlock()

	return result, nil
}

// Remove drops the productID line. The backend's remove endpoint does not
// always report success, so any answer that is not a transport error counts.
func (m *Manager) Remove(ctx context.Context, productID int) (*model.CartResult, error) {
	result, err := m.repo.Remove(ctx, m.cartID, productID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if i := m.indexOf(productID); i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
	}
	m.mu.Unlock()

	return result, nil
}

// UpdateQuantity sets the quantity of the productID line. Quantities below one
// are rejected without calling the backend; use Remove to drop a line.
func (m *Manager) UpdateQuantity(ctx context.Context, productID, quantity int) (*model.CartResult, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	result, err := m.repo.Update(ctx, m.cartID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		m.logger.Info().
			Int("product_id", productID).
			Int("quantity", quantity).
			Str("message", result.Message).
			Msg("update refused")
		return result, nil
	}

	m.mu.Lock()
	if i := m.indexOf(productID); i >= 0 {
		m.items[i].Quantity = quantity
	}
	m.mu.Unlock()

	return result, nil
}

// Increment raises the productID line by one.
func (m *Manager) Increment(ctx context.Context, productID int) (*model.CartResult, error) {
	current, ok := m.Quantity(productID)
	if !ok {
		return nil, model.ErrProductNotFound
	}
	return m.UpdateQuantity(ctx, productID, current+1)
}

// Decrement lowers the productID line by one. Going below one is a no-op that
// reports success without touching the backend.
func (m *Manager) Decrement(ctx context.Context, productID int) (*model.CartResult, error) {
	current, ok := m.Quantity(productID)
	if !ok {
		return nil, model.ErrProductNotFound
	}
	if current-1 < 1 {
		return &model.CartResult{Result: model.Result{Success: true}}, nil
	}
	return m.UpdateQuantity(ctx, productID, current-1)
}

// Submit turns the cart into an order and empties the local lines on success.
func (m *Manager) Submit(ctx context.Context) (*model.CartResult, error) {
	result, err := m.repo.Submit(ctx, m.cartID)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		m.logger.Info().Str("message", result.Message).Msg("submit refused")
		return result, nil
	}

	m.Clear()
	m.logger.Info().Msg("cart submitted")
	return result, nil
}

// Clear empties the local lines without touching the backend.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
}

// NotificationCount is the number of distinct product lines.
func (m *Manager) NotificationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Items returns a copy of the local lines in insertion order.
func (m *Manager) Items() []model.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// Quantity returns the quantity of the productID line and whether it exists.
func (m *Manager) Quantity(productID int) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(productID); i >= 0 {
		return m.items[i].Quantity, true
	}
	return 0, false
}

// Summary fetches the server cart, prices every line and resyncs the local
// lines with what the server returned.
func (m *Manager) Summary(ctx context.Context) (*model.CartSummary, error) {
	details, err := m.repo.Get(ctx, m.cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart summary: %w", err)
	}

	summary := Summarise(details)
	summary.NotificationCount = m.replace(details)
	return summary, nil
}

// Summarise turns backend cart details into priced display lines.
func Summarise(details []model.CartDetail) *model.CartSummary {
	lines := make([]model.CartLine, 0, len(details))
	total := decimal.Zero

	for _, d := range details {
		lineTotal := d.Product.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
		lines = append(lines, model.CartLine{
			ID:         d.Product.ID,
			Name:       d.Product.Name,
			Price:      d.Product.Price,
			Quantity:   d.Quantity,
			ImageURL:   d.Product.ImageURL,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return &model.CartSummary{Items: lines, Total: total, NotificationCount: len(lines)}
}

// indexOf must be called with mu held.
func (m *Manager) indexOf(productID int) int {
	for i, item := range m.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
