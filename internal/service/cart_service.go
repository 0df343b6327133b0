package service

import (
	"context"
	"time"

	"storefront/internal/cart"
	"storefront/internal/model"
	"storefront/internal/payment"

	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the per-cart managers.
type cartService struct {
	carts  *cart.Registry
	now    func() time.Time
	logger zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts *cart.Registry, logger zerolog.Logger) CartService {
	return &cartService{
		carts:  carts,
		now:    time.Now,
		logger: logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) manager(ctx context.Context, sess *model.Session) (*cart.Manager, error) {
	if err := requireCart(sess); err != nil {
		return nil, err
	}
	return s.carts.Get(ctx, sess.CartID)
}

func (s *cartService) Summary(ctx context.Context, sess *model.Session) (*model.CartSummary, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return nil, err
	}
	return m.Summary(ctx)
}

func (s *cartService) Add(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return nil, err
	}
	return m.Add(ctx, productID)
}

func (s *cartService) Remove(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return nil, err
	}
	return m.Remove(ctx, productID)
}

func (s *cartService) UpdateQuantity(ctx context.Context, sess *model.Session, productID, quantity int) (*model.CartResult, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return nil, err
	}
	return m.UpdateQuantity(ctx, productID, quantity)
}

func (s *cartService) Increment(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return nil, err
	}
	return m.Increment(ctx, productID)
}

func (s *cartService) Decrement(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return nil, err
	}
	return m.Decrement(ctx, productID)
}

// Checkout validates card details before submitting; nothing reaches the
// backend for an invalid card.
func (s *cartService) Checkout(ctx context.Context, sess *model.Session, card payment.Card) (*model.CartResult, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := card.Validate(s.now()); err != nil {
		s.logger.Info().Int("cart_id", sess.CartID).Err(err).Msg("card rejected")
		return nil, err
	}

	lines := m.NotificationCount()
	result, err := m.Submit(ctx)
	if err != nil {
		return nil, err
	}

	if result.Success {
		s.logger.Info().
			Int("cart_id", sess.CartID).
			Int("user_id", sess.UserID).
			Int("lines", lines).
			Msg("cart submitted")
	}
	return result, nil
}
