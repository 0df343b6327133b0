package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository over the backend REST API.
type cartRepository struct {
	client *Client
	logger zerolog.Logger
}

// NewCartRepository creates a new backend-backed cart repository.
func NewCartRepository(client *Client, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		client: client,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Get retrieves the cart lines with products embedded.
func (r *cartRepository) Get(ctx context.Context, cartID int) ([]model.CartDetail, error) {
	var details []model.CartDetail
	if err := r.client.do(ctx, http.MethodGet, "/api/cart/"+strconv.Itoa(cartID), nil, &details); err != nil {
		r.logger.Error().Err(err).Int("cart_id", cartID).Msg("failed to fetch cart")
		return nil, fmt.Errorf("failed to fetch cart %d: %w", cartID, err)
	}
	return details, nil
}

// Add adds quantity of a product to the cart.
func (r *cartRepository) Add(ctx context.Context, cartID, productID, quantity int) (*model.CartResult, error) {
	return r.post(ctx, "/api/cart/add", model.CartRequest{
		ProductID: productID,
		Quantity:  quantity,
		CartID:    cartID,
	})
}

// Update sets the quantity of a product in the cart.
func (r *cartRepository) Update(ctx context.Context, cartID, productID, quantity int) (*model.CartResult, error) {
	return r.post(ctx, "/api/cart/update", model.CartRequest{
		ProductID: productID,
		Quantity:  quantity,
		CartID:    cartID,
	})
}

// Remove deletes a product line from the cart.
func (r *cartRepository) Remove(ctx context.Context, cartID, productID int) (*model.CartResult, error) {
	return r.post(ctx, "/api/cart/remove", model.CartRequest{
		ProductID: productID,
		CartID:    cartID,
	})
}

// Submit turns the cart into an order.
func (r *cartRepository) Submit(ctx context.Context, cartID int) (*model.CartResult, error) {
	return r.post(ctx, "/api/cart/submit", model.CartRequest{CartID: cartID})
}

func (r *cartRepository) post(ctx context.Context, path string, req model.CartRequest) (*model.CartResult, error) {
	var result model.CartResult
	if err := r.client.do(ctx, http.MethodPost, path, req, &result); err != nil {
		r.logger.Error().
			Err(err).
			Str("path", path).
			Int("cart_id", req.CartID).
			Int("product_id", req.ProductID).
			Msg("cart request failed")
		return nil, fmt.Errorf("cart request %s failed: %w", path, err)
	}
	return &result, nil
}
