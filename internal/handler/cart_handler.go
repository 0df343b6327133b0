package handler

import (
	"context"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/payment"
	"storefront/internal/service"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// CartHandler serves the session cart and checkout.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

type addItemRequest struct {
	ProductID int `json:"product_id"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// Summary handles GET /api/cart.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if req.ProductID <= 0 {
		writeFailure(w, http.StatusBadRequest, model.ErrCodeMissingField, "product_id is required", h.logger)
		return
	}

	result, err := h.service.Add(r.Context(), session.FromContext(r.Context()), req.ProductID)
	h.writeResult(w, result, err)
}

// RemoveItem handles DELETE /api/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.withProduct(w, r, service.CartService.Remove)
}

// UpdateItem handles PUT /api/cart/items/{id}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	var req quantityRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	result, err := h.service.UpdateQuantity(r.Context(), session.FromContext(r.Context()), id, req.Quantity)
	h.writeResult(w, result, err)
}

// Increment handles POST /api/cart/items/{id}/increment.
func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.withProduct(w, r, service.CartService.Increment)
}

// Decrement handles POST /api/cart/items/{id}/decrement.
func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.withProduct(w, r, service.CartService.Decrement)
}

// Checkout handles POST /api/checkout.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var card payment.Card
	if !decodeJSON(w, r, &card, h.logger) {
		return
	}

	result, err := h.service.Checkout(r.Context(), session.FromContext(r.Context()), card)
	h.writeResult(w, result, err)
}

// productAction is a CartService method expression, resolved against the
// service only once the path id is valid.
type productAction func(s service.CartService, ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error)

func (h *CartHandler) withProduct(w http.ResponseWriter, r *http.Request, action productAction) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	result, err := action(h.service, r.Context(), session.FromContext(r.Context()), id)
	h.writeResult(w, result, err)
}

// writeResult passes backend answers through unchanged, including
// success=false ones.
func (h *CartHandler) writeResult(w http.ResponseWriter, result *model.CartResult, err error) {
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
