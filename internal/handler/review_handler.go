package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// ReviewHandler serves product reviews and their replies.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// All handles GET /api/reviews.
func (h *ReviewHandler) All(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.All(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// ByProduct handles GET /api/products/{id}/reviews.
func (h *ReviewHandler) ByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	reviews, err := h.service.ByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// Create handles POST /api/products/{id}/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	var req model.ReviewRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	req.ProductID = productID

	review, err := h.service.Create(r.Context(), session.FromContext(r.Context()), req)
	h.writeReview(w, http.StatusCreated, review, err)
}

// Update handles PUT /api/reviews/{id}.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	var req model.ReviewRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	review, err := h.service.Update(r.Context(), session.FromContext(r.Context()), reviewID, req)
	h.writeReview(w, http.StatusOK, review, err)
}

// Delete handles DELETE /api/reviews/{id}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	review, err := h.service.Delete(r.Context(), session.FromContext(r.Context()), reviewID)
	h.writeReview(w, http.StatusOK, review, err)
}

// CreateReply handles POST /api/reviews/{id}/replies.
func (h *ReviewHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	var req model.ReplyRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	reply, err := h.service.CreateReply(r.Context(), session.FromContext(r.Context()), reviewID, req)
	h.writeReview(w, http.StatusCreated, reply, err)
}

// UpdateReply handles PUT /api/replies/{id}.
func (h *ReviewHandler) UpdateReply(w http.ResponseWriter, r *http.Request) {
	replyID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}
	var req model.ReplyRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	reply, err := h.service.UpdateReply(r.Context(), session.FromContext(r.Context()), replyID, req)
	h.writeReview(w, http.StatusOK, reply, err)
}

// DeleteReply handles DELETE /api/replies/{id}.
func (h *ReviewHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	replyID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	reply, err := h.service.DeleteReply(r.Context(), session.FromContext(r.Context()), replyID)
	h.writeReview(w, http.StatusOK, reply, err)
}

func (h *ReviewHandler) writeReview(w http.ResponseWriter, status int, review *model.Review, err error) {
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, status, review)
}
