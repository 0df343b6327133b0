package handler

import (
	"net/http"

	"storefront/internal/service"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// FollowHandler serves follow relationships for the logged-in user.
type FollowHandler struct {
	service service.FollowService
	logger  zerolog.Logger
}

// NewFollowHandler creates a new follow handler.
func NewFollowHandler(service service.FollowService, logger zerolog.Logger) *FollowHandler {
	return &FollowHandler{
		service: service,
		logger:  logger.With().Str("handler", "follow").Logger(),
	}
}

type followStatus struct {
	UserID      int  `json:"user_id"`
	IsFollowing bool `json:"isFollowing"`
}

// Follow handles POST /api/follows/{userID}.
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID", h.logger)
	if !ok {
		return
	}

	result, err := h.service.Follow(r.Context(), session.FromContext(r.Context()), userID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Unfollow handles DELETE /api/follows/{userID}.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID", h.logger)
	if !ok {
		return
	}

	result, err := h.service.Unfollow(r.Context(), session.FromContext(r.Context()), userID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// IsFollowing handles GET /api/follows/{userID}.
func (h *FollowHandler) IsFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID", h.logger)
	if !ok {
		return
	}

	following, err := h.service.IsFollowing(r.Context(), session.FromContext(r.Context()), userID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, followStatus{UserID: userID, IsFollowing: following})
}
