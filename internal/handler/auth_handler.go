package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// AuthHandler serves login, registration and profile endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

type profileRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	result, err := h.service.Login(r.Context(), session.FromContext(r.Context()), req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	result, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), session.FromContext(r.Context())); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Result{Success: true, Message: "Logged out"})
}

// Profile handles GET /api/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Profile(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), session.FromContext(r.Context()), req.FirstName, req.LastName)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdatePassword handles PUT /api/profile/password.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	result, err := h.service.UpdatePassword(r.Context(), session.FromContext(r.Context()), req.Password)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteAccount handles DELETE /api/profile.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteAccount(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
