package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeFailure writes a {"success": false} body with the given status.
func writeFailure(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Success: false, Code: code, Message: message})
}

// writeError maps err to a status code and a message safe to show the user.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status, code, message := classify(err)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Str("code", code).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Success: false, Code: code, Message: message})
}

func classify(err error) (int, string, string) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return domainStatus(domainErr.Code), domainErr.Code, domainErr.Message
	}

	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusForbidden:
			return http.StatusForbidden, model.ErrCodeForbidden, orDefault(apiErr.Message, "You are not allowed to do that.")
		case http.StatusNotFound:
			return http.StatusNotFound, model.ErrCodeNotFound, orDefault(apiErr.Message, "Not found.")
		case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
			return apiErr.Status, model.ErrCodeBackendFailure, orDefault(apiErr.Message, "The request was rejected.")
		}
		return http.StatusBadGateway, model.ErrCodeBackendFailure, "The server could not complete the request. Please try again later."
	}

	return http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error"
}

func domainStatus(code string) int {
	switch code {
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeProductNotFound, model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeQuotaExceeded:
		return http.StatusPaymentRequired
	case model.ErrCodeServerUnavailable:
		return http.StatusBadGateway
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// decodeJSON reads the request body into v, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, logger zerolog.Logger) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFailure(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}

// pathID parses a positive integer path wildcard, answering 400 itself on
// failure.
func pathID(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		writeFailure(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid "+name, logger)
		return 0, false
	}
	return id, true
}
