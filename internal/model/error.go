package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse represents a standardised error response returned by the BFF.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidProfile    = "INVALID_PROFILE"
	ErrCodeInvalidReview     = "INVALID_REVIEW"
	ErrCodeInvalidCard       = "INVALID_CARD"
	ErrCodeInvalidTimeFrame  = "INVALID_TIME_FRAME"
	ErrCodeMissingTDEE       = "MISSING_TDEE"
	ErrCodeQuotaExceeded     = "QUOTA_EXCEEDED"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeBackendFailure    = "BACKEND_FAILURE"
	ErrCodeServerUnavailable = "SERVER_UNAVAILABLE"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// ServerUnavailableMessage is shown when the backend cannot be reached.
const ServerUnavailableMessage = "Unable to connect to the server. Please try again later."

// MealPlanFailedMessage is shown when the recipe API refuses a request for any
// reason other than its quota.
const MealPlanFailedMessage = "The meal planner could not complete the request. Please try again later."

// QuotaExceededMessage is shown when the recipe API reports HTTP 402.
const QuotaExceededMessage = "Sorry! It looks like you've exceeded your API quota limit. Please consider upgrading your plan or contacting support for assistance."

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be at least one")
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrNotLoggedIn     = NewDomainError(ErrCodeUnauthorised, "Please login to continue.")
	ErrCartRequired    = NewDomainError(ErrCodeUnauthorised, "Please login to add items to your cart.")
	ErrQuotaExceeded   = NewDomainError(ErrCodeQuotaExceeded, QuotaExceededMessage)
	ErrInvalidCard     = NewDomainError(ErrCodeInvalidCard, "Invalid credit card number")
	ErrCardExpired     = NewDomainError(ErrCodeInvalidCard, "Expire date must be in the future")

	ErrServerUnavailable = NewDomainError(ErrCodeServerUnavailable, ServerUnavailableMessage)
	ErrMealPlanFailed    = NewDomainError(ErrCodeServerUnavailable, MealPlanFailedMessage)
)

// APIError is returned when the remote backend answers with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// IsOwnershipOrMissing reports whether err is a backend 403 or 404.
func IsOwnershipOrMissing(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusForbidden || apiErr.Status == http.StatusNotFound
}
