package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// newTestRouter wires handlers with no services behind them; any route that
// reaches a service panics and exercises the recovery middleware.
func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	return New(Handlers{
		Auth:    handler.NewAuthHandler(nil, logger),
		Product: handler.NewProductHandler(nil, logger),
		Cart:    handler.NewCartHandler(nil, logger),
		Review:  handler.NewReviewHandler(nil, logger),
		Follow:  handler.NewFollowHandler(nil, logger),
		Planner: handler.NewPlannerHandler(nil, logger),
	}, session.NewMemoryStore(time.Hour), logger)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectSession  bool
	}{
		{
			name:           "Health",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
			expectSession:  false,
		},
		{
			name:           "Preflight",
			method:         http.MethodOptions,
			path:           "/api/cart",
			expectedStatus: http.StatusNoContent,
			expectSession:  false,
		},
		{
			name:           "Unknown route",
			method:         http.MethodGet,
			path:           "/api/orders",
			expectedStatus: http.StatusNotFound,
			expectSession:  true,
		},
		{
			name:           "Wrong method",
			method:         http.MethodPatch,
			path:           "/api/cart",
			expectedStatus: http.StatusMethodNotAllowed,
			expectSession:  true,
		},
		{
			name:           "Bad path id is rejected before the service",
			method:         http.MethodDelete,
			path:           "/api/cart/items/abc",
			expectedStatus: http.StatusBadRequest,
			expectSession:  true,
		},
		{
			name:           "Panic in handler is recovered",
			method:         http.MethodGet,
			path:           "/api/products",
			expectedStatus: http.StatusInternalServerError,
			expectSession:  true,
		},
	}

	r := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			if tt.expectSession {
				assert.True(t, session.ValidID(w.Header().Get(middleware.SessionHeader)))
			} else {
				assert.Empty(t, w.Header().Get(middleware.SessionHeader))
			}
		})
	}
}

func TestRouter_HealthBody(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.JSONEq(t, `{"status": "healthy"}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
