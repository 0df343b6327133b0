package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what a fake backend received.
type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// newTestBackend starts an httptest server that records every request and
// answers with the given status and body.
func newTestBackend(t *testing.T, status int, body string) (*Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		requests = append(requests, rec)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := NewClient(&ClientConfig{BaseURL: server.URL + "/", Timeout: 2 * time.Second}, zerolog.Nop())
	return client, &requests
}

func TestDefaultClientConfig(t *testing.T) {
	config := DefaultClientConfig()

	require.NotNil(t, config)
	assert.Equal(t, "http://localhost:4000", config.BaseURL)
	assert.Equal(t, 10*time.Second, config.Timeout)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient(&ClientConfig{BaseURL: "http://shop.local/", Timeout: time.Second}, zerolog.Nop())
	assert.Equal(t, "http://shop.local", client.BaseURL())
}

func TestClient_ErrorStatus(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
	}{
		{
			name:            "error field",
			status:          http.StatusForbidden,
			body:            `{"error":"You can only edit your own reviews."}`,
			expectedMessage: "You can only edit your own reviews.",
		},
		{
			name:            "message field",
			status:          http.StatusNotFound,
			body:            `{"message":"Review not found"}`,
			expectedMessage: "Review not found",
		},
		{
			name:            "non-json body",
			status:          http.StatusInternalServerError,
			body:            `boom`,
			expectedMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestBackend(t, tt.status, tt.body)

			err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)

			var apiErr *model.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(&ClientConfig{BaseURL: url, Timeout: time.Second}, zerolog.Nop())
	err := client.do(context.Background(), http.MethodGet, "/api/products/", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrServerUnavailable)
}

func TestClient_EmptyBodyIsNotAnError(t *testing.T) {
	client, _ := newTestBackend(t, http.StatusOK, "")

	var out model.Result
	err := client.do(context.Background(), http.MethodPost, "/api/cart/remove", map[string]int{"cart_id": 1}, &out)

	require.NoError(t, err)
	assert.False(t, out.Success)
}
