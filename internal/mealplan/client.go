// Package mealplan builds meal plans for a calorie target from the recipe
// API, or from fixture files when running offline.
package mealplan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// ClientConfig holds recipe API client configuration.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the recipe API. It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a recipe API client.
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "recipe-client").Logger(),
	}
}

// Generate requests a plan for targetCalories. An empty or "none" diet is
// left out of the query.
func (c *Client) Generate(ctx context.Context, targetCalories int, tf model.TimeFrame, diet string) (*model.MealPlan, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("targetCalories", strconv.Itoa(targetCalories))
	q.Set("timeFrame", tf.APIValue())
	if diet != "" && diet != "none" {
		q.Set("diet", diet)
	}

	var plan model.MealPlan
	if err := c.get(ctx, "/mealplanner/generate", q, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

type recipeInformation struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// RecipeImage returns the image url of a recipe, or "" when it has none.
func (c *Client) RecipeImage(ctx context.Context, id int) (string, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)

	var info recipeInformation
	if err := c.get(ctx, "/recipes/"+strconv.Itoa(id)+"/information", q, &info); err != nil {
		return "", err
	}
	return info.Image, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("recipe API request failed")
		return fmt.Errorf("GET %s: %w: %w", path, model.ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		c.logger.Warn().Str("path", path).Msg("recipe API quota exceeded")
		return model.ErrQuotaExceeded
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		apiErr := &model.APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		c.logger.Warn().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", apiErr.Message).
			Msg("recipe API returned error status")
		// shoppers see the fixed message, never the third-party body
		return fmt.Errorf("GET %s: %w: %w", path, model.ErrMealPlanFailed, apiErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: failed to decode response: %w", path, err)
	}
	return nil
}
