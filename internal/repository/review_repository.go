package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// reviewRepository implements ReviewRepository over the backend REST API.
type reviewRepository struct {
	client *Client
	logger zerolog.Logger
}

// NewReviewRepository creates a new backend-backed review repository.
func NewReviewRepository(client *Client, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		client: client,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

func (r *reviewRepository) All(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.client.do(ctx, http.MethodGet, "/api/reviews/", nil, &reviews); err != nil {
		r.logger.Error().Err(err).Msg("failed to fetch reviews")
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) ByProduct(ctx context.Context, productID int) ([]model.Review, error) {
	var reviews []model.Review
	path := "/api/reviews/" + strconv.Itoa(productID) + "/reviews"
	if err := r.client.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		r.logger.Error().Err(err).Int("product_id", productID).Msg("failed to fetch product reviews")
		return nil, fmt.Errorf("failed to fetch reviews for product %d: %w", productID, err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, req model.ReviewRequest) (*model.Review, error) {
	return r.send(ctx, http.MethodPost, "/api/reviews", req)
}

func (r *reviewRepository) Update(ctx context.Context, reviewID int, req model.ReviewRequest) (*model.Review, error) {
	return r.send(ctx, http.MethodPut, "/api/reviews/"+strconv.Itoa(reviewID), req)
}

func (r *reviewRepository) Delete(ctx context.Context, reviewID, userID int) (*model.Review, error) {
	return r.send(ctx, http.MethodDelete, "/api/reviews/"+strconv.Itoa(reviewID), model.OwnerRequest{UserID: userID})
}

func (r *reviewRepository) CreateReply(ctx context.Context, req model.ReplyRequest) (*model.Review, error) {
	return r.send(ctx, http.MethodPost, "/api/reviews/"+strconv.Itoa(req.ParentID)+"/reply", req)
}

func (r *reviewRepository) UpdateReply(ctx context.Context, replyID int, req model.ReplyRequest) (*model.Review, error) {
	return r.send(ctx, http.MethodPut, "/api/reviews/replies/"+strconv.Itoa(replyID), req)
}

func (r *reviewRepository) DeleteReply(ctx context.Context, replyID, userID int) (*model.Review, error) {
	return r.send(ctx, http.MethodDelete, "/api/reviews/replies/"+strconv.Itoa(replyID), model.OwnerRequest{UserID: userID})
}

// send keeps *model.APIError reachable through the wrap so callers can tell
// ownership (403) and missing (404) failures apart.
func (r *reviewRepository) send(ctx context.Context, method, path string, body any) (*model.Review, error) {
	var review model.Review
	if err := r.client.do(ctx, method, path, body, &review); err != nil {
		r.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("review request failed")
		return nil, fmt.Errorf("review request %s %s failed: %w", method, path, err)
	}
	return &review, nil
}
