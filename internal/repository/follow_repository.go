package repository

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// followRepository implements FollowRepository over the backend REST API.
type followRepository struct {
	client *Client
	logger zerolog.Logger
}

// NewFollowRepository creates a new backend-backed follow repository.
func NewFollowRepository(client *Client, logger zerolog.Logger) FollowRepository {
	return &followRepository{
		client: client,
		logger: logger.With().Str("repository", "follow").Logger(),
	}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followingID int) (*model.Result, error) {
	return r.post(ctx, "/api/follow/follow", followerID, followingID)
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID int) (*model.Result, error) {
	return r.post(ctx, "/api/follow/unfollow", followerID, followingID)
}

// IsFollowing reports whether followerID follows followingID.
func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID int) (bool, error) {
	var resp struct {
		IsFollowing bool `json:"isFollowing"`
	}
	req := model.FollowRequest{FollowerID: followerID, FollowingID: followingID}
	if err := r.client.do(ctx, http.MethodPost, "/api/follow/isFollowing", req, &resp); err != nil {
		r.logger.Error().Err(err).
			Int("follower_id", followerID).
			Int("following_id", followingID).
			Msg("failed to check following status")
		return false, fmt.Errorf("failed to check following status: %w", err)
	}
	return resp.IsFollowing, nil
}

func (r *followRepository) post(ctx context.Context, path string, followerID, followingID int) (*model.Result, error) {
	var result model.Result
	req := model.FollowRequest{FollowerID: followerID, FollowingID: followingID}
	if err := r.client.do(ctx, http.MethodPost, path, req, &result); err != nil {
		r.logger.Error().Err(err).
			Str("path", path).
			Int("follower_id", followerID).
			Int("following_id", followingID).
			Msg("follow request failed")
		return nil, fmt.Errorf("follow request %s failed: %w", path, err)
	}
	return &result, nil
}
