package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// userRepository implements UserRepository over the backend REST API.
type userRepository struct {
	client *Client
	logger zerolog.Logger
}

// NewUserRepository creates a new backend-backed user repository.
func NewUserRepository(client *Client, logger zerolog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Login verifies credentials. Rejected credentials come back as a result with
// Success false, not as an error.
func (r *userRepository) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	var result model.LoginResult
	err := r.client.do(ctx, http.MethodPost, "/api/users/login", req, &result)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return &model.LoginResult{Result: model.Result{Success: false, Message: apiErr.Message}}, nil
		}
		r.logger.Error().Err(err).Msg("login request failed")
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &result, nil
}

// Register creates a new account.
func (r *userRepository) Register(ctx context.Context, req model.RegisterRequest) (*model.Result, error) {
	var result model.Result
	if err := r.client.do(ctx, http.MethodPost, "/api/users/register", req, &result); err != nil {
		r.logger.Error().Err(err).Msg("register request failed")
		return nil, fmt.Errorf("register failed: %w", err)
	}
	return &result, nil
}

// Profile retrieves a user's profile.
func (r *userRepository) Profile(ctx context.Context, userID int) (*model.User, error) {
	var user model.User
	if err := r.client.do(ctx, http.MethodGet, "/api/users/profile/"+strconv.Itoa(userID), nil, &user); err != nil {
		r.logger.Error().Err(err).Int("user_id", userID).Msg("failed to fetch profile")
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile changes a user's first and last name.
func (r *userRepository) UpdateProfile(ctx context.Context, req model.ProfileUpdate) (*model.User, error) {
	var user model.User
	if err := r.client.do(ctx, http.MethodPut, "/api/users/updateProfile", req, &user); err != nil {
		r.logger.Error().Err(err).Int("user_id", req.UserID).Msg("failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// UpdatePassword changes a user's password.
func (r *userRepository) UpdatePassword(ctx context.Context, req model.PasswordUpdate) (*model.Result, error) {
	var result model.Result
	if err := r.client.do(ctx, http.MethodPut, "/api/users/updatePassword", req, &result); err != nil {
		r.logger.Error().Err(err).Int("user_id", req.UserID).Msg("failed to update password")
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	return &result, nil
}

// Delete removes a user and their cart items.
func (r *userRepository) Delete(ctx context.Context, userID int) (*model.Result, error) {
	var result model.Result
	if err := r.client.do(ctx, http.MethodDelete, "/api/users/deleteAccount/"+strconv.Itoa(userID), nil, &result); err != nil {
		r.logger.Error().Err(err).Int("user_id", userID).Msg("failed to delete account")
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}
	return &result, nil
}

// isStatus reports whether err is a backend error with the given status.
func isStatus(err error, status int) bool {
	var apiErr *model.APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
