package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/cart"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	sessions session.Store
	carts    *cart.Registry
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	sessions session.Store,
	carts *cart.Registry,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		carts:    carts,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Login verifies credentials. On success the user and cart ids are saved on
// the session and the cart is loaded so the notification count is ready.
func (s *authService) Login(ctx context.Context, sess *model.Session, req model.LoginRequest) (*model.LoginResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Email and password are required")
	}

	result, err := s.userRepo.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if !result.Success || result.User == nil {
		s.logger.Info().Str("email", req.Email).Str("message", result.Message).Msg("login rejected")
		return result, nil
	}

	sess.UserID = result.User.ID
	sess.CartID = result.CartID
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if sess.CartID != 0 {
		if _, err := s.carts.Open(ctx, sess.CartID); err != nil {
			// the cart loads lazily on next use
			s.logger.Warn().Err(err).Int("cart_id", sess.CartID).Msg("failed to warm cart")
		}
	}

	s.logger.Info().
		Int("user_id", sess.UserID).
		Int("cart_id", sess.CartID).
		Msg("user logged in")

	return result, nil
}

// Register creates a new account.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.Result, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" || strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "All fields are required")
	}
	return s.userRepo.Register(ctx, req)
}

// Logout clears the cart held for the session and deletes the session.
func (s *authService) Logout(ctx context.Context, sess *model.Session) error {
	if sess.CartID != 0 {
		s.carts.Drop(sess.CartID)
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info().Int("user_id", sess.UserID).Msg("user logged out")
	sess.UserID, sess.CartID, sess.TDEE = 0, 0, 0
	return nil
}

func (s *authService) Profile(ctx context.Context, sess *model.Session) (*model.User, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}
	return s.userRepo.Profile(ctx, sess.UserID)
}

func (s *authService) UpdateProfile(ctx context.Context, sess *model.Session, firstName, lastName string) (*model.User, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "First and last name are required")
	}

	return s.userRepo.UpdateProfile(ctx, model.ProfileUpdate{
		UserID:    sess.UserID,
		FirstName: firstName,
		LastName:  lastName,
	})
}

func (s *authService) UpdatePassword(ctx context.Context, sess *model.Session, password string) (*model.Result, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Password is required")
	}
	return s.userRepo.UpdatePassword(ctx, model.PasswordUpdate{UserID: sess.UserID, Password: password})
}

// DeleteAccount removes the user; a successful delete also logs out.
func (s *authService) DeleteAccount(ctx context.Context, sess *model.Session) (*model.Result, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}

	result, err := s.userRepo.Delete(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if result.Success {
		if err := s.Logout(ctx, sess); err != nil {
			return nil, err
		}
	}
	return result, nil
}
