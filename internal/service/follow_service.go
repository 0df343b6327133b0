package service

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// followService implements FollowService.
type followService struct {
	followRepo repository.FollowRepository
	logger     zerolog.Logger
}

// NewFollowService creates a new follow service.
func NewFollowService(followRepo repository.FollowRepository, logger zerolog.Logger) FollowService {
	return &followService{
		followRepo: followRepo,
		logger:     logger.With().Str("service", "follow").Logger(),
	}
}

var errFollowSelf = model.NewDomainError(model.ErrCodeMissingField, "You cannot follow yourself")

func (s *followService) check(sess *model.Session, userID int) error {
	if err := requireUser(sess); err != nil {
		return err
	}
	if userID <= 0 {
		return model.NewDomainError(model.ErrCodeNotFound, "User not found")
	}
	if userID == sess.UserID {
		return errFollowSelf
	}
	return nil
}

func (s *followService) Follow(ctx context.Context, sess *model.Session, userID int) (*model.Result, error) {
	if err := s.check(sess, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Follow(ctx, sess.UserID, userID)
}

func (s *followService) Unfollow(ctx context.Context, sess *model.Session, userID int) (*model.Result, error) {
	if err := s.check(sess, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Unfollow(ctx, sess.UserID, userID)
}

// IsFollowing is false for anonymous sessions rather than an error.
func (s *followService) IsFollowing(ctx context.Context, sess *model.Session, userID int) (bool, error) {
	if !sess.LoggedIn() || userID == sess.UserID {
		return false, nil
	}
	return s.followRepo.IsFollowing(ctx, sess.UserID, userID)
}
