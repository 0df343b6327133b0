package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/review"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		logger:     logger.With().Str("service", "review").Logger(),
	}
}

func (s *reviewService) All(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) ByProduct(ctx context.Context, productID int) ([]model.Review, error) {
	if productID <= 0 {
		return nil, model.ErrProductNotFound
	}
	reviews, err := s.reviewRepo.ByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

// Create validates the review and posts it as the logged-in user.
func (s *reviewService) Create(ctx context.Context, sess *model.Session, req model.ReviewRequest) (*model.Review, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}
	if err := review.Validate(req.Title, req.Description, req.Stars); err != nil {
		return nil, err
	}
	if req.ProductID <= 0 {
		return nil, model.ErrProductNotFound
	}

	req.UserID = sess.UserID
	req.Title = strings.TrimSpace(req.Title)
	created, err := s.reviewRepo.Create(ctx, req)
	if err != nil {
		return nil, s.mapOwnership(err, "create review")
	}

	s.logger.Info().
		Int("user_id", sess.UserID).
		Int("product_id", req.ProductID).
		Int("stars", req.Stars).
		Msg("review created")
	return created, nil
}

func (s *reviewService) Update(ctx context.Context, sess *model.Session, reviewID int, req model.ReviewRequest) (*model.Review, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}
	if err := review.Validate(req.Title, req.Description, req.Stars); err != nil {
		return nil, err
	}

	req.UserID = sess.UserID
	req.Title = strings.TrimSpace(req.Title)
	updated, err := s.reviewRepo.Update(ctx, reviewID, req)
	if err != nil {
		return nil, s.mapOwnership(err, "update review")
	}
	return updated, nil
}

func (s *reviewService) Delete(ctx context.Context, sess *model.Session, reviewID int) (*model.Review, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}
	deleted, err := s.reviewRepo.Delete(ctx, reviewID, sess.UserID)
	if err != nil {
		return nil, s.mapOwnership(err, "delete review")
	}
	return deleted, nil
}

func (s *reviewService) CreateReply(ctx context.Context, sess *model.Session, reviewID int, req model.ReplyRequest) (*model.Review, error) {
	if err := requireUser(sess); err != nil {
		return nil, model.NewDomainError(model.ErrCodeUnauthorised, "You must be logged in to post a reply.")
	}
	if err := review.ValidateReply(req.Description); err != nil {
		return nil, err
	}

	req.UserID = sess.UserID
	req.ParentID = reviewID
	reply, err := s.reviewRepo.CreateReply(ctx, req)
	if err != nil {
		return nil, s.mapOwnership(err, "create reply")
	}
	return reply, nil
}

func (s *reviewService) UpdateReply(ctx context.Context, sess *model.Session, replyID int, req model.ReplyRequest) (*model.Review, error) {
	if err := requireUser(sess); err != nil {
		return nil, model.NewDomainError(model.ErrCodeUnauthorised, "You must be logged in to edit a reply.")
	}
	if err := review.ValidateReply(req.Description); err != nil {
		return nil, err
	}

	req.UserID = sess.UserID
	reply, err := s.reviewRepo.UpdateReply(ctx, replyID, req)
	if err != nil {
		return nil, s.mapOwnership(err, "update reply")
	}
	return reply, nil
}

func (s *reviewService) DeleteReply(ctx context.Context, sess *model.Session, replyID int) (*model.Review, error) {
	if err := requireUser(sess); err != nil {
		return nil, err
	}
	reply, err := s.reviewRepo.DeleteReply(ctx, replyID, sess.UserID)
	if err != nil {
		return nil, s.mapOwnership(err, "delete reply")
	}
	return reply, nil
}

// mapOwnership passes backend 403/404 answers through untouched so the caller
// can show the backend's message; anything else is wrapped.
func (s *reviewService) mapOwnership(err error, action string) error {
	if model.IsOwnershipOrMissing(err) {
		s.logger.Info().Err(err).Str("action", action).Msg("review request refused")
		return err
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
