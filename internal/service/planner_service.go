package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/session"
	"storefront/internal/tdee"

	"github.com/rs/zerolog"
)

// MealPlanner is implemented by *mealplan.Planner.
type MealPlanner interface {
	Plan(ctx context.Context, targetCalories int, tf model.TimeFrame, diet string) (*model.MealPlan, error)
}

// plannerService implements PlannerService.
type plannerService struct {
	planner  MealPlanner
	sessions session.Store
	logger   zerolog.Logger
}

// NewPlannerService creates a new planner service.
func NewPlannerService(planner MealPlanner, sessions session.Store, logger zerolog.Logger) PlannerService {
	return &plannerService{
		planner:  planner,
		sessions: sessions,
		logger:   logger.With().Str("service", "planner").Logger(),
	}
}

// SetProfile does not require a logged-in user; the TDEE lives on the
// session either way.
func (s *plannerService) SetProfile(ctx context.Context, sess *model.Session, p tdee.Profile) (int, error) {
	value, err := tdee.Calculate(p)
	if err != nil {
		return 0, err
	}

	sess.TDEE = value
	if err := s.sessions.Save(ctx, sess); err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug().Int("tdee", value).Str("goal", string(p.Goal)).Msg("tdee stored")
	return value, nil
}

func (s *plannerService) MealPlan(ctx context.Context, sess *model.Session, tf model.TimeFrame, diet string) (*model.MealPlan, error) {
	if tf == "" {
		tf = model.TimeFrameDaily
	}
	return s.planner.Plan(ctx, sess.TDEE, tf, diet)
}
