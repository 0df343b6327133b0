package mealplan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidTimeFrame = model.NewDomainError(model.ErrCodeInvalidTimeFrame, "Time frame must be daily or weekly")
	ErrMissingTarget    = model.NewDomainError(model.ErrCodeMissingTDEE, "Please calculate your TDEE before generating a meal plan.")
)

// Generator produces plans and recipe details; *Client implements it.
type Generator interface {
	Generate(ctx context.Context, targetCalories int, tf model.TimeFrame, diet string) (*model.MealPlan, error)
	RecipeImage(ctx context.Context, id int) (string, error)
}

// PlannerConfig holds planner settings.
type PlannerConfig struct {
	Offline      bool
	DefaultImage string
	Concurrency  int
}

// Planner turns a calorie target into a meal plan with every meal's image
// resolved.
type Planner struct {
	api      Generator
	fixtures Loader
	cfg      PlannerConfig
	logger   zerolog.Logger
}

// NewPlanner creates a planner. api may be nil when cfg.Offline is set, in
// which case every meal gets the default image.
func NewPlanner(api Generator, fixtures Loader, cfg PlannerConfig, logger zerolog.Logger) *Planner {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if fixtures == nil {
		fixtures = NewEmbeddedLoader()
	}
	return &Planner{
		api:      api,
		fixtures: fixtures,
		cfg:      cfg,
		logger:   logger.With().Str("component", "meal-planner").Logger(),
	}
}

// Plan builds the plan for targetCalories over tf.
func (p *Planner) Plan(ctx context.Context, targetCalories int, tf model.TimeFrame, diet string) (*model.MealPlan, error) {
	if !tf.Valid() {
		return nil, ErrInvalidTimeFrame
	}
	if targetCalories <= 0 {
		return nil, ErrMissingTarget
	}

	plan, err := p.generate(ctx, targetCalories, tf, diet)
	if err != nil {
		return nil, err
	}

	p.resolveImages(ctx, plan)

	p.logger.Info().
		Int("target_calories", targetCalories).
		Str("time_frame", string(tf)).
		Str("diet", diet).
		Int("days", len(plan.Days())).
		Msg("meal plan generated")

	return plan, nil
}

func (p *Planner) generate(ctx context.Context, targetCalories int, tf model.TimeFrame, diet string) (*model.MealPlan, error) {
	if !p.cfg.Offline {
		if p.api == nil {
			return nil, errors.New("recipe API client not configured")
		}
		plan, err := p.api.Generate(ctx, targetCalories, tf, diet)
		if err != nil {
			return nil, fmt.Errorf("failed to generate meal plan: %w", err)
		}
		return plan, nil
	}

	plan, err := p.fixtures.Load(ctx, FixtureName(tf))
	if err != nil {
		// offline weekly plans behave like an exhausted API quota
		if tf == model.TimeFrameWeekly {
			p.logger.Warn().Err(err).Msg("no weekly fixture available")
			return nil, model.ErrQuotaExceeded
		}
		return nil, fmt.Errorf("failed to load %s plan fixture: %w", tf, err)
	}
	return plan, nil
}

// resolveImages looks up each distinct recipe once, bounded by
// cfg.Concurrency. Lookups that fail or return no image get the default.
func (p *Planner) resolveImages(ctx context.Context, plan *model.MealPlan) {
	pending := make(map[int]struct{})
	plan.EachMeal(func(m *model.Meal) {
		if m.Image == "" {
			pending[m.ID] = struct{}{}
		}
	})
	if len(pending) == 0 {
		return
	}

	images := make(map[int]string, len(pending))
	if p.api != nil {
		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(p.cfg.Concurrency)

		for id := range pending {
			g.Go(func() error {
				img, err := p.api.RecipeImage(ctx, id)
				if err != nil {
					p.logger.Warn().Err(err).Int("recipe_id", id).Msg("failed to fetch recipe image")
					return nil
				}
				mu.Lock()
				images[id] = img
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}

	plan.EachMeal(func(m *model.Meal) {
		if m.Image != "" {
			return
		}
		if img := images[m.ID]; img != "" {
			m.Image = img
			return
		}
		m.Image = p.cfg.DefaultImage
	})
}
