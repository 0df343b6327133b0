package handler

import (
	"net/http"
	"strings"

	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/tdee"

	"github.com/rs/zerolog"
)

// PlannerHandler serves TDEE calculation and meal plans.
type PlannerHandler struct {
	service service.PlannerService
	logger  zerolog.Logger
}

// NewPlannerHandler creates a new planner handler.
func NewPlannerHandler(service service.PlannerService, logger zerolog.Logger) *PlannerHandler {
	return &PlannerHandler{
		service: service,
		logger:  logger.With().Str("handler", "planner").Logger(),
	}
}

type tdeeRequest struct {
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           float64 `json:"age"`
	ActivityLevel string  `json:"activityLevel"`
	HealthGoals   string  `json:"healthGoals"`
}

type tdeeResponse struct {
	TDEE int `json:"tdee"`
}

// SetProfile handles POST /api/tdee.
func (h *PlannerHandler) SetProfile(w http.ResponseWriter, r *http.Request) {
	var req tdeeRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	gender, err := tdee.ParseGender(req.Gender)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	profile := tdee.Profile{
		Gender:        gender,
		WeightKg:      req.Weight,
		HeightCm:      req.Height,
		AgeYears:      req.Age,
		ActivityLevel: tdee.ParseActivityLevel(req.ActivityLevel),
		Goal:          tdee.ParseGoal(req.HealthGoals),
	}

	value, err := h.service.SetProfile(r.Context(), session.FromContext(r.Context()), profile)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, tdeeResponse{TDEE: value})
}

// MealPlan handles GET /api/mealplan?timeFrame=daily|weekly&diet=.
func (h *PlannerHandler) MealPlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tf := model.TimeFrame(strings.ToLower(q.Get("timeFrame")))

	plan, err := h.service.MealPlan(r.Context(), session.FromContext(r.Context()), tf, q.Get("diet"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
