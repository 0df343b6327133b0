// Package tdee estimates Total Daily Energy Expenditure with the Mifflin-St
// Jeor equation, scaled by activity level and adjusted for the shopper's goal.
package tdee

import (
	"fmt"
	"math"
	"strings"

	"storefront/internal/model"
)

// Gender selects the BMR constant.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel is one of five fixed exercise bands.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightlyActive"
	ModeratelyActive ActivityLevel = "moderatelyActive"
	VeryActive       ActivityLevel = "veryActive"
	ExtraActive      ActivityLevel = "extraActive"
)

// Goal adjusts the maintenance figure.
type Goal string

const (
	WeightLoss        Goal = "weight_loss"
	MuscleGain        Goal = "muscle_gain"
	HealthImprovement Goal = "health_improvement"
)

// Profile holds the biometric inputs.
type Profile struct {
	Gender        Gender        `json:"gender"`
	WeightKg      float64       `json:"weight"`
	HeightCm      float64       `json:"height"`
	AgeYears      float64       `json:"age"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"healthGoals"`
}

// ErrInvalidProfile is wrapped by every validation failure.
var ErrInvalidProfile = model.NewDomainError(model.ErrCodeInvalidProfile, "invalid profile")

// Factor is the activity multiplier. Unknown levels count as sedentary.
func (a ActivityLevel) Factor() float64 {
	switch a {
	case LightlyActive:
		return 1.375
	case ModeratelyActive:
		return 1.55
	case VeryActive:
		return 1.725
	case ExtraActive:
		return 1.9
	default:
		return 1.2
	}
}

// Multiplier is the goal adjustment. Unknown goals leave TDEE unchanged.
func (g Goal) Multiplier() float64 {
	switch g {
	case WeightLoss:
		return 0.8
	case MuscleGain:
		return 1.2
	default:
		return 1.0
	}
}

// ParseGender accepts "male" or "female" in any case.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, s)
}

// ParseActivityLevel maps s to a level, defaulting to Sedentary.
func ParseActivityLevel(s string) ActivityLevel {
	switch a := ActivityLevel(strings.TrimSpace(s)); a {
	case LightlyActive, ModeratelyActive, VeryActive, ExtraActive:
		return a
	}
	return Sedentary
}

// ParseGoal maps s to a goal, defaulting to HealthImprovement.
func ParseGoal(s string) Goal {
	switch g := Goal(strings.TrimSpace(s)); g {
	case WeightLoss, MuscleGain:
		return g
	}
	return HealthImprovement
}

// Validate checks the profile ranges accepted by the personalisation form.
func (p Profile) Validate() error {
	if p.Gender != Male && p.Gender != Female {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, p.Gender)
	}
	if p.AgeYears < 0 || p.AgeYears > 120 {
		return fmt.Errorf("%w: age must be between 0 and 120", ErrInvalidProfile)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	return nil
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(g Gender, weightKg, heightCm, ageYears float64) float64 {
	base := 10.0*weightKg + 6.25*heightCm - 5.0*ageYears
	if g == Female {
		return base - 161
	}
	return base + 5
}

// Calculate returns the rounded daily calorie target for p.
func Calculate(p Profile) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	tdee := BMR(p.Gender, p.WeightKg, p.HeightCm, p.AgeYears) *
		p.ActivityLevel.Factor() *
		p.Goal.Multiplier()

	return int(math.Round(tdee)), nil
}
