package model

// TimeFrame selects a single-day or a full-week meal plan.
type TimeFrame string

const (
	TimeFrameDaily  TimeFrame = "daily"
	TimeFrameWeekly TimeFrame = "weekly"
)

// APIValue is the timeFrame query value the recipe API expects.
func (t TimeFrame) APIValue() string {
	if t == TimeFrameWeekly {
		return "week"
	}
	return "day"
}

// Valid reports whether t is a known time frame.
func (t TimeFrame) Valid() bool {
	return t == TimeFrameDaily || t == TimeFrameWeekly
}

// Weekdays lists the keys of a weekly plan in calendar order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Meal is one recipe in a plan.
type Meal struct {
	ID             int    `json:"id"`
	ImageType      string `json:"imageType,omitempty"`
	Title          string `json:"title"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"sourceUrl"`
	Image          string `json:"image,omitempty"`
}

// Nutrients summarises a day's intake.
type Nutrients struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

// DayPlan is the meals and nutrients for one day.
type DayPlan struct {
	Meals     []Meal    `json:"meals"`
	Nutrients Nutrients `json:"nutrients"`
}

// MealPlan is either a single day (Meals/Nutrients set) or a week keyed by
// lower-case weekday name.
type MealPlan struct {
	Meals     []Meal             `json:"meals,omitempty"`
	Nutrients *Nutrients         `json:"nutrients,omitempty"`
	Week      map[string]DayPlan `json:"week,omitempty"`
}

// IsWeekly reports whether the plan is keyed by weekday.
func (p *MealPlan) IsWeekly() bool {
	return len(p.Week) > 0
}

// Days returns the plan's days in calendar order; a daily plan yields one.
func (p *MealPlan) Days() []DayPlan {
	if !p.IsWeekly() {
		day := DayPlan{Meals: p.Meals}
		if p.Nutrients != nil {
			day.Nutrients = *p.Nutrients
		}
		return []DayPlan{day}
	}
	days := make([]DayPlan, 0, len(p.Week))
	for _, name := range Weekdays {
		if d, ok := p.Week[name]; ok {
			days = append(days, d)
		}
	}
	return days
}

// EachMeal calls fn with a pointer to every meal in the plan so callers can
// fill in resolved fields in place.
func (p *MealPlan) EachMeal(fn func(m *Meal)) {
	for i := range p.Meals {
		fn(&p.Meals[i])
	}
	for _, day := range p.Week {
		// day is a copy but shares the Meals backing array
		for i := range day.Meals {
			fn(&day.Meals[i])
		}
	}
}
