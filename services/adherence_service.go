package services

import (
	"math"
	"strings"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
)

// Evaluator compares a day's logged meals/workouts against the active
// plan's prescriptions. The zero value is the strict exact-match policy:
// any numeric drift on a consumed item counts as a deviation. Tolerance
// widens the macro comparison to |planned-actual| <= Tolerance.
type Evaluator struct {
	Tolerance float64
}

func (e Evaluator) numbersMatch(a, b float64) bool {
	return math.Abs(a-b) <= e.Tolerance
}

// MealPlanDeviated returns true when the actual meals diverge from the
// planned ones. Absent input on either side or a meal-count mismatch
// short-circuits to deviated; otherwise every consumed item must have an
// exact planned counterpart and no planned item may be skipped.
func (e Evaluator) MealPlanDeviated(planned []models.PlannedMeal, actual []models.ActualMeal) bool {
	if len(planned) == 0 || len(actual) == 0 {
		return true
	}
	if len(planned) != len(actual) {
		return true
	}

	for _, am := range actual {
		pm, ok := findPlannedMeal(planned, am.MealType)
		if !ok {
			return true
		}
		if len(pm.Foods) != len(am.Items) {
			return true
		}
		for _, item := range am.Items {
			if !e.foodMatches(pm.Foods, item) {
				return true
			}
		}
	}
	return false
}

func findPlannedMeal(planned []models.PlannedMeal, mealType string) (models.PlannedMeal, bool) {
	for _, pm := range planned {
		if strings.EqualFold(strings.TrimSpace(pm.MealType), strings.TrimSpace(mealType)) {
			return pm, true
		}
	}
	return models.PlannedMeal{}, false
}

func (e Evaluator) foodMatches(foods []models.PlannedFood, item models.ConsumedFood) bool {
	for _, f := range foods {
		if f.Name == item.Name &&
			e.numbersMatch(f.Calories, item.Calories) &&
			e.numbersMatch(f.Protein, item.Protein) &&
			e.numbersMatch(f.Fat, item.Fat) &&
			f.Unit == item.Unit {
			return true
		}
	}
	return false
}

// WorkoutPlanDeviated applies the same count-then-match policy to
// exercises. Day and name compare trimmed and case-insensitively; sets and
// rest time numerically; reps as a trimmed range string ("8-12").
func (e Evaluator) WorkoutPlanDeviated(planned []models.PlannedExercise, actual []models.ActualWorkout) bool {
	if len(planned) == 0 || len(actual) == 0 {
		return true
	}
	if len(planned) != len(actual) {
		return true
	}

	for _, aw := range actual {
		if !exerciseMatches(planned, aw) {
			return true
		}
	}
	return false
}

func exerciseMatches(planned []models.PlannedExercise, aw models.ActualWorkout) bool {
	for _, pe := range planned {
		if strings.EqualFold(strings.TrimSpace(pe.Day), strings.TrimSpace(aw.Day)) &&
			strings.EqualFold(strings.TrimSpace(pe.Name), strings.TrimSpace(aw.Name)) &&
			pe.Sets == aw.Sets &&
			pe.RestTime == aw.RestTime &&
			strings.TrimSpace(pe.Reps) == strings.TrimSpace(aw.Reps) {
			return true
		}
	}
	return false
}

// AdherenceScore collapses the verdict to the binary score the dashboard
// renders: 0 for a deviated day, 100 otherwise.
func AdherenceScore(deviated bool) int {
	if deviated {
		return 0
	}
	return 100
}
