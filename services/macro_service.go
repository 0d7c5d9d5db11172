package services

import "math"

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Unrecognized levels fall back to sedentary.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	GoalFatLoss     = "fat_loss"
	GoalMuscleGain  = "muscle_gain"
	GoalMaintenance = "maintenance"
)

type MacroInput struct {
	Gender        string
	Weight        float64 // kg
	Height        float64 // cm
	Age           int
	ActivityLevel string
	FitnessGoal   string
}

type MacroTargets struct {
	BMR      float64
	TDEE     float64
	Calories int
	Protein  int // g
	Fat      int // g
	Carbs    int // g, may go negative for extreme inputs
}

// CalculateMacros derives daily calorie and macro targets from a profile.
// BMR via Mifflin-St Jeor, TDEE via the activity multiplier, then a goal
// adjustment: -500 kcal for fat loss, +300 for muscle gain. Minors never
// get cut below 90% of TDEE.
func CalculateMacros(in MacroInput) MacroTargets {
	bmr := 10*in.Weight + 6.25*in.Height - 5*float64(in.Age)
	if in.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		mult = 1.2
	}
	tdee := bmr * mult

	var calories float64
	switch in.FitnessGoal {
	case GoalFatLoss:
		calories = tdee - 500
	case GoalMuscleGain:
		calories = tdee + 300
	default:
		calories = tdee
	}
	calTarget := int(math.Round(calories))

	if in.Age < 18 && in.FitnessGoal == GoalFatLoss {
		floor := int(math.Round(tdee * 0.9))
		if calTarget < floor {
			calTarget = floor
		}
	}

	proteinPerKg := 1.2
	switch in.FitnessGoal {
	case GoalMuscleGain:
		proteinPerKg = 2.0
	case GoalFatLoss:
		proteinPerKg = 1.6
	}
	protein := int(math.Round(in.Weight * proteinPerKg))

	fat := int(math.Round(float64(calTarget) * 0.25 / 9))

	// Carbs take whatever calories remain. Not clamped, extreme profiles
	// can come out negative.
	carbs := int(math.Round((float64(calTarget) - float64(protein)*4 - float64(fat)*9) / 4))

	return MacroTargets{
		BMR:      bmr,
		TDEE:     tdee,
		Calories: calTarget,
		Protein:  protein,
		Fat:      fat,
		Carbs:    carbs,
	}
}
