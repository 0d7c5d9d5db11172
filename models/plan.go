package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan lifecycle statuses. A user has at most one active plan per type;
// new generation and profile updates retire the previous one.
const (
	PlanStatusActive         = "active"
	PlanStatusCompleted      = "completed"
	PlanStatusNotSuitable    = "not_suitable"
	PlanStatusAccountUpdated = "account_updated"
)

const (
	PlanTypeMeal    = "meal"
	PlanTypeWorkout = "workout"
)

// PlannedFood is one prescribed food item inside a planned meal.
type PlannedFood struct {
	Name     string  `bson:"name" json:"name"`
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Fat      float64 `bson:"fat" json:"fat"`
	Unit     string  `bson:"unit" json:"unit"`
}

// PlannedMeal groups the prescribed foods for one meal type (breakfast, ...).
type PlannedMeal struct {
	MealType string        `bson:"meal_type" json:"meal_type"`
	Foods    []PlannedFood `bson:"foods" json:"foods"`
}

// PlannedExercise is one prescribed exercise for a weekday.
type PlannedExercise struct {
	Name            string  `bson:"name" json:"name"`
	TargetMuscle    string  `bson:"target_muscle" json:"target_muscle"`
	Sets            int     `bson:"sets" json:"sets"`
	Reps            string  `bson:"reps" json:"reps"` // range string, e.g. "8-12"
	RestTime        int     `bson:"rest_time" json:"rest_time"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	CaloriesBurned  float64 `bson:"calories_burned" json:"calories_burned"`
	Day             string  `bson:"day" json:"day"`
}

// MealPlan is a time-boxed diet prescription. Start/end are inclusive
// calendar days, stored at UTC midnight.
type MealPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title         string             `bson:"title" json:"title"`
	Status        string             `bson:"status" json:"status"`
	StartDate     time.Time          `bson:"start_date" json:"start_date"`
	EndDate       time.Time          `bson:"end_date" json:"end_date"`
	TotalCalories float64            `bson:"total_calories" json:"total_calories"`
	Meals         []PlannedMeal      `bson:"meals" json:"meals"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// WorkoutPlan is the exercise counterpart of MealPlan.
type WorkoutPlan struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title      string             `bson:"title" json:"title"`
	Status     string             `bson:"status" json:"status"`
	StartDate  time.Time          `bson:"start_date" json:"start_date"`
	EndDate    time.Time          `bson:"end_date" json:"end_date"`
	Difficulty string             `bson:"difficulty" json:"difficulty"`
	Exercises  []PlannedExercise  `bson:"exercises" json:"exercises"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
