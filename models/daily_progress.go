package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConsumedFood is one food item the user actually ate.
type ConsumedFood struct {
	Name     string  `bson:"name" json:"name"`
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Fat      float64 `bson:"fat" json:"fat"`
	Unit     string  `bson:"unit" json:"unit"`
}

type ActualMeal struct {
	MealType string         `bson:"meal_type" json:"meal_type"`
	Items    []ConsumedFood `bson:"items" json:"items"`
}

type ActualWorkout struct {
	Name           string  `bson:"name" json:"name"`
	Sets           int     `bson:"sets" json:"sets"`
	Reps           string  `bson:"reps" json:"reps"`
	RestTime       int     `bson:"rest_time" json:"rest_time"`
	CaloriesBurned float64 `bson:"calories_burned" json:"calories_burned"`
	Duration       int     `bson:"duration" json:"duration"`
	Day            string  `bson:"day" json:"day"`
}

// DailyProgress is the one-per-user-per-day log of actual behavior and the
// adherence verdicts derived against the plans active at save time.
// Date is always UTC midnight; (user_id, date) carries a unique index.
type DailyProgress struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID                primitive.ObjectID `bson:"user_id" json:"user_id"`
	Date                  time.Time          `bson:"date" json:"date"`
	Weight                float64            `bson:"weight" json:"weight"`
	BodyFatPercentage     float64            `bson:"body_fat_percentage" json:"body_fat_percentage"`
	Measurements          map[string]float64 `bson:"measurements" json:"measurements"`
	Meals                 []ActualMeal       `bson:"meals" json:"meals"`
	Workouts              []ActualWorkout    `bson:"workouts" json:"workouts"`
	TotalCaloriesTaken    float64            `bson:"total_calories_taken" json:"total_calories_taken"`
	TotalCaloriesBurned   float64            `bson:"total_calories_burned" json:"total_calories_burned"`
	MealAdherenceScore    int                `bson:"meal_adherence_score" json:"meal_adherence_score"`
	WorkoutAdherenceScore int                `bson:"workout_adherence_score" json:"workout_adherence_score"`
	DeviatedMealPlan      bool               `bson:"deviated_meal_plan" json:"deviated_meal_plan"`
	DeviatedWorkoutPlan   bool               `bson:"deviated_workout_plan" json:"deviated_workout_plan"`
	MealPlanID            primitive.ObjectID `bson:"mealplan_id,omitempty" json:"mealplan_id"`
	WorkoutPlanID         primitive.ObjectID `bson:"workoutplan_id,omitempty" json:"workoutplan_id"`
	Completed             bool               `bson:"completed" json:"completed"`
}
