package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile holds the health/fitness attributes used to derive macro
// targets and generate plans. Exactly one per user (unique index on user_id).
type UserProfile struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"user_id" json:"user_id"`
	Age                 int                `bson:"age" json:"age"`
	Gender              string             `bson:"gender" json:"gender"` // "male" | "female" | "other"
	Weight              float64            `bson:"weight" json:"weight"` // kg
	Height              float64            `bson:"height" json:"height"` // cm
	FitnessGoal         string             `bson:"fitness_goal" json:"fitness_goal"`     // "fat_loss" | "muscle_gain" | "maintenance"
	ActivityLevel       string             `bson:"activity_level" json:"activity_level"` // "sedentary" | "light" | "moderate" | "active" | "very_active"
	DietaryRestrictions []string           `bson:"dietary_restrictions" json:"dietary_restrictions"`
	HealthConditions    []string           `bson:"health_conditions" json:"health_conditions"`
	Preferences         []string           `bson:"preferences" json:"preferences"`
	CulturalDietary     []string           `bson:"cultural_dietary" json:"cultural_dietary"`
	BMI                 float64            `bson:"bmi" json:"bmi"`
	BMICategory         string             `bson:"bmi_category" json:"bmi_category"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}
