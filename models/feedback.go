package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanFeedback is an append-only record of why a user rejected a plan.
type PlanFeedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	PlanID    primitive.ObjectID `bson:"plan_id" json:"plan_id"`
	PlanType  string             `bson:"plan_type" json:"plan_type"` // "meal" | "workout"
	Reason    string             `bson:"reason" json:"reason"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
