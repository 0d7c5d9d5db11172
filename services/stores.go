package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
)

// Store interfaces consumed by the services. The repository package holds
// the Mongo implementations; tests substitute in-memory fakes.

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type ProfileStore interface {
	Insert(ctx context.Context, p *models.UserProfile) error
	ByUserID(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error)
	Replace(ctx context.Context, p *models.UserProfile) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}

type PlanStore interface {
	InsertMealPlan(ctx context.Context, p *models.MealPlan) error
	InsertWorkoutPlan(ctx context.Context, p *models.WorkoutPlan) error
	DeleteMealPlan(ctx context.Context, userID, planID primitive.ObjectID) error
	DeleteWorkoutPlan(ctx context.Context, userID, planID primitive.ObjectID) error
	ActiveMealPlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error)
	ActiveWorkoutPlan(ctx context.Context, userID primitive.ObjectID) (*models.WorkoutPlan, error)
	MealPlanByID(ctx context.Context, userID, planID primitive.ObjectID) (*models.MealPlan, error)
	WorkoutPlanByID(ctx context.Context, userID, planID primitive.ObjectID) (*models.WorkoutPlan, error)
	SetStatus(ctx context.Context, planType string, userID, planID primitive.ObjectID, status string) (bool, error)
	RetireActive(ctx context.Context, planType string, userID primitive.ObjectID, status string) error
	SetDates(ctx context.Context, planType string, userID, planID primitive.ObjectID, start, end time.Time) error
	ListMealPlans(ctx context.Context, userID primitive.ObjectID) ([]models.MealPlan, error)
	ListWorkoutPlans(ctx context.Context, userID primitive.ObjectID) ([]models.WorkoutPlan, error)
}

type ProgressStore interface {
	Upsert(ctx context.Context, p *models.DailyProgress) (*models.DailyProgress, error)
	ByDateRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (*models.DailyProgress, error)
	ExistsInRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (bool, error)
	ExistsForPlan(ctx context.Context, userID, planID primitive.ObjectID) (bool, error)
	ListCompleted(ctx context.Context, userID primitive.ObjectID, planIDs []primitive.ObjectID) ([]models.DailyProgress, error)
}

type FeedbackStore interface {
	Insert(ctx context.Context, f *models.PlanFeedback) error
}
