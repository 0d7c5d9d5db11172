package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/config"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

// PlanRepo serves both plan collections; meal and workout plans share the
// same lifecycle, only the document shape differs.
type PlanRepo struct {
	meals    *mongo.Collection
	workouts *mongo.Collection
}

func NewPlanRepo() *PlanRepo {
	return &PlanRepo{
		meals:    config.GetCollection(config.MealPlansCollection),
		workouts: config.GetCollection(config.WorkoutPlansCollection),
	}
}

func (r *PlanRepo) InsertMealPlan(ctx context.Context, p *models.MealPlan) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.meals.InsertOne(ctx, p)
	if err != nil {
		return &utils.StoreError{Op: "insert meal plan", Err: err}
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PlanRepo) InsertWorkoutPlan(ctx context.Context, p *models.WorkoutPlan) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.workouts.InsertOne(ctx, p)
	if err != nil {
		return &utils.StoreError{Op: "insert workout plan", Err: err}
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PlanRepo) DeleteMealPlan(ctx context.Context, userID, planID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.meals.DeleteOne(ctx, bson.M{"_id": planID, "user_id": userID})
	if err != nil {
		return &utils.StoreError{Op: "delete meal plan", Err: err}
	}
	return nil
}

func (r *PlanRepo) DeleteWorkoutPlan(ctx context.Context, userID, planID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.workouts.DeleteOne(ctx, bson.M{"_id": planID, "user_id": userID})
	if err != nil {
		return &utils.StoreError{Op: "delete workout plan", Err: err}
	}
	return nil
}

// ActiveMealPlan returns (nil, nil) when the user has no active plan.
func (r *PlanRepo) ActiveMealPlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.MealPlan
	err := r.meals.FindOne(ctx,
		bson.M{"user_id": userID, "status": models.PlanStatusActive},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find active meal plan", Err: err}
	}
	return &p, nil
}

func (r *PlanRepo) ActiveWorkoutPlan(ctx context.Context, userID primitive.ObjectID) (*models.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.WorkoutPlan
	err := r.workouts.FindOne(ctx,
		bson.M{"user_id": userID, "status": models.PlanStatusActive},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find active workout plan", Err: err}
	}
	return &p, nil
}

func (r *PlanRepo) MealPlanByID(ctx context.Context, userID, planID primitive.ObjectID) (*models.MealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.MealPlan
	err := r.meals.FindOne(ctx, bson.M{"_id": planID, "user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find meal plan", Err: err}
	}
	return &p, nil
}

func (r *PlanRepo) WorkoutPlanByID(ctx context.Context, userID, planID primitive.ObjectID) (*models.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.WorkoutPlan
	err := r.workouts.FindOne(ctx, bson.M{"_id": planID, "user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find workout plan", Err: err}
	}
	return &p, nil
}

func (r *PlanRepo) collFor(planType string) *mongo.Collection {
	if planType == models.PlanTypeWorkout {
		return r.workouts
	}
	return r.meals
}

// SetStatus updates one plan's status; reports whether a plan matched.
func (r *PlanRepo) SetStatus(ctx context.Context, planType string, userID, planID primitive.ObjectID, status string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.collFor(planType).UpdateOne(ctx,
		bson.M{"_id": planID, "user_id": userID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, &utils.StoreError{Op: "update plan status", Err: err}
	}
	return res.MatchedCount > 0, nil
}

// RetireActive flips every active plan of the given type to the given
// status. Used to keep at most one active plan per type per user.
func (r *PlanRepo) RetireActive(ctx context.Context, planType string, userID primitive.ObjectID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.collFor(planType).UpdateMany(ctx,
		bson.M{"user_id": userID, "status": models.PlanStatusActive},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return &utils.StoreError{Op: "retire active plans", Err: err}
	}
	return nil
}

func (r *PlanRepo) SetDates(ctx context.Context, planType string, userID, planID primitive.ObjectID, start, end time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.collFor(planType).UpdateOne(ctx,
		bson.M{"_id": planID, "user_id": userID},
		bson.M{"$set": bson.M{"start_date": start, "end_date": end}},
	)
	if err != nil {
		return &utils.StoreError{Op: "update plan dates", Err: err}
	}
	return nil
}

func (r *PlanRepo) ListMealPlans(ctx context.Context, userID primitive.ObjectID) ([]models.MealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.meals.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, &utils.StoreError{Op: "list meal plans", Err: err}
	}
	var plans []models.MealPlan
	if err := cur.All(ctx, &plans); err != nil {
		return nil, &utils.StoreError{Op: "list meal plans", Err: err}
	}
	return plans, nil
}

func (r *PlanRepo) ListWorkoutPlans(ctx context.Context, userID primitive.ObjectID) ([]models.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.workouts.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, &utils.StoreError{Op: "list workout plans", Err: err}
	}
	var plans []models.WorkoutPlan
	if err := cur.All(ctx, &plans); err != nil {
		return nil, &utils.StoreError{Op: "list workout plans", Err: err}
	}
	return plans, nil
}
