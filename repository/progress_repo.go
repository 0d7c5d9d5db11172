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

type ProgressRepo struct {
	coll *mongo.Collection
}

func NewProgressRepo() *ProgressRepo {
	return &ProgressRepo{coll: config.GetCollection(config.DailyProgressCollection)}
}

// Upsert replaces the record for (user_id, date) or creates it. The unique
// index on those fields makes concurrent saves for the same day collapse
// into a single document.
func (r *ProgressRepo) Upsert(ctx context.Context, p *models.DailyProgress) (*models.DailyProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"user_id": p.UserID, "date": p.Date}
	res, err := r.coll.ReplaceOne(ctx, filter, p, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, &utils.StoreError{Op: "upsert daily progress", Err: err}
	}
	if res.UpsertedID != nil {
		p.ID = res.UpsertedID.(primitive.ObjectID)
	} else if p.ID.IsZero() {
		var existing models.DailyProgress
		if err := r.coll.FindOne(ctx, filter).Decode(&existing); err == nil {
			p.ID = existing.ID
		}
	}
	return p, nil
}

// ByDateRange returns the single record whose date falls in [from, to),
// or (nil, nil) when the day has no record.
func (r *ProgressRepo) ByDateRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (*models.DailyProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.DailyProgress
	err := r.coll.FindOne(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find daily progress", Err: err}
	}
	return &p, nil
}

func (r *ProgressRepo) ExistsInRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, &utils.StoreError{Op: "count daily progress", Err: err}
	}
	return n > 0, nil
}

// ExistsForPlan reports whether any progress record references the plan,
// as meal plan or workout plan. Gates plan date resets.
func (r *ProgressRepo) ExistsForPlan(ctx context.Context, userID, planID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"$or": []bson.M{
			{"mealplan_id": planID},
			{"workoutplan_id": planID},
		},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, &utils.StoreError{Op: "count progress for plan", Err: err}
	}
	return n > 0, nil
}

// ListCompleted returns completed records ascending by date, optionally
// scoped to records referencing any of the given plan ids.
func (r *ProgressRepo) ListCompleted(ctx context.Context, userID primitive.ObjectID, planIDs []primitive.ObjectID) ([]models.DailyProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "completed": true}
	if len(planIDs) > 0 {
		filter["$or"] = []bson.M{
			{"mealplan_id": bson.M{"$in": planIDs}},
			{"workoutplan_id": bson.M{"$in": planIDs}},
		}
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, &utils.StoreError{Op: "list completed progress", Err: err}
	}
	var records []models.DailyProgress
	if err := cur.All(ctx, &records); err != nil {
		return nil, &utils.StoreError{Op: "list completed progress", Err: err}
	}
	return records, nil
}
