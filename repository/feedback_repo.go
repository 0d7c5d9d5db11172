package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/config"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

type FeedbackRepo struct {
	coll *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{coll: config.GetCollection(config.FeedbackCollection)}
}

func (r *FeedbackRepo) Insert(ctx context.Context, f *models.PlanFeedback) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		return &utils.StoreError{Op: "insert feedback", Err: err}
	}
	f.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
