package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/config"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

type ProfileRepo struct {
	coll *mongo.Collection
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{coll: config.GetCollection(config.ProfilesCollection)}
}

func (r *ProfileRepo) Insert(ctx context.Context, p *models.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.Conflictf("profile already exists for user")
		}
		return &utils.StoreError{Op: "insert profile", Err: err}
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProfileRepo) ByUserID(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.UserProfile
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find profile", Err: err}
	}
	return &p, nil
}

func (r *ProfileRepo) Replace(ctx context.Context, p *models.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": p.UserID}, p)
	if err != nil {
		return &utils.StoreError{Op: "replace profile", Err: err}
	}
	return nil
}

func (r *ProfileRepo) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return &utils.StoreError{Op: "delete profile", Err: err}
	}
	return nil
}
