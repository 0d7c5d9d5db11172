package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/config"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

const opTimeout = 5 * time.Second

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo() *UserRepo {
	return &UserRepo{coll: config.GetCollection(config.UsersCollection)}
}

func (r *UserRepo) Insert(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.Conflictf("email already registered")
		}
		return &utils.StoreError{Op: "insert user", Err: err}
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ByEmail returns (nil, nil) when no user exists.
func (r *UserRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find user", Err: err}
	}
	return &u, nil
}

func (r *UserRepo) ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &utils.StoreError{Op: "find user", Err: err}
	}
	return &u, nil
}
