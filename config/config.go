package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	MongoURI     string
	DBName       string
	Port         string
	GeminiAPIKey string
	GeminiModel  string
)

const (
	UsersCollection         = "users"
	ProfilesCollection      = "user_profiles"
	MealPlansCollection     = "meal_plans"
	WorkoutPlansCollection  = "workout_plans"
	DailyProgressCollection = "daily_progress"
	FeedbackCollection      = "plan_feedback"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}
	DBName = os.Getenv("DB_NAME")
	if DBName == "" {
		DBName = "fitplanner"
	}
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}
	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiModel = os.Getenv("GEMINI_MODEL")
	if GeminiModel == "" {
		GeminiModel = "gemini-1.5-flash"
	}
}

func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping mongodb: %v", err)
	}
	Client = client

	if err := ensureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("Connected to MongoDB")
}

func GetCollection(name string) *mongo.Collection {
	if Client == nil {
		log.Fatal("MongoDB client is not initialized")
	}
	return Client.Database(DBName).Collection(name)
}

// ensureIndexes sets up the constraints the services rely on. The unique
// (user_id, date) index on daily_progress is what makes concurrent saves
// for the same day collapse into one record.
func ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := GetCollection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = GetCollection(ProfilesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = GetCollection(DailyProgressCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	for _, coll := range []string{MealPlansCollection, WorkoutPlansCollection} {
		_, err = GetCollection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
