package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

type ProfileService struct {
	profiles ProfileStore
	plans    PlanStore
}

func NewProfileService(profiles ProfileStore, plans PlanStore) *ProfileService {
	return &ProfileService{profiles: profiles, plans: plans}
}

// ProfileInput is the mutable slice of a profile. Nil pointer fields on
// update mean "leave unchanged".
type ProfileInput struct {
	Age                 *int     `json:"age"`
	Gender              *string  `json:"gender"`
	Weight              *float64 `json:"weight"`
	Height              *float64 `json:"height"`
	FitnessGoal         *string  `json:"fitness_goal"`
	ActivityLevel       *string  `json:"activity_level"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	HealthConditions    []string `json:"health_conditions"`
	Preferences         []string `json:"preferences"`
	CulturalDietary     []string `json:"cultural_dietary"`
}

func validateAge(age int) error {
	if age < 13 || age > 120 {
		return utils.Validationf("age must be between 13 and 120")
	}
	return nil
}

func (s *ProfileService) Create(ctx context.Context, userID primitive.ObjectID, in ProfileInput) (*models.UserProfile, error) {
	if in.Age == nil || in.Gender == nil || in.Weight == nil || in.Height == nil ||
		in.FitnessGoal == nil || in.ActivityLevel == nil {
		return nil, utils.Validationf("age, gender, weight, height, fitness goal and activity level are required")
	}
	if err := validateAge(*in.Age); err != nil {
		return nil, err
	}

	bmi, err := utils.CalculateBMI(*in.Height, *in.Weight)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &models.UserProfile{
		UserID:              userID,
		Age:                 *in.Age,
		Gender:              *in.Gender,
		Weight:              *in.Weight,
		Height:              *in.Height,
		FitnessGoal:         *in.FitnessGoal,
		ActivityLevel:       *in.ActivityLevel,
		DietaryRestrictions: in.DietaryRestrictions,
		HealthConditions:    in.HealthConditions,
		Preferences:         in.Preferences,
		CulturalDietary:     in.CulturalDietary,
		BMI:                 bmi,
		BMICategory:         utils.BMICategory(bmi),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.profiles.Insert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error) {
	profile, err := s.profiles.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundf("no profile for user")
	}
	return profile, nil
}

// Update applies the given fields, recomputes BMI when weight or height
// changed, and retires both active plans: they were generated against the
// old profile and no longer describe this user.
func (s *ProfileService) Update(ctx context.Context, userID primitive.ObjectID, in ProfileInput) (*models.UserProfile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	bodyChanged := false
	if in.Age != nil {
		if err := validateAge(*in.Age); err != nil {
			return nil, err
		}
		profile.Age = *in.Age
	}
	if in.Gender != nil {
		profile.Gender = *in.Gender
	}
	if in.Weight != nil {
		profile.Weight = *in.Weight
		bodyChanged = true
	}
	if in.Height != nil {
		profile.Height = *in.Height
		bodyChanged = true
	}
	if in.FitnessGoal != nil {
		profile.FitnessGoal = *in.FitnessGoal
	}
	if in.ActivityLevel != nil {
		profile.ActivityLevel = *in.ActivityLevel
	}
	if in.DietaryRestrictions != nil {
		profile.DietaryRestrictions = in.DietaryRestrictions
	}
	if in.HealthConditions != nil {
		profile.HealthConditions = in.HealthConditions
	}
	if in.Preferences != nil {
		profile.Preferences = in.Preferences
	}
	if in.CulturalDietary != nil {
		profile.CulturalDietary = in.CulturalDietary
	}

	if bodyChanged {
		bmi, err := utils.CalculateBMI(profile.Height, profile.Weight)
		if err != nil {
			return nil, err
		}
		profile.BMI = bmi
		profile.BMICategory = utils.BMICategory(bmi)
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Replace(ctx, profile); err != nil {
		return nil, err
	}

	for _, planType := range []string{models.PlanTypeMeal, models.PlanTypeWorkout} {
		if err := s.plans.RetireActive(ctx, planType, userID, models.PlanStatusAccountUpdated); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (s *ProfileService) Delete(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	return s.profiles.DeleteByUserID(ctx, userID)
}
