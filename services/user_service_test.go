package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func fullProfileInput() ProfileInput {
	return ProfileInput{
		Age:           intPtr(25),
		Gender:        strPtr("male"),
		Weight:        floatPtr(70),
		Height:        floatPtr(175),
		FitnessGoal:   strPtr(GoalFatLoss),
		ActivityLevel: strPtr("moderate"),
	}
}

func TestProfileCreate(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles, &fakePlanStore{})
	userID := primitive.NewObjectID()

	profile, err := svc.Create(context.Background(), userID, fullProfileInput())
	require.NoError(t, err)

	assert.Equal(t, 22.9, profile.BMI) // 70 / 1.75^2
	assert.Equal(t, "Normal weight", profile.BMICategory)

	t.Run("second create conflicts", func(t *testing.T) {
		_, err := svc.Create(context.Background(), userID, fullProfileInput())
		var ce *utils.ConflictError
		assert.ErrorAs(t, err, &ce)
	})
}

func TestProfileCreate_Validation(t *testing.T) {
	svc := NewProfileService(newFakeProfileStore(), &fakePlanStore{})
	userID := primitive.NewObjectID()

	t.Run("missing required field", func(t *testing.T) {
		in := fullProfileInput()
		in.Weight = nil
		_, err := svc.Create(context.Background(), userID, in)
		var ve *utils.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("age out of range", func(t *testing.T) {
		in := fullProfileInput()
		in.Age = intPtr(12)
		_, err := svc.Create(context.Background(), userID, in)
		var ve *utils.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestProfileUpdate_RecomputesBMIAndRetiresPlans(t *testing.T) {
	profiles := newFakeProfileStore()
	plans := &fakePlanStore{}
	svc := NewProfileService(profiles, plans)
	userID := primitive.NewObjectID()

	_, err := svc.Create(context.Background(), userID, fullProfileInput())
	require.NoError(t, err)

	plans.mealPlans = append(plans.mealPlans, &models.MealPlan{
		ID: primitive.NewObjectID(), UserID: userID, Status: models.PlanStatusActive,
	})
	plans.workoutPlans = append(plans.workoutPlans, &models.WorkoutPlan{
		ID: primitive.NewObjectID(), UserID: userID, Status: models.PlanStatusActive,
	})

	updated, err := svc.Update(context.Background(), userID, ProfileInput{Weight: floatPtr(80)})
	require.NoError(t, err)

	assert.Equal(t, 26.1, updated.BMI)
	assert.Equal(t, "Overweight", updated.BMICategory)
	assert.Equal(t, models.PlanStatusAccountUpdated, plans.mealPlans[0].Status)
	assert.Equal(t, models.PlanStatusAccountUpdated, plans.workoutPlans[0].Status)
}

func TestProfileUpdate_NonBodyFieldKeepsBMI(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles, &fakePlanStore{})
	userID := primitive.NewObjectID()

	created, err := svc.Create(context.Background(), userID, fullProfileInput())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), userID, ProfileInput{FitnessGoal: strPtr(GoalMuscleGain)})
	require.NoError(t, err)
	assert.Equal(t, created.BMI, updated.BMI)
	assert.Equal(t, GoalMuscleGain, updated.FitnessGoal)
}

func TestProfileDelete(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles, &fakePlanStore{})
	userID := primitive.NewObjectID()

	_, err := svc.Create(context.Background(), userID, fullProfileInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), userID))

	_, err = svc.Get(context.Background(), userID)
	var nf *utils.NotFoundError
	assert.ErrorAs(t, err, &nf)

	t.Run("deleting again is not found", func(t *testing.T) {
		err := svc.Delete(context.Background(), userID)
		assert.ErrorAs(t, err, &nf)
	})
}
