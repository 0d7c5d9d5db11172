package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

// In-memory store fakes shared by the service tests.

type fakePlanStore struct {
	mealPlans    []*models.MealPlan
	workoutPlans []*models.WorkoutPlan
}

func (f *fakePlanStore) InsertMealPlan(_ context.Context, p *models.MealPlan) error {
	p.ID = primitive.NewObjectID()
	f.mealPlans = append(f.mealPlans, p)
	return nil
}

func (f *fakePlanStore) InsertWorkoutPlan(_ context.Context, p *models.WorkoutPlan) error {
	p.ID = primitive.NewObjectID()
	f.workoutPlans = append(f.workoutPlans, p)
	return nil
}

func (f *fakePlanStore) DeleteMealPlan(_ context.Context, userID, planID primitive.ObjectID) error {
	for i, p := range f.mealPlans {
		if p.ID == planID && p.UserID == userID {
			f.mealPlans = append(f.mealPlans[:i], f.mealPlans[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePlanStore) DeleteWorkoutPlan(_ context.Context, userID, planID primitive.ObjectID) error {
	for i, p := range f.workoutPlans {
		if p.ID == planID && p.UserID == userID {
			f.workoutPlans = append(f.workoutPlans[:i], f.workoutPlans[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePlanStore) ActiveMealPlan(_ context.Context, userID primitive.ObjectID) (*models.MealPlan, error) {
	for _, p := range f.mealPlans {
		if p.UserID == userID && p.Status == models.PlanStatusActive {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanStore) ActiveWorkoutPlan(_ context.Context, userID primitive.ObjectID) (*models.WorkoutPlan, error) {
	for _, p := range f.workoutPlans {
		if p.UserID == userID && p.Status == models.PlanStatusActive {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanStore) MealPlanByID(_ context.Context, userID, planID primitive.ObjectID) (*models.MealPlan, error) {
	for _, p := range f.mealPlans {
		if p.ID == planID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanStore) WorkoutPlanByID(_ context.Context, userID, planID primitive.ObjectID) (*models.WorkoutPlan, error) {
	for _, p := range f.workoutPlans {
		if p.ID == planID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanStore) SetStatus(_ context.Context, planType string, userID, planID primitive.ObjectID, status string) (bool, error) {
	if planType == models.PlanTypeWorkout {
		for _, p := range f.workoutPlans {
			if p.ID == planID && p.UserID == userID {
				p.Status = status
				return true, nil
			}
		}
		return false, nil
	}
	for _, p := range f.mealPlans {
		if p.ID == planID && p.UserID == userID {
			p.Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlanStore) RetireActive(_ context.Context, planType string, userID primitive.ObjectID, status string) error {
	if planType == models.PlanTypeWorkout {
		for _, p := range f.workoutPlans {
			if p.UserID == userID && p.Status == models.PlanStatusActive {
				p.Status = status
			}
		}
		return nil
	}
	for _, p := range f.mealPlans {
		if p.UserID == userID && p.Status == models.PlanStatusActive {
			p.Status = status
		}
	}
	return nil
}

func (f *fakePlanStore) SetDates(_ context.Context, planType string, userID, planID primitive.ObjectID, start, end time.Time) error {
	if planType == models.PlanTypeWorkout {
		for _, p := range f.workoutPlans {
			if p.ID == planID && p.UserID == userID {
				p.StartDate, p.EndDate = start, end
			}
		}
		return nil
	}
	for _, p := range f.mealPlans {
		if p.ID == planID && p.UserID == userID {
			p.StartDate, p.EndDate = start, end
		}
	}
	return nil
}

func (f *fakePlanStore) ListMealPlans(_ context.Context, userID primitive.ObjectID) ([]models.MealPlan, error) {
	var out []models.MealPlan
	for _, p := range f.mealPlans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanStore) ListWorkoutPlans(_ context.Context, userID primitive.ObjectID) ([]models.WorkoutPlan, error) {
	var out []models.WorkoutPlan
	for _, p := range f.workoutPlans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeProgressStore struct {
	records []*models.DailyProgress
}

func (f *fakeProgressStore) Upsert(_ context.Context, p *models.DailyProgress) (*models.DailyProgress, error) {
	for i, r := range f.records {
		if r.UserID == p.UserID && r.Date.Equal(p.Date) {
			p.ID = r.ID
			f.records[i] = p
			return p, nil
		}
	}
	p.ID = primitive.NewObjectID()
	f.records = append(f.records, p)
	return p, nil
}

func (f *fakeProgressStore) ByDateRange(_ context.Context, userID primitive.ObjectID, from, to time.Time) (*models.DailyProgress, error) {
	for _, r := range f.records {
		if r.UserID == userID && !r.Date.Before(from) && r.Date.Before(to) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeProgressStore) ExistsInRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (bool, error) {
	r, err := f.ByDateRange(ctx, userID, from, to)
	return r != nil, err
}

func (f *fakeProgressStore) ExistsForPlan(_ context.Context, userID, planID primitive.ObjectID) (bool, error) {
	for _, r := range f.records {
		if r.UserID == userID && (r.MealPlanID == planID || r.WorkoutPlanID == planID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProgressStore) ListCompleted(_ context.Context, userID primitive.ObjectID, planIDs []primitive.ObjectID) ([]models.DailyProgress, error) {
	matchesPlan := func(r *models.DailyProgress) bool {
		if len(planIDs) == 0 {
			return true
		}
		for _, id := range planIDs {
			if r.MealPlanID == id || r.WorkoutPlanID == id {
				return true
			}
		}
		return false
	}

	var out []models.DailyProgress
	for _, r := range f.records {
		if r.UserID == userID && r.Completed && matchesPlan(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type fakeProfileStore struct {
	profiles map[primitive.ObjectID]*models.UserProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[primitive.ObjectID]*models.UserProfile{}}
}

func (f *fakeProfileStore) Insert(_ context.Context, p *models.UserProfile) error {
	if _, ok := f.profiles[p.UserID]; ok {
		return utils.Conflictf("profile already exists for user")
	}
	p.ID = primitive.NewObjectID()
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeProfileStore) ByUserID(_ context.Context, userID primitive.ObjectID) (*models.UserProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileStore) Replace(_ context.Context, p *models.UserProfile) error {
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeProfileStore) DeleteByUserID(_ context.Context, userID primitive.ObjectID) error {
	delete(f.profiles, userID)
	return nil
}

type fakeFeedbackStore struct {
	entries []*models.PlanFeedback
}

func (f *fakeFeedbackStore) Insert(_ context.Context, fb *models.PlanFeedback) error {
	fb.ID = primitive.NewObjectID()
	f.entries = append(f.entries, fb)
	return nil
}

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Generate(context.Context, string) (string, error) {
	return s.response, s.err
}
