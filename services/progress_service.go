package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

type ProgressService struct {
	progress ProgressStore
	plans    PlanStore
	eval     Evaluator
}

func NewProgressService(progress ProgressStore, plans PlanStore) *ProgressService {
	return &ProgressService{progress: progress, plans: plans}
}

// SaveDailyProgressInput carries one day's log. Pointer fields distinguish
// "absent" from zero; every field is required.
type SaveDailyProgressInput struct {
	UserID       primitive.ObjectID
	Date         *time.Time
	Weight       *float64
	BodyFat      *float64
	Measurements map[string]float64
	Meals        []models.ActualMeal
	Workouts     []models.ActualWorkout
}

func (in *SaveDailyProgressInput) validate() error {
	switch {
	case in.UserID.IsZero():
		return utils.Validationf("user id is required")
	case in.Date == nil:
		return utils.Validationf("date is required")
	case in.Weight == nil:
		return utils.Validationf("weight is required")
	case in.BodyFat == nil:
		return utils.Validationf("body fat percentage is required")
	case in.Measurements == nil:
		return utils.Validationf("measurements are required")
	case in.Meals == nil:
		return utils.Validationf("meals are required")
	case in.Workouts == nil:
		return utils.Validationf("workouts are required")
	}
	return nil
}

// SaveDailyProgress records one day: resolve the active plans, evaluate
// adherence of the logged meals/workouts against them, and upsert the
// record keyed on (user, UTC-midnight date). Saving the same day twice
// overwrites; the unique index keeps it to one record.
func (s *ProgressService) SaveDailyProgress(ctx context.Context, in SaveDailyProgressInput) (*models.DailyProgress, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	day := utils.NormalizeToUTCMidnight(*in.Date)

	mealPlan, err := s.plans.ActiveMealPlan(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if mealPlan == nil {
		return nil, utils.NotFoundf("no active meal plan")
	}
	// A missing workout plan is tolerated: rest phases are normal. The day
	// then carries no workout deviation and a zero score.
	workoutPlan, err := s.plans.ActiveWorkoutPlan(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	var caloriesTaken float64
	for _, m := range in.Meals {
		for _, item := range m.Items {
			caloriesTaken += item.Calories
		}
	}
	var caloriesBurned float64
	for _, w := range in.Workouts {
		caloriesBurned += w.CaloriesBurned
	}

	mealDeviated := s.eval.MealPlanDeviated(mealPlan.Meals, in.Meals)

	record := &models.DailyProgress{
		UserID:              in.UserID,
		Date:                day,
		Weight:              *in.Weight,
		BodyFatPercentage:   *in.BodyFat,
		Measurements:        in.Measurements,
		Meals:               in.Meals,
		Workouts:            in.Workouts,
		TotalCaloriesTaken:  caloriesTaken,
		TotalCaloriesBurned: caloriesBurned,
		MealAdherenceScore:  AdherenceScore(mealDeviated),
		DeviatedMealPlan:    mealDeviated,
		MealPlanID:          mealPlan.ID,
		Completed:           true,
	}
	if workoutPlan != nil {
		workoutDeviated := s.eval.WorkoutPlanDeviated(workoutPlan.Exercises, in.Workouts)
		record.DeviatedWorkoutPlan = workoutDeviated
		record.WorkoutAdherenceScore = AdherenceScore(workoutDeviated)
		record.WorkoutPlanID = workoutPlan.ID
	}

	return s.progress.Upsert(ctx, record)
}

// GetByDate returns the record for the calendar day containing date.
func (s *ProgressService) GetByDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*models.DailyProgress, error) {
	from, to := utils.DayRange(date)
	record, err := s.progress.ByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, utils.NotFoundf("no progress for %s", from.Format("2006-01-02"))
	}
	return record, nil
}

func (s *ProgressService) ExistsForDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (bool, error) {
	from, to := utils.DayRange(date)
	return s.progress.ExistsInRange(ctx, userID, from, to)
}

// CompletedDates lists calendar days with finalized progress, ascending,
// optionally scoped to records referencing the given plans.
func (s *ProgressService) CompletedDates(ctx context.Context, userID primitive.ObjectID, planIDs ...primitive.ObjectID) ([]string, error) {
	records, err := s.progress.ListCompleted(ctx, userID, planIDs)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(records))
	for _, r := range records {
		dates = append(dates, r.Date.UTC().Format("2006-01-02"))
	}
	return dates, nil
}

// PlanWindow is a plan's identity and date range as the calendar renders it.
type PlanWindow struct {
	PlanID    primitive.ObjectID `json:"plan_id"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
}

type ProgressOverview struct {
	MealPlan       *PlanWindow `json:"meal_plan,omitempty"`
	WorkoutPlan    *PlanWindow `json:"workout_plan,omitempty"`
	HasProgress    bool        `json:"has_progress"`
	CompletedDates []string    `json:"completed_dates"`
}

// Overview resolves both active plans and reports whether completed
// progress references either, which decides whether a date reset is
// still permitted.
func (s *ProgressService) Overview(ctx context.Context, userID primitive.ObjectID) (*ProgressOverview, error) {
	out := &ProgressOverview{CompletedDates: []string{}}

	var planIDs []primitive.ObjectID
	mealPlan, err := s.plans.ActiveMealPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if mealPlan != nil {
		out.MealPlan = &PlanWindow{PlanID: mealPlan.ID, StartDate: mealPlan.StartDate, EndDate: mealPlan.EndDate}
		planIDs = append(planIDs, mealPlan.ID)
	}
	workoutPlan, err := s.plans.ActiveWorkoutPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if workoutPlan != nil {
		out.WorkoutPlan = &PlanWindow{PlanID: workoutPlan.ID, StartDate: workoutPlan.StartDate, EndDate: workoutPlan.EndDate}
		planIDs = append(planIDs, workoutPlan.ID)
	}

	if len(planIDs) > 0 {
		dates, err := s.CompletedDates(ctx, userID, planIDs...)
		if err != nil {
			return nil, err
		}
		out.CompletedDates = dates
		out.HasProgress = len(dates) > 0
	}
	return out, nil
}
