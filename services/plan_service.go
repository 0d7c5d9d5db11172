package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

const defaultPlanDurationDays = 30

type PlanService struct {
	plans    PlanStore
	progress ProgressStore
	profiles ProfileStore
	feedback FeedbackStore
	provider PlanProvider
}

func NewPlanService(plans PlanStore, progress ProgressStore, profiles ProfileStore, feedback FeedbackStore, provider PlanProvider) *PlanService {
	return &PlanService{
		plans:    plans,
		progress: progress,
		profiles: profiles,
		feedback: feedback,
		provider: provider,
	}
}

// Wire shapes the provider is asked to produce. Kept separate from the
// stored models so a schema drift on the AI side stays at this boundary.
type generatedMealPlan struct {
	TotalCalories float64 `json:"totalCalories"`
	Meals         []struct {
		MealType string `json:"mealType"`
		Foods    []struct {
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
			Fat      float64 `json:"fat"`
			Unit     string  `json:"unit"`
		} `json:"foods"`
	} `json:"meals"`
}

type generatedWorkoutPlan struct {
	Difficulty string `json:"difficulty"`
	Exercises  []struct {
		Name            string  `json:"name"`
		TargetMuscle    string  `json:"targetMuscle"`
		Sets            int     `json:"sets"`
		Reps            string  `json:"reps"`
		RestTime        int     `json:"restTime"`
		DurationMinutes int     `json:"durationMinutes"`
		CaloriesBurned  float64 `json:"caloriesBurned"`
		Day             string  `json:"day"`
	} `json:"exercises"`
}

// GenerateMealPlan builds macro targets from the profile, asks the
// provider for a plan, and activates it. Any previously active meal plan
// is retired first so at most one stays active.
func (s *PlanService) GenerateMealPlan(ctx context.Context, userID primitive.ObjectID, startDate time.Time, durationDays int) (*models.MealPlan, error) {
	if durationDays <= 0 {
		durationDays = defaultPlanDurationDays
	}
	profile, err := s.profiles.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundf("no profile for user")
	}

	macros := CalculateMacros(MacroInput{
		Gender:        profile.Gender,
		Weight:        profile.Weight,
		Height:        profile.Height,
		Age:           profile.Age,
		ActivityLevel: profile.ActivityLevel,
		FitnessGoal:   profile.FitnessGoal,
	})

	raw, err := s.provider.Generate(ctx, mealPlanPrompt(profile, macros))
	if err != nil {
		return nil, err
	}

	var gen generatedMealPlan
	if err := json.Unmarshal([]byte(utils.CleanAIJSON(raw)), &gen); err != nil {
		return nil, &utils.UpstreamError{Msg: "meal plan response was not parseable", Err: err}
	}

	start := utils.NormalizeToUTCMidnight(startDate)
	plan := &models.MealPlan{
		UserID:        userID,
		Title:         fmt.Sprintf("%s meal plan", strings.ReplaceAll(profile.FitnessGoal, "_", " ")),
		Status:        models.PlanStatusActive,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, durationDays-1),
		TotalCalories: gen.TotalCalories,
		CreatedAt:     time.Now().UTC(),
	}
	for _, m := range gen.Meals {
		pm := models.PlannedMeal{MealType: m.MealType}
		for _, f := range m.Foods {
			pm.Foods = append(pm.Foods, models.PlannedFood{
				Name:     f.Name,
				Calories: f.Calories,
				Protein:  f.Protein,
				Fat:      f.Fat,
				Unit:     f.Unit,
			})
		}
		plan.Meals = append(plan.Meals, pm)
	}

	// A provider that answered with zero meals is a tolerated degraded
	// plan (the client renders it empty); an unparseable answer above is
	// not, and nothing was written in that case.
	if err := s.plans.RetireActive(ctx, models.PlanTypeMeal, userID, models.PlanStatusCompleted); err != nil {
		return nil, err
	}
	if err := s.plans.InsertMealPlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) GenerateWorkoutPlan(ctx context.Context, userID primitive.ObjectID, startDate time.Time, durationDays int) (*models.WorkoutPlan, error) {
	if durationDays <= 0 {
		durationDays = defaultPlanDurationDays
	}
	profile, err := s.profiles.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundf("no profile for user")
	}

	raw, err := s.provider.Generate(ctx, workoutPlanPrompt(profile))
	if err != nil {
		return nil, err
	}

	var gen generatedWorkoutPlan
	if err := json.Unmarshal([]byte(utils.CleanAIJSON(raw)), &gen); err != nil {
		return nil, &utils.UpstreamError{Msg: "workout plan response was not parseable", Err: err}
	}

	start := utils.NormalizeToUTCMidnight(startDate)
	plan := &models.WorkoutPlan{
		UserID:     userID,
		Title:      fmt.Sprintf("%s workout plan", strings.ReplaceAll(profile.FitnessGoal, "_", " ")),
		Status:     models.PlanStatusActive,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, durationDays-1),
		Difficulty: gen.Difficulty,
		CreatedAt:  time.Now().UTC(),
	}
	for _, e := range gen.Exercises {
		plan.Exercises = append(plan.Exercises, models.PlannedExercise{
			Name:            e.Name,
			TargetMuscle:    e.TargetMuscle,
			Sets:            e.Sets,
			Reps:            e.Reps,
			RestTime:        e.RestTime,
			DurationMinutes: e.DurationMinutes,
			CaloriesBurned:  e.CaloriesBurned,
			Day:             e.Day,
		})
	}

	if err := s.plans.RetireActive(ctx, models.PlanTypeWorkout, userID, models.PlanStatusCompleted); err != nil {
		return nil, err
	}
	if err := s.plans.InsertWorkoutPlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func mealPlanPrompt(p *models.UserProfile, m MacroTargets) string {
	var sb strings.Builder
	sb.WriteString("Create a one-day meal plan as JSON only, schema: ")
	sb.WriteString(`{"totalCalories":0,"meals":[{"mealType":"","foods":[{"name":"","calories":0,"protein":0,"fat":0,"unit":""}]}]}`)
	fmt.Fprintf(&sb, ". Daily targets: %d kcal, %dg protein, %dg fat, %dg carbs.",
		m.Calories, m.Protein, m.Fat, m.Carbs)
	if len(p.DietaryRestrictions) > 0 {
		fmt.Fprintf(&sb, " Dietary restrictions: %s.", strings.Join(p.DietaryRestrictions, ", "))
	}
	if len(p.HealthConditions) > 0 {
		fmt.Fprintf(&sb, " Health conditions: %s.", strings.Join(p.HealthConditions, ", "))
	}
	if len(p.CulturalDietary) > 0 {
		fmt.Fprintf(&sb, " Cultural dietary patterns: %s.", strings.Join(p.CulturalDietary, ", "))
	}
	if len(p.Preferences) > 0 {
		fmt.Fprintf(&sb, " Preferences: %s.", strings.Join(p.Preferences, ", "))
	}
	return sb.String()
}

func workoutPlanPrompt(p *models.UserProfile) string {
	var sb strings.Builder
	sb.WriteString("Create a weekly workout plan as JSON only, schema: ")
	sb.WriteString(`{"difficulty":"","exercises":[{"name":"","targetMuscle":"","sets":0,"reps":"8-12","restTime":0,"durationMinutes":0,"caloriesBurned":0,"day":""}]}`)
	fmt.Fprintf(&sb, ". Subject: %d year old %s, %.0f kg, %.0f cm, activity level %s, goal %s.",
		p.Age, p.Gender, p.Weight, p.Height, p.ActivityLevel, p.FitnessGoal)
	if len(p.HealthConditions) > 0 {
		fmt.Fprintf(&sb, " Health conditions to respect: %s.", strings.Join(p.HealthConditions, ", "))
	}
	return sb.String()
}

var allowedTransitions = map[string]bool{
	models.PlanStatusCompleted:      true,
	models.PlanStatusNotSuitable:    true,
	models.PlanStatusAccountUpdated: true,
}

// UpdateStatus performs an explicit lifecycle transition.
func (s *PlanService) UpdateStatus(ctx context.Context, userID, planID primitive.ObjectID, planType, status string) error {
	if planType != models.PlanTypeMeal && planType != models.PlanTypeWorkout {
		return utils.Validationf("unknown plan type %q", planType)
	}
	if !allowedTransitions[status] {
		return utils.Validationf("cannot transition plan to %q", status)
	}
	matched, err := s.plans.SetStatus(ctx, planType, userID, planID, status)
	if err != nil {
		return err
	}
	if !matched {
		return utils.NotFoundf("no %s plan %s for user", planType, planID.Hex())
	}
	return nil
}

// DeletePlan removes a plan outright. Refused once any progress references
// the plan; retired plans with history stay queryable instead.
func (s *PlanService) DeletePlan(ctx context.Context, userID, planID primitive.ObjectID, planType string) error {
	if planType != models.PlanTypeMeal && planType != models.PlanTypeWorkout {
		return utils.Validationf("unknown plan type %q", planType)
	}
	exists, err := s.progress.ExistsForPlan(ctx, userID, planID)
	if err != nil {
		return err
	}
	if exists {
		return utils.Conflictf("progress exists, cannot delete plan")
	}
	if planType == models.PlanTypeMeal {
		return s.plans.DeleteMealPlan(ctx, userID, planID)
	}
	return s.plans.DeleteWorkoutPlan(ctx, userID, planID)
}

// ResetPlanDates shifts a plan's date range to a new start, preserving the
// original duration. Refused once any progress references the plan.
func (s *PlanService) ResetPlanDates(ctx context.Context, userID, planID primitive.ObjectID, planType string, newStart time.Time) error {
	var start, end time.Time
	switch planType {
	case models.PlanTypeMeal:
		plan, err := s.plans.MealPlanByID(ctx, userID, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.NotFoundf("no meal plan %s for user", planID.Hex())
		}
		start, end = plan.StartDate, plan.EndDate
	case models.PlanTypeWorkout:
		plan, err := s.plans.WorkoutPlanByID(ctx, userID, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return utils.NotFoundf("no workout plan %s for user", planID.Hex())
		}
		start, end = plan.StartDate, plan.EndDate
	default:
		return utils.Validationf("unknown plan type %q", planType)
	}

	exists, err := s.progress.ExistsForPlan(ctx, userID, planID)
	if err != nil {
		return err
	}
	if exists {
		return utils.Conflictf("progress exists, cannot reset")
	}

	duration := defaultPlanDurationDays
	if !start.IsZero() && !end.IsZero() {
		duration = int(end.Sub(start).Hours()/24) + 1
	}
	ns := utils.NormalizeToUTCMidnight(newStart)
	return s.plans.SetDates(ctx, planType, userID, planID, ns, ns.AddDate(0, 0, duration-1))
}

// SubmitFeedback records why the user rejected a plan and retires it as
// not suitable. Feedback is append-only.
func (s *PlanService) SubmitFeedback(ctx context.Context, userID, planID primitive.ObjectID, planType, reason string) (*models.PlanFeedback, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, utils.Validationf("feedback reason is required")
	}
	if planType != models.PlanTypeMeal && planType != models.PlanTypeWorkout {
		return nil, utils.Validationf("unknown plan type %q", planType)
	}

	matched, err := s.plans.SetStatus(ctx, planType, userID, planID, models.PlanStatusNotSuitable)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, utils.NotFoundf("no %s plan %s for user", planType, planID.Hex())
	}

	fb := &models.PlanFeedback{
		UserID:    userID,
		PlanID:    planID,
		PlanType:  planType,
		Reason:    strings.TrimSpace(reason),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.feedback.Insert(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *PlanService) ActiveMealPlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error) {
	plan, err := s.plans.ActiveMealPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, utils.NotFoundf("no active meal plan")
	}
	return plan, nil
}

func (s *PlanService) ActiveWorkoutPlan(ctx context.Context, userID primitive.ObjectID) (*models.WorkoutPlan, error) {
	plan, err := s.plans.ActiveWorkoutPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, utils.NotFoundf("no active workout plan")
	}
	return plan, nil
}

func (s *PlanService) ListMealPlans(ctx context.Context, userID primitive.ObjectID) ([]models.MealPlan, error) {
	return s.plans.ListMealPlans(ctx, userID)
}

func (s *PlanService) ListWorkoutPlans(ctx context.Context, userID primitive.ObjectID) ([]models.WorkoutPlan, error) {
	return s.plans.ListWorkoutPlans(ctx, userID)
}
