package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/models"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/repository"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/services"
)

func progressService() *services.ProgressService {
	return services.NewProgressService(repository.NewProgressRepo(), repository.NewPlanRepo())
}

type SaveProgressInput struct {
	Date         *time.Time             `json:"date"`
	Weight       *float64               `json:"weight"`
	BodyFat      *float64               `json:"body_fat_percentage"`
	Measurements map[string]float64     `json:"measurements"`
	Meals        []models.ActualMeal    `json:"meals"`
	Workouts     []models.ActualWorkout `json:"workouts"`
}

func SaveDailyProgress(c *gin.Context) {
	var input SaveProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := progressService().SaveDailyProgress(c.Request.Context(), services.SaveDailyProgressInput{
		UserID:       currentUserID(c),
		Date:         input.Date,
		Weight:       input.Weight,
		BodyFat:      input.BodyFat,
		Measurements: input.Measurements,
		Meals:        input.Meals,
		Workouts:     input.Workouts,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func parseDateParam(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func GetProgressByDate(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	record, err := progressService().GetByDate(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func ProgressExists(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	exists, err := progressService().ExistsForDate(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func CompletedDates(c *gin.Context) {
	var planIDs []primitive.ObjectID
	for _, key := range []string{"mealplan_id", "workoutplan_id"} {
		if hex := c.Query(key); hex != "" {
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
				return
			}
			planIDs = append(planIDs, id)
		}
	}

	dates, err := progressService().CompletedDates(c.Request.Context(), currentUserID(c), planIDs...)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

func ProgressOverview(c *gin.Context) {
	overview, err := progressService().Overview(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
