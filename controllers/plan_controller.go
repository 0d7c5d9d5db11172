package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/repository"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/services"
)

func planService() *services.PlanService {
	return services.NewPlanService(
		repository.NewPlanRepo(),
		repository.NewProgressRepo(),
		repository.NewProfileRepo(),
		repository.NewFeedbackRepo(),
		services.NewGeminiProvider(),
	)
}

type GeneratePlanInput struct {
	StartDate    time.Time `json:"start_date" binding:"required"`
	DurationDays int       `json:"duration_days"`
}

func GenerateMealPlan(c *gin.Context) {
	var input GeneratePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := planService().GenerateMealPlan(c.Request.Context(), currentUserID(c), input.StartDate, input.DurationDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func GenerateWorkoutPlan(c *gin.Context) {
	var input GeneratePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := planService().GenerateWorkoutPlan(c.Request.Context(), currentUserID(c), input.StartDate, input.DurationDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func GetActiveMealPlan(c *gin.Context) {
	plan, err := planService().ActiveMealPlan(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func GetActiveWorkoutPlan(c *gin.Context) {
	plan, err := planService().ActiveWorkoutPlan(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func ListMealPlans(c *gin.Context) {
	plans, err := planService().ListMealPlans(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func ListWorkoutPlans(c *gin.Context) {
	plans, err := planService().ListWorkoutPlans(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

type UpdatePlanStatusInput struct {
	PlanType string `json:"plan_type" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

func UpdatePlanStatus(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	var input UpdatePlanStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := planService().UpdateStatus(c.Request.Context(), currentUserID(c), planID, input.PlanType, input.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan status updated"})
}

func DeletePlan(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	if err := planService().DeletePlan(c.Request.Context(), currentUserID(c), planID, c.Query("plan_type")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ResetPlanDatesInput struct {
	PlanType  string    `json:"plan_type" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
}

func ResetPlanDates(c *gin.Context) {
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	var input ResetPlanDatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := planService().ResetPlanDates(c.Request.Context(), currentUserID(c), planID, input.PlanType, input.StartDate); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan dates reset"})
}
