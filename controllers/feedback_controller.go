package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackInput struct {
	PlanID   string `json:"plan_id" binding:"required"`
	PlanType string `json:"plan_type" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// SubmitFeedback records a rejection and retires the plan as not suitable.
func SubmitFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	planID, err := primitive.ObjectIDFromHex(input.PlanID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	fb, err := planService().SubmitFeedback(c.Request.Context(), currentUserID(c), planID, input.PlanType, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}
