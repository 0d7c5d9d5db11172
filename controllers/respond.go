package controllers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

func respondError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) primitive.ObjectID {
	return c.MustGet("userID").(primitive.ObjectID)
}
