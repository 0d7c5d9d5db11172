package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/repository"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/services"
)

func profileService() *services.ProfileService {
	return services.NewProfileService(repository.NewProfileRepo(), repository.NewPlanRepo())
}

func CreateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := profileService().Create(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func GetProfile(c *gin.Context) {
	profile, err := profileService().Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := profileService().Update(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func DeleteProfile(c *gin.Context) {
	if err := profileService().Delete(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
