package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/repository"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/services"
)

func authService() *services.AuthService {
	return services.NewAuthService(repository.NewUserRepo())
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := authService().Register(c.Request.Context(), input.Email, input.Password, input.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID.Hex(),
		"email":    user.Email,
		"fullName": user.FullName,
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := authService().Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
