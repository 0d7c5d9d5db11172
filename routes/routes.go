package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/controllers"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	profile := r.Group("/profile")
	profile.Use(middlewares.AuthMiddleware())
	{
		profile.POST("", controllers.CreateProfile)
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
		profile.DELETE("", controllers.DeleteProfile)
	}

	plans := r.Group("/plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.POST("/meal", controllers.GenerateMealPlan)
		plans.POST("/workout", controllers.GenerateWorkoutPlan)
		plans.GET("/meal/active", controllers.GetActiveMealPlan)
		plans.GET("/workout/active", controllers.GetActiveWorkoutPlan)
		plans.GET("/meal", controllers.ListMealPlans)
		plans.GET("/workout", controllers.ListWorkoutPlans)
		plans.PATCH("/:id/status", controllers.UpdatePlanStatus)
		plans.PATCH("/:id/dates", controllers.ResetPlanDates)
		plans.DELETE("/:id", controllers.DeletePlan)
	}

	feedback := r.Group("/feedback")
	feedback.Use(middlewares.AuthMiddleware())
	{
		feedback.POST("", controllers.SubmitFeedback)
	}

	progress := r.Group("/progress")
	progress.Use(middlewares.AuthMiddleware())
	{
		progress.POST("", controllers.SaveDailyProgress)
		progress.GET("", controllers.GetProgressByDate)
		progress.GET("/exists", controllers.ProgressExists)
		progress.GET("/completed-dates", controllers.CompletedDates)
		progress.GET("/overview", controllers.ProgressOverview)
	}

	return r
}
