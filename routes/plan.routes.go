package routes

import (
	"swasthprameh/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlanRoutes(router *gin.Engine, auth gin.HandlerFunc, planController *controllers.PlanController) {
	planRoutes := router.Group("/plans")
	planRoutes.Use(auth)
	{
		planRoutes.POST("/generate", planController.GeneratePlan)
		planRoutes.GET("/me", planController.GetMyPlans)
		planRoutes.GET("/me/latest", planController.GetLatestPlan)
	}
}
