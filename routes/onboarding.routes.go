package routes

import (
	"swasthprameh/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOnboardingRoutes(router *gin.Engine, auth gin.HandlerFunc, onboardingController *controllers.OnboardingController) {
	onboardingRoutes := router.Group("/onboarding")
	onboardingRoutes.Use(auth)
	{
		onboardingRoutes.POST("/", onboardingController.CompleteOnboarding)
		onboardingRoutes.GET("/me", onboardingController.GetMyOnboarding)
	}
}
