package routes

import (
	"swasthprameh/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFeedbackRoutes(router *gin.Engine, auth gin.HandlerFunc, feedbackController *controllers.FeedbackController) {
	feedbackRoutes := router.Group("/feedback")
	feedbackRoutes.Use(auth)
	{
		feedbackRoutes.POST("/", feedbackController.SubmitFeedback)
		feedbackRoutes.GET("/me", feedbackController.GetMyFeedback)
	}
}
