package routes

import (
	"swasthprameh/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAssistantRoutes(router *gin.Engine, auth gin.HandlerFunc, assistantController *controllers.AssistantController) {
	assistantRoutes := router.Group("/assistant")
	assistantRoutes.Use(auth)
	{
		assistantRoutes.POST("/chat", assistantController.Chat)
	}
}
