package routes

import (
	"swasthprameh/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.Engine, auth gin.HandlerFunc, chatController *controllers.ChatController) {
	chatRoutes := router.Group("/chat")
	chatRoutes.Use(auth)
	{
		chatRoutes.POST("/messages", chatController.SendMessage)
		chatRoutes.GET("/messages", chatController.GetMessages)
		chatRoutes.PUT("/messages/read", chatController.MarkMessagesRead)
		chatRoutes.GET("/messages/unread", chatController.GetUnreadCount)
	}
}
