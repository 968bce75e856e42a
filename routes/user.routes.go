package routes

import (
	"swasthprameh/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, auth gin.HandlerFunc, userController *controllers.UserController) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/", userController.CreateUser)
		userRoutesPublic.POST("/login", userController.LoginUser)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(auth)
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
	}
}
