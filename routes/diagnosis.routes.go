package routes

import (
	"swasthprameh/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDiagnosisRoutes(router *gin.Engine, auth gin.HandlerFunc, diagnosisController *controllers.DiagnosisController) {
	diagnosisRoutes := router.Group("/diagnosis")
	diagnosisRoutes.GET("/health", diagnosisController.TestMLConnection)
	diagnosisRoutes.Use(auth)
	{
		diagnosisRoutes.POST("/predict", diagnosisController.Predict)
		diagnosisRoutes.GET("/me/latest", diagnosisController.GetLatestDiagnosis)
	}
}
