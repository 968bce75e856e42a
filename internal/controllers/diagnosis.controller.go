package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"swasthprameh/internal/ml"
	"swasthprameh/internal/models"
	"swasthprameh/internal/repository"

	"github.com/gin-gonic/gin"
)

type DiagnosisController struct {
	repo     repository.DiagnosisRepository
	mlClient ml.MLClient
	timeout  time.Duration
}

func NewDiagnosisController(repo repository.DiagnosisRepository, mlClient ml.MLClient, timeout time.Duration) *DiagnosisController {
	return &DiagnosisController{repo: repo, mlClient: mlClient, timeout: timeout}
}

type predictRequest struct {
	Features map[string]interface{} `json:"features" binding:"required"`
}

// Predict godoc
// @Summary Run a diabetes risk prediction
// @Description Forward the feature vector to the diagnosis service and return its output verbatim
// @Tags diagnosis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param features body predictRequest true "Feature values"
// @Success 200 {object} map[string]interface{} "Prediction result"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Prediction failed"
// @Failure 503 {object} map[string]interface{} "Diagnosis service not configured"
// @Router /diagnosis/predict [post]
func (dc *DiagnosisController) Predict(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	if dc.mlClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Diagnosis service not configured",
			"error":   "ML_SERVER_URL is not set",
		})
		return
	}

	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dc.timeout)
	defer cancel()

	output, err := dc.mlClient.Predict(ctx, req.Features)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Prediction failed",
			"error":   err.Error(),
		})
		return
	}

	// Persistence is best-effort; the prediction is returned regardless.
	featuresJSON, _ := json.Marshal(req.Features)
	diagnosis := &models.Diagnosis{
		UserID:        userID.(uint),
		InputFeatures: string(featuresJSON),
		MLOutput:      string(output),
	}
	if err := dc.repo.SaveDiagnosis(diagnosis); err != nil {
		log.Printf("failed to persist diagnosis for user %d: %v", userID.(uint), err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prediction successful",
		"data": gin.H{
			"diagnosis_id": diagnosis.ID,
			"result":       json.RawMessage(output),
		},
	})
}

// GetLatestDiagnosis godoc
// @Summary Get the latest diagnosis
// @Description Retrieve the most recent stored prediction for the authenticated user
// @Tags diagnosis
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Diagnosis retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "No diagnosis found"
// @Router /diagnosis/me/latest [get]
func (dc *DiagnosisController) GetLatestDiagnosis(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	diagnosis, err := dc.repo.GetLatestDiagnosisByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No diagnosis found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diagnosis retrieved successfully",
		"data":    diagnosis,
	})
}

// TestMLConnection godoc
// @Summary Test diagnosis service connection
// @Description Check the health endpoint of the external diagnosis service
// @Tags diagnosis
// @Produce json
// @Success 200 {object} map[string]interface{} "Diagnosis service is healthy"
// @Failure 500 {object} map[string]interface{} "Diagnosis service is not reachable"
// @Failure 503 {object} map[string]interface{} "Diagnosis service not configured"
// @Router /diagnosis/health [get]
func (dc *DiagnosisController) TestMLConnection(c *gin.Context) {
	if dc.mlClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Diagnosis service not configured",
			"error":   "ML_SERVER_URL is not set",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := dc.mlClient.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Diagnosis service is not reachable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Diagnosis service is healthy",
		"timestamp": time.Now(),
	})
}
