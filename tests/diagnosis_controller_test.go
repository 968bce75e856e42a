package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"swasthprameh/internal/controllers"
	"swasthprameh/internal/models"
	"swasthprameh/routes"
	"swasthprameh/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDiagnosisRouter(mockRepo *mocks.MockDiagnosisRepository, mlClient *mocks.MockMLClient) *gin.Engine {
	controller := controllers.NewDiagnosisController(mockRepo, mlClient, 30*time.Second)
	router := setupTestRouter()
	routes.RegisterDiagnosisRoutes(router, addAuthMiddleware(1), controller)
	return router
}

func TestPredict(t *testing.T) {
	mockRepo := new(mocks.MockDiagnosisRepository)
	mockRepo.On("SaveDiagnosis", mock.AnythingOfType("*models.Diagnosis")).Return(nil)
	mlClient := new(mocks.MockMLClient)
	mlClient.On("Predict", mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"risk_score":0.42}`), nil)

	router := setupDiagnosisRouter(mockRepo, mlClient)

	w := performRequest(router, http.MethodPost, "/diagnosis/predict", map[string]interface{}{
		"features": map[string]interface{}{"age": 52, "bmi": 27.4},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(w)
	assert.Equal(t, "Prediction successful", response["message"])

	data := response["data"].(map[string]interface{})
	result := data["result"].(map[string]interface{})
	assert.Equal(t, 0.42, result["risk_score"])

	// The stored row carries the features and the raw output.
	saved := mockRepo.Calls[0].Arguments.Get(0).(*models.Diagnosis)
	assert.Equal(t, uint(1), saved.UserID)
	assert.Contains(t, saved.InputFeatures, "bmi")
	assert.Contains(t, saved.MLOutput, "risk_score")
	mockRepo.AssertExpectations(t)
	mlClient.AssertExpectations(t)
}

func TestPredictRequiresFeatures(t *testing.T) {
	mockRepo := new(mocks.MockDiagnosisRepository)
	mlClient := new(mocks.MockMLClient)
	router := setupDiagnosisRouter(mockRepo, mlClient)

	w := performRequest(router, http.MethodPost, "/diagnosis/predict", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mlClient.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
}

func TestPredictUpstreamFailure(t *testing.T) {
	mockRepo := new(mocks.MockDiagnosisRepository)
	mlClient := new(mocks.MockMLClient)
	mlClient.On("Predict", mock.Anything, mock.Anything).
		Return(nil, errors.New("diagnosis service error: model not loaded"))

	router := setupDiagnosisRouter(mockRepo, mlClient)

	w := performRequest(router, http.MethodPost, "/diagnosis/predict", map[string]interface{}{
		"features": map[string]interface{}{"age": 52},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeResponse(w)
	assert.Equal(t, "Prediction failed", response["message"])
	mockRepo.AssertNotCalled(t, "SaveDiagnosis", mock.Anything)
}

func TestPredictPersistenceFailureDoesNotBlock(t *testing.T) {
	mockRepo := new(mocks.MockDiagnosisRepository)
	mockRepo.On("SaveDiagnosis", mock.AnythingOfType("*models.Diagnosis")).Return(errors.New("database error"))
	mlClient := new(mocks.MockMLClient)
	mlClient.On("Predict", mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"risk_score":0.1}`), nil)

	router := setupDiagnosisRouter(mockRepo, mlClient)

	w := performRequest(router, http.MethodPost, "/diagnosis/predict", map[string]interface{}{
		"features": map[string]interface{}{"age": 30},
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLatestDiagnosis(t *testing.T) {
	mockRepo := new(mocks.MockDiagnosisRepository)
	mockRepo.On("GetLatestDiagnosisByUserID", uint(1)).Return(&models.Diagnosis{
		ID:       3,
		UserID:   1,
		MLOutput: `{"risk_score":0.42}`,
	}, nil)
	mlClient := new(mocks.MockMLClient)

	router := setupDiagnosisRouter(mockRepo, mlClient)

	w := performRequest(router, http.MethodGet, "/diagnosis/me/latest", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["id"])
	mockRepo.AssertExpectations(t)
}

func TestDiagnosisHealthEndpoint(t *testing.T) {
	mockRepo := new(mocks.MockDiagnosisRepository)
	mlClient := new(mocks.MockMLClient)
	mlClient.On("HealthCheck", mock.Anything).Return(nil)

	router := setupDiagnosisRouter(mockRepo, mlClient)

	w := performRequest(router, http.MethodGet, "/diagnosis/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mlClient.AssertExpectations(t)
}
