package tests

import (
	"errors"
	"net/http"
	"testing"

	"swasthprameh/internal/controllers"
	"swasthprameh/internal/models"
	"swasthprameh/internal/services"
	"swasthprameh/routes"
	"swasthprameh/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupPlanController(planRepo *mocks.MockPlanRepository, onboardingRepo *mocks.MockOnboardingRepository, diagnosisRepo *mocks.MockDiagnosisRepository) *controllers.PlanController {
	// nil completion client runs the deterministic stub pipeline
	generator := services.NewPlanGenerator(nil, planRepo, nil, testConfig())
	return controllers.NewPlanController(generator, planRepo, onboardingRepo, diagnosisRepo, nil)
}

func TestGeneratePlanWithExplicitContext(t *testing.T) {
	planRepo := new(mocks.MockPlanRepository)
	planRepo.On("SavePlan", mock.AnythingOfType("*models.Plan")).Return(nil)
	onboardingRepo := new(mocks.MockOnboardingRepository)
	diagnosisRepo := new(mocks.MockDiagnosisRepository)

	controller := setupPlanController(planRepo, onboardingRepo, diagnosisRepo)
	router := setupTestRouter()
	routes.RegisterPlanRoutes(router, addAuthMiddleware(1), controller)

	w := performRequest(router, http.MethodPost, "/plans/generate", map[string]interface{}{
		"context": map[string]interface{}{"dominant_dosha": "Kapha"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(w)
	assert.Equal(t, "Plan generated successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Len(t, data["plan"], services.PlanLength)
	planRepo.AssertExpectations(t)
	// Context was supplied, so the onboarding profile is not consulted.
	onboardingRepo.AssertNotCalled(t, "FindByUserID", mock.Anything)
}

func TestGeneratePlanBuildsContextFromOnboarding(t *testing.T) {
	planRepo := new(mocks.MockPlanRepository)
	planRepo.On("SavePlan", mock.AnythingOfType("*models.Plan")).Return(nil)

	onboardingRepo := new(mocks.MockOnboardingRepository)
	onboardingRepo.On("FindByUserID", uint(1)).Return(&models.Onboarding{
		UserID:         1,
		Age:            52,
		Gender:         "female",
		DiabetesType:   "type2",
		DominantDosha:  "Kapha",
		PrakritiTotals: `{"vata_total":20,"pitta_total":25,"kapha_total":60}`,
	}, nil)

	diagnosisRepo := new(mocks.MockDiagnosisRepository)
	diagnosisRepo.On("GetLatestDiagnosisByUserID", uint(1)).Return(&models.Diagnosis{
		ID:       7,
		UserID:   1,
		MLOutput: `{"risk_score":0.42}`,
	}, nil)

	controller := setupPlanController(planRepo, onboardingRepo, diagnosisRepo)
	router := setupTestRouter()
	routes.RegisterPlanRoutes(router, addAuthMiddleware(1), controller)

	w := performRequest(router, http.MethodPost, "/plans/generate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	planRepo.AssertExpectations(t)
	onboardingRepo.AssertExpectations(t)

	// The generated plan row is linked to the latest diagnosis.
	saved := planRepo.Calls[0].Arguments.Get(0).(*models.Plan)
	assert.NotNil(t, saved.DiagnosisID)
	assert.Equal(t, uint(7), *saved.DiagnosisID)
}

func TestGeneratePlanWithoutOnboardingFails(t *testing.T) {
	planRepo := new(mocks.MockPlanRepository)
	onboardingRepo := new(mocks.MockOnboardingRepository)
	onboardingRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
	diagnosisRepo := new(mocks.MockDiagnosisRepository)

	controller := setupPlanController(planRepo, onboardingRepo, diagnosisRepo)
	router := setupTestRouter()
	routes.RegisterPlanRoutes(router, addAuthMiddleware(1), controller)

	w := performRequest(router, http.MethodPost, "/plans/generate", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(w)
	assert.Contains(t, response["message"], "Onboarding profile not found")
}

func TestGeneratePlanSurvivesPersistenceFailure(t *testing.T) {
	planRepo := new(mocks.MockPlanRepository)
	planRepo.On("SavePlan", mock.AnythingOfType("*models.Plan")).Return(errors.New("datastore unavailable"))
	onboardingRepo := new(mocks.MockOnboardingRepository)
	diagnosisRepo := new(mocks.MockDiagnosisRepository)

	controller := setupPlanController(planRepo, onboardingRepo, diagnosisRepo)
	router := setupTestRouter()
	routes.RegisterPlanRoutes(router, addAuthMiddleware(1), controller)

	w := performRequest(router, http.MethodPost, "/plans/generate", map[string]interface{}{
		"context": map[string]interface{}{"dominant_dosha": "Pitta"},
	})

	// Persistence is best-effort; the caller still gets the plan.
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(w)
	data := response["data"].(map[string]interface{})
	assert.Len(t, data["plan"], services.PlanLength)
}

func TestGetLatestPlanFromDatabase(t *testing.T) {
	planRepo := new(mocks.MockPlanRepository)
	planRepo.On("GetLatestPlanByUserID", uint(1)).Return(&models.Plan{
		UserID:   1,
		PlanJSON: `{"summary":"Stored plan","plan":[{"day":1,"morning":"walk","meals":"khichdi","evening":"rest"}]}`,
		Summary:  "Stored plan",
	}, nil)
	onboardingRepo := new(mocks.MockOnboardingRepository)
	diagnosisRepo := new(mocks.MockDiagnosisRepository)

	controller := setupPlanController(planRepo, onboardingRepo, diagnosisRepo)
	router := setupTestRouter()
	routes.RegisterPlanRoutes(router, addAuthMiddleware(1), controller)

	w := performRequest(router, http.MethodGet, "/plans/me/latest", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Stored plan", data["summary"])
	planRepo.AssertExpectations(t)
}

func TestGetLatestPlanNotFound(t *testing.T) {
	planRepo := new(mocks.MockPlanRepository)
	planRepo.On("GetLatestPlanByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
	onboardingRepo := new(mocks.MockOnboardingRepository)
	diagnosisRepo := new(mocks.MockDiagnosisRepository)

	controller := setupPlanController(planRepo, onboardingRepo, diagnosisRepo)
	router := setupTestRouter()
	routes.RegisterPlanRoutes(router, addAuthMiddleware(1), controller)

	w := performRequest(router, http.MethodGet, "/plans/me/latest", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMyPlans(t *testing.T) {
	planRepo := new(mocks.MockPlanRepository)
	planRepo.On("GetPlansByUserID", uint(1)).Return([]models.Plan{
		{UserID: 1, Summary: "newest"},
		{UserID: 1, Summary: "older"},
	}, nil)
	onboardingRepo := new(mocks.MockOnboardingRepository)
	diagnosisRepo := new(mocks.MockDiagnosisRepository)

	controller := setupPlanController(planRepo, onboardingRepo, diagnosisRepo)
	router := setupTestRouter()
	routes.RegisterPlanRoutes(router, addAuthMiddleware(1), controller)

	w := performRequest(router, http.MethodGet, "/plans/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(w)
	assert.Len(t, response["data"], 2)
	planRepo.AssertExpectations(t)
}
