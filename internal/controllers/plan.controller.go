package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"swasthprameh/internal/cache"
	"swasthprameh/internal/models"
	"swasthprameh/internal/repository"
	"swasthprameh/internal/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	generator      *services.PlanGenerator
	planRepo       repository.PlanRepository
	onboardingRepo repository.OnboardingRepository
	diagnosisRepo  repository.DiagnosisRepository
	cache          *cache.RedisClient
}

func NewPlanController(
	generator *services.PlanGenerator,
	planRepo repository.PlanRepository,
	onboardingRepo repository.OnboardingRepository,
	diagnosisRepo repository.DiagnosisRepository,
	planCache *cache.RedisClient,
) *PlanController {
	return &PlanController{
		generator:      generator,
		planRepo:       planRepo,
		onboardingRepo: onboardingRepo,
		diagnosisRepo:  diagnosisRepo,
		cache:          planCache,
	}
}

// GeneratePlan godoc
// @Summary Generate a 15-day lifestyle plan
// @Description Generate a personalized Ayurvedic plan from the user's profile and latest diagnosis
// @Tags plans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.GeneratePlanRequest false "Generation options"
// @Success 200 {object} map[string]interface{} "Plan generated successfully"
// @Failure 400 {object} map[string]interface{} "Missing onboarding profile"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Plan generation failed"
// @Router /plans/generate [post]
func (pc *PlanController) GeneratePlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	// The body is optional; user_id always comes from the token.
	var body struct {
		DiagnosisID *uint                  `json:"diagnosis_id"`
		Context     map[string]interface{} `json:"context"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
	}

	req := models.GeneratePlanRequest{
		UserID:      userID.(uint),
		DiagnosisID: body.DiagnosisID,
		Context:     body.Context,
	}

	if req.Context == nil {
		planContext, diagnosisID, err := pc.buildPlanContext(req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Onboarding profile not found. Please complete onboarding first.",
				"error":   err.Error(),
			})
			return
		}
		req.Context = planContext
		if req.DiagnosisID == nil {
			req.DiagnosisID = diagnosisID
		}
	}

	plan, err := pc.generator.Generate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Plan generation failed"
		if errors.Is(err, services.ErrInvalidArgument) {
			status = http.StatusBadRequest
			message = "Invalid plan request"
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Plan generated successfully",
		"data":    plan,
	})
}

// buildPlanContext assembles the generation context from the stored
// onboarding profile and, when present, the latest diagnosis output.
func (pc *PlanController) buildPlanContext(userID uint) (map[string]interface{}, *uint, error) {
	onboarding, err := pc.onboardingRepo.FindByUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	var totals interface{}
	if onboarding.PrakritiTotals != "" {
		_ = json.Unmarshal([]byte(onboarding.PrakritiTotals), &totals)
	}

	planContext := map[string]interface{}{
		"age":             onboarding.Age,
		"gender":          onboarding.Gender,
		"diabetes_type":   onboarding.DiabetesType,
		"dominant_dosha":  onboarding.DominantDosha,
		"prakriti_totals": totals,
		"lifestyle": map[string]interface{}{
			"diet":     onboarding.Diet,
			"exercise": onboarding.Exercise,
			"sleep":    onboarding.Sleep,
			"stress":   onboarding.Stress,
		},
		"medical_history": onboarding.MedicalHistory,
		"allergies":       onboarding.Allergies,
	}

	var diagnosisID *uint
	if pc.diagnosisRepo != nil {
		if diagnosis, err := pc.diagnosisRepo.GetLatestDiagnosisByUserID(userID); err == nil {
			var mlOutput interface{}
			if json.Unmarshal([]byte(diagnosis.MLOutput), &mlOutput) == nil {
				planContext["diagnosis"] = mlOutput
			}
			diagnosisID = &diagnosis.ID
		}
	}

	return planContext, diagnosisID, nil
}

// GetLatestPlan godoc
// @Summary Get the latest plan
// @Description Retrieve the most recent generated plan, served from cache when available
// @Tags plans
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Plan retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "No plan found"
// @Router /plans/me/latest [get]
func (pc *PlanController) GetLatestPlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	if pc.cache != nil {
		cached, found, err := pc.cache.GetLatestPlan(userID.(uint))
		if err != nil {
			log.Printf("latest-plan cache read failed for user %d: %v", userID.(uint), err)
		}
		if found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Plan retrieved successfully",
				"data":    cached,
			})
			return
		}
	}

	row, err := pc.planRepo.GetLatestPlanByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No plan found. Generate a plan first.",
			"error":   err.Error(),
		})
		return
	}

	var plan models.GeneratedPlan
	if err := json.Unmarshal([]byte(row.PlanJSON), &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Stored plan is unreadable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Plan retrieved successfully",
		"data":    plan,
	})
}

// GetMyPlans godoc
// @Summary Get plan history
// @Description Retrieve all generated plans for the authenticated user, newest first
// @Tags plans
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Plans retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve plans"
// @Router /plans/me [get]
func (pc *PlanController) GetMyPlans(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	plans, err := pc.planRepo.GetPlansByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Plans retrieved successfully",
		"data":    plans,
	})
}
