package controllers

import (
	"encoding/json"
	"net/http"

	"swasthprameh/internal/models"
	"swasthprameh/internal/prakriti"
	"swasthprameh/internal/repository"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	repo     repository.OnboardingRepository
	userRepo repository.UserRepository
}

func NewOnboardingController(repo repository.OnboardingRepository, userRepo repository.UserRepository) *OnboardingController {
	return &OnboardingController{repo: repo, userRepo: userRepo}
}

type onboardingRequest struct {
	Age            int    `json:"age" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	DiabetesType   string `json:"diabetes_type" binding:"required"`
	DiagnosisDate  string `json:"diagnosis_date"`
	MedicalHistory string `json:"medical_history"`
	Allergies      string `json:"allergies"`

	Diet     string `json:"diet"`
	Exercise string `json:"exercise"`
	Sleep    string `json:"sleep"`
	Stress   string `json:"stress"`

	PrakritiAnswers prakriti.Answers `json:"prakriti_answers" binding:"required"`
}

// CompleteOnboarding godoc
// @Summary Complete the onboarding questionnaire
// @Description Score the prakriti assessment and store the full onboarding profile
// @Tags onboarding
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param onboarding body onboardingRequest true "Onboarding answers"
// @Success 200 {object} map[string]interface{} "Onboarding completed"
// @Failure 400 {object} map[string]interface{} "Invalid or incomplete answers"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to store onboarding"
// @Router /onboarding [post]
func (oc *OnboardingController) CompleteOnboarding(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !prakriti.IsComplete(req.PrakritiAnswers) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Incomplete prakriti assessment",
			"error":   "Every question must be answered with a score of 1 or higher",
		})
		return
	}

	totals, summary, err := prakriti.Score(req.PrakritiAnswers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid prakriti answers",
			"error":   err.Error(),
		})
		return
	}

	scoresJSON, _ := json.Marshal(req.PrakritiAnswers)
	totalsJSON, _ := json.Marshal(totals)
	summaryJSON, _ := json.Marshal(summary)

	onboarding := models.Onboarding{
		UserID:         userID.(uint),
		Age:            req.Age,
		Gender:         req.Gender,
		DiabetesType:   req.DiabetesType,
		DiagnosisDate:  req.DiagnosisDate,
		MedicalHistory: req.MedicalHistory,
		Allergies:      req.Allergies,

		Diet:     req.Diet,
		Exercise: req.Exercise,
		Sleep:    req.Sleep,
		Stress:   req.Stress,

		PrakritiScores:  string(scoresJSON),
		PrakritiTotals:  string(totalsJSON),
		PrakritiSummary: string(summaryJSON),
		DominantDosha:   summary.Dominant,
	}

	if err := oc.repo.Upsert(&onboarding); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store onboarding profile",
			"error":   err.Error(),
		})
		return
	}

	if err := oc.userRepo.SetOnboardingCompleted(userID.(uint), true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark onboarding complete",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Onboarding completed successfully",
		"data": gin.H{
			"totals":  totals,
			"summary": summary,
		},
	})
}

// GetMyOnboarding godoc
// @Summary Get the stored onboarding profile
// @Description Retrieve the onboarding profile and prakriti results for the authenticated user
// @Tags onboarding
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Onboarding retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Onboarding not found"
// @Router /onboarding/me [get]
func (oc *OnboardingController) GetMyOnboarding(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	onboarding, err := oc.repo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Onboarding not found. Please complete onboarding first.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Onboarding retrieved successfully",
		"data":    onboarding,
	})
}
