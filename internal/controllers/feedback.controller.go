package controllers

import (
	"net/http"

	"swasthprameh/internal/models"
	"swasthprameh/internal/repository"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	repo repository.FeedbackRepository
}

func NewFeedbackController(repo repository.FeedbackRepository) *FeedbackController {
	return &FeedbackController{repo: repo}
}

type feedbackRequest struct {
	PlanID *uint  `json:"plan_id"`
	Score  int    `json:"score" binding:"required,min=1,max=5"`
	Notes  string `json:"notes"`
}

// SubmitFeedback godoc
// @Summary Submit plan feedback
// @Description Store a 1-5 rating with optional notes; one submission per user and plan
// @Tags feedback
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param feedback body feedbackRequest true "Feedback data"
// @Success 201 {object} map[string]interface{} "Feedback recorded"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Feedback already submitted"
// @Failure 500 {object} map[string]interface{} "Failed to store feedback"
// @Router /feedback [post]
func (fc *FeedbackController) SubmitFeedback(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	alreadySubmitted, err := fc.repo.ExistsForUserAndPlan(userID.(uint), req.PlanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to check existing feedback",
			"error":   err.Error(),
		})
		return
	}
	if alreadySubmitted {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Feedback already submitted for this plan",
			"error":   "Only one feedback entry is allowed per plan",
		})
		return
	}

	feedback := models.Feedback{
		UserID: userID.(uint),
		PlanID: req.PlanID,
		Score:  req.Score,
		Notes:  req.Notes,
	}

	if err := fc.repo.Create(&feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store feedback",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Feedback recorded successfully",
		"data":    feedback,
	})
}

// GetMyFeedback godoc
// @Summary Get submitted feedback
// @Description Retrieve all feedback entries of the authenticated user, newest first
// @Tags feedback
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Feedback retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve feedback"
// @Router /feedback/me [get]
func (fc *FeedbackController) GetMyFeedback(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	feedback, err := fc.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve feedback",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Feedback retrieved successfully",
		"data":    feedback,
	})
}
