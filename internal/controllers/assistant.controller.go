package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"swasthprameh/internal/ai"
	"swasthprameh/internal/models"
	"swasthprameh/internal/repository"
	"swasthprameh/internal/services"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	service        *services.AssistantService
	onboardingRepo repository.OnboardingRepository
	chatRepo       repository.ChatRepository
}

func NewAssistantController(
	service *services.AssistantService,
	onboardingRepo repository.OnboardingRepository,
	chatRepo repository.ChatRepository,
) *AssistantController {
	return &AssistantController{
		service:        service,
		onboardingRepo: onboardingRepo,
		chatRepo:       chatRepo,
	}
}

type chatRequest struct {
	Messages []ai.Message `json:"messages" binding:"required,min=1"`
}

// Chat godoc
// @Summary Ask the Ayurvedic assistant
// @Description Answer a diabetes or Ayurveda question grounded in the user's profile; off-topic queries are refused
// @Tags assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body chatRequest true "Conversation history, latest user turn last"
// @Success 200 {object} map[string]interface{} "Assistant reply"
// @Failure 400 {object} map[string]interface{} "Missing messages"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Assistant unavailable"
// @Router /assistant/chat [post]
func (ac *AssistantController) Chat(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Messages are required",
			"error":   err.Error(),
		})
		return
	}

	userContext := ac.loadUserContext(userID.(uint))

	reply, err := ac.service.Chat(c.Request.Context(), req.Messages, userContext)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Assistant unavailable"
		if errors.Is(err, services.ErrInvalidArgument) {
			status = http.StatusBadRequest
			message = "Invalid chat request"
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
		return
	}

	ac.recordExchange(userID.(uint), req.Messages, reply)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assistant replied successfully",
		"data": gin.H{
			"text": reply,
		},
	})
}

// loadUserContext fetches the onboarding profile for prompt grounding. A
// missing profile is not an error; the assistant answers generically.
func (ac *AssistantController) loadUserContext(userID uint) map[string]interface{} {
	if ac.onboardingRepo == nil {
		return nil
	}

	onboarding, err := ac.onboardingRepo.FindByUserID(userID)
	if err != nil {
		return nil
	}

	var totals interface{}
	if onboarding.PrakritiTotals != "" {
		_ = json.Unmarshal([]byte(onboarding.PrakritiTotals), &totals)
	}

	return map[string]interface{}{
		"age":             onboarding.Age,
		"gender":          onboarding.Gender,
		"diabetes_type":   onboarding.DiabetesType,
		"dominant_dosha":  onboarding.DominantDosha,
		"prakriti_totals": totals,
		"allergies":       onboarding.Allergies,
	}
}

// recordExchange appends the latest user turn and the assistant reply to the
// chat history. Best-effort; failures are logged only.
func (ac *AssistantController) recordExchange(userID uint, messages []ai.Message, reply string) {
	if ac.chatRepo == nil {
		return
	}

	lastUserTurn := messages[len(messages)-1]
	if err := ac.chatRepo.Append(&models.ChatMessage{
		UserID:     userID,
		Message:    lastUserTurn.Content,
		SenderType: models.SenderUser,
	}); err != nil {
		log.Printf("failed to record user chat message for user %d: %v", userID, err)
	}

	if err := ac.chatRepo.Append(&models.ChatMessage{
		UserID:     userID,
		Message:    reply,
		SenderType: models.SenderAssistant,
	}); err != nil {
		log.Printf("failed to record assistant chat message for user %d: %v", userID, err)
	}
}
