package controllers

import (
	"net/http"
	"strconv"

	"swasthprameh/internal/models"
	"swasthprameh/internal/repository"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	repo repository.ChatRepository
}

func NewChatController(repo repository.ChatRepository) *ChatController {
	return &ChatController{repo: repo}
}

type chatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage godoc
// @Summary Send a support message
// @Description Append a message from the user to the support conversation
// @Tags chat
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param message body chatMessageRequest true "Message content"
// @Success 201 {object} map[string]interface{} "Message stored"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to store message"
// @Router /chat/messages [post]
func (cc *ChatController) SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	message := models.ChatMessage{
		UserID:     userID.(uint),
		Message:    req.Message,
		SenderType: models.SenderUser,
	}

	if err := cc.repo.Append(&message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message stored successfully",
		"data":    message,
	})
}

// GetMessages godoc
// @Summary Get the conversation history
// @Description Retrieve chat messages of the authenticated user in creation order
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of messages"
// @Success 200 {object} map[string]interface{} "Messages retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid limit parameter"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve messages"
// @Router /chat/messages [get]
func (cc *ChatController) GetMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit parameter",
				"error":   "Limit must be a positive integer",
			})
			return
		}
	}

	messages, err := cc.repo.FindByUserID(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve messages",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages retrieved successfully",
		"data":    messages,
	})
}

// MarkMessagesRead godoc
// @Summary Mark messages as read
// @Description Mark all unread admin and assistant messages as read
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Messages marked as read"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to update messages"
// @Router /chat/messages/read [put]
func (cc *ChatController) MarkMessagesRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	for _, sender := range []string{models.SenderAdmin, models.SenderAssistant} {
		if err := cc.repo.MarkRead(userID.(uint), sender); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update messages",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages marked as read",
	})
}

// GetUnreadCount godoc
// @Summary Count unread messages
// @Description Count unread admin and assistant messages for the authenticated user
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Unread count retrieved"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to count messages"
// @Router /chat/messages/unread [get]
func (cc *ChatController) GetUnreadCount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var total int64
	for _, sender := range []string{models.SenderAdmin, models.SenderAssistant} {
		count, err := cc.repo.CountUnread(userID.(uint), sender)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to count messages",
				"error":   err.Error(),
			})
			return
		}
		total += count
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Unread count retrieved",
		"data": gin.H{
			"unread": total,
		},
	})
}
