package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/service"
)

// ChatHandler handles the chatbot endpoint
type ChatHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(services *service.Services, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		services: services,
		log:      log.With().Str("handler", "chat").Logger(),
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.services.Chat.Reply(c.Request.Context(), req.Message)
	if err != nil {
		// The reply already carries the user-facing apology; the cause is
		// logged by the service.
		c.JSON(http.StatusInternalServerError, gin.H{"reply": reply})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
