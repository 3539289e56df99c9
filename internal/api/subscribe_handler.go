package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/service"
	"github.com/marketing-site-api/internal/store"
)

// SubscribeHandler handles the newsletter subscription endpoint
type SubscribeHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubscribeHandler creates a new SubscribeHandler
func NewSubscribeHandler(services *service.Services, log zerolog.Logger) *SubscribeHandler {
	return &SubscribeHandler{
		services: services,
		log:      log.With().Str("handler", "subscribe").Logger(),
	}
}

// Subscribe handles POST /api/subscribe
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.services.Subscriber.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "already subscribed"})
			return
		}
		h.log.Error().Err(err).Msg("Subscription failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}
