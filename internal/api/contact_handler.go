package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/service"
	"github.com/marketing-site-api/internal/validation"
)

// ContactHandler handles the contact form endpoints
type ContactHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "contact").Logger(),
	}
}

// IssueToken handles GET /api/token
func (h *ContactHandler) IssueToken(c *gin.Context) {
	token := h.services.Contact.IssueToken()
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// SendEmail handles POST /api/send-email
// Accepts a multipart form with an optional file attachment
func (h *ContactHandler) SendEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req := &models.ContactRequest{
		Token:   c.PostForm("token"),
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Company: c.PostForm("company"),
		Phone:   c.PostForm("phone"),
		Message: c.PostForm("message"),
	}

	if errs := validation.ValidateContact(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs[0].Message, "details": errs})
		return
	}

	// Save the optional attachment alongside other uploads. It is removed
	// again on every exit path below.
	file, err := c.FormFile("file")
	if err == nil {
		if file.Size > h.cfg.Store.MaxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Store.MaxUploadSize/(1024*1024)),
			})
			return
		}
		if err := os.MkdirAll(h.cfg.Store.UploadDir, 0755); err != nil {
			h.log.Error().Err(err).Msg("Failed to create upload directory")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
			return
		}
		path := filepath.Join(h.cfg.Store.UploadDir, uuid.New().String()[:8]+"_"+filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, path); err != nil {
			h.log.Error().Err(err).Msg("Failed to save uploaded file")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
			return
		}
		req.AttachmentPath = path
		req.AttachmentName = file.Filename
		defer func() {
			if err := os.Remove(path); err != nil {
				h.log.Warn().Err(err).Str("path", path).Msg("Failed to remove uploaded file")
			}
		}()
	}

	if err := h.services.Contact.Submit(ctx, req); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session"})
			return
		}
		h.log.Error().Err(err).Msg("Contact submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message sent"})
}
