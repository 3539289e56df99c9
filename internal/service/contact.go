package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/mail"
	"github.com/marketing-site-api/internal/models"
)

// contactService issues one-time form tokens and forwards submissions to the
// operator mailbox
type contactService struct {
	registry  *tokenRegistry
	mailer    mail.Mailer
	recipient string
	log       zerolog.Logger
}

func newContactService(mailer mail.Mailer, cfg *config.Config, log zerolog.Logger) *contactService {
	return &contactService{
		registry:  newTokenRegistry(),
		mailer:    mailer,
		recipient: cfg.Mail.ContactRecipient,
		log:       log.With().Str("component", "contact").Logger(),
	}
}

// IssueToken returns a fresh one-time session token
func (s *contactService) IssueToken() string {
	return s.registry.issue()
}

// Submit consumes the token and forwards the submission by email. An unknown
// or already-used token fails with ErrInvalidToken before any mail is sent.
func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	if !s.registry.consume(req.Token) {
		return ErrInvalidToken
	}

	msg := &mail.Message{
		To:      []string{s.recipient},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contact form: %s", req.Name),
		Body:    formatContactBody(req),
	}
	if req.AttachmentPath != "" {
		msg.Attachments = []mail.Attachment{{
			Filename: req.AttachmentName,
			Path:     req.AttachmentPath,
		}}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("forward contact submission: %w", err)
	}

	s.log.Info().Str("from", req.Email).Msg("Contact submission forwarded")
	return nil
}

func formatContactBody(req *models.ContactRequest) string {
	body := fmt.Sprintf("Name: %s\nEmail: %s\n", req.Name, req.Email)
	if req.Company != "" {
		body += fmt.Sprintf("Company: %s\n", req.Company)
	}
	if req.Phone != "" {
		body += fmt.Sprintf("Phone: %s\n", req.Phone)
	}
	body += fmt.Sprintf("\n%s\n", req.Message)
	return body
}
