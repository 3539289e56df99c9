// Package mail wraps the outbound SMTP transport behind a Mailer interface
// so handlers and services can be tested without a mail server.
package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/marketing-site-api/internal/config"
)

// Attachment is a file attached to an outgoing message
type Attachment struct {
	Filename string
	Path     string
}

// Message is an outgoing email
type Message struct {
	To          []string
	ReplyTo     string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer sends email messages
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPMailer implements Mailer over an authenticated SMTP connection
type SMTPMailer struct {
	client *gomail.Client
	from   string
	log    zerolog.Logger
}

// Verify interface compliance
var _ Mailer = (*SMTPMailer)(nil)

// NewSMTP creates a mailer from SMTP account configuration
func NewSMTP(cfg *config.MailConfig, log zerolog.Logger) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{
		client: client,
		from:   cfg.From,
		log:    log.With().Str("component", "mailer").Logger(),
	}, nil
}

// Send delivers the message over SMTP
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := out.To(msg.To...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := out.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("set reply-to: %w", err)
		}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Body)
	for _, a := range msg.Attachments {
		out.AttachFile(a.Path, gomail.WithFileName(a.Filename))
	}

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.log.Info().
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("Mail sent")
	return nil
}
