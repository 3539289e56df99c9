package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/llm"
	"github.com/marketing-site-api/internal/mail"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/store"
)

var (
	// ErrInvalidToken indicates an unknown or already-used session token
	ErrInvalidToken = errors.New("invalid session token")
	// ErrInvalidCredentials indicates a failed admin login
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden indicates a valid credential for the wrong identity
	ErrForbidden = errors.New("forbidden")
	// ErrChatUnavailable indicates the external completion API could not answer
	ErrChatUnavailable = errors.New("chat service unavailable")
	// ErrInvalidStatus indicates a post status outside draft/published
	ErrInvalidStatus = errors.New("invalid status")
)

// ContactService defines the interface for contact form operations
type ContactService interface {
	IssueToken() string
	Submit(ctx context.Context, req *models.ContactRequest) error
}

// ChatService defines the interface for chatbot round trips
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}

// AuthService defines the interface for admin session management
type AuthService interface {
	Login(username, password string) (string, error)
	Verify(token string) (string, error)
}

// BlogService defines the interface for blog post operations
type BlogService interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, fields map[string]any) (models.Post, error)
	Update(ctx context.Context, id string, fields map[string]any) (models.Post, error)
	Delete(ctx context.Context, id string) error
}

// SubscriberService defines the interface for newsletter subscriptions
type SubscriberService interface {
	Subscribe(ctx context.Context, email string) error
}

// Services holds all service interfaces
type Services struct {
	Contact    ContactService
	Chat       ChatService
	Auth       AuthService
	Blog       BlogService
	Subscriber SubscriberService
}

// NewServices creates all services
func NewServices(stores *store.Stores, mailer mail.Mailer, completer llm.Completer, cfg *config.Config, log zerolog.Logger) *Services {
	notifier := NewNotifier(stores.Subscribers, mailer, cfg.Notify.Delay, cfg.Site.BaseURL, log)

	return &Services{
		Contact:    newContactService(mailer, cfg, log),
		Chat:       newChatService(completer, cfg.Site.Name, log),
		Auth:       newAuthService(&cfg.Auth),
		Blog:       newBlogService(stores.Posts, notifier, log),
		Subscriber: newSubscriberService(stores.Subscribers, log),
	}
}
