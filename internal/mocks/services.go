package mocks

import (
	"context"

	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/service"
	"github.com/marketing-site-api/internal/store"
)

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	IssueTokenFunc func() string
	SubmitFunc     func(ctx context.Context, req *models.ContactRequest) error
	IssuedTokens   []string
	Submissions    []*models.ContactRequest
}

// Verify interface compliance
var _ service.ContactService = (*MockContactService)(nil)

func NewMockContactService() *MockContactService {
	return &MockContactService{
		IssuedTokens: make([]string, 0),
		Submissions:  make([]*models.ContactRequest, 0),
	}
}

func (m *MockContactService) IssueToken() string {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc()
	}
	token := "test-token"
	m.IssuedTokens = append(m.IssuedTokens, token)
	return token
}

func (m *MockContactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	m.Submissions = append(m.Submissions, req)
	return nil
}

// MockChatService is a mock implementation of ChatService
type MockChatService struct {
	ReplyFunc func(ctx context.Context, message string) (string, error)
	Messages  []string
}

// Verify interface compliance
var _ service.ChatService = (*MockChatService)(nil)

func NewMockChatService() *MockChatService {
	return &MockChatService{Messages: make([]string, 0)}
}

func (m *MockChatService) Reply(ctx context.Context, message string) (string, error) {
	m.Messages = append(m.Messages, message)
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, message)
	}
	return "mock reply", nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc  func(username, password string) (string, error)
	VerifyFunc func(token string) (string, error)
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(username, password)
	}
	return "mock-session-token", nil
}

func (m *MockAuthService) Verify(token string) (string, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	if token == "mock-session-token" {
		return "admin", nil
	}
	return "", service.ErrInvalidCredentials
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	Posts      []models.Post
	CreateFunc func(ctx context.Context, fields map[string]any) (models.Post, error)
	UpdateFunc func(ctx context.Context, id string, fields map[string]any) (models.Post, error)
	DeleteFunc func(ctx context.Context, id string) error
}

// Verify interface compliance
var _ service.BlogService = (*MockBlogService)(nil)

func NewMockBlogService() *MockBlogService {
	return &MockBlogService{Posts: make([]models.Post, 0)}
}

func (m *MockBlogService) ListPublished(ctx context.Context) ([]models.Post, error) {
	published := make([]models.Post, 0)
	for _, p := range m.Posts {
		if p.Status == models.StatusPublished {
			published = append(published, p)
		}
	}
	return published, nil
}

func (m *MockBlogService) ListAll(ctx context.Context) ([]models.Post, error) {
	return m.Posts, nil
}

func (m *MockBlogService) Create(ctx context.Context, fields map[string]any) (models.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fields)
	}
	post := models.NewPost(fields)
	m.Posts = append(m.Posts, post)
	return post, nil
}

func (m *MockBlogService) Update(ctx context.Context, id string, fields map[string]any) (models.Post, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	for i := range m.Posts {
		if m.Posts[i].ID == id {
			m.Posts[i].Apply(fields)
			return m.Posts[i], nil
		}
	}
	return models.Post{}, store.ErrNotFound
}

func (m *MockBlogService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	for i := range m.Posts {
		if m.Posts[i].ID == id {
			m.Posts = append(m.Posts[:i], m.Posts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// MockSubscriberService is a mock implementation of SubscriberService
type MockSubscriberService struct {
	SubscribeFunc func(ctx context.Context, email string) error
	Emails        []string
}

// Verify interface compliance
var _ service.SubscriberService = (*MockSubscriberService)(nil)

func NewMockSubscriberService() *MockSubscriberService {
	return &MockSubscriberService{Emails: make([]string, 0)}
}

func (m *MockSubscriberService) Subscribe(ctx context.Context, email string) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, email)
	}
	for _, existing := range m.Emails {
		if existing == email {
			return store.ErrConflict
		}
	}
	m.Emails = append(m.Emails, email)
	return nil
}
