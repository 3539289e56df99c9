package mocks

import (
	"context"
	"sync"

	"github.com/marketing-site-api/internal/llm"
	"github.com/marketing-site-api/internal/mail"
)

// MockMailer is a mock implementation of mail.Mailer that records sent
// messages and signals each send on a channel so tests can wait for
// deferred deliveries
type MockMailer struct {
	SendFunc func(ctx context.Context, msg *mail.Message) error
	Sent     chan *mail.Message

	mu       sync.Mutex
	messages []*mail.Message
}

// Verify interface compliance
var _ mail.Mailer = (*MockMailer)(nil)

func NewMockMailer() *MockMailer {
	return &MockMailer{
		Sent:     make(chan *mail.Message, 16),
		messages: make([]*mail.Message, 0),
	}
}

func (m *MockMailer) Send(ctx context.Context, msg *mail.Message) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, msg); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.messages = append(m.messages, msg)
	m.mu.Unlock()
	select {
	case m.Sent <- msg:
	default:
	}
	return nil
}

// Messages returns a snapshot of everything sent so far
func (m *MockMailer) Messages() []*mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*mail.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// MockCompleter is a mock implementation of llm.Completer
type MockCompleter struct {
	CompleteFunc func(ctx context.Context, system, message string) (string, error)
	Calls        []string
}

// Verify interface compliance
var _ llm.Completer = (*MockCompleter)(nil)

func NewMockCompleter() *MockCompleter {
	return &MockCompleter{Calls: make([]string, 0)}
}

func (m *MockCompleter) Complete(ctx context.Context, system, message string) (string, error) {
	m.Calls = append(m.Calls, message)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, message)
	}
	return "mock completion", nil
}
