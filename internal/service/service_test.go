package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/llm"
	"github.com/marketing-site-api/internal/mocks"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/service"
	"github.com/marketing-site-api/internal/store"
)

func newTestServices(t *testing.T, delay time.Duration, completer llm.Completer) (*service.Services, *store.Stores, *mocks.MockMailer) {
	t.Helper()

	stores, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	mailer := mocks.NewMockMailer()
	cfg := &config.Config{
		Mail: config.MailConfig{
			From:             "noreply@example.com",
			ContactRecipient: "owner@example.com",
		},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			AdminUsername: "admin",
			AdminPassword: "hunter2",
		},
		Site:   config.SiteConfig{Name: "Test Studio", BaseURL: "https://example.com"},
		Notify: config.NotifyConfig{Delay: delay},
	}

	return service.NewServices(stores, mailer, completer, cfg, zerolog.Nop()), stores, mailer
}

func waitForMail(t *testing.T, mailer *mocks.MockMailer) {
	t.Helper()
	select {
	case <-mailer.Sent:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for notification mail")
	}
}

func TestBlogService_CreateDraftByDefault(t *testing.T) {
	services, _, mailer := newTestServices(t, 5*time.Millisecond, nil)
	ctx := context.Background()

	post, err := services.Blog.Create(ctx, map[string]any{"title": "First Post"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.Status != models.StatusDraft {
		t.Errorf("Expected default status draft, got %q", post.Status)
	}
	if post.ID == "" || post.CreatedAt == "" {
		t.Error("Expected server-assigned id and creation date")
	}

	// A draft must not trigger any notification
	time.Sleep(100 * time.Millisecond)
	if n := len(mailer.Messages()); n != 0 {
		t.Errorf("Expected 0 notifications for draft, got %d", n)
	}
}

func TestBlogService_PublishNotifiesSubscribers(t *testing.T) {
	services, stores, mailer := newTestServices(t, 5*time.Millisecond, nil)
	ctx := context.Background()

	stores.Subscribers.Add("a@example.com")
	stores.Subscribers.Add("b@example.com")

	post, err := services.Blog.Create(ctx, map[string]any{
		"title":   "Launch Day",
		"excerpt": "We are live.",
		"status":  "published",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	waitForMail(t, mailer)
	time.Sleep(50 * time.Millisecond)

	msgs := mailer.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Expected exactly 1 notification, got %d", len(msgs))
	}
	msg := msgs[0]
	if len(msg.To) != 2 {
		t.Errorf("Expected both subscribers addressed jointly, got %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "Launch Day") && !strings.Contains(msg.Body, "Launch Day") {
		t.Error("Notification should contain the post title")
	}
	if !strings.Contains(msg.Body, "https://example.com/blog/"+post.ID) {
		t.Errorf("Notification should link to the post, body:\n%s", msg.Body)
	}
}

func TestBlogService_PublishTransitionNotifies(t *testing.T) {
	services, stores, mailer := newTestServices(t, 5*time.Millisecond, nil)
	ctx := context.Background()

	stores.Subscribers.Add("a@example.com")

	post, err := services.Blog.Create(ctx, map[string]any{"title": "Still Draft"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if len(mailer.Messages()) != 0 {
		t.Fatal("Draft creation must not notify")
	}

	if _, err := services.Blog.Update(ctx, post.ID, map[string]any{"status": "published"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	waitForMail(t, mailer)

	// Editing an already-published post must not notify again
	if _, err := services.Blog.Update(ctx, post.ID, map[string]any{"title": "Edited"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if n := len(mailer.Messages()); n != 1 {
		t.Errorf("Expected exactly 1 notification, got %d", n)
	}
}

func TestBlogService_PublishWithoutSubscribers(t *testing.T) {
	services, _, mailer := newTestServices(t, 5*time.Millisecond, nil)
	ctx := context.Background()

	if _, err := services.Blog.Create(ctx, map[string]any{"title": "Quiet", "status": "published"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if n := len(mailer.Messages()); n != 0 {
		t.Errorf("Expected no mail with empty subscriber list, got %d", n)
	}
}

func TestBlogService_ListPublishedFiltersDrafts(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)
	ctx := context.Background()

	services.Blog.Create(ctx, map[string]any{"title": "Draft"})
	services.Blog.Create(ctx, map[string]any{"title": "Live", "status": "published"})

	visible, err := services.Blog.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "Live" {
		t.Errorf("Expected only the published post, got %+v", visible)
	}

	all, err := services.Blog.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected both posts from ListAll, got %d", len(all))
	}
}

func TestBlogService_CreateRejectsUnknownStatus(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	_, err := services.Blog.Create(context.Background(), map[string]any{"title": "Bad", "status": "archived"})
	if !errors.Is(err, service.ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestBlogService_UpdateUnknownID(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	_, err := services.Blog.Update(context.Background(), "missing", map[string]any{"title": "X"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSubscriberService_DuplicateConflicts(t *testing.T) {
	services, stores, _ := newTestServices(t, time.Minute, nil)
	ctx := context.Background()

	if err := services.Subscriber.Subscribe(ctx, "a@example.com"); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if err := services.Subscriber.Subscribe(ctx, "a@example.com"); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("Expected ErrConflict, got %v", err)
	}

	emails, _ := stores.Subscribers.All()
	if len(emails) != 1 {
		t.Errorf("Expected exactly one stored copy, got %d", len(emails))
	}
}
