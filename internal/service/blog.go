package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/store"
)

// blogService implements post CRUD over the JSON-file store and triggers
// subscriber notifications on publish
type blogService struct {
	posts    *store.PostStore
	notifier *Notifier
	log      zerolog.Logger
}

func newBlogService(posts *store.PostStore, notifier *Notifier, log zerolog.Logger) *blogService {
	return &blogService{
		posts:    posts,
		notifier: notifier,
		log:      log.With().Str("component", "blog").Logger(),
	}
}

// ListPublished returns published posts in stored order
func (s *blogService) ListPublished(ctx context.Context) ([]models.Post, error) {
	return s.posts.Published()
}

// ListAll returns every post, drafts included
func (s *blogService) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.posts.All()
}

// Create assigns a fresh identifier and creation date, defaults status to
// draft, and persists. Creating directly as published schedules a subscriber
// notification.
func (s *blogService) Create(ctx context.Context, fields map[string]any) (models.Post, error) {
	post := models.NewPost(fields)
	if !models.ValidStatuses[post.Status] {
		return models.Post{}, fmt.Errorf("%w: status must be draft or published", ErrInvalidStatus)
	}
	if err := s.posts.Insert(post); err != nil {
		return models.Post{}, err
	}

	s.log.Info().Str("post_id", post.ID).Str("status", string(post.Status)).Msg("Post created")

	if post.Status == models.StatusPublished {
		s.notifier.Schedule(post)
	}
	return post, nil
}

// Update shallow-merges the given fields over the existing post. A draft to
// published transition schedules a subscriber notification.
func (s *blogService) Update(ctx context.Context, id string, fields map[string]any) (models.Post, error) {
	var wasPublished bool
	post, err := s.posts.Update(id, func(p *models.Post) {
		wasPublished = p.Status == models.StatusPublished
		p.Apply(fields)
	})
	if err != nil {
		return models.Post{}, err
	}

	s.log.Info().Str("post_id", id).Str("status", string(post.Status)).Msg("Post updated")

	if !wasPublished && post.Status == models.StatusPublished {
		s.notifier.Schedule(post)
	}
	return post, nil
}

// Delete removes the post
func (s *blogService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(id); err != nil {
		return err
	}
	s.log.Info().Str("post_id", id).Msg("Post deleted")
	return nil
}

// subscriberService implements append-if-absent subscriptions
type subscriberService struct {
	subscribers *store.SubscriberStore
	log         zerolog.Logger
}

func newSubscriberService(subscribers *store.SubscriberStore, log zerolog.Logger) *subscriberService {
	return &subscriberService{
		subscribers: subscribers,
		log:         log.With().Str("component", "subscriber").Logger(),
	}
}

// Subscribe appends the email; a duplicate yields store.ErrConflict
func (s *subscriberService) Subscribe(ctx context.Context, email string) error {
	if err := s.subscribers.Add(email); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("Subscriber added")
	return nil
}
