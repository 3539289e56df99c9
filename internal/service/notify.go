package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/mail"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/store"
)

// Notifier broadcasts a one-shot email to all subscribers some time after a
// post is published. Timers are fire-and-forget: they are not cancellable,
// not persisted across restarts, and not deduplicated if the same post is
// republished.
type Notifier struct {
	subscribers *store.SubscriberStore
	mailer      mail.Mailer
	delay       time.Duration
	baseURL     string
	log         zerolog.Logger
}

// NewNotifier creates a notifier with the given broadcast delay
func NewNotifier(subscribers *store.SubscriberStore, mailer mail.Mailer, delay time.Duration, baseURL string, log zerolog.Logger) *Notifier {
	return &Notifier{
		subscribers: subscribers,
		mailer:      mailer,
		delay:       delay,
		baseURL:     baseURL,
		log:         log.With().Str("component", "notifier").Logger(),
	}
}

// Schedule arms a one-shot timer that broadcasts the post to all subscribers
// once the delay elapses
func (n *Notifier) Schedule(post models.Post) {
	n.log.Info().
		Str("post_id", post.ID).
		Dur("delay", n.delay).
		Msg("Notification scheduled")

	time.AfterFunc(n.delay, func() {
		n.broadcast(post)
	})
}

func (n *Notifier) broadcast(post models.Post) {
	emails, err := n.subscribers.All()
	if err != nil {
		n.log.Error().Err(err).Str("post_id", post.ID).Msg("Failed to read subscribers")
		return
	}
	if len(emails) == 0 {
		n.log.Info().Str("post_id", post.ID).Msg("No subscribers, skipping notification")
		return
	}

	// One message with a joined recipient list, not individual envelopes.
	msg := &mail.Message{
		To:      emails,
		Subject: fmt.Sprintf("New post: %s", post.Title),
		Body: fmt.Sprintf("%s\n\n%s\n\nRead it here: %s/blog/%s\n",
			post.Title, post.Excerpt, n.baseURL, post.ID),
	}
	if err := n.mailer.Send(context.Background(), msg); err != nil {
		n.log.Error().Err(err).Str("post_id", post.ID).Msg("Notification send failed")
		return
	}

	n.log.Info().
		Str("post_id", post.ID).
		Int("recipients", len(emails)).
		Msg("Notification sent")
}
