package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketing-site-api/internal/llm"
)

// BusinessHoursAnswer is the canned reply for the business hours question
const BusinessHoursAnswer = "We're open Monday through Friday, 9am to 5pm, and closed on weekends and public holidays."

// ChatApology is returned whenever the external completion API cannot answer
const ChatApology = "Sorry, I'm having trouble answering right now. Please try again later or reach out through our contact form."

// faqTable maps normalized questions to canned answers
var faqTable = map[string]string{
	"what are your business hours?":    BusinessHoursAnswer,
	"where are you located?":           "You can find us at 14 Harbor Street, Suite 210. Street parking is available out front.",
	"what services do you offer?":      "We offer brand strategy, web design, and digital marketing for small businesses. Check the Services page for details.",
	"how can i contact you?":           "The quickest way is the contact form on this site. We usually reply within one business day.",
	"do you offer free consultations?": "Yes, the first 30-minute consultation is free. Use the contact form to book a slot.",
}

var dateKeywords = []string{"today", "current date"}

// chatService answers messages through a flat decision chain: date keyword,
// then exact FAQ match, then the external completion API. No conversation
// memory is kept across calls.
type chatService struct {
	completer llm.Completer
	persona   string
	log       zerolog.Logger
}

func newChatService(completer llm.Completer, siteName string, log zerolog.Logger) *chatService {
	persona := fmt.Sprintf(
		"You are the friendly website assistant for %s, a small business. "+
			"Answer briefly and helpfully, and only about the business, its services, and this website. "+
			"If you don't know, suggest the contact form.", siteName)
	return &chatService{
		completer: completer,
		persona:   persona,
		log:       log.With().Str("component", "chat").Logger(),
	}
}

// Reply produces a reply for the message. Failures to reach the external API
// return the apology text together with ErrChatUnavailable; raw errors never
// reach the caller.
func (s *chatService) Reply(ctx context.Context, message string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, keyword := range dateKeywords {
		if strings.Contains(normalized, keyword) {
			return fmt.Sprintf("Today is %s.", time.Now().Format("Monday, January 2, 2006")), nil
		}
	}

	if answer, ok := faqTable[normalized]; ok {
		return answer, nil
	}

	if s.completer == nil {
		s.log.Warn().Msg("No completion API configured, returning fallback")
		return ChatApology, ErrChatUnavailable
	}

	answer, err := s.completer.Complete(ctx, s.persona, message)
	if err != nil {
		s.log.Error().Err(err).Msg("Completion API call failed")
		return ChatApology, ErrChatUnavailable
	}
	if strings.TrimSpace(answer) == "" {
		s.log.Error().Msg("Completion API returned an empty reply")
		return ChatApology, ErrChatUnavailable
	}
	return answer, nil
}
