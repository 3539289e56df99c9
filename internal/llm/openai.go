// Package llm wraps the external chat-completion API behind a Completer
// interface so the chatbot can be tested without network access.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Completer produces a single completion for a user message
type Completer interface {
	Complete(ctx context.Context, system, message string) (string, error)
}

// OpenAI implements Completer against the OpenAI Chat Completions API
type OpenAI struct {
	client openai.Client
	model  string
}

// Verify interface compliance
var _ Completer = (*OpenAI)(nil)

// NewOpenAI creates a completer using the given API key and model
func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Complete sends the system preamble and user message and returns the first
// candidate's text
func (o *OpenAI) Complete(ctx context.Context, system, message string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(message),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
