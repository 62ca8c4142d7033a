package service

import "context"

// GenerativeTextService delivers one chat-style completion. Implementations
// perform no retries; callers decide how to degrade on failure.
type GenerativeTextService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}
