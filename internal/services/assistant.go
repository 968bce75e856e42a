package services

import (
	"context"
	"fmt"
	"time"

	"swasthprameh/internal/ai"
	"swasthprameh/internal/config"
	"swasthprameh/internal/llm"
)

// AssistantService answers chat turns. Out-of-domain queries are refused
// before any completion call is made; that is the only cost guardrail.
type AssistantService struct {
	client  llm.Client
	model   string
	timeout time.Duration
}

func NewAssistantService(client llm.Client, cfg *config.Config) *AssistantService {
	return &AssistantService{
		client:  client,
		model:   cfg.LLMModel,
		timeout: cfg.CompletionTimeout,
	}
}

// Chat runs the relevance gate on the latest user turn, then delegates to
// the completion API with the domain system prompt and the user's context.
// Without a configured key it returns a deterministic stub reply.
func (s *AssistantService) Chat(ctx context.Context, history []ai.Message, userContext interface{}) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("%w: messages are required", ErrInvalidArgument)
	}

	lastMessage := history[len(history)-1].Content
	if !ai.IsRelevantQuery(lastMessage) {
		return ai.RefusalMessage, nil
	}

	if s.client == nil {
		return "This is a development stub response. Your profile context will be used when the LLM key is configured.", nil
	}

	messages, err := ai.BuildChatMessages(userContext, history)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(callCtx, llm.CompletionRequest{
		Model:     s.model,
		Messages:  messages,
		MaxTokens: 1024,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamFatal, err)
	}
	return text, nil
}
