package llm

import (
	"context"
	"errors"
	"fmt"

	"swasthprameh/internal/ai"
	"swasthprameh/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal completion surface the planner and assistant need.
// Complete sends the message list to the configured model and returns the
// raw assistant text.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest mirrors the upstream chat-completion parameters this
// service actually varies.
type CompletionRequest struct {
	Model     string
	Messages  []ai.Message
	JSONMode  bool
	MaxTokens int
}

type groqClient struct {
	client *openai.Client
}

// NewClient builds a completion client against the configured
// OpenAI-compatible endpoint. It returns nil (not an error) when no API key
// is configured so callers can take their deterministic stub paths.
func NewClient(cfg *config.Config) Client {
	if cfg.LLMAPIKey == "" {
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	clientCfg.BaseURL = cfg.LLMBaseURL

	return &groqClient{client: openai.NewClientWithConfig(clientCfg)}
}

func (c *groqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.client == nil {
		return "", errors.New("completion client not initialized")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: 0.4,
		TopP:        1,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("completion call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
