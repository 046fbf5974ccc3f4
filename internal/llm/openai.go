package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client for OpenAI-compatible chat-completion
// endpoints (POST {base}/v1/chat/completions with a bearer token).
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a client bound to config.BaseURL.
func NewOpenAIClient(config *Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	oc := openai.DefaultConfig(config.APIKey)
	oc.BaseURL = strings.TrimRight(config.BaseURL, "/") + "/v1"
	oc.HTTPClient = &http.Client{Timeout: config.Timeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(oc),
		config: config,
	}, nil
}

// Chat sends one chat-completion request.
func (c *OpenAIClient) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", &CallError{Provider: ProviderOpenAI, Message: "chat completion request failed", Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &CallError{Provider: ProviderOpenAI, Message: "no choices in response"}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &CallError{Provider: ProviderOpenAI, Message: "empty completion"}
	}
	return content, nil
}

// Model returns the model name
func (c *OpenAIClient) Model() string {
	return c.config.Model
}

// Close is a no-op; the underlying HTTP client holds no resources.
func (c *OpenAIClient) Close() error {
	return nil
}
