package llm

import (
	"context"
	"fmt"
)

// Client sends one system/user prompt pair to a chat model.
//
// Chat is attempted exactly once. Any failure, including an empty reply, is
// returned as a *CallError; callers substitute their own fallback.
type Client interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
	Close() error
}

// NewClient picks the provider named by config. A nil config or an empty API
// key yields a nil Client, which callers treat as "no model available".
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil || config.APIKey == "" {
		return nil, nil
	}
	config = config.withDefaults()

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	case ProviderOpenAI:
		return NewOpenAIClient(config)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}
