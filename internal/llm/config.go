// Package llm provides the chat-completion client abstraction used by the
// planner, the industry detector and the rewriter.
package llm

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is any OpenAI-compatible chat-completion endpoint (DeepSeek by default)
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Defaults for the OpenAI-compatible provider.
const (
	DefaultBaseURL     = "https://api.deepseek.com"
	DefaultModel       = "deepseek-chat"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTimeout     = 30 * time.Second
	DefaultTemperature = float32(0.2)
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey       = "DEEPSEEK_API_KEY"
	EnvBaseURL      = "DEEPSEEK_BASE_URL"
	EnvModel        = "DEEPSEEK_MODEL"
	EnvTimeout      = "DEEPSEEK_TIMEOUT"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// Config holds the connection settings for a chat client.
type Config struct {
	Provider    Provider
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float32
}

// DefaultConfig returns the default OpenAI-compatible configuration without a key.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Timeout:     DefaultTimeout,
		Temperature: DefaultTemperature,
	}
}

// ConfigFromEnv builds a configuration from the environment. It returns nil
// when no API key is available, meaning the LLM is disabled.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	} else if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		cfg.Provider = ProviderGemini
		cfg.APIKey = key
		cfg.Model = DefaultGeminiModel
	} else {
		return nil
	}

	if cfg.Provider == ProviderOpenAI {
		if base := os.Getenv(EnvBaseURL); base != "" {
			cfg.BaseURL = base
		}
		if model := os.Getenv(EnvModel); model != "" {
			cfg.Model = model
		}
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		if secs, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// withDefaults fills zero values.
func (c *Config) withDefaults() *Config {
	out := *c
	if out.Provider == "" {
		out.Provider = ProviderOpenAI
	}
	if out.BaseURL == "" {
		out.BaseURL = DefaultBaseURL
	}
	if out.Model == "" {
		if out.Provider == ProviderGemini {
			out.Model = DefaultGeminiModel
		} else {
			out.Model = DefaultModel
		}
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.Temperature == 0 {
		out.Temperature = DefaultTemperature
	}
	return &out
}
