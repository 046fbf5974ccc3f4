package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderOpenAI, config.Provider)
	assert.Equal(t, "https://api.deepseek.com", config.BaseURL)
	assert.Equal(t, "deepseek-chat", config.Model)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.InDelta(t, 0.2, config.Temperature, 0.0001)
	assert.Empty(t, config.APIKey)
}

func TestConfigFromEnv_NoKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvGeminiAPIKey, "")

	assert.Nil(t, ConfigFromEnv())
}

func TestConfigFromEnv_DeepSeek(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvBaseURL, "http://localhost:9999")
	t.Setenv(EnvModel, "custom-model")
	t.Setenv(EnvTimeout, "5")
	t.Setenv(EnvGeminiAPIKey, "")

	config := ConfigFromEnv()
	require.NotNil(t, config)
	assert.Equal(t, ProviderOpenAI, config.Provider)
	assert.Equal(t, "sk-test", config.APIKey)
	assert.Equal(t, "http://localhost:9999", config.BaseURL)
	assert.Equal(t, "custom-model", config.Model)
	assert.Equal(t, 5*time.Second, config.Timeout)
}

func TestConfigFromEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvTimeout, "soon")

	config := ConfigFromEnv()
	require.NotNil(t, config)
	assert.Equal(t, DefaultTimeout, config.Timeout)
}

func TestConfigFromEnv_GeminiFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvGeminiAPIKey, "g-key")

	config := ConfigFromEnv()
	require.NotNil(t, config)
	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, DefaultGeminiModel, config.Model)
}

func TestWithDefaults(t *testing.T) {
	config := (&Config{APIKey: "k"}).withDefaults()
	assert.Equal(t, ProviderOpenAI, config.Provider)
	assert.Equal(t, DefaultBaseURL, config.BaseURL)
	assert.Equal(t, DefaultModel, config.Model)
	assert.Equal(t, DefaultTimeout, config.Timeout)

	gemini := (&Config{Provider: ProviderGemini, APIKey: "k"}).withDefaults()
	assert.Equal(t, DefaultGeminiModel, gemini.Model)
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("gemini"), ProviderGemini)
	assert.Equal(t, Provider("openai"), ProviderOpenAI)
}
