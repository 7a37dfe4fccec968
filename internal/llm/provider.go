package llm

import (
	"context"

	"memoscan/internal/model"
)

// Judge defines the interface for judgment-oracle providers. One call
// carries one natural-language prompt and returns the raw completion
// text; no streaming, no multi-turn state.
type Judge interface {
	// Name returns the provider name
	Name() string

	// Complete sends a single prompt and returns the raw response text
	Complete(ctx context.Context, prompt string) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds judgment-oracle provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerSecond throttles calls to stay under provider limits
	RequestsPerSecond float64

	// Burst for the rate limiter
	Burst int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "anthropic",
		Timeout:           60,
		MaxTokens:         600,
		RequestsPerSecond: 1,
		Burst:             2,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:          mc.Provider,
		Model:             mc.Model,
		APIKey:            mc.APIKey,
		BaseURL:           mc.BaseURL,
		Timeout:           mc.Timeout,
		MaxTokens:         mc.MaxTokens,
		RequestsPerSecond: mc.RequestsPerSecond,
		Burst:             mc.Burst,
		HTTPProxy:         mc.HTTPProxy,
		HTTPSProxy:        mc.HTTPSProxy,
	}
}
