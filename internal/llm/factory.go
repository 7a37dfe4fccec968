package llm

import (
	"fmt"
	"strings"
)

// NewJudge creates a judgment-oracle provider based on configuration,
// wrapped with the configured rate limiter
func NewJudge(config Config) (Judge, error) {
	var (
		judge Judge
		err   error
	)

	switch strings.ToLower(config.Provider) {
	case "openai":
		judge, err = NewOpenAIJudge(config)

	case "anthropic", "claude":
		judge, err = NewAnthropicJudge(config)

	case "ollama":
		judge, err = NewOllamaJudge(config)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}

	if err != nil {
		return nil, err
	}

	return NewRateLimitedJudge(judge, config.RequestsPerSecond, config.Burst), nil
}
