package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIJudge implements the Judge interface for OpenAI models
type OpenAIJudge struct {
	client *openai.Client
	config Config
}

// NewOpenAIJudge creates a new OpenAI judge
func NewOpenAIJudge(config Config) (*OpenAIJudge, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIJudge{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (j *OpenAIJudge) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (j *OpenAIJudge) IsAvailable(ctx context.Context) bool {
	// Lightweight API call
	_, err := j.client.ListModels(ctx)
	if err != nil {
		// Log the actual error for debugging (this helps users diagnose API key issues)
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Complete sends one judgment prompt via OpenAI's Chat Completions API
func (j *OpenAIJudge) Complete(ctx context.Context, prompt string) (string, error) {
	model := j.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	maxTokens := j.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 600
	}

	timeout := time.Duration(j.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.1, // Judgments should be as deterministic as the API allows
	}

	resp, err := j.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
