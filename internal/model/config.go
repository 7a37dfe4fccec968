package model

import "time"

// Config holds the complete memoscan configuration
type Config struct {
	LLM    LLMConfig    `yaml:"llm" mapstructure:"llm"`
	Verify VerifyConfig `yaml:"verify" mapstructure:"verify"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// LLMConfig configures the judgment oracle provider
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for OpenAI/Anthropic (prefer environment variables)
	APIKey string `yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout for one judgment call, seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens for the judgment response
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// RequestsPerSecond throttles judgment calls; judgments are already
	// sequential, this guards against provider rate limits
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`

	// Burst for the rate limiter
	Burst int `yaml:"burst" mapstructure:"burst"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// VerifyConfig configures prompt budgets for the verification engine
type VerifyConfig struct {
	// FieldChunkChars is the context budget for one field judgment
	FieldChunkChars int `yaml:"field_chunk_chars" mapstructure:"field_chunk_chars"`

	// SectionChunkChars is the context budget for one section judgment
	SectionChunkChars int `yaml:"section_chunk_chars" mapstructure:"section_chunk_chars"`

	// MaxClaims caps how many claims are extracted per memo section
	MaxClaims int `yaml:"max_claims" mapstructure:"max_claims"`
}

// OutputConfig configures report output
type OutputConfig struct {
	JSONPath     string `yaml:"json_path,omitempty" mapstructure:"json_path"`
	MarkdownPath string `yaml:"markdown_path,omitempty" mapstructure:"markdown_path"`
	Verbose      bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:          "anthropic",
			Model:             "",
			Timeout:           60,
			MaxTokens:         600,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Verify: VerifyConfig{
			FieldChunkChars:   15000,
			SectionChunkChars: 18000,
			MaxClaims:         8,
		},
		Output: OutputConfig{
			JSONPath: "report.json",
		},
	}
}

// OracleTimeout returns the configured per-call timeout as a duration
func (c LLMConfig) OracleTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}
