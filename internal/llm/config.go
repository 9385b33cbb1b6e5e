package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter"
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // override for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers PMPREP_* environment variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "PMPREP_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "PMPREP_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "PMPREP_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "PMPREP_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "PMPREP_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "PMPREP_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "PMPREP_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "PMPREP_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "PMPREP_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "PMPREP_OPENROUTER_MODEL")

	return cfg
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard API key variables and
// returns a Config for the first one set. Gemini wins over OpenAI over
// Anthropic over OpenRouter, mirroring typical free-tier availability.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env   string
		apply func(*Config, string)
	}{
		{"GEMINI_API_KEY", func(c *Config, k string) { c.Provider = "gemini"; c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", func(c *Config, k string) { c.Provider = "openai"; c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", func(c *Config, k string) { c.Provider = "anthropic"; c.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", func(c *Config, k string) { c.Provider = "openrouter"; c.OpenRouter.APIKey = k }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg := DefaultConfig()
			p.apply(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, envVar string
	switch c.Provider {
	case "anthropic":
		key, envVar = c.Anthropic.APIKey, "PMPREP_ANTHROPIC_API_KEY"
	case "openai":
		key, envVar = c.OpenAI.APIKey, "PMPREP_OPENAI_API_KEY"
	case "gemini":
		key, envVar = c.Gemini.APIKey, "PMPREP_GEMINI_API_KEY"
	case "openrouter":
		key, envVar = c.OpenRouter.APIKey, "PMPREP_OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}

	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envVar, c.Provider)
	}
	return nil
}
