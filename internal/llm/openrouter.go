package llm

import "errors"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider routes requests through openrouter.ai. OpenRouter
// speaks the OpenAI chat API, so this is the OpenAI provider pointed at
// a different base URL. Model names pass through untouched; they already
// carry the vendor prefix ("anthropic/claude-3-haiku").
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = openRouterBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
