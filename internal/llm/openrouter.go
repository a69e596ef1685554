package llm

import "fmt"

const openRouterHost = "https://openrouter.ai/api/v1"

// OpenRouterProvider is an OpenAIProvider pointed at the OpenRouter
// gateway, which serves the same chat completions protocol.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	host := cfg.BaseURL
	if host == "" {
		host = openRouterHost
	}

	inner := newOpenAICompatible(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: host,
	})
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
