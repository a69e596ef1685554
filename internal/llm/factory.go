package llm

import (
	"context"
	"fmt"

	"github.com/daylab/labmate/internal/store"
)

// NewProvider builds the backend named by cfg.Provider and stacks the
// decorators on it, so callers see retry -> logging -> backend. The mock
// backend is returned bare; tests script it directly.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	build, ok := backends[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	base, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, cfg.Provider, events), cfg.Retry), nil
}

var backends = map[string]func(context.Context, Config) (Provider, error){
	"anthropic":  func(_ context.Context, cfg Config) (Provider, error) { return NewAnthropicProvider(cfg.Anthropic) },
	"openai":     func(_ context.Context, cfg Config) (Provider, error) { return NewOpenAIProvider(cfg.OpenAI) },
	"gemini":     func(ctx context.Context, cfg Config) (Provider, error) { return NewGeminiProvider(ctx, cfg.Gemini) },
	"openrouter": func(_ context.Context, cfg Config) (Provider, error) { return NewOpenRouterProvider(cfg.OpenRouter) },
}

// NewProviderFromEnv builds a Provider from LABMATE_* env vars, falling
// back to DiscoverConfig when LABMATE_LLM_PROVIDER is unset.
func NewProviderFromEnv(ctx context.Context, events store.LLMEventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}
