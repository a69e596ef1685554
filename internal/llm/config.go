package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parameterizes the backend that generates safety
// briefings.
type Config struct {
	// Provider names the backend: "anthropic", "openai", "gemini",
	// "openrouter", or "mock".
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
	APIKey string
	Model  string

	// BaseURL points the SDK at an OpenAI-compatible host when set.
	BaseURL string
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

// modelAliases lets configuration say "claude-haiku" instead of a dated
// model ID. Names not in the table pass through as literal model IDs,
// including OpenRouter's "vendor/model" form.
var modelAliases = map[string]string{
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"claude-sonnet": "claude-sonnet-4-20250514",
	"gpt":           "gpt-4o",
	"gpt-mini":      "gpt-4o-mini",
	"gemini-flash":  "gemini-2.0-flash",
	"gemini-pro":    "gemini-2.0-pro",
}

func aliasedModel(name string) string {
	if id, ok := modelAliases[name]; ok {
		return id
	}
	return name
}

// DefaultConfig targets the cheapest adequate model of each provider;
// a safety briefing is a short single-turn request.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays LABMATE_* environment variables onto the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overlay := []struct {
		env string
		dst *string
	}{
		{"LABMATE_LLM_PROVIDER", &cfg.Provider},
		{"LABMATE_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"LABMATE_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"LABMATE_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"LABMATE_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"LABMATE_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"LABMATE_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"LABMATE_GEMINI_MODEL", &cfg.Gemini.Model},
		{"LABMATE_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"LABMATE_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
	}
	for _, o := range overlay {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}

	return cfg
}

// DiscoverConfig probes the providers' own conventional key variables
// when no LABMATE_* configuration exists, so a machine that already has
// GEMINI_API_KEY set works out of the box. First hit wins.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
		dst      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.dst = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}

	required := map[string]struct{ key, env string }{
		"anthropic":  {c.Anthropic.APIKey, "LABMATE_ANTHROPIC_API_KEY"},
		"openai":     {c.OpenAI.APIKey, "LABMATE_OPENAI_API_KEY"},
		"gemini":     {c.Gemini.APIKey, "LABMATE_GEMINI_API_KEY"},
		"openrouter": {c.OpenRouter.APIKey, "LABMATE_OPENROUTER_API_KEY"},
	}

	req, ok := required[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if req.key == "" {
		return fmt.Errorf("%s is required for the %s provider", req.env, c.Provider)
	}
	return nil
}
