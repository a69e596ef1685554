package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"summary":"에탄올은 인화성 액체입니다."}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Err: &ErrRateLimit{}},
	)

	resp, err := mock.Generate(context.Background(), Request{
		System:   "You brief students on reagent hazards.",
		Messages: []Message{{Role: RoleUser, Content: "에탄올"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"summary":"에탄올은 인화성 액체입니다."}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 10 || resp.StopReason != "end" {
		t.Errorf("resp = %+v", resp)
	}

	// Second scripted entry carries the error.
	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("want ErrRateLimit, got %T", err)
	}

	// Script drained.
	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("want ErrProviderUnavailable after the script drains, got %T", err)
	}

	if mock.CallCount() != 3 {
		t.Errorf("CallCount() = %d, want 3", mock.CallCount())
	}
	if mock.Calls[0].System != "You brief students on reagent hazards." {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestMockProviderAddResponse(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})

	if _, err := mock.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("ModelID() = %q", mock.ModelID())
	}
}

func TestPurposeLabel(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("unlabeled context reports %q, want unknown", got)
	}
	ctx := WithPurpose(context.Background(), "explain")
	if got := PurposeFrom(ctx); got != "explain" {
		t.Errorf("PurposeFrom = %q, want explain", got)
	}
}

func TestAliasedModel(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"gpt-mini", "gpt-4o-mini"},
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-2.5-pro", "gemini-2.5-pro"},
		{"meta-llama/llama-3-8b", "meta-llama/llama-3-8b"},
	}
	for _, tt := range tests {
		if got := aliasedModel(tt.name); got != tt.want {
			t.Errorf("aliasedModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeStop(t *testing.T) {
	tests := []struct {
		reason, want string
	}{
		{"end_turn", "end"},
		{"stop", "end"},
		{"STOP", "end"},
		{"max_tokens", "max_tokens"},
		{"MAX_TOKENS", "max_tokens"},
		{"length", "max_tokens"},
		{"", "end"},
	}
	for _, tt := range tests {
		if got := normalizeStop(tt.reason); got != tt.want {
			t.Errorf("normalizeStop(%q) = %q, want %q", tt.reason, got, tt.want)
		}
	}
}

func TestErrFromStatus(t *testing.T) {
	base := errors.New("upstream")

	var rl *ErrRateLimit
	if !errors.As(errFromStatus(429, base), &rl) {
		t.Error("429 must map to ErrRateLimit")
	}

	var unavail *ErrProviderUnavailable
	for _, status := range []int{500, 503, 400} {
		if !errors.As(errFromStatus(status, base), &unavail) {
			t.Errorf("%d must map to ErrProviderUnavailable", status)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnvOverlay(t *testing.T) {
	t.Setenv("LABMATE_LLM_PROVIDER", "gemini")
	t.Setenv("LABMATE_GEMINI_API_KEY", "g-key")
	t.Setenv("LABMATE_GEMINI_MODEL", "gemini-2.5-flash")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini = %+v", cfg.Gemini)
	}
	// Untouched sections keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic.Model = %q, want the default", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	for _, env := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(env, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("no keys set, discovery must fail")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "a-key" {
		t.Fatalf("cfg = %+v, ok = %v", cfg, ok)
	}

	// Gemini outranks Anthropic when both are present.
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("cfg = %+v, ok = %v", cfg, ok)
	}
}
