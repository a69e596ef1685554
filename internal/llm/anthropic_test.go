package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicAgainst(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &AnthropicProvider{
		client: anthropic.NewClient(
			option.WithAPIKey("test-key"),
			option.WithBaseURL(server.URL),
		),
		model: "claude-haiku-4-5-20251001",
	}
}

func anthropicMessage(text, stopReason string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stopReason,
			"usage": map[string]any{
				"input_tokens":  64,
				"output_tokens": 28,
			},
		})
	}
}

func anthropicError(status int, errType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    errType,
				"message": "upstream says no",
			},
		})
	}
}

func TestAnthropicGenerate(t *testing.T) {
	briefing := `{"summary":"염산은 부식성이 강한 산이므로 반드시 후드에서 다룹니다.","risk":"부식"}`
	p := anthropicAgainst(t, anthropicMessage(briefing, "end_turn"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You brief students on reagent hazards.",
		Messages:  []Message{{Role: RoleUser, Content: "염산 취급 시 주의사항을 알려줘."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != briefing {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 64 || resp.Usage.OutputTokens != 28 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicTruncatedAtTokenLimit(t *testing.T) {
	p := anthropicAgainst(t, anthropicMessage(`"수산화나트륨은"`, "max_tokens"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "수산화나트륨 위험성"}},
		MaxTokens: 8,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", resp.StopReason)
	}
}

func TestAnthropicErrorMapping(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		p := anthropicAgainst(t, anthropicError(http.StatusTooManyRequests, "rate_limit_error"))
		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "에탄올"}},
			MaxTokens: 100,
		})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("want ErrRateLimit, got %T (%v)", err, err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		p := anthropicAgainst(t, anthropicError(http.StatusInternalServerError, "api_error"))
		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "에탄올"}},
			MaxTokens: 100,
		})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("want ErrProviderUnavailable, got %T (%v)", err, err)
		}
	})
}

func TestAnthropicModelID(t *testing.T) {
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku"})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.ModelID(); got != "claude-haiku-4-5-20251001" {
		t.Errorf("ModelID() = %q, want the resolved alias target", got)
	}
}
