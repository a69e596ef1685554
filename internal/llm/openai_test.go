package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func openAIAgainst(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newOpenAICompatible(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
}

func openAICompletion(content, finishReason string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": finishReason,
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	}
}

func openAIError(status, msg string, httpStatus int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(httpStatus)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    status,
				"message": msg,
			},
		})
	}
}

func TestOpenAIGenerate(t *testing.T) {
	briefing := `{"summary":"에탄올은 인화점이 낮아 화기 근처에서 다루지 않습니다.","risk":"화재"}`
	p := openAIAgainst(t, openAICompletion(briefing, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You brief students on reagent hazards.",
		Messages:  []Message{{Role: RoleUser, Content: "에탄올을 안전하게 다루는 방법은?"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != briefing {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 || resp.Usage.TotalTokens != 65 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestOpenAILengthStop(t *testing.T) {
	p := openAIAgainst(t, openAICompletion(`"질산은"`, "length"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "질산 취급법"}},
		MaxTokens: 4,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", resp.StopReason)
	}
}

func TestOpenAIErrorMapping(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		p := openAIAgainst(t, openAIError("tokens", "rate limit exceeded", http.StatusTooManyRequests))
		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "황산"}},
			MaxTokens: 100,
		})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("want ErrRateLimit, got %T (%v)", err, err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		p := openAIAgainst(t, openAIError("server_error", "internal error", http.StatusInternalServerError))
		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "황산"}},
			MaxTokens: 100,
		})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("want ErrProviderUnavailable, got %T (%v)", err, err)
		}
	})
}

func TestOpenAIEmptyChoices(t *testing.T) {
	p := openAIAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "아세톤"}},
		MaxTokens: 100,
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIKeyRequired(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("want an error without an API key")
	}

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if got := p.ModelID(); got != "gpt-4o-mini" {
		t.Errorf("ModelID() = %q, want the resolved alias target", got)
	}
}
