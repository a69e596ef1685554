package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/daylab/labmate/internal/store"
)

type fakeEventRepo struct {
	events []store.LLMEventData
}

func (f *fakeEventRepo) AppendLLMEvent(_ context.Context, e store.LLMEventData) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) UsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34, TotalTokens: 46},
	})
	repo := &fakeEventRepo{}
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "safety-explain")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", e.Provider)
	}
	if e.Purpose != "safety-explain" {
		t.Errorf("Purpose = %q, want safety-explain", e.Purpose)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("Success = false, want true")
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	repo := &fakeEventRepo{}
	p := WithLogging(mock, "openai", repo)

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("Success = true, want false")
	}
	if e.ErrorMessage == "" {
		t.Error("ErrorMessage is empty, want the provider error")
	}
}
