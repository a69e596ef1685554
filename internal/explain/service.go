package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/daylab/labmate/internal/llm"
)

// Service turns catalog items into safety briefings. The TUI screens use
// the async Request/Consume pair so the event loop never blocks on the
// provider; the explain subcommand calls Explain directly.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu   sync.Mutex
	done *outcome
}

type outcome struct {
	briefing *Explanation
	err      error
}

func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request kicks off generation in the background. At most one briefing
// is held at a time; a later Request overwrites an unconsumed one.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		briefing, err := s.Explain(ctx, input)
		s.mu.Lock()
		s.done = &outcome{briefing: briefing, err: err}
		s.mu.Unlock()
	}()
}

// Consume hands over the finished briefing and clears the slot. It
// reports false while generation is still running, and also when the
// finished attempt ended in an error.
func (s *Service) Consume() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return nil, false
	}
	out := s.done
	s.done = nil
	return out.briefing, out.err == nil && out.briefing != nil
}

// Explain generates a briefing and blocks until the provider answers.
func (s *Service) Explain(ctx context.Context, input Input) (*Explanation, error) {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "safety-explain"), llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("safety explanation: %w", err)
	}

	var out struct {
		Summary  string   `json:"summary"`
		Hazards  []string `json:"hazards"`
		Handling []string `json:"handling"`
		FirstAid string   `json:"first_aid"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		ItemName: input.Item.DisplayName(),
		Summary:  out.Summary,
		Hazards:  out.Hazards,
		Handling: out.Handling,
		FirstAid: out.FirstAid,
	}, nil
}
