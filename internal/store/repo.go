package store

import (
	"context"
	"time"

	"github.com/daylab/labmate/internal/catalog"
)

// ItemRepo persists the reagent catalog.
type ItemRepo interface {
	// ReplaceAll swaps the stored catalog for the given items atomically.
	ReplaceAll(ctx context.Context, items []catalog.Item) error
	// All returns every stored item.
	All(ctx context.Context) ([]catalog.Item, error)
	// Count returns the number of stored items.
	Count(ctx context.Context) (int, error)
}

// QuizResultData is a finished quiz session's outcome.
type QuizResultData struct {
	SessionID string
	TakenAt   time.Time
	Total     int
	Correct   int
	Score     int
	Passed    bool
}

// ResultStats aggregates quiz history for the stats view.
type ResultStats struct {
	Sessions  int
	AvgScore  float64
	BestScore int
	Passed    int
}

// ResultRepo persists quiz outcomes.
type ResultRepo interface {
	Append(ctx context.Context, r QuizResultData) error
	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]QuizResultData, error)
	Stats(ctx context.Context) (ResultStats, error)
}

// LLMEventData records a single LLM request for auditing.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ModelUsage aggregates token counts for one model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// LLMEventRepo logs LLM requests.
type LLMEventRepo interface {
	AppendLLMEvent(ctx context.Context, e LLMEventData) error
	// UsageByModel returns per-model token totals, most-used model first.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}
