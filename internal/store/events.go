package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type llmEventRepo struct {
	db *sql.DB
}

func (r *llmEventRepo) AppendLLMEvent(ctx context.Context, e LLMEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (
			created_at, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), e.Provider, e.Model, e.Purpose,
		e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success, e.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM llm_events GROUP BY model ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Requests, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

var _ LLMEventRepo = (*llmEventRepo)(nil)
var _ ItemRepo = (*itemRepo)(nil)
var _ ResultRepo = (*resultRepo)(nil)
