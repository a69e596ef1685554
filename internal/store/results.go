package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, res QuizResultData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quiz_results (session_id, taken_at, total, correct, score, passed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		res.SessionID, res.TakenAt.UTC(), res.Total, res.Correct, res.Score, res.Passed,
	)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]QuizResultData, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, taken_at, total, correct, score, passed
		FROM quiz_results ORDER BY taken_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []QuizResultData
	for rows.Next() {
		var (
			res     QuizResultData
			takenAt time.Time
		)
		if err := rows.Scan(&res.SessionID, &takenAt, &res.Total, &res.Correct, &res.Score, &res.Passed); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		res.TakenAt = takenAt
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *resultRepo) Stats(ctx context.Context) (ResultStats, error) {
	var (
		stats ResultStats
		avg   sql.NullFloat64
		best  sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(score), MAX(score),
		       COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0)
		FROM quiz_results`).Scan(&stats.Sessions, &avg, &best, &stats.Passed)
	if err != nil {
		return ResultStats{}, fmt.Errorf("query result stats: %w", err)
	}
	if avg.Valid {
		stats.AvgScore = avg.Float64
	}
	if best.Valid {
		stats.BestScore = int(best.Int64)
	}
	return stats, nil
}
