package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures one LLM API call for the usage log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored event with its identity fields.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMEventRepo records and queries LLM request events.
type LLMEventRepo struct {
	db *sql.DB
}

// AppendLLMRequest records an LLM API call event.
func (r *LLMEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns the most recent events, newest first.
// limit <= 0 means no limit.
func (r *LLMEventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMRequestEventRecord, error) {
	query := `SELECT id, provider, model, purpose, input_tokens, output_tokens,
	          latency_ms, success, error_message, created_at
	          FROM llm_events ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEventRecord
	for rows.Next() {
		var rec LLMRequestEventRecord
		var success int
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs,
			&success, &rec.ErrorMessage, &createdAt); err != nil {
			return nil, err
		}
		rec.Success = success != 0
		rec.Timestamp, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UsageByPurpose aggregates usage per purpose label, ordered by purpose.
func (r *LLMEventRepo) UsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), SUM(1 - success),
		        SUM(input_tokens), SUM(output_tokens)
		 FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsageStats
	for rows.Next() {
		var s LLMUsageStats
		if err := rows.Scan(&s.Purpose, &s.Requests, &s.Failures, &s.InputTokens, &s.OutputTokens); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
