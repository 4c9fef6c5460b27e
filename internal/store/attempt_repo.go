package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AttemptRepo is the append-only attempt history. It satisfies
// assessment.AttemptHistory.
type AttemptRepo struct {
	db *sql.DB
}

// AttemptedQuestionIDs lists the question IDs a user has been served for
// a skill, oldest first.
func (r *AttemptRepo) AttemptedQuestionIDs(ctx context.Context, userID, skillID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.question_id
		 FROM attempts a
		 JOIN questions q ON q.id = a.question_id
		 WHERE a.user_id = ? AND q.skill_id = ?
		 ORDER BY a.created_at`,
		userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ClearAttempts wipes a user's history for one skill. Other skills'
// entries are untouched.
func (r *AttemptRepo) ClearAttempts(ctx context.Context, userID, skillID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM attempts
		 WHERE user_id = ?
		 AND question_id IN (SELECT id FROM questions WHERE skill_id = ?)`,
		userID, skillID)
	if err != nil {
		return fmt.Errorf("clear attempts: %w", err)
	}
	return nil
}

// RecordAttempts appends one entry per question. The (user, question)
// primary key plus INSERT OR IGNORE makes re-recording a no-op.
func (r *AttemptRepo) RecordAttempts(ctx context.Context, userID string, questionIDs []string) error {
	if len(questionIDs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, id := range questionIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO attempts (user_id, question_id, created_at) VALUES (?, ?, ?)`,
			userID, id, now); err != nil {
			return fmt.Errorf("record attempt %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// AttemptCount returns the number of distinct questions the user has
// attempted, across all skills.
func (r *AttemptRepo) AttemptCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM attempts WHERE user_id = ?", userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
