package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vamsipaul1/futurefit/internal/assessment"
)

// QuestionRepo is SQLite-backed read/write access to the question bank.
// It satisfies assessment.QuestionSource.
type QuestionRepo struct {
	db *sql.DB
}

const questionColumns = "id, skill_id, type, level, prompt, options, answer, response_hint"

// FindQuestions returns all questions for a skill, excluding the given IDs.
func (r *QuestionRepo) FindQuestions(ctx context.Context, skillID string, excludeIDs []string) ([]assessment.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions WHERE skill_id = ?"
	args := []any{skillID}

	if len(excludeIDs) > 0 {
		placeholders := strings.Repeat("?,", len(excludeIDs))
		query += " AND id NOT IN (" + placeholders[:len(placeholders)-1] + ")"
		for _, id := range excludeIDs {
			args = append(args, id)
		}
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []assessment.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// CountQuestions returns the total authored pool size for a skill.
func (r *QuestionRepo) CountQuestions(ctx context.Context, skillID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM questions WHERE skill_id = ?", skillID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// Insert adds a question to the bank. Inserting an existing ID replaces
// the record, which lets seed files be re-applied.
func (r *QuestionRepo) Insert(ctx context.Context, q assessment.Question) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO questions (`+questionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.SkillID, string(q.Type), string(q.Level), q.Prompt,
		string(options), q.Answer, q.ResponseHint)
	if err != nil {
		return fmt.Errorf("insert question %s: %w", q.ID, err)
	}
	return nil
}

// Skills lists the distinct skill IDs present in the bank with their pool
// sizes, ordered by skill ID.
func (r *QuestionRepo) Skills(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT skill_id, COUNT(*) FROM questions GROUP BY skill_id")
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func scanQuestion(rows *sql.Rows) (assessment.Question, error) {
	var q assessment.Question
	var typ, level, options string
	if err := rows.Scan(&q.ID, &q.SkillID, &typ, &level, &q.Prompt, &options, &q.Answer, &q.ResponseHint); err != nil {
		return q, fmt.Errorf("scan question: %w", err)
	}
	q.Type = assessment.QuestionType(typ)
	q.Level = assessment.Level(level)
	if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
		return q, fmt.Errorf("unmarshal options for %s: %w", q.ID, err)
	}
	return q, nil
}
