package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vamsipaul1/futurefit/internal/assessment"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// AssessmentRepo persists generated assessments. It satisfies
// assessment.AssessmentStore.
type AssessmentRepo struct {
	db *sql.DB
}

// SaveAssessment stores the assessment. The full question list is kept as
// a JSON payload; assessments are read-only after creation, so there is
// nothing to query inside it.
func (r *AssessmentRepo) SaveAssessment(ctx context.Context, a *assessment.Assessment) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO assessments (id, user_id, payload, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.UserID, string(payload), a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert assessment %s: %w", a.ID, err)
	}
	return nil
}

// GetAssessment loads an assessment by ID. Returns ErrNotFound if absent.
func (r *AssessmentRepo) GetAssessment(ctx context.Context, id string) (*assessment.Assessment, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		"SELECT payload FROM assessments WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query assessment: %w", err)
	}

	var a assessment.Assessment
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("unmarshal assessment %s: %w", id, err)
	}
	return &a, nil
}
