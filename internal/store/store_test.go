package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/vamsipaul1/futurefit/internal/assessment"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedQuestions(t *testing.T, s *Store, skillID string, n int) []assessment.Question {
	t.Helper()
	repo := s.QuestionRepo()
	ctx := context.Background()

	out := make([]assessment.Question, n)
	for i := range out {
		q := assessment.Question{
			ID:      fmt.Sprintf("%s-q%02d", skillID, i),
			SkillID: skillID,
			Type:    assessment.TypeMultipleChoice,
			Level:   assessment.LevelBeginner,
			Prompt:  fmt.Sprintf("prompt %d", i),
			Options: []string{"a", "b", "c", "d"},
			Answer:  "a",
		}
		if err := repo.Insert(ctx, q); err != nil {
			t.Fatalf("insert question: %v", err)
		}
		out[i] = q
	}
	return out
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionRepoFindAndCount(t *testing.T) {
	s := openTestStore(t)
	questions := seedQuestions(t, s, "go", 6)
	seedQuestions(t, s, "sql", 3)
	repo := s.QuestionRepo()
	ctx := context.Background()

	all, err := repo.FindQuestions(ctx, "go", nil)
	if err != nil {
		t.Fatalf("FindQuestions: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("found %d questions, want 6", len(all))
	}
	if all[0].Answer != "a" || len(all[0].Options) != 4 {
		t.Errorf("round-trip lost fields: %+v", all[0])
	}

	filtered, err := repo.FindQuestions(ctx, "go", []string{questions[0].ID, questions[1].ID})
	if err != nil {
		t.Fatalf("FindQuestions with exclusions: %v", err)
	}
	if len(filtered) != 4 {
		t.Errorf("found %d after exclusion, want 4", len(filtered))
	}
	for _, q := range filtered {
		if q.ID == questions[0].ID || q.ID == questions[1].ID {
			t.Errorf("excluded question %s returned", q.ID)
		}
	}

	n, err := repo.CountQuestions(ctx, "go")
	if err != nil {
		t.Fatalf("CountQuestions: %v", err)
	}
	if n != 6 {
		t.Errorf("count = %d, want 6", n)
	}

	skills, err := repo.Skills(ctx)
	if err != nil {
		t.Fatalf("Skills: %v", err)
	}
	if skills["go"] != 6 || skills["sql"] != 3 {
		t.Errorf("skills = %v, want go:6 sql:3", skills)
	}
}

func TestAttemptRepoDuplicateSafe(t *testing.T) {
	s := openTestStore(t)
	questions := seedQuestions(t, s, "go", 5)
	repo := s.AttemptRepo()
	ctx := context.Background()

	ids := []string{questions[0].ID, questions[1].ID}
	if err := repo.RecordAttempts(ctx, "u1", ids); err != nil {
		t.Fatalf("RecordAttempts: %v", err)
	}
	// Re-recording the same pairs must neither error nor double-count.
	if err := repo.RecordAttempts(ctx, "u1", ids); err != nil {
		t.Fatalf("RecordAttempts repeat: %v", err)
	}

	got, err := repo.AttemptedQuestionIDs(ctx, "u1", "go")
	if err != nil {
		t.Fatalf("AttemptedQuestionIDs: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("attempted = %d, want 2", len(got))
	}

	n, err := repo.AttemptCount(ctx, "u1")
	if err != nil {
		t.Fatalf("AttemptCount: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestAttemptRepoClearIsPerSkill(t *testing.T) {
	s := openTestStore(t)
	goQs := seedQuestions(t, s, "go", 3)
	sqlQs := seedQuestions(t, s, "sql", 3)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.RecordAttempts(ctx, "u1", []string{goQs[0].ID, sqlQs[0].ID}); err != nil {
		t.Fatalf("RecordAttempts: %v", err)
	}

	if err := repo.ClearAttempts(ctx, "u1", "go"); err != nil {
		t.Fatalf("ClearAttempts: %v", err)
	}

	goAttempts, _ := repo.AttemptedQuestionIDs(ctx, "u1", "go")
	if len(goAttempts) != 0 {
		t.Errorf("go attempts = %d after clear, want 0", len(goAttempts))
	}
	sqlAttempts, _ := repo.AttemptedQuestionIDs(ctx, "u1", "sql")
	if len(sqlAttempts) != 1 {
		t.Errorf("sql attempts = %d, want 1 (clear must be per-skill)", len(sqlAttempts))
	}
}

func TestAssessmentRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	a := &assessment.Assessment{
		ID:     "a-1",
		UserID: "u1",
		Skills: []assessment.SkillRequest{{SkillID: "go", Level: assessment.LevelIntermediate}},
		Questions: []assessment.PublicQuestion{
			{ID: "go-q00", SkillID: "go", Type: assessment.TypeMultipleChoice, Prompt: "p", Options: []string{"a", "b"}},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.SaveAssessment(ctx, a); err != nil {
		t.Fatalf("SaveAssessment: %v", err)
	}

	got, err := repo.GetAssessment(ctx, "a-1")
	if err != nil {
		t.Fatalf("GetAssessment: %v", err)
	}
	if got.UserID != "u1" || len(got.Questions) != 1 || got.Questions[0].ID != "go-q00" {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	_, err = repo.GetAssessment(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLLMEventRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "resume", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "resume", InputTokens: 80, OutputTokens: 40, Success: false, ErrorMessage: "timeout"},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "other", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	recs, err := repo.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	// Newest first.
	if recs[0].Purpose != "other" {
		t.Errorf("first record purpose = %q, want other", recs[0].Purpose)
	}

	stats, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("UsageByPurpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d purposes, want 2", len(stats))
	}
	// Ordered by purpose: "other" then "resume".
	if stats[1].Purpose != "resume" || stats[1].Requests != 2 || stats[1].Failures != 1 {
		t.Errorf("resume stats = %+v", stats[1])
	}
	if stats[1].InputTokens != 180 || stats[1].OutputTokens != 90 {
		t.Errorf("resume tokens = %d/%d, want 180/90", stats[1].InputTokens, stats[1].OutputTokens)
	}
}
