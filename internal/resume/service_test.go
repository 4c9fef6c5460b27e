package resume

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/vamsipaul1/futurefit/internal/llm"
)

const sampleAnalysisJSON = `{
	"summary": "Backend engineer with five years of Go and Python experience.",
	"skills": [
		{"name": "go", "level": "advanced"},
		{"name": "python", "level": "intermediate"},
		{"name": "sql", "level": "intermediate"}
	],
	"strengths": ["Strong distributed systems background."],
	"gaps": ["No frontend experience."],
	"suggested_roles": ["Backend Engineer", "Platform Engineer"]
}`

func TestAnalyzeParsesStructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(sampleAnalysisJSON),
		Usage:   llm.Usage{InputTokens: 200, OutputTokens: 120, TotalTokens: 320},
	})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	analysis, err := a.Analyze(context.Background(), "Five years of Go and Python backend work.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(analysis.Skills) != 3 {
		t.Fatalf("skills = %d, want 3", len(analysis.Skills))
	}
	if analysis.Skills[0].Name != "go" || analysis.Skills[0].Level != "advanced" {
		t.Errorf("skills[0] = %+v, want go/advanced", analysis.Skills[0])
	}
	if len(analysis.SuggestedRoles) != 2 {
		t.Errorf("suggested roles = %d, want 2", len(analysis.SuggestedRoles))
	}
	if analysis.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}

func TestAnalyzeSendsSchemaAndPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(sampleAnalysisJSON),
	})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	if _, err := a.Analyze(context.Background(), "resume text"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "resume-analysis" {
		t.Errorf("expected resume-analysis schema, got %+v", req.Schema)
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Errorf("expected single user message, got %+v", req.Messages)
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	if _, err := a.Analyze(context.Background(), "   \n "); !errors.Is(err, ErrEmptyResume) {
		t.Errorf("err = %v, want ErrEmptyResume", err)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("provider called %d times for empty input, want 0", len(mock.Calls))
	}
}

func TestAnalyzeFallsBackToFencedJSON(t *testing.T) {
	fenced := "Here is the analysis you asked for:\n```json\n" + sampleAnalysisJSON + "\n```\nLet me know if you need more."
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(fenced),
	})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	analysis, err := a.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analysis.Skills) != 3 {
		t.Errorf("skills = %d, want 3", len(analysis.Skills))
	}
}

func TestAnalyzeUnparseableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("I could not analyze this resume."),
	})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	_, err := a.Analyze(context.Background(), "resume text")
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestAnalyzeProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	_, err := a.Analyze(context.Background(), "resume text")
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestTruncateResume(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	got := truncateResume(string(long), 10)
	if len(got) <= 10 {
		t.Fatalf("expected truncation marker appended, got %q", got)
	}
	if got[:10] != "aaaaaaaaaa" {
		t.Errorf("truncated prefix = %q", got[:10])
	}

	if got := truncateResume("short", 10); got != "short" {
		t.Errorf("short input modified: %q", got)
	}
	if got := truncateResume(string(long), 0); got != string(long) {
		t.Error("zero limit should disable truncation")
	}
}
