package career

import (
	"strings"
	"testing"
)

// fixtureCatalog builds a small catalog for scoring tests.
func fixtureCatalog(roles ...RoleProfile) *StaticCatalog {
	return NewStaticCatalog(roles)
}

func newTestEngine(roles ...RoleProfile) *Engine {
	return NewEngine(fixtureCatalog(roles...), DefaultConfig(), nil)
}

func TestScoreEmptyRatings(t *testing.T) {
	e := newTestEngine(RoleProfile{
		ID:       "a",
		Criteria: map[string]int{"leadership": 5},
	})

	got := e.Score(map[string]int{})
	if got == nil {
		t.Fatal("Score returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Score returned %d matches, want 0", len(got))
	}
}

func TestScoreExactArithmetic(t *testing.T) {
	// Two traits expected at 5 on a 1-6 scale, both rated exactly:
	// roleScore = 2 × 1.0 × (5/6) × 10 ≈ 16.67, denominator 3 × 10,
	// percentage round(16.67/30 × 100) = 56.
	roleA := RoleProfile{
		ID:    "role-a",
		Title: "Role A",
		Criteria: map[string]int{
			"leadership":    5,
			"communication": 5,
		},
	}
	e := newTestEngine(roleA)

	got := e.Score(map[string]int{
		"leadership":    5,
		"communication": 5,
		"analytical":    2,
	})

	if len(got) != 1 {
		t.Fatalf("matches = %d, want 1 (56%% clears the 30%% cutoff)", len(got))
	}
	if got[0].MatchScore != 56 {
		t.Errorf("MatchScore = %d, want 56", got[0].MatchScore)
	}
	if len(got[0].MatchReasons) != 2 {
		t.Fatalf("reasons = %d, want 2", len(got[0].MatchReasons))
	}
	for _, r := range got[0].MatchReasons {
		if !strings.HasPrefix(r, "Perfect match for ") {
			t.Errorf("reason %q, want perfect-match tier", r)
		}
	}
}

func TestScoreZeroOverlapFiltered(t *testing.T) {
	e := newTestEngine(
		RoleProfile{ID: "overlap", Criteria: map[string]int{"creativity": 6, "empathy": 6}},
		RoleProfile{ID: "disjoint", Criteria: map[string]int{"leadership": 6}},
	)

	got := e.Score(map[string]int{"creativity": 6, "empathy": 6})

	for _, m := range got {
		if m.ID == "disjoint" {
			t.Error("role with no overlapping traits appeared in results")
		}
	}
	if len(got) != 1 || got[0].ID != "overlap" {
		t.Errorf("got %d matches, want only %q", len(got), "overlap")
	}
}

func TestScoreCutoff(t *testing.T) {
	// One trait of five answered, matched perfectly at expected 6:
	// score = 10, pct = round(10/50 × 100) = 20 ≤ 30 → dropped.
	e := newTestEngine(RoleProfile{ID: "weak", Criteria: map[string]int{"teamwork": 6}})

	got := e.Score(map[string]int{
		"teamwork":   6,
		"leadership": 1,
		"creativity": 1,
		"empathy":    1,
		"analytical": 1,
	})

	if len(got) != 0 {
		t.Errorf("matches = %d, want 0 after cutoff", len(got))
	}
}

func TestScoreSimilaritySteps(t *testing.T) {
	tests := []struct {
		diff int
		want float64
	}{
		{0, 1.0},
		{1, 0.8},
		{2, 0.6},
		{3, 0.4},
		{4, 0},
		{5, 0},
	}
	for _, tt := range tests {
		if got := similarity(tt.diff); got != tt.want {
			t.Errorf("similarity(%d) = %v, want %v", tt.diff, got, tt.want)
		}
	}
}

func TestScoreReasonTiers(t *testing.T) {
	e := newTestEngine(RoleProfile{
		ID: "r",
		Criteria: map[string]int{
			"analytical":    6, // diff 0 → perfect
			"communication": 6, // diff 1 → strong
			"creativity":    6, // diff 2 → good
			"empathy":       6, // diff 3 → below reason threshold
		},
	})

	got := e.Score(map[string]int{
		"analytical":    6,
		"communication": 5,
		"creativity":    4,
		"empathy":       3,
	})
	if len(got) != 1 {
		t.Fatalf("matches = %d, want 1", len(got))
	}

	want := []string{
		"Perfect match for analytical",
		"Strong match for communication",
		"Good match for creativity",
	}
	reasons := got[0].MatchReasons
	if len(reasons) != len(want) {
		t.Fatalf("reasons = %v, want %v", reasons, want)
	}
	for i := range want {
		if reasons[i] != want[i] {
			t.Errorf("reason[%d] = %q, want %q", i, reasons[i], want[i])
		}
	}
}

func TestScoreReasonCap(t *testing.T) {
	e := newTestEngine(RoleProfile{
		ID: "r",
		Criteria: map[string]int{
			"adaptability":  6,
			"analytical":    6,
			"communication": 6,
			"creativity":    6,
			"empathy":       6,
		},
	})

	ratings := map[string]int{
		"adaptability":  6,
		"analytical":    6,
		"communication": 6,
		"creativity":    6,
		"empathy":       6,
	}
	got := e.Score(ratings)
	if len(got) != 1 {
		t.Fatalf("matches = %d, want 1", len(got))
	}
	if len(got[0].MatchReasons) != 3 {
		t.Errorf("reasons = %d, want capped at 3", len(got[0].MatchReasons))
	}
}

func TestScoreOrderingAndTieBreak(t *testing.T) {
	// "first" and "second" score identically; catalogue order must win.
	e := newTestEngine(
		RoleProfile{ID: "low", Criteria: map[string]int{"analytical": 6, "empathy": 2}},
		RoleProfile{ID: "first", Criteria: map[string]int{"analytical": 6, "empathy": 6}},
		RoleProfile{ID: "second", Criteria: map[string]int{"analytical": 6, "empathy": 6}},
	)

	ratings := map[string]int{"analytical": 6, "empathy": 6}
	got := e.Score(ratings)

	if len(got) < 2 {
		t.Fatalf("matches = %d, want at least 2", len(got))
	}
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("tie order = [%s, %s], want [first, second]", got[0].ID, got[1].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].MatchScore > got[i-1].MatchScore {
			t.Errorf("results not sorted descending at index %d", i)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	e := NewEngine(DefaultCatalog(), DefaultConfig(), nil)
	ratings := map[string]int{
		"analytical":          5,
		"communication":       4,
		"problem-solving":     6,
		"creativity":          3,
		"attention-to-detail": 5,
		"leadership":          2,
	}

	first := e.Score(ratings)
	for i := 0; i < 5; i++ {
		again := e.Score(ratings)
		if len(again) != len(first) {
			t.Fatalf("run %d: %d matches, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].ID != first[j].ID || again[j].MatchScore != first[j].MatchScore {
				t.Errorf("run %d diverged at index %d: %s/%d vs %s/%d",
					i, j, again[j].ID, again[j].MatchScore, first[j].ID, first[j].MatchScore)
			}
			for k := range first[j].MatchReasons {
				if again[j].MatchReasons[k] != first[j].MatchReasons[k] {
					t.Errorf("run %d: reasons diverged for %s", i, first[j].ID)
				}
			}
		}
	}
}

func TestScoreEnrichment(t *testing.T) {
	e := newTestEngine(RoleProfile{
		ID:     "r",
		Title:  "Data Scientist",
		Growth: 35.0,
		Salary: SalaryRange{Avg: 120000, Currency: "USD"},
		Criteria: map[string]int{
			"analytical": 6,
			"curiosity":  6,
		},
	})

	got := e.Score(map[string]int{"analytical": 6, "curiosity": 6})
	if len(got) != 1 {
		t.Fatalf("matches = %d, want 1", len(got))
	}
	m := got[0]
	if len(m.LearningPath) != 4 {
		t.Errorf("learning path steps = %d, want 4", len(m.LearningPath))
	}
	if len(m.MarketInsights) != 3 {
		t.Errorf("market insights = %d, want 3", len(m.MarketInsights))
	}
	if !strings.Contains(m.MarketInsights[1], "35.0%") {
		t.Errorf("growth insight = %q, want growth figure", m.MarketInsights[1])
	}
	if !strings.Contains(m.MarketInsights[2], "120000") {
		t.Errorf("salary insight = %q, want average salary", m.MarketInsights[2])
	}
}
