package assessment

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// QuestionSource is read access to the question bank.
type QuestionSource interface {
	// FindQuestions returns all questions for a skill whose IDs are not
	// in excludeIDs. A nil or empty excludeIDs returns the full pool.
	FindQuestions(ctx context.Context, skillID string, excludeIDs []string) ([]Question, error)

	// CountQuestions returns the total authored pool size for a skill.
	CountQuestions(ctx context.Context, skillID string) (int, error)
}

// Assembler builds a single skill's quiz from the question bank.
//
// Assembly is a pure function of the pool snapshot, the exclusion list,
// and the random source: it never writes to collaborators. When the
// exclusion list exhausts the pool the Assembler falls back to the full
// pool and reports PoolReset so the caller can clear attempt history.
type Assembler struct {
	source QuestionSource
	cfg    Config
	rng    *rand.Rand
}

// AssembleResult is one skill's selection.
type AssembleResult struct {
	// Questions is the selected set in final order, answer keys intact.
	// May be shorter than Config.QuizSize when the pool is small; callers
	// must treat a short result as valid.
	Questions []Question

	// PoolReset reports that the exclusion list exhausted the pool and
	// selection ran against the full pool. The caller should clear the
	// user's attempt history for this skill so rotation restarts.
	PoolReset bool
}

// NewAssembler creates an Assembler. rng may be nil, in which case a
// process-seeded source is used; tests pass a seeded one for determinism.
func NewAssembler(source QuestionSource, cfg Config, rng *rand.Rand) *Assembler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Assembler{source: source, cfg: cfg, rng: rng}
}

// Assemble selects up to Config.QuizSize questions for skillID, skipping
// excludeIDs. Selection priority: up to MaxMultipleChoice multiple-choice,
// up to MaxSelfRating self-rating, up to MaxPractical practical, then any
// remaining questions in shuffle order until the size is reached or the
// pool runs out.
//
// The only error condition is InsufficientQuestionsError, raised when the
// skill's total pool is below Config.MinPoolSize.
func (a *Assembler) Assemble(ctx context.Context, skillID string, excludeIDs []string) (*AssembleResult, error) {
	total, err := a.source.CountQuestions(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("count questions for %s: %w", skillID, err)
	}
	if total < a.cfg.MinPoolSize {
		return nil, &InsufficientQuestionsError{
			SkillID:  skillID,
			Found:    total,
			Required: a.cfg.MinPoolSize,
		}
	}

	pool, err := a.source.FindQuestions(ctx, skillID, excludeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch questions for %s: %w", skillID, err)
	}

	reset := false
	if len(pool) < a.cfg.QuizSize {
		// Pool exhaustion: the user has seen too much of this skill's
		// bank. Restart rotation from the full pool.
		full, err := a.source.FindQuestions(ctx, skillID, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch full pool for %s: %w", skillID, err)
		}
		pool = full
		reset = true
	}

	a.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	selected := a.selectBalanced(pool)
	return &AssembleResult{Questions: selected, PoolReset: reset}, nil
}

// selectBalanced applies the type quotas to the already-shuffled pool,
// then fills any remaining slots in shuffle order.
func (a *Assembler) selectBalanced(pool []Question) []Question {
	selected := make([]Question, 0, a.cfg.QuizSize)
	taken := make(map[string]bool, a.cfg.QuizSize)

	take := func(pred func(Question) bool, max int) {
		count := 0
		for _, q := range pool {
			if count >= max || len(selected) >= a.cfg.QuizSize {
				return
			}
			if taken[q.ID] || !pred(q) {
				continue
			}
			selected = append(selected, q)
			taken[q.ID] = true
			count++
		}
	}

	take(func(q Question) bool { return q.Type == TypeMultipleChoice }, a.cfg.MaxMultipleChoice)
	take(func(q Question) bool { return q.Type == TypeSelfRating }, a.cfg.MaxSelfRating)
	take(func(q Question) bool { return q.Type.IsPractical() }, a.cfg.MaxPractical)

	// Fill the remainder with anything unselected, preserving shuffle
	// order. A skill whose pool lacks a category still yields a full
	// quiz when enough questions exist overall.
	for _, q := range pool {
		if len(selected) >= a.cfg.QuizSize {
			break
		}
		if !taken[q.ID] {
			selected = append(selected, q)
			taken[q.ID] = true
		}
	}

	return selected
}
