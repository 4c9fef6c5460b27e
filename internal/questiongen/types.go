package questiongen

import (
	"context"

	"github.com/vamsipaul1/futurefit/internal/assessment"
)

// GenerateInput holds all context needed to generate questions for a skill.
type GenerateInput struct {
	// SkillID is the target skill, e.g. "go" or "data-analysis".
	SkillID string

	// SkillName is the display name used in the prompt.
	SkillName string

	// Level is the target difficulty. Empty means mixed difficulty.
	Level assessment.Level

	// Count is how many questions to request in one call.
	Count int

	// ExistingPrompts contains prompts already in the bank for this
	// skill. Used for deduplication in the prompt.
	ExistingPrompts []string
}

// Generator produces bank-ready questions for a skill.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) ([]assessment.Question, error)
}
