package questiongen

import (
	"fmt"

	"github.com/vamsipaul1/futurefit/internal/assessment"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g.
	// "structural", "options".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *assessment.Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
