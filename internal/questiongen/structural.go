package questiongen

import "github.com/vamsipaul1/futurefit/internal/assessment"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *assessment.Question, _ GenerateInput) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	if len(q.Prompt) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 600 characters",
			Retryable: true,
		}
	}
	switch q.Type {
	case assessment.TypeMultipleChoice, assessment.TypeSelfRating:
	default:
		if !q.Type.IsPractical() {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "unknown question type " + string(q.Type),
				Retryable: true,
			}
		}
	}
	switch q.Level {
	case "", assessment.LevelBeginner, assessment.LevelIntermediate, assessment.LevelAdvanced:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "level must be beginner, intermediate, or advanced",
			Retryable: true,
		}
	}
	if q.Type != assessment.TypeSelfRating && q.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer key is empty",
			Retryable: true,
		}
	}
	if q.Type == assessment.TypeSelfRating && q.ResponseHint == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "self-rating question has no response hint",
			Retryable: true,
		}
	}
	return nil
}

// OptionsValidator checks multiple-choice option lists: exactly four
// options, no duplicates, and the answer key must be one of them.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *assessment.Question, _ GenerateInput) *ValidationError {
	if q.Type != assessment.TypeMultipleChoice {
		if len(q.Options) != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "non-choice question carries options",
				Retryable: true,
			}
		}
		return nil
	}

	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "multiple-choice question must have exactly 4 options",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Options))
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "empty option",
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "duplicate option " + opt,
				Retryable: true,
			}
		}
		seen[opt] = true
		if opt == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer key does not match any option",
			Retryable: true,
		}
	}
	return nil
}
