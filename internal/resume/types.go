package resume

import "time"

// Analysis is the structured result of analyzing a resume.
type Analysis struct {
	Summary        string
	Skills         []DetectedSkill
	Strengths      []string
	Gaps           []string
	SuggestedRoles []string
	GeneratedAt    time.Time
}

// DetectedSkill is one skill the model identified in the resume text.
type DetectedSkill struct {
	Name  string
	Level string // "beginner", "intermediate", "advanced"
}

// Config controls analysis generation.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxResumeChars truncates overly long input before it reaches the
	// model. Zero disables truncation.
	MaxResumeChars int
}

// DefaultConfig returns the standard analyzer configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      2048,
		Temperature:    0.2,
		MaxResumeChars: 24000,
	}
}
