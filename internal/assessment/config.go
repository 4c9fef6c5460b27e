package assessment

// Config controls quiz assembly sizing. The defaults reproduce the
// production 3/1/1 mix; they are tunables, not derived values.
type Config struct {
	// QuizSize is the target number of questions per skill.
	QuizSize int

	// MaxMultipleChoice caps the multiple-choice slots per quiz.
	MaxMultipleChoice int

	// MaxSelfRating caps the self-rating slots per quiz.
	MaxSelfRating int

	// MaxPractical caps the free-form practical slots per quiz
	// (short-answer, fill-in-blank, scenario, code share this cap).
	MaxPractical int

	// MinPoolSize is the minimum number of authored questions a skill
	// must have before any quiz can be generated for it. Below this the
	// Assembler fails with InsufficientQuestionsError.
	MinPoolSize int
}

// DefaultConfig returns the production assembly configuration.
func DefaultConfig() Config {
	return Config{
		QuizSize:          5,
		MaxMultipleChoice: 3,
		MaxSelfRating:     1,
		MaxPractical:      1,
		MinPoolSize:       15,
	}
}
