package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators run on every generated
	// question. They execute in order; the first failure drops the
	// question.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxExistingPrompts is the maximum number of existing bank prompts
	// to include in the prompt for deduplication.
	MaxExistingPrompts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
		},
		MaxTokens:          4096,
		Temperature:        0.7,
		MaxExistingPrompts: 30,
	}
}
