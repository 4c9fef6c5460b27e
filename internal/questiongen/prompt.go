package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a skills assessor writing quiz questions for a career assessment product.

Rules:
- Generate questions that test practical, real-world ability in the given skill.
- Mix question types: "multiple-choice" (4 options, one correct), "self-rating" (the user rates their own ability, no correct answer), and free-form practical types ("short-answer", "fill-in-blank", "scenario", "code").
- Multiple-choice questions must have exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions, not random values.
- Self-rating questions must state the scale in a response hint, e.g. "scale-1-5".
- Every non-self-rating question needs a correct answer key.
- Tag each question with a difficulty level: "beginner", "intermediate", or "advanced".
- Question prompts must be self-contained and unambiguous.
- Do not repeat any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s\n", input.SkillName)
	fmt.Fprintf(&b, "Skill ID: %s\n", input.SkillID)
	if input.Level != "" {
		fmt.Fprintf(&b, "Target level: %s\n", input.Level)
	} else {
		b.WriteString("Target level: mixed\n")
	}
	fmt.Fprintf(&b, "Questions to generate: %d\n", input.Count)

	b.WriteString("\nAlready in the bank for this skill:\n")
	b.WriteString(buildDedup(input.ExistingPrompts, cfg.MaxExistingPrompts))

	return b.String()
}

// buildDedup formats existing prompts for the prompt, respecting the max
// limit. Returns "None" if the bank is empty.
func buildDedup(prompts []string, max int) string {
	if len(prompts) == 0 {
		return "None"
	}

	if max > 0 && len(prompts) > max {
		prompts = prompts[len(prompts)-max:]
	}

	var b strings.Builder
	for i, p := range prompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
