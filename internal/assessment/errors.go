package assessment

import (
	"errors"
	"fmt"
)

// ErrEmptySkillSelection is returned by Generate when the caller supplies
// no skills. Caller input error; nothing was generated or recorded.
var ErrEmptySkillSelection = errors.New("at least one skill must be selected")

// InsufficientQuestionsError indicates a skill's authored question pool is
// below the minimum required for assembly. Non-retryable until more
// content exists for the skill. It propagates through the Orchestrator
// unwrapped so callers can see the skill and counts.
type InsufficientQuestionsError struct {
	SkillID  string
	Found    int
	Required int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("skill %q has %d questions, need at least %d", e.SkillID, e.Found, e.Required)
}
