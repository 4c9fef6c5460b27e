package assessment

import "time"

// QuestionType classifies how a question is asked and answered.
type QuestionType string

const (
	// TypeMultipleChoice questions carry a fixed option list; exactly one
	// option matches the answer key.
	TypeMultipleChoice QuestionType = "multiple-choice"

	// TypeSelfRating questions ask the user to rate their own ability on
	// a scale; there is no correct answer, only a response-shape hint.
	TypeSelfRating QuestionType = "self-rating"

	// Free-form practical types. They share a selection slot during
	// assembly (see Assembler).
	TypeShortAnswer QuestionType = "short-answer"
	TypeFillInBlank QuestionType = "fill-in-blank"
	TypeScenario    QuestionType = "scenario"
	TypeCode        QuestionType = "code"
)

// IsPractical reports whether t is one of the free-form practical types
// that compete for the single practical slot in an assembled quiz.
func (t QuestionType) IsPractical() bool {
	switch t {
	case TypeShortAnswer, TypeFillInBlank, TypeScenario, TypeCode:
		return true
	}
	return false
}

// Level is an optional authored difficulty tag.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Question is a full question record as stored in the question bank,
// including its answer key. Immutable once authored.
type Question struct {
	ID      string
	SkillID string
	Type    QuestionType

	// Level is empty when the author did not tag a difficulty.
	Level Level

	// Prompt is the question text shown to the quiz-taker.
	Prompt string

	// Options is populated only for multiple-choice questions.
	Options []string

	// Answer is the answer key: the correct option text for
	// multiple-choice, the expected answer for practical types.
	// Empty for self-rating questions.
	Answer string

	// ResponseHint describes the expected response shape for self-rating
	// questions (e.g. "scale-1-5").
	ResponseHint string
}

// PublicQuestion is the answer-stripped view of a Question handed to the
// quiz-taker. Only presentation fields survive.
type PublicQuestion struct {
	ID           string       `json:"id"`
	SkillID      string       `json:"skillId"`
	Type         QuestionType `json:"type"`
	Level        Level        `json:"level,omitempty"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options,omitempty"`
	ResponseHint string       `json:"responseHint,omitempty"`
}

// Public strips the answer key from q.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:           q.ID,
		SkillID:      q.SkillID,
		Type:         q.Type,
		Level:        q.Level,
		Prompt:       q.Prompt,
		Options:      q.Options,
		ResponseHint: q.ResponseHint,
	}
}

// SkillRequest names one skill in a generation call, with the level the
// caller asked for. Level is informational; selection mixes levels freely.
type SkillRequest struct {
	SkillID string `json:"skillId"`
	Level   Level  `json:"level,omitempty"`
}

// Assessment is the persisted record of one generation call. Read-only
// after creation; answer submission is handled elsewhere and only refers
// back to it by ID.
type Assessment struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId,omitempty"`
	Skills    []SkillRequest   `json:"skills"`
	Questions []PublicQuestion `json:"questions"`
	CreatedAt time.Time        `json:"createdAt"`
}
