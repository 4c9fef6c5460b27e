package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vamsipaul1/futurefit/internal/assessment"
	"github.com/vamsipaul1/futurefit/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *LLMGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Prompt       string   `json:"prompt"`
	Type         string   `json:"type"`
	Level        string   `json:"level"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	ResponseHint string   `json:"response_hint"`
}

// Generate produces bank-ready questions for the given input context.
// Questions that fail validation are dropped rather than failing the
// batch; the returned slice may be shorter than input.Count.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]assessment.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question batch: %w", err)
	}

	questions := make([]assessment.Question, 0, len(raw.Questions))
	for _, out := range raw.Questions {
		q := assessment.Question{
			ID:           fmt.Sprintf("%s-%s", input.SkillID, uuid.NewString()[:8]),
			SkillID:      input.SkillID,
			Type:         assessment.QuestionType(out.Type),
			Level:        assessment.Level(out.Level),
			Prompt:       out.Prompt,
			Options:      out.Options,
			Answer:       out.Answer,
			ResponseHint: out.ResponseHint,
		}
		if len(q.Options) == 0 {
			q.Options = nil
		}

		if verr := g.validate(&q, input); verr != nil {
			g.log.Warn("dropping generated question",
				zap.String("skill", input.SkillID),
				zap.String("validator", verr.Validator),
				zap.String("reason", verr.Message))
			continue
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// validate runs the validator chain; the first failure wins.
func (g *LLMGenerator) validate(q *assessment.Question, input GenerateInput) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}
