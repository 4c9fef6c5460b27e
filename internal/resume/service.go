package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vamsipaul1/futurefit/internal/llm"
	"github.com/vamsipaul1/futurefit/internal/logger"
)

// ErrEmptyResume is returned when the input text is blank.
var ErrEmptyResume = errors.New("resume text is empty")

// Analyzer turns raw resume text into a structured Analysis via a hosted model.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
	now      func() time.Time
}

// NewAnalyzer creates a resume analyzer.
func NewAnalyzer(provider llm.Provider, cfg Config, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{provider: provider, cfg: cfg, log: log, now: time.Now}
}

type analysisOutput struct {
	Summary        string                `json:"summary"`
	Skills         []detectedSkillOutput `json:"skills"`
	Strengths      []string              `json:"strengths"`
	Gaps           []string              `json:"gaps"`
	SuggestedRoles []string              `json:"suggested_roles"`
}

type detectedSkillOutput struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Analyze sends the resume to the model and parses the structured reply.
// Providers that honor the schema return clean JSON; for the rest the raw
// reply goes through extractJSON before parsing.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string) (*Analysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}

	ctx = llm.WithPurpose(ctx, "resume-analysis")

	userMsg := buildAnalysisUserMessage(truncateResume(resumeText, a.cfg.MaxResumeChars))

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resume analysis: %w", err)
	}

	out, err := parseAnalysis(resp.Content)
	if err != nil {
		return nil, err
	}

	a.log.Debug("resume analyzed",
		zap.String("summary", logger.TruncateForLog(out.Summary, 120)),
		zap.Int("skills", len(out.Skills)),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens))

	skills := make([]DetectedSkill, 0, len(out.Skills))
	for _, s := range out.Skills {
		skills = append(skills, DetectedSkill{Name: s.Name, Level: s.Level})
	}

	return &Analysis{
		Summary:        out.Summary,
		Skills:         skills,
		Strengths:      out.Strengths,
		Gaps:           out.Gaps,
		SuggestedRoles: out.SuggestedRoles,
		GeneratedAt:    a.now(),
	}, nil
}

// parseAnalysis decodes the model reply, falling back to extracting an
// embedded JSON object when the reply is not bare JSON.
func parseAnalysis(content json.RawMessage) (*analysisOutput, error) {
	var out analysisOutput
	if err := json.Unmarshal(content, &out); err == nil {
		return &out, nil
	}

	extracted, ok := extractJSON(string(content))
	if !ok {
		return nil, fmt.Errorf("parse analysis response: %w",
			&llm.ErrInvalidResponse{Content: content, Err: errors.New("no JSON object in reply")})
	}
	if err := json.Unmarshal([]byte(extracted), &out); err != nil {
		return nil, fmt.Errorf("parse extracted analysis: %w", err)
	}
	return &out, nil
}
