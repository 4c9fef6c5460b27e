package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttemptHistory is the append-only record of which questions a user has
// already been served.
type AttemptHistory interface {
	// AttemptedQuestionIDs lists question IDs the user has seen for a skill.
	AttemptedQuestionIDs(ctx context.Context, userID, skillID string) ([]string, error)

	// ClearAttempts wipes the user's history for a skill. Used to restart
	// rotation after pool exhaustion.
	ClearAttempts(ctx context.Context, userID, skillID string) error

	// RecordAttempts appends one entry per question. Must be
	// duplicate-safe: re-recording a (user, question) pair is a no-op.
	RecordAttempts(ctx context.Context, userID string, questionIDs []string) error
}

// AssessmentStore persists generated assessments.
type AssessmentStore interface {
	SaveAssessment(ctx context.Context, a *Assessment) error
}

// Orchestrator runs the Assembler across a multi-skill request and owns
// all collaborator writes. Generation is atomic per assessment: if any
// skill fails, no assessment is persisted and no history is touched —
// including the rotation resets the Assembler asked for.
type Orchestrator struct {
	assembler *Assembler
	history   AttemptHistory
	store     AssessmentStore
	log       *zap.Logger
	now       func() time.Time
}

// NewOrchestrator wires an Orchestrator. log may be nil.
func NewOrchestrator(assembler *Assembler, history AttemptHistory, store AssessmentStore, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		assembler: assembler,
		history:   history,
		store:     store,
		log:       log,
		now:       time.Now,
	}
}

// Generate builds one assessment covering every requested skill, in input
// order. userID may be empty: anonymous callers get no repeat-avoidance
// and leave no history.
//
// Fails with ErrEmptySkillSelection on an empty request and propagates
// InsufficientQuestionsError from any skill unwrapped.
func (o *Orchestrator) Generate(ctx context.Context, skills []SkillRequest, userID string) (*Assessment, error) {
	if len(skills) == 0 {
		return nil, ErrEmptySkillSelection
	}

	var (
		questions   []PublicQuestion
		attemptIDs  []string
		resetSkills []string
	)

	for _, req := range skills {
		var exclude []string
		if userID != "" {
			var err error
			exclude, err = o.history.AttemptedQuestionIDs(ctx, userID, req.SkillID)
			if err != nil {
				return nil, fmt.Errorf("load attempt history for %s: %w", req.SkillID, err)
			}
		}

		result, err := o.assembler.Assemble(ctx, req.SkillID, exclude)
		if err != nil {
			// No wrapping: InsufficientQuestionsError must surface with
			// its skill ID and counts intact.
			return nil, err
		}

		if result.PoolReset && userID != "" {
			resetSkills = append(resetSkills, req.SkillID)
		}
		for _, q := range result.Questions {
			questions = append(questions, q.Public())
			attemptIDs = append(attemptIDs, q.ID)
		}

		o.log.Debug("assembled skill quiz",
			zap.String("skill", req.SkillID),
			zap.Int("selected", len(result.Questions)),
			zap.Bool("pool_reset", result.PoolReset))
	}

	a := &Assessment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Skills:    skills,
		Questions: questions,
		CreatedAt: o.now().UTC(),
	}

	if err := o.store.SaveAssessment(ctx, a); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}

	if userID != "" {
		for _, skillID := range resetSkills {
			if err := o.history.ClearAttempts(ctx, userID, skillID); err != nil {
				return nil, fmt.Errorf("reset attempt history for %s: %w", skillID, err)
			}
		}
		if err := o.history.RecordAttempts(ctx, userID, attemptIDs); err != nil {
			return nil, fmt.Errorf("record attempts: %w", err)
		}
	}

	o.log.Info("generated assessment",
		zap.String("assessment_id", a.ID),
		zap.Int("skills", len(skills)),
		zap.Int("questions", len(questions)))

	return a, nil
}
