package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/vamsipaul1/futurefit/internal/assessment"
	"github.com/vamsipaul1/futurefit/internal/career"
	"github.com/vamsipaul1/futurefit/internal/llm"
	"github.com/vamsipaul1/futurefit/internal/resume"
	"github.com/vamsipaul1/futurefit/internal/store"
)

// App wires the store and services together for the CLI commands.
type App struct {
	Store        *store.Store
	Log          *zap.Logger
	Orchestrator *assessment.Orchestrator
	Engine       *career.Engine

	analyzer *resume.Analyzer
	provider llm.Provider
}

// Options controls App construction.
type Options struct {
	DBPath string
	Log    *zap.Logger

	// Seed fixes the question shuffle. Zero means derive from the clock.
	Seed uint64
}

// New opens the database and builds the assessment and matching services.
// The caller owns Close.
func New(opts Options) (*App, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	assembler := assessment.NewAssembler(s.QuestionRepo(), assessment.DefaultConfig(), rng)
	orchestrator := assessment.NewOrchestrator(assembler, s.AttemptRepo(), s.AssessmentRepo(), log)
	engine := career.NewEngine(career.DefaultCatalog(), career.DefaultConfig(), log)

	return &App{
		Store:        s,
		Log:          log,
		Orchestrator: orchestrator,
		Engine:       engine,
	}, nil
}

// Provider builds the LLM provider on first use. Configuration comes from
// the environment; an error means no provider is configured.
func (a *App) Provider(ctx context.Context) (llm.Provider, error) {
	if a.provider != nil {
		return a.provider, nil
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, a.Store.LLMEventRepo(), a.Log)
	if err != nil {
		return nil, err
	}

	a.provider = provider
	return provider, nil
}

// Analyzer builds the resume analyzer on first use.
func (a *App) Analyzer(ctx context.Context) (*resume.Analyzer, error) {
	if a.analyzer != nil {
		return a.analyzer, nil
	}

	provider, err := a.Provider(ctx)
	if err != nil {
		return nil, err
	}

	a.analyzer = resume.NewAnalyzer(provider, resume.DefaultConfig(), a.Log)
	return a.analyzer, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.Store.Close()
}
