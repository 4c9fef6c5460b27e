package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vamsipaul1/futurefit/internal/store"
)

// EventSink receives one record per model request. The store's
// LLMEventRepo is the production implementation.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider is a decorator that records every model request as a
// usage event and logs it.
type LoggingProvider struct {
	inner Provider
	sink  EventSink
	log   *zap.Logger
}

// WithLogging wraps a Provider with event recording. sink may be nil
// (nothing is persisted); log may be nil.
func WithLogging(p Provider, sink EventSink, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, sink: sink, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.log.Debug("llm request",
		zap.String("model", data.Model),
		zap.String("purpose", purpose),
		zap.Int64("latency_ms", latencyMs),
		zap.Bool("success", err == nil))

	// Record the event but never fail the request over logging.
	if l.sink != nil {
		if logErr := l.sink.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn("failed to record llm event", zap.Error(logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
