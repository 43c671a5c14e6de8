package augment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mpl-id/mpl-chat-service/internal/logging"
	"github.com/mpl-id/mpl-chat-service/internal/metrics"
)

// Completer is the single capability required from a text-generation service.
type Completer interface {
	Complete(ctx context.Context, prompt, systemInstruction string, temperature float64) (string, error)
}

// Kind labels an augmentation call for logs and metrics.
type Kind string

const (
	KindPolish  Kind = "polish"
	KindExplain Kind = "explain"
)

// Gateway fronts the Completer. It never returns bare errors and never
// performs I/O when no Completer is configured.
type Gateway struct {
	completer Completer
	timeout   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout bounds each outbound call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// WithLogger sets the logger failed calls are reported on.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// WithMetrics records attempts, errors, latency, and rate limits on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(g *Gateway) {
		g.metrics = rec
	}
}

// NewGateway builds a gateway. A nil completer yields a gateway whose calls
// all fail fast with ErrNotConfigured.
func NewGateway(completer Completer, opts ...Option) *Gateway {
	g := &Gateway{completer: completer}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configured reports whether outbound calls are possible.
func (g *Gateway) Configured() bool {
	return g != nil && g.completer != nil
}

// Polish rewrites an already final answer for fluency. On failure callers
// should keep the input: out.TextOr(text).
func (g *Gateway) Polish(ctx context.Context, text string) Outcome {
	return g.call(ctx, KindPolish, text, polishInstruction, polishTemperature)
}

// Explain produces a short generic answer to a topic-adjacent question.
func (g *Gateway) Explain(ctx context.Context, question string) Outcome {
	return g.call(ctx, KindExplain, question, explainInstruction, explainTemperature)
}

func (g *Gateway) call(ctx context.Context, kind Kind, prompt, instruction string, temperature float64) Outcome {
	if !g.Configured() {
		return Outcome{Err: ErrNotConfigured}
	}

	// The inbound request may be abandoned; the outbound call still completes.
	callCtx := context.WithoutCancel(ctx)
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.completer.Complete(callCtx, prompt, instruction, temperature)
	duration := time.Since(start)

	text = strings.TrimSpace(text)
	if err == nil && text == "" {
		err = ErrEmptyCompletion
	}

	g.metrics.RecordAugmentation(string(kind), duration, err)
	if ue, ok := AsUpstreamError(err); ok && ue.RateLimited() {
		g.metrics.RecordRateLimit(string(kind), ue.RetryAfter)
	}

	if err != nil {
		logging.Warn(logging.FromContext(ctx, g.logger), "augmentation failed",
			logging.FieldKind, string(kind),
			logging.FieldDurationMS, duration.Milliseconds(),
			"error", err,
		)
		return Outcome{Err: err}
	}
	return Outcome{Text: text}
}
