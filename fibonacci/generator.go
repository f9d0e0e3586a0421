package fibonacci

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
)

// Generator evaluates sequence requests. It is immutable once built and safe
// for concurrent use.
type Generator struct {
	logger   logging.Logger
	recorder metrics.Recorder
	tracer   trace.Tracer
	strict   bool

	// concurrency bounds GenerateBatch. 0 means GOMAXPROCS.
	concurrency int
}

// GeneratorOption configures a Generator during construction.
type GeneratorOption func(*generatorSettings)

type generatorSettings struct {
	logger      logging.Logger
	recorder    metrics.Recorder
	provider    trace.TracerProvider
	strict      bool
	concurrency int
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) GeneratorOption {
	return func(s *generatorSettings) { s.logger = l }
}

// WithRecorder sets the metrics recorder. The default records nothing.
func WithRecorder(r metrics.Recorder) GeneratorOption {
	return func(s *generatorSettings) { s.recorder = r }
}

// WithTracerProvider sets the tracer provider. The default is the global
// provider returned by otel.GetTracerProvider.
func WithTracerProvider(tp trace.TracerProvider) GeneratorOption {
	return func(s *generatorSettings) { s.provider = tp }
}

// WithStrict makes a negative length a ValidationError instead of an empty
// sequence.
func WithStrict(strict bool) GeneratorOption {
	return func(s *generatorSettings) { s.strict = strict }
}

// WithConcurrency bounds how many requests GenerateBatch evaluates at once.
// Values below 1 mean runtime.GOMAXPROCS(0).
func WithConcurrency(n int) GeneratorOption {
	return func(s *generatorSettings) { s.concurrency = n }
}

// New creates a Generator. Nil collaborators fall back to their defaults.
func New(opts ...GeneratorOption) *Generator {
	var s generatorSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	if s.recorder == nil {
		s.recorder = metrics.NopRecorder{}
	}
	if s.provider == nil {
		s.provider = otel.GetTracerProvider()
	}
	return &Generator{
		logger:      s.logger,
		recorder:    s.recorder,
		tracer:      s.provider.Tracer(tracerName),
		strict:      s.strict,
		concurrency: max(s.concurrency, 0),
	}
}

// NewFromConfig creates a Generator from cfg. A non-empty log level enables
// a leveled JSON logger on stderr. opts are applied after cfg and win over it.
func NewFromConfig(cfg config.Config, opts ...GeneratorOption) *Generator {
	base := []GeneratorOption{WithStrict(cfg.Strict)}
	if cfg.LogLevel != "" {
		component := cfg.LogComponent
		if component == "" {
			component = config.DefaultLogComponent
		}
		base = append(base, WithLogger(logging.NewLeveledLogger(os.Stderr, component, cfg.LogLevel)))
	}
	return New(append(base, opts...)...)
}

// NewFromEnv is NewFromConfig applied to config.FromEnv.
func NewFromEnv(opts ...GeneratorOption) *Generator {
	return NewFromConfig(config.FromEnv(), opts...)
}

var defaultGenerator = New()

// Generate evaluates a request with the default Generator.
func Generate(opts ...Option) ([]int64, error) {
	return defaultGenerator.Generate(opts...)
}

// Generate evaluates a request. It is GenerateContext with a background
// context.
func (g *Generator) Generate(opts ...Option) ([]int64, error) {
	return g.GenerateContext(context.Background(), opts...)
}

// GenerateContext evaluates a request. ctx only parents the trace span: the
// computation is bounded and never checks for cancellation.
//
// The result is a new slice owned by the caller. On error it is nil.
func (g *Generator) GenerateContext(ctx context.Context, opts ...Option) ([]int64, error) {
	_, span := g.tracer.Start(ctx, spanName)
	defer span.End()

	started := time.Now()
	req := newRequest(opts)
	p, err := req.validate(g.strict)
	var seq []int64
	if err == nil {
		seq, err = p.run()
	}
	g.observe(span, req.mode(), len(seq), err, time.Since(started))

	if err != nil {
		return nil, err
	}
	return seq, nil
}

// observe reports one call to every collaborator.
func (g *Generator) observe(span trace.Span, mode Mode, terms int, err error, elapsed time.Duration) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = apperrors.Kind(err)
	}
	g.recorder.ObserveGeneration(mode.String(), outcome, terms, elapsed)

	span.SetAttributes(
		attribute.String("fibseq.mode", mode.String()),
		attribute.Int("fibseq.terms", terms),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.Error("sequence generation failed", err,
			logging.String("mode", mode.String()),
			logging.String("kind", outcome),
		)
		return
	}
	g.logger.Debug("sequence generated",
		logging.String("mode", mode.String()),
		logging.Int("terms", terms),
		logging.String("elapsed", format.Elapsed(elapsed)),
	)
}
