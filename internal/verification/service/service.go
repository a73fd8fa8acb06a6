package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	verifymetrics "fitcore/internal/verification/metrics"
	"fitcore/internal/verification/models"
	"fitcore/pkg/platform/tracer"
	"fitcore/pkg/requestcontext"
)

// Store is the read-only reference table.
type Store interface {
	Lookup(code string) (models.Record, bool)
	Records() []models.Record
}

// Service resolves verification codes against the reference table.
type Service struct {
	store   Store
	waiter  Waiter
	logger  *slog.Logger
	metrics *verifymetrics.Metrics
	tracer  tracer.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *verifymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithDelay sets the simulated latency; zero or negative disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		s.waiter = FixedDelay(d)
	}
}

// WithWaiter replaces the delay implementation, e.g. with a test double.
func WithWaiter(w Waiter) Option {
	return func(s *Service) {
		s.waiter = w
	}
}

// New builds a Service. Without options it applies DefaultDelay and
// discards logs.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		waiter: FixedDelay(DefaultDelay),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verify resolves queryCode after the simulated delay. The query is trimmed and
// compared to each record's code ignoring case; the first match is returned
// unchanged. Otherwise the synthesized not-found result carries the trimmed
// query as entered. Verify never fails: cancellation of ctx only cuts the delay
// short. Callers are expected to reject blank input before calling.
func (s *Service) Verify(ctx context.Context, queryCode string) models.Result {
	start := time.Now()
	code := strings.TrimSpace(queryCode)

	ctx, span := s.tracer.Start(ctx, tracer.SpanVerify,
		tracer.String(tracer.AttrCodeHash, tracer.HashValue(code)),
	)
	defer span.End(nil)

	completed := s.waiter.Wait(ctx)

	rec, found := s.store.Lookup(code)
	result := models.NotFound(code)
	if found {
		result = models.Result(rec)
	}
	outcome := models.Classify(found, rec)

	span.SetAttributes(
		tracer.String(tracer.AttrOutcome, outcome.String()),
		tracer.Bool(tracer.AttrDelayCut, !completed),
		tracer.Duration(tracer.AttrSimulatedDelay, time.Since(start)),
	)
	span.AddEvent(tracer.EventResolved)

	if s.metrics != nil {
		s.metrics.ObserveVerification(outcome.String(), start)
	}
	s.logger.InfoContext(ctx, "verification resolved",
		"code_hash", tracer.HashValue(code),
		"outcome", outcome,
		"delay_cut_short", !completed,
		"request_id", requestcontext.RequestID(ctx),
	)

	return result
}

// Samples returns the records users can try, in table order: those marked valid.
func (s *Service) Samples() []models.Record {
	records := s.store.Records()
	samples := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if rec.Valid {
			samples = append(samples, rec)
		}
	}
	return samples
}
