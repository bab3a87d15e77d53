// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Alexsandra-Z/system-analysis-2025/codec"
	"github.com/Alexsandra-Z/system-analysis-2025/consensus"
	"github.com/Alexsandra-Z/system-analysis-2025/metrics"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

const tracerName = "github.com/Alexsandra-Z/system-analysis-2025/service"

// Defaults applied by New.
const (
	DefaultBatchLimit  = 64
	DefaultConcurrency = 4
)

// Service merges ranking pairs. It is safe for concurrent use.
type Service struct {
	maxObjects  int
	batchLimit  int
	concurrency int

	log     *slog.Logger
	metrics *metrics.Collector
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithMaxObjects sets the universe ceiling passed to consensus.Merge. Zero
// disables it.
func WithMaxObjects(n int) Option {
	return func(s *Service) { s.maxObjects = n }
}

// WithBatchLimit caps the number of items MergeBatch accepts. Values below 1
// are ignored.
func WithBatchLimit(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.batchLimit = n
		}
	}
}

// WithConcurrency caps parallel merges in MergeBatch. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.concurrency = n
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics enables metric reporting.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Service) { s.metrics = c }
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// New returns a Service using consensus.DefaultMaxObjects, DefaultBatchLimit,
// DefaultConcurrency, slog.Default and the global tracer provider.
func New(opts ...Option) *Service {
	s := &Service{
		maxObjects:  consensus.DefaultMaxObjects,
		batchLimit:  DefaultBatchLimit,
		concurrency: DefaultConcurrency,
		log:         slog.Default(),
		tracer:      otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Merge merges two validated rankings.
func (s *Service) Merge(ctx context.Context, a, b ranking.Ranking) (*consensus.Result, error) {
	return s.merge(ctx, func() (ranking.Ranking, ranking.Ranking, error) { return a, b, nil })
}

// MergeRaw parses a and b with codec.FromValue, then merges them. Each value
// is either a loose-JSON string or an already decoded sequence.
func (s *Service) MergeRaw(ctx context.Context, a, b any) (*consensus.Result, error) {
	return s.merge(ctx, func() (ranking.Ranking, ranking.Ranking, error) {
		ra, err := codec.FromValue(a)
		if err != nil {
			return nil, nil, fmt.Errorf("ranking A: %w", err)
		}
		rb, err := codec.FromValue(b)
		if err != nil {
			return nil, nil, fmt.Errorf("ranking B: %w", err)
		}
		return ra, rb, nil
	})
}

// merge wraps one parse-and-merge in a span, a log record and metrics.
func (s *Service) merge(ctx context.Context, load func() (ranking.Ranking, ranking.Ranking, error)) (*consensus.Result, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Merge")
	defer span.End()

	started := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, s.fail(ctx, span, started, err)
	}

	a, b, err := load()
	if err != nil {
		return nil, s.fail(ctx, span, started, err)
	}

	res, err := consensus.Merge(a, b,
		consensus.WithMaxObjects(s.maxObjects),
		consensus.WithOnStage(func(st consensus.Stage, d time.Duration) {
			span.AddEvent("stage."+st.String(), trace.WithAttributes(
				attribute.Int64("duration_us", d.Microseconds()),
			))
			if s.metrics != nil {
				s.metrics.ObserveStage(st.String(), d)
			}
		}),
	)
	if err != nil {
		return nil, s.fail(ctx, span, started, err)
	}

	elapsed := time.Since(started)
	span.SetAttributes(
		attribute.Int("rankmerge.objects", res.Objects),
		attribute.Int("rankmerge.clusters", len(res.Clusters)),
		attribute.Int("rankmerge.contradictions", len(res.Contradictions)),
		attribute.Bool("rankmerge.residual", res.Residual),
	)
	span.SetStatus(codes.Ok, "")
	if s.metrics != nil {
		s.metrics.ObserveMerge(metrics.OutcomeOK, elapsed, res.Objects, len(res.Contradictions), res.Residual)
	}
	if res.Residual {
		s.log.WarnContext(ctx, "cluster order used cycle fallback", "objects", res.Objects)
	}
	s.log.DebugContext(ctx, "merge complete",
		"objects", res.Objects,
		"clusters", len(res.Clusters),
		"contradictions", len(res.Contradictions),
		"elapsed", elapsed,
	)

	return res, nil
}

// fail records err on every channel and returns it unchanged.
func (s *Service) fail(ctx context.Context, span trace.Span, started time.Time, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	outcome := metrics.OutcomeError
	if kind := Classify(err); kind == KindInput || kind == KindLimit {
		outcome = metrics.OutcomeRejected
		s.log.WarnContext(ctx, "merge rejected", "kind", kind.String(), "err", err)
	} else {
		s.log.ErrorContext(ctx, "merge failed", "err", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveMerge(outcome, time.Since(started), 0, 0, false)
	}

	return err
}
