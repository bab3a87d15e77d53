// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Alexsandra-Z/system-analysis-2025/consensus"
)

// ErrBatchTooLarge is returned by MergeBatch when items exceed the batch limit.
var ErrBatchTooLarge = errors.New("service: batch too large")

// Pair is one raw batch item; see MergeRaw for accepted values.
type Pair struct {
	A any
	B any
}

// Outcome is the result of one batch item. Exactly one of Result and Err is set.
type Outcome struct {
	Result *consensus.Result
	Err    error
}

// MergeBatch merges every pair independently, at most the configured
// concurrency at a time. Per-item failures land in the matching Outcome; the
// returned error is only ErrBatchTooLarge. Items not started before ctx is
// done fail with the context error.
// Complexity: sum of per-item merges, wall time divided by concurrency.
func (s *Service) MergeBatch(ctx context.Context, pairs []Pair) ([]Outcome, error) {
	if len(pairs) > s.batchLimit {
		return nil, fmt.Errorf("%w: %d items, limit %d", ErrBatchTooLarge, len(pairs), s.batchLimit)
	}

	ctx, span := s.tracer.Start(ctx, "Service.MergeBatch", trace.WithAttributes(
		attribute.Int("rankmerge.batch_size", len(pairs)),
	))
	defer span.End()

	out := make([]Outcome, len(pairs))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			res, err := s.MergeRaw(ctx, p.A, p.B)
			out[i] = Outcome{Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}
