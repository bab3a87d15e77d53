package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Alexsandra-Z/system-analysis-2025/codec"
	"github.com/Alexsandra-Z/system-analysis-2025/consensus"
	"github.com/Alexsandra-Z/system-analysis-2025/metrics"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
	"github.com/Alexsandra-Z/system-analysis-2025/service"
)

func newService(t *testing.T, opts ...service.Option) (*service.Service, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]service.Option{
		service.WithLogger(log),
		service.WithTracerProvider(noop.NewTracerProvider()),
	}, opts...)

	return service.New(opts...), &buf
}

func TestMergeRaw(t *testing.T) {
	t.Parallel()

	svc, logs := newService(t)
	res, err := svc.MergeRaw(context.Background(), "[1, 2, 3,]", []any{float64(1), float64(3), float64(2)})
	require.NoError(t, err)

	out, err := codec.Encode(res.Ranking, codec.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[1,[2,3]]", out)
	assert.Equal(t, []consensus.Pair{{A: 2, B: 3}}, res.Contradictions)
	assert.Contains(t, logs.String(), "merge complete")
}

func TestMerge_Rankings(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	a := ranking.MustNew(ranking.Level{1}, ranking.Level{2})
	b := ranking.MustNew(ranking.Level{2}, ranking.Level{1})

	res, err := svc.Merge(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, "[{1 2}]", res.Ranking.String())
}

func TestMergeRaw_Rejections(t *testing.T) {
	t.Parallel()

	svc, logs := newService(t, service.WithMaxObjects(2))

	_, err := svc.MergeRaw(context.Background(), "[1, 2", "[1]")
	assert.ErrorIs(t, err, codec.ErrMalformed)
	assert.Contains(t, err.Error(), "ranking A")
	assert.Equal(t, service.KindInput, service.Classify(err))

	_, err = svc.MergeRaw(context.Background(), "[1]", "[2, [2]]")
	assert.ErrorIs(t, err, ranking.ErrDuplicateObject)
	assert.Contains(t, err.Error(), "ranking B")

	_, err = svc.MergeRaw(context.Background(), "[1, 2, 3]", "[]")
	assert.ErrorIs(t, err, consensus.ErrTooManyObjects)
	assert.Equal(t, service.KindLimit, service.Classify(err))

	assert.Contains(t, logs.String(), "merge rejected")
}

func TestMerge_CanceledContext(t *testing.T) {
	t.Parallel()

	svc, logs := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.MergeRaw(ctx, "[1]", "[1]")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, service.KindInternal, service.Classify(err))
	assert.Contains(t, logs.String(), "merge failed")
}

func TestMerge_Metrics(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	svc, _ := newService(t, service.WithMetrics(m))

	_, err := svc.MergeRaw(context.Background(), "[1, 2]", "[2, 1]")
	require.NoError(t, err)
	_, err = svc.MergeRaw(context.Background(), "oops", "[]")
	require.Error(t, err)

	n, err := testutil.GatherAndCount(m.Registry(), "rankmerge_merges_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "ok and rejected series")

	n, err = testutil.GatherAndCount(m.Registry(), "rankmerge_stage_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 6, n, "one series per stage")
}

func TestMergeBatch(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, service.WithConcurrency(2))
	pairs := []service.Pair{
		{A: "[1, 2, 3]", B: "[1, 2, 3]"},
		{A: "[1, 2]", B: "[2, 1]"},
		{A: "[1, [", B: "[]"},
		{A: "[]", B: "[]"},
	}

	out, err := svc.MergeBatch(context.Background(), pairs)
	require.NoError(t, err)
	require.Len(t, out, len(pairs))

	assert.Equal(t, "[1 2 3]", out[0].Result.Ranking.String())
	assert.Equal(t, "[{1 2}]", out[1].Result.Ranking.String())
	assert.Nil(t, out[2].Result)
	assert.ErrorIs(t, out[2].Err, codec.ErrMalformed)
	assert.NoError(t, out[3].Err)
	assert.Empty(t, out[3].Result.Ranking)
}

func TestMergeBatch_Limit(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, service.WithBatchLimit(2))
	_, err := svc.MergeBatch(context.Background(), make([]service.Pair, 3))
	assert.ErrorIs(t, err, service.ErrBatchTooLarge)
	assert.Equal(t, service.KindLimit, service.Classify(err))
}

// TestMergeBatch_ManyItems keeps results aligned with inputs under concurrency.
func TestMergeBatch_ManyItems(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, service.WithBatchLimit(100), service.WithConcurrency(8))
	pairs := make([]service.Pair, 50)
	for i := range pairs {
		pairs[i] = service.Pair{A: fmt.Sprintf("[%d, %d]", i, i+1000), B: fmt.Sprintf("[%d, %d]", i+1000, i)}
	}

	out, err := svc.MergeBatch(context.Background(), pairs)
	require.NoError(t, err)
	for i, o := range out {
		require.NoError(t, o.Err)
		assert.Equal(t, fmt.Sprintf("[{%d %d}]", i, i+1000), o.Result.Ranking.String())
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, service.KindInput, service.Classify(fmt.Errorf("x: %w", ranking.ErrEmptyLevel)))
	assert.Equal(t, service.KindInternal, service.Classify(errors.New("boom")))
	assert.Equal(t, service.KindInternal, service.Classify(nil))
	assert.Equal(t, "limit", service.KindLimit.String())
}
