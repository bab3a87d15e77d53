// SPDX-License-Identifier: MIT

package consensus

import (
	"fmt"
	"time"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// Merge combines rankings a and b into one consensus ranking.
//
// Agreement between the inputs is preserved; every strictly reversed pair ends
// up in one tie-cluster. The universe is the union of both rankings' objects;
// an object missing from one ranking is treated as ranked below everything that
// ranking lists.
//
// Stage 1 (Validate): options, both rankings, object ceiling.
// Stage 2 (Relations): YA, YB and the contradiction set.
// Stage 3 (Consensus): C = YA ∧ YB with contradictions forced mutual.
// Stage 4 (Ties): E = C ∧ Cᵀ, E* = closure(E), clusters = components of E*.
// Stage 5 (Order): Kahn over the cluster precedence graph.
//
// An empty universe yields an empty Result without error.
// Complexity: Time O(n³), Space O(n²).
func Merge(a, b ranking.Ranking, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("consensus: ranking A: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("consensus: ranking B: %w", err)
	}

	idx := ranking.NewIndex(a, b)
	n := idx.Len()
	if n == 0 {
		return &Result{Ranking: ranking.Ranking{}}, nil
	}
	if o.MaxObjects > 0 && n > o.MaxObjects {
		return nil, fmt.Errorf("%w: %d objects, limit %d", ErrTooManyObjects, n, o.MaxObjects)
	}

	p := &pipeline{a: a, b: b, idx: idx, hook: o.OnStage}

	return p.run()
}

// pipeline threads the shared index and intermediate relations through the stages.
type pipeline struct {
	a, b ranking.Ranking
	idx  *ranking.Index
	hook func(Stage, time.Duration)

	ya, yb   *matrix.Bool
	pairs    []Pair
	c        *matrix.Bool
	star     *matrix.Bool
	clusters []Cluster
}

// run executes every stage in order; the first failure aborts the merge.
func (p *pipeline) run() (*Result, error) {
	steps := []struct {
		stage Stage
		fn    func() error
	}{
		{StageDominance, p.dominance},
		{StageContradictions, p.contradictions},
		{StageConsensus, p.consensus},
		{StageEquivalence, p.equivalence},
		{StageClusters, p.components},
	}
	for _, s := range steps {
		started := time.Now()
		if err := s.fn(); err != nil {
			return nil, fmt.Errorf("consensus: %s: %w", s.stage, err)
		}
		p.hook(s.stage, time.Since(started))
	}

	started := time.Now()
	ordered, residual, err := Order(p.c, p.clusters, p.idx)
	if err != nil {
		return nil, fmt.Errorf("consensus: %s: %w", StageOrder, err)
	}
	p.hook(StageOrder, time.Since(started))

	out := make(ranking.Ranking, len(ordered))
	for i, cl := range ordered {
		out[i] = ranking.Level(cl)
	}

	return &Result{
		Ranking:        out,
		Clusters:       ordered,
		Contradictions: p.pairs,
		Residual:       residual,
		Objects:        p.idx.Len(),
	}, nil
}

func (p *pipeline) dominance() error {
	var err error
	if p.ya, err = Dominance(p.a, p.idx); err != nil {
		return err
	}
	p.yb, err = Dominance(p.b, p.idx)

	return err
}

func (p *pipeline) contradictions() error {
	p.pairs = Contradictions(p.a, p.b, p.idx)

	return nil
}

func (p *pipeline) consensus() error {
	var err error
	p.c, err = Assemble(p.ya, p.yb, p.pairs, p.idx)

	return err
}

func (p *pipeline) equivalence() error {
	e, err := Equivalence(p.c)
	if err != nil {
		return err
	}
	p.star, err = Closure(e)

	return err
}

func (p *pipeline) components() error {
	var err error
	p.clusters, err = Clusters(p.star, p.idx)

	return err
}
