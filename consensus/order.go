// SPDX-License-Identifier: MIT

package consensus

import (
	"fmt"
	"slices"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// resolver encapsulates state for ordering clusters.
type resolver struct {
	c        *matrix.Bool
	clusters []Cluster
	members  [][]int // cluster -> member positions in the shared index
	edges    [][]int // cluster -> clusters it strictly precedes
	indeg    []int
	done     []bool
}

// Order linearizes clusters using the consensus relation c lifted to clusters.
//
// Cluster X precedes cluster Y iff every member of X dominates every member of Y
// under c and the reverse does not also hold. Clusters with zero in-degree are
// removed one at a time (Kahn), always taking the smallest by (smallest member,
// size) so output does not depend on input order.
//
// If clusters remain once no zero in-degree cluster is left (a residual cycle),
// they are appended in the same tie-break order and residual is reported true.
// That path is a best-effort fallback, not a consensus semantics.
//
// Errors: matrix.ErrNilMatrix, ErrIndexMismatch when c does not match idx or a
// cluster names an unknown object.
// Complexity: Time O(n² + m² log m), Space O(m²), m = len(clusters).
func Order(c *matrix.Bool, clusters []Cluster, idx *ranking.Index) ([]Cluster, bool, error) {
	if err := matrix.ValidateNotNil(c); err != nil {
		return nil, false, fmt.Errorf("Order: %w", err)
	}
	if idx == nil || c.Size() != idx.Len() {
		return nil, false, fmt.Errorf("Order: matrix order %d: %w", c.Size(), ErrIndexMismatch)
	}

	r, err := newResolver(c, clusters, idx)
	if err != nil {
		return nil, false, err
	}
	r.buildEdges()
	ordered := r.kahn()
	residual := len(ordered) < len(clusters)
	if residual {
		ordered = append(ordered, r.remaining()...)
	}

	return ordered, residual, nil
}

// newResolver resolves member positions once so dominance checks are O(1).
func newResolver(c *matrix.Bool, clusters []Cluster, idx *ranking.Index) (*resolver, error) {
	m := len(clusters)
	r := &resolver{
		c:        c,
		clusters: clusters,
		members:  make([][]int, m),
		edges:    make([][]int, m),
		indeg:    make([]int, m),
		done:     make([]bool, m),
	}
	for k, cl := range clusters {
		if len(cl) == 0 {
			return nil, fmt.Errorf("Order: cluster %d is empty: %w", k, ErrIndexMismatch)
		}
		pos := make([]int, len(cl))
		for t, id := range cl {
			p, ok := idx.Pos(id)
			if !ok {
				return nil, fmt.Errorf("Order: object %d: %w", id, ErrIndexMismatch)
			}
			pos[t] = p
		}
		r.members[k] = pos
	}

	return r, nil
}

// dominates reports whether every member of cluster x dominates every member of y.
func (r *resolver) dominates(x, y int) bool {
	for _, a := range r.members[x] {
		for _, b := range r.members[y] {
			if ok, _ := r.c.At(a, b); !ok {
				return false
			}
		}
	}

	return true
}

// buildEdges adds x→y for every strict precedence, fixed x→y order.
func (r *resolver) buildEdges() {
	m := len(r.clusters)
	for x := 0; x < m; x++ {
		for y := 0; y < m; y++ {
			if x == y {
				continue
			}
			if r.dominates(x, y) && !r.dominates(y, x) {
				r.edges[x] = append(r.edges[x], y)
				r.indeg[y]++
			}
		}
	}
}

// kahn removes zero in-degree clusters in tie-break order until none is left.
func (r *resolver) kahn() []Cluster {
	byKey := func(a, b int) int { return compareClusters(r.clusters[a], r.clusters[b]) }

	var ready []int
	for k, d := range r.indeg {
		if d == 0 {
			ready = append(ready, k)
		}
	}
	slices.SortFunc(ready, byKey)

	out := make([]Cluster, 0, len(r.clusters))
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		r.done[v] = true
		out = append(out, r.clusters[v])

		for _, u := range r.edges[v] {
			r.indeg[u]--
			if r.indeg[u] == 0 {
				ready = append(ready, u)
			}
		}
		slices.SortFunc(ready, byKey)
	}

	return out
}

// remaining returns unresolved clusters in tie-break order.
func (r *resolver) remaining() []Cluster {
	var rest []Cluster
	for k, cl := range r.clusters {
		if !r.done[k] {
			rest = append(rest, cl)
		}
	}
	slices.SortFunc(rest, compareClusters)

	return rest
}
