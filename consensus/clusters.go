// SPDX-License-Identifier: MIT

package consensus

import (
	"fmt"
	"slices"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// walker encapsulates mutable breadth-first state over E*.
type walker struct {
	star    *matrix.Bool
	idx     *ranking.Index
	queue   []int
	visited []bool
}

// Clusters returns the connected components of star (E*) as tie-clusters.
// Each component is collected breadth-first from the lowest unvisited position;
// members are sorted ascending and clusters are ordered by (smallest member,
// size) so the output is reproducible before the real ordering stage.
//
// Clusters partition the universe: pairwise disjoint, union = idx.
// Errors: matrix.ErrNilMatrix, ErrIndexMismatch when star does not match idx.
// Complexity: Time O(n²), Space O(n).
func Clusters(star *matrix.Bool, idx *ranking.Index) ([]Cluster, error) {
	if err := matrix.ValidateNotNil(star); err != nil {
		return nil, fmt.Errorf("Clusters: %w", err)
	}
	if idx == nil || star.Size() != idx.Len() {
		return nil, fmt.Errorf("Clusters: matrix order %d: %w", star.Size(), ErrIndexMismatch)
	}

	n := idx.Len()
	w := &walker{
		star:    star,
		idx:     idx,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
	}

	var out []Cluster
	for start := 0; start < n; start++ {
		if w.visited[start] {
			continue
		}
		out = append(out, w.component(start))
	}
	slices.SortFunc(out, compareClusters)

	return out, nil
}

// component drains the queue seeded with start and returns the sorted members.
func (w *walker) component(start int) Cluster {
	w.enqueue(start)

	var members Cluster
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		members = append(members, w.idx.ID(v))

		for u := 0; u < w.idx.Len(); u++ {
			if w.visited[u] {
				continue
			}
			if tied, _ := w.star.At(v, u); tied {
				w.enqueue(u)
			}
		}
	}
	slices.Sort(members)

	return members
}

// enqueue marks p visited and appends it to the queue.
func (w *walker) enqueue(p int) {
	w.visited[p] = true
	w.queue = append(w.queue, p)
}
