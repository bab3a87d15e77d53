// SPDX-License-Identifier: MIT

package ranking

import "slices"

// Index is a bijection between a sorted object universe and matrix positions.
// An Index is immutable after NewIndex and safe for concurrent readers.
type Index struct {
	ids []ObjectID       // position -> identifier, ascending
	pos map[ObjectID]int // identifier -> position
}

// NewIndex builds the shared index over the union of identifiers of rankings.
// Stage 1 (Collect): gather identifiers from every ranking into a set.
// Stage 2 (Order): sort ascending; this fixes the row/column order.
// Complexity: O(n log n).
func NewIndex(rankings ...Ranking) *Index {
	set := make(map[ObjectID]struct{})
	for _, r := range rankings {
		for _, lv := range r {
			for _, id := range lv {
				set[id] = struct{}{}
			}
		}
	}

	ids := make([]ObjectID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	pos := make(map[ObjectID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return &Index{ids: ids, pos: pos}
}

// Len returns the universe size n.
func (x *Index) Len() int {
	return len(x.ids)
}

// ID returns the identifier at position p. Panics when p is out of range,
// like a slice index.
func (x *Index) ID(p int) ObjectID {
	return x.ids[p]
}

// Pos returns the position of id and whether id belongs to the universe.
func (x *Index) Pos(id ObjectID) (int, bool) {
	p, ok := x.pos[id]

	return p, ok
}

// IDs returns a copy of the sorted universe.
func (x *Index) IDs() []ObjectID {
	return slices.Clone(x.ids)
}

// Positions returns, for every position of idx, the level of that object in r.
// Objects of the universe that r does not mention sit on an implicit trailing
// level len(r): below every listed level and tied with each other.
// Complexity: O(n).
func (r Ranking) Positions(idx *Index) []int {
	out := make([]int, idx.Len())
	for p := range out {
		out[p] = len(r)
	}
	for i, lv := range r {
		for _, id := range lv {
			if p, ok := idx.Pos(id); ok {
				out[p] = i
			}
		}
	}

	return out
}
