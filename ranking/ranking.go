// SPDX-License-Identifier: MIT

package ranking

import (
	"fmt"
	"slices"
)

// New builds a Ranking from levels, copying and sorting each level, then
// validating the result.
// Stage 1 (Prepare): copy each level so callers may reuse their slices.
// Stage 2 (Normalize): sort members ascending.
// Stage 3 (Validate): reject empty levels and duplicates.
// Complexity: O(n log n).
func New(levels ...Level) (Ranking, error) {
	r := make(Ranking, len(levels))
	for i, lv := range levels {
		cp := slices.Clone(lv)
		slices.Sort(cp)
		r[i] = cp
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// MustNew is New that panics on error. Intended for literals in tests and examples.
func MustNew(levels ...Level) Ranking {
	r, err := New(levels...)
	if err != nil {
		panic(err)
	}

	return r
}

// Validate reports ErrEmptyLevel or ErrDuplicateObject, wrapped with the
// offending level position and identifier.
// Complexity: O(n).
func (r Ranking) Validate() error {
	seen := make(map[ObjectID]int, r.size())
	for i, lv := range r {
		if len(lv) == 0 {
			return fmt.Errorf("level %d: %w", i, ErrEmptyLevel)
		}
		for _, id := range lv {
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("object %d in levels %d and %d: %w", id, prev, i, ErrDuplicateObject)
			}
			seen[id] = i
		}
	}

	return nil
}

// Len returns the number of levels.
func (r Ranking) Len() int {
	return len(r)
}

// size counts identifiers across all levels.
func (r Ranking) size() int {
	n := 0
	for _, lv := range r {
		n += len(lv)
	}

	return n
}

// Objects returns every identifier of r, sorted ascending.
func (r Ranking) Objects() []ObjectID {
	out := make([]ObjectID, 0, r.size())
	for _, lv := range r {
		out = append(out, lv...)
	}
	slices.Sort(out)

	return out
}

// LevelMap maps each identifier to its zero-based level index.
func (r Ranking) LevelMap() map[ObjectID]int {
	m := make(map[ObjectID]int, r.size())
	for i, lv := range r {
		for _, id := range lv {
			m[id] = i
		}
	}

	return m
}

// Equal reports whether r and other have the same levels in the same order.
// Both rankings are assumed normalized (levels sorted), as New guarantees.
func (r Ranking) Equal(other Ranking) bool {
	return slices.EqualFunc(r, other, func(a, b Level) bool {
		return slices.Equal(a, b)
	})
}

// String renders r compactly, e.g. [1 {2 3} 4].
func (r Ranking) String() string {
	s := "["
	for i, lv := range r {
		if i > 0 {
			s += " "
		}
		if len(lv) == 1 {
			s += fmt.Sprint(int(lv[0]))
			continue
		}
		s += "{"
		for j, id := range lv {
			if j > 0 {
				s += " "
			}
			s += fmt.Sprint(int(id))
		}
		s += "}"
	}

	return s + "]"
}
