// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bool is the single relation representation shared by every consensus stage.
//   - Row-major flat storage; row i holds "i relates to j" for every j.

package matrix

import (
	"fmt"
	"strings"
)

// Bool is a square n×n boolean matrix. The zero value is not usable; build one
// with NewBool or Identity.
type Bool struct {
	n    int    // order (rows == cols)
	data []bool // flat backing storage, len == n*n
}

// NewBool creates an n×n matrix with every entry false.
// Stage 1 (Validate): n must be positive.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewBool(n int) (*Bool, error) {
	if n <= 0 {
		return nil, matrixErrorf("NewBool", ErrBadShape)
	}

	return &Bool{n: n, data: make([]bool, n*n)}, nil
}

// Identity creates the n×n identity relation (diagonal true).
// Complexity: O(n²).
func Identity(n int) (*Bool, error) {
	m, err := NewBool(n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = true
	}

	return m, nil
}

// Size returns the order n.
func (m *Bool) Size() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Bool) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("Bool.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At reports whether row relates to col.
// Complexity: O(1).
func (m *Bool) At(row, col int) (bool, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Bool) Set(row, col int, v bool) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Bool) Clone() *Bool {
	cp := make([]bool, len(m.data))
	copy(cp, m.data)

	return &Bool{n: m.n, data: cp}
}

// Equal reports whether m and o have the same order and entries.
// Two nil matrices are equal.
func (m *Bool) Equal(o *Bool) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Count returns the number of true entries.
func (m *Bool) Count() int {
	c := 0
	for _, v := range m.data {
		if v {
			c++
		}
	}

	return c
}

// String renders one row per line as 0/1 digits, e.g. "110\n011\n001\n".
func (m *Bool) String() string {
	var sb strings.Builder
	sb.Grow(m.n * (m.n + 1))
	for i := 0; i < m.n; i++ {
		base := i * m.n
		for j := 0; j < m.n; j++ {
			if m.data[base+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
