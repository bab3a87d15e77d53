// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise and structural operations over Bool.
//   - Every operation validates its operands and returns a fresh matrix; inputs
//     are never mutated.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAnd       = "And"
	opTranspose = "Transpose"
)

// And returns the elementwise conjunction out[i][j] = a[i][j] && b[i][j].
// Stage 1 (Validate): both non-nil, same order.
// Stage 2 (Execute): single pass over the flat buffers.
// Complexity: Time O(n²), Space O(n²).
func And(a, b *Bool) (*Bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAnd, err)
	}

	out := &Bool{n: a.n, data: make([]bool, len(a.data))}
	for i, v := range a.data {
		out.data[i] = v && b.data[i]
	}

	return out, nil
}

// Transpose returns out[i][j] = a[j][i].
// Complexity: Time O(n²), Space O(n²).
func Transpose(a *Bool) (*Bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	n := a.n
	out := &Bool{n: n, data: make([]bool, len(a.data))}
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			out.data[j*n+i] = a.data[base+j]
		}
	}

	return out, nil
}
