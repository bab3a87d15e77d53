// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Warshall transitive closure: the boolean specialisation of Floyd–Warshall
//     where "distance" collapses to reachability and relaxation to OR.
//
// Contract:
//   - The input is any square relation; the result R* contains R and is transitive.
//   - Reflexivity and symmetry of the input are preserved.

package matrix

const opClosure = "Closure"

// closureInPlace runs Warshall on d in place.
//
// Loop order is fixed (k → i → j) for deterministic behaviour.
// Time: O(n^3); Extra space: O(1).
func closureInPlace(d *Bool) {
	n := d.n
	data := d.data

	var k, i, j, baseK, baseI int
	for k = 0; k < n; k++ { // outer: intermediate object k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source i
			if !data[i*n+k] { // i does not reach k, nothing to propagate
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: everything k reaches, i now reaches
				if data[baseK+j] {
					data[baseI+j] = true
				}
			}
		}
	}
}

// Closure returns the transitive closure of a as a new matrix.
//
// Contract:
//   - a must be non-nil.
//
// Determinism:
//   - Loop order is fixed (k → i → j).
//
// Complexity: Time O(n^3), Space O(n^2) for the copy.
func Closure(a *Bool) (*Bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opClosure, err)
	}

	out := a.Clone()
	closureInPlace(out)

	return out, nil
}
