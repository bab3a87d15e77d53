// SPDX-License-Identifier: MIT

// Package matrix offers square boolean relation matrices and the small algebra
// the consensus pipeline is built from.
//
// The matrix package provides:
//
//   - Bool: an n×n 0/1 relation over a fixed object index, stored row-major in a
//     flat slice for cache-friendly scans.
//   - Pure operations that allocate a fresh result: And (elementwise conjunction),
//     Transpose, Closure (Warshall transitive closure).
//   - Structural validators: reflexive, symmetric, transitive, and the composite
//     ValidateEquivalence.
//
// Determinism:
//
//   - All loops run in a fixed order (i→j, and k→i→j for Closure); results never
//     depend on map iteration or scheduling.
//
// Complexity:
//
//   - And / Transpose:  Time O(n²), Space O(n²)
//   - Closure:          Time O(n³), Space O(n²)
//   - Validators:       O(n²) except ValidateTransitive, O(n³)
//
// Errors are package sentinels prefixed "matrix:" and wrapped with the operation
// name; callers match them with errors.Is.
package matrix
