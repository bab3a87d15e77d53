// SPDX-License-Identifier: MIT

// Package consensus merges two possibly conflicting rankings of the same objects
// into one consensus ranking with ties.
//
// What:
//
//   - Dominance: ranking → "at least as good as" matrix Y over a shared index.
//   - Contradictions: object pairs whose strict order is reversed between the
//     two rankings. Ties in either ranking never contradict by themselves.
//   - Assemble: C = YA ∧ YB, then every contradiction pair is forced to mutual
//     dominance, i.e. a disagreement becomes a tie instead of an arbitrary pick.
//   - Equivalence: E = C ∧ Cᵀ (mutual dominance), closed transitively into E*.
//   - Clusters: connected components of E*, one tie-cluster each.
//   - Order: precedence over clusters lifted from C, linearized by Kahn's
//     algorithm with the (smallest member, size) tie-break.
//
// Why:
//
//   - Agreement between the inputs is preserved; disagreement is declared as a
//     tie rather than resolved in favour of either input.
//   - Merge(A, B) and Merge(B, A) yield the same partition and the same order.
//
// State machine:
//
//	Unprocessed → dominance + contradictions → consensus built →
//	equivalence + closure → clusters formed → ordered output
//
// No stage revisits an earlier one. Input validation happens once, before any
// matrix work; every later stage is total for valid input.
//
// Residual cycles:
//
//	If the cluster precedence graph still holds a cycle after every resolvable
//	cluster is removed, the remaining clusters are appended in tie-break order
//	and Result.Residual is set. This is a best-effort fallback for a state the
//	closure step should never produce, not a guaranteed consensus semantics.
//
// Complexity:
//
//   - Dominance, Contradictions, Assemble, Equivalence: Time O(n²), Space O(n²)
//   - Closure:                                            Time O(n³), Space O(n²)
//   - Clusters:                                           Time O(n²)
//   - Order:                                              Time O(n² + m² log m), m = #clusters
//
// Errors:
//
//   - ErrTooManyObjects   universe larger than the configured ceiling
//   - ErrOptionViolation  invalid Option value
//   - ErrIndexMismatch    a matrix or pair does not match the shared index
//   - ranking.ErrEmptyLevel, ranking.ErrDuplicateObject  invalid input ranking
//
// Merge is pure: inputs are never mutated and no state survives a call, so
// concurrent merges need no coordination.
package consensus
