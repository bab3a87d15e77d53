// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural relation checks.
//  - Keep operations minimal by delegating nil/shape/property checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry runs O(n²) on the upper triangle only; transitivity is O(n³).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → property checks).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Bool) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures both matrices are non-nil and of equal order.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Bool) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateReflexive checks m[i][i] for every i.
// Errors: ErrNilMatrix, ErrNotReflexive (wrapped with the failing index).
// Complexity: O(n).
func ValidateReflexive(m *Bool) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateReflexive", err)
	}
	for i := 0; i < m.n; i++ {
		if !m.data[i*m.n+i] {
			return validatorErrorf("ValidateReflexive", fmt.Errorf("(%d,%d): %w", i, i, ErrNotReflexive))
		}
	}

	return nil
}

// ValidateSymmetric checks m[i][j] == m[j][i] over the strict upper triangle.
// Errors: ErrNilMatrix, ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m *Bool) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.n
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateTransitive checks that m[i][k] && m[k][j] implies m[i][j].
// Errors: ErrNilMatrix, ErrNotTransitive.
// Complexity: O(n³).
func ValidateTransitive(m *Bool) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateTransitive", err)
	}
	n := m.n
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !m.data[i*n+k] {
				continue
			}
			for j := 0; j < n; j++ {
				if m.data[k*n+j] && !m.data[i*n+j] {
					return validatorErrorf("ValidateTransitive", fmt.Errorf("(%d,%d) via %d: %w", i, j, k, ErrNotTransitive))
				}
			}
		}
	}

	return nil
}

// ValidateEquivalence – Composite: Reflexive → Symmetric → Transitive.
// Errors: the first violated property's sentinel.
// Complexity: O(n³).
func ValidateEquivalence(m *Bool) error {
	if err := ValidateReflexive(m); err != nil {
		return validatorErrorf("ValidateEquivalence", err)
	}
	if err := ValidateSymmetric(m); err != nil {
		return validatorErrorf("ValidateEquivalence", err)
	}
	if err := ValidateTransitive(m); err != nil {
		return validatorErrorf("ValidateEquivalence", err)
	}

	return nil
}
