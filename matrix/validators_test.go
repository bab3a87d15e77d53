package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
)

// TestValidators covers every structural check on nil, passing and failing inputs.
func TestValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check func(*matrix.Bool) error
		rows  []string
		want  error
	}{
		{"reflexive nil", matrix.ValidateReflexive, nil, matrix.ErrNilMatrix},
		{"reflexive ok", matrix.ValidateReflexive, []string{"11", "01"}, nil},
		{"reflexive fail", matrix.ValidateReflexive, []string{"10", "00"}, matrix.ErrNotReflexive},
		{"symmetric ok", matrix.ValidateSymmetric, []string{"11", "11"}, nil},
		{"symmetric fail", matrix.ValidateSymmetric, []string{"11", "01"}, matrix.ErrAsymmetry},
		{"transitive ok", matrix.ValidateTransitive, []string{"111", "011", "001"}, nil},
		{"transitive fail", matrix.ValidateTransitive, []string{"110", "011", "001"}, matrix.ErrNotTransitive},
		{"equivalence ok", matrix.ValidateEquivalence, []string{"110", "110", "001"}, nil},
		{"equivalence not reflexive", matrix.ValidateEquivalence, []string{"010", "110", "001"}, matrix.ErrNotReflexive},
		{"equivalence asymmetric", matrix.ValidateEquivalence, []string{"110", "010", "001"}, matrix.ErrAsymmetry},
		{"equivalence not transitive", matrix.ValidateEquivalence, []string{"110", "111", "011"}, matrix.ErrNotTransitive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var m *matrix.Bool
			if tc.rows != nil {
				m = MustFromRows(t, tc.rows...)
			}
			err := tc.check(m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, "1")
	require.ErrorIs(t, matrix.ValidateSameShape(nil, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustFromRows(t, "10", "01")), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, MustFromRows(t, "0")))
}
