package consensus_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alexsandra-Z/system-analysis-2025/matrix"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// rk builds a ranking from plain int levels, e.g. rk([]int{1}, []int{2, 3}).
func rk(levels ...[]int) ranking.Ranking {
	out := make([]ranking.Level, len(levels))
	for i, lv := range levels {
		l := make(ranking.Level, len(lv))
		for j, id := range lv {
			l[j] = ranking.ObjectID(id)
		}
		out[i] = l
	}

	return ranking.MustNew(out...)
}

// chain builds a ranking with one object per level.
func chain(ids ...int) ranking.Ranking {
	levels := make([][]int, len(ids))
	for i, id := range ids {
		levels[i] = []int{id}
	}

	return rk(levels...)
}

// rows builds a matrix from "0"/"1" row strings.
func rows(t *testing.T, rs ...string) *matrix.Bool {
	t.Helper()

	m, err := matrix.NewBool(len(rs))
	require.NoError(t, err)
	for i, r := range rs {
		for j, c := range r {
			require.NoError(t, m.Set(i, j, c == '1'))
		}
	}

	return m
}

// randomRanking shuffles ids and cuts them into random non-empty levels.
func randomRanking(rng *rand.Rand, ids []int) ranking.Ranking {
	perm := append([]int(nil), ids...)
	rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	var levels [][]int
	for i := 0; i < len(perm); {
		size := 1 + rng.Intn(3)
		if i+size > len(perm) {
			size = len(perm) - i
		}
		levels = append(levels, perm[i:i+size])
		i += size
	}

	return rk(levels...)
}

// universe returns 1..n.
func universe(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
