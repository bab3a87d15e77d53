// SPDX-License-Identifier: MIT

package consensus

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

var (
	// ErrTooManyObjects is returned when the merged universe exceeds the
	// configured object ceiling. The closure stage is cubic in the universe size.
	ErrTooManyObjects = errors.New("consensus: too many objects")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("consensus: invalid option supplied")

	// ErrIndexMismatch indicates a matrix, pair or cluster that does not fit the
	// shared object index.
	ErrIndexMismatch = errors.New("consensus: index mismatch")
)

// Stage names one step of the merge pipeline.
type Stage int

// Pipeline stages, in execution order.
const (
	StageDominance Stage = iota
	StageContradictions
	StageConsensus
	StageEquivalence
	StageClusters
	StageOrder
)

var stageNames = [...]string{
	StageDominance:      "dominance",
	StageContradictions: "contradictions",
	StageConsensus:      "consensus",
	StageEquivalence:    "equivalence",
	StageClusters:       "clusters",
	StageOrder:          "order",
}

// String returns the lower-case stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}

	return stageNames[s]
}

// Pair is an unordered object pair, normalized so that A < B.
type Pair struct {
	A, B ranking.ObjectID
}

// Cluster is a set of objects tied in the consensus, sorted ascending.
type Cluster []ranking.ObjectID

// Min returns the smallest member. Clusters are never empty.
func (c Cluster) Min() ranking.ObjectID {
	return c[0]
}

// compareClusters orders clusters by (smallest member, size) ascending.
func compareClusters(a, b Cluster) int {
	if c := cmp.Compare(a.Min(), b.Min()); c != 0 {
		return c
	}

	return cmp.Compare(len(a), len(b))
}

// Result is the outcome of one Merge.
type Result struct {
	// Ranking is the consensus ranking: one level per cluster, best first.
	Ranking ranking.Ranking

	// Clusters holds the same clusters as Ranking, in output order.
	Clusters []Cluster

	// Contradictions lists every strictly reversed pair, sorted by (A, B).
	Contradictions []Pair

	// Residual is true when the cycle fallback ordered some clusters.
	Residual bool

	// Objects is the size of the merged universe.
	Objects int
}
