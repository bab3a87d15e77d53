// SPDX-License-Identifier: MIT

package service

import (
	"errors"

	"github.com/Alexsandra-Z/system-analysis-2025/codec"
	"github.com/Alexsandra-Z/system-analysis-2025/consensus"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

// Kind groups errors by who has to act on them.
type Kind int

const (
	// KindInternal is anything not caused by the request.
	KindInternal Kind = iota
	// KindInput is a malformed or inconsistent ranking.
	KindInput
	// KindLimit is a request over the object or batch ceiling.
	KindLimit
)

// String returns input, limit or internal.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindLimit:
		return "limit"
	default:
		return "internal"
	}
}

// Classify returns the Kind of err. A nil error is KindInternal.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, codec.ErrMalformed),
		errors.Is(err, ranking.ErrEmptyLevel),
		errors.Is(err, ranking.ErrDuplicateObject):
		return KindInput
	case errors.Is(err, consensus.ErrTooManyObjects),
		errors.Is(err, ErrBatchTooLarge):
		return KindLimit
	default:
		return KindInternal
	}
}
