// SPDX-License-Identifier: MIT

// Package codec reads and writes rankings in their textual encodings.
//
// A ranking is written as a sequence whose elements are either a single
// integer identifier or a list of tied identifiers:
//
//	[1, [2, 3], 4]
//
// Parse accepts loose JSON: a trailing separator before a closing bracket is
// tolerated ("[1, 2,]"). ParseYAML accepts the same shape as a YAML sequence.
// Encode writes compact JSON or YAML flow style.
//
// Every parse error matches ErrMalformed via errors.Is; inconsistent rankings
// additionally match the ranking package sentinels.
package codec
