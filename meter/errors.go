// Package meter models time signatures as recursively partitionable
// trees of rational sub-durations. A Terminal is an atomic "N/D"
// fraction; a Sequence holds an ordered list of terminals or nested
// sequences whose durations always sum to its own.
package meter

import "errors"

var (
	// ErrInvalidDenominator indicates a denominator outside the valid
	// set 1, 2, 4, 8, 16, 32, 64.
	ErrInvalidDenominator = errors.New("invalid denominator")

	// ErrInvalidNumerator indicates a non-positive numerator.
	ErrInvalidNumerator = errors.New("numerator must be positive")

	// ErrBadRatio indicates an unparseable "N/D" token.
	ErrBadRatio = errors.New("cannot parse ratio")

	// ErrOffsetOutOfRange indicates a position query outside
	// [0, duration).
	ErrOffsetOutOfRange = errors.New("offset outside sequence duration")

	// ErrDurationMismatch indicates a child replacement or shape copy
	// whose duration does not match the slot it targets.
	ErrDurationMismatch = errors.New("durations do not match")

	// ErrNoMatchingPartition indicates a partition request the option
	// generator cannot satisfy.
	ErrNoMatchingPartition = errors.New("no matching partition")
)
