package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the board core. Check them with errors.Is.
var (
	// ErrMalformedSnapshot indicates a position snapshot whose placement
	// field cannot be turned into a grid.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrIllegalMoveAttempt indicates a commit the rules engine refused.
	ErrIllegalMoveAttempt = errors.New("illegal move attempt")

	// ErrInvalidGestureTarget indicates coordinates outside the 8x8 grid.
	ErrInvalidGestureTarget = errors.New("invalid gesture target")
)

// SnapshotError carries the offending rank along with ErrMalformedSnapshot.
type SnapshotError struct {
	Snapshot string
	Rank     int // 0-based rank index in the placement field, -1 if not rank specific
	Reason   string
}

func (e *SnapshotError) Error() string {
	if e.Rank >= 0 {
		return fmt.Sprintf("%v: rank %d: %s (%q)", ErrMalformedSnapshot, e.Rank+1, e.Reason, e.Snapshot)
	}
	return fmt.Sprintf("%v: %s (%q)", ErrMalformedSnapshot, e.Reason, e.Snapshot)
}

func (e *SnapshotError) Unwrap() error {
	return ErrMalformedSnapshot
}
