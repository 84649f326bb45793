package model

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

const files = "abcdefgh"

// InBounds reports whether (row, col) addresses a square of the 8x8 grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// ToSquare maps grid coordinates to an algebraic square name. Row 0 is
// rank 8 and column 0 is file a. Coordinates off the grid are a caller bug
// and panic.
func ToSquare(row, col int) string {
	if !InBounds(row, col) {
		panic(fmt.Errorf("%w: row %d col %d", ErrInvalidGestureTarget, row, col))
	}
	return fmt.Sprintf("%c%d", files[col], 8-row)
}

// FromSquare is the inverse of ToSquare.
func FromSquare(name string) (row, col int) {
	if !ValidSquare(name) {
		panic(fmt.Errorf("%w: square %q", ErrInvalidGestureTarget, name))
	}
	return int('8' - name[1]), int(name[0] - 'a')
}

func ValidSquare(name string) bool {
	return len(name) == 2 && name[0] >= 'a' && name[0] <= 'h' && name[1] >= '1' && name[1] <= '8'
}

// SquareSet is an unordered set of square names.
type SquareSet map[string]struct{}

func NewSquareSet(squares ...string) SquareSet {
	s := make(SquareSet, len(squares))
	for _, sq := range squares {
		s[sq] = struct{}{}
	}
	return s
}

func (s SquareSet) Has(square string) bool {
	_, ok := s[square]
	return ok
}

func (s SquareSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s SquareSet) Sorted() []string {
	if len(s) == 0 {
		return []string{}
	}
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}
