package model

import (
	"strconv"
	"strings"
)

// StartingSnapshot is the standard initial position.
const StartingSnapshot = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Grid is the display board. Grid[0] is rank 8, Grid[r][0] is file a.
type Grid [8][8]PieceID

// At returns the piece on a named square.
func (g Grid) At(square string) PieceID {
	row, col := FromSquare(square)
	return g[row][col]
}

// DecodeSnapshot turns the placement field of a snapshot into a Grid. The
// remaining fields (side to move, castling, en passant, clocks) belong to
// the rules engine and are ignored here.
func DecodeSnapshot(snapshot string) (Grid, error) {
	var grid Grid

	fields := strings.Fields(snapshot)
	if len(fields) == 0 {
		return grid, &SnapshotError{Snapshot: snapshot, Rank: -1, Reason: "empty snapshot"}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return grid, &SnapshotError{Snapshot: snapshot, Rank: -1, Reason: "expected 8 ranks, got " + strconv.Itoa(len(ranks))}
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case PieceID(c).Valid():
				if col < 8 {
					grid[row][col] = PieceID(c)
				}
				col++
			default:
				return Grid{}, &SnapshotError{Snapshot: snapshot, Rank: row, Reason: "unknown symbol " + strconv.QuoteRune(rune(c))}
			}
			if col > 8 {
				return Grid{}, &SnapshotError{Snapshot: snapshot, Rank: row, Reason: "more than 8 squares"}
			}
		}
		if col != 8 {
			return Grid{}, &SnapshotError{Snapshot: snapshot, Rank: row, Reason: "only " + strconv.Itoa(col) + " squares"}
		}
	}

	return grid, nil
}

// EncodePlacement writes the placement field for a grid.
func EncodePlacement(grid Grid) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < 8; col++ {
			p := grid[row][col]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(byte(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
