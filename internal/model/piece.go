package model

import (
	"fmt"
	"strings"
)

// PieceID is one of the twelve FEN piece letters. Uppercase is white,
// lowercase is black. The zero value is an empty square.
type PieceID byte

const NoPiece PieceID = 0

const (
	WhitePawn   PieceID = 'P'
	WhiteKnight PieceID = 'N'
	WhiteBishop PieceID = 'B'
	WhiteRook   PieceID = 'R'
	WhiteQueen  PieceID = 'Q'
	WhiteKing   PieceID = 'K'
	BlackPawn   PieceID = 'p'
	BlackKnight PieceID = 'n'
	BlackBishop PieceID = 'b'
	BlackRook   PieceID = 'r'
	BlackQueen  PieceID = 'q'
	BlackKing   PieceID = 'k'
)

// PieceKind is the colorless piece letter, always lowercase.
type PieceKind byte

const (
	NoKind PieceKind = 0
	Pawn   PieceKind = 'p'
	Knight PieceKind = 'n'
	Bishop PieceKind = 'b'
	Rook   PieceKind = 'r'
	Queen  PieceKind = 'q'
	King   PieceKind = 'k'
)

type Color string

const (
	White Color = "w"
	Black Color = "b"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

const pieceLetters = "PNBRQKpnbrqk"

func (p PieceID) Valid() bool {
	return p != NoPiece && strings.IndexByte(pieceLetters, byte(p)) >= 0
}

func (p PieceID) Color() Color {
	if p >= 'A' && p <= 'Z' {
		return White
	}
	return Black
}

func (p PieceID) Kind() PieceKind {
	if !p.Valid() {
		return NoKind
	}
	return PieceKind(strings.ToLower(string(p))[0])
}

func (p PieceID) String() string {
	if p == NoPiece {
		return ""
	}
	return string(p)
}

// MarshalText keeps pieces readable in JSON views.
func (p PieceID) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PieceID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = NoPiece
		return nil
	}
	if len(text) != 1 || !PieceID(text[0]).Valid() {
		return fmt.Errorf("unknown piece %q", text)
	}
	*p = PieceID(text[0])
	return nil
}

// Piece builds the identifier for a kind and color.
func Piece(kind PieceKind, color Color) PieceID {
	if color == White {
		return PieceID(strings.ToUpper(string(kind))[0])
	}
	return PieceID(kind)
}
