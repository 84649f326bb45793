// Package rules connects the board core to a chess rules engine. The engine
// owns the authoritative position; everything else sees snapshots.
package rules

import "github.com/benbeisheim/chessboard-backend/internal/model"

// MoveDescriptor is the verbose form of one legal move.
type MoveDescriptor struct {
	From      string
	To        string
	Promotion model.PieceKind // NoKind unless the move promotes
	SAN       string
}

// Engine is the external collaborator holding game state and chess rules.
type Engine interface {
	// Moves lists the legal moves starting on square.
	Moves(square string) []MoveDescriptor
	// Move applies from-to, promoting to promotion when the move promotes.
	Move(from, to string, promotion model.PieceKind) error
	// Snapshot returns the FEN of the current position.
	Snapshot() string
	Turn() model.Color
	// History returns the SAN of every applied ply in order.
	History() []string
	// Outcome is the game result, "*" while the game is in progress.
	Outcome() string
}
