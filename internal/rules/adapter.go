package rules

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/chessboard-backend/internal/model"
)

// PromotionPolicy is the piece every promotion becomes. Underpromotion is
// not offered.
const PromotionPolicy = model.Queen

// Adapter forwards legality questions and moves to an Engine. It holds no
// game state of its own.
type Adapter struct {
	engine Engine
}

func NewAdapter(engine Engine) *Adapter {
	return &Adapter{engine: engine}
}

func (a *Adapter) SideToMove() model.Color {
	return a.engine.Turn()
}

func (a *Adapter) Snapshot() string {
	return a.engine.Snapshot()
}

func (a *Adapter) Outcome() string {
	return a.engine.Outcome()
}

// Owns reports whether square holds a piece of the side to move.
func (a *Adapter) Owns(square string) bool {
	grid, err := model.DecodeSnapshot(a.engine.Snapshot())
	if err != nil {
		return false
	}
	piece := grid.At(square)
	return piece != model.NoPiece && piece.Color() == a.engine.Turn()
}

// LegalDestinations is empty for empty squares and for opponent pieces.
func (a *Adapter) LegalDestinations(square string) model.SquareSet {
	legal := model.SquareSet{}
	if !a.Owns(square) {
		return legal
	}
	for _, m := range a.engine.Moves(square) {
		legal[m.To] = struct{}{}
	}
	return legal
}

// AttemptMove applies from-to if to is a legal destination and returns the
// new snapshot. Promotions always use PromotionPolicy. On failure the
// position is unchanged.
func (a *Adapter) AttemptMove(from, to string) (string, error) {
	if !a.LegalDestinations(from).Has(to) {
		return "", fmt.Errorf("%w: %s is not a destination of %s", model.ErrIllegalMoveAttempt, to, from)
	}
	if err := a.engine.Move(from, to, PromotionPolicy); err != nil {
		if errors.Is(err, model.ErrIllegalMoveAttempt) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", model.ErrIllegalMoveAttempt, err)
	}
	return a.engine.Snapshot(), nil
}

func (a *Adapter) CurrentHistory() []model.MoveRecord {
	sans := a.engine.History()
	records := make([]model.MoveRecord, len(sans))
	for i, san := range sans {
		records[i] = model.MoveRecord{Ply: i + 1, Notation: san}
	}
	return records
}
