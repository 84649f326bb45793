package rules

import (
	"fmt"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/corentings/chess/v2"
)

// ChessEngine implements Engine with github.com/corentings/chess/v2.
type ChessEngine struct {
	game *chess.Game
}

func NewChessEngine() *ChessEngine {
	return &ChessEngine{game: chess.NewGame()}
}

// NewChessEngineFromFEN starts a game from an arbitrary position. The
// placement must decode and the library must accept the whole FEN.
func NewChessEngineFromFEN(fen string) (*ChessEngine, error) {
	if _, err := model.DecodeSnapshot(fen); err != nil {
		return nil, err
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedSnapshot, err)
	}
	return &ChessEngine{game: chess.NewGame(opt)}, nil
}

func (e *ChessEngine) Moves(square string) []MoveDescriptor {
	if !model.ValidSquare(square) {
		return nil
	}
	from := toChessSquare(square)
	pos := e.game.Position()

	var out []MoveDescriptor
	for _, m := range e.game.ValidMoves() {
		if m.S1() != from {
			continue
		}
		out = append(out, MoveDescriptor{
			From:      square,
			To:        fromChessSquare(m.S2()),
			Promotion: fromPieceType(m.Promo()),
			SAN:       chess.AlgebraicNotation{}.Encode(pos, &m),
		})
	}
	return out
}

func (e *ChessEngine) Move(from, to string, promotion model.PieceKind) error {
	if !model.ValidSquare(from) || !model.ValidSquare(to) {
		return fmt.Errorf("%w: %s%s", model.ErrIllegalMoveAttempt, from, to)
	}
	s1, s2 := toChessSquare(from), toChessSquare(to)

	for _, m := range e.game.ValidMoves() {
		if m.S1() != s1 || m.S2() != s2 {
			continue
		}
		if m.Promo() != chess.NoPieceType && m.Promo() != toPieceType(promotion) {
			continue
		}
		if err := e.game.Move(&m, nil); err != nil {
			return fmt.Errorf("%w: %s%s: %v", model.ErrIllegalMoveAttempt, from, to, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s%s", model.ErrIllegalMoveAttempt, from, to)
}

func (e *ChessEngine) Snapshot() string {
	return e.game.FEN()
}

func (e *ChessEngine) Turn() model.Color {
	if e.game.Position().Turn() == chess.White {
		return model.White
	}
	return model.Black
}

// History encodes each main-line move against the position it was played
// from. Positions() starts with the initial position, so positions[i]
// precedes moves[i].
func (e *ChessEngine) History() []string {
	moves := e.game.Moves()
	positions := e.game.Positions()

	out := make([]string, 0, len(moves))
	for i, m := range moves {
		if i >= len(positions) {
			break
		}
		out = append(out, chess.AlgebraicNotation{}.Encode(positions[i], m))
	}
	return out
}

func (e *ChessEngine) Outcome() string {
	return e.game.Outcome().String()
}

func toChessSquare(name string) chess.Square {
	row, col := model.FromSquare(name)
	return chess.Square((7-row)*8 + col)
}

func fromChessSquare(sq chess.Square) string {
	return model.ToSquare(7-int(sq.Rank()), int(sq.File()))
}

func toPieceType(kind model.PieceKind) chess.PieceType {
	switch kind {
	case model.Queen:
		return chess.Queen
	case model.Rook:
		return chess.Rook
	case model.Bishop:
		return chess.Bishop
	case model.Knight:
		return chess.Knight
	}
	return chess.NoPieceType
}

func fromPieceType(pt chess.PieceType) model.PieceKind {
	switch pt {
	case chess.Queen:
		return model.Queen
	case chess.Rook:
		return model.Rook
	case chess.Bishop:
		return model.Bishop
	case chess.Knight:
		return model.Knight
	}
	return model.NoKind
}
