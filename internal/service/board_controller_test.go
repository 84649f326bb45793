package service

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/rules"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedEngine answers with fixed moves and switches to afterMove once a
// move is applied.
type scriptedEngine struct {
	snapshot  string
	afterMove string
	turn      model.Color
	moves     map[string][]rules.MoveDescriptor
	moveErr   error
	history   []string
}

func (s *scriptedEngine) Moves(square string) []rules.MoveDescriptor { return s.moves[square] }
func (s *scriptedEngine) Snapshot() string                           { return s.snapshot }
func (s *scriptedEngine) Turn() model.Color                          { return s.turn }
func (s *scriptedEngine) History() []string                          { return s.history }
func (s *scriptedEngine) Outcome() string                            { return "*" }

func (s *scriptedEngine) Move(from, to string, promotion model.PieceKind) error {
	if s.moveErr != nil {
		return s.moveErr
	}
	s.snapshot = s.afterMove
	s.turn = s.turn.Opposite()
	s.history = append(s.history, from+to)
	return nil
}

func newController(t *testing.T, fen string) *BoardController {
	t.Helper()
	var engine rules.Engine = rules.NewChessEngine()
	if fen != "" {
		e, err := rules.NewChessEngineFromFEN(fen)
		require.NoError(t, err)
		engine = e
	}
	bc, err := NewBoardController(rules.NewAdapter(engine))
	require.NoError(t, err)
	return bc
}

func gesture(bc *BoardController, g Gesture, square string) {
	row, col := model.FromSquare(square)
	bc.Handle(g, row, col)
}

func assertArmed(t *testing.T, bc *BoardController, origin string, legal ...string) {
	t.Helper()
	state := bc.State()
	require.False(t, state.IsIdle(), "expected %s to be armed", origin)
	assert.Equal(t, origin, state.Origin)
	if legal == nil {
		legal = []string{}
	}
	if diff := cmp.Diff(model.NewSquareSet(legal...).Sorted(), state.Legal.Sorted()); diff != "" {
		t.Errorf("legal set mismatch (-want +got):\n%s", diff)
	}
}

func assertIdle(t *testing.T, bc *BoardController) {
	t.Helper()
	state := bc.State()
	assert.True(t, state.IsIdle(), "expected idle, armed on %s", state.Origin)
	assert.Equal(t, 0, state.Legal.Len())
}

func TestClickArmAndCommit(t *testing.T) {
	bc := newController(t, "")

	gesture(bc, GestureClick, "e2")
	assertArmed(t, bc, "e2", "e3", "e4")
	assert.False(t, bc.State().IsLegal("e1"))

	gesture(bc, GestureClick, "e4")
	assertIdle(t, bc)
	assert.Equal(t, model.Black, bc.SideToMove())
	assert.Equal(t, []model.MovePair{{Number: 1, White: "e4"}}, bc.History())
	assert.Equal(t, model.WhitePawn, bc.Grid().At("e4"))
	assert.Equal(t, model.NoPiece, bc.Grid().At("e2"))
}

func TestDragArmAndCommit(t *testing.T) {
	bc := newController(t, "")

	gesture(bc, GestureDragStart, "e2")
	assertArmed(t, bc, "e2", "e3", "e4")

	gesture(bc, GestureDragOver, "e3")
	assertArmed(t, bc, "e2", "e3", "e4")

	gesture(bc, GestureDrop, "e4")
	assertIdle(t, bc)
	assert.Equal(t, model.Black, bc.SideToMove())
	assert.Equal(t, []model.MovePair{{Number: 1, White: "e4"}}, bc.History())
}

func TestArmingRequiresOwnPiece(t *testing.T) {
	for _, g := range []Gesture{GestureClick, GestureDragStart} {
		t.Run(string(g), func(t *testing.T) {
			bc := newController(t, "")
			before := bc.Grid()

			gesture(bc, g, "e7")
			assertIdle(t, bc)

			gesture(bc, g, "e4")
			assertIdle(t, bc)

			assert.Equal(t, before, bc.Grid())
			assert.Equal(t, model.White, bc.SideToMove())
			assert.Empty(t, bc.History())
		})
	}
}

func TestBlackPieceOnBlacksTurn(t *testing.T) {
	bc := newController(t, "")
	gesture(bc, GestureClick, "e2")
	gesture(bc, GestureClick, "e4")

	gesture(bc, GestureClick, "e2")
	assertIdle(t, bc)

	gesture(bc, GestureClick, "c7")
	assertArmed(t, bc, "c7", "c6", "c5")
	gesture(bc, GestureClick, "c5")
	assertIdle(t, bc)
	assert.Equal(t, []model.MovePair{{Number: 1, White: "e4", Black: "c5"}}, bc.History())
}

func TestClickReselectsFriendlyPiece(t *testing.T) {
	bc := newController(t, "")

	gesture(bc, GestureClick, "e2")
	assertArmed(t, bc, "e2", "e3", "e4")

	gesture(bc, GestureClick, "g1")
	assertArmed(t, bc, "g1", "f3", "h3")

	gesture(bc, GestureClick, "g1")
	assertArmed(t, bc, "g1", "f3", "h3")

	gesture(bc, GestureClick, "f3")
	assertIdle(t, bc)
	assert.Equal(t, model.WhiteKnight, bc.Grid().At("f3"))
	assert.Equal(t, []model.MovePair{{Number: 1, White: "Nf3"}}, bc.History())
}

func TestDropDoesNotReselect(t *testing.T) {
	bc := newController(t, "")

	gesture(bc, GestureDragStart, "e2")
	gesture(bc, GestureDrop, "g1")
	assertIdle(t, bc)
	assert.Empty(t, bc.History())

	// A new drag start re-arms from scratch regardless of prior state.
	gesture(bc, GestureClick, "e2")
	gesture(bc, GestureDragStart, "b1")
	assertArmed(t, bc, "b1", "a3", "c3")
}

func TestCancel(t *testing.T) {
	bc := newController(t, "")

	gesture(bc, GestureClick, "e2")
	gesture(bc, GestureClick, "e5")
	assertIdle(t, bc)

	gesture(bc, GestureClick, "e2")
	gesture(bc, GestureClick, "d7")
	assertIdle(t, bc)

	gesture(bc, GestureDragStart, "e2")
	bc.Handle(GestureRelease, -1, -1)
	assertIdle(t, bc)

	gesture(bc, GestureDragStart, "e2")
	bc.Handle(GestureRelease, 0, 0)
	assertIdle(t, bc)

	assert.Empty(t, bc.History())
	assert.Equal(t, model.White, bc.SideToMove())
}

func TestArmPieceWithoutMoves(t *testing.T) {
	bc := newController(t, "")

	gesture(bc, GestureClick, "a1")
	assertArmed(t, bc, "a1")

	gesture(bc, GestureClick, "a3")
	assertIdle(t, bc)

	gesture(bc, GestureClick, "a1")
	gesture(bc, GestureClick, "b1")
	assertArmed(t, bc, "b1", "a3", "c3")
}

func TestPromotionAlwaysQueens(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		drag     bool
		want     model.PieceID
	}{
		{"white click", "8/P7/8/8/8/8/8/k6K w - - 0 1", "a7", "a8", false, model.WhiteQueen},
		{"white drag", "8/P7/8/8/8/8/8/k6K w - - 0 1", "a7", "a8", true, model.WhiteQueen},
		{"black click", "k6K/8/8/8/8/8/p7/8 b - - 0 1", "a2", "a1", false, model.BlackQueen},
		{"white capture", "1r6/P7/8/8/8/8/8/k6K w - - 0 1", "a7", "b8", false, model.WhiteQueen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := newController(t, tt.fen)
			if tt.drag {
				gesture(bc, GestureDragStart, tt.from)
				gesture(bc, GestureDrop, tt.to)
			} else {
				gesture(bc, GestureClick, tt.from)
				gesture(bc, GestureClick, tt.to)
			}
			assertIdle(t, bc)
			assert.Equal(t, tt.want, bc.Grid().At(tt.to))
			assert.Equal(t, model.NoPiece, bc.Grid().At(tt.from))
		})
	}
}

func TestRejectedCommitReturnsIdle(t *testing.T) {
	engine := &scriptedEngine{
		snapshot: model.StartingSnapshot,
		turn:     model.White,
		moves:    map[string][]rules.MoveDescriptor{"e2": {{From: "e2", To: "e4"}}},
		moveErr:  errors.New("engine disagrees"),
	}
	bc, err := NewBoardController(rules.NewAdapter(engine))
	require.NoError(t, err)
	before := bc.Grid()

	gesture(bc, GestureClick, "e2")
	assertArmed(t, bc, "e2", "e4")
	gesture(bc, GestureClick, "e4")

	assertIdle(t, bc)
	assert.Equal(t, before, bc.Grid())
	assert.Equal(t, model.StartingSnapshot, engine.snapshot)
	assert.Equal(t, model.White, bc.SideToMove())
}

func TestMalformedSnapshotKeepsGrid(t *testing.T) {
	engine := &scriptedEngine{
		snapshot:  model.StartingSnapshot,
		afterMove: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP w KQkq - 0 1",
		turn:      model.White,
		moves:     map[string][]rules.MoveDescriptor{"e2": {{From: "e2", To: "e4"}}},
	}
	bc, err := NewBoardController(rules.NewAdapter(engine))
	require.NoError(t, err)
	before := bc.Grid()

	gesture(bc, GestureDrop, "e4")
	assertIdle(t, bc)

	gesture(bc, GestureDragStart, "e2")
	gesture(bc, GestureDrop, "e4")

	assertIdle(t, bc)
	assert.Equal(t, before, bc.Grid())
	assert.Equal(t, []model.MovePair{{Number: 1, White: "e2e4"}}, bc.History())
}

func TestNewBoardControllerRejectsMalformedSnapshot(t *testing.T) {
	engine := &scriptedEngine{snapshot: "not a fen", turn: model.White}
	_, err := NewBoardController(rules.NewAdapter(engine))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMalformedSnapshot))
}

func TestOffGridGesturePanics(t *testing.T) {
	bc := newController(t, "")
	assert.Panics(t, func() { bc.Handle(GestureClick, 8, 0) })
	assert.Panics(t, func() { bc.Handle(GestureDrop, 0, -1) })
	assert.NotPanics(t, func() { bc.Handle(GestureDragOver, 99, 99) })
}

func TestParseGesture(t *testing.T) {
	for _, s := range []string{"click", "dragstart", "dragover", "drop", "release"} {
		g, err := ParseGesture(s)
		require.NoError(t, err)
		assert.Equal(t, Gesture(s), g)
	}
	_, err := ParseGesture("doubleclick")
	assert.ErrorIs(t, err, ErrUnknownGesture)
}
