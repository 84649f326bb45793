package service

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/rules"
	"github.com/gofiber/fiber/v2/log"
)

// Gesture is the abstract input tag. Click and drag events are both
// translated to one of these before they reach the state machine.
type Gesture string

const (
	GestureClick     Gesture = "click"
	GestureDragStart Gesture = "dragstart"
	GestureDragOver  Gesture = "dragover"
	GestureDrop      Gesture = "drop"
	// GestureRelease is a drag let go outside every square. It carries no
	// coordinates.
	GestureRelease Gesture = "release"
)

var ErrUnknownGesture = errors.New("unknown gesture")

func ParseGesture(s string) (Gesture, error) {
	switch g := Gesture(s); g {
	case GestureClick, GestureDragStart, GestureDragOver, GestureDrop, GestureRelease:
		return g, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownGesture, s)
}

// BoardController is the selection/drag state machine for one board. It is
// not safe for concurrent use; Session serializes access.
type BoardController struct {
	rules *rules.Adapter
	state model.InteractionState
	grid  model.Grid
}

func NewBoardController(adapter *rules.Adapter) (*BoardController, error) {
	grid, err := model.DecodeSnapshot(adapter.Snapshot())
	if err != nil {
		return nil, err
	}
	return &BoardController{
		rules: adapter,
		state: model.Idle(),
		grid:  grid,
	}, nil
}

// Handle runs one gesture on (row, col) to completion. Both input
// modalities go through here so legality and ownership checks exist once.
func (bc *BoardController) Handle(g Gesture, row, col int) {
	switch g {
	case GestureDragOver:
		return
	case GestureRelease:
		bc.state = model.Idle()
		return
	}

	square := model.ToSquare(row, col)

	switch g {
	case GestureDragStart:
		bc.arm(square)
	case GestureClick:
		if bc.state.IsLegal(square) {
			bc.commit(square)
			return
		}
		// Reselect: a friendly piece replaces the armed one directly.
		bc.arm(square)
	case GestureDrop:
		if bc.state.IsLegal(square) {
			bc.commit(square)
			return
		}
		bc.state = model.Idle()
	}
}

// arm selects square when it holds a piece of the side to move, even one
// with no legal moves. Anything else leaves the machine Idle.
func (bc *BoardController) arm(square string) {
	if !bc.rules.Owns(square) {
		bc.state = model.Idle()
		return
	}
	bc.state = model.Armed(square, bc.rules.LegalDestinations(square))
}

func (bc *BoardController) commit(target string) {
	origin := bc.state.Origin
	bc.state = model.Idle()

	snapshot, err := bc.rules.AttemptMove(origin, target)
	if err != nil {
		log.Debugf("move %s-%s rejected: %v", origin, target, err)
		return
	}
	bc.refresh(snapshot)
}

// refresh re-derives the grid. A snapshot that does not decode keeps the
// previous grid on screen.
func (bc *BoardController) refresh(snapshot string) {
	grid, err := model.DecodeSnapshot(snapshot)
	if err != nil {
		if errors.Is(err, model.ErrMalformedSnapshot) {
			log.Warnf("keeping previous board: %v", err)
		}
		return
	}
	bc.grid = grid
}

func (bc *BoardController) State() model.InteractionState {
	return bc.state
}

func (bc *BoardController) Grid() model.Grid {
	return bc.grid
}

// History is recomputed from the engine on every call.
func (bc *BoardController) History() []model.MovePair {
	return model.PairMoves(model.Notations(bc.rules.CurrentHistory()))
}

func (bc *BoardController) SideToMove() model.Color {
	return bc.rules.SideToMove()
}

func (bc *BoardController) Outcome() string {
	return bc.rules.Outcome()
}
