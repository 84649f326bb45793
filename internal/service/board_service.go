package service

import (
	"fmt"
	"io"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/rules"
	"github.com/benbeisheim/chessboard-backend/internal/view"
)

type BoardService struct {
	manager *SessionManager
}

func NewBoardService(manager *SessionManager) *BoardService {
	return &BoardService{
		manager: manager,
	}
}

// CreateBoard starts a new board, from the standard position when fen is
// empty.
func (bs *BoardService) CreateBoard(fen string) (string, error) {
	var engine rules.Engine
	if fen == "" {
		engine = rules.NewChessEngine()
	} else {
		e, err := rules.NewChessEngineFromFEN(fen)
		if err != nil {
			return "", fmt.Errorf("failed to create board: %w", err)
		}
		engine = e
	}

	session, err := bs.manager.CreateSession(engine)
	if err != nil {
		return "", fmt.Errorf("failed to create board: %w", err)
	}
	return session.ID, nil
}

func (bs *BoardService) GetView(boardID string) (view.BoardView, error) {
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return view.BoardView{}, err
	}
	return session.View(), nil
}

func (bs *BoardService) WriteSVG(boardID string, w io.Writer) error {
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return err
	}
	session.WriteSVG(w)
	return nil
}

// HandleGesture takes coordinates as they arrive off the wire. Only a
// release may leave them out.
func (bs *BoardService) HandleGesture(boardID string, gesture string, row, col *int) (view.BoardView, error) {
	g, err := ParseGesture(gesture)
	if err != nil {
		return view.BoardView{}, err
	}
	r, c := -1, -1
	if g != GestureRelease {
		if row == nil || col == nil {
			return view.BoardView{}, fmt.Errorf("%w: %s needs row and col", model.ErrInvalidGestureTarget, g)
		}
		r, c = *row, *col
	}
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return view.BoardView{}, err
	}
	return session.HandleGesture(g, r, c)
}

func (bs *BoardService) SetTheme(boardID string, dark bool) (view.BoardView, error) {
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return view.BoardView{}, err
	}
	return session.SetTheme(view.Theme{Dark: dark}), nil
}

// ApplyTheme sets the theme, or toggles it when dark is nil.
func (bs *BoardService) ApplyTheme(boardID string, dark *bool) (view.BoardView, error) {
	if dark == nil {
		return bs.ToggleTheme(boardID)
	}
	return bs.SetTheme(boardID, *dark)
}

func (bs *BoardService) ToggleTheme(boardID string) (view.BoardView, error) {
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return view.BoardView{}, err
	}
	return session.ToggleTheme(), nil
}

func (bs *BoardService) RegisterConnection(boardID string, viewerID string, conn Conn) error {
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(viewerID, conn)
}

func (bs *BoardService) UnregisterConnection(boardID string, viewerID string, conn Conn) {
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return
	}
	session.UnregisterConnection(viewerID, conn)
}

func (bs *BoardService) SendError(boardID string, viewerID string, msg string) {
	session, err := bs.manager.GetSession(boardID)
	if err != nil {
		return
	}
	session.SendError(viewerID, msg)
}
