// Package view projects board state into something a client can draw: a
// JSON-friendly cell grid and an SVG rendering of it.
package view

import (
	"strconv"

	"github.com/benbeisheim/chessboard-backend/internal/model"
)

// Source is what a view needs from the state machine.
type Source interface {
	Grid() model.Grid
	State() model.InteractionState
	History() []model.MovePair
	SideToMove() model.Color
	Outcome() string
}

type Cell struct {
	Row       int           `json:"row"`
	Col       int           `json:"col"`
	Square    string        `json:"square"`
	Piece     model.PieceID `json:"piece,omitempty"`
	Asset     string        `json:"asset,omitempty"`
	Shaded    bool          `json:"shaded"`
	Selected  bool          `json:"selected,omitempty"`
	Legal     bool          `json:"legal,omitempty"`   // empty legal destination
	Capture   bool          `json:"capture,omitempty"` // occupied legal destination
	FileLabel string        `json:"fileLabel,omitempty"`
	RankLabel string        `json:"rankLabel,omitempty"`
}

type BoardView struct {
	Cells       [8][8]Cell       `json:"cells"`
	Selected    string           `json:"selected,omitempty"`
	Targets     []string         `json:"targets"`
	History     []model.MovePair `json:"history"`
	HistoryText []string         `json:"historyText"`
	SideToMove  string           `json:"sideToMove"`
	Outcome     string           `json:"outcome"`
	Theme       Theme            `json:"theme"`
	Chrome      Chrome           `json:"chrome"`
	Board       BoardColors      `json:"board"`
}

func Build(src Source, theme Theme, assets PieceAssets) BoardView {
	grid := src.Grid()
	state := src.State()
	history := src.History()

	v := BoardView{
		Selected:    state.Origin,
		Targets:     state.Legal.Sorted(),
		History:     history,
		HistoryText: make([]string, len(history)),
		SideToMove:  src.SideToMove().String(),
		Outcome:     src.Outcome(),
		Theme:       theme,
		Chrome:      theme.Chrome(),
		Board:       DefaultBoardColors,
	}
	for i, p := range history {
		v.HistoryText[i] = p.String()
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			square := model.ToSquare(row, col)
			piece := grid[row][col]
			legal := state.IsLegal(square)

			cell := Cell{
				Row:      row,
				Col:      col,
				Square:   square,
				Piece:    piece,
				Shaded:   (row+col)%2 == 0,
				Selected: square == state.Origin,
				Legal:    legal && piece == model.NoPiece,
				Capture:  legal && piece != model.NoPiece,
			}
			if piece != model.NoPiece {
				cell.Asset = assets.For(piece)
			}
			if row == 7 {
				cell.FileLabel = square[:1]
			}
			if col == 0 {
				cell.RankLabel = strconv.Itoa(8 - row)
			}
			v.Cells[row][col] = cell
		}
	}
	return v
}
