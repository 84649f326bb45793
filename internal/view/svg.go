package view

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	squarePixels = 60
	boardPixels  = 8 * squarePixels
	piecePixels  = squarePixels * 8 / 10
	labelPadding = 2
)

// RenderSVG draws the board part of a view. Every square is a group tagged
// with data-square so pointer events can be mapped back to the grid.
func RenderSVG(w io.Writer, v BoardView) {
	canvas := svg.New(w)
	canvas.Start(boardPixels, boardPixels)
	canvas.Title("Chess board")

	colors := v.Board
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cell := v.Cells[row][col]
			x, y := col*squarePixels, row*squarePixels

			fill, label := colors.Plain, colors.LabelPlain
			if cell.Shaded {
				fill, label = colors.Shaded, colors.LabelShaded
			}

			canvas.Group(
				fmt.Sprintf(`data-square="%s"`, cell.Square),
				fmt.Sprintf(`data-row="%d"`, cell.Row),
				fmt.Sprintf(`data-col="%d"`, cell.Col),
			)
			canvas.Rect(x, y, squarePixels, squarePixels,
				fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fill, colors.Border))

			if cell.Selected {
				canvas.Rect(x+2, y+2, squarePixels-4, squarePixels-4,
					fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", colors.SelectedRing))
			}
			if cell.Asset != "" {
				offset := (squarePixels - piecePixels) / 2
				canvas.Image(x+offset, y+offset, piecePixels, piecePixels, cell.Asset,
					fmt.Sprintf(`data-piece="%s"`, cell.Piece), `draggable="true"`)
			}
			if cell.Legal {
				canvas.Circle(x+squarePixels/2, y+squarePixels/2, squarePixels/10,
					"fill:"+colors.LegalMarker)
			}
			if cell.Capture {
				canvas.Circle(x+squarePixels/2, y+squarePixels/2, squarePixels/2-3,
					fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", colors.LegalMarker))
			}
			if cell.FileLabel != "" {
				canvas.Text(x+squarePixels-labelPadding, y+squarePixels-labelPadding, cell.FileLabel,
					fmt.Sprintf("font-size:10px;font-weight:bold;text-anchor:end;fill:%s", label))
			}
			if cell.RankLabel != "" {
				canvas.Text(x+labelPadding, y+labelPadding+10, cell.RankLabel,
					fmt.Sprintf("font-size:10px;font-weight:bold;fill:%s", label))
			}
			canvas.Gend()
		}
	}
	canvas.End()
}
