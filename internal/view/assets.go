package view

import (
	"strings"

	"github.com/benbeisheim/chessboard-backend/internal/model"
)

const DefaultPieceAssetBase = "https://chessboardjs.com/img/chesspieces/wikipedia"

// PieceAssets maps each piece identifier to an image URL.
type PieceAssets map[model.PieceID]string

// NewPieceAssets uses the wikipedia set naming: wP.png, bK.png, ...
func NewPieceAssets(base string) PieceAssets {
	base = strings.TrimRight(base, "/")
	assets := make(PieceAssets, 12)
	for _, c := range []byte("PNBRQKpnbrqk") {
		p := model.PieceID(c)
		assets[p] = base + "/" + string(p.Color()) + strings.ToUpper(string(c)) + ".png"
	}
	return assets
}

func (a PieceAssets) For(p model.PieceID) string {
	return a[p]
}
