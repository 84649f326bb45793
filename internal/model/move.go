package model

import "fmt"

// MoveRecord is one applied ply as reported by the rules engine.
type MoveRecord struct {
	Ply      int    `json:"ply"`
	Notation string `json:"notation"`
}

// MovePair is one numbered line of the transcript. It is derived on every
// render and never stored.
type MovePair struct {
	Number int    `json:"number"`
	White  string `json:"white"`
	Black  string `json:"black"`
}

func (p MovePair) String() string {
	if p.Black == "" {
		return fmt.Sprintf("%d. %s", p.Number, p.White)
	}
	return fmt.Sprintf("%d. %s %s", p.Number, p.White, p.Black)
}

// PairMoves groups plies two at a time, white first. Numbering starts at 1
// regardless of any numbers inside the notation strings.
func PairMoves(moves []string) []MovePair {
	pairs := make([]MovePair, 0, (len(moves)+1)/2)
	for i := 0; i < len(moves); i += 2 {
		pair := MovePair{Number: i/2 + 1, White: moves[i]}
		if i+1 < len(moves) {
			pair.Black = moves[i+1]
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

func Notations(records []MoveRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Notation
	}
	return out
}
