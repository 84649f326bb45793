package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPairMoves(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  []MovePair
	}{
		{"empty", []string{}, []MovePair{}},
		{"nil", nil, []MovePair{}},
		{"single", []string{"e4"}, []MovePair{{1, "e4", ""}}},
		{"odd", []string{"e4", "e5", "Nf3"}, []MovePair{{1, "e4", "e5"}, {2, "Nf3", ""}}},
		{"even", []string{"d4", "d5", "c4", "e6"}, []MovePair{{1, "d4", "d5"}, {2, "c4", "e6"}}},
		{"numbers in notation ignored", []string{"1.e4", "1...e5", "2.Nf3"}, []MovePair{{1, "1.e4", "1...e5"}, {2, "2.Nf3", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, PairMoves(tt.moves)); diff != "" {
				t.Errorf("PairMoves() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMovePairString(t *testing.T) {
	assert.Equal(t, "1. e4 e5", MovePair{1, "e4", "e5"}.String())
	assert.Equal(t, "2. Nf3", MovePair{2, "Nf3", ""}.String())
}

func TestNotations(t *testing.T) {
	records := []MoveRecord{{Ply: 1, Notation: "e4"}, {Ply: 2, Notation: "c5"}}
	assert.Equal(t, []string{"e4", "c5"}, Notations(records))
	assert.Equal(t, []string{}, Notations(nil))
}

func TestInteractionState(t *testing.T) {
	idle := Idle()
	assert.True(t, idle.IsIdle())
	assert.False(t, idle.IsLegal("e4"))

	armed := Armed("e2", NewSquareSet("e3", "e4"))
	assert.False(t, armed.IsIdle())
	assert.True(t, armed.IsLegal("e4"))
	assert.False(t, armed.IsLegal("e5"))

	stuck := Armed("a1", nil)
	assert.False(t, stuck.IsIdle())
	assert.Equal(t, 0, stuck.Legal.Len())
}
