package board_test

import (
	"testing"

	"github.com/pyidrissa/chessgame/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)

	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	assert.Equal(t, e2, m.From)
	assert.Equal(t, e4, m.To)
}

func TestParseMoveInvalid(t *testing.T) {
	_, err := board.ParseMove("e2e")
	assert.Error(t, err)

	_, err = board.ParseMove("z9e4")
	assert.Error(t, err)
}

func TestMoveEqualsIgnoresPromotion(t *testing.T) {
	a, err := board.ParseSquare("e7")
	require.NoError(t, err)
	b, err := board.ParseSquare("e8")
	require.NoError(t, err)

	m1 := board.Move{Type: board.Promotion, From: a, To: b, Piece: board.Pawn, Promotion: board.Queen}
	m2 := board.Move{From: a, To: b}
	assert.True(t, m1.Equals(m2))
}

func TestMoveClassification(t *testing.T) {
	assert.True(t, board.Move{Type: board.Capture}.IsCapture())
	assert.True(t, board.Move{Type: board.CapturePromotion}.IsCapture())
	assert.True(t, board.Move{Type: board.EnPassant}.IsCapture())
	assert.False(t, board.Move{Type: board.Normal}.IsCapture())

	assert.True(t, board.Move{Type: board.Promotion}.IsPromotion())
	assert.True(t, board.Move{Type: board.CapturePromotion}.IsPromotion())
	assert.False(t, board.Move{Type: board.Push}.IsPromotion())

	assert.True(t, board.Move{Type: board.KingSideCastle}.IsCastle())
	assert.True(t, board.Move{Type: board.QueenSideCastle}.IsCastle())
	assert.False(t, board.Move{Type: board.Normal}.IsCastle())
}

func TestMoveString(t *testing.T) {
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	m := board.Move{From: e2, To: e4}
	assert.Equal(t, "e2e4", m.String())
}
