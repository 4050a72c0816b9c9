package board_test

import (
	"testing"

	"github.com/pyidrissa/chessgame/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartingPosition(t *testing.T) {
	s := board.New()

	assert.Equal(t, board.White, s.SideToMove())
	assert.Equal(t, board.FullCastingRights, s.CastlingRights())

	_, ok := s.EnPassant()
	assert.False(t, ok)

	e1, _ := board.ParseSquare("e1")
	e8, _ := board.ParseSquare("e8")
	assert.Equal(t, e1, s.KingSquare(board.White))
	assert.Equal(t, e8, s.KingSquare(board.Black))

	c, p, ok := s.PieceAt(e1)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.King, p)
}

func TestNewStateRejectsMissingKing(t *testing.T) {
	a1, _ := board.ParseSquare("a1")
	_, err := board.NewState([]board.Placement{
		{Square: a1, Color: board.Black, Piece: board.King},
	}, board.White, 0, board.NoSquare)
	assert.Error(t, err)
}

func TestNewStateRejectsTwoKingsSameColor(t *testing.T) {
	a1, _ := board.ParseSquare("a1")
	a8, _ := board.ParseSquare("a8")
	h8, _ := board.ParseSquare("h8")
	_, err := board.NewState([]board.Placement{
		{Square: a1, Color: board.White, Piece: board.King},
		{Square: a8, Color: board.White, Piece: board.King},
		{Square: h8, Color: board.Black, Piece: board.King},
	}, board.White, 0, board.NoSquare)
	assert.Error(t, err)
}

func TestNewStateRejectsAdjacentKings(t *testing.T) {
	e1, _ := board.ParseSquare("e1")
	e2, _ := board.ParseSquare("e2")
	_, err := board.NewState([]board.Placement{
		{Square: e1, Color: board.White, Piece: board.King},
		{Square: e2, Color: board.Black, Piece: board.King},
	}, board.White, 0, board.NoSquare)
	assert.Error(t, err)
}

func TestNewStateRejectsDuplicatePlacement(t *testing.T) {
	e1, _ := board.ParseSquare("e1")
	e8, _ := board.ParseSquare("e8")
	_, err := board.NewState([]board.Placement{
		{Square: e1, Color: board.White, Piece: board.King},
		{Square: e1, Color: board.White, Piece: board.Queen},
		{Square: e8, Color: board.Black, Piece: board.King},
	}, board.White, 0, board.NoSquare)
	assert.Error(t, err)
}
