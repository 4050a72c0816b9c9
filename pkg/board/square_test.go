package board_test

import (
	"testing"

	"github.com/pyidrissa/chessgame/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	assert.Equal(t, board.Square(0), board.NewSquare(0, 0))
	assert.Equal(t, board.Square(4), board.NewSquare(0, 4))
	assert.Equal(t, board.Square(63), board.NewSquare(7, 7))
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in  string
		row int
		col int
	}{
		{"a8", 0, 0},
		{"e1", 7, 4},
		{"h1", 7, 7},
		{"e4", 4, 4},
	}

	for _, tt := range tests {
		sq, err := board.ParseSquare(tt.in)
		require.NoError(t, err)
		assert.Equal(t, board.NewSquare(tt.row, tt.col), sq)
		assert.Equal(t, tt.in, sq.String())
	}
}

func TestParseSquareInvalid(t *testing.T) {
	tests := []string{"", "e", "e99", "z4", "i1"}
	for _, tt := range tests {
		_, err := board.ParseSquare(tt)
		assert.Error(t, err)
	}
}

func TestSquareRankFile(t *testing.T) {
	sq := board.NewSquare(6, 0) // a2
	assert.Equal(t, 2, sq.Rank())
	assert.Equal(t, board.FileA, sq.File())
}

func TestNoSquareString(t *testing.T) {
	assert.Equal(t, "-", board.NoSquare.String())
	assert.False(t, board.NoSquare.IsValid())
}
