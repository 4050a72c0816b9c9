// Package fen contains utilities for reading and writing positions in FEN
// notation, for constructing arbitrary test/debug positions.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pyidrissa/chessgame/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new State and the halfmove/fullmove counters from a FEN
// record. The counters are not part of State (spec's Game state tracks
// move_log/castle_rights_log, not draw-rule counters) so they are returned
// alongside it for callers that want them.
func Decode(s string) (*board.State, int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 6 {
		return nil, 0, 0, fmt.Errorf("invalid number of sections in FEN: %q", s)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid FEN %q: %w", s, err)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, fmt.Errorf("invalid active color in FEN: %q", s)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, fmt.Errorf("invalid castling in FEN: %q", s)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("invalid en passant in FEN: %q: %w", s, err)
		}
		ep = sq
	}

	np, err := strconv.Atoi(parts[4])
	if err != nil || np < 0 {
		return nil, 0, 0, fmt.Errorf("invalid halfmove clock in FEN: %q", s)
	}

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, 0, 0, fmt.Errorf("invalid fullmove number in FEN: %q", s)
	}

	st, err := board.NewState(placements, turn, castling, ep)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid position in FEN %q: %w", s, err)
	}
	return st, np, fm, nil
}

// Encode renders a position in FEN notation.
func Encode(s *board.State, noprogress, fullmoves int) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		blanks := 0
		for col := 0; col < 8; col++ {
			color, piece, ok := s.PieceAt(board.NewSquare(row, col))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(color, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if row < 7 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := s.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(s.SideToMove()), printCastling(s.CastlingRights()), ep, noprogress, fullmoves)
}

func decodePlacement(str string) ([]board.Placement, error) {
	var placements []board.Placement

	rows := strings.Split(str, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("invalid number of ranks: %q", str)
	}

	for row, rank := range rows {
		col := 0
		for _, r := range rank {
			switch {
			case unicode.IsDigit(r):
				col += int(r - '0')
			case unicode.IsLetter(r):
				color, piece, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", r)
				}
				if col >= 8 {
					return nil, fmt.Errorf("too many squares in rank %q", rank)
				}
				placements = append(placements, board.Placement{Square: board.NewSquare(row, col), Color: color, Piece: piece})
				col++
			default:
				return nil, fmt.Errorf("invalid character %q in FEN", r)
			}
		}
		if col != 8 {
			return nil, fmt.Errorf("invalid number of squares in rank %q", rank)
		}
	}
	return placements, nil
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling
	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	if c == 0 {
		return "-"
	}
	var sb strings.Builder
	if c.IsAllowed(board.WhiteKingSideCastle) {
		sb.WriteString("K")
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		sb.WriteString("Q")
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		sb.WriteString("k")
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		sb.WriteString("q")
	}
	return sb.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	if p, ok := board.ParsePiece(unicode.ToLower(r)); ok {
		if unicode.IsUpper(r) {
			return board.White, p, true
		}
		return board.Black, p, true
	}
	return 0, 0, false
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
