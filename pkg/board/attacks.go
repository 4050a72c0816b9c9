package board

// dir is a ray direction in (row,col) steps.
type dir struct {
	dr, dc int
	diag   bool
}

// rayDirs are the 8 straight/diagonal directions scanned from a king, per
// the pin-and-check pre-analysis.
var rayDirs = [8]dir{
	{-1, 0, false}, {1, 0, false}, {0, 1, false}, {0, -1, false},
	{-1, 1, true}, {-1, -1, true}, {1, 1, true}, {1, -1, true},
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// isSquareAttacked reports whether sq is attacked by a piece of byColor.
// If ignore is a valid square, that square is treated as empty for the
// purpose of sliding-piece rays -- used to test where a king may step to,
// since the king vacates its origin square as part of the move.
//
// This is the shared ray-and-jump attack oracle (spec §9): the pin/check
// scan below records *what* attacks the king; this returns bool on first
// hit and is reused for castling and king-step legality.
func isSquareAttacked(s *State, sq Square, byColor Color, ignore Square) bool {
	row, col := sq.Row(), sq.Col()

	for _, o := range knightOffsets {
		r, c := row+o[0], col+o[1]
		if !inBounds(r, c) {
			continue
		}
		if t := NewSquare(r, c); t != ignore {
			if color, piece, ok := s.PieceAt(t); ok && color == byColor && piece == Knight {
				return true
			}
		}
	}

	for _, o := range kingOffsets {
		r, c := row+o[0], col+o[1]
		if !inBounds(r, c) {
			continue
		}
		if t := NewSquare(r, c); t != ignore {
			if color, piece, ok := s.PieceAt(t); ok && color == byColor && piece == King {
				return true
			}
		}
	}

	// Pawn attacks: a byColor pawn attacks sq from the squares diagonally
	// "behind" sq relative to that pawn's forward direction.
	pawnRow := row + 1
	if byColor == Black {
		pawnRow = row - 1
	}
	for _, dc := range [2]int{-1, 1} {
		c := col + dc
		if !inBounds(pawnRow, c) {
			continue
		}
		if t := NewSquare(pawnRow, c); t != ignore {
			if color, piece, ok := s.PieceAt(t); ok && color == byColor && piece == Pawn {
				return true
			}
		}
	}

	for _, d := range rayDirs {
		r, c := row+d.dr, col+d.dc
		for inBounds(r, c) {
			t := NewSquare(r, c)
			if t == ignore {
				r, c = r+d.dr, c+d.dc
				continue
			}
			color, piece, ok := s.PieceAt(t)
			if !ok {
				r, c = r+d.dr, c+d.dc
				continue
			}
			if color == byColor {
				if d.diag && (piece == Bishop || piece == Queen) {
					return true
				}
				if !d.diag && (piece == Rook || piece == Queen) {
					return true
				}
			}
			break // first occupied square (other than ignore) ends the ray
		}
	}

	return false
}

// pin records that the friendly piece on Sq may only move along ±Dir.
type pin struct {
	Sq  Square
	Dir dir
}

// checker records one attacker of the king and, for sliders, the direction
// from the king to the attacker (used to compute the block/capture set).
type checker struct {
	Sq       Square
	Dir      dir
	IsKnight bool
}

// kingSafety is the result of the pin-and-check pre-analysis from a king's
// square: whether it is in check, by whom, and which friendly pieces are
// pinned along which ray.
type kingSafety struct {
	Checks []checker
	Pins   []pin
}

func (k kingSafety) InCheck() bool {
	return len(k.Checks) > 0
}

// analyzeKingSafety implements spec §4.2.1: scan all 8 rays and 8 knight
// jumps outward from the king of color c, classifying the first friendly
// piece found on each ray as a pinned-piece candidate and the first enemy
// piece as a check or a pin depending on whether a friendly piece came first.
func analyzeKingSafety(s *State, c Color) kingSafety {
	king := s.KingSquare(c)
	row, col := king.Row(), king.Col()

	var ks kingSafety

	for _, d := range rayDirs {
		var candidate Square = NoSquare

		for k := 1; k < 8; k++ {
			r, cc := row+d.dr*k, col+d.dc*k
			if !inBounds(r, cc) {
				break
			}
			sq := NewSquare(r, cc)
			color, piece, ok := s.PieceAt(sq)
			if !ok {
				continue
			}

			if color == c {
				if candidate != NoSquare {
					// Second friendly piece on the ray: no pin possible.
					candidate = NoSquare
					break
				}
				candidate = sq
				continue
			}

			// First enemy piece on the ray: does it attack along d?
			attacks := false
			switch {
			case d.diag && (piece == Bishop || piece == Queen):
				attacks = true
			case !d.diag && (piece == Rook || piece == Queen):
				attacks = true
			case k == 1 && piece == Pawn:
				attacks = isPawnCheckDir(c, d)
			}

			if attacks {
				if candidate != NoSquare {
					ks.Pins = append(ks.Pins, pin{Sq: candidate, Dir: d})
				} else {
					ks.Checks = append(ks.Checks, checker{Sq: sq, Dir: d})
				}
			}
			break // enemy piece always ends the ray
		}
	}

	for _, o := range knightOffsets {
		r, cc := row+o[0], col+o[1]
		if !inBounds(r, cc) {
			continue
		}
		sq := NewSquare(r, cc)
		if color, piece, ok := s.PieceAt(sq); ok && color != c && piece == Knight {
			ks.Checks = append(ks.Checks, checker{Sq: sq, IsKnight: true})
		}
	}

	return ks
}

// isPawnCheckDir reports whether an enemy pawn one step away from the king
// of color c, along ray direction d, attacks the king. Only the two
// forward-diagonal directions relative to the enemy pawn apply: an enemy
// pawn checks along the diagonal that is "forward" for it, toward c's king.
func isPawnCheckDir(c Color, d dir) bool {
	if !d.diag {
		return false
	}
	if c == White {
		// White king is attacked by a black pawn sitting "above" it (lower row).
		return d.dr == -1
	}
	return d.dr == 1
}
