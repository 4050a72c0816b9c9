package board

// GenerateLegalMoves enumerates every legal move in the current position
// (spec §4.2). It is a pure function of State (no memoization) and, as a
// side effect, refreshes the checkmate/stalemate flags per §4.2.5.
//
// The algorithm is pin-and-check pre-analysis, not "make move and test for
// self-check": analyzeKingSafety classifies every pin and every checker up
// front, and piece-wise generation below is filtered against that
// classification rather than re-deriving it per candidate move. The one
// exception is en passant, which is checked against the board it would
// produce (a transient change undone before the function returns).
func GenerateLegalMoves(s *State) []Move {
	c := s.sideToMove
	ks := analyzeKingSafety(s, c)

	var moves []Move
	moves = append(moves, kingMoves(s, c)...)

	switch {
	case len(ks.Checks) >= 2:
		// Double check: only king moves can possibly be legal.
	case len(ks.Checks) == 1:
		moves = append(moves, legalNonKingMoves(s, c, ks)...)
	default:
		moves = append(moves, legalNonKingMoves(s, c, ks)...)
		moves = append(moves, castlingMoves(s, c)...)
	}

	s.checkmate, s.stalemate = false, false
	if len(moves) == 0 {
		if ks.InCheck() {
			s.checkmate = true
		} else {
			s.stalemate = true
		}
	}
	return moves
}

// legalNonKingMoves generates every legal move for every piece other than
// the king: pseudo-legal moves filtered by the pin map (case A and the
// pinned-piece exception within case B) and, if in single check, by the
// block/capture set (case B).
func legalNonKingMoves(s *State, c Color, ks kingSafety) []Move {
	pinned := map[Square]dir{}
	for _, p := range ks.Pins {
		pinned[p.Sq] = p.Dir
	}

	var blockSet map[Square]bool
	var checkerSq Square = NoSquare
	if len(ks.Checks) == 1 {
		blockSet = blockSquares(s.KingSquare(c), ks.Checks[0])
		checkerSq = ks.Checks[0].Sq
	}

	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		color, piece, ok := s.PieceAt(sq)
		if !ok || color != c || piece == King {
			continue
		}

		for _, m := range pseudoLegalPieceMoves(s, sq, piece, c) {
			if pd, isPinned := pinned[sq]; isPinned && !moveAlongPinDir(m.From, m.To, pd) {
				continue
			}
			if blockSet != nil && !resolvesCheck(m, checkerSq, blockSet) {
				continue
			}
			// En passant vacates two squares at once (origin and captured pawn),
			// which the pin scan cannot account for: test the resulting board.
			if m.Type == EnPassant {
				captured := NewSquare(m.From.Row(), m.To.Col())
				saved := s.squares[captured]
				s.squares[m.From], s.squares[captured] = empty, empty
				s.place(m.To, c, Pawn)
				exposed := isSquareAttacked(s, s.KingSquare(c), c.Opponent(), NoSquare)
				s.squares[m.To] = empty
				s.place(m.From, c, Pawn)
				s.squares[captured] = saved
				if exposed {
					continue
				}
			}
			moves = append(moves, m)
		}
	}
	return moves
}

// blockSquares returns the set of squares that capture or block the given
// checker: just the checker's square for a knight check, or the checker's
// square plus every square strictly between king and checker for a slider
// or adjacent (pawn) check.
func blockSquares(king Square, chk checker) map[Square]bool {
	set := map[Square]bool{chk.Sq: true}
	if chk.IsKnight {
		return set
	}

	r, c := king.Row()+chk.Dir.dr, king.Col()+chk.Dir.dc
	for NewSquare(r, c) != chk.Sq {
		set[NewSquare(r, c)] = true
		r += chk.Dir.dr
		c += chk.Dir.dc
	}
	return set
}

// resolvesCheck reports whether move m captures the checker or blocks its
// ray. En passant is the one case where a capture's destination square
// differs from the captured piece's square, so it is checked separately.
func resolvesCheck(m Move, checkerSq Square, blockSet map[Square]bool) bool {
	if m.Type == EnPassant {
		captured := NewSquare(m.From.Row(), m.To.Col())
		return captured == checkerSq
	}
	return blockSet[m.To]
}

// moveAlongPinDir reports whether the displacement from->to is a scalar
// multiple of pd (in either orientation): a pinned piece may move only
// along ±its pin direction.
func moveAlongPinDir(from, to Square, pd dir) bool {
	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	if dr == 0 && dc == 0 {
		return false
	}
	return dr*pd.dc == dc*pd.dr
}

// pseudoLegalPieceMoves dispatches to the per-piece-kind generator. King
// moves are handled separately by kingMoves since they are never subject
// to a pin and instead run their own attacked-square test.
func pseudoLegalPieceMoves(s *State, sq Square, piece Piece, c Color) []Move {
	switch piece {
	case Pawn:
		return pawnMoves(s, sq, c)
	case Knight:
		return jumpMoves(s, sq, c, knightOffsets[:])
	case Bishop:
		return slideMoves(s, sq, c, true, false)
	case Rook:
		return slideMoves(s, sq, c, false, true)
	case Queen:
		return slideMoves(s, sq, c, true, true)
	default:
		return nil
	}
}

func pawnMoves(s *State, sq Square, c Color) []Move {
	var moves []Move

	forward, startRow, promoRow := -1, 6, 0
	if c == Black {
		forward, startRow, promoRow = 1, 1, 7
	}

	row, col := sq.Row(), sq.Col()

	if r := row + forward; inBounds(r, col) {
		to := NewSquare(r, col)
		if s.isEmpty(to) {
			moves = append(moves, pawnAdvance(sq, to, promoRow, Push))

			if row == startRow {
				if r2 := row + 2*forward; inBounds(r2, col) {
					to2 := NewSquare(r2, col)
					if s.isEmpty(to2) {
						moves = append(moves, Move{Type: Jump, From: sq, To: to2, Piece: Pawn})
					}
				}
			}
		}

		for _, dc := range [2]int{-1, 1} {
			cc := col + dc
			if !inBounds(r, cc) {
				continue
			}
			to := NewSquare(r, cc)

			if color, captured, ok := s.PieceAt(to); ok {
				if color != c {
					moves = append(moves, pawnCapture(sq, to, captured, promoRow))
				}
				continue
			}
			if ep, isEP := s.EnPassant(); isEP && to == ep {
				moves = append(moves, Move{Type: EnPassant, From: sq, To: to, Piece: Pawn, Capture: Pawn})
			}
		}
	}

	return moves
}

func pawnAdvance(from, to Square, promoRow int, t MoveType) Move {
	if to.Row() == promoRow {
		return Move{Type: Promotion, From: from, To: to, Piece: Pawn, Promotion: Queen}
	}
	return Move{Type: t, From: from, To: to, Piece: Pawn}
}

func pawnCapture(from, to Square, captured Piece, promoRow int) Move {
	if to.Row() == promoRow {
		return Move{Type: CapturePromotion, From: from, To: to, Piece: Pawn, Capture: captured, Promotion: Queen}
	}
	return Move{Type: Capture, From: from, To: to, Piece: Pawn, Capture: captured}
}

func jumpMoves(s *State, sq Square, c Color, offsets []([2]int)) []Move {
	var moves []Move
	row, col := sq.Row(), sq.Col()

	for _, o := range offsets {
		r, cc := row+o[0], col+o[1]
		if !inBounds(r, cc) {
			continue
		}
		to := NewSquare(r, cc)
		moves = appendOccupancyMove(moves, s, sq, to, c)
	}
	return moves
}

func slideMoves(s *State, sq Square, c Color, diag, ortho bool) []Move {
	var moves []Move
	row, col := sq.Row(), sq.Col()

	for _, d := range rayDirs {
		if d.diag && !diag {
			continue
		}
		if !d.diag && !ortho {
			continue
		}

		for k := 1; k < 8; k++ {
			r, cc := row+d.dr*k, col+d.dc*k
			if !inBounds(r, cc) {
				break
			}
			to := NewSquare(r, cc)

			if s.isEmpty(to) {
				moves = append(moves, Move{Type: Normal, From: sq, To: to, Piece: pieceOf(s, sq)})
				continue
			}

			if color, captured, _ := s.PieceAt(to); color != c {
				moves = append(moves, Move{Type: Capture, From: sq, To: to, Piece: pieceOf(s, sq), Capture: captured})
			}
			break // friendly or (now-recorded) enemy piece stops the ray
		}
	}
	return moves
}

// kingMoves generates the king's 8 adjacent-square moves, each tested by
// tentatively vacating the king's origin square (via the ignore parameter
// of isSquareAttacked) so that a slider whose ray passed through the king
// correctly reaches further squares once the king steps away.
func kingMoves(s *State, c Color) []Move {
	var moves []Move
	sq := s.KingSquare(c)
	row, col := sq.Row(), sq.Col()
	enemy := c.Opponent()

	for _, o := range kingOffsets {
		r, cc := row+o[0], col+o[1]
		if !inBounds(r, cc) {
			continue
		}
		to := NewSquare(r, cc)

		color, captured, occupied := s.PieceAt(to)
		if occupied && color == c {
			continue
		}
		if isSquareAttacked(s, to, enemy, sq) {
			continue
		}

		if occupied {
			moves = append(moves, Move{Type: Capture, From: sq, To: to, Piece: King, Capture: captured})
		} else {
			moves = append(moves, Move{Type: Normal, From: sq, To: to, Piece: King})
		}
	}
	return moves
}

// castlingMoves generates the 0-2 legal castling moves, per spec §4.2.4.
// Only called when the side to move is not in check.
func castlingMoves(s *State, c Color) []Move {
	row := 7
	kingSideRight, queenSideRight := WhiteKingSideCastle, WhiteQueenSideCastle
	if c == Black {
		row = 0
		kingSideRight, queenSideRight = BlackKingSideCastle, BlackQueenSideCastle
	}

	king := NewSquare(row, 4)
	enemy := c.Opponent()
	var moves []Move

	if s.castling.IsAllowed(kingSideRight) {
		f, g := NewSquare(row, 5), NewSquare(row, 6)
		if s.isEmpty(f) && s.isEmpty(g) &&
			!isSquareAttacked(s, king, enemy, NoSquare) &&
			!isSquareAttacked(s, f, enemy, NoSquare) &&
			!isSquareAttacked(s, g, enemy, NoSquare) {
			moves = append(moves, Move{Type: KingSideCastle, From: king, To: g, Piece: King})
		}
	}

	if s.castling.IsAllowed(queenSideRight) {
		d, cc, b := NewSquare(row, 3), NewSquare(row, 2), NewSquare(row, 1)
		if s.isEmpty(d) && s.isEmpty(cc) && s.isEmpty(b) &&
			!isSquareAttacked(s, king, enemy, NoSquare) &&
			!isSquareAttacked(s, d, enemy, NoSquare) &&
			!isSquareAttacked(s, cc, enemy, NoSquare) {
			moves = append(moves, Move{Type: QueenSideCastle, From: king, To: cc, Piece: King})
		}
	}

	return moves
}

func appendOccupancyMove(moves []Move, s *State, from, to Square, c Color) []Move {
	color, captured, occupied := s.PieceAt(to)
	if occupied && color == c {
		return moves
	}
	if occupied {
		return append(moves, Move{Type: Capture, From: from, To: to, Piece: pieceOf(s, from), Capture: captured})
	}
	return append(moves, Move{Type: Normal, From: from, To: to, Piece: pieceOf(s, from)})
}

func pieceOf(s *State, sq Square) Piece {
	_, p, _ := s.PieceAt(sq)
	return p
}
