package board

// corner rook-start squares, used to detect when a side's rook leaves or is
// captured on its home square.
var (
	whiteQueenRookHome = NewSquare(7, 0)
	whiteKingRookHome  = NewSquare(7, 7)
	blackQueenRookHome = NewSquare(0, 0)
	blackKingRookHome  = NewSquare(0, 7)
)

// MakeMove applies m if and only if it is in the current legal move set,
// mutating State and pushing enough history to reverse it exactly.
// Returns false (state untouched) for an illegal move, per spec §7: the
// executor rejects rather than silently half-applying.
func (s *State) MakeMove(m Move) bool {
	legal := GenerateLegalMoves(s)

	var canonical Move
	found := false
	for _, lm := range legal {
		if lm.Equals(m) {
			canonical = lm
			found = true
			break
		}
	}
	if !found {
		return false
	}

	s.applyMove(canonical)

	// Refresh checkmate/stalemate for the resulting position, not the one
	// just validated against: the flags must describe the side now on move,
	// not the side that just moved.
	GenerateLegalMoves(s)
	return true
}

func (s *State) applyMove(m Move) {
	mover := s.sideToMove
	prevCastling := s.castling
	prevEP := s.ep

	s.squares[m.From] = empty

	switch m.Type {
	case EnPassant:
		captured := NewSquare(m.From.Row(), m.To.Col())
		s.squares[captured] = empty
		s.place(m.To, mover, Pawn)
	case Promotion, CapturePromotion:
		s.place(m.To, mover, Queen)
	default:
		s.place(m.To, mover, m.Piece)
	}

	if m.Piece == King {
		s.setKingSquare(mover, m.To)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castlingRookSquares(m)
		s.squares[rookFrom] = empty
		s.place(rookTo, mover, Rook)
	}

	newCastling := s.castling
	if m.Piece == King {
		if mover == White {
			newCastling = newCastling.Revoke(WhiteKingSideCastle | WhiteQueenSideCastle)
		} else {
			newCastling = newCastling.Revoke(BlackKingSideCastle | BlackQueenSideCastle)
		}
	}
	// A rook leaving or being captured on its home square revokes that
	// side's right, whichever happens first (spec §9: the corrected rule
	// also clears rights on rook capture, not only on rook moves).
	newCastling = revokeRookHome(newCastling, m.From)
	newCastling = revokeRookHome(newCastling, m.To)
	s.castling = newCastling

	if m.Type == Jump {
		mid := (m.From.Row() + m.To.Row()) / 2
		s.ep = NewSquare(mid, m.From.Col())
	} else {
		s.ep = NoSquare
	}

	s.history = append(s.history, histEntry{move: m, prevCastling: prevCastling, prevEP: prevEP})
	s.castleLog = append(s.castleLog, s.castling)

	s.sideToMove = mover.Opponent()
}

// UndoMove reverses the last executed move exactly, restoring board, side
// to move, castling rights, en-passant target and king squares. No-op if
// there is no history (spec §6/§7: not an error).
func (s *State) UndoMove() bool {
	n := len(s.history)
	if n == 0 {
		return false
	}

	e := s.history[n-1]
	m := e.move
	mover := s.sideToMove.Opponent()

	s.squares[m.From] = content{Color: mover, Piece: m.Piece}

	switch m.Type {
	case EnPassant:
		s.squares[m.To] = empty
		captured := NewSquare(m.From.Row(), m.To.Col())
		s.squares[captured] = content{Color: mover.Opponent(), Piece: Pawn}
	default:
		if m.Capture != NoPiece {
			s.squares[m.To] = content{Color: mover.Opponent(), Piece: m.Capture}
		} else {
			s.squares[m.To] = empty
		}
	}

	if m.Piece == King {
		s.setKingSquare(mover, m.From)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castlingRookSquares(m)
		s.squares[rookTo] = empty
		s.place(rookFrom, mover, Rook)
	}

	s.castleLog = s.castleLog[:len(s.castleLog)-1]
	s.castling = e.prevCastling
	s.ep = e.prevEP

	s.history = s.history[:n-1]
	s.sideToMove = mover

	// Refresh checkmate/stalemate for the restored position, same as MakeMove.
	GenerateLegalMoves(s)

	return true
}

func (s *State) setKingSquare(c Color, sq Square) {
	if c == White {
		s.whiteKing = sq
	} else {
		s.blackKing = sq
	}
}

// castlingRookSquares returns the rook's origin and destination for a
// castling move, computed from the king's destination per spec §4.3 step 8.
func castlingRookSquares(m Move) (from, to Square) {
	row := m.To.Row()
	if m.Type == KingSideCastle {
		return NewSquare(row, m.To.Col()+1), NewSquare(row, m.To.Col()-1)
	}
	return NewSquare(row, m.To.Col()-2), NewSquare(row, m.To.Col()+1)
}

func revokeRookHome(c Castling, sq Square) Castling {
	switch sq {
	case whiteQueenRookHome:
		return c.Revoke(WhiteQueenSideCastle)
	case whiteKingRookHome:
		return c.Revoke(WhiteKingSideCastle)
	case blackQueenRookHome:
		return c.Revoke(BlackQueenSideCastle)
	case blackKingRookHome:
		return c.Revoke(BlackKingSideCastle)
	default:
		return c
	}
}
