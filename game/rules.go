package game

// Place plays colour c at m, or one of the Pass/Resign sentinels. It reports
// false and leaves the position untouched when the game is over, c is not the
// side to move, the point is off-board or occupied, the move is suicide, or it
// would recreate the board that followed c's previous stone.
func (p *Position) Place(m Move, c Color) bool {
	if c != p.ToMove() {
		return false
	}
	next := *p
	if !next.apply(m, c) {
		return false
	}
	if next.checks {
		next.mustVerify(m)
	}
	*p = next
	return true
}

// Play returns the position after the side to move plays m. The receiver is
// never modified.
func (p *Position) Play(m Move) (Position, bool) {
	next := *p
	if !next.apply(m, p.ToMove()) {
		return Position{}, false
	}
	if next.checks {
		next.mustVerify(m)
	}
	return next, true
}

// Legal reports whether the side to move may play m.
func (p *Position) Legal(m Move) bool {
	next := *p
	return next.apply(m, p.ToMove())
}

// apply plays m for c in place. On failure the receiver may be left half
// updated, so callers always work on a copy.
func (p *Position) apply(m Move, c Color) bool {
	if p.result != Undecided {
		return false
	}

	switch m {
	case Pass:
		p.ply++
		p.passes++
		if p.passes >= 2 {
			p.result = p.decide()
		}
		return true
	case Resign:
		p.ply++
		p.result = winner(c.Opponent())
		return true
	}

	if !p.onBoard(m) || p.board[m] != Empty {
		return false
	}
	if p.isSuicide(m, c) {
		return false
	}

	p.updateChains(m, c)
	p.setPoint(m, c)

	// Ko: only the mover's own most recent position is remembered.
	if p.hash == p.koHash[c] {
		return false
	}
	p.koHash[c] = p.hash
	p.ply++
	p.passes = 0
	return true
}

// isSuicide uses the liberty counts from before the stone at m is placed. The
// move lives if m has an empty neighbour, joins a chain with a spare liberty,
// or takes the last liberty of an opponent chain.
func (p *Position) isSuicide(m Move, c Color) bool {
	for _, d := range p.dirs {
		neighbour := int(m) + d
		switch p.board[neighbour] {
		case OffBoard:
		case Empty:
			return false
		case c:
			if p.liberties[p.roots[neighbour]] > 1 {
				return false
			}
		default:
			if p.liberties[p.roots[neighbour]] < 2 {
				return false
			}
		}
	}
	return true
}

func (p *Position) decide() Result {
	score := p.Score()
	switch {
	case score > 0:
		return BlackWins
	case score < 0:
		return WhiteWins
	}
	return Draw
}

func winner(c Color) Result {
	if c == Black {
		return BlackWins
	}
	return WhiteWins
}
