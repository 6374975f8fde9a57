package game

const (
	EyeBonus           = 3 // per one-point eye
	WeakGroupLiberties = 3 // groups with fewer liberties count their stones against them
	ChainShift         = 3 // damping of the sum-of-squares group bonus
)

// EvaluateHeuristic is the stone/liberty heuristic used by default in search.
func EvaluateHeuristic(p *Position) float64 {
	return p.Score()
}

// EvaluateArea scores by area instead of the heuristic.
func EvaluateArea(p *Position) float64 {
	return p.AreaScore()
}

// IsEye returns the colour owning m as a one-point eye, or Empty. All four
// orthogonal neighbours must be that colour or border, and at least two
// diagonals too. False eyes pass this test.
func (p *Position) IsEye(m Move) Color {
	if p.At(m) != Empty {
		return Empty
	}
	edges, _, black, white := p.neighbours(m)

	var c Color
	switch {
	case black+edges == 4:
		c = Black
	case white+edges == 4:
		c = White
	default:
		return Empty
	}

	diagonals := 0
	for _, d := range p.diags {
		switch p.board[int(m)+d] {
		case c, OffBoard:
			diagonals++
		}
		if diagonals >= 2 {
			return c
		}
	}
	return Empty
}

// Score is a heuristic evaluation from Black's perspective. Each chain
// contributes its liberties, minus its stones when it has fewer than
// WeakGroupLiberties; the squared chain sizes add a damped bonus for large
// connected groups; each eye is worth EyeBonus. Komi is charged to Black.
func (p *Position) Score() float64 {
	var blackLiberties, whiteLiberties int
	var blackChains, whiteChains int
	var blackEyes, whiteEyes int

	for i := 0; i < p.points; i++ {
		switch p.IsEye(Move(i)) {
		case Black:
			blackEyes++
		case White:
			whiteEyes++
		}

		size := int(p.sizes[i])
		if size == 0 {
			continue
		}
		libs := int(p.liberties[i])
		value := libs
		if libs < WeakGroupLiberties {
			value -= size
		}
		switch p.board[i] {
		case Black:
			blackLiberties += value
			blackChains += size * size
		case White:
			whiteLiberties += value
			whiteChains += size * size
		}
	}

	score := blackLiberties - whiteLiberties +
		blackChains>>ChainShift - whiteChains>>ChainShift +
		EyeBonus*(blackEyes-whiteEyes)
	return float64(score) - p.komi
}

// AreaScore counts stones plus the empty regions that reach only one colour.
// Regions touching both colours, or neither, are neutral. Dead stones are not
// removed.
func (p *Position) AreaScore() float64 {
	black, white := p.blackCount, p.whiteCount

	var visited [MaxPoints]bool
	stack := make([]int, 0, p.size*p.size)
	for i := 0; i < p.points; i++ {
		if p.board[i] != Empty || visited[i] {
			continue
		}

		region := 0
		touchesBlack, touchesWhite := false, false
		stack = append(stack[:0], i)
		visited[i] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region++
			for _, d := range p.dirs {
				next := current + d
				switch p.board[next] {
				case Black:
					touchesBlack = true
				case White:
					touchesWhite = true
				case Empty:
					if !visited[next] {
						visited[next] = true
						stack = append(stack, next)
					}
				}
			}
		}

		switch {
		case touchesBlack && !touchesWhite:
			black += region
		case touchesWhite && !touchesBlack:
			white += region
		}
	}

	return float64(black-white) - p.komi
}
