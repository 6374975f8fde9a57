package searcher

import (
	"goban/game"

	"golang.org/x/exp/slices"
)

// order returns the move checking order for a board size, building it on
// first use.
func (a *AlphaBeta) order(size int) []game.Move {
	if order, ok := a.orders[size]; ok {
		return order
	}
	order := checkingOrder(size)
	a.orders[size] = order
	return order
}

// checkingOrder sorts the interior so that strong points are tried first:
// the third and fourth lines (the centre on boards too small to have them),
// then closeness to the centre. Good moves early make more cutoffs.
func checkingOrder(size int) []game.Move {
	pos, err := game.NewPosition(size)
	if err != nil {
		panic(err)
	}

	preferred := min(2, (size-1)/2) // zero-based height of the third line
	rank := func(m game.Move) (lineRank, distance int) {
		row, col := pos.Coords(m)
		height := min(row, col, size-1-row, size-1-col)
		switch {
		case height < preferred:
			lineRank = preferred - height
		case height > preferred+1:
			lineRank = 1
		}
		// Doubled to stay integral on even sizes.
		distance = abs(2*row-(size-1)) + abs(2*col-(size-1))
		return lineRank, distance
	}

	order := pos.Interior()
	slices.SortStableFunc(order, func(a, b game.Move) int {
		lineA, distA := rank(a)
		lineB, distB := rank(b)
		if lineA != lineB {
			return lineA - lineB
		}
		return distA - distB
	})
	return order
}

// candidates filters the checking order down to the moves worth trying.
func candidates(ctx *searchContext, pos *game.Position) []game.Move {
	if !ctx.local {
		return ctx.order
	}
	black, white, _ := pos.Counts()
	if black+white == 0 {
		return ctx.order
	}

	stride := pos.Stride()
	around := [8]int{-stride - 1, -stride, -stride + 1, -1, 1, stride - 1, stride, stride + 1}
	moves := make([]game.Move, 0, len(ctx.order))
	for _, m := range ctx.order {
		if pos.At(m) != game.Empty {
			continue
		}
		for _, d := range around {
			c := pos.At(m + game.Move(d))
			if c == game.Black || c == game.White {
				moves = append(moves, m)
				break
			}
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
