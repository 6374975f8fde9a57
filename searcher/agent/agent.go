package agent

import (
	"goban/experiments/metrics"
	"goban/game"
)

type Agent interface {
	// FindMove returns the move to play for the side to move and the search metrics (if collected)
	FindMove(pos *game.Position) (game.Move, metrics.SearchMetric, error)
}
