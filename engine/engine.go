package engine

import (
	"goban/experiments/metrics"
	"goban/game"
)

const MaxMoves = 1000

type Engine interface {
	// Run plays a game till it is decided or a max number of moves is reached
	Run(moveLimit int) (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
