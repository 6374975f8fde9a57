package agent

import (
	"goban/experiments/metrics"
	"goban/game"
	"goban/searcher"
)

type evaluationAgent struct {
	alphaBeta *searcher.AlphaBeta
	depth     int
}

// NewEvaluationAgent returns an agent that plays the alpha-beta best move at a fixed depth.
func NewEvaluationAgent(alphaBeta *searcher.AlphaBeta, depth int) Agent {
	return evaluationAgent{alphaBeta: alphaBeta, depth: depth}
}

func (a evaluationAgent) FindMove(pos *game.Position) (game.Move, metrics.SearchMetric, error) {
	move, _, metric, err := a.alphaBeta.Search(pos, a.depth)
	return move, metric, err
}
