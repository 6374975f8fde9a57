package searcher

import (
	"goban/experiments/metrics"
	"goban/game"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *AlphaBeta)

// AlphaBeta is a fixed-depth minimax searcher. Black maximises the
// evaluation and White minimises it.
type AlphaBeta struct {
	evaluate game.Evaluate
	rng      *rand.Rand
	tieBreak float64
	local    bool
	prune    bool
	metrics  metrics.Collector
	orders   map[int][]game.Move // ordering table per board size
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

// WithSeed makes tie-breaking reproducible.
func WithSeed(seed uint64) Option {
	return func(a *AlphaBeta) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTieBreak sets the probability that a move scoring exactly as well as
// the incumbent replaces it. Zero keeps the first best move in search order.
func WithTieBreak(probability float64) Option {
	return func(a *AlphaBeta) {
		if probability >= 0 && probability <= 1 {
			a.tieBreak = probability
		}
	}
}

// WithLocalMoves restricts candidates to empty points next to a stone,
// diagonals included.
func WithLocalMoves() Option {
	return func(a *AlphaBeta) {
		a.local = true
	}
}

// WithoutPruning searches the full minimax tree.
func WithoutPruning() Option {
	return func(a *AlphaBeta) {
		a.prune = false
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		evaluate: game.EvaluateHeuristic,
		tieBreak: DefaultTieBreak,
		prune:    true,
		metrics:  metrics.NewDummyCollector(),
		orders:   make(map[int][]game.Move),
	}
	for _, option := range options {
		option(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a
}

// searchContext carries everything constant across one search.
type searchContext struct {
	evaluate game.Evaluate
	order    []game.Move
	rng      *rand.Rand
	tieBreak float64
	local    bool
	prune    bool
	metrics  metrics.Collector
}

// BestMove searches depth plies ahead and returns the chosen move with its
// minimax value. Pass is returned when the side to move has no legal point.
func (a *AlphaBeta) BestMove(pos *game.Position, depth int) (game.Move, float64, error) {
	move, value, _, err := a.Search(pos, depth)
	return move, value, err
}

// Search is BestMove plus the metrics gathered while searching.
func (a *AlphaBeta) Search(pos *game.Position, depth int) (game.Move, float64, metrics.SearchMetric, error) {
	if depth < 1 {
		return game.NoMove, 0, metrics.SearchMetric{}, errors.Wrapf(ErrInvalidDepth, "got %d", depth)
	}

	ctx := &searchContext{
		evaluate: a.evaluate,
		order:    a.order(pos.Size()),
		rng:      a.rng,
		tieBreak: a.tieBreak,
		local:    a.local,
		prune:    a.prune,
		metrics:  a.metrics,
	}

	a.metrics.Start(depth)
	move, value := search(ctx, pos, depth, MinScore, MaxScore)
	metric := a.metrics.Complete(value)

	log.Debug().
		Int("depth", depth).
		Str("player", pos.ToMove().String()).
		Str("move", pos.FormatMove(move)).
		Float64("value", value).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Msg("search complete")
	return move, value, metric, nil
}

func search(ctx *searchContext, pos *game.Position, depth int, alpha, beta float64) (game.Move, float64) {
	ctx.metrics.AddNode()
	if depth == 0 {
		return game.NoMove, ctx.evaluate(pos)
	}

	maximising := pos.ToMove() == game.Black
	best := game.Pass
	bestValue := MaxScore
	if maximising {
		bestValue = MinScore
	}
	found := false

	for _, m := range candidates(ctx, pos) {
		next, ok := pos.Play(m)
		if !ok {
			continue
		}
		// With tie-breaking on, the incumbent value is kept inside the child
		// window so that an equal result is exact and not a cutoff bound.
		childAlpha, childBeta := alpha, beta
		if found && ctx.tieBreak > 0 {
			if maximising {
				childAlpha = math.Nextafter(alpha, MinScore)
			} else {
				childBeta = math.Nextafter(beta, MaxScore)
			}
		}
		_, value := search(ctx, &next, depth-1, childAlpha, childBeta)

		switch {
		case !found,
			maximising && value > bestValue,
			!maximising && value < bestValue:
			best, bestValue, found = m, value, true
		case value == bestValue && (!ctx.prune || value > childAlpha && value < childBeta) &&
			ctx.tieBreak > 0 && ctx.rng.Float64() < ctx.tieBreak:
			best = m
		}

		if maximising {
			if bestValue > alpha {
				alpha = bestValue
			}
			if ctx.prune && bestValue >= beta {
				ctx.metrics.AddCutoff()
				break
			}
		} else {
			if bestValue < beta {
				beta = bestValue
			}
			if ctx.prune && bestValue <= alpha {
				ctx.metrics.AddCutoff()
				break
			}
		}
	}

	if !found {
		return game.Pass, ctx.evaluate(pos)
	}
	return best, bestValue
}
