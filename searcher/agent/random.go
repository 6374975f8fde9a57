package agent

import (
	"goban/experiments/metrics"
	"goban/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly among the legal
// points and passes when there are none.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(pos *game.Position) (game.Move, metrics.SearchMetric, error) {
	legal := []game.Move{}
	for _, m := range pos.Interior() {
		if pos.Legal(m) {
			legal = append(legal, m)
		}
	}
	if len(legal) == 0 {
		return game.Pass, metrics.SearchMetric{}, nil
	}
	return legal[a.rng.Intn(len(legal))], metrics.SearchMetric{}, nil
}
