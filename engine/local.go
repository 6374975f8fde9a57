package engine

import (
	"fmt"
	"goban/experiments/metrics"
	"goban/game"
	"goban/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	Position game.Position
	Agents   [2]agent.Agent // Black, White
}

// LocalEngine pits two agents against each other from pos. The first agent
// plays Black.
func LocalEngine(agents []agent.Agent, pos game.Position) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	for _, a := range agents {
		if a == nil {
			panic("agent must not be nil")
		}
	}
	return &Local{
		Position: pos,
		Agents:   [2]agent.Agent{agents[0], agents[1]},
	}
}

// Run executes the game loop until the game is decided or moveLimit plies
// have been played.
func (e *Local) Run(moveLimit int) (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	if moveLimit <= 0 || moveLimit > MaxMoves {
		moveLimit = MaxMoves
	}

	start := time.Now()
	log.Info().Msgf("starting %dx%d game with %s to move", e.Position.Size(), e.Position.Size(), e.Position.ToMove())

	var moveMetrics []metrics.MoveMetric
	for step := 1; step <= moveLimit && e.Position.Result() == game.Undecided; step++ {
		player := e.Position.ToMove()
		current := e.Agents[0]
		if player == game.White {
			current = e.Agents[1]
		}

		move, searchMetric, err := current.FindMove(&e.Position)
		if err != nil {
			panic(fmt.Sprintf("%s agent failed to find a move: %v", player, err))
		}
		if !e.Position.Place(move, player) {
			panic(fmt.Sprintf("%s agent returned illegal move %d", player, move))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		if event := log.Debug(); event.Enabled() {
			event.Msgf("step %d: %s plays %s\n%s", step, player, e.Position.FormatMove(move), e.Position.String())
		}
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Result:     e.Position.Result(),
		Score:      e.Position.Score(),
		AreaScore:  e.Position.AreaScore(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: len(moveMetrics),
	}
	log.Info().Msgf("game over after %d moves: result %s, score %.1f, area %.1f",
		gameMetric.TotalMoves, gameMetric.Result, gameMetric.Score, gameMetric.AreaScore)
	return e.Position.Result(), gameMetric, moveMetrics
}
