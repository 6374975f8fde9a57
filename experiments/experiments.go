package experiments

import (
	"goban/engine"
	"goban/experiments/metrics"
	"goban/game"
	"goban/searcher"
	"goban/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Settings shared by every game of an experiment.
type Settings struct {
	Size      int
	Komi      float64
	Games     int // per matchup
	MoveLimit int
	Seed      uint64
	OutDir    string
}

// RunDepthExperiment pairs alpha-beta agents of increasing depth against a
// random baseline. Colours alternate between games.
func RunDepthExperiment(s Settings, maxDepth int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Depth: depth, TieBreak: searcher.DefaultTieBreak, Local: true}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", s, configs, matchUps, true)
}

func runExperiment(name string, s Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, alternate bool) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < s.Games; i++ {
			black, white := matchup[0], matchup[1]
			if alternate && i%2 == 1 {
				black, white = white, black
			}
			count++

			result, gameMetric, moveMetrics, err := runGame(s, black, white, s.Seed+uint64(count))
			if err != nil {
				return "", err
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with result: %s", mi+1, len(matchUps), i+1, s.Games, result)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(s.OutDir, name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", errors.Wrap(err, "failed to store agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", errors.Wrap(err, "failed to store game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", errors.Wrap(err, "failed to store move records")
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return writer.Dir(), nil
}

// runGame plays a single game, black agent first.
func runGame(s Settings, black, white metrics.AgentConfig, seed uint64) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	pos, err := game.NewPosition(s.Size, game.WithKomi(s.Komi))
	if err != nil {
		return game.Undecided, metrics.GameMetric{}, nil, err
	}
	agents := []agent.Agent{
		createAgent(black, seed),
		createAgent(white, seed+1),
	}

	result, gameMetric, moveMetrics := engine.LocalEngine(agents, pos).Run(s.MoveLimit)
	return result, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Depth <= 0 {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{
		searcher.WithSeed(seed),
		searcher.WithTieBreak(config.TieBreak),
		searcher.WithMetrics(),
	}
	if config.Local {
		options = append(options, searcher.WithLocalMoves())
	}
	if config.Area {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateArea))
	}
	if config.NoPruning {
		options = append(options, searcher.WithoutPruning())
	}
	return agent.NewEvaluationAgent(searcher.NewAlphaBeta(options...), config.Depth)
}
