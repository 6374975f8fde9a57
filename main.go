package main

import (
	"flag"
	"goban/experiments"
	"goban/game"
	"goban/meta"
	"goban/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", meta.BOARD_SIZE, "Board size")
	depth := flag.Int("depth", meta.DEPTH, "Search depth in plies")
	moves := flag.Int("moves", meta.MAX_MOVES, "Maximum number of plies")
	komi := flag.Float64("komi", meta.KOMI, "Points given to White")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for tie-breaks and random agents")
	tieBreak := flag.Float64("tiebreak", searcher.DefaultTieBreak, "Probability of switching to an equally good move")
	local := flag.Bool("local", false, "Only consider moves next to existing stones")
	area := flag.Bool("area", false, "Evaluate by area score instead of the heuristic")
	debug := flag.Bool("debug", false, "Verify the position after every move")
	verbose := flag.Bool("verbose", false, "Log every move")
	experiment := flag.String("experiment", "", "Run an experiment instead of self-play: depth or pruning")
	games := flag.Int("games", meta.GAMES, "Games per matchup in experiments")
	out := flag.String("out", "experiments", "Output directory for experiment results")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment != "" {
		runExperiment(*experiment, experiments.Settings{
			Size:      *size,
			Komi:      *komi,
			Games:     *games,
			MoveLimit: *moves,
			Seed:      *seed,
			OutDir:    *out,
		}, *depth)
		return
	}

	pos, err := game.NewPosition(*size, game.WithKomi(*komi), game.WithInvariantChecks(*debug))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid position")
	}

	options := []searcher.Option{searcher.WithSeed(*seed), searcher.WithTieBreak(*tieBreak)}
	if *local {
		options = append(options, searcher.WithLocalMoves())
	}
	if *area {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateArea))
	}
	alphaBeta := searcher.NewAlphaBeta(options...)

	final, err := alphaBeta.Play(pos, *depth, *moves)
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	log.Info().Msgf("final position after %d plies, result %s, area score %.1f\n%s",
		final.Ply(), final.Result(), final.AreaScore(), final.String())
}

func runExperiment(name string, s experiments.Settings, depth int) {
	var dir string
	var err error
	switch name {
	case "depth":
		dir, err = experiments.RunDepthExperiment(s, depth)
	case "pruning":
		dir, err = experiments.RunPruningExperiment(s, depth)
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	log.Info().Msgf("results written to %s", dir)
}
