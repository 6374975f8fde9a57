package searcher

import (
	"fmt"
	"goban/game"

	"github.com/rs/zerolog/log"
)

// Play lets the searcher play both sides from pos until the game is decided
// or moveLimit plies have been played, and returns the final position.
func (a *AlphaBeta) Play(pos game.Position, depth, moveLimit int) (game.Position, error) {
	for i := 0; i < moveLimit && pos.Result() == game.Undecided; i++ {
		player, ply := pos.ToMove(), pos.Ply()
		move, value, err := a.BestMove(&pos, depth)
		if err != nil {
			return pos, err
		}
		if !pos.Place(move, player) {
			panic(fmt.Sprintf("searcher chose unplayable move %d for %s at ply %d", move, player, pos.Ply()))
		}
		log.Debug().Msgf("ply %d: %s plays %s (value %.1f)", ply, player, pos.FormatMove(move), value)
	}

	log.Info().Msgf("self-play stopped at ply %d with result %s, score %.1f", pos.Ply(), pos.Result(), pos.Score())
	return pos, nil
}
