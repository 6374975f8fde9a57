// meta/meta.go
package meta

// BOARD_SIZE defines the default board size.
const BOARD_SIZE = 5

// DEPTH defines the default alpha-beta search depth.
const DEPTH = 3

// MAX_MOVES caps the number of plies in a single game.
const MAX_MOVES = 300

const KOMI = 7.5

// GAMES defines the number of games per matchup in experiments.
const GAMES = 10
