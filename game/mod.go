package game

// Color is the content of a single point on the board.
type Color uint8

const (
	OffBoard Color = iota // border sentinel around the playable interior
	Empty
	Black
	White
)

// Opponent returns the other player's colour. Non-stone colours return themselves.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return c
}

func (c Color) String() string {
	switch c {
	case OffBoard:
		return "offboard"
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "unknown"
}

// Move is a flat board index that already includes the border offset, or one
// of the reserved sentinels below.
type Move int

const (
	NoMove Move = 0  // index 0 is always border, never playable
	Pass   Move = -1 // play nothing, hand the turn over
	Resign Move = -2 // concede the game
)

func (m Move) IsSentinel() bool {
	return m == Pass || m == Resign
}

// Result is the terminal outcome of a game.
type Result int

const (
	Undecided Result = iota
	BlackWins
	WhiteWins
	Draw
)

func (r Result) String() string {
	switch r {
	case BlackWins:
		return "black"
	case WhiteWins:
		return "white"
	case Draw:
		return "draw"
	}
	return "undecided"
}

type StateHash uint64

// Evaluate scores a position from Black's perspective: positive favours Black,
// negative favours White.
type Evaluate func(*Position) float64
