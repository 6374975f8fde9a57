package game

import (
	"fmt"
	"goban/utils"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	MinSize   = 2
	MaxSize   = 19
	MaxStride = MaxSize + 2 // one border point on each side
	MaxPoints = MaxStride * MaxStride

	DefaultKomi = 7.5
)

var debugChecks = os.Getenv("DEBUG") == "1"

// Position is a Go board with incremental chain bookkeeping. It holds only
// fixed-size arrays and an immutable hash table pointer, so assigning a
// Position produces an independent copy that can be mutated freely.
type Position struct {
	size    int
	stride  int
	points  int // stride * stride, the used prefix of the arrays below
	komi    float64
	zobrist *Zobrist
	checks  bool

	board     [MaxPoints]Color
	roots     [MaxPoints]uint16 // chain root per stone, 0 for non-stones
	liberties [MaxPoints]uint16 // authoritative only at a root
	sizes     [MaxPoints]uint16 // authoritative only at a root

	hash   uint64
	koHash [4]uint64 // indexed by Color, hash right after that colour's last stone
	ply    int
	passes int // consecutive passes
	result Result

	blackCount int
	whiteCount int
	emptyCount int

	dirs  [4]int // N, E, S, W
	diags [4]int
}

type Option func(p *Position)

func WithKomi(komi float64) Option {
	return func(p *Position) {
		p.komi = komi
	}
}

// WithZobrist shares an existing hash table. Positions compared by hash must
// use the same table.
func WithZobrist(z *Zobrist) Option {
	return func(p *Position) {
		if z != nil {
			p.zobrist = z
		}
	}
}

// WithZobristSeed gives the position its own deterministic hash table.
func WithZobristSeed(seed uint64) Option {
	return func(p *Position) {
		p.zobrist = NewZobrist(seed)
	}
}

// WithInvariantChecks re-verifies the full bookkeeping after every committed
// move and panics on the first inconsistency. Slow; meant for tests and debugging.
func WithInvariantChecks(enabled bool) Option {
	return func(p *Position) {
		p.checks = enabled
	}
}

// NewPosition returns an empty board of the given size with Black to move.
func NewPosition(size int, options ...Option) (Position, error) {
	if size < MinSize || size > MaxSize {
		return Position{}, errors.Wrapf(ErrInvalidSize, "size %d not in [%d, %d]", size, MinSize, MaxSize)
	}

	stride := size + 2
	p := Position{
		size:   size,
		stride: stride,
		points: stride * stride,
		komi:   DefaultKomi,
		checks: debugChecks,
		dirs:   [4]int{-stride, 1, stride, -1},
		diags:  [4]int{-stride - 1, -stride + 1, stride + 1, stride - 1},
	}
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			p.board[row*stride+col] = Empty
		}
	}
	p.emptyCount = size * size

	for _, option := range options {
		option(&p)
	}
	if p.zobrist == nil {
		p.zobrist = DefaultZobrist()
	}
	return p, nil
}

// NewPositionFromStones builds a setup position. Stones are added without
// advancing the ply counter; a setup in which any stone would be captured or
// any group would have no liberties is rejected.
func NewPositionFromStones(size int, black, white []Move, toMove Color, options ...Option) (Position, error) {
	p, err := NewPosition(size, options...)
	if err != nil {
		return Position{}, err
	}

	add := func(stones []Move, c Color) error {
		for _, m := range stones {
			if !p.onBoard(m) || p.board[m] != Empty {
				return errors.Wrapf(ErrInvalidSetup, "%s stone at %d is off-board or doubled", c, m)
			}
			p.updateChains(m, c)
			p.setPoint(m, c)
		}
		return nil
	}
	if err := add(black, Black); err != nil {
		return Position{}, err
	}
	if err := add(white, White); err != nil {
		return Position{}, err
	}

	if p.blackCount != len(black) || p.whiteCount != len(white) {
		return Position{}, errors.Wrap(ErrInvalidSetup, "setup captures stones")
	}
	if err := p.Verify(); err != nil {
		return Position{}, errors.Wrap(ErrInvalidSetup, err.Error())
	}

	switch toMove {
	case Black:
	case White:
		p.ply = 1
	default:
		return Position{}, errors.Wrapf(ErrInvalidSetup, "cannot give the move to %s", toMove)
	}
	return p, nil
}

func (p *Position) Size() int         { return p.size }
func (p *Position) Stride() int       { return p.stride }
func (p *Position) NumPoints() int    { return p.points }
func (p *Position) Komi() float64     { return p.komi }
func (p *Position) Hash() StateHash   { return StateHash(p.hash) }
func (p *Position) Ply() int          { return p.ply }
func (p *Position) Result() Result    { return p.result }
func (p *Position) Zobrist() *Zobrist { return p.zobrist }

// ToMove returns the colour whose turn it is. Black moves on even plies.
func (p *Position) ToMove() Color {
	if p.ply%2 == 0 {
		return Black
	}
	return White
}

// Counts returns the number of black stones, white stones and empty points.
func (p *Position) Counts() (black, white, empty int) {
	return p.blackCount, p.whiteCount, p.emptyCount
}

// At returns the content of a point. Indices outside the array read as border.
func (p *Position) At(m Move) Color {
	if m < 0 || int(m) >= p.points {
		return OffBoard
	}
	return p.board[m]
}

// GroupRoot returns the representative index of the chain through m, or
// NoMove if m holds no stone.
func (p *Position) GroupRoot(m Move) Move {
	if !p.isStone(m) {
		return NoMove
	}
	return Move(p.roots[m])
}

// Liberties returns the liberty count of the chain through m.
func (p *Position) Liberties(m Move) int {
	if !p.isStone(m) {
		return 0
	}
	return int(p.liberties[p.roots[m]])
}

// GroupSize returns the number of stones in the chain through m.
func (p *Position) GroupSize(m Move) int {
	if !p.isStone(m) {
		return 0
	}
	return int(p.sizes[p.roots[m]])
}

// Index converts zero-based interior coordinates to a flat index.
func (p *Position) Index(row, col int) (Move, error) {
	if row < 0 || row >= p.size || col < 0 || col >= p.size {
		return NoMove, errors.Wrapf(ErrOffBoard, "(%d, %d) on a %dx%d board", row, col, p.size, p.size)
	}
	return Move((row+1)*p.stride + col + 1), nil
}

// MustIndex is Index for coordinates known to be valid.
func (p *Position) MustIndex(row, col int) Move {
	m, err := p.Index(row, col)
	if err != nil {
		panic(err)
	}
	return m
}

// Coords is the inverse of Index.
func (p *Position) Coords(m Move) (row, col int) {
	return int(m)/p.stride - 1, int(m)%p.stride - 1
}

// Interior lists every playable index in row-major order.
func (p *Position) Interior() []Move {
	moves := make([]Move, 0, p.size*p.size)
	for row := 1; row <= p.size; row++ {
		for col := 1; col <= p.size; col++ {
			moves = append(moves, Move(row*p.stride+col))
		}
	}
	return moves
}

// FormatMove names a move by its zero-based coordinates.
func (p *Position) FormatMove(m Move) string {
	switch m {
	case Pass:
		return "pass"
	case Resign:
		return "resign"
	}
	if !p.onBoard(m) {
		return fmt.Sprintf("offboard(%d)", m)
	}
	row, col := p.Coords(m)
	return fmt.Sprintf("(%d, %d)", row, col)
}

// String draws the board one row per line with its border: '#' border,
// 'O' black, 'X' white, '.' empty.
func (p *Position) String() string {
	var sb strings.Builder
	for i := 0; i < p.points; i++ {
		switch p.board[i] {
		case OffBoard:
			sb.WriteByte('#')
		case Empty:
			sb.WriteByte('.')
		case Black:
			sb.WriteByte('O')
		case White:
			sb.WriteByte('X')
		}
		if (i+1)%p.stride == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (p *Position) onBoard(m Move) bool {
	return m > 0 && int(m) < p.points && p.board[m] != OffBoard
}

func (p *Position) isStone(m Move) bool {
	if m < 0 || int(m) >= p.points {
		return false
	}
	c := p.board[m]
	return c == Black || c == White
}

// neighbours counts the orthogonal neighbours of m by content.
func (p *Position) neighbours(m Move) (edges, empty, black, white int) {
	for _, d := range p.dirs {
		switch p.board[int(m)+d] {
		case OffBoard:
			edges++
		case Empty:
			empty++
		case Black:
			black++
		case White:
			white++
		}
	}
	return edges, empty, black, white
}

// setPoint changes the content of a point, keeping the hash and counters in
// step. Emptying a point gives one liberty back to each distinct adjacent chain.
func (p *Position) setPoint(m Move, value Color) {
	current := p.board[m]
	p.hash ^= p.zobrist.stone(m, current)
	p.hash ^= p.zobrist.stone(m, value)
	p.board[m] = value

	switch current {
	case Empty:
		p.emptyCount--
	case Black:
		p.blackCount--
	case White:
		p.whiteCount--
	}
	switch value {
	case Empty:
		p.emptyCount++
	case Black:
		p.blackCount++
	case White:
		p.whiteCount++
	}

	if value != Empty {
		return
	}
	var seen [4]uint16
	n := 0
	for _, d := range p.dirs {
		root := p.roots[int(m)+d]
		if root == 0 || utils.Contains(seen[:n], root) {
			continue
		}
		seen[n] = root
		n++
		p.liberties[root]++
	}
}
