package game

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Zobrist holds one random constant per point and stone colour. A table is
// immutable once built and may be shared by any number of positions.
type Zobrist struct {
	black [MaxPoints]uint64
	white [MaxPoints]uint64
}

var (
	defaultZobrist *Zobrist
	zobristOnce    sync.Once
)

// NewZobrist builds a table from a seed. Equal seeds give equal tables.
func NewZobrist(seed uint64) *Zobrist {
	r := rand.New(rand.NewSource(seed))
	z := &Zobrist{}
	for i := range z.black {
		z.black[i] = r.Uint64()
		z.white[i] = r.Uint64()
	}
	return z
}

// DefaultZobrist returns the process-wide table, built on first use.
func DefaultZobrist() *Zobrist {
	zobristOnce.Do(func() {
		defaultZobrist = NewZobrist(uint64(time.Now().UnixNano()))
	})
	return defaultZobrist
}

func (z *Zobrist) stone(idx Move, c Color) uint64 {
	switch c {
	case Black:
		return z.black[idx]
	case White:
		return z.white[idx]
	}
	return 0
}
