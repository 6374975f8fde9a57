package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestScore(t *testing.T) {
	t.Run("empty board is minus komi", func(t *testing.T) {
		p := newTestPosition(t, 5)
		require.Equal(t, -DefaultKomi, p.Score())
		require.Equal(t, -DefaultKomi, p.AreaScore())
	})

	t.Run("single stone counts its liberties", func(t *testing.T) {
		p := newTestPosition(t, 5, WithKomi(0))
		require.True(t, p.Place(p.MustIndex(2, 2), Black))
		require.Equal(t, 4.0, p.Score())
	})

	t.Run("weak chains lose their stones", func(t *testing.T) {
		p := newTestPosition(t, 5, WithKomi(0))
		require.True(t, p.Place(p.MustIndex(0, 0), Black))
		require.Equal(t, 1.0, p.Score(), "Corner stone: 2 liberties minus 1 stone")
	})

	t.Run("large chains earn a damped bonus", func(t *testing.T) {
		// A 3x1 black line in the middle of a 7x7 board: 8 liberties, 9>>3 = 1.
		black := []Move{idx(7, 3, 2), idx(7, 3, 3), idx(7, 3, 4)}
		p, err := NewPositionFromStones(7, black, nil, Black, WithZobristSeed(1), WithKomi(0))
		require.NoError(t, err)
		require.Equal(t, 9.0, p.Score())
	})

	t.Run("white counts against black", func(t *testing.T) {
		p := newTestPosition(t, 5, WithKomi(0))
		playAll(t, &p, p.MustIndex(2, 2), p.MustIndex(0, 0))
		// Black 4 liberties, White corner 2-1.
		require.Equal(t, 3.0, p.Score())
	})
}

func TestIsEye(t *testing.T) {
	t.Run("corner eye", func(t *testing.T) {
		black := []Move{idx(5, 0, 1), idx(5, 1, 0)}
		p, err := NewPositionFromStones(5, black, nil, Black, WithZobristSeed(1))
		require.NoError(t, err)
		require.Equal(t, Black, p.IsEye(p.MustIndex(0, 0)), "Border diagonals count")
		require.Equal(t, Empty, p.IsEye(p.MustIndex(0, 1)), "Stones are never eyes")
		require.Equal(t, Empty, p.IsEye(p.MustIndex(2, 2)))
	})

	t.Run("center eye needs two diagonals", func(t *testing.T) {
		white := []Move{idx(5, 1, 2), idx(5, 2, 1), idx(5, 2, 3), idx(5, 3, 2)}
		p, err := NewPositionFromStones(5, nil, white, Black, WithZobristSeed(1))
		require.NoError(t, err)
		center := p.MustIndex(2, 2)
		require.Equal(t, Empty, p.IsEye(center))

		q, err := NewPositionFromStones(5, nil, append(white, idx(5, 1, 1)), Black, WithZobristSeed(1))
		require.NoError(t, err)
		require.Equal(t, Empty, q.IsEye(center), "One diagonal is not enough")

		r, err := NewPositionFromStones(5, nil, append(white, idx(5, 1, 1), idx(5, 3, 3)), Black, WithZobristSeed(1))
		require.NoError(t, err)
		require.Equal(t, White, r.IsEye(center))
	})

	t.Run("mixed neighbours are not an eye", func(t *testing.T) {
		p, err := NewPositionFromStones(5, []Move{idx(5, 0, 1)}, []Move{idx(5, 1, 0)}, Black, WithZobristSeed(1))
		require.NoError(t, err)
		require.Equal(t, Empty, p.IsEye(p.MustIndex(0, 0)))
	})

	t.Run("eyes add to the score", func(t *testing.T) {
		black := []Move{idx(5, 0, 1), idx(5, 1, 0)}
		p, err := NewPositionFromStones(5, black, nil, Black, WithZobristSeed(1), WithKomi(0))
		require.NoError(t, err)
		// Two single stones with 3 liberties each plus one eye.
		require.Equal(t, float64(3+3+EyeBonus), p.Score())
	})
}

func TestAreaScore(t *testing.T) {
	t.Run("territory reaching one colour", func(t *testing.T) {
		// Black wall on column 1 of a 3x3 board owns column 0.
		black := []Move{idx(3, 0, 1), idx(3, 1, 1), idx(3, 2, 1)}
		p, err := NewPositionFromStones(3, black, nil, Black, WithZobristSeed(1), WithKomi(0))
		require.NoError(t, err)
		require.Equal(t, 9.0, p.AreaScore(), "Every empty region reaches only black")
	})

	t.Run("shared regions are neutral", func(t *testing.T) {
		black := []Move{idx(3, 0, 0)}
		white := []Move{idx(3, 2, 2)}
		p, err := NewPositionFromStones(3, black, white, Black, WithZobristSeed(1), WithKomi(0))
		require.NoError(t, err)
		require.Equal(t, 0.0, p.AreaScore())
	})

	t.Run("split board", func(t *testing.T) {
		black := []Move{idx(3, 0, 1), idx(3, 1, 1), idx(3, 2, 1)}
		white := []Move{idx(3, 0, 2), idx(3, 1, 2)}
		p, err := NewPositionFromStones(3, black, white, Black, WithZobristSeed(1), WithKomi(0.5))
		require.NoError(t, err)
		// Column 0 is black; (2,2) touches both colours.
		require.Equal(t, 6.0-2.0-0.5, p.AreaScore())
	})
}

func TestScoreSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		size := 3 + r.Intn(7)
		p := newTestPosition(t, size, WithKomi(float64(r.Intn(9))+0.5))
		randomPlayout(p.Size()*p.Size(), &p, r)

		var black, white []Move
		for _, m := range p.Interior() {
			switch p.At(m) {
			case Black:
				black = append(black, m)
			case White:
				white = append(white, m)
			}
		}

		same, err := NewPositionFromStones(size, black, white, Black, WithZobristSeed(1), WithKomi(p.Komi()))
		require.NoError(t, err)
		swapped, err := NewPositionFromStones(size, white, black, Black, WithZobristSeed(1), WithKomi(-p.Komi()))
		require.NoError(t, err)

		require.Equal(t, p.Score(), same.Score(), "Score depends only on the stones")
		require.Equal(t, p.Score(), -swapped.Score(), "Swapping colours and komi negates the score")
		require.Equal(t, p.AreaScore(), -swapped.AreaScore())
	}
}
