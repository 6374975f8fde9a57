package game

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Verify recomputes chains, liberties, sizes, counters and the hash from the
// stones on the board and compares them with the incremental bookkeeping. It
// returns the first mismatch found, wrapped around ErrInvariant.
func (p *Position) Verify() error {
	var empty, black, white, border int
	var hash uint64
	members := make(map[uint16]int)
	for i := 0; i < p.points; i++ {
		switch p.board[i] {
		case OffBoard:
			border++
		case Empty:
			empty++
		case Black:
			black++
		case White:
			white++
		}
		hash ^= p.zobrist.stone(Move(i), p.board[i])

		if p.isStone(Move(i)) {
			if p.roots[i] == 0 {
				return p.violation(Move(i), "stone has no chain root")
			}
			members[p.roots[i]]++
		} else if p.roots[i] != 0 {
			return p.violation(Move(i), "non-stone point has chain root %d", p.roots[i])
		}
	}
	if border+empty+black+white != p.points {
		return errors.Wrapf(ErrInvariant, "%d border + %d empty + %d black + %d white != %d points",
			border, empty, black, white, p.points)
	}
	if empty != p.emptyCount || black != p.blackCount || white != p.whiteCount {
		return errors.Wrapf(ErrInvariant, "counters (%d, %d, %d) differ from board (%d, %d, %d)",
			p.blackCount, p.whiteCount, p.emptyCount, black, white, empty)
	}
	if hash != p.hash {
		return errors.Wrapf(ErrInvariant, "hash %#x differs from recomputed %#x", p.hash, hash)
	}

	var visited [MaxPoints]bool
	var libertyMark [MaxPoints]int
	stamp := 0
	for i := 0; i < p.points; i++ {
		if !p.isStone(Move(i)) || visited[i] {
			continue
		}
		stamp++
		c := p.board[i]
		root := p.roots[i]

		size, liberties := 0, 0
		stack := []int{i}
		visited[i] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			if p.roots[current] != root {
				return p.violation(Move(current), "chain root %d, connected stones use %d", p.roots[current], root)
			}
			for _, d := range p.dirs {
				next := current + d
				switch p.board[next] {
				case Empty:
					if libertyMark[next] != stamp {
						libertyMark[next] = stamp
						liberties++
					}
				case c:
					if !visited[next] {
						visited[next] = true
						stack = append(stack, next)
					}
				}
			}
		}

		if p.board[root] != c {
			return p.violation(Move(i), "chain root %d holds %s", root, p.board[root])
		}
		if members[root] != size {
			return p.violation(Move(i), "%d stones share root %d, connected chain has %d", members[root], root, size)
		}
		if int(p.sizes[root]) != size {
			return p.violation(Move(i), "chain size %d, recomputed %d", p.sizes[root], size)
		}
		if int(p.liberties[root]) != liberties {
			return p.violation(Move(i), "chain liberties %d, recomputed %d", p.liberties[root], liberties)
		}
		if liberties == 0 {
			return p.violation(Move(i), "chain without liberties left on the board")
		}
	}

	for i := 0; i < p.points; i++ {
		if p.sizes[i] != 0 && members[uint16(i)] == 0 {
			return p.violation(Move(i), "stale chain size %d", p.sizes[i])
		}
	}
	return nil
}

func (p *Position) violation(m Move, format string, args ...any) error {
	row, col := p.Coords(m)
	return errors.Wrapf(ErrInvariant, "at (%d, %d): "+format, append([]any{row, col}, args...)...)
}

// mustVerify aborts on an inconsistent position. Reaching the panic means
// the chain bookkeeping is wrong, not that a move was illegal.
func (p *Position) mustVerify(m Move) {
	err := p.Verify()
	if err == nil {
		return
	}
	row, col := p.Coords(m)
	log.Error().Err(err).
		Int("row", row).
		Int("col", col).
		Int("ply", p.ply).
		Str("board", p.String()).
		Msg("position invariant violated")
	panic(err)
}
