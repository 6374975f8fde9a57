package game

import "goban/utils"

// updateChains does the chain bookkeeping for a stone of colour c about to be
// placed at m: opponent chains lose the liberty at m (and are captured when
// none remain), then m joins, extends or merges its own chains. The stone
// itself is written afterwards by setPoint.
func (p *Position) updateChains(m Move, c Color) {
	opponent := c.Opponent()

	var seen [4]uint16
	n := 0
	for _, d := range p.dirs {
		neighbour := int(m) + d
		if p.board[neighbour] != opponent {
			continue
		}
		root := p.roots[neighbour]
		if utils.Contains(seen[:n], root) {
			continue
		}
		seen[n] = root
		n++

		p.liberties[root]--
		if p.liberties[root] == 0 {
			p.captureGroup(root)
		}
	}

	var same [4]uint16
	n = 0
	for _, d := range p.dirs {
		neighbour := int(m) + d
		if p.board[neighbour] != c {
			continue
		}
		root := p.roots[neighbour]
		if utils.Contains(same[:n], root) {
			continue
		}
		same[n] = root
		n++
	}

	switch n {
	case 0:
		p.createGroup(m)
	case 1:
		p.extendGroup(m, same[0])
	default:
		p.mergeGroups(same[:n], m)
	}
}

func (p *Position) createGroup(m Move) {
	_, empty, _, _ := p.neighbours(m)
	p.roots[m] = uint16(m)
	p.liberties[m] = uint16(empty)
	p.sizes[m] = 1
}

// extendGroup adds m to the chain rooted at root. m stops being a liberty;
// each empty neighbour of m becomes one unless the chain already touches it.
func (p *Position) extendGroup(m Move, root uint16) {
	p.roots[m] = root
	p.sizes[root]++
	p.liberties[root]--

	for _, d := range p.dirs {
		liberty := int(m) + d
		if p.board[liberty] != Empty {
			continue
		}
		counted := false
		for _, e := range p.dirs {
			if d+e == 0 {
				continue
			}
			if p.roots[liberty+e] == root {
				counted = true
				break
			}
		}
		if !counted {
			p.liberties[root]++
		}
	}
}

// mergeGroups joins every chain in roots and the new stone m under roots[0].
// Liberties of the combined chain are recounted over the whole board.
func (p *Position) mergeGroups(roots []uint16, m Move) {
	newRoot := roots[0]
	merged := roots[1:]

	total := p.sizes[newRoot] + 1
	for _, root := range merged {
		total += p.sizes[root]
		p.sizes[root] = 0
	}
	for _, root := range roots {
		p.liberties[root] = 0
	}
	p.sizes[newRoot] = total

	for i := 0; i < p.points; i++ {
		if p.roots[i] != 0 && utils.Contains(merged, p.roots[i]) {
			p.roots[i] = newRoot
		}
	}
	p.roots[m] = newRoot

	var liberties uint16
	for i := 0; i < p.points; i++ {
		if p.board[i] != Empty || Move(i) == m {
			continue
		}
		for _, d := range p.dirs {
			if p.roots[i+d] == newRoot {
				liberties++
				break
			}
		}
	}
	p.liberties[newRoot] = liberties
}

// captureGroup removes every stone of the chain rooted at root. Freed points
// hand their liberty to the surviving neighbours through setPoint.
func (p *Position) captureGroup(root uint16) {
	p.sizes[root] = 0
	for i := 0; i < p.points; i++ {
		if p.roots[i] == root {
			p.roots[i] = 0
			p.setPoint(Move(i), Empty)
		}
	}
	// setPoint credited the dying chain too while its stones were removed
	p.liberties[root] = 0
}
