package hexglobe

import (
	"iter"
	"slices"
)

// Parent returns the ancestor of the cell at the given coarser resolution.
func (c Cell) Parent(res Resolution) (Cell, bool) {
	if res > c.Resolution() {
		return 0, false
	}
	tail := Cell(1)<<(digitBits*(maxResDigits-uint(res))) - 1
	return c.setResolution(res) | tail, true
}

// CenterChild returns the undeflected descendant of the cell at the given
// finer resolution.
func (c Cell) CenterChild(res Resolution) (Cell, bool) {
	if res < c.Resolution() {
		return 0, false
	}
	child := c.setResolution(res)
	for r := c.Resolution() + 1; r <= res; r++ {
		child = child.setDigit(r, DirectionCenter)
	}
	return child, true
}

// ChildrenCount returns the number of descendants the cell has at the given
// resolution: 7^Δ for a hexagon, fewer for a pentagon whose deleted k axis
// removes a subtree at every level.
func (c Cell) ChildrenCount(res Resolution) uint64 {
	if res < c.Resolution() {
		return 0
	}
	n := uint(res - c.Resolution())
	if c.IsPentagon() {
		return pentagonChildrenCount(n)
	}
	return powersOf7[n]
}

// pentagonChildrenCount is the descendant count of a pentagonal cell n
// levels down: one pentagon plus five hex subtrees per level.
func pentagonChildrenCount(n uint) uint64 {
	return 1 + 5*(powersOf7[n]-1)/6
}

// Children returns the cell's descendants at the given resolution as a
// single-pass sequence in canonical digit order. The deleted k subtree is
// skipped below every pentagonal node.
func (c Cell) Children(res Resolution) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if res < c.Resolution() {
			return
		}
		c.yieldChildren(c.setResolution(res), c.Resolution(), res, yield)
	}
}

// yieldChildren emits the subtree of cur (whose digits are set down to
// resolution r) at the target resolution.
func (c Cell) yieldChildren(cur Cell, r, res Resolution, yield func(Cell) bool) bool {
	if r == res {
		return yield(cur)
	}
	pent := cur.setResolution(r).IsPentagon()
	for d := DirectionCenter; d <= DirectionIJ; d++ {
		if pent && d == DirectionK {
			continue
		}
		if !c.yieldChildren(cur.setDigit(r+1, d), r+1, res, yield) {
			return false
		}
	}
	return true
}

// ChildPos returns the zero-based position of the cell within the canonical
// child order of its ancestor at parentRes.
func (c Cell) ChildPos(parentRes Resolution) (uint64, bool) {
	res := c.Resolution()
	if parentRes > res {
		return 0, false
	}

	var pos uint64
	pent := func(r Resolution) bool {
		p, ok := c.Parent(r)
		return ok && p.IsPentagon()
	}

	for r := parentRes + 1; r <= res; r++ {
		rem := uint(res - r)
		d := c.Digit(r)
		if pent(r - 1) {
			// child order under a pentagon: the center subtree first, then
			// the five hex subtrees j through ij
			if d != DirectionCenter {
				pos += pentagonChildrenCount(rem) + uint64(d-DirectionJ)*powersOf7[rem]
			}
		} else {
			pos += uint64(d) * powersOf7[rem]
		}
	}
	return pos, true
}

// ChildAt returns the descendant of the cell at the given resolution in
// canonical child-order position pos. Mutual inverse of ChildPos.
func (c Cell) ChildAt(pos uint64, res Resolution) (Cell, bool) {
	if res < c.Resolution() || pos >= c.ChildrenCount(res) {
		return 0, false
	}

	child := c.setResolution(res)
	pentagonal := c.IsPentagon()

	for r := c.Resolution() + 1; r <= res; r++ {
		rem := uint(res - r)
		if pentagonal {
			if n := pentagonChildrenCount(rem); pos < n {
				child = child.setDigit(r, DirectionCenter)
				continue
			} else {
				pos -= n
			}
			pentagonal = false
			child = child.setDigit(r, DirectionJ+Direction(pos/powersOf7[rem]))
		} else {
			child = child.setDigit(r, Direction(pos/powersOf7[rem]))
		}
		pos %= powersOf7[rem]
	}
	return child, true
}

// lastChild is the highest-ordered child of parent at the given resolution.
func lastChild(parent Cell, res Resolution) Cell {
	child, _ := parent.ChildAt(parent.ChildrenCount(res)-1, res)
	return child
}

// Compact replaces every complete run of siblings in the input with its
// parent, repeatedly, returning a minimal covering set in grid order. The
// input must be a duplicate-free set of cells of one resolution.
func Compact(cells []Cell) ([]Cell, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	res := cells[0].Resolution()
	for _, c := range cells[1:] {
		if c.Resolution() != res {
			return nil, ErrHeterogeneousResolution
		}
	}

	sorted := slices.Clone(cells)
	slices.SortFunc(sorted, Cell.Cmp)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, ErrDuplicateInput
		}
	}

	out := compactLevel(sorted)
	slices.SortFunc(out, Cell.Cmp)
	return out, nil
}

// compactLevel compacts one sorted, homogeneous-resolution level and
// recurses into the produced parents.
func compactLevel(cells []Cell) []Cell {
	if len(cells) == 0 || cells[0].Resolution() == MinResolution {
		return cells
	}
	res := cells[0].Resolution()

	var parents, rest []Cell
	for i := 0; i < len(cells); {
		c := cells[i]

		// a complete sibling run starts at the center child and, the input
		// being sorted and duplicate free, spans exactly ChildrenCount
		// consecutive entries ending at the last sibling
		if c.Digit(res) == DirectionCenter {
			parent, _ := c.Parent(res - 1)
			n := int(parent.ChildrenCount(res))
			if i+n <= len(cells) && cells[i+n-1] == lastChild(parent, res) {
				parents = append(parents, parent)
				i += n
				continue
			}
		}

		rest = append(rest, c)
		i++
	}

	return append(compactLevel(parents), rest...)
}

// UncompactSize returns the exact number of cells Uncompact will produce.
func UncompactSize(cells []Cell, res Resolution) (uint64, error) {
	var total uint64
	for _, c := range cells {
		if c.Resolution() > res {
			return 0, &ErrInvalidResolution{Value: int(res)}
		}
		total += c.ChildrenCount(res)
	}
	return total, nil
}

// Uncompact expands every cell of the input to its descendants at the given
// resolution, as a single-pass sequence in input order.
func Uncompact(cells []Cell, res Resolution) (iter.Seq[Cell], error) {
	for _, c := range cells {
		if c.Resolution() > res {
			return nil, &ErrInvalidResolution{Value: int(res)}
		}
	}
	return func(yield func(Cell) bool) {
		for _, c := range cells {
			for child := range c.Children(res) {
				if !yield(child) {
					return
				}
			}
		}
	}, nil
}
