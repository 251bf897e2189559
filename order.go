package hexglobe

// Succ returns the next cell of the same resolution in grid order, or false
// past the last cell of base cell 121.
//
// The digit sequence counts up in base 7 with carry; a carry past the first
// digit rolls into the next base cell. A candidate landing on a pentagon's
// deleted k subsequence is bumped straight over it.
func (c Cell) Succ() (Cell, bool) {
	res := c.Resolution()

	r := res
	for {
		if r == 0 {
			b := c.BaseCell() + 1
			if int(b) >= NumBaseCells {
				return 0, false
			}
			c = c.setBaseCell(b)
			break
		}
		if d := c.Digit(r); d < DirectionIJ {
			c = c.setDigit(r, d+1)
			break
		}
		c = c.setDigit(r, DirectionCenter)
		r--
	}

	// all digits below the incremented position are zero, so skipping the
	// deleted subsequence is a single digit bump
	if c.BaseCell().IsPentagon() && c.leadingNonZeroDigit() == DirectionK {
		c = c.setDigit(c.leadingNonZeroRes(), DirectionJ)
	}

	return c, true
}

// Pred returns the previous cell of the same resolution in grid order, or
// false before the first cell of base cell 0.
func (c Cell) Pred() (Cell, bool) {
	res := c.Resolution()

	r := res
	for {
		if r == 0 {
			if c.BaseCell() == 0 {
				return 0, false
			}
			c = c.setBaseCell(c.BaseCell() - 1)
			break
		}
		if d := c.Digit(r); d > DirectionCenter {
			c = c.setDigit(r, d-1)
			break
		}
		c = c.setDigit(r, DirectionIJ)
		r--
	}

	// a decrement can land inside the deleted subsequence; the cell just
	// before it is the last of the preceding center subtree
	if c.BaseCell().IsPentagon() && c.leadingNonZeroDigit() == DirectionK {
		c = c.setDigit(c.leadingNonZeroRes(), DirectionCenter)
	}

	return c, true
}

// leadingNonZeroRes returns the resolution of the first non-center digit,
// or 0 when all digits are center.
func (c Cell) leadingNonZeroRes() Resolution {
	for r := Resolution(1); r <= c.Resolution(); r++ {
		if c.Digit(r) != DirectionCenter {
			return r
		}
	}
	return 0
}

// FirstCell returns the first cell of the resolution in grid order.
func FirstCell(res Resolution) Cell {
	c, _ := BaseCell(0).Cell().CenterChild(res)
	return c
}

// LastCell returns the last cell of the resolution in grid order.
func LastCell(res Resolution) Cell {
	c := BaseCell(NumBaseCells - 1).Cell().setResolution(res)
	for r := Resolution(1); r <= res; r++ {
		c = c.setDigit(r, DirectionIJ)
	}
	return c
}
