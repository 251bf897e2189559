package hexglobe

// Rotation adjustments when unfolding across a pentagon base cell, indexed
// by two directions relative to the pentagon: the origin side first, then
// the side being unfolded (or the leading digit when inside the pentagon).
// -1 marks combinations that involve the deleted k axis.
var pentagonRotations = [7][7]int{
	{0, -1, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, -1, 0, 0, 0, 1, 0},
	{0, -1, 0, 0, 1, 1, 0},
	{0, -1, 0, 5, 0, 0, 0},
	{0, -1, 5, 5, 0, 0, 0},
	{0, -1, 0, 0, 0, 0, 0},
}

// Reverse rotation adjustments for folding a local coordinate back into a
// cell when the origin sits on a pentagon.
var pentagonRotationsReverse = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 5, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// Reverse rotation adjustments when the target base cell is a non-polar
// pentagon, indexed by the direction back to the origin and the cell's
// leading digit.
var pentagonRotationsReverseNonpolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// Reverse rotation adjustments when the target base cell is a polar
// pentagon.
var pentagonRotationsReversePolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 1, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 1, 0, 0, 1, 1, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 1, 1, 0, 1, 1, 1},
}

// Direction pairs that cannot be unfolded across a pentagon without
// ambiguity; attempting them is a Pentagon error rather than a wrong
// answer.
var failedDirections = [7][7]bool{
	{false, false, false, false, false, false, false},
	{false, false, false, false, false, false, false},
	{false, false, false, false, true, true, false},
	{false, false, false, false, true, false, true},
	{false, false, true, true, false, false, false},
	{false, false, true, false, false, false, true},
	{false, false, false, true, true, false, false},
}

// toLocalIJK expresses the cell's position in the coordinate system
// anchored at origin's base cell, unfolding across at most one base cell
// boundary.
func toLocalIJK(origin, c Cell) (CoordIJK, error) {
	res := origin.Resolution()
	if res != c.Resolution() {
		return CoordIJK{}, ErrResolutionMismatch
	}

	originBase := origin.BaseCell()
	base := c.BaseCell()

	dir := DirectionCenter
	revDir := DirectionCenter
	if originBase != base {
		var ok bool
		dir, ok = originBase.neighborDirection(base)
		if !ok {
			return CoordIJK{}, ErrHexGridRange
		}
		revDir, _ = base.neighborDirection(originBase)
	}

	originOnPent := originBase.IsPentagon()
	indexOnPent := base.IsPentagon()

	if dir != DirectionCenter {
		// rotate the cell into the origin base cell's orientation; cw, as
		// this undoes the rotation into its own base cell
		baseCellRotations := originBase.neighborRotations(dir)
		if indexOnPent {
			for i := 0; i < baseCellRotations; i++ {
				c = c.rotatePent60cw()
				revDir = revDir.RotateCW()
				if revDir == DirectionK {
					revDir = revDir.RotateCW()
				}
			}
		} else {
			for i := 0; i < baseCellRotations; i++ {
				c = c.rotate60cw()
			}
		}
	}

	// walk the digits down in base cell coordinate space
	f, _ := cellToFaceIJKOnFace(c, FaceIJK{})
	coord := f.Coord

	switch {
	case dir != DirectionCenter:
		pentRotations := 0
		dirRotations := 0
		if originOnPent {
			lead := origin.leadingNonZeroDigit()
			if failedDirections[lead][dir] {
				return CoordIJK{}, ErrPentagon
			}
			dirRotations = pentagonRotations[lead][dir]
			pentRotations = dirRotations
		} else if indexOnPent {
			lead := c.leadingNonZeroDigit()
			if failedDirections[lead][revDir] {
				return CoordIJK{}, ErrPentagon
			}
			pentRotations = pentagonRotations[revDir][lead]
		}
		if pentRotations < 0 || dirRotations < 0 {
			return CoordIJK{}, ErrHexGridRange
		}

		for i := 0; i < pentRotations; i++ {
			coord = coord.RotateCW()
		}

		// translate into the origin's coordinate system
		offset := CoordIJK{}.Neighbor(dir)
		for r := res; r >= 1; r-- {
			if r.IsClassIII() {
				offset = offset.DownAp7()
			} else {
				offset = offset.DownAp7R()
			}
		}
		for i := 0; i < dirRotations; i++ {
			offset = offset.RotateCW()
		}

		coord = coord.Add(offset).Normalize()

	case originOnPent && indexOnPent:
		// same pentagon base cell, but the index must still be rotated into
		// the origin's coordinate system
		originLead := origin.leadingNonZeroDigit()
		lead := c.leadingNonZeroDigit()
		if failedDirections[originLead][lead] {
			return CoordIJK{}, ErrPentagon
		}
		for i := 0; i < pentagonRotations[originLead][lead]; i++ {
			coord = coord.RotateCW()
		}
	}

	return coord, nil
}

// localIJKToCell folds a coordinate in origin's local system back into a
// cell index.
func localIJKToCell(origin Cell, coord CoordIJK) (Cell, error) {
	res := origin.Resolution()
	originBase := origin.BaseCell()
	originOnPent := originBase.IsPentagon()

	out := Cell(modeCell)<<modeOffset | digitMask
	out = out.setResolution(res)

	if res == MinResolution {
		if coord.I > 1 || coord.J > 1 || coord.K > 1 {
			return 0, ErrHexGridRange
		}
		dir, ok := coord.Direction()
		if !ok {
			return 0, ErrHexGridRange
		}
		base, found := originBase.neighbor(dir)
		if !found {
			return 0, ErrPentagon
		}
		return out.setBaseCell(base), nil
	}

	// build the index from the finest resolution up
	ijk := coord
	for r := res; r >= 1; r-- {
		last := ijk

		var center CoordIJK
		if r.IsClassIII() {
			ijk = ijk.UpAp7()
			center = ijk.DownAp7()
		} else {
			ijk = ijk.UpAp7R()
			center = ijk.DownAp7R()
		}

		d, ok := last.Sub(center).Direction()
		if !ok {
			return 0, ErrHexGridRange
		}
		out = out.setDigit(r, d)
	}

	// ijk now holds the base cell offset in origin's coordinate system
	if ijk.I > 1 || ijk.J > 1 || ijk.K > 1 {
		return 0, ErrHexGridRange
	}
	dir, ok := ijk.Direction()
	if !ok {
		return 0, ErrHexGridRange
	}
	base, baseFound := originBase.neighbor(dir)

	indexOnPent := baseFound && base.IsPentagon()

	switch {
	case dir != DirectionCenter:
		if originOnPent {
			// unwarp the direction out of the pentagon's coordinate space
			lead := origin.leadingNonZeroDigit()
			rot := pentagonRotationsReverse[lead][dir]
			if rot < 0 {
				return 0, ErrHexGridRange
			}
			for i := 0; i < rot; i++ {
				dir = dir.RotateCCW()
			}
			// if dir still lands on k we are moving into the deleted
			// subsequence and no cell exists there
			if dir == DirectionK {
				return 0, ErrPentagon
			}
			base, _ = originBase.neighbor(dir)
			indexOnPent = base.IsPentagon()
		}

		baseCellRotations := originBase.neighborRotations(dir)

		if indexOnPent {
			revDir, _ := base.neighborDirection(originBase)

			// rotate into the target base cell's space first; the pentagon
			// correction depends on the leading digit seen from there
			for i := 0; i < baseCellRotations; i++ {
				out = out.rotate60ccw()
			}

			lead := out.leadingNonZeroDigit()
			var rot int
			if base.isPolarPentagon() {
				rot = pentagonRotationsReversePolar[revDir][lead]
			} else {
				rot = pentagonRotationsReverseNonpolar[revDir][lead]
			}
			if rot < 0 {
				return 0, ErrHexGridRange
			}
			for i := 0; i < rot; i++ {
				out = out.rotatePent60ccw()
			}
		} else {
			for i := 0; i < baseCellRotations; i++ {
				out = out.rotate60ccw()
			}
		}

		out = out.setBaseCell(base)

	case originOnPent:
		if out.leadingNonZeroDigit() == DirectionK {
			return 0, ErrPentagon
		}
		out = out.setBaseCell(originBase)

	default:
		out = out.setBaseCell(originBase)
	}

	return out, nil
}

// ToLocalIJ expresses the cell's position in the two-axis local coordinate
// system anchored at origin.
func ToLocalIJ(origin, c Cell) (CoordIJ, error) {
	ijk, err := toLocalIJK(origin, c)
	if err != nil {
		return CoordIJ{}, err
	}
	return ijk.ToIJ(), nil
}

// FromLocalIJ resolves a local coordinate relative to origin back to the
// cell occupying it.
func FromLocalIJ(origin Cell, ij CoordIJ) (Cell, error) {
	return localIJKToCell(origin, ij.ToIJK())
}
