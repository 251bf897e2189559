package hexglobe

import (
	"iter"
	"math"
)

// GridDistance returns the minimum number of grid steps between the two
// cells. Paths crossing a pentagon distortion region cannot be measured and
// return an error.
func GridDistance(a, b Cell) (int, error) {
	origin, err := toLocalIJK(a, a)
	if err != nil {
		return 0, err
	}
	target, err := toLocalIJK(a, b)
	if err != nil {
		return 0, err
	}
	return origin.Distance(target), nil
}

// GridPathCellsSize returns the number of cells in the path GridPathCells
// produces, endpoints included.
func GridPathCellsSize(a, b Cell) (int, error) {
	d, err := GridDistance(a, b)
	if err != nil {
		return 0, err
	}
	return d + 1, nil
}

// GridPathCells returns a minimal contiguous path of cells from a to b,
// endpoints included, as a single-pass sequence. The path is drawn by
// rounding the straight line between the two cells in cube coordinate
// space, so it hugs the line but is not unique among minimal paths.
func GridPathCells(a, b Cell) (iter.Seq[Cell], error) {
	start, err := toLocalIJK(a, a)
	if err != nil {
		return nil, err
	}
	end, err := toLocalIJK(a, b)
	if err != nil {
		return nil, err
	}

	distance := start.Distance(end)
	sc := start.ToCube()
	ec := end.ToCube()

	return func(yield func(Cell) bool) {
		step := 0.0
		if distance > 0 {
			step = 1.0 / float64(distance)
		}

		for i := 0; i <= distance; i++ {
			t := step * float64(i)
			cube := cubeRound(
				lerp(sc.X, ec.X, t),
				lerp(sc.Y, ec.Y, t),
				lerp(sc.Z, ec.Z, t),
			)

			cell, err := localIJKToCell(a, cube.ToIJK())
			if err != nil {
				return
			}
			if !yield(cell) {
				return
			}
		}
	}, nil
}

func lerp(a, b int, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}

// cubeRound rounds fractional cube coordinates to the nearest cell center,
// re-deriving the axis with the largest rounding error from the other two
// so the result stays on the x+y+z = 0 plane.
func cubeRound(x, y, z float64) CoordCube {
	ri := int(math.Round(x))
	rj := int(math.Round(y))
	rk := int(math.Round(z))

	di := math.Abs(float64(ri) - x)
	dj := math.Abs(float64(rj) - y)
	dk := math.Abs(float64(rk) - z)

	switch {
	case di > dj && di > dk:
		ri = -rj - rk
	case dj > dk:
		rj = -ri - rk
	default:
		rk = -ri - rj
	}

	return CoordCube{X: ri, Y: rj, Z: rk}
}
