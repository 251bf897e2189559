package hexglobe

import "math"

// sin60 is sin(60°), the vertical spacing factor of the hex grid.
const sin60 = 0.8660254037844386467637231707529361834714

// CoordIJK is an integer coordinate on the triangular IJK axis system, three
// axes 120° apart. The canonical (normalized) form has its minimum component
// at zero.
type CoordIJK struct {
	I, J, K int
}

// unitVecs maps each direction digit to its unit IJK coordinate.
var unitVecs = [7]CoordIJK{
	{0, 0, 0}, // Center
	{0, 0, 1}, // K
	{0, 1, 0}, // J
	{0, 1, 1}, // JK
	{1, 0, 0}, // I
	{1, 0, 1}, // IK
	{1, 1, 0}, // IJ
}

// Add returns c + o.
func (c CoordIJK) Add(o CoordIJK) CoordIJK {
	return CoordIJK{c.I + o.I, c.J + o.J, c.K + o.K}
}

// Sub returns c - o.
func (c CoordIJK) Sub(o CoordIJK) CoordIJK {
	return CoordIJK{c.I - o.I, c.J - o.J, c.K - o.K}
}

// Scale returns c scaled by factor.
func (c CoordIJK) Scale(factor int) CoordIJK {
	return CoordIJK{c.I * factor, c.J * factor, c.K * factor}
}

// Normalize returns the canonical form with the minimum component at zero.
func (c CoordIJK) Normalize() CoordIJK {
	// remove any negative values
	if c.I < 0 {
		c.J -= c.I
		c.K -= c.I
		c.I = 0
	}
	if c.J < 0 {
		c.I -= c.J
		c.K -= c.J
		c.J = 0
	}
	if c.K < 0 {
		c.I -= c.K
		c.J -= c.K
		c.K = 0
	}

	// remove the min value if needed
	min := c.I
	if c.J < min {
		min = c.J
	}
	if c.K < min {
		min = c.K
	}
	if min > 0 {
		c.I -= min
		c.J -= min
		c.K -= min
	}

	return c
}

// Direction returns the direction digit of a unit coordinate, or false if
// the normalized coordinate is not a unit (or zero) vector.
func (c CoordIJK) Direction() (Direction, bool) {
	n := c.Normalize()
	for d, u := range unitVecs {
		if n == u {
			return Direction(d), true
		}
	}
	return directionInvalid, false
}

// RotateCCW returns the coordinate rotated 60° counter-clockwise.
func (c CoordIJK) RotateCCW() CoordIJK {
	return unitVecs[DirectionIJ].Scale(c.I).
		Add(unitVecs[DirectionJK].Scale(c.J)).
		Add(unitVecs[DirectionIK].Scale(c.K)).
		Normalize()
}

// RotateCW returns the coordinate rotated 60° clockwise.
func (c CoordIJK) RotateCW() CoordIJK {
	return unitVecs[DirectionIK].Scale(c.I).
		Add(unitVecs[DirectionIJ].Scale(c.J)).
		Add(unitVecs[DirectionJK].Scale(c.K)).
		Normalize()
}

// Neighbor returns the coordinate of the neighbor in the given direction.
func (c CoordIJK) Neighbor(d Direction) CoordIJK {
	if d == DirectionCenter || d >= directionInvalid {
		return c
	}
	return c.Add(unitVecs[d]).Normalize()
}

// UpAp7 returns the coordinate of the containing cell one aperture-7
// counter-clockwise resolution step up.
func (c CoordIJK) UpAp7() CoordIJK {
	// convert to axial
	i := float64(c.I - c.K)
	j := float64(c.J - c.K)

	return CoordIJK{
		I: int(math.Round((3*i - j) / 7)),
		J: int(math.Round((i + 2*j) / 7)),
		K: 0,
	}.Normalize()
}

// UpAp7R returns the coordinate of the containing cell one aperture-7
// clockwise resolution step up.
func (c CoordIJK) UpAp7R() CoordIJK {
	i := float64(c.I - c.K)
	j := float64(c.J - c.K)

	return CoordIJK{
		I: int(math.Round((2*i + j) / 7)),
		J: int(math.Round((3*j - i) / 7)),
		K: 0,
	}.Normalize()
}

// DownAp7 rescales the coordinate one aperture-7 counter-clockwise
// resolution step down.
func (c CoordIJK) DownAp7() CoordIJK {
	return CoordIJK{3, 0, 1}.Scale(c.I).
		Add(CoordIJK{1, 3, 0}.Scale(c.J)).
		Add(CoordIJK{0, 1, 3}.Scale(c.K)).
		Normalize()
}

// DownAp7R rescales the coordinate one aperture-7 clockwise resolution step
// down.
func (c CoordIJK) DownAp7R() CoordIJK {
	return CoordIJK{3, 1, 0}.Scale(c.I).
		Add(CoordIJK{0, 3, 1}.Scale(c.J)).
		Add(CoordIJK{1, 0, 3}.Scale(c.K)).
		Normalize()
}

// DownAp3 rescales the coordinate one aperture-3 counter-clockwise half
// resolution step down, used for vertex computation.
func (c CoordIJK) DownAp3() CoordIJK {
	return CoordIJK{2, 0, 1}.Scale(c.I).
		Add(CoordIJK{1, 2, 0}.Scale(c.J)).
		Add(CoordIJK{0, 1, 2}.Scale(c.K)).
		Normalize()
}

// DownAp3R rescales the coordinate one aperture-3 clockwise half resolution
// step down.
func (c CoordIJK) DownAp3R() CoordIJK {
	return CoordIJK{2, 1, 0}.Scale(c.I).
		Add(CoordIJK{0, 2, 1}.Scale(c.J)).
		Add(CoordIJK{1, 0, 2}.Scale(c.K)).
		Normalize()
}

// Distance returns the grid distance to o.
func (c CoordIJK) Distance(o CoordIJK) int {
	d := c.Sub(o).Normalize()

	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}

	max := abs(d.I)
	if abs(d.J) > max {
		max = abs(d.J)
	}
	if abs(d.K) > max {
		max = abs(d.K)
	}
	return max
}

// Hex2d returns the center of the cell on a face-local 2D plane.
func (c CoordIJK) Hex2d() Vec2d {
	i := float64(c.I - c.K)
	j := float64(c.J - c.K)

	return Vec2d{X: i - 0.5*j, Y: j * sin60}
}

// hex2dToCoordIJK quantizes a face-local 2D point into the IJK coordinate of
// the containing cell.
func hex2dToCoordIJK(v Vec2d) CoordIJK {
	var h CoordIJK

	a1 := math.Abs(v.X)
	a2 := math.Abs(v.Y)

	// first do a reverse conversion
	x2 := a2 / sin60
	x1 := a1 + x2/2

	// check if we have the center of a hex
	m1 := int(x1)
	m2 := int(x2)

	r1 := x1 - float64(m1)
	r2 := x2 - float64(m2)

	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2 < (1+r1)/2 {
				h.I, h.J = m1, m2
			} else {
				h.I, h.J = m1, m2+1
			}
		} else {
			if r2 < 1-r1 {
				h.J = m2
			} else {
				h.J = m2 + 1
			}
			if 1-r1 <= r2 && r2 < 2*r1 {
				h.I = m1 + 1
			} else {
				h.I = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < 1-r1 {
				h.J = m2
			} else {
				h.J = m2 + 1
			}
			if 2*r1-1 < r2 && r2 < 1-r1 {
				h.I = m1
			} else {
				h.I = m1 + 1
			}
		} else {
			if r2 < r1/2 {
				h.I, h.J = m1+1, m2
			} else {
				h.I, h.J = m1+1, m2+1
			}
		}
	}

	// fold across the axes if necessary
	if v.X < 0 {
		if h.J%2 == 0 { // even
			axisI := h.J / 2
			diff := h.I - axisI
			h.I -= 2 * diff
		} else {
			axisI := (h.J + 1) / 2
			diff := h.I - axisI
			h.I -= 2*diff + 1
		}
	}
	if v.Y < 0 {
		h.I -= (2*h.J + 1) / 2
		h.J = -h.J
	}

	return h.Normalize()
}

// CoordIJ is an axial coordinate pair used by the local-IJ interface. The
// implied k component is always zero.
type CoordIJ struct {
	I, J int
}

// ToIJK converts to the IJK triple with k = 0, normalized.
func (c CoordIJ) ToIJK() CoordIJK {
	return CoordIJK{I: c.I, J: c.J, K: 0}.Normalize()
}

// ToIJ projects the coordinate onto the two local-IJ axes.
func (c CoordIJK) ToIJ() CoordIJ {
	return CoordIJ{I: c.I - c.K, J: c.J - c.K}
}

// CoordCube is a cube coordinate (x+y+z = 0), used for grid path
// interpolation.
type CoordCube struct {
	X, Y, Z int
}

// ToCube converts the coordinate to cube space.
func (c CoordIJK) ToCube() CoordCube {
	x := -c.I + c.K
	y := c.J - c.K
	return CoordCube{X: x, Y: y, Z: -x - y}
}

// ToIJK converts a cube coordinate back to normalized IJK space.
func (c CoordCube) ToIJK() CoordIJK {
	return CoordIJK{I: -c.X, J: c.Y, K: 0}.Normalize()
}
