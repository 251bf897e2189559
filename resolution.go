package hexglobe

import "fmt"

// Resolution is a grid refinement level, from 0 (coarsest, 122 cells) to 15
// (finest, ~569E12 cells).
type Resolution uint8

const (
	// MinResolution is the coarsest grid resolution.
	MinResolution Resolution = 0
	// MaxResolution is the finest grid resolution.
	MaxResolution Resolution = 15
)

// NewResolution validates and returns a Resolution.
func NewResolution(v int) (Resolution, error) {
	if v < int(MinResolution) || v > int(MaxResolution) {
		return 0, &ErrInvalidResolution{Value: v}
	}
	return Resolution(v), nil
}

// IsClassIII reports whether the resolution has a Class III (rotated ~19.1°)
// grid orientation. Odd resolutions are Class III, even ones Class II.
func (r Resolution) IsClassIII() bool { return r&1 == 1 }

// Succ returns the next finer resolution, or false at MaxResolution.
func (r Resolution) Succ() (Resolution, bool) {
	if r >= MaxResolution {
		return 0, false
	}
	return r + 1, true
}

// Pred returns the next coarser resolution, or false at MinResolution.
func (r Resolution) Pred() (Resolution, bool) {
	if r <= MinResolution {
		return 0, false
	}
	return r - 1, true
}

// Cells returns the total number of cells at this resolution.
//
// Each resolution step multiplies the hexagon count by 7 while the 12
// pentagons stay pentagons: 2 + 120*7^r.
func (r Resolution) Cells() uint64 {
	return 2 + 120*powersOf7[r]
}

func (r Resolution) String() string { return fmt.Sprintf("%d", uint8(r)) }

// powersOf7 holds 7^i for i in [0, 15].
var powersOf7 = [16]uint64{
	1, 7, 49, 343, 2401, 16807, 117649, 823543,
	5764801, 40353607, 282475249, 1977326743,
	13841287201, 96889010407, 678223072849, 4747561509943,
}
