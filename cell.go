package hexglobe

import (
	"fmt"
	"strconv"
)

// Cell is a 64-bit packed cell index.
//
// Bit layout, from the most significant bit down: 1 reserved bit (always 0),
// a 4-bit mode tag, 3 reserved bits, a 4-bit resolution, a 7-bit base cell
// number and fifteen 3-bit direction digits. Only the first `resolution`
// digits are meaningful; the rest hold the unused sentinel 0b111.
type Cell uint64

const (
	maxResDigits = 15
	digitBits    = 3

	baseCellOffset = 45
	resOffset      = 52
	reservedOffset = 56
	modeOffset     = 59
	highBitOffset  = 63

	modeCell         = 1
	modeDirectedEdge = 2
	modeVertex       = 4

	digitMask    Cell = 1<<(maxResDigits*digitBits) - 1
	baseCellMask Cell = 0x7f << baseCellOffset
	resMask      Cell = 0xf << resOffset
	reservedMask Cell = 0x7 << reservedOffset
	modeMask     Cell = 0xf << modeOffset

	// repeating per-digit bit patterns across the 45 digit bits
	digitOnes  Cell = 0o111111111111111
	digitHighs Cell = 0o444444444444444
)

// NewCell validates a raw 64-bit value as a canonical cell index.
func NewCell(v uint64) (Cell, error) {
	c := Cell(v)

	if v>>highBitOffset != 0 {
		return 0, &ErrInvalidCell{Value: v, Reason: "tainted high bit"}
	}
	if c&modeMask != modeCell<<modeOffset {
		return 0, &ErrInvalidCell{Value: v, Reason: "wrong mode"}
	}
	if c&reservedMask != 0 {
		return 0, &ErrInvalidCell{Value: v, Reason: "tainted reserved bits"}
	}
	if int(c>>baseCellOffset&0x7f) >= NumBaseCells {
		return 0, &ErrInvalidCell{Value: v, Reason: "invalid base cell"}
	}

	res := c.Resolution()
	tail := Cell(1)<<(digitBits*(maxResDigits-uint(res))) - 1

	// every digit past the resolution is the unused sentinel
	if c&tail != tail {
		return 0, &ErrInvalidCell{Value: v, Reason: "unused digits not set"}
	}

	// no unused sentinel before the tail: detect a zero 3-bit chunk in the
	// complemented digits with the subtract-borrow trick instead of looping
	// over 15 chunks
	d := ^(c &^ tail) & digitMask
	if (d-digitOnes) & ^d & digitHighs != 0 {
		return 0, &ErrInvalidCell{Value: v, Reason: "unused digit before the tail"}
	}

	// a pentagon's first deflection can never enter the deleted k axis
	if c.BaseCell().IsPentagon() && c.leadingNonZeroDigit() == DirectionK {
		return 0, &ErrInvalidCell{Value: v, Reason: "pentagon cell on the deleted k axis"}
	}

	return c, nil
}

// ParseCell parses the canonical lowercase-hex representation.
func ParseCell(s string) (Cell, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, &ErrInvalidCell{Value: 0, Reason: "not a 64-bit hex value", cause: err}
	}
	return NewCell(v)
}

// Resolution returns the cell's resolution.
func (c Cell) Resolution() Resolution {
	return Resolution(c >> resOffset & 0xf)
}

// BaseCell returns the cell's base (resolution 0) cell number.
func (c Cell) BaseCell() BaseCell {
	return BaseCell(c >> baseCellOffset & 0x7f)
}

// Digit returns the direction digit chosen at resolution r, 1 ≤ r ≤
// c.Resolution().
func (c Cell) Digit(r Resolution) Direction {
	return Direction(c >> (digitBits * (maxResDigits - uint(r))) & 0x7)
}

// setDigit overwrites the digit at resolution r.
func (c Cell) setDigit(r Resolution, d Direction) Cell {
	shift := digitBits * (maxResDigits - uint(r))
	return c&^(0x7<<shift) | Cell(d)<<shift
}

// setResolution overwrites the resolution nibble.
func (c Cell) setResolution(res Resolution) Cell {
	return c&^resMask | Cell(res)<<resOffset
}

// setBaseCell overwrites the base cell bits.
func (c Cell) setBaseCell(b BaseCell) Cell {
	return c&^baseCellMask | Cell(b)<<baseCellOffset
}

// leadingNonZeroDigit returns the first non-center digit, or DirectionCenter
// for a purely central index.
func (c Cell) leadingNonZeroDigit() Direction {
	for r := Resolution(1); r <= c.Resolution(); r++ {
		if d := c.Digit(r); d != DirectionCenter {
			return d
		}
	}
	return DirectionCenter
}

// IsPentagon reports whether the cell is one of the pentagonal cells, i.e.
// the undeflected descendant of a pentagon base cell.
func (c Cell) IsPentagon() bool {
	return c.BaseCell().IsPentagon() && c.leadingNonZeroDigit() == DirectionCenter
}

// rotate60ccw rotates the cell 60° counter-clockwise about its base cell.
func (c Cell) rotate60ccw() Cell {
	for r := Resolution(1); r <= c.Resolution(); r++ {
		c = c.setDigit(r, c.Digit(r).RotateCCW())
	}
	return c
}

// rotate60cw rotates the cell 60° clockwise about its base cell.
func (c Cell) rotate60cw() Cell {
	for r := Resolution(1); r <= c.Resolution(); r++ {
		c = c.setDigit(r, c.Digit(r).RotateCW())
	}
	return c
}

// rotatePent60ccw rotates a cell of a pentagon base cell 60° ccw, skipping
// the deleted k-axis subsequence at the leading digit.
func (c Cell) rotatePent60ccw() Cell {
	foundFirst := false
	for r := Resolution(1); r <= c.Resolution(); r++ {
		c = c.setDigit(r, c.Digit(r).RotateCCW())
		if !foundFirst && c.Digit(r) != DirectionCenter {
			foundFirst = true
			if c.leadingNonZeroDigit() == DirectionK {
				c = c.rotate60ccw()
			}
		}
	}
	return c
}

// rotatePent60cw is the clockwise counterpart of rotatePent60ccw.
func (c Cell) rotatePent60cw() Cell {
	foundFirst := false
	for r := Resolution(1); r <= c.Resolution(); r++ {
		c = c.setDigit(r, c.Digit(r).RotateCW())
		if !foundFirst && c.Digit(r) != DirectionCenter {
			foundFirst = true
			if c.leadingNonZeroDigit() == DirectionK {
				c = c.rotate60cw()
			}
		}
	}
	return c
}

// orderKey projects the cell onto the total grid order: the resolution
// nibble is ignored and the unused tail reads as zero, so that a cell sorts
// directly before its descendants.
func (c Cell) orderKey() uint64 {
	tail := Cell(1)<<(digitBits*(maxResDigits-uint(c.Resolution()))) - 1
	return uint64(c &^ resMask &^ tail)
}

// Cmp compares two cells in grid order: -1 if c sorts before o, 1 if after,
// 0 if equal. An ancestor sorts immediately before its descendants.
func (c Cell) Cmp(o Cell) int {
	ck, ok := c.orderKey(), o.orderKey()
	switch {
	case ck < ok:
		return -1
	case ck > ok:
		return 1
	case c.Resolution() < o.Resolution():
		return -1
	case c.Resolution() > o.Resolution():
		return 1
	default:
		return 0
	}
}

// String returns the canonical lowercase hex representation.
func (c Cell) String() string {
	return strconv.FormatUint(uint64(c), 16)
}

// Format implements fmt.Formatter: %s and %x print the canonical lowercase
// hex form, %X uppercase, %o octal, %b binary, %d decimal.
func (c Cell) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		fmt.Fprint(f, strconv.FormatUint(uint64(c), 16))
	case 'X':
		fmt.Fprintf(f, "%X", uint64(c))
	case 'o':
		fmt.Fprint(f, strconv.FormatUint(uint64(c), 8))
	case 'b':
		fmt.Fprint(f, strconv.FormatUint(uint64(c), 2))
	case 'd':
		fmt.Fprint(f, strconv.FormatUint(uint64(c), 10))
	default:
		fmt.Fprintf(f, "%%!%c(hexglobe.Cell=%s)", verb, c.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cell) UnmarshalText(text []byte) error {
	parsed, err := ParseCell(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CellFromLatLng indexes the spherical coordinate into the cell containing
// it at the given resolution.
func CellFromLatLng(g LatLng, res Resolution) Cell {
	return faceIjkToCell(geoToFaceIJK(g, res), res)
}

// faceIjkToCell builds the cell index for a face coordinate at the given
// resolution by folding the coordinate up one aperture-7 step per
// resolution, recording the deflection digit taken at each.
func faceIjkToCell(f FaceIJK, res Resolution) Cell {
	c := Cell(modeCell)<<modeOffset | digitMask
	c = c.setResolution(res)

	if res == MinResolution {
		return c.setBaseCell(faceIjkToBaseCell(f))
	}

	ijk := f.Coord
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

		d, _ := last.Sub(center).Direction()
		c = c.setDigit(r, d)
	}

	// ijk now holds the base cell position in the original face's frame
	bc := FaceIJK{Face: f.Face, Coord: ijk}
	base := faceIjkToBaseCell(bc)
	c = c.setBaseCell(base)

	numRots := faceIjkToBaseCellCCWrot60(bc)

	if base.IsPentagon() {
		// rotate out of the deleted k-axis subsequence; the sense depends on
		// whether this face is cw offset from the pentagon's canonical frame
		if c.leadingNonZeroDigit() == DirectionK {
			if base.isCwOffset(bc.Face) {
				c = c.rotate60cw()
			} else {
				c = c.rotate60ccw()
			}
		}
		for i := 0; i < numRots; i++ {
			c = c.rotatePent60ccw()
		}
	} else {
		for i := 0; i < numRots; i++ {
			c = c.rotate60ccw()
		}
	}

	return c
}

// cellToFaceIJK resolves the cell to a face-anchored coordinate at the
// cell's own resolution.
func cellToFaceIJK(c Cell) FaceIJK {
	base := c.BaseCell()

	// the entire k-axes subsequence 5 is adjusted by a rotation
	if base.IsPentagon() && c.leadingNonZeroDigit() == DirectionIK {
		c = c.rotate60cw()
	}

	f, possibleOverage := cellToFaceIJKOnFace(c, base.homeFijk())
	if !possibleOverage {
		return f
	}

	orig := f.Coord

	// overage correction is only defined on Class II grids
	res := c.Resolution()
	if res.IsClassIII() {
		f.Coord = f.Coord.DownAp7R()
		res++
	}

	pentLeading4 := base.IsPentagon() && c.leadingNonZeroDigit() == DirectionI
	if f.adjustOverageClassII(res, pentLeading4, false) != overageNone {
		// a pentagon base cell can overage again off the second face
		if base.IsPentagon() {
			for f.adjustOverageClassII(res, false, false) != overageNone {
			}
		}
		if res != c.Resolution() {
			f.Coord = f.Coord.UpAp7R()
		}
	} else if res != c.Resolution() {
		f.Coord = orig
	}

	return f
}

// cellToFaceIJKOnFace walks the cell's digits down from the given res-0
// anchor. It reports whether the result can possibly lie off the anchoring
// face.
func cellToFaceIJKOnFace(c Cell, f FaceIJK) (FaceIJK, bool) {
	res := c.Resolution()

	// the center hierarchy of a hexagon base cell stays on its home face
	possibleOverage := true
	if !c.BaseCell().IsPentagon() &&
		(res == MinResolution || (f.Coord == CoordIJK{})) {
		possibleOverage = false
	}

	for r := Resolution(1); r <= res; r++ {
		if r.IsClassIII() {
			f.Coord = f.Coord.DownAp7()
		} else {
			f.Coord = f.Coord.DownAp7R()
		}
		f.Coord = f.Coord.Neighbor(c.Digit(r))
	}

	return f, possibleOverage
}

// ToLatLng returns the spherical center of the cell.
func (c Cell) ToLatLng() LatLng {
	return cellToFaceIJK(c).toGeo(c.Resolution())
}

// Boundary returns the cell's vertex loop. Hexagons have 6 topological
// vertexes, pentagons 5; on Class III resolutions edges crossing an
// icosahedron edge gain an extra distortion vertex each.
func (c Cell) Boundary() Boundary {
	f := cellToFaceIJK(c)
	if c.IsPentagon() {
		return f.boundaryPent(c.Resolution(), 0, numPentVerts)
	}
	return f.boundaryHex(c.Resolution(), 0, numHexVerts)
}

// IcosahedronFaces returns the sorted, distinct icosahedron faces the cell
// intersects: at most 2 for a hexagon, up to 5 for a pentagon.
func (c Cell) IcosahedronFaces() []int {
	f := cellToFaceIJK(c)
	res := c.Resolution()
	pent := c.IsPentagon()

	n := numHexVerts
	if pent {
		n = numPentVerts
	}
	verts, adjRes := f.toVerts(res, n)

	var seen [numIcosaFaces]bool
	for v := 0; v < n; v++ {
		fv := verts[v]
		if pent {
			fv.adjustPentVertOverage(adjRes)
		} else {
			fv.adjustOverageClassII(adjRes, false, true)
		}
		seen[fv.Face] = true
	}

	faces := make([]int, 0, maxFaceCount)
	for face, ok := range seen {
		if ok {
			faces = append(faces, face)
		}
	}
	return faces
}

// Pentagons returns the 12 pentagonal cells of the given resolution.
func Pentagons(res Resolution) []Cell {
	out := make([]Cell, 0, 12)
	for b := 0; b < NumBaseCells; b++ {
		if !BaseCell(b).IsPentagon() {
			continue
		}
		c := Cell(modeCell)<<modeOffset | digitMask
		c = c.setResolution(res).setBaseCell(BaseCell(b))
		for r := Resolution(1); r <= res; r++ {
			c = c.setDigit(r, DirectionCenter)
		}
		out = append(out, c)
	}
	return out
}
