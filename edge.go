package hexglobe

import "strconv"

// DirectedEdge is a 64-bit packed index of a one-way edge between two
// adjacent cells. It reuses the cell bit layout with mode tag 2 and the
// origin's deflection direction toward the destination, [1, 6], in the
// reserved bits; the remaining bits are the origin cell.
type DirectedEdge uint64

func newDirectedEdge(origin Cell, d Direction) DirectedEdge {
	e := origin&^modeMask&^reservedMask | Cell(modeDirectedEdge)<<modeOffset
	return DirectedEdge(e | Cell(d)<<reservedOffset)
}

// NewDirectedEdge validates a raw 64-bit value as a directed edge index.
func NewDirectedEdge(raw uint64) (DirectedEdge, error) {
	e := DirectedEdge(raw)

	if raw>>highBitOffset != 0 {
		return 0, &ErrInvalidDirectedEdge{Value: raw, Reason: "tainted high bit"}
	}
	if Cell(e)&modeMask != Cell(modeDirectedEdge)<<modeOffset {
		return 0, &ErrInvalidDirectedEdge{Value: raw, Reason: "wrong mode"}
	}

	d := e.direction()
	if d == DirectionCenter || d > DirectionIJ {
		return 0, &ErrInvalidDirectedEdge{Value: raw, Reason: "invalid edge number"}
	}

	origin, err := NewCell(uint64(e.Origin()))
	if err != nil {
		return 0, &ErrInvalidDirectedEdge{Value: raw, Reason: "invalid origin cell", cause: err}
	}
	if origin.IsPentagon() && d == DirectionK {
		return 0, &ErrInvalidDirectedEdge{Value: raw, Reason: "pentagon edge on the deleted k axis"}
	}

	return e, nil
}

// ParseDirectedEdge parses the canonical lowercase-hex representation.
func ParseDirectedEdge(s string) (DirectedEdge, error) {
	raw, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, &ErrInvalidDirectedEdge{Value: 0, Reason: "not a 64-bit hex value", cause: err}
	}
	return NewDirectedEdge(raw)
}

// direction returns the origin's deflection direction toward the
// destination.
func (e DirectedEdge) direction() Direction {
	return Direction(e >> reservedOffset & 0x7)
}

// Origin returns the cell the edge leaves.
func (e DirectedEdge) Origin() Cell {
	return Cell(e)&^modeMask&^reservedMask | Cell(modeCell)<<modeOffset
}

// Destination returns the cell the edge enters.
func (e DirectedEdge) Destination() (Cell, error) {
	dest, _, err := neighborRotations(e.Origin(), e.direction(), 0)
	if err != nil {
		return 0, err
	}
	return dest, nil
}

// Cells returns the edge's origin and destination.
func (e DirectedEdge) Cells() (Cell, Cell, error) {
	dest, err := e.Destination()
	if err != nil {
		return 0, 0, err
	}
	return e.Origin(), dest, nil
}

// Reverse returns the edge in the opposite direction.
func (e DirectedEdge) Reverse() (DirectedEdge, error) {
	origin, dest, err := e.Cells()
	if err != nil {
		return 0, err
	}
	return dest.EdgeTo(origin)
}

// String returns the canonical lowercase hex representation.
func (e DirectedEdge) String() string {
	return strconv.FormatUint(uint64(e), 16)
}

// Boundary returns the edge's endpoints, including any Class III distortion
// vertex where the edge crosses an icosahedron edge.
func (e DirectedEdge) Boundary() Boundary {
	origin := e.Origin()
	res := origin.Resolution()

	start := vertexNumForDirection(origin, e.direction())

	f := cellToFaceIJK(origin)
	if origin.IsPentagon() {
		return f.boundaryPent(res, start, 2)
	}
	return f.boundaryHex(res, start, 2)
}

// LengthRads returns the edge's great-circle length in radians.
func (e DirectedEdge) LengthRads() float64 {
	b := e.Boundary()

	var length float64
	for i := 0; i+1 < b.NumVerts(); i++ {
		length += b.Vert(i).DistanceRads(b.Vert(i + 1))
	}
	return length
}

// LengthKm returns the edge's great-circle length in kilometers.
func (e DirectedEdge) LengthKm() float64 {
	return e.LengthRads() * earthRadiusKm
}

// LengthM returns the edge's great-circle length in meters.
func (e DirectedEdge) LengthM() float64 {
	return e.LengthKm() * 1000
}

// EdgeTo returns the directed edge from the cell to an adjacent cell.
func (c Cell) EdgeTo(destination Cell) (DirectedEdge, error) {
	if c.Resolution() != destination.Resolution() {
		return 0, ErrResolutionMismatch
	}
	d, ok := directionForNeighbor(c, destination)
	if !ok {
		return 0, ErrNotNeighbors
	}
	return newDirectedEdge(c, d), nil
}

// Edges returns all directed edges leaving the cell, 6 for a hexagon and 5
// for a pentagon.
func (c Cell) Edges() []DirectedEdge {
	start := DirectionK
	if c.IsPentagon() {
		start = DirectionJ
	}

	out := make([]DirectedEdge, 0, numHexVerts)
	for d := start; d <= DirectionIJ; d++ {
		out = append(out, newDirectedEdge(c, d))
	}
	return out
}
