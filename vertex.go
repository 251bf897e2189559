package hexglobe

import "strconv"

// Vertex is a 64-bit packed index of a topological cell vertex. It reuses
// the cell bit layout with mode tag 4 and the vertex number [0, 5] in the
// reserved bits; the remaining bits are the owning cell.
//
// Every vertex of the grid has exactly one canonical index: its owner is the
// lowest-numbered of the up-to-three cells sharing it.
type Vertex uint64

const invalidVertexNum = -1

// Same-face relations between deflection directions and vertex numbers.
// Vertex numbers run ccw from the boundary start vertex; the neighbor in a
// direction sits between that direction's vertex number and the next.
var (
	directionToVertexNumHex  = [7]int{invalidVertexNum, 3, 1, 2, 5, 4, 0}
	directionToVertexNumPent = [7]int{invalidVertexNum, invalidVertexNum, 1, 2, 4, 3, 0}

	vertexNumToDirectionHex = [numHexVerts]Direction{
		DirectionIJ, DirectionJ, DirectionJK, DirectionK, DirectionIK, DirectionI,
	}
	vertexNumToDirectionPent = [numPentVerts]Direction{
		DirectionIJ, DirectionJ, DirectionJK, DirectionIK, DirectionI,
	}
)

// pentagonDirectionFaces maps each pentagon base cell's deflection
// directions j through ij to the icosahedron face its neighbor in that
// direction lies on. Only pentagon rows are populated.
var pentagonDirectionFaces [NumBaseCells][numPentVerts]int

func init() {
	for b := 0; b < NumBaseCells; b++ {
		if !BaseCell(b).IsPentagon() {
			continue
		}
		// resolution 2 is the coarsest at which each neighbor of a pentagon
		// lies fully on a single face around the icosahedron vertex
		pent, _ := BaseCell(b).Cell().CenterChild(2)
		for d := DirectionJ; d <= DirectionIJ; d++ {
			n, _, err := neighborRotations(pent, d, 0)
			if err != nil {
				continue
			}
			pentagonDirectionFaces[b][d-DirectionJ] = cellToFaceIJK(n).Face
		}
	}
}

// vertexRotations returns the number of ccw rotations between the cell's
// vertex numbering and the directional layout of its neighbors.
func vertexRotations(c Cell) int {
	fijk := cellToFaceIJK(c)
	base := c.BaseCell()

	rot := base.ccwRot60OnFace(fijk.Face)

	if base.IsPentagon() {
		faces := pentagonDirectionFaces[base]
		lead := c.leadingNonZeroDigit()

		// polar neighbors and the ik-side face pick up one extra rotation
		if fijk.Face != baseCellData[base].homeFace &&
			(base.isPolarPentagon() || fijk.Face == faces[DirectionIK-DirectionJ]) {
			rot = (rot + 1) % 6
		}

		switch {
		case lead == DirectionJK && fijk.Face == faces[DirectionIK-DirectionJ]:
			// crosses the deleted subsequence clockwise
			rot = (rot + 5) % 6
		case lead == DirectionIK && fijk.Face == faces[DirectionJK-DirectionJ]:
			// crosses the deleted subsequence counter-clockwise
			rot = (rot + 1) % 6
		}
	}

	return rot
}

// vertexNumForDirection returns the first vertex number adjacent to the
// neighbor in the given direction, or invalidVertexNum.
func vertexNumForDirection(c Cell, d Direction) int {
	pent := c.IsPentagon()
	if d == DirectionCenter || d > DirectionIJ || (pent && d == DirectionK) {
		return invalidVertexNum
	}

	rot := vertexRotations(c)
	if pent {
		return (directionToVertexNumPent[d] + numPentVerts - rot) % numPentVerts
	}
	return (directionToVertexNumHex[d] + numHexVerts - rot) % numHexVerts
}

// directionForVertexNum returns the direction of the neighbor between the
// given vertex number and the next in sequence, or false for an out-of-range
// vertex number.
func directionForVertexNum(c Cell, vertexNum int) (Direction, bool) {
	rot := vertexRotations(c)
	if c.IsPentagon() {
		if vertexNum < 0 || vertexNum >= numPentVerts {
			return 0, false
		}
		return vertexNumToDirectionPent[(vertexNum+rot)%numPentVerts], true
	}
	if vertexNum < 0 || vertexNum >= numHexVerts {
		return 0, false
	}
	return vertexNumToDirectionHex[(vertexNum+rot)%numHexVerts], true
}

func newVertex(owner Cell, vertexNum int) Vertex {
	v := owner&^modeMask&^reservedMask | Cell(modeVertex)<<modeOffset
	return Vertex(v | Cell(vertexNum)<<reservedOffset)
}

// NewVertex validates a raw 64-bit value as a canonical vertex index.
func NewVertex(raw uint64) (Vertex, error) {
	v := Vertex(raw)

	if raw>>highBitOffset != 0 {
		return 0, &ErrInvalidVertexIndex{Value: raw, Reason: "tainted high bit"}
	}
	if Cell(v)&modeMask != Cell(modeVertex)<<modeOffset {
		return 0, &ErrInvalidVertexIndex{Value: raw, Reason: "wrong mode"}
	}

	owner, err := NewCell(uint64(v.Owner()))
	if err != nil {
		return 0, &ErrInvalidVertexIndex{Value: raw, Reason: "invalid owner cell", cause: err}
	}

	// the owner and vertex number are canonical exactly when recreating the
	// vertex reproduces the input
	canonical, err := owner.Vertex(v.Num())
	if err != nil {
		return 0, &ErrInvalidVertexIndex{Value: raw, Reason: "invalid vertex number", cause: err}
	}
	if canonical != v {
		return 0, &ErrInvalidVertexIndex{Value: raw, Reason: "not the canonical owner"}
	}

	return v, nil
}

// ParseVertex parses the canonical lowercase-hex representation.
func ParseVertex(s string) (Vertex, error) {
	raw, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, &ErrInvalidVertexIndex{Value: 0, Reason: "not a 64-bit hex value", cause: err}
	}
	return NewVertex(raw)
}

// Owner returns the cell owning the vertex.
func (v Vertex) Owner() Cell {
	return Cell(v)&^modeMask&^reservedMask | Cell(modeCell)<<modeOffset
}

// Num returns the vertex number within the owner cell.
func (v Vertex) Num() int {
	return int(v >> reservedOffset & 0x7)
}

// String returns the canonical lowercase hex representation.
func (v Vertex) String() string {
	return strconv.FormatUint(uint64(v), 16)
}

// ToLatLng returns the spherical position of the vertex.
func (v Vertex) ToLatLng() LatLng {
	owner := v.Owner()
	f := cellToFaceIJK(owner)
	res := owner.Resolution()

	var b Boundary
	if owner.IsPentagon() {
		b = f.boundaryPent(res, v.Num(), 1)
	} else {
		b = f.boundaryHex(res, v.Num(), 1)
	}
	return b.Vert(0)
}

// Vertex returns the canonical index of the cell's vertexNum-th topological
// vertex. The owner of a shared vertex is the lowest-numbered of the cells
// around it, so the result may be anchored at a neighbor.
func (c Cell) Vertex(vertexNum int) (Vertex, error) {
	numVerts := numHexVerts
	if c.IsPentagon() {
		numVerts = numPentVerts
	}
	if vertexNum < 0 || vertexNum >= numVerts {
		return 0, &ErrInvalidVertex{Value: vertexNum}
	}

	owner := c

	// the vertex sits between the edges to its left and right neighbors
	leftDir, _ := directionForVertexNum(c, vertexNum)
	left, _, err := neighborRotations(c, leftDir, 0)
	if err != nil {
		return 0, err
	}
	if left < owner {
		owner = left
	}

	rightDir, _ := directionForVertexNum(c, (vertexNum+numVerts-1)%numVerts)
	right, _, err := neighborRotations(c, rightDir, 0)
	if err != nil {
		return 0, err
	}
	if right < owner {
		owner = right
	}

	ownerVertexNum := vertexNum
	if owner != c {
		dir, ok := directionForNeighbor(owner, c)
		if !ok {
			return 0, &ErrInvalidVertex{Value: vertexNum}
		}

		// the shared edge runs in opposite senses in the two cells: seen from
		// the left neighbor our vertex ends its edge to c, seen from the
		// right neighbor it starts it
		ownerVertexNum = vertexNumForDirection(owner, dir)
		if owner == left {
			ownerNumVerts := numHexVerts
			if owner.IsPentagon() {
				ownerNumVerts = numPentVerts
			}
			ownerVertexNum = (ownerVertexNum + 1) % ownerNumVerts
		}
	}

	return newVertex(owner, ownerVertexNum), nil
}

// Vertexes returns the canonical indexes of all vertexes of the cell, 6 for
// a hexagon and 5 for a pentagon.
func (c Cell) Vertexes() ([]Vertex, error) {
	n := numHexVerts
	if c.IsPentagon() {
		n = numPentVerts
	}

	out := make([]Vertex, n)
	for i := range out {
		v, err := c.Vertex(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
