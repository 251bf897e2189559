package hexglobe

// BaseCell is one of the 122 resolution-0 cells, 12 of which are pentagons.
type BaseCell uint8

const (
	// NumBaseCells is the number of resolution-0 cells.
	NumBaseCells = 122

	// invalidBaseCell marks an empty slot in the res-0 lookup cube.
	invalidBaseCell BaseCell = 127

	// maxFaceCount is the maximum number of icosahedron faces a single cell
	// may intersect (5, for a pentagon).
	maxFaceCount = 5
)

// NewBaseCell validates and returns a BaseCell.
func NewBaseCell(v int) (BaseCell, error) {
	if v < 0 || v >= NumBaseCells {
		return 0, &ErrInvalidBaseCell{Value: v}
	}
	return BaseCell(v), nil
}

// IsPentagon reports whether the base cell is one of the 12 pentagons.
func (b BaseCell) IsPentagon() bool { return baseCellData[b].isPentagon }

// isPolarPentagon reports whether the base cell is one of the two pentagons
// centered on an icosahedron pole vertex.
func (b BaseCell) isPolarPentagon() bool { return b == 4 || b == 117 }

// homeFijk returns the base cell's home face and coordinate.
func (b BaseCell) homeFijk() FaceIJK {
	d := baseCellData[b]
	return FaceIJK{Face: d.homeFace, Coord: d.homeCoord}
}

// isCwOffset reports whether the pentagon base cell's coordinate system on
// the given face is clockwise offset from canonical.
func (b BaseCell) isCwOffset(face int) bool {
	d := baseCellData[b]
	return d.cwOffsetPent[0] == face || d.cwOffsetPent[1] == face
}

// Cell returns the resolution-0 cell index of the base cell.
func (b BaseCell) Cell() Cell {
	c := Cell(modeCell) << modeOffset
	c |= Cell(b) << baseCellOffset
	c |= digitMask // all digits unused
	return c
}

// BaseCells returns all 122 resolution-0 cells in base cell order.
func BaseCells() []Cell {
	out := make([]Cell, NumBaseCells)
	for b := 0; b < NumBaseCells; b++ {
		out[b] = BaseCell(b).Cell()
	}
	return out
}

// baseCellRotation is an entry of the res-0 lookup cube: the base cell found
// at a face coordinate and the number of 60° ccw rotations between the
// face's system and the cell's canonical one.
type baseCellRotation struct {
	baseCell BaseCell
	ccwRot60 int
}

// faceIjkToBaseCell resolves the base cell at a res-0 face coordinate.
func faceIjkToBaseCell(f FaceIJK) BaseCell {
	return faceIjkBaseCells[f.Face][f.Coord.I][f.Coord.J][f.Coord.K].baseCell
}

// faceIjkToBaseCellCCWrot60 resolves the rotation count at a res-0 face
// coordinate.
func faceIjkToBaseCellCCWrot60(f FaceIJK) int {
	return faceIjkBaseCells[f.Face][f.Coord.I][f.Coord.J][f.Coord.K].ccwRot60
}

// ccwRot60OnFace returns the number of 60° ccw rotations between the base
// cell's canonical frame and the given face's, or -1 when the base cell does
// not touch the face.
func (b BaseCell) ccwRot60OnFace(face int) int {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if e := faceIjkBaseCells[face][i][j][k]; e.baseCell == b {
					return e.ccwRot60
				}
			}
		}
	}
	return -1
}

// neighbor returns the base cell adjacent in the given direction, or false
// across the deleted k axis of a pentagon.
func (b BaseCell) neighbor(d Direction) (BaseCell, bool) {
	n := baseCellNeighbors[b][d]
	if n == invalidBaseCell {
		return 0, false
	}
	return n, true
}

// neighborRotations returns the number of 60° ccw rotations picked up when
// crossing into the neighboring base cell in the given direction.
func (b BaseCell) neighborRotations(d Direction) int {
	return baseCellNeighbor60CCWRots[b][d]
}

// neighborDirection returns the direction from b to the adjacent base cell
// n, or false when not neighbors.
func (b BaseCell) neighborDirection(n BaseCell) (Direction, bool) {
	for d := DirectionCenter; d <= DirectionIJ; d++ {
		if baseCellNeighbors[b][d] == n {
			return d, true
		}
	}
	return 0, false
}
