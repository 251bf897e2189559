package hexglobe

// maxBoundaryVerts is the maximum number of boundary vertices of a cell: the
// hexagon's six plus up to four distortion vertices where Class III cell
// edges cross icosahedron edges.
const maxBoundaryVerts = 10

// Boundary is the ordered ccw vertex loop of a cell or edge on the sphere.
type Boundary struct {
	verts [maxBoundaryVerts]LatLng
	n     int
}

// NumVerts returns the number of vertices.
func (b Boundary) NumVerts() int { return b.n }

// Vert returns the vertex at index i.
func (b Boundary) Vert(i int) LatLng { return b.verts[i] }

// Verts returns the vertices as a slice.
func (b Boundary) Verts() []LatLng {
	out := make([]LatLng, b.n)
	copy(out, b.verts[:b.n])
	return out
}

func (b *Boundary) push(v LatLng) {
	b.verts[b.n] = v
	b.n++
}
