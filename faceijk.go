package hexglobe

import "math"

const (
	// sqrt7 is the edge scaling factor between consecutive resolutions.
	sqrt7 = 2.6457513110645905905016157536392604257102

	// ap7Rot is the rotation angle (~19.1°) between Class II and Class III
	// grid orientations, asin(sqrt(3/28)).
	ap7Rot = 0.333473172251832115336090755351601070065900389

	// res0Gnomonic is the scaled radius of a resolution-0 cell on the
	// gnomonic projection plane.
	res0Gnomonic = 0.38196601125010500003
)

// FaceIJK is an IJK coordinate anchored to one of the 20 icosahedron faces.
type FaceIJK struct {
	Face  int
	Coord CoordIJK
}

// overage describes whether a coordinate left its anchoring face.
type overage int

const (
	overageNone overage = iota
	// overageFaceEdge: the coordinate sits exactly on a face edge
	// (substrate grids only).
	overageFaceEdge
	// overageNewFace: the coordinate belongs to a neighboring face.
	overageNewFace
)

// quadrant indexes into faceNeighbors.
const (
	quadCentral = 0
	quadIJ      = 1
	quadKI      = 2
	quadJK      = 3
)

// faceOrientIJK describes the transformation into an adjacent face's
// coordinate system: the destination face, the translation of the origin
// (in res-0 units) and the number of 60° ccw rotations.
type faceOrientIJK struct {
	face      int
	translate CoordIJK
	ccwRot60  int
}

// geoToFaceIJK projects a spherical coordinate onto the grid of the closest
// icosahedron face at the given resolution.
func geoToFaceIJK(g LatLng, res Resolution) FaceIJK {
	face, v := geoToHex2d(g, res)
	return FaceIJK{Face: face, Coord: hex2dToCoordIJK(v)}
}

// geoToHex2d projects a spherical coordinate gnomonically onto the plane of
// the closest face, scaled for the resolution.
func geoToHex2d(g LatLng, res Resolution) (int, Vec2d) {
	p := g.Vec3()

	// find the face with the closest center (squared chord distance)
	face, sqd := 0, p.PointSquareDistance(faceCenterPoint[0])
	for f := 1; f < numIcosaFaces; f++ {
		if d := p.PointSquareDistance(faceCenterPoint[f]); d < sqd {
			face, sqd = f, d
		}
	}

	// cos(r) = 1 - 2*sin^2(r/2) = 1 - 2*(sqd/4)
	r := math.Acos(1 - sqd/2)
	if r < epsilon {
		return face, Vec2d{}
	}

	// angle between the face's i-axis and the point
	theta := posAngleRads(faceAxesAzRadsCII[face][0] -
		posAngleRads(faceCenterGeo[face].azimuthTo(g)))

	// adjust theta for Class III
	if res.IsClassIII() {
		theta = posAngleRads(theta - ap7Rot)
	}

	// perform gnomonic scaling of r and scale for the resolution
	r = math.Tan(r) / res0Gnomonic
	for i := Resolution(0); i < res; i++ {
		r *= sqrt7
	}

	return face, Vec2d{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// hex2dToGeo inverse-projects a face-local 2D point back onto the sphere.
// substrate marks coordinates on the aperture 3-3-r substrate grid used for
// boundary vertexes.
func hex2dToGeo(v Vec2d, face int, res Resolution, substrate bool) LatLng {
	r := v.Magnitude()
	if r < epsilon {
		return faceCenterGeo[face]
	}

	theta := math.Atan2(v.Y, v.X)

	// scale the distance back down to a res-0 gnomonic plane
	for i := Resolution(0); i < res; i++ {
		r /= sqrt7
	}
	if substrate {
		r /= 3
		if res.IsClassIII() {
			r /= sqrt7
		}
	}
	r = math.Atan(r * res0Gnomonic)

	if !substrate && res.IsClassIII() {
		theta = posAngleRads(theta + ap7Rot)
	}

	// find the azimuth relative to the face's i-axis
	theta = posAngleRads(faceAxesAzRadsCII[face][0] - theta)

	return faceCenterGeo[face].atDistance(theta, r)
}

// toGeo returns the spherical center of the coordinate at the resolution.
func (f FaceIJK) toGeo(res Resolution) LatLng {
	return hex2dToGeo(f.Coord.Hex2d(), f.Face, res, false)
}

// adjustOverageClassII corrects the coordinate when it lands on an adjacent
// face. Only defined on Class II grids. pentLeading4 folds the deleted
// k-axis subsequence of a pentagon cell whose leading digit is I.
func (f *FaceIJK) adjustOverageClassII(res Resolution, pentLeading4, substrate bool) overage {
	maxDim := maxDimByCIIres[res]
	if substrate {
		maxDim *= 3
	}

	c := f.Coord
	dim := c.I + c.J + c.K

	if substrate && dim == maxDim {
		return overageFaceEdge
	}
	if dim <= maxDim {
		return overageNone
	}

	var orient faceOrientIJK
	switch {
	case c.K > 0 && c.J > 0: // jk quadrant
		orient = faceNeighbors[f.Face][quadJK]
	case c.K > 0: // ik quadrant
		orient = faceNeighbors[f.Face][quadKI]

		if pentLeading4 {
			// translate the origin to the pentagon center, rotate out of the
			// deleted subsequence, translate back
			origin := CoordIJK{I: maxDim}
			c = c.Sub(origin).RotateCW().Add(origin)
		}
	default: // ij quadrant
		orient = faceNeighbors[f.Face][quadIJ]
	}

	f.Face = orient.face

	for i := 0; i < orient.ccwRot60; i++ {
		c = c.RotateCCW()
	}

	unitScale := unitScaleByCIIres[res]
	if substrate {
		unitScale *= 3
	}
	c = c.Add(orient.translate.Scale(unitScale)).Normalize()
	f.Coord = c

	// overage points on pentagon boundaries can end up on edges
	if substrate && c.I+c.J+c.K == maxDim {
		return overageFaceEdge
	}
	return overageNewFace
}

// adjustPentVertOverage corrects a pentagon boundary vertex, which may
// require multiple corrections.
func (f *FaceIJK) adjustPentVertOverage(res Resolution) {
	for f.adjustOverageClassII(res, false, true) == overageNewFace {
	}
}

const (
	numHexVerts  = 6
	numPentVerts = 5
)

// Origin-centered cell vertexes on the aperture 3-3-r substrate grid
// (Class II) and the 3-3-r-7r substrate grid (Class III).
var (
	hexVertsCII = [numHexVerts]CoordIJK{
		{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2}, {2, 0, 1},
	}
	hexVertsCIII = [numHexVerts]CoordIJK{
		{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5}, {5, 0, 1},
	}
)

// toVerts returns the cell's vertexes as substrate-grid coordinates along
// with the adjusted (substrate) resolution. n is 5 for pentagons.
func (f FaceIJK) toVerts(res Resolution, n int) ([numHexVerts]FaceIJK, Resolution) {
	verts := hexVertsCII
	if res.IsClassIII() {
		verts = hexVertsCIII
	}

	// adjust the center point into the aperture 3-3-r substrate grid
	c := f.Coord.DownAp3().DownAp3R()

	// Class III needs one more aperture-7r step down to reach a Class II
	// substrate grid
	adjRes := res
	if res.IsClassIII() {
		c = c.DownAp7R()
		adjRes++
	}

	var out [numHexVerts]FaceIJK
	for v := 0; v < n; v++ {
		out[v] = FaceIJK{
			Face:  f.Face,
			Coord: c.Add(verts[v]).Normalize(),
		}
	}
	return out, adjRes
}

// icosaEdgeVerts returns the substrate-plane corners of a face at the
// substrate resolution.
func icosaEdgeVerts(adjRes Resolution) (v0, v1, v2 Vec2d) {
	maxDim := float64(maxDimByCIIres[adjRes])
	v0 = Vec2d{X: 3 * maxDim}
	v1 = Vec2d{X: -1.5 * maxDim, Y: 3 * sin60 * maxDim}
	v2 = Vec2d{X: -1.5 * maxDim, Y: -3 * sin60 * maxDim}
	return
}

// boundaryHex computes the boundary of a hexagonal cell anchored at f,
// starting at vertex `start` for `length` vertexes.
func (f FaceIJK) boundaryHex(res Resolution, start, length int) Boundary {
	fijkVerts, adjRes := f.toVerts(res, numHexVerts)

	// one additional iteration in case of a distortion vertex on the last
	// edge when returning the entire loop
	additional := 0
	if length == numHexVerts {
		additional = 1
	}

	var b Boundary

	lastFace := -1
	lastOverage := overageNone

	for vert := start; vert < start+length+additional; vert++ {
		v := vert % numHexVerts

		fijk := fijkVerts[v]
		ov := fijk.adjustOverageClassII(adjRes, false, true)

		// Each icosahedron face is a different projection plane: a Class III
		// cell edge that crosses a face edge needs an extra vertex at the
		// intersection, projected in the shared substrate space.
		if res.IsClassIII() && vert > start && fijk.Face != lastFace && lastOverage != overageFaceEdge {
			lastV := (v + 5) % numHexVerts
			orig2d0 := fijkVerts[lastV].Coord.Hex2d()
			orig2d1 := fijkVerts[v].Coord.Hex2d()

			v0, v1, v2 := icosaEdgeVerts(adjRes)

			face2 := lastFace
			if lastFace == f.Face {
				face2 = fijk.Face
			}

			var edge0, edge1 Vec2d
			switch adjacentFaceDir[f.Face][face2] {
			case quadIJ:
				edge0, edge1 = v0, v1
			case quadJK:
				edge0, edge1 = v1, v2
			default: // KI
				edge0, edge1 = v2, v0
			}

			inter := intersect(orig2d0, orig2d1, edge0, edge1)

			// an intersection at a cell vertex needs no extra point: both
			// adjacent edges already lie on single faces
			atVertex := vec2dAlmostEqual(orig2d0, inter) || vec2dAlmostEqual(orig2d1, inter)
			if !atVertex {
				b.push(hex2dToGeo(inter, f.Face, adjRes, true))
			}
		}

		// vert == start+numHexVerts is only used to test for a possible
		// intersection on the last edge
		if vert < start+numHexVerts {
			b.push(hex2dToGeo(fijk.Coord.Hex2d(), fijk.Face, adjRes, true))
		}

		lastFace = fijk.Face
		lastOverage = ov
	}

	return b
}

// boundaryPent computes the boundary of a pentagonal cell anchored at f.
func (f FaceIJK) boundaryPent(res Resolution, start, length int) Boundary {
	fijkVerts, adjRes := f.toVerts(res, numPentVerts)

	additional := 0
	if length == numPentVerts {
		additional = 1
	}

	var b Boundary
	var lastFijk FaceIJK

	for vert := start; vert < start+length+additional; vert++ {
		v := vert % numPentVerts

		fijk := fijkVerts[v]
		fijk.adjustPentVertOverage(adjRes)

		// all Class III pentagon edges cross icosahedron edges; Class II
		// pentagons have their vertexes on the edges instead
		if res.IsClassIII() && vert > start {
			tmp := fijk

			orig2d0 := lastFijk.Coord.Hex2d()

			// transform the current vertex into the last vertex's face frame
			orient := faceNeighbors[tmp.Face][adjacentFaceDir[tmp.Face][lastFijk.Face]]
			tmp.Face = orient.face

			c := tmp.Coord
			for i := 0; i < orient.ccwRot60; i++ {
				c = c.RotateCCW()
			}
			c = c.Add(orient.translate.Scale(unitScaleByCIIres[adjRes] * 3)).Normalize()
			tmp.Coord = c

			orig2d1 := c.Hex2d()

			v0, v1, v2 := icosaEdgeVerts(adjRes)

			var edge0, edge1 Vec2d
			switch adjacentFaceDir[tmp.Face][fijk.Face] {
			case quadIJ:
				edge0, edge1 = v0, v1
			case quadJK:
				edge0, edge1 = v1, v2
			default: // KI
				edge0, edge1 = v2, v0
			}

			inter := intersect(orig2d0, orig2d1, edge0, edge1)
			b.push(hex2dToGeo(inter, tmp.Face, adjRes, true))
		}

		if vert < start+numPentVerts {
			b.push(hex2dToGeo(fijk.Coord.Hex2d(), fijk.Face, adjRes, true))
		}

		lastFijk = fijk
	}

	return b
}

func vec2dAlmostEqual(a, b Vec2d) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}
