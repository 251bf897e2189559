package hexglobe

// baseCellEntry is the static description of a base cell: the face it is
// centered on, its res-0 coordinate on that face, and whether it is a
// pentagon. The cwOffsetPent faces are filled in during init.
type baseCellEntry struct {
	homeFace     int
	homeCoord    CoordIJK
	isPentagon   bool
	cwOffsetPent [2]int
}

// baseCellData holds the home position of every base cell. All derived
// adjacency tables are built from this and the face neighbor maps.
var baseCellData = [NumBaseCells]baseCellEntry{
	{homeFace: 1, homeCoord: CoordIJK{1, 0, 0}},                    // 0
	{homeFace: 2, homeCoord: CoordIJK{1, 1, 0}},                    // 1
	{homeFace: 1, homeCoord: CoordIJK{0, 0, 0}},                    // 2
	{homeFace: 2, homeCoord: CoordIJK{1, 0, 0}},                    // 3
	{homeFace: 0, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true},  // 4
	{homeFace: 1, homeCoord: CoordIJK{1, 1, 0}},                    // 5
	{homeFace: 1, homeCoord: CoordIJK{0, 0, 1}},                    // 6
	{homeFace: 2, homeCoord: CoordIJK{0, 0, 0}},                    // 7
	{homeFace: 0, homeCoord: CoordIJK{1, 0, 0}},                    // 8
	{homeFace: 2, homeCoord: CoordIJK{0, 1, 0}},                    // 9
	{homeFace: 1, homeCoord: CoordIJK{0, 1, 0}},                    // 10
	{homeFace: 1, homeCoord: CoordIJK{0, 1, 1}},                    // 11
	{homeFace: 3, homeCoord: CoordIJK{1, 0, 0}},                    // 12
	{homeFace: 3, homeCoord: CoordIJK{1, 1, 0}},                    // 13
	{homeFace: 11, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true}, // 14
	{homeFace: 4, homeCoord: CoordIJK{1, 0, 0}},                    // 15
	{homeFace: 0, homeCoord: CoordIJK{0, 0, 0}},                    // 16
	{homeFace: 6, homeCoord: CoordIJK{0, 1, 0}},                    // 17
	{homeFace: 0, homeCoord: CoordIJK{0, 0, 1}},                    // 18
	{homeFace: 2, homeCoord: CoordIJK{0, 1, 1}},                    // 19
	{homeFace: 7, homeCoord: CoordIJK{0, 0, 1}},                    // 20
	{homeFace: 2, homeCoord: CoordIJK{0, 0, 1}},                    // 21
	{homeFace: 0, homeCoord: CoordIJK{1, 1, 0}},                    // 22
	{homeFace: 6, homeCoord: CoordIJK{0, 0, 1}},                    // 23
	{homeFace: 10, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true}, // 24
	{homeFace: 6, homeCoord: CoordIJK{0, 0, 0}},                    // 25
	{homeFace: 3, homeCoord: CoordIJK{0, 0, 0}},                    // 26
	{homeFace: 11, homeCoord: CoordIJK{1, 0, 0}},                   // 27
	{homeFace: 4, homeCoord: CoordIJK{1, 1, 0}},                    // 28
	{homeFace: 3, homeCoord: CoordIJK{0, 1, 0}},                    // 29
	{homeFace: 0, homeCoord: CoordIJK{0, 1, 1}},                    // 30
	{homeFace: 4, homeCoord: CoordIJK{0, 0, 0}},                    // 31
	{homeFace: 5, homeCoord: CoordIJK{0, 1, 0}},                    // 32
	{homeFace: 0, homeCoord: CoordIJK{0, 1, 0}},                    // 33
	{homeFace: 7, homeCoord: CoordIJK{0, 1, 0}},                    // 34
	{homeFace: 11, homeCoord: CoordIJK{1, 1, 0}},                   // 35
	{homeFace: 7, homeCoord: CoordIJK{0, 0, 0}},                    // 36
	{homeFace: 10, homeCoord: CoordIJK{1, 0, 0}},                   // 37
	{homeFace: 12, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true}, // 38
	{homeFace: 6, homeCoord: CoordIJK{1, 0, 1}},                    // 39
	{homeFace: 7, homeCoord: CoordIJK{1, 0, 1}},                    // 40
	{homeFace: 4, homeCoord: CoordIJK{0, 0, 1}},                    // 41
	{homeFace: 3, homeCoord: CoordIJK{0, 0, 1}},                    // 42
	{homeFace: 3, homeCoord: CoordIJK{0, 1, 1}},                    // 43
	{homeFace: 4, homeCoord: CoordIJK{0, 1, 0}},                    // 44
	{homeFace: 6, homeCoord: CoordIJK{1, 0, 0}},                    // 45
	{homeFace: 11, homeCoord: CoordIJK{0, 0, 0}},                   // 46
	{homeFace: 8, homeCoord: CoordIJK{0, 0, 1}},                    // 47
	{homeFace: 5, homeCoord: CoordIJK{0, 0, 1}},                    // 48
	{homeFace: 14, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true}, // 49
	{homeFace: 5, homeCoord: CoordIJK{0, 0, 0}},                    // 50
	{homeFace: 12, homeCoord: CoordIJK{1, 0, 0}},                   // 51
	{homeFace: 10, homeCoord: CoordIJK{1, 1, 0}},                   // 52
	{homeFace: 4, homeCoord: CoordIJK{0, 1, 1}},                    // 53
	{homeFace: 12, homeCoord: CoordIJK{1, 1, 0}},                   // 54
	{homeFace: 7, homeCoord: CoordIJK{1, 0, 0}},                    // 55
	{homeFace: 11, homeCoord: CoordIJK{0, 1, 0}},                   // 56
	{homeFace: 10, homeCoord: CoordIJK{0, 0, 0}},                   // 57
	{homeFace: 13, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true}, // 58
	{homeFace: 10, homeCoord: CoordIJK{0, 0, 1}},                   // 59
	{homeFace: 11, homeCoord: CoordIJK{0, 0, 1}},                   // 60
	{homeFace: 9, homeCoord: CoordIJK{0, 1, 0}},                    // 61
	{homeFace: 8, homeCoord: CoordIJK{0, 1, 0}},                    // 62
	{homeFace: 6, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true},  // 63
	{homeFace: 8, homeCoord: CoordIJK{0, 0, 0}},                    // 64
	{homeFace: 9, homeCoord: CoordIJK{0, 0, 1}},                    // 65
	{homeFace: 14, homeCoord: CoordIJK{1, 0, 0}},                   // 66
	{homeFace: 5, homeCoord: CoordIJK{1, 0, 1}},                    // 67
	{homeFace: 16, homeCoord: CoordIJK{0, 1, 1}},                   // 68
	{homeFace: 8, homeCoord: CoordIJK{1, 0, 1}},                    // 69
	{homeFace: 5, homeCoord: CoordIJK{1, 0, 0}},                    // 70
	{homeFace: 12, homeCoord: CoordIJK{0, 0, 0}},                   // 71
	{homeFace: 7, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true},  // 72
	{homeFace: 12, homeCoord: CoordIJK{0, 1, 0}},                   // 73
	{homeFace: 10, homeCoord: CoordIJK{0, 1, 0}},                   // 74
	{homeFace: 9, homeCoord: CoordIJK{0, 0, 0}},                    // 75
	{homeFace: 13, homeCoord: CoordIJK{1, 0, 0}},                   // 76
	{homeFace: 16, homeCoord: CoordIJK{0, 0, 1}},                   // 77
	{homeFace: 15, homeCoord: CoordIJK{0, 1, 1}},                   // 78
	{homeFace: 15, homeCoord: CoordIJK{0, 1, 0}},                   // 79
	{homeFace: 16, homeCoord: CoordIJK{0, 1, 0}},                   // 80
	{homeFace: 14, homeCoord: CoordIJK{1, 1, 0}},                   // 81
	{homeFace: 13, homeCoord: CoordIJK{1, 1, 0}},                   // 82
	{homeFace: 5, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true},  // 83
	{homeFace: 8, homeCoord: CoordIJK{1, 0, 0}},                    // 84
	{homeFace: 14, homeCoord: CoordIJK{0, 0, 0}},                   // 85
	{homeFace: 9, homeCoord: CoordIJK{1, 0, 1}},                    // 86
	{homeFace: 14, homeCoord: CoordIJK{0, 0, 1}},                   // 87
	{homeFace: 17, homeCoord: CoordIJK{0, 0, 1}},                   // 88
	{homeFace: 12, homeCoord: CoordIJK{0, 0, 1}},                   // 89
	{homeFace: 16, homeCoord: CoordIJK{0, 0, 0}},                   // 90
	{homeFace: 17, homeCoord: CoordIJK{0, 1, 1}},                   // 91
	{homeFace: 15, homeCoord: CoordIJK{0, 0, 1}},                   // 92
	{homeFace: 16, homeCoord: CoordIJK{1, 0, 1}},                   // 93
	{homeFace: 9, homeCoord: CoordIJK{1, 0, 0}},                    // 94
	{homeFace: 15, homeCoord: CoordIJK{0, 0, 0}},                   // 95
	{homeFace: 13, homeCoord: CoordIJK{0, 0, 0}},                   // 96
	{homeFace: 8, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true},  // 97
	{homeFace: 13, homeCoord: CoordIJK{0, 1, 0}},                   // 98
	{homeFace: 17, homeCoord: CoordIJK{1, 0, 1}},                   // 99
	{homeFace: 19, homeCoord: CoordIJK{0, 1, 0}},                   // 100
	{homeFace: 14, homeCoord: CoordIJK{0, 1, 0}},                   // 101
	{homeFace: 19, homeCoord: CoordIJK{0, 1, 1}},                   // 102
	{homeFace: 17, homeCoord: CoordIJK{0, 1, 0}},                   // 103
	{homeFace: 13, homeCoord: CoordIJK{0, 0, 1}},                   // 104
	{homeFace: 17, homeCoord: CoordIJK{0, 0, 0}},                   // 105
	{homeFace: 16, homeCoord: CoordIJK{1, 0, 0}},                   // 106
	{homeFace: 9, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true},  // 107
	{homeFace: 15, homeCoord: CoordIJK{1, 0, 1}},                   // 108
	{homeFace: 15, homeCoord: CoordIJK{1, 0, 0}},                   // 109
	{homeFace: 18, homeCoord: CoordIJK{0, 1, 1}},                   // 110
	{homeFace: 18, homeCoord: CoordIJK{0, 0, 1}},                   // 111
	{homeFace: 19, homeCoord: CoordIJK{0, 0, 1}},                   // 112
	{homeFace: 17, homeCoord: CoordIJK{1, 0, 0}},                   // 113
	{homeFace: 19, homeCoord: CoordIJK{0, 0, 0}},                   // 114
	{homeFace: 18, homeCoord: CoordIJK{0, 1, 0}},                   // 115
	{homeFace: 18, homeCoord: CoordIJK{1, 0, 1}},                   // 116
	{homeFace: 19, homeCoord: CoordIJK{2, 0, 0}, isPentagon: true}, // 117
	{homeFace: 19, homeCoord: CoordIJK{1, 0, 0}},                   // 118
	{homeFace: 18, homeCoord: CoordIJK{0, 0, 0}},                   // 119
	{homeFace: 19, homeCoord: CoordIJK{1, 0, 1}},                   // 120
	{homeFace: 18, homeCoord: CoordIJK{1, 0, 0}},                   // 121
}

// faceIjkBaseCells resolves a res-0 face coordinate to the base cell located
// there and the rotation between the face's coordinate system and the
// cell's canonical one. Built during init from the home positions.
var faceIjkBaseCells [numIcosaFaces][3][3][3]baseCellRotation

// baseCellNeighbors gives the adjacent base cell in each direction.
// Pentagons have no neighbor across their deleted k axis.
var baseCellNeighbors [NumBaseCells][7]BaseCell

// baseCellNeighbor60CCWRots gives the number of 60° ccw rotations of the
// coordinate system picked up when crossing into the neighbor.
var baseCellNeighbor60CCWRots [NumBaseCells][7]int

func init() {
	buildFaceIjkBaseCells()
	buildBaseCellNeighbors()
}

// rotateCCWTimes applies n 60° ccw rotations to c.
func rotateCCWTimes(c CoordIJK, n int) CoordIJK {
	for ; n > 0; n-- {
		c = c.RotateCCW()
	}
	return c
}

// inRes0Range reports whether every component fits the res-0 lookup cube.
func inRes0Range(c CoordIJK) bool {
	return c.I <= 2 && c.J <= 2 && c.K <= 2
}

// buildFaceIjkBaseCells fills the res-0 lookup cube. Home positions land
// with rotation zero; cells on adjacent faces are carried across the shared
// edge, picking up the edge's rotation; pentagons are walked around their
// icosahedron vertex onto every face that touches it.
func buildFaceIjkBaseCells() {
	for f := range faceIjkBaseCells {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					faceIjkBaseCells[f][i][j][k] = baseCellRotation{invalidBaseCell, 0}
				}
			}
		}
	}

	set := func(f int, c CoordIJK, b BaseCell, rot int) {
		faceIjkBaseCells[f][c.I][c.J][c.K] = baseCellRotation{b, ((rot % 6) + 6) % 6}
	}

	// step carries a coordinate across the given quadrant edge of face f,
	// returning the new face, coordinate and accumulated ccw rotation.
	step := func(f int, c CoordIJK, rot int, quad int) (int, CoordIJK, int) {
		o := faceNeighbors[f][quad]
		c = rotateCCWTimes(c, o.ccwRot60).Add(o.translate).Normalize()
		return o.face, c, rot + 6 - o.ccwRot60
	}

	for b := 0; b < NumBaseCells; b++ {
		d := baseCellData[b]
		set(d.homeFace, d.homeCoord, BaseCell(b), 0)
	}

	// A carried coordinate can land inside the cube without the cell
	// actually overlapping that face; the edge transforms are only valid
	// near their edge. Confirm a candidate geometrically: the slot claims
	// a base cell only when that cell's center is the nearest of all 122.
	var centers [NumBaseCells]Vec3d
	for b := 0; b < NumBaseCells; b++ {
		d := baseCellData[b]
		centers[b] = hex2dToGeo(d.homeCoord.Hex2d(), d.homeFace, 0, false).Vec3()
	}
	nearest := func(f int, c CoordIJK) BaseCell {
		p := hex2dToGeo(c.Hex2d(), f, 0, false).Vec3()
		best, bestDist := BaseCell(0), centers[0].PointSquareDistance(p)
		for b := 1; b < NumBaseCells; b++ {
			if dist := centers[b].PointSquareDistance(p); dist < bestDist {
				best, bestDist = BaseCell(b), dist
			}
		}
		return best
	}

	// hexagons reach at most one face beyond home
	for b := 0; b < NumBaseCells; b++ {
		d := baseCellData[b]
		if d.isPentagon {
			continue
		}
		for _, q := range []int{quadIJ, quadKI, quadJK} {
			f, c, rot := step(d.homeFace, d.homeCoord, 0, q)
			if inRes0Range(c) && nearest(f, c) == BaseCell(b) {
				set(f, c, BaseCell(b), rot)
			}
		}
	}

	// pentagons touch five faces around their vertex
	for b := 0; b < NumBaseCells; b++ {
		d := baseCellData[b]
		if !d.isPentagon {
			continue
		}
		if BaseCell(b).isPolarPentagon() {
			// the five polar faces cycle through ki edges
			f, c, rot := d.homeFace, d.homeCoord, 0
			for n := 0; n < 4; n++ {
				f, c, rot = step(f, c, rot, quadKI)
				set(f, c, BaseCell(b), rot)
			}
			continue
		}

		f, c, rot := step(d.homeFace, d.homeCoord, 0, quadKI)
		set(f, c, BaseCell(b), rot)

		f, c, rot = d.homeFace, d.homeCoord, 0
		for _, q := range []int{quadIJ, quadJK, quadKI} {
			f, c, rot = step(f, c, rot, q)
			set(f, c, BaseCell(b), rot)
		}
	}

	// alias the non-canonical coordinate combinations
	for f := range faceIjkBaseCells {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					n := CoordIJK{i, j, k}.Normalize()
					faceIjkBaseCells[f][i][j][k] = faceIjkBaseCells[f][n.I][n.J][n.K]
				}
			}
		}
	}
}

// pentagonCwOffsetFaces lists, for each non-polar pentagon, the two faces on
// which its coordinate system is clockwise offset from canonical.
var pentagonCwOffsetFaces = map[BaseCell][2]int{
	14:  {2, 6},
	24:  {1, 5},
	38:  {3, 7},
	49:  {0, 9},
	58:  {4, 8},
	63:  {11, 15},
	72:  {12, 16},
	83:  {10, 19},
	97:  {13, 17},
	107: {14, 18},
}

// buildBaseCellNeighbors derives the per-direction neighbor and rotation
// tables by stepping one res-0 cell in each direction from every home
// position and resolving the landing spot through the lookup cube.
// A pentagon's i-side neighbors first fold across the deleted k axis.
func buildBaseCellNeighbors() {
	for b := 0; b < NumBaseCells; b++ {
		d := baseCellData[b]

		if faces, ok := pentagonCwOffsetFaces[BaseCell(b)]; ok {
			baseCellData[b].cwOffsetPent = faces
		} else {
			baseCellData[b].cwOffsetPent = [2]int{-1, -1}
		}

		baseCellNeighbors[b][DirectionCenter] = BaseCell(b)
		baseCellNeighbor60CCWRots[b][DirectionCenter] = 0

		for dir := DirectionK; dir <= DirectionIJ; dir++ {
			if d.isPentagon && dir == DirectionK {
				baseCellNeighbors[b][dir] = invalidBaseCell
				baseCellNeighbor60CCWRots[b][dir] = -1
				continue
			}

			f := d.homeFace
			c := d.homeCoord.Add(unitVecs[dir]).Normalize()
			rot := 0

			if d.isPentagon && c.I == 3 && c.J == 0 {
				// fold across the deleted axis
				origin := CoordIJK{2, 0, 0}
				c = c.Sub(origin).RotateCW().Add(origin).Normalize()
				rot--
			}

			for !inRes0Range(c) {
				var q int
				switch {
				case c.K > 0 && c.J > 0:
					q = quadJK
				case c.K > 0:
					q = quadKI
				default:
					q = quadIJ
				}
				o := faceNeighbors[f][q]
				c = rotateCCWTimes(c, o.ccwRot60).Add(o.translate).Normalize()
				f = o.face
				rot += o.ccwRot60
			}

			e := faceIjkBaseCells[f][c.I][c.J][c.K]
			baseCellNeighbors[b][dir] = e.baseCell
			baseCellNeighbor60CCWRots[b][dir] = (((rot + e.ccwRot60) % 6) + 6) % 6
		}
	}
}
