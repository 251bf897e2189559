package hexglobe

import "iter"

// ringDirections traverses a hexagonal ring counter-clockwise when applied
// in order, one edge per ring position.
var ringDirections = [6]Direction{
	DirectionJ, DirectionJK, DirectionK, DirectionIK, DirectionI, DirectionIJ,
}

// nextRingDirection moves outward to the next ring.
const nextRingDirection = DirectionI

// Per-class single-step tables: stepping from the child with digit d in
// direction dir yields a new digit and possibly a carry direction into the
// parent level. Index 1 holds the Class III orientation.
var (
	neighborNewDigit [2][7][7]Direction
	neighborAdjDigit [2][7][7]Direction
)

func init() {
	for class := 0; class < 2; class++ {
		for d := DirectionCenter; d <= DirectionIJ; d++ {
			for dir := DirectionCenter; dir <= DirectionIJ; dir++ {
				p := unitVecs[d].Add(unitVecs[dir])

				var up, center CoordIJK
				if class == 1 {
					up = p.UpAp7()
					center = up.DownAp7()
				} else {
					up = p.UpAp7R()
					center = up.DownAp7R()
				}

				newDigit, _ := p.Sub(center).Direction()
				adjDigit, _ := up.Direction()

				neighborNewDigit[class][d][dir] = newDigit
				neighborAdjDigit[class][d][dir] = adjDigit
			}
		}
	}
}

func classOf(r Resolution) int {
	if r.IsClassIII() {
		return 1
	}
	return 0
}

// neighborRotations returns the neighbor of origin in the given direction,
// where direction is interpreted after `rotations` 60° ccw rotations of the
// origin's coordinate frame. It returns the updated rotation count for the
// neighbor's frame.
//
// The step walks the digit sequence from the finest resolution up, carrying
// across parent levels until it settles, and resolves a carry past the base
// cell through the base cell adjacency tables. Crossing a pentagon's
// deleted k axis re-routes through the ik neighbor with a compensating
// rotation. The only failing move is direction k straight off a pentagon.
func neighborRotations(origin Cell, dir Direction, rotations int) (Cell, int, error) {
	current := origin

	for i := 0; i < rotations%6; i++ {
		dir = dir.RotateCCW()
	}

	newRotations := 0
	oldBaseCell := current.BaseCell()
	oldLeadingDigit := current.leadingNonZeroDigit()

	r := current.Resolution()
	for {
		if r == 0 {
			neighbor, ok := oldBaseCell.neighbor(dir)
			if !ok {
				// the deleted k edge actually borders the ik neighbor
				neighbor, _ = oldBaseCell.neighbor(DirectionIK)
				newRotations = oldBaseCell.neighborRotations(DirectionIK)
				current = current.setBaseCell(neighbor).rotate60ccw()
				rotations++
			} else {
				newRotations = oldBaseCell.neighborRotations(dir)
				current = current.setBaseCell(neighbor)
			}
			break
		}

		oldDigit := current.Digit(r)
		class := classOf(r)
		current = current.setDigit(r, neighborNewDigit[class][oldDigit][dir])

		if next := neighborAdjDigit[class][oldDigit][dir]; next != DirectionCenter {
			dir = next
			r--
			continue
		}
		// no further adjustment; the base cell is unchanged
		break
	}

	newBaseCell := current.BaseCell()

	if newBaseCell.IsPentagon() {
		adjustedKSubsequence := false

		if current.leadingNonZeroDigit() == DirectionK {
			if oldBaseCell != newBaseCell {
				// traversed into the deleted subsequence from a neighboring
				// base cell; the rotation sense depends on the shared face
				if newBaseCell.isCwOffset(baseCellData[oldBaseCell].homeFace) {
					current = current.rotate60cw()
				} else {
					current = current.rotate60ccw()
				}
				adjustedKSubsequence = true
			} else {
				switch oldLeadingDigit {
				case DirectionCenter:
					return 0, 0, ErrPentagon
				case DirectionJK:
					current = current.rotate60ccw()
					rotations++
				case DirectionIK:
					current = current.rotate60cw()
					rotations += 5
				default:
					return 0, 0, ErrHexGridRange
				}
			}
		}

		for i := 0; i < newRotations; i++ {
			current = current.rotatePent60ccw()
		}

		if newBaseCell != oldBaseCell {
			if newBaseCell.isPolarPentagon() {
				// polar pentagons have all-i neighbors
				if oldBaseCell != 118 && oldBaseCell != 8 &&
					current.leadingNonZeroDigit() != DirectionJK {
					rotations++
				}
			} else if current.leadingNonZeroDigit() == DirectionIK && !adjustedKSubsequence {
				// distortion the deleted subsequence introduces into the
				// five neighboring base cells
				rotations++
			}
		}
	} else {
		for i := 0; i < newRotations; i++ {
			current = current.rotate60ccw()
		}
	}

	return current, (rotations + newRotations) % 6, nil
}

// directionForNeighbor returns the direction from origin to its immediate
// neighbor destination, or false when not adjacent.
func directionForNeighbor(origin, destination Cell) (Direction, bool) {
	start := DirectionK
	if origin.IsPentagon() {
		start = DirectionJ
	}
	for d := start; d <= DirectionIJ; d++ {
		neighbor, _, err := neighborRotations(origin, d, 0)
		if err != nil {
			continue
		}
		if neighbor == destination {
			return d, true
		}
	}
	return 0, false
}

// IsNeighborWith reports whether the two cells share an edge. Comparing
// cells of different resolutions is an error.
func (c Cell) IsNeighborWith(o Cell) (bool, error) {
	if c.Resolution() != o.Resolution() {
		return false, ErrResolutionMismatch
	}
	if c == o {
		return false, nil
	}
	_, ok := directionForNeighbor(c, o)
	return ok, nil
}

// MaxGridDiskSize returns the number of cells a disk of radius k holds on a
// pentagon-free grid, 3k(k+1)+1; disks touching a pentagon hold fewer.
func MaxGridDiskSize(k int) int {
	return 3*k*(k+1) + 1
}

// gridDiskFast spirals outward ring by ring assuming no pentagon is
// encountered; it reports false as soon as one is, leaving the caller to
// fall back to the safe traversal.
func gridDiskFast(origin Cell, k int) ([]Cell, []int, bool) {
	out := make([]Cell, 0, MaxGridDiskSize(k))
	dists := make([]int, 0, MaxGridDiskSize(k))

	out = append(out, origin)
	dists = append(dists, 0)
	if origin.IsPentagon() {
		return nil, nil, false
	}

	ring, direction, i, rotations := 1, 0, 0, 0
	for ring <= k {
		if direction == 0 && i == 0 {
			var err error
			origin, rotations, err = neighborRotations(origin, nextRingDirection, rotations)
			if err != nil {
				return nil, nil, false
			}
			if origin.IsPentagon() {
				return nil, nil, false
			}
		}

		var err error
		origin, rotations, err = neighborRotations(origin, ringDirections[direction], rotations)
		if err != nil {
			return nil, nil, false
		}
		out = append(out, origin)
		dists = append(dists, ring)

		i++
		if i == ring {
			i = 0
			direction++
			if direction == 6 {
				direction = 0
				ring++
			}
		}

		if origin.IsPentagon() {
			return nil, nil, false
		}
	}

	return out, dists, true
}

// gridDiskSafe walks the disk breadth first, deduplicating visited cells,
// and is correct in the presence of pentagon distortion.
func gridDiskSafe(origin Cell, k int) ([]Cell, []int) {
	type entry struct {
		cell Cell
		dist int
	}

	seen := make(map[Cell]struct{}, MaxGridDiskSize(k))
	seen[origin] = struct{}{}

	queue := make([]entry, 0, MaxGridDiskSize(k))
	queue = append(queue, entry{origin, 0})

	out := make([]Cell, 0, MaxGridDiskSize(k))
	dists := make([]int, 0, MaxGridDiskSize(k))

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		out = append(out, e.cell)
		dists = append(dists, e.dist)
		if e.dist == k {
			continue
		}

		for d := DirectionK; d <= DirectionIJ; d++ {
			neighbor, _, err := neighborRotations(e.cell, d, 0)
			if err != nil {
				continue
			}
			if _, ok := seen[neighbor]; ok {
				continue
			}
			seen[neighbor] = struct{}{}
			queue = append(queue, entry{neighbor, e.dist + 1})
		}
	}

	return out, dists
}

// GridDisk returns all cells within grid distance k of the origin,
// including the origin, as a single-pass sequence.
func GridDisk(origin Cell, k int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		cells, _, ok := gridDiskFast(origin, k)
		if !ok {
			cells, _ = gridDiskSafe(origin, k)
		}
		for _, c := range cells {
			if !yield(c) {
				return
			}
		}
	}
}

// GridDiskDistances returns the cells within grid distance k paired with
// their distance from the origin.
func GridDiskDistances(origin Cell, k int) iter.Seq2[Cell, int] {
	return func(yield func(Cell, int) bool) {
		cells, dists, ok := gridDiskFast(origin, k)
		if !ok {
			cells, dists = gridDiskSafe(origin, k)
		}
		for i, c := range cells {
			if !yield(c, dists[i]) {
				return
			}
		}
	}
}

// gridRingFast walks the hollow ring at exactly distance k, failing on any
// pentagon encounter.
func gridRingFast(origin Cell, k int) ([]Cell, bool) {
	if k == 0 {
		return []Cell{origin}, true
	}
	if origin.IsPentagon() {
		return nil, false
	}

	rotations := 0
	for i := 0; i < k; i++ {
		var err error
		origin, rotations, err = neighborRotations(origin, nextRingDirection, rotations)
		if err != nil {
			return nil, false
		}
		if origin.IsPentagon() {
			return nil, false
		}
	}

	out := make([]Cell, 0, 6*k)
	out = append(out, origin)
	firstIndex := origin

	for direction := 0; direction < 6; direction++ {
		for pos := 0; pos < k; pos++ {
			var err error
			origin, rotations, err = neighborRotations(origin, ringDirections[direction], rotations)
			if err != nil {
				return nil, false
			}
			// the last step closes the loop
			if direction != 5 || pos != k-1 {
				out = append(out, origin)
				if origin.IsPentagon() {
					return nil, false
				}
			}
		}
	}

	if origin != firstIndex {
		return nil, false
	}
	return out, true
}

// GridRing returns the cells at exactly grid distance k from the origin as
// a single-pass sequence.
func GridRing(origin Cell, k int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		cells, ok := gridRingFast(origin, k)
		if !ok {
			all, dists := gridDiskSafe(origin, k)
			cells = cells[:0]
			for i, c := range all {
				if dists[i] == k {
					cells = append(cells, c)
				}
			}
		}
		for _, c := range cells {
			if !yield(c) {
				return
			}
		}
	}
}
