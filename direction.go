package hexglobe

// Direction is one of the 7 direction digits of an aperture-7 grid step:
// the center (no deflection from the parent) plus the six axial directions
// of the IJK coordinate system.
type Direction uint8

const (
	// DirectionCenter leaves the cell centered on its parent.
	DirectionCenter Direction = 0
	// DirectionK deflects along the k axis.
	DirectionK Direction = 1
	// DirectionJ deflects along the j axis.
	DirectionJ Direction = 2
	// DirectionJK deflects along the j and k axes.
	DirectionJK Direction = 3
	// DirectionI deflects along the i axis.
	DirectionI Direction = 4
	// DirectionIK deflects along the i and k axes.
	DirectionIK Direction = 5
	// DirectionIJ deflects along the i and j axes.
	DirectionIJ Direction = 6

	// directionInvalid is the 0b111 sentinel marking an unused digit slot in
	// a packed index. Never a valid direction.
	directionInvalid Direction = 7
)

// NewDirection validates and returns a Direction.
func NewDirection(v int) (Direction, error) {
	if v < 0 || v > int(DirectionIJ) {
		return 0, &ErrInvalidDirection{Value: v}
	}
	return Direction(v), nil
}

var (
	rotate60ccwDirection = [7]Direction{
		DirectionCenter, DirectionIK, DirectionJK, DirectionK,
		DirectionIJ, DirectionI, DirectionJ,
	}
	rotate60cwDirection = [7]Direction{
		DirectionCenter, DirectionJK, DirectionIJ, DirectionJ,
		DirectionIK, DirectionK, DirectionI,
	}
)

// RotateCCW returns the direction rotated 60° counter-clockwise.
func (d Direction) RotateCCW() Direction { return rotate60ccwDirection[d] }

// RotateCW returns the direction rotated 60° clockwise.
func (d Direction) RotateCW() Direction { return rotate60cwDirection[d] }

// Coord returns the unit IJK coordinate of the direction.
func (d Direction) Coord() CoordIJK { return unitVecs[d] }

func (d Direction) String() string {
	switch d {
	case DirectionCenter:
		return "Center"
	case DirectionK:
		return "K"
	case DirectionJ:
		return "J"
	case DirectionJK:
		return "JK"
	case DirectionI:
		return "I"
	case DirectionIK:
		return "IK"
	case DirectionIJ:
		return "IJ"
	default:
		return "Invalid"
	}
}
