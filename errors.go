package hexglobe

import (
	"errors"
	"fmt"
)

var (
	// ErrResolutionMismatch is returned when two operands of a binary
	// operation carry different resolutions.
	ErrResolutionMismatch = errors.New("resolution mismatch")

	// ErrHeterogeneousResolution is returned by Compact when the input set
	// mixes resolutions.
	ErrHeterogeneousResolution = errors.New("heterogeneous resolution")

	// ErrDuplicateInput is returned by Compact when the input set contains
	// the same cell twice.
	ErrDuplicateInput = errors.New("duplicate input")

	// ErrPentagon is returned by local-IJ operations when unfolding would
	// cross a pentagon distortion that cannot be represented.
	ErrPentagon = errors.New("pentagon distortion")

	// ErrHexGridRange is returned by local-IJ operations when a coordinate
	// leaves the range the anchored coordinate system can express.
	ErrHexGridRange = errors.New("beyond hex grid range")

	// ErrNotNeighbors is returned when a directed edge is requested between
	// two cells that do not share an edge.
	ErrNotNeighbors = errors.New("cells are not neighbors")
)

// ErrInvalidCell indicates a 64-bit value that is not a canonical cell index.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCell struct {
	Value  uint64
	Reason string
	cause  error
}

func (e *ErrInvalidCell) Error() string {
	return fmt.Sprintf("invalid cell index %#016x: %s", e.Value, e.Reason)
}

func (e *ErrInvalidCell) Unwrap() error { return e.cause }

// ErrInvalidDirectedEdge indicates a 64-bit value that is not a canonical
// directed edge index.
type ErrInvalidDirectedEdge struct {
	Value  uint64
	Reason string
	cause  error
}

func (e *ErrInvalidDirectedEdge) Error() string {
	return fmt.Sprintf("invalid directed edge index %#016x: %s", e.Value, e.Reason)
}

func (e *ErrInvalidDirectedEdge) Unwrap() error { return e.cause }

// ErrInvalidVertexIndex indicates a 64-bit value that is not a canonical
// vertex index.
type ErrInvalidVertexIndex struct {
	Value  uint64
	Reason string
	cause  error
}

func (e *ErrInvalidVertexIndex) Error() string {
	return fmt.Sprintf("invalid vertex index %#016x: %s", e.Value, e.Reason)
}

func (e *ErrInvalidVertexIndex) Unwrap() error { return e.cause }

// ErrInvalidResolution indicates a resolution outside [0, 15].
type ErrInvalidResolution struct {
	Value int
}

func (e *ErrInvalidResolution) Error() string {
	return fmt.Sprintf("invalid resolution: %d", e.Value)
}

// ErrInvalidBaseCell indicates a base cell number outside [0, 121].
type ErrInvalidBaseCell struct {
	Value int
}

func (e *ErrInvalidBaseCell) Error() string {
	return fmt.Sprintf("invalid base cell: %d", e.Value)
}

// ErrInvalidDirection indicates a direction digit outside [0, 6].
type ErrInvalidDirection struct {
	Value int
}

func (e *ErrInvalidDirection) Error() string {
	return fmt.Sprintf("invalid direction: %d", e.Value)
}

// ErrInvalidVertex indicates a vertex number outside [0, 5].
type ErrInvalidVertex struct {
	Value int
}

func (e *ErrInvalidVertex) Error() string {
	return fmt.Sprintf("invalid cell vertex: %d", e.Value)
}

// ErrInvalidLatLng indicates a non-finite latitude or longitude.
type ErrInvalidLatLng struct {
	Lat, Lng float64
}

func (e *ErrInvalidLatLng) Error() string {
	return fmt.Sprintf("invalid coordinate (%v, %v): must be finite", e.Lat, e.Lng)
}
