package cellset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/hexglobe"
)

// Set is a dense set of 64-bit cell indexes backed by a Roaring bitmap.
// It wraps the official roaring64 implementation.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring64.New(),
	}
}

// Of creates a set holding the given cells.
func Of(cells ...hexglobe.Cell) *Set {
	s := New()
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add adds a cell to the set.
func (s *Set) Add(c hexglobe.Cell) {
	s.rb.Add(uint64(c))
}

// Remove removes a cell from the set.
func (s *Set) Remove(c hexglobe.Cell) {
	s.rb.Remove(uint64(c))
}

// Contains checks if a cell is in the set.
func (s *Set) Contains(c hexglobe.Cell) bool {
	return s.rb.Contains(uint64(c))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of cells in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Iterator returns an iterator over the set in ascending index order.
func (s *Set) Iterator() iter.Seq[hexglobe.Cell] {
	return func(yield func(hexglobe.Cell) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(hexglobe.Cell(it.Next())) {
				return
			}
		}
	}
}

// Cells returns the set's contents as a slice in ascending index order.
func (s *Set) Cells() []hexglobe.Cell {
	out := make([]hexglobe.Cell, 0, s.rb.GetCardinality())
	for c := range s.Iterator() {
		out = append(out, c)
	}
	return out
}

// And computes the intersection of two sets, in place.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Or computes the union of two sets, in place.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// Xor computes the symmetric difference of two sets, in place.
func (s *Set) Xor(other *Set) {
	s.rb.Xor(other.rb)
}

// AndNot computes the difference of two sets, in place.
func (s *Set) AndNot(other *Set) {
	s.rb.AndNot(other.rb)
}

// Clear removes all cells from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}

// GetSizeInBytes returns the in-memory size of the set in bytes.
func (s *Set) GetSizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// Compact coalesces complete sibling runs into their parents and returns
// the minimal covering set, leaving the set itself unchanged. The set must
// hold cells of a single resolution.
func (s *Set) Compact() (*Set, error) {
	compacted, err := hexglobe.Compact(s.Cells())
	if err != nil {
		return nil, err
	}
	return Of(compacted...), nil
}

// Uncompact expands every cell of the set to its descendants at the given
// resolution, returning a new set.
func (s *Set) Uncompact(res hexglobe.Resolution) (*Set, error) {
	children, err := hexglobe.Uncompact(s.Cells(), res)
	if err != nil {
		return nil, err
	}

	out := New()
	for c := range children {
		out.Add(c)
	}
	return out, nil
}
