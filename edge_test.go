package hexglobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellEdgeTo(t *testing.T) {
	a := mustCell(t, "8928308280fffff")
	b := mustCell(t, "8928308280bffff")

	t.Run("Adjacent", func(t *testing.T) {
		e, err := a.EdgeTo(b)
		require.NoError(t, err)

		assert.Equal(t, a, e.Origin())

		dest, err := e.Destination()
		require.NoError(t, err)
		assert.Equal(t, b, dest)

		origin, dest, err := e.Cells()
		require.NoError(t, err)
		assert.Equal(t, a, origin)
		assert.Equal(t, b, dest)
	})

	t.Run("NotNeighbors", func(t *testing.T) {
		far := CellFromLatLng(mustLatLng(t, 48.8566, 2.3522), 9)
		_, err := a.EdgeTo(far)
		assert.ErrorIs(t, err, ErrNotNeighbors)
	})

	t.Run("Self", func(t *testing.T) {
		_, err := a.EdgeTo(a)
		assert.ErrorIs(t, err, ErrNotNeighbors)
	})

	t.Run("ResolutionMismatch", func(t *testing.T) {
		parent, ok := b.Parent(8)
		require.True(t, ok)

		_, err := a.EdgeTo(parent)
		assert.ErrorIs(t, err, ErrResolutionMismatch)
	})
}

func TestCellEdges(t *testing.T) {
	t.Run("Hexagon", func(t *testing.T) {
		c := mustCell(t, "8928308280fffff")

		edges := c.Edges()
		require.Len(t, edges, 6)

		seen := make(map[Cell]bool)
		for _, e := range edges {
			_, err := NewDirectedEdge(uint64(e))
			require.NoError(t, err)

			assert.Equal(t, c, e.Origin())

			dest, err := e.Destination()
			require.NoError(t, err)
			seen[dest] = true

			ok, err := c.IsNeighborWith(dest)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Len(t, seen, 6)
	})

	t.Run("Pentagon", func(t *testing.T) {
		p := Pentagons(4)[2]

		edges := p.Edges()
		require.Len(t, edges, 5)

		seen := make(map[Cell]bool)
		for _, e := range edges {
			_, err := NewDirectedEdge(uint64(e))
			require.NoError(t, err)

			dest, err := e.Destination()
			require.NoError(t, err)
			seen[dest] = true
		}
		assert.Len(t, seen, 5)
	})
}

func TestNewDirectedEdge(t *testing.T) {
	a := mustCell(t, "8928308280fffff")
	b := mustCell(t, "8928308280bffff")

	valid, err := a.EdgeTo(b)
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		e, err := NewDirectedEdge(uint64(valid))
		require.NoError(t, err)
		assert.Equal(t, valid, e)
	})

	t.Run("HighBit", func(t *testing.T) {
		_, err := NewDirectedEdge(uint64(valid) | 1<<63)
		var invalid *ErrInvalidDirectedEdge
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("WrongMode", func(t *testing.T) {
		_, err := NewDirectedEdge(uint64(a))
		var invalid *ErrInvalidDirectedEdge
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("EdgeNumberZero", func(t *testing.T) {
		raw := uint64(valid) &^ (uint64(0x7) << reservedOffset)
		_, err := NewDirectedEdge(raw)
		var invalid *ErrInvalidDirectedEdge
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("EdgeNumberSeven", func(t *testing.T) {
		raw := uint64(valid) | uint64(0x7)<<reservedOffset
		_, err := NewDirectedEdge(raw)
		var invalid *ErrInvalidDirectedEdge
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("PentagonDeletedK", func(t *testing.T) {
		p := Pentagons(4)[0]
		raw := uint64(newDirectedEdge(p, DirectionK))
		_, err := NewDirectedEdge(raw)
		var invalid *ErrInvalidDirectedEdge
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("StringRoundtrip", func(t *testing.T) {
		back, err := ParseDirectedEdge(valid.String())
		require.NoError(t, err)
		assert.Equal(t, valid, back)
	})

	t.Run("ParseGarbage", func(t *testing.T) {
		_, err := ParseDirectedEdge("not hex")
		var invalid *ErrInvalidDirectedEdge
		require.ErrorAs(t, err, &invalid)
	})
}

func TestDirectedEdgeReverse(t *testing.T) {
	a := mustCell(t, "8928308280fffff")

	for _, e := range a.Edges() {
		rev, err := e.Reverse()
		require.NoError(t, err)

		dest, err := e.Destination()
		require.NoError(t, err)
		assert.Equal(t, dest, rev.Origin())

		revDest, err := rev.Destination()
		require.NoError(t, err)
		assert.Equal(t, a, revDest)

		back, err := rev.Reverse()
		require.NoError(t, err)
		assert.Equal(t, e, back)
	}
}

func TestDirectedEdgeBoundary(t *testing.T) {
	t.Run("Hexagon", func(t *testing.T) {
		c := mustCell(t, "8928308280fffff")

		for _, e := range c.Edges() {
			b := e.Boundary()
			// two endpoints plus at most one distortion vertex
			assert.GreaterOrEqual(t, b.NumVerts(), 2)
			assert.LessOrEqual(t, b.NumVerts(), 3)
		}
	})

	t.Run("SharedWithReverse", func(t *testing.T) {
		a := mustCell(t, "8928308280fffff")
		b := mustCell(t, "8928308280bffff")

		e, err := a.EdgeTo(b)
		require.NoError(t, err)
		rev, err := e.Reverse()
		require.NoError(t, err)

		fwd := e.Boundary()
		bwd := rev.Boundary()
		require.Equal(t, fwd.NumVerts(), bwd.NumVerts())

		// the same endpoints, traversed in the opposite order
		n := fwd.NumVerts()
		for i := 0; i < n; i++ {
			assert.InDelta(t, 0, fwd.Vert(i).DistanceRads(bwd.Vert(n-1-i)), 1e-9)
		}
	})

	t.Run("OnCellBoundary", func(t *testing.T) {
		c := mustCell(t, "8928308280fffff")
		cellVerts := c.Boundary()

		for _, e := range c.Edges() {
			b := e.Boundary()
			for i := 0; i < b.NumVerts(); i++ {
				found := false
				for j := 0; j < cellVerts.NumVerts(); j++ {
					if b.Vert(i).DistanceRads(cellVerts.Vert(j)) < 1e-9 {
						found = true
						break
					}
				}
				assert.True(t, found, "edge vertex %d not on the cell boundary", i)
			}
		}
	})
}

func TestDirectedEdgeLength(t *testing.T) {
	c := mustCell(t, "8928308280fffff")

	for _, e := range c.Edges() {
		rads := e.LengthRads()
		assert.Positive(t, rads)

		assert.InEpsilon(t, rads*earthRadiusKm, e.LengthKm(), 1e-12)
		assert.InEpsilon(t, e.LengthKm()*1000, e.LengthM(), 1e-12)

		// res-9 edges are a few hundred meters
		assert.Greater(t, e.LengthM(), 100.0)
		assert.Less(t, e.LengthM(), 500.0)
	}
}
