package hexglobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellVertexes(t *testing.T) {
	t.Run("Hexagon", func(t *testing.T) {
		c := mustCell(t, "8928308280fffff")

		verts, err := c.Vertexes()
		require.NoError(t, err)
		require.Len(t, verts, 6)

		seen := make(map[Vertex]bool)
		for _, v := range verts {
			_, err := NewVertex(uint64(v))
			require.NoError(t, err)
			seen[v] = true

			assert.Equal(t, c.Resolution(), v.Owner().Resolution())
		}
		assert.Len(t, seen, 6)
	})

	t.Run("Pentagon", func(t *testing.T) {
		p := Pentagons(3)[6]

		verts, err := p.Vertexes()
		require.NoError(t, err)
		require.Len(t, verts, 5)

		seen := make(map[Vertex]bool)
		for _, v := range verts {
			_, err := NewVertex(uint64(v))
			require.NoError(t, err)
			seen[v] = true
		}
		assert.Len(t, seen, 5)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		c := mustCell(t, "8928308280fffff")

		_, err := c.Vertex(6)
		var invalid *ErrInvalidVertex
		require.ErrorAs(t, err, &invalid)

		_, err = c.Vertex(-1)
		require.ErrorAs(t, err, &invalid)

		_, err = Pentagons(3)[0].Vertex(5)
		require.ErrorAs(t, err, &invalid)
	})
}

func TestVertexCanonicalAcrossNeighbors(t *testing.T) {
	t.Run("FlowerCount", func(t *testing.T) {
		// seven hexagons share 24 distinct vertexes; every shared vertex must
		// resolve to the same canonical index from each incident cell
		origin := mustCell(t, "8928308280fffff")

		seen := make(map[Vertex]int)
		for c := range GridDisk(origin, 1) {
			verts, err := c.Vertexes()
			require.NoError(t, err)
			for _, v := range verts {
				seen[v]++
			}
		}
		assert.Len(t, seen, 24)
	})

	t.Run("SharedEdgeEndpoints", func(t *testing.T) {
		a := mustCell(t, "8928308280fffff")
		b := mustCell(t, "8928308280bffff")

		av, err := a.Vertexes()
		require.NoError(t, err)
		bv, err := b.Vertexes()
		require.NoError(t, err)

		inA := make(map[Vertex]bool)
		for _, v := range av {
			inA[v] = true
		}

		shared := 0
		for _, v := range bv {
			if inA[v] {
				shared++
			}
		}
		// neighbors share exactly the two endpoints of their common edge
		assert.Equal(t, 2, shared)
	})

	t.Run("GlobalResZero", func(t *testing.T) {
		// V = E - F + 2 on the sphere: 360 edges, 122 cells, 240 vertexes,
		// each incident to exactly three cells
		seen := make(map[Vertex]int)
		for _, c := range BaseCells() {
			verts, err := c.Vertexes()
			require.NoError(t, err)
			for _, v := range verts {
				seen[v]++
			}
		}

		assert.Len(t, seen, 240)
		for v, n := range seen {
			assert.Equal(t, 3, n, "vertex %s", v)
		}
	})

	t.Run("AroundPentagon", func(t *testing.T) {
		p := Pentagons(2)[9]

		seen := make(map[Vertex]int)
		for c := range GridDisk(p, 1) {
			verts, err := c.Vertexes()
			require.NoError(t, err)
			for _, v := range verts {
				seen[v]++
			}
		}
		// five inner vertexes at three incidences each
		inner := 0
		for _, n := range seen {
			require.LessOrEqual(t, n, 3)
			if n == 3 {
				inner++
			}
		}
		assert.Equal(t, 5, inner)
	})
}

func TestNewVertex(t *testing.T) {
	c := mustCell(t, "8928308280fffff")

	verts, err := c.Vertexes()
	require.NoError(t, err)
	valid := verts[0]

	t.Run("Valid", func(t *testing.T) {
		v, err := NewVertex(uint64(valid))
		require.NoError(t, err)
		assert.Equal(t, valid, v)
	})

	t.Run("HighBit", func(t *testing.T) {
		_, err := NewVertex(uint64(valid) | 1<<63)
		var invalid *ErrInvalidVertexIndex
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("WrongMode", func(t *testing.T) {
		_, err := NewVertex(uint64(c))
		var invalid *ErrInvalidVertexIndex
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("NonCanonicalOwner", func(t *testing.T) {
		// re-anchor a neighbor-owned vertex at the wrong cell
		var stolen Vertex
		found := false
		for i := 0; i < 6 && !found; i++ {
			v, err := c.Vertex(i)
			require.NoError(t, err)
			if v.Owner() != c {
				stolen = newVertex(c, i)
				found = true
			}
		}
		require.True(t, found, "every vertex owned by the probe cell")

		_, err := NewVertex(uint64(stolen))
		var invalid *ErrInvalidVertexIndex
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "not the canonical owner", invalid.Reason)
	})

	t.Run("PentagonVertexNumFive", func(t *testing.T) {
		p := Pentagons(3)[0]
		_, err := NewVertex(uint64(newVertex(p, 5)))
		var invalid *ErrInvalidVertexIndex
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("StringRoundtrip", func(t *testing.T) {
		back, err := ParseVertex(valid.String())
		require.NoError(t, err)
		assert.Equal(t, valid, back)
	})
}

func TestVertexToLatLng(t *testing.T) {
	t.Run("OnOwnerBoundary", func(t *testing.T) {
		c := mustCell(t, "8928308280fffff")

		verts, err := c.Vertexes()
		require.NoError(t, err)

		for _, v := range verts {
			g := v.ToLatLng()
			b := v.Owner().Boundary()

			best := 1.0
			for i := 0; i < b.NumVerts(); i++ {
				if d := g.DistanceRads(b.Vert(i)); d < best {
					best = d
				}
			}
			assert.Less(t, best, 1e-9, "vertex %s off the owner boundary", v)
		}
	})

	t.Run("NeighborsAgreeOnPosition", func(t *testing.T) {
		// the same canonical vertex seen from different cells is the same
		// point on the sphere
		origin := mustCell(t, "8928308280fffff")

		positions := make(map[Vertex]LatLng)
		for c := range GridDisk(origin, 1) {
			verts, err := c.Vertexes()
			require.NoError(t, err)
			for _, v := range verts {
				g := v.ToLatLng()
				if prev, ok := positions[v]; ok {
					assert.InDelta(t, 0, prev.DistanceRads(g), 1e-12)
				}
				positions[v] = g
			}
		}
	})
}
