package hexglobe

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellParent(t *testing.T) {
	c, err := NewCell(0x8a1fb46622dffff)
	require.NoError(t, err)

	t.Run("Known", func(t *testing.T) {
		parent, ok := c.Parent(5)
		require.True(t, ok)
		assert.Equal(t, "851fb467fffffff", parent.String())
	})

	t.Run("Self", func(t *testing.T) {
		parent, ok := c.Parent(10)
		require.True(t, ok)
		assert.Equal(t, c, parent)
	})

	t.Run("Finer", func(t *testing.T) {
		_, ok := c.Parent(11)
		assert.False(t, ok)
	})

	t.Run("Valid", func(t *testing.T) {
		for res := Resolution(0); res <= 10; res++ {
			parent, ok := c.Parent(res)
			require.True(t, ok)
			_, err := NewCell(uint64(parent))
			require.NoError(t, err, "resolution %d", res)
		}
	})
}

func TestCellCenterChild(t *testing.T) {
	c, err := NewCell(0x8a1fb46622dffff)
	require.NoError(t, err)

	t.Run("Known", func(t *testing.T) {
		child, ok := c.CenterChild(15)
		require.True(t, ok)
		assert.Equal(t, "8f1fb46622d8000", child.String())
	})

	t.Run("Self", func(t *testing.T) {
		child, ok := c.CenterChild(10)
		require.True(t, ok)
		assert.Equal(t, c, child)
	})

	t.Run("Coarser", func(t *testing.T) {
		_, ok := c.CenterChild(9)
		assert.False(t, ok)
	})

	t.Run("ParentInverse", func(t *testing.T) {
		child, ok := c.CenterChild(14)
		require.True(t, ok)
		parent, ok := child.Parent(10)
		require.True(t, ok)
		assert.Equal(t, c, parent)
	})
}

func TestCellChildrenCount(t *testing.T) {
	c, err := NewCell(0x8a1fb46622dffff)
	require.NoError(t, err)

	t.Run("Hexagon", func(t *testing.T) {
		assert.Equal(t, uint64(1), c.ChildrenCount(10))
		assert.Equal(t, uint64(7), c.ChildrenCount(11))
		assert.Equal(t, uint64(16807), c.ChildrenCount(15))
	})

	t.Run("Pentagon", func(t *testing.T) {
		p := Pentagons(0)[0]
		assert.Equal(t, uint64(1), p.ChildrenCount(0))
		assert.Equal(t, uint64(6), p.ChildrenCount(1))
		assert.Equal(t, uint64(41), p.ChildrenCount(2))
	})

	t.Run("Coarser", func(t *testing.T) {
		assert.Zero(t, c.ChildrenCount(9))
	})
}

func TestCellChildren(t *testing.T) {
	c, err := NewCell(0x8a1fb46622dffff)
	require.NoError(t, err)

	t.Run("Hexagon", func(t *testing.T) {
		var children []Cell
		for child := range c.Children(12) {
			children = append(children, child)
		}
		require.Len(t, children, 49)

		for _, child := range children {
			parent, ok := child.Parent(10)
			require.True(t, ok)
			assert.Equal(t, c, parent)

			_, err := NewCell(uint64(child))
			require.NoError(t, err)
		}

		// canonical order is grid order
		assert.True(t, slices.IsSortedFunc(children, Cell.Cmp))
	})

	t.Run("Pentagon", func(t *testing.T) {
		p := Pentagons(1)[3]

		var children []Cell
		for child := range p.Children(3) {
			children = append(children, child)
		}
		require.Len(t, children, int(p.ChildrenCount(3)))

		pentCount := 0
		for _, child := range children {
			_, err := NewCell(uint64(child))
			require.NoError(t, err)
			if child.IsPentagon() {
				pentCount++
			}
		}
		// exactly one pentagonal descendant per level
		assert.Equal(t, 1, pentCount)
	})

	t.Run("EarlyStop", func(t *testing.T) {
		n := 0
		for range c.Children(13) {
			n++
			if n == 10 {
				break
			}
		}
		assert.Equal(t, 10, n)
	})
}

func TestCellChildPos(t *testing.T) {
	c, err := NewCell(0x8a1fb46622dffff)
	require.NoError(t, err)

	t.Run("Known", func(t *testing.T) {
		pos, ok := c.ChildPos(8)
		require.True(t, ok)
		assert.Equal(t, uint64(24), pos)
	})

	t.Run("Self", func(t *testing.T) {
		pos, ok := c.ChildPos(10)
		require.True(t, ok)
		assert.Zero(t, pos)
	})

	t.Run("Bijection", func(t *testing.T) {
		parent, ok := c.Parent(8)
		require.True(t, ok)

		i := uint64(0)
		for child := range parent.Children(10) {
			pos, ok := child.ChildPos(8)
			require.True(t, ok)
			assert.Equal(t, i, pos)

			back, ok := parent.ChildAt(pos, 10)
			require.True(t, ok)
			assert.Equal(t, child, back)

			i++
		}
		assert.Equal(t, parent.ChildrenCount(10), i)
	})

	t.Run("PentagonBijection", func(t *testing.T) {
		p := Pentagons(0)[5]

		i := uint64(0)
		for child := range p.Children(2) {
			pos, ok := child.ChildPos(0)
			require.True(t, ok)
			assert.Equal(t, i, pos)

			back, ok := p.ChildAt(pos, 2)
			require.True(t, ok)
			assert.Equal(t, child, back)

			i++
		}
		assert.Equal(t, uint64(41), i)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, ok := c.ChildAt(7, 11)
		assert.False(t, ok)

		_, ok = c.ChildAt(0, 9)
		assert.False(t, ok)
	})
}

func TestCompact(t *testing.T) {
	t.Run("BaseCellChildren", func(t *testing.T) {
		var children []Cell
		for child := range BaseCell(0).Cell().Children(1) {
			children = append(children, child)
		}
		require.Len(t, children, 7)

		out, err := Compact(children)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "8001fffffffffff", out[0].String())
	})

	t.Run("Partial", func(t *testing.T) {
		c, err := NewCell(0x8a1fb46622dffff)
		require.NoError(t, err)

		var cells []Cell
		for child := range c.Children(11) {
			cells = append(cells, child)
		}
		// drop one sibling: nothing can compact
		cells = cells[:6]

		out, err := Compact(cells)
		require.NoError(t, err)
		assert.Len(t, out, 6)
	})

	t.Run("TwoLevels", func(t *testing.T) {
		c, err := NewCell(0x8a1fb46622dffff)
		require.NoError(t, err)

		var cells []Cell
		for child := range c.Children(12) {
			cells = append(cells, child)
		}
		require.Len(t, cells, 49)

		out, err := Compact(cells)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, c, out[0])
	})

	t.Run("Pentagon", func(t *testing.T) {
		p := Pentagons(0)[0]

		var cells []Cell
		for child := range p.Children(1) {
			cells = append(cells, child)
		}
		require.Len(t, cells, 6)

		out, err := Compact(cells)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, p, out[0])
	})

	t.Run("Empty", func(t *testing.T) {
		out, err := Compact(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("MixedResolution", func(t *testing.T) {
		a, err := NewCell(0x8a1fb46622dffff)
		require.NoError(t, err)
		b, ok := a.Parent(9)
		require.True(t, ok)

		_, err = Compact([]Cell{a, b})
		assert.ErrorIs(t, err, ErrHeterogeneousResolution)
	})

	t.Run("Duplicate", func(t *testing.T) {
		a, err := NewCell(0x8a1fb46622dffff)
		require.NoError(t, err)

		_, err = Compact([]Cell{a, a})
		assert.ErrorIs(t, err, ErrDuplicateInput)
	})
}

func TestUncompact(t *testing.T) {
	c, err := NewCell(0x8a1fb46622dffff)
	require.NoError(t, err)

	t.Run("Size", func(t *testing.T) {
		n, err := UncompactSize([]Cell{c}, 12)
		require.NoError(t, err)
		assert.Equal(t, uint64(49), n)
	})

	t.Run("RoundtripWithCompact", func(t *testing.T) {
		seq, err := Uncompact([]Cell{c}, 12)
		require.NoError(t, err)

		var cells []Cell
		for child := range seq {
			cells = append(cells, child)
		}
		require.Len(t, cells, 49)

		out, err := Compact(cells)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, c, out[0])
	})

	t.Run("TooCoarse", func(t *testing.T) {
		_, err := Uncompact([]Cell{c}, 9)
		var invalid *ErrInvalidResolution
		require.ErrorAs(t, err, &invalid)

		_, err = UncompactSize([]Cell{c}, 9)
		require.ErrorAs(t, err, &invalid)
	})
}
