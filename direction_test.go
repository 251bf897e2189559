package hexglobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirection(t *testing.T) {
	for v := 0; v <= 6; v++ {
		d, err := NewDirection(v)
		require.NoError(t, err)
		assert.Equal(t, Direction(v), d)
	}

	for _, v := range []int{-1, 7, 8} {
		_, err := NewDirection(v)
		var invalid *ErrInvalidDirection
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, v, invalid.Value)
	}
}

func TestDirectionRotation(t *testing.T) {
	t.Run("Inverse", func(t *testing.T) {
		for d := DirectionCenter; d <= DirectionIJ; d++ {
			assert.Equal(t, d, d.RotateCCW().RotateCW())
			assert.Equal(t, d, d.RotateCW().RotateCCW())
		}
	})

	t.Run("Order6", func(t *testing.T) {
		for d := DirectionK; d <= DirectionIJ; d++ {
			r := d
			for i := 0; i < 6; i++ {
				r = r.RotateCCW()
			}
			assert.Equal(t, d, r)
		}
	})

	t.Run("CenterFixed", func(t *testing.T) {
		assert.Equal(t, DirectionCenter, DirectionCenter.RotateCCW())
		assert.Equal(t, DirectionCenter, DirectionCenter.RotateCW())
	})

	t.Run("CCWCycle", func(t *testing.T) {
		// k -> ik -> i -> ij -> j -> jk -> k
		want := []Direction{DirectionIK, DirectionI, DirectionIJ, DirectionJ, DirectionJK, DirectionK}
		d := DirectionK
		for _, w := range want {
			d = d.RotateCCW()
			assert.Equal(t, w, d)
		}
	})
}

func TestDirectionCoord(t *testing.T) {
	for d := DirectionCenter; d <= DirectionIJ; d++ {
		got, ok := d.Coord().Direction()
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Center", DirectionCenter.String())
	assert.Equal(t, "IK", DirectionIK.String())
	assert.Equal(t, "Invalid", directionInvalid.String())
}

func TestDirectionRotationMatchesCoord(t *testing.T) {
	// rotating the digit and rotating its coordinate agree
	for d := DirectionK; d <= DirectionIJ; d++ {
		got, ok := d.Coord().RotateCCW().Direction()
		require.True(t, ok)
		assert.Equal(t, d.RotateCCW(), got)

		got, ok = d.Coord().RotateCW().Direction()
		require.True(t, ok)
		assert.Equal(t, d.RotateCW(), got)
	}
}
