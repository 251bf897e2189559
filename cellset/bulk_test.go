package cellset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hexglobe"
)

func testLatLngs(t *testing.T, n int) []hexglobe.LatLng {
	t.Helper()

	out := make([]hexglobe.LatLng, 0, n)
	for i := 0; i < n; i++ {
		lat := -60.0 + float64(i%120)
		lng := -170.0 + float64(i*7%340)

		g, err := hexglobe.NewLatLngFromDegrees(lat, lng)
		require.NoError(t, err)
		out = append(out, g)
	}
	return out
}

func TestFromLatLngs(t *testing.T) {
	pts := testLatLngs(t, 500)

	t.Run("MatchesSequential", func(t *testing.T) {
		want := New()
		for _, p := range pts {
			want.Add(hexglobe.CellFromLatLng(p, 7))
		}

		got, err := FromLatLngs(context.Background(), pts, 7, WithParallelism(4))
		require.NoError(t, err)
		assert.Equal(t, want.Cells(), got.Cells())
	})

	t.Run("SingleWorker", func(t *testing.T) {
		a, err := FromLatLngs(context.Background(), pts, 5, WithParallelism(1))
		require.NoError(t, err)

		b, err := FromLatLngs(context.Background(), pts, 5, WithParallelism(8))
		require.NoError(t, err)

		assert.Equal(t, a.Cells(), b.Cells())
	})

	t.Run("Empty", func(t *testing.T) {
		s, err := FromLatLngs(context.Background(), nil, 9)
		require.NoError(t, err)
		assert.True(t, s.IsEmpty())
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := FromLatLngs(ctx, pts, 9)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFromDisks(t *testing.T) {
	pts := testLatLngs(t, 50)

	origins := make([]hexglobe.Cell, len(pts))
	for i, p := range pts {
		origins[i] = hexglobe.CellFromLatLng(p, 6)
	}

	t.Run("MatchesSequential", func(t *testing.T) {
		want := New()
		for _, origin := range origins {
			for c := range hexglobe.GridDisk(origin, 2) {
				want.Add(c)
			}
		}

		got, err := FromDisks(context.Background(), origins, 2, WithParallelism(4))
		require.NoError(t, err)
		assert.Equal(t, want.Cells(), got.Cells())
	})

	t.Run("ContainsOrigins", func(t *testing.T) {
		s, err := FromDisks(context.Background(), origins, 1)
		require.NoError(t, err)

		for _, origin := range origins {
			assert.True(t, s.Contains(origin))
		}
	})

	t.Run("KZero", func(t *testing.T) {
		s, err := FromDisks(context.Background(), origins, 0)
		require.NoError(t, err)

		want := Of(origins...)
		assert.Equal(t, want.Cells(), s.Cells())
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := FromDisks(ctx, origins, 2)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBulkOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		o := applyOptions(nil)
		assert.GreaterOrEqual(t, o.parallelism, 1)
		assert.NotNil(t, o.logger)
	})

	t.Run("ParallelismFloor", func(t *testing.T) {
		o := applyOptions([]Option{WithParallelism(-3)})
		assert.GreaterOrEqual(t, o.parallelism, 1)
	})

	t.Run("NilLogger", func(t *testing.T) {
		o := applyOptions([]Option{WithLogger(nil)})
		assert.NotNil(t, o.logger)
	})

	t.Run("NilOption", func(t *testing.T) {
		o := applyOptions([]Option{nil, WithParallelism(2)})
		assert.Equal(t, 2, o.parallelism)
	})
}
