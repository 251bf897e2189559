package benchmark_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/hupe1980/hexglobe"
	"github.com/hupe1980/hexglobe/cellset"
)

func randomLatLngs(n int, seed int64) []hexglobe.LatLng {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]hexglobe.LatLng, 0, n)
	for i := 0; i < n; i++ {
		lat := rnd.Float64()*170 - 85
		lng := rnd.Float64()*360 - 180

		g, err := hexglobe.NewLatLngFromDegrees(lat, lng)
		if err != nil {
			panic(err)
		}
		out = append(out, g)
	}
	return out
}

func BenchmarkNewCell(b *testing.B) {
	raw := uint64(0x8a1fb46622dffff)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := hexglobe.NewCell(raw); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCellFromLatLng(b *testing.B) {
	pts := randomLatLngs(1024, 4711)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hexglobe.CellFromLatLng(pts[i%len(pts)], 9)
	}
}

func BenchmarkCellToLatLng(b *testing.B) {
	pts := randomLatLngs(1024, 4711)
	cells := make([]hexglobe.Cell, len(pts))
	for i, p := range pts {
		cells[i] = hexglobe.CellFromLatLng(p, 9)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cells[i%len(cells)].ToLatLng()
	}
}

func BenchmarkCellBoundary(b *testing.B) {
	c := hexglobe.CellFromLatLng(randomLatLngs(1, 4711)[0], 9)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Boundary()
	}
}

func BenchmarkGridDisk(b *testing.B) {
	c := hexglobe.CellFromLatLng(randomLatLngs(1, 4711)[0], 9)

	for _, k := range []int{1, 5, 20} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				for range hexglobe.GridDisk(c, k) {
				}
			}
		})
	}
}

func BenchmarkGridDistance(b *testing.B) {
	origin := hexglobe.CellFromLatLng(randomLatLngs(1, 4711)[0], 9)

	var targets []hexglobe.Cell
	for c := range hexglobe.GridRing(origin, 20) {
		targets = append(targets, c)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hexglobe.GridDistance(origin, targets[i%len(targets)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompact(b *testing.B) {
	parent := hexglobe.CellFromLatLng(randomLatLngs(1, 4711)[0], 5)

	var cells []hexglobe.Cell
	for c := range parent.Children(8) {
		cells = append(cells, c)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hexglobe.Compact(cells); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSetFromLatLngs(b *testing.B) {
	pts := randomLatLngs(10000, 4711)
	ctx := context.Background()

	for _, workers := range []int{1, 4} {
		name := "Workers1"
		if workers == 4 {
			name = "Workers4"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := cellset.FromLatLngs(ctx, pts, 7, cellset.WithParallelism(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSetMarshal(b *testing.B) {
	pts := randomLatLngs(10000, 4711)
	s, err := cellset.FromLatLngs(context.Background(), pts, 7)
	if err != nil {
		b.Fatal(err)
	}

	for name, comp := range map[string]cellset.Compression{
		"None": cellset.CompressionNone,
		"LZ4":  cellset.CompressionLZ4,
		"ZSTD": cellset.CompressionZSTD,
	} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := cellset.Marshal(s, comp); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
