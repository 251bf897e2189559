// Package cellset provides dense sets of cell indexes on top of the
// hexglobe core.
//
// A Set is backed by a 64-bit Roaring bitmap, so membership, set algebra
// and iteration stay cheap even for millions of cells. On top of the set
// the package offers compact/uncompact bridging to the core hierarchy
// algorithms, a compressed binary codec for persistence and transport, and
// concurrent bulk builders.
//
// # Quick Start
//
//	s := cellset.New()
//	s.Add(cell)
//
//	data, _ := cellset.Marshal(s, cellset.CompressionLZ4)
//	s2, _ := cellset.Unmarshal(data)
//
//	disk, _ := cellset.FromDisks(ctx, origins, 2,
//	    cellset.WithParallelism(8),
//	    cellset.WithLogLevel(slog.LevelDebug),
//	)
//
// Sets are not safe for concurrent mutation; guard shared sets externally.
package cellset
