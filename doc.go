// Package hexglobe implements a discrete global grid: a hierarchy of
// hexagonal (and twelve pentagonal) cells covering an icosahedron projected
// onto the sphere.
//
// Every cell is identified by a 64-bit packed index that encodes its
// resolution (0..15), its resolution-0 base cell (0..121) and a sequence of
// direction digits, one per resolution step. All operations (hierarchy
// navigation, neighbor finding, disk and ring expansion, compaction, local
// coordinates) are pure functions of those bit patterns plus static,
// read-only lookup tables.
//
// # Quick Start
//
//	pt, _ := hexglobe.NewLatLngFromDegrees(37.7759, -122.4179)
//	cell := hexglobe.CellFromLatLng(pt, 9)
//
//	parent, _ := cell.Parent(5)
//	for child := range cell.Children(11) {
//	    _ = child
//	}
//
//	for neighbor := range hexglobe.GridDisk(cell, 2) {
//	    _ = neighbor
//	}
//
// # Representation
//
// Indexes render as lowercase 15-hex-digit strings and parse back with
// ParseCell. The binary form is the 64-bit integer itself; it is the only
// persistence format.
//
// # Concurrency
//
// All types are small immutable values. Every function may be called from
// any number of goroutines concurrently; there is no shared mutable state.
// Iterators returned by Children, GridDisk and friends are single-pass and
// must not be shared across goroutines.
package hexglobe
