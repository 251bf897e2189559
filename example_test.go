package hexglobe_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/hexglobe"
)

// Example_indexing demonstrates indexing a coordinate into a cell and
// recovering its center.
func Example_indexing() {
	pt, err := hexglobe.NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	if err != nil {
		log.Fatal(err)
	}

	cell := hexglobe.CellFromLatLng(pt, 9)
	fmt.Println(cell)

	center := cell.ToLatLng()
	fmt.Printf("%.4f, %.4f\n", center.LatDegrees(), center.LngDegrees())
	// Output:
	// 8928308280fffff
	// 37.7767, -122.4185
}

// Example_hierarchy demonstrates moving between resolutions.
func Example_hierarchy() {
	cell, err := hexglobe.ParseCell("8a1fb46622dffff")
	if err != nil {
		log.Fatal(err)
	}

	parent, _ := cell.Parent(5)
	fmt.Println("parent:", parent)
	fmt.Println("children at res 15:", cell.ChildrenCount(15))
	// Output:
	// parent: 851fb467fffffff
	// children at res 15: 16807
}

// Example_traversal demonstrates walking the neighborhood of a cell.
func Example_traversal() {
	cell, err := hexglobe.ParseCell("8928308280fffff")
	if err != nil {
		log.Fatal(err)
	}

	count := 0
	for range hexglobe.GridDisk(cell, 2) {
		count++
	}
	fmt.Println("cells within 2 steps:", count)
	// Output:
	// cells within 2 steps: 19
}

// Example_compact demonstrates coalescing a complete set of children into
// their parent.
func Example_compact() {
	cell, err := hexglobe.ParseCell("8928308280fffff")
	if err != nil {
		log.Fatal(err)
	}

	var children []hexglobe.Cell
	for child := range cell.Children(11) {
		children = append(children, child)
	}

	compacted, err := hexglobe.Compact(children)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(children), "->", len(compacted))
	fmt.Println(compacted[0])
	// Output:
	// 49 -> 1
	// 8928308280fffff
}
