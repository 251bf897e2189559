package main

import (
	"fmt"
	"log"

	"github.com/hupe1980/hexglobe"
)

func main() {
	pt, err := hexglobe.NewLatLngFromDegrees(37.775938728915946, -122.41795063018799)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Index ---")
	for res := hexglobe.Resolution(0); res <= 15; res++ {
		c := hexglobe.CellFromLatLng(pt, res)
		fmt.Printf("res %2d: %s  area %.6f km2\n", res, c, c.AreaKm2())
	}

	c := hexglobe.CellFromLatLng(pt, 9)

	fmt.Println("\n--- Hierarchy ---")
	parent, _ := c.Parent(5)
	fmt.Println("Parent at res 5:", parent)
	fmt.Println("Children at res 15:", c.ChildrenCount(15))

	fmt.Println("\n--- Traversal ---")
	count := 0
	for n := range hexglobe.GridDisk(c, 2) {
		_ = n
		count++
	}
	fmt.Println("Cells within 2 steps:", count)

	fmt.Println("\n--- Edges ---")
	for _, e := range c.Edges() {
		dest, err := e.Destination()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %s  %.1f m\n", e.Origin(), dest, e.LengthM())
	}
}
