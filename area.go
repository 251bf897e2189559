package hexglobe

import "math"

// triangleEdgeLengthsToArea computes the spherical excess of a triangle
// from its great-circle edge lengths with l'Huilier's theorem.
func triangleEdgeLengthsToArea(a, b, c float64) float64 {
	s := (a + b + c) / 2

	a = s - a
	b = s - b
	c = s - c

	return 4 * math.Atan(math.Sqrt(math.Tan(s/2)*math.Tan(a/2)*math.Tan(b/2)*math.Tan(c/2)))
}

func triangleArea(a, b, c LatLng) float64 {
	return triangleEdgeLengthsToArea(a.DistanceRads(b), b.DistanceRads(c), c.DistanceRads(a))
}

// AreaRads2 returns the cell's exact spherical area in square radians,
// summed over the triangle fan from the cell center across the boundary.
func (c Cell) AreaRads2() float64 {
	center := c.ToLatLng()
	b := c.Boundary()

	var area float64
	for i := 0; i < b.NumVerts(); i++ {
		j := (i + 1) % b.NumVerts()
		area += triangleArea(b.Vert(i), b.Vert(j), center)
	}
	return area
}

// AreaKm2 returns the cell's exact spherical area in square kilometers.
func (c Cell) AreaKm2() float64 {
	return c.AreaRads2() * earthRadiusKm * earthRadiusKm
}

// AreaM2 returns the cell's exact spherical area in square meters.
func (c Cell) AreaM2() float64 {
	return c.AreaKm2() * 1000 * 1000
}
