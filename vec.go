package hexglobe

import "math"

// Vec2d is a 2D floating-point vector on a face-local plane.
type Vec2d struct {
	X, Y float64
}

// Magnitude returns the vector's length.
func (v Vec2d) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// intersect computes the intersection of the line p0-p1 with the line p2-p3.
// Lines are assumed non-parallel (callers only pass crossing edges).
func intersect(p0, p1, p2, p3 Vec2d) Vec2d {
	s1 := Vec2d{X: p1.X - p0.X, Y: p1.Y - p0.Y}
	s2 := Vec2d{X: p3.X - p2.X, Y: p3.Y - p2.Y}

	t := (s2.X*(p0.Y-p2.Y) - s2.Y*(p0.X-p2.X)) / (-s2.X*s1.Y + s1.X*s2.Y)

	return Vec2d{X: p0.X + t*s1.X, Y: p0.Y + t*s1.Y}
}

// Vec3d is a 3D floating-point vector on the unit sphere.
type Vec3d struct {
	X, Y, Z float64
}

// PointSquareDistance returns the squared chord distance between two points.
func (v Vec3d) PointSquareDistance(w Vec3d) float64 {
	dx, dy, dz := v.X-w.X, v.Y-w.Y, v.Z-w.Z
	return dx*dx + dy*dy + dz*dz
}

// Vec3 returns the coordinate as a point on the unit sphere.
func (g LatLng) Vec3() Vec3d {
	r := math.Cos(g.lat)
	return Vec3d{
		X: math.Cos(g.lng) * r,
		Y: math.Sin(g.lng) * r,
		Z: math.Sin(g.lat),
	}
}
