package hexglobe

import "math"

const (
	// epsilon is the floating-point equality threshold, in radians ~0.1mm.
	epsilon = 1e-16

	// earthRadiusKm is the mean Earth radius.
	earthRadiusKm = 6371.007180918475

	degsToRads = math.Pi / 180
	radsToDegs = 180 / math.Pi
)

// LatLng is a spherical coordinate in radians.
type LatLng struct {
	lat, lng float64
}

// NewLatLng validates and returns a coordinate from latitude and longitude
// in radians.
func NewLatLng(lat, lng float64) (LatLng, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return LatLng{}, &ErrInvalidLatLng{Lat: lat, Lng: lng}
	}
	return LatLng{lat: lat, lng: lng}, nil
}

// NewLatLngFromDegrees validates and returns a coordinate from latitude and
// longitude in degrees.
func NewLatLngFromDegrees(lat, lng float64) (LatLng, error) {
	return NewLatLng(lat*degsToRads, lng*degsToRads)
}

// Lat returns the latitude in radians.
func (g LatLng) Lat() float64 { return g.lat }

// Lng returns the longitude in radians.
func (g LatLng) Lng() float64 { return g.lng }

// LatDegrees returns the latitude in degrees.
func (g LatLng) LatDegrees() float64 { return g.lat * radsToDegs }

// LngDegrees returns the longitude in degrees.
func (g LatLng) LngDegrees() float64 { return g.lng * radsToDegs }

// DistanceRads returns the great-circle distance to o, in radians, using the
// haversine formula.
func (g LatLng) DistanceRads(o LatLng) float64 {
	sinLat := math.Sin((o.lat - g.lat) / 2)
	sinLng := math.Sin((o.lng - g.lng) / 2)

	a := sinLat*sinLat + math.Cos(g.lat)*math.Cos(o.lat)*sinLng*sinLng

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceKm returns the great-circle distance to o in kilometers.
func (g LatLng) DistanceKm(o LatLng) float64 {
	return g.DistanceRads(o) * earthRadiusKm
}

// DistanceM returns the great-circle distance to o in meters.
func (g LatLng) DistanceM(o LatLng) float64 {
	return g.DistanceKm(o) * 1000
}

// azimuthTo returns the azimuth in radians from g to o.
func (g LatLng) azimuthTo(o LatLng) float64 {
	return math.Atan2(
		math.Cos(o.lat)*math.Sin(o.lng-g.lng),
		math.Cos(g.lat)*math.Sin(o.lat)-
			math.Sin(g.lat)*math.Cos(o.lat)*math.Cos(o.lng-g.lng),
	)
}

// atDistance computes the point at the given azimuth and great-circle
// distance (both radians) from g.
func (g LatLng) atDistance(az, distance float64) LatLng {
	if distance < epsilon {
		return g
	}

	az = posAngleRads(az)

	var p LatLng

	if az < epsilon || math.Abs(az-math.Pi) < epsilon {
		// due north or south
		if az < epsilon {
			p.lat = g.lat + distance
		} else {
			p.lat = g.lat - distance
		}

		switch {
		case math.Abs(p.lat-math.Pi/2) < epsilon: // north pole
			p.lat = math.Pi / 2
			p.lng = 0
		case math.Abs(p.lat+math.Pi/2) < epsilon: // south pole
			p.lat = -math.Pi / 2
			p.lng = 0
		default:
			p.lng = constrainLng(g.lng)
		}

		return p
	}

	sinLat := math.Sin(g.lat)*math.Cos(distance) +
		math.Cos(g.lat)*math.Sin(distance)*math.Cos(az)
	sinLat = clamp(sinLat, -1, 1)

	p.lat = math.Asin(sinLat)

	switch {
	case math.Abs(p.lat-math.Pi/2) < epsilon: // north pole
		p.lat = math.Pi / 2
		p.lng = 0
	case math.Abs(p.lat+math.Pi/2) < epsilon: // south pole
		p.lat = -math.Pi / 2
		p.lng = 0
	default:
		sinLng := clamp(math.Sin(az)*math.Sin(distance)/math.Cos(p.lat), -1, 1)
		cosLng := clamp((math.Cos(distance)-math.Sin(g.lat)*math.Sin(p.lat))/
			(math.Cos(g.lat)*math.Cos(p.lat)), -1, 1)
		p.lng = constrainLng(g.lng + math.Atan2(sinLng, cosLng))
	}

	return p
}

// posAngleRads normalizes an angle into [0, 2π).
func posAngleRads(rads float64) float64 {
	if rads < 0 {
		return rads + 2*math.Pi
	}
	if rads >= 2*math.Pi {
		return rads - 2*math.Pi
	}
	return rads
}

// constrainLng normalizes a longitude into (-π, π].
func constrainLng(lng float64) float64 {
	for lng > math.Pi {
		lng -= 2 * math.Pi
	}
	for lng < -math.Pi {
		lng += 2 * math.Pi
	}
	return lng
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
