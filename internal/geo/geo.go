// Package geo holds the distance math behind radar scans.
package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	// EarthRadiusKm is the mean Earth radius used by Haversine.
	EarthRadiusKm = 6371.0

	kmPerDegreeLat = 111.0
	// minCosLat keeps the longitude span finite near the poles.
	minCosLat = 0.01
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Validate rejects NaN, infinities and out-of-range values.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return fmt.Errorf("non-finite coordinate: %w", ErrInvalidCoordinates)
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("coordinate out of range: %w", ErrInvalidCoordinates)
	}
	return nil
}

func toRad(v float64) float64 { return v * math.Pi / 180 }

// Haversine returns the great-circle distance in km on a sphere of radiusKm.
func Haversine(a, b Point, radiusKm float64) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push h just past 1 for antipodal points
	h = math.Min(math.Max(h, 0), 1)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return radiusKm * c
}

// Range is an inclusive interval of degrees.
type Range struct {
	Min float64
	Max float64
}

// Box is the rectangular prefilter around a point. Lng holds one range,
// or two when the box crosses the antimeridian.
type Box struct {
	Lat Range
	Lng []Range
}

// BoundingBox returns the degree box that contains every point within
// radiusKm of center. It may include points farther away; callers must
// still apply Haversine.
func BoundingBox(center Point, radiusKm float64) Box {
	latDelta := radiusKm / kmPerDegreeLat
	lngDelta := radiusKm / (kmPerDegreeLat * math.Max(math.Cos(toRad(center.Lat)), minCosLat))

	box := Box{Lat: Range{
		Min: math.Max(center.Lat-latDelta, -90),
		Max: math.Min(center.Lat+latDelta, 90),
	}}

	minLng, maxLng := center.Lng-lngDelta, center.Lng+lngDelta
	switch {
	case lngDelta >= 180:
		box.Lng = []Range{{Min: -180, Max: 180}}
	case minLng < -180:
		box.Lng = []Range{{Min: -180, Max: maxLng}, {Min: minLng + 360, Max: 180}}
	case maxLng > 180:
		box.Lng = []Range{{Min: minLng, Max: 180}, {Min: -180, Max: maxLng - 360}}
	default:
		box.Lng = []Range{{Min: minLng, Max: maxLng}}
	}
	return box
}
