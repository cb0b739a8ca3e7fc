package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKnownDistances(t *testing.T) {
	origin := Point{Lat: 40.000, Lng: -74.000}

	near := Haversine(origin, Point{Lat: 40.05, Lng: -74.000}, EarthRadiusKm)
	assert.InDelta(t, 5.56, near, 0.05)

	far := Haversine(origin, Point{Lat: 40.20, Lng: -74.000}, EarthRadiusKm)
	assert.InDelta(t, 22.24, far, 0.05)

	assert.Zero(t, Haversine(origin, origin, EarthRadiusKm))
}

func TestHaversineSymmetric(t *testing.T) {
	a := Point{Lat: 51.5074, Lng: -0.1278}
	b := Point{Lat: 48.8566, Lng: 2.3522}

	ab := Haversine(a, b, EarthRadiusKm)
	assert.InDelta(t, ab, Haversine(b, a, EarthRadiusKm), 1e-9)
	assert.InDelta(t, 343.5, ab, 1.0)
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	center := Point{Lat: 40, Lng: -74}
	box := BoundingBox(center, 10)

	assert.InDelta(t, 10/111.0, center.Lat-box.Lat.Min, 1e-9)
	require.Len(t, box.Lng, 1)

	// Points exactly radius away in cardinal directions are inside.
	for _, bearing := range []float64{0, 90, 180, 270} {
		p := destination(center, 9.99, bearing)
		assert.True(t, inBox(box, p), "bearing %v", bearing)
	}
	assert.False(t, inBox(box, Point{Lat: 40.2, Lng: -74}))
}

func TestBoundingBoxNearPoleIsFinite(t *testing.T) {
	box := BoundingBox(Point{Lat: 89.9999, Lng: 10}, 50)

	require.NotEmpty(t, box.Lng)
	for _, r := range box.Lng {
		assert.False(t, math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0))
	}
	assert.Equal(t, 90.0, box.Lat.Max)
}

func TestBoundingBoxAntimeridianSplit(t *testing.T) {
	box := BoundingBox(Point{Lat: 0, Lng: 179.95}, 20)

	require.Len(t, box.Lng, 2)
	assert.True(t, inBox(box, Point{Lat: 0, Lng: -179.95}))
	assert.True(t, inBox(box, Point{Lat: 0, Lng: 179.99}))
	assert.False(t, inBox(box, Point{Lat: 0, Lng: 0}))
}

func TestPointValidate(t *testing.T) {
	assert.NoError(t, Point{Lat: 40, Lng: -74}.Validate())
	assert.ErrorIs(t, Point{Lat: math.NaN(), Lng: 0}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Point{Lat: 91, Lng: 0}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Point{Lat: 0, Lng: math.Inf(1)}.Validate(), ErrInvalidCoordinates)
}

// destination moves distKm from p along bearingDeg on the sphere.
func destination(p Point, distKm, bearingDeg float64) Point {
	d := distKm / EarthRadiusKm
	brg := toRad(bearingDeg)
	lat1, lng1 := toRad(p.Lat), toRad(p.Lng)
	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brg))
	lng2 := lng1 + math.Atan2(math.Sin(brg)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))
	return Point{Lat: lat2 * 180 / math.Pi, Lng: lng2 * 180 / math.Pi}
}

func inBox(b Box, p Point) bool {
	if p.Lat < b.Lat.Min || p.Lat > b.Lat.Max {
		return false
	}
	for _, r := range b.Lng {
		if p.Lng >= r.Min && p.Lng <= r.Max {
			return true
		}
	}
	return false
}

func TestHaversineAntipodalIsFinite(t *testing.T) {
	cases := []struct{ a, b Point }{
		{Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 180}},
		{Point{Lat: 90, Lng: 0}, Point{Lat: -90, Lng: 0}},
		{Point{Lat: 40.7128, Lng: -74.006}, Point{Lat: -40.7128, Lng: 105.994}},
	}
	for _, tc := range cases {
		d := Haversine(tc.a, tc.b, EarthRadiusKm)
		require.False(t, math.IsNaN(d), "%+v", tc)
		assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1)
	}
}
