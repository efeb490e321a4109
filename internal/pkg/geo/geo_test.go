package geo

import (
	"math"
	"testing"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	cases := []struct {
		lat, lon float64
	}{
		{0, 0},
		{37.7749, -122.4194},
		{-33.8688, 151.2093},
	}
	for _, c := range cases {
		if got := Distance(c.lat, c.lon, c.lat, c.lon); got != 0 {
			t.Errorf("Distance(%v,%v,%v,%v) = %v, want 0", c.lat, c.lon, c.lat, c.lon, got)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{37.7749, -122.4194, 37.3382, -121.8863},
		{0, 0, 10, 10},
		{-45.0, 170.0, 45.0, -170.0},
	}
	for _, c := range cases {
		ab := Distance(c.lat1, c.lon1, c.lat2, c.lon2)
		ba := Distance(c.lat2, c.lon2, c.lat1, c.lon1)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// One degree of latitude along a meridian is about 111.19 km on a
	// 6371 km sphere.
	got := Distance(0, 0, 1, 0)
	if math.Abs(got-111195) > 100 {
		t.Errorf("Distance(0,0,1,0) = %v, want ~111195", got)
	}

	// San Francisco -> San Jose, roughly 67 km.
	got = Distance(37.7749, -122.4194, 37.3382, -121.8863)
	if got < 60000 || got > 75000 {
		t.Errorf("Distance(SF, SJ) = %v, want ~67km", got)
	}
}

func TestWithinAny(t *testing.T) {
	fence := Fence{Name: "Main Office", Latitude: 37.7749, Longitude: -122.4194, RadiusMeters: 100}

	if !WithinAny(fence.Latitude, fence.Longitude, []Fence{fence}) {
		t.Error("fence center should be within its own fence")
	}

	// ~0.0005 degrees latitude is roughly 55m, inside the 100m radius.
	if !WithinAny(37.7754, -122.4194, []Fence{fence}) {
		t.Error("point 55m away should be within a 100m fence")
	}

	// ~0.002 degrees latitude is roughly 222m, outside the 100m radius.
	if WithinAny(37.7769, -122.4194, []Fence{fence}) {
		t.Error("point 222m away should be outside a 100m fence")
	}

	if WithinAny(37.7749, -122.4194, nil) {
		t.Error("empty fence list should never match")
	}
}

func TestWithinAny_MultipleFences(t *testing.T) {
	fences := []Fence{
		{Name: "Main Office", Latitude: 37.7749, Longitude: -122.4194, RadiusMeters: 100},
		{Name: "Satellite Office", Latitude: 37.3382, Longitude: -121.8863, RadiusMeters: 100},
	}

	if !WithinAny(37.3382, -121.8863, fences) {
		t.Error("point at second fence center should match")
	}
	// Midway between the two offices, far from both.
	if WithinAny(37.55, -122.15, fences) {
		t.Error("point between fences should not match either")
	}
}
