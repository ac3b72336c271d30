// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geo

import (
	"math"
	"testing"

	"github.com/peregrine-app/peregrine/internal/models"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestCurvePointsEndpoints(t *testing.T) {
	start := models.GeoPoint{Lat: 0, Lng: 0}
	end := models.GeoPoint{Lat: 0, Lng: 10}

	points := CurvePoints(start, end)

	if len(points) != 101 {
		t.Fatalf("expected 101 points, got %d", len(points))
	}
	if !almostEqual(points[0].Lat, start.Lat) || !almostEqual(points[0].Lng, start.Lng) {
		t.Errorf("first point %+v != start %+v", points[0], start)
	}
	last := points[len(points)-1]
	if !almostEqual(last.Lat, end.Lat) || !almostEqual(last.Lng, end.Lng) {
		t.Errorf("last point %+v != end %+v", last, end)
	}
}

func TestCurvePointsMidpointBows(t *testing.T) {
	points := CurvePoints(models.GeoPoint{Lat: 0, Lng: 0}, models.GeoPoint{Lat: 0, Lng: 10})

	// Straight-line midpoint latitude is 0; the arc's midpoint must
	// deviate by a nonzero, bounded amount.
	mid := points[50]
	deviation := math.Abs(mid.Lat - 0)
	if deviation < floatTolerance {
		t.Error("expected midpoint to deviate from the straight line")
	}
	if deviation > maxCurveIntensity {
		t.Errorf("midpoint deviation %f exceeds intensity bound %f", deviation, maxCurveIntensity)
	}
}

func TestCurvePointsHemisphereSign(t *testing.T) {
	t.Run("northern hemisphere bows north", func(t *testing.T) {
		points := CurvePoints(models.GeoPoint{Lat: 40, Lng: -74}, models.GeoPoint{Lat: 51, Lng: 0})
		if points[50].Lat <= (40.0+51.0)/2 {
			t.Errorf("expected northward bow, midpoint lat %f", points[50].Lat)
		}
	})
	t.Run("southern hemisphere bows south", func(t *testing.T) {
		points := CurvePoints(models.GeoPoint{Lat: -34, Lng: -58}, models.GeoPoint{Lat: -33, Lng: 18})
		if points[50].Lat >= (-34.0-33.0)/2 {
			t.Errorf("expected southward bow, midpoint lat %f", points[50].Lat)
		}
	})
}

func TestCurvePointsAntimeridian(t *testing.T) {
	tests := []struct {
		name  string
		start models.GeoPoint
		end   models.GeoPoint
	}{
		{
			name:  "tokyo to san francisco",
			start: models.GeoPoint{Lat: 35.68, Lng: 139.77},
			end:   models.GeoPoint{Lat: 37.77, Lng: -122.42},
		},
		{
			name:  "san francisco to tokyo",
			start: models.GeoPoint{Lat: 37.77, Lng: -122.42},
			end:   models.GeoPoint{Lat: 35.68, Lng: 139.77},
		},
		{
			name:  "auckland to santiago",
			start: models.GeoPoint{Lat: -36.85, Lng: 174.76},
			end:   models.GeoPoint{Lat: -33.45, Lng: -70.67},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := CurvePoints(tt.start, tt.end)
			for i := 1; i < len(points); i++ {
				jump := math.Abs(points[i].Lng - points[i-1].Lng)
				if jump > 180 {
					t.Fatalf("longitude jump %f > 180 between samples %d and %d", jump, i-1, i)
				}
			}
		})
	}
}

func TestCurvePointsIdenticalEndpoints(t *testing.T) {
	p := models.GeoPoint{Lat: 48.86, Lng: 2.35}
	points := CurvePoints(p, p)
	if len(points) != 101 {
		t.Fatalf("expected 101 points, got %d", len(points))
	}
	for i, pt := range points {
		if !almostEqual(pt.Lat, p.Lat) || !almostEqual(pt.Lng, p.Lng) {
			t.Fatalf("point %d = %+v, want %+v", i, pt, p)
		}
	}
}

func TestCurvePointsDeterministic(t *testing.T) {
	start := models.GeoPoint{Lat: 40.64, Lng: -73.78}
	end := models.GeoPoint{Lat: 51.47, Lng: -0.45}

	a := CurvePoints(start, end)
	b := CurvePoints(start, end)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output at sample %d", i)
		}
	}
}

func TestArcAltitude(t *testing.T) {
	nyc := models.GeoPoint{Lat: 40.71, Lng: -74.01}
	london := models.GeoPoint{Lat: 51.51, Lng: -0.13}
	sydney := models.GeoPoint{Lat: -33.87, Lng: 151.21}

	t.Run("surface modes hug the globe", func(t *testing.T) {
		for _, mode := range []models.TransportMode{
			models.ModeTrain, models.ModeBus, models.ModeCarRental,
			models.ModePersonalCar, models.ModeCruise,
		} {
			if got := ArcAltitude(nyc, london, mode); got != surfaceAltitude {
				t.Errorf("ArcAltitude(%s) = %f, want %f", mode, got, surfaceAltitude)
			}
		}
	})

	t.Run("flights scale with angular distance", func(t *testing.T) {
		short := ArcAltitude(nyc, london, models.ModeFlight)
		long := ArcAltitude(london, sydney, models.ModeFlight)
		if short <= surfaceAltitude {
			t.Errorf("expected airborne altitude above surface, got %f", short)
		}
		if long <= short {
			t.Errorf("expected longer flight to arc higher: short=%f long=%f", short, long)
		}
	})

	t.Run("altitude is capped", func(t *testing.T) {
		// Near-antipodal pair.
		got := ArcAltitude(models.GeoPoint{Lat: 0, Lng: 0}, models.GeoPoint{Lat: 0, Lng: 179.9}, models.ModeFlight)
		if got > altitudeScale {
			t.Errorf("altitude %f exceeds cap %f", got, altitudeScale)
		}
	})
}
