// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geo

import (
	"testing"

	"github.com/peregrine-app/peregrine/internal/models"
)

func TestRouteKeySymmetry(t *testing.T) {
	tests := []struct {
		name string
		a    models.GeoPoint
		b    models.GeoPoint
	}{
		{"transatlantic", models.GeoPoint{Lat: 40.64, Lng: -73.78}, models.GeoPoint{Lat: 51.47, Lng: -0.45}},
		{"antimeridian", models.GeoPoint{Lat: 35.68, Lng: 139.77}, models.GeoPoint{Lat: 37.77, Lng: -122.42}},
		{"same point", models.GeoPoint{Lat: 48.86, Lng: 2.35}, models.GeoPoint{Lat: 48.86, Lng: 2.35}},
		{"negative coordinates", models.GeoPoint{Lat: -33.87, Lng: -70.67}, models.GeoPoint{Lat: -36.85, Lng: 174.76}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if RouteKey(tt.a, tt.b) != RouteKey(tt.b, tt.a) {
				t.Errorf("RouteKey not symmetric: %q != %q", RouteKey(tt.a, tt.b), RouteKey(tt.b, tt.a))
			}
		})
	}
}

func TestRouteKeyPrecisionMergesNearDuplicates(t *testing.T) {
	// Same airport from two data sources with sub-kilometer disagreement.
	a := models.GeoPoint{Lat: 51.4700, Lng: -0.4543}
	b := models.GeoPoint{Lat: 51.4712, Lng: -0.4538}
	other := models.GeoPoint{Lat: 40.64, Lng: -73.78}

	if RouteKey(a, other) != RouteKey(b, other) {
		t.Errorf("expected near-duplicate coordinates to share a key: %q vs %q",
			RouteKey(a, other), RouteKey(b, other))
	}
}

func TestRouteKeyDistinctRoutes(t *testing.T) {
	jfk := models.GeoPoint{Lat: 40.64, Lng: -73.78}
	lhr := models.GeoPoint{Lat: 51.47, Lng: -0.45}
	cdg := models.GeoPoint{Lat: 49.01, Lng: 2.55}

	if RouteKey(jfk, lhr) == RouteKey(jfk, cdg) {
		t.Error("different routes must not share a key")
	}
}

func TestCountRouteFrequenciesRoundTrip(t *testing.T) {
	jfk := &models.GeoPoint{Lat: 40.64, Lng: -73.78}
	lhr := &models.GeoPoint{Lat: 51.47, Lng: -0.45}

	// A round trip must increment the same bucket twice, not create two.
	legs := []models.Transport{
		{Origin: "JFK", Destination: "LHR", OriginCoordinate: jfk, DestinationCoordinate: lhr},
		{Origin: "LHR", Destination: "JFK", OriginCoordinate: lhr, DestinationCoordinate: jfk},
	}

	freq := CountRouteFrequencies(legs)
	if len(freq) != 1 {
		t.Fatalf("expected 1 bucket, got %d: %v", len(freq), freq)
	}
	for key, count := range freq {
		if count != 2 {
			t.Errorf("bucket %q = %d, want 2", key, count)
		}
	}
}

func TestCountRouteFrequenciesWaypointSplit(t *testing.T) {
	jfk := &models.GeoPoint{Lat: 40.64, Lng: -73.78}
	lhr := &models.GeoPoint{Lat: 51.47, Lng: -0.45}

	legs := []models.Transport{
		{
			OriginCoordinate:      jfk,
			DestinationCoordinate: lhr,
			Waypoints: []models.Waypoint{
				{Name: "Keflavik", Coordinate: models.GeoPoint{Lat: 63.98, Lng: -22.62}},
			},
		},
	}

	freq := CountRouteFrequencies(legs)
	if len(freq) != 2 {
		t.Fatalf("expected 2 buckets for a waypoint-split leg, got %d", len(freq))
	}
}

func TestCountRouteFrequenciesSkipsLegsWithoutCoordinates(t *testing.T) {
	legs := []models.Transport{
		{Origin: "Home", Destination: "Office"},
		{Origin: "JFK", OriginCoordinate: &models.GeoPoint{Lat: 40.64, Lng: -73.78}},
	}

	if freq := CountRouteFrequencies(legs); len(freq) != 0 {
		t.Errorf("expected no buckets, got %v", freq)
	}
}
