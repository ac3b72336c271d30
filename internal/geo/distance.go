// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geo

import (
	"math"

	"github.com/peregrine-app/peregrine/internal/models"
)

const (
	// earthRadiusKm is the mean Earth radius used for haversine distance.
	earthRadiusKm = 6371.0

	// EarthCircumferenceKm is the equatorial circumference, used for the
	// "circumnavigations" ratio in travel statistics.
	EarthCircumferenceKm = 40075.0
)

// CentralAngle returns the great-circle angular distance between two
// points in radians, computed with the haversine formula.
func CentralAngle(a, b models.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lon1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lon2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b models.GeoPoint) float64 {
	return earthRadiusKm * CentralAngle(a, b)
}
