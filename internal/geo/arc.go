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
	// arcSamples is the number of Bezier intervals per arc. The polyline
	// always has arcSamples+1 points.
	arcSamples = 100

	// curveIntensityFactor scales the Euclidean endpoint distance (in
	// degrees) into the perpendicular control-point displacement.
	curveIntensityFactor = 0.2

	// minCurveIntensity and maxCurveIntensity bound the displacement so
	// short hops still bow visibly and long hauls do not leave the map.
	minCurveIntensity = 0.25
	maxCurveIntensity = 15.0

	// surfaceAltitude keeps surface legs just above the globe mesh to
	// avoid z-fighting.
	surfaceAltitude = 0.002

	// altitudeScale is the maximum arc apex height for an antipodal
	// flight, as a fraction of the globe radius.
	altitudeScale = 0.3
)

// unwrapLongitude normalizes the target longitude so the interpolated
// path never spans more than 180 degrees of longitude. Arcs crossing the
// antimeridian are rendered past the +-180 edge instead of wrapping the
// long way around.
func unwrapLongitude(startLng, endLng float64) float64 {
	delta := endLng - startLng
	switch {
	case delta > 180:
		return endLng - 360
	case delta < -180:
		return endLng + 360
	}
	return endLng
}

// CurvePoints generates the 2D map polyline between two coordinates as a
// quadratic Bezier arc of arcSamples+1 points. The control point is the
// segment midpoint displaced perpendicular to the segment, bowing toward
// the pole of the midpoint's hemisphere, with the displacement
// proportional to the Euclidean endpoint distance and clamped.
//
// Pure function of (start, end); the first returned point equals start
// and the last equals end.
func CurvePoints(start, end models.GeoPoint) []models.GeoPoint {
	endLng := unwrapLongitude(start.Lng, end.Lng)

	dLat := end.Lat - start.Lat
	dLng := endLng - start.Lng
	dist := math.Hypot(dLat, dLng)

	midLat := (start.Lat + end.Lat) / 2
	midLng := (start.Lng + endLng) / 2

	ctrlLat, ctrlLng := midLat, midLng
	if dist > 0 {
		intensity := dist * curveIntensityFactor
		if intensity < minCurveIntensity {
			intensity = minCurveIntensity
		}
		if intensity > maxCurveIntensity {
			intensity = maxCurveIntensity
		}

		// Unit perpendicular of (dLat, dLng), flipped so the latitude
		// displacement points away from the equator.
		pLat := -dLng / dist
		pLng := dLat / dist
		if (midLat >= 0 && pLat < 0) || (midLat < 0 && pLat > 0) {
			pLat, pLng = -pLat, -pLng
		}

		ctrlLat = midLat + pLat*intensity
		ctrlLng = midLng + pLng*intensity
	}

	points := make([]models.GeoPoint, 0, arcSamples+1)
	for i := 0; i <= arcSamples; i++ {
		t := float64(i) / arcSamples
		mt := 1 - t
		points = append(points, models.GeoPoint{
			Lat: mt*mt*start.Lat + 2*mt*t*ctrlLat + t*t*end.Lat,
			Lng: mt*mt*start.Lng + 2*mt*t*ctrlLng + t*t*endLng,
		})
	}
	return points
}

// ArcAltitude returns the 3D globe arc apex height for a leg, as a
// fraction of the globe radius. Surface modes hug the globe; airborne
// modes scale with the great-circle angular distance, capped at
// altitudeScale.
func ArcAltitude(start, end models.GeoPoint, mode models.TransportMode) float64 {
	if mode.Surface() {
		return surfaceAltitude
	}

	altitude := CentralAngle(start, end) / math.Pi * altitudeScale
	if altitude < surfaceAltitude {
		altitude = surfaceAltitude
	}
	if altitude > altitudeScale {
		altitude = altitudeScale
	}
	return altitude
}
