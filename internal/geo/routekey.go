// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geo

import (
	"strconv"

	"github.com/peregrine-app/peregrine/internal/models"
)

// routeKeyPrecision is the number of decimal digits kept when keying
// coordinates. Two decimals is roughly a kilometer at the equator, which
// merges near-duplicate coordinates for the same airport reported by
// different sources.
const routeKeyPrecision = 2

// formatCoordinate renders a point as "lat,lng" at key precision.
func formatCoordinate(p models.GeoPoint) string {
	return strconv.FormatFloat(p.Lat, 'f', routeKeyPrecision, 64) +
		"," +
		strconv.FormatFloat(p.Lng, 'f', routeKeyPrecision, 64)
}

// RouteKey returns the canonical, order-independent key for an
// undirected coordinate pair: RouteKey(a, b) == RouteKey(b, a) for all
// inputs. The two endpoint strings are ordered lexicographically before
// joining, so reversed legs of a round trip land in the same bucket.
func RouteKey(a, b models.GeoPoint) string {
	ka := formatCoordinate(a)
	kb := formatCoordinate(b)
	if kb < ka {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

// CountRouteFrequencies tallies how often each canonical route appears
// across the given transport legs. Legs are split at waypoints first, so
// every rendered sub-segment contributes its own count. Legs without
// both endpoint coordinates are skipped.
func CountRouteFrequencies(transports []models.Transport) models.RouteFrequency {
	freq := make(models.RouteFrequency)
	for i := range transports {
		for _, seg := range transports[i].Segments() {
			freq[RouteKey(seg[0], seg[1])]++
		}
	}
	return freq
}
