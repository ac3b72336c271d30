// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package models

import (
	"time"
)

// VisitedCountry aggregates visits to one country across all trips.
// Keyed by ISO 3166-1 alpha-2 code when the geocoder supplied one,
// otherwise by country name.
type VisitedCountry struct {
	Code   string `json:"code,omitempty"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`

	// Cities is the sorted set of distinct visited cities.
	Cities []string `json:"cities,omitempty"`

	// LastVisit is the latest arrival date across trips.
	LastVisit time.Time `json:"last_visit"`

	Visits int `json:"visits"`
}

// TravelerRank is one rung of the named rank ladder.
type TravelerRank struct {
	Name         string `json:"name"`
	MinCountries int    `json:"min_countries"`
}

// RankProgress reports the user's current rank and linear progress
// toward the next one.
type RankProgress struct {
	CountryCount int           `json:"country_count"`
	Current      TravelerRank  `json:"current"`
	Next         *TravelerRank `json:"next,omitempty"`

	// Progress is 0..1 between the current and next thresholds,
	// 1 at the top rank.
	Progress float64 `json:"progress"`
}

// CountryBadges is the badge view for one user: every visited country
// plus the rank derived from the country count.
type CountryBadges struct {
	Countries []VisitedCountry `json:"countries"`
	Rank      RankProgress     `json:"rank"`

	// Unresolved counts place names the geocoder could not resolve.
	// They are excluded from the country list but surfaced here so the
	// dashboard can hint at incomplete data.
	Unresolved int `json:"unresolved,omitempty"`
}
