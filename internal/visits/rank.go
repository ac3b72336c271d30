// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package visits

import (
	"github.com/peregrine-app/peregrine/internal/models"
)

// rankLadder is the monotonic rank table, ordered by ascending
// threshold. The first entry must have MinCountries 0 so every count
// maps to a rank.
var rankLadder = []models.TravelerRank{
	{Name: "Homebody", MinCountries: 0},
	{Name: "Day Tripper", MinCountries: 1},
	{Name: "Explorer", MinCountries: 3},
	{Name: "Globetrotter", MinCountries: 7},
	{Name: "Jetsetter", MinCountries: 15},
	{Name: "World Citizen", MinCountries: 30},
	{Name: "Master Voyager", MinCountries: 60},
}

// RankFor maps a visited-country count to the current rank and the
// linear progress toward the next one. Progress is 1 at the top rank.
func RankFor(countryCount int) models.RankProgress {
	if countryCount < 0 {
		countryCount = 0
	}

	current := rankLadder[0]
	var next *models.TravelerRank
	for i := range rankLadder {
		if countryCount >= rankLadder[i].MinCountries {
			current = rankLadder[i]
			if i+1 < len(rankLadder) {
				n := rankLadder[i+1]
				next = &n
			} else {
				next = nil
			}
		}
	}

	progress := 1.0
	if next != nil {
		span := next.MinCountries - current.MinCountries
		progress = float64(countryCount-current.MinCountries) / float64(span)
	}

	return models.RankProgress{
		CountryCount: countryCount,
		Current:      current,
		Next:         next,
		Progress:     progress,
	}
}
