// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package visits

import (
	"strings"
	"time"

	"github.com/peregrine-app/peregrine/internal/models"
)

// layoverThreshold is the maximum gap between arrival and the next
// departure at the same location for the stop to count as a layover
// rather than a visit.
const layoverThreshold = 24 * time.Hour

// Visit is one destination that survived the filters.
type Visit struct {
	Place string

	// ArrivedAt is the leg's arrival time when it parses, otherwise
	// the trip's end date as a coarse fallback.
	ArrivedAt time.Time
}

// samePlace compares two location strings the way the layover heuristic
// does: trimmed, case-insensitive, otherwise exact.
func samePlace(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// VisitedDestinations returns the destinations of a trip that represent
// genuine visits, excluding return legs to the trip's origin and
// sub-24h layovers.
func VisitedDestinations(trip *models.Trip) []Visit {
	legs := trip.SortedTransports()
	if len(legs) == 0 {
		return nil
	}
	origin := legs[0].Origin

	var visits []Visit
	for i := range legs {
		leg := &legs[i]
		if leg.Destination == "" {
			continue
		}

		// Return leg: back where the trip started.
		if samePlace(leg.Destination, origin) {
			continue
		}

		// Layover: continues from the same place within the threshold.
		if i+1 < len(legs) && samePlace(leg.Destination, legs[i+1].Origin) {
			arr, arrOK := leg.ArrivalAt()
			dep, depOK := legs[i+1].DepartureAt()
			if arrOK && depOK {
				if gap := dep.Sub(arr); gap >= 0 && gap < layoverThreshold {
					continue
				}
			} else {
				// Timestamps unusable: treat the same-location pair as
				// a layover rather than inventing a visit.
				continue
			}
		}

		arrived, ok := leg.ArrivalAt()
		if !ok {
			arrived = trip.EndDate
		}
		visits = append(visits, Visit{Place: leg.Destination, ArrivedAt: arrived})
	}
	return visits
}
