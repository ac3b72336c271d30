// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package stats

import (
	"sort"
	"strings"

	"github.com/peregrine-app/peregrine/internal/geo"
	"github.com/peregrine-app/peregrine/internal/models"
)

// topN bounds the grouped top lists in FlightStatistics.
const topN = 5

// cabinClasses maps free-text class labels to canonical buckets via
// case-insensitive substring match. Order matters: "premium economy"
// must match before "economy".
var cabinClasses = []struct {
	substring string
	bucket    string
}{
	{"first", "First"},
	{"business", "Business"},
	{"premium", "Premium Economy"},
	{"economy", "Economy"},
}

// classBucket canonicalizes a free-text cabin class label.
// Unmatched non-empty labels land in "Other".
func classBucket(label string) string {
	if strings.TrimSpace(label) == "" {
		return ""
	}
	lower := strings.ToLower(label)
	for _, c := range cabinClasses {
		if strings.Contains(lower, c.substring) {
			return c.bucket
		}
	}
	return "Other"
}

// legDistance resolves a flight leg's distance: the precomputed field
// when present, falling back to haversine over the endpoint
// coordinates. Legs with neither contribute zero.
func legDistance(leg *models.Transport) float64 {
	if leg.DistanceKm > 0 {
		return leg.DistanceKm
	}
	if leg.HasCoordinates() {
		return geo.Haversine(*leg.OriginCoordinate, *leg.DestinationCoordinate)
	}
	return 0
}

// airportName picks the grouping key for an airport: the IATA code when
// set, otherwise the location name.
func airportName(code, name string) string {
	if code != "" {
		return code
	}
	return name
}

// Aggregate computes flight statistics over the given trips. Only
// flight-mode legs are counted. The computation is a single pass over
// all legs; extremal ties keep the first-encountered flight.
//
// Edge cases:
//   - Legs with no distance field and no coordinates count toward the
//     flight total but contribute zero distance.
//   - Legs with unparseable timestamps are excluded from the duration
//     sum only, not from the flight count.
func Aggregate(trips []models.Trip) models.FlightStatistics {
	result := models.FlightStatistics{
		SeatCounts:     make(map[string]int),
		ClassCounts:    make(map[string]int),
		FlightsByMonth: make(map[int]int),
	}

	airports := make(map[string]int)
	airlines := make(map[string]int)
	aircraft := make(map[string]int)
	routes := make(map[string]int)

	for ti := range trips {
		for li := range trips[ti].Transports {
			leg := &trips[ti].Transports[li]
			if leg.Mode != models.ModeFlight {
				continue
			}

			result.TotalFlights++

			distance := legDistance(leg)
			result.TotalDistanceKm += distance

			if d, ok := leg.Duration(); ok {
				result.TotalDurationMin += d.Minutes()
			}

			record := &models.FlightRecord{
				Origin:       leg.Origin,
				Destination:  leg.Destination,
				Airline:      leg.Airline,
				FlightNumber: leg.FlightNumber,
				DistanceKm:   distance,
			}
			if result.LongestFlight == nil || distance > result.LongestFlight.DistanceKm {
				result.LongestFlight = record
			}
			if result.ShortestFlight == nil || distance < result.ShortestFlight.DistanceKm {
				result.ShortestFlight = record
			}

			// Both endpoints of a leg contribute to the airport counts.
			if name := airportName(leg.OriginCode, leg.Origin); name != "" {
				airports[name]++
			}
			if name := airportName(leg.DestCode, leg.Destination); name != "" {
				airports[name]++
			}
			if leg.Airline != "" {
				airlines[leg.Airline]++
			}
			if leg.Aircraft != "" {
				aircraft[leg.Aircraft]++
			}

			// Routes stay directed: JFK-LHR and LHR-JFK are different rows.
			if leg.Origin != "" && leg.Destination != "" {
				routes[leg.Origin+" → "+leg.Destination]++
			}

			if leg.Seat != "" {
				result.SeatCounts[leg.Seat]++
			}
			if bucket := classBucket(leg.Class); bucket != "" {
				result.ClassCounts[bucket]++
			}

			if dep, ok := leg.DepartureAt(); ok {
				result.FlightsByMonth[int(dep.Month())]++
			}
		}
	}

	result.TopAirports = topCounts(airports, topN)
	result.TopAirlines = topCounts(airlines, topN)
	result.TopAircraft = topCounts(aircraft, topN)
	result.TopRoutes = topCounts(routes, topN)

	result.Circumnavigations = result.TotalDistanceKm / geo.EarthCircumferenceKm
	result.DaysInAir = result.TotalDurationMin / (60 * 24)

	return result
}

// topCounts converts a counter map into a top-N list ordered by count
// descending, name ascending for equal counts (deterministic output).
func topCounts(counts map[string]int, n int) []models.NamedCount {
	if len(counts) == 0 {
		return nil
	}
	list := make([]models.NamedCount, 0, len(counts))
	for name, count := range counts {
		list = append(list, models.NamedCount{Name: name, Count: count})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].Name < list[j].Name
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}
