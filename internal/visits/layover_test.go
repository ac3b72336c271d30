// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package visits

import (
	"testing"

	"github.com/peregrine-app/peregrine/internal/models"
)

func places(visits []Visit) []string {
	out := make([]string, len(visits))
	for i, v := range visits {
		out[i] = v.Place
	}
	return out
}

func assertPlaces(t *testing.T, got []Visit, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("visits = %v, want %v", places(got), want)
	}
	for i := range want {
		if got[i].Place != want[i] {
			t.Fatalf("visits = %v, want %v", places(got), want)
		}
	}
}

func TestVisitedDestinationsLayoverExcluded(t *testing.T) {
	// JFK -> LHR arriving 22:00, LHR -> CDG departing 06:00 next day:
	// 8 hours at LHR is a layover, CDG is the visit.
	trip := models.Trip{
		Transports: []models.Transport{
			{Origin: "JFK", Destination: "LHR",
				DepartureTime: "2024-01-01T10:00:00Z", ArrivalTime: "2024-01-01T22:00:00Z"},
			{Origin: "LHR", Destination: "CDG",
				DepartureTime: "2024-01-02T06:00:00Z", ArrivalTime: "2024-01-02T08:00:00Z"},
		},
	}

	assertPlaces(t, VisitedDestinations(&trip), "CDG")
}

func TestVisitedDestinationsLongStopIsVisit(t *testing.T) {
	// Three days in London before continuing: a real visit.
	trip := models.Trip{
		Transports: []models.Transport{
			{Origin: "JFK", Destination: "LHR",
				DepartureTime: "2024-01-01T10:00:00Z", ArrivalTime: "2024-01-01T22:00:00Z"},
			{Origin: "LHR", Destination: "CDG",
				DepartureTime: "2024-01-04T09:00:00Z", ArrivalTime: "2024-01-04T11:00:00Z"},
		},
	}

	assertPlaces(t, VisitedDestinations(&trip), "LHR", "CDG")
}

func TestVisitedDestinationsReturnLegExcluded(t *testing.T) {
	// JFK -> LHR, LHR -> JFK: LHR is visited, JFK is the trip origin.
	trip := models.Trip{
		Transports: []models.Transport{
			{Origin: "JFK", Destination: "LHR",
				DepartureTime: "2024-01-01T10:00:00Z", ArrivalTime: "2024-01-01T22:00:00Z"},
			{Origin: "LHR", Destination: "JFK",
				DepartureTime: "2024-01-10T10:00:00Z", ArrivalTime: "2024-01-10T13:00:00Z"},
		},
	}

	assertPlaces(t, VisitedDestinations(&trip), "LHR")
}

func TestVisitedDestinationsReturnLegCaseInsensitive(t *testing.T) {
	trip := models.Trip{
		Transports: []models.Transport{
			{Origin: "New York", Destination: "London",
				DepartureTime: "2024-01-01T10:00:00Z", ArrivalTime: "2024-01-01T22:00:00Z"},
			{Origin: "London", Destination: "  new york ",
				DepartureTime: "2024-01-10T10:00:00Z", ArrivalTime: "2024-01-10T13:00:00Z"},
		},
	}

	assertPlaces(t, VisitedDestinations(&trip), "London")
}

func TestVisitedDestinationsUnparseableTimesConservative(t *testing.T) {
	// Same-location consecutive legs with unusable timestamps are
	// treated as a layover.
	trip := models.Trip{
		Transports: []models.Transport{
			{Origin: "JFK", Destination: "LHR", DepartureTime: "2024-01-01T08:00:00Z"},
			{Origin: "LHR", Destination: "CDG", DepartureTime: "2024-01-02T08:00:00Z"},
		},
	}

	assertPlaces(t, VisitedDestinations(&trip), "CDG")
}

func TestVisitedDestinationsDifferentLocationsKept(t *testing.T) {
	// Destination does not match the next origin: no layover logic,
	// both are visits. The exact-string heuristic keeps LHR even if
	// the traveler actually continued from LGW.
	trip := models.Trip{
		Transports: []models.Transport{
			{Origin: "JFK", Destination: "LHR",
				DepartureTime: "2024-01-01T10:00:00Z", ArrivalTime: "2024-01-01T22:00:00Z"},
			{Origin: "LGW", Destination: "CDG",
				DepartureTime: "2024-01-02T06:00:00Z", ArrivalTime: "2024-01-02T08:00:00Z"},
		},
	}

	assertPlaces(t, VisitedDestinations(&trip), "LHR", "CDG")
}

func TestVisitedDestinationsEmptyTrip(t *testing.T) {
	trip := models.Trip{}
	if got := VisitedDestinations(&trip); got != nil {
		t.Errorf("expected nil for empty trip, got %v", got)
	}
}

func TestVisitedDestinationsArrivalFallback(t *testing.T) {
	end := mustDate(t, "2024-03-20")
	trip := models.Trip{
		EndDate: end,
		Transports: []models.Transport{
			{Origin: "Berlin", Destination: "Prague"},
		},
	}

	visits := VisitedDestinations(&trip)
	assertPlaces(t, visits, "Prague")
	if !visits[0].ArrivedAt.Equal(end) {
		t.Errorf("ArrivedAt = %v, want trip end date %v", visits[0].ArrivedAt, end)
	}
}
