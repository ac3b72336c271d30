// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package models

// NamedCount is one bucket in a grouped counter, ordered by count when
// returned as a top-N list.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FlightRecord identifies a single flight leg in an extremal slot
// (longest or shortest).
type FlightRecord struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Airline      string  `json:"airline,omitempty"`
	FlightNumber string  `json:"flight_number,omitempty"`
	DistanceKm   float64 `json:"distance_km"`
}

// FlightStatistics aggregates travel counters over a set of trips.
// All fields are derived; nothing here is persisted.
type FlightStatistics struct {
	TotalFlights     int     `json:"total_flights"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalDurationMin float64 `json:"total_duration_min"`

	LongestFlight  *FlightRecord `json:"longest_flight,omitempty"`
	ShortestFlight *FlightRecord `json:"shortest_flight,omitempty"`

	TopAirports []NamedCount `json:"top_airports,omitempty"`
	TopAirlines []NamedCount `json:"top_airlines,omitempty"`
	TopAircraft []NamedCount `json:"top_aircraft,omitempty"`
	TopRoutes   []NamedCount `json:"top_routes,omitempty"`

	SeatCounts  map[string]int `json:"seat_counts,omitempty"`
	ClassCounts map[string]int `json:"class_counts,omitempty"`

	// FlightsByMonth counts departures per calendar month, keyed 1-12.
	FlightsByMonth map[int]int `json:"flights_by_month,omitempty"`

	// Circumnavigations is total distance over Earth's circumference.
	Circumnavigations float64 `json:"circumnavigations"`

	// DaysInAir is total airborne duration expressed in days.
	DaysInAir float64 `json:"days_in_air"`
}
