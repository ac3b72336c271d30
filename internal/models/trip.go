// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package models

import (
	"time"
)

// TripStatus describes where a trip sits in its lifecycle.
type TripStatus string

// Trip lifecycle states.
const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusPast      TripStatus = "past"
	TripStatusCancelled TripStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanning, TripStatusUpcoming, TripStatusPast, TripStatusCancelled:
		return true
	}
	return false
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// Trip is a journey owned by a user: a named date range with an ordered
// multi-leg itinerary and zero or more accommodations.
type Trip struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Name           string          `json:"name" validate:"required,max=200"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Status         TripStatus      `json:"status"`
	Transports     []Transport     `json:"transports,omitempty" validate:"dive"`
	Accommodations []Accommodation `json:"accommodations,omitempty"`

	// Coordinate optionally pins the trip itself on the map when it has
	// no transports (e.g. a single-city stay).
	Coordinate *GeoPoint `json:"coordinate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Origin returns the departure location of the first transport leg by
// departure time, or empty string if the trip has no legs.
func (t *Trip) Origin() string {
	legs := t.SortedTransports()
	if len(legs) == 0 {
		return ""
	}
	return legs[0].Origin
}

// SortedTransports returns the trip's legs ordered by departure timestamp.
// Legs with unparseable departure times sort after parseable ones, keeping
// their relative order.
func (t *Trip) SortedTransports() []Transport {
	legs := make([]Transport, len(t.Transports))
	copy(legs, t.Transports)

	// Insertion sort keeps this dependency-free and stable; itineraries
	// are small (rarely more than a dozen legs).
	for i := 1; i < len(legs); i++ {
		for j := i; j > 0; j-- {
			a, aOK := legs[j-1].DepartureAt()
			b, bOK := legs[j].DepartureAt()
			swap := false
			switch {
			case aOK && bOK:
				swap = b.Before(a)
			case !aOK && bOK:
				swap = true
			}
			if !swap {
				break
			}
			legs[j-1], legs[j] = legs[j], legs[j-1]
		}
	}
	return legs
}

// Accommodation is a stay attached to a trip.
type Accommodation struct {
	ID       string    `json:"id"`
	TripID   string    `json:"trip_id"`
	Name     string    `json:"name" validate:"required,max=200"`
	Address  string    `json:"address,omitempty"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`

	Coordinate *GeoPoint `json:"coordinate,omitempty"`
}
