// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package models

import (
	"time"
)

// TransportMode identifies how a leg is traveled.
type TransportMode string

// Supported transport modes.
const (
	ModeFlight      TransportMode = "flight"
	ModeTrain       TransportMode = "train"
	ModeBus         TransportMode = "bus"
	ModeCarRental   TransportMode = "car_rental"
	ModePersonalCar TransportMode = "personal_car"
	ModeCruise      TransportMode = "cruise"
)

// Valid reports whether the mode is one of the supported transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeFlight, ModeTrain, ModeBus, ModeCarRental, ModePersonalCar, ModeCruise:
		return true
	}
	return false
}

// Surface reports whether the mode travels on the surface. Surface legs
// are rendered hugging the globe rather than arcing above it.
func (m TransportMode) Surface() bool {
	switch m {
	case ModeTrain, ModeBus, ModeCarRental, ModePersonalCar, ModeCruise:
		return true
	}
	return false
}

// Waypoint is an intermediate stop that splits a transport leg into
// multiple rendered segments.
type Waypoint struct {
	Name       string   `json:"name,omitempty"`
	Coordinate GeoPoint `json:"coordinate"`
}

// Transport is one directed leg between two named locations.
//
// Departure and arrival timestamps are carried as strings because they
// originate from free-form user input; consumers parse them tolerantly
// and treat unparseable values as missing rather than erroring.
type Transport struct {
	ID          string        `json:"id"`
	TripID      string        `json:"trip_id"`
	Mode        TransportMode `json:"mode" validate:"required,transport_mode"`
	Origin      string        `json:"origin" validate:"required,max=200"`
	Destination string        `json:"destination" validate:"required,max=200"`

	OriginCoordinate      *GeoPoint  `json:"origin_coordinate,omitempty"`
	DestinationCoordinate *GeoPoint  `json:"destination_coordinate,omitempty"`
	Waypoints             []Waypoint `json:"waypoints,omitempty"`

	// DistanceKm is the precomputed leg distance. Zero means unknown;
	// consumers fall back to haversine distance from the coordinates.
	DistanceKm float64 `json:"distance_km,omitempty"`

	DepartureTime string `json:"departure_time,omitempty" validate:"omitempty,trip_timestamp"`
	ArrivalTime   string `json:"arrival_time,omitempty" validate:"omitempty,trip_timestamp"`

	// Flight-specific fields, empty for other modes.
	Airline      string `json:"airline,omitempty"`
	FlightNumber string `json:"flight_number,omitempty"`
	Aircraft     string `json:"aircraft,omitempty"`
	OriginCode   string `json:"origin_code,omitempty"`      // IATA airport code
	DestCode     string `json:"destination_code,omitempty"` // IATA airport code
	Seat         string `json:"seat,omitempty"`
	Class        string `json:"class,omitempty"` // free text, e.g. "Economy", "Premium Economy"
}

// timestampLayouts lists the accepted departure/arrival formats, tried
// in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a transport timestamp string.
// Returns the zero time and false when the value is empty or unparseable.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// DepartureAt parses the departure timestamp.
func (t *Transport) DepartureAt() (time.Time, bool) {
	return ParseTimestamp(t.DepartureTime)
}

// ArrivalAt parses the arrival timestamp.
func (t *Transport) ArrivalAt() (time.Time, bool) {
	return ParseTimestamp(t.ArrivalTime)
}

// Duration returns the leg duration where both timestamps parse and the
// arrival is not before the departure.
func (t *Transport) Duration() (time.Duration, bool) {
	dep, ok := t.DepartureAt()
	if !ok {
		return 0, false
	}
	arr, ok := t.ArrivalAt()
	if !ok {
		return 0, false
	}
	d := arr.Sub(dep)
	if d < 0 {
		return 0, false
	}
	return d, true
}

// HasCoordinates reports whether both endpoints carry coordinates.
func (t *Transport) HasCoordinates() bool {
	return t.OriginCoordinate != nil && t.DestinationCoordinate != nil
}

// Segments expands the leg into coordinate pairs, splitting at waypoints
// that carry coordinates. Legs without both endpoint coordinates yield
// no segments.
func (t *Transport) Segments() [][2]GeoPoint {
	if !t.HasCoordinates() {
		return nil
	}
	points := []GeoPoint{*t.OriginCoordinate}
	for _, wp := range t.Waypoints {
		points = append(points, wp.Coordinate)
	}
	points = append(points, *t.DestinationCoordinate)

	segments := make([][2]GeoPoint, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		segments = append(segments, [2]GeoPoint{points[i], points[i+1]})
	}
	return segments
}
