// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package models

// Arc is a rendered 2D map path between two coordinates: the Bezier
// sample points plus the visual weight derived from route frequency.
type Arc struct {
	TripID string        `json:"trip_id,omitempty"`
	Mode   TransportMode `json:"mode"`
	Points []GeoPoint    `json:"points"`

	// Weight is the line width in pixels, scaled by route frequency.
	Weight float64 `json:"weight"`

	Style ArcStyle `json:"style"`
}

// GlobeArc is a rendered 3D globe path: endpoint coordinates plus the
// altitude and opacity the WebGL layer consumes.
type GlobeArc struct {
	TripID string        `json:"trip_id,omitempty"`
	Mode   TransportMode `json:"mode"`
	Start  GeoPoint      `json:"start"`
	End    GeoPoint      `json:"end"`

	// Altitude is the arc apex height as a fraction of the globe radius.
	Altitude float64 `json:"altitude"`

	// Opacity scales logarithmically with route frequency.
	Opacity float64 `json:"opacity"`

	Style ArcStyle `json:"style"`
}

// RouteFrequency maps a canonical undirected route key to the number of
// times that route appears across the rendered itineraries.
type RouteFrequency map[string]int

// ArcStyle is the render style for one transport mode.
type ArcStyle struct {
	Color     string `json:"color"`
	DashArray string `json:"dash_array,omitempty"`
}

// arcStyles is the enumerated mode-to-style lookup. Unknown modes fall
// back to the flight style.
var arcStyles = map[TransportMode]ArcStyle{
	ModeFlight:      {Color: "#2563eb"},
	ModeTrain:       {Color: "#16a34a", DashArray: "6 4"},
	ModeBus:         {Color: "#ca8a04", DashArray: "4 4"},
	ModeCarRental:   {Color: "#9333ea", DashArray: "2 4"},
	ModePersonalCar: {Color: "#db2777", DashArray: "2 4"},
	ModeCruise:      {Color: "#0891b2", DashArray: "8 4"},
}

// StyleFor returns the render style for a transport mode.
func StyleFor(mode TransportMode) ArcStyle {
	if style, ok := arcStyles[mode]; ok {
		return style
	}
	return arcStyles[ModeFlight]
}
