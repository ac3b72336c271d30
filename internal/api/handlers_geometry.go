// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package api

import (
	"net/http"
	"time"

	"github.com/peregrine-app/peregrine/internal/cache"
	"github.com/peregrine-app/peregrine/internal/geo"
	"github.com/peregrine-app/peregrine/internal/models"
)

type geometryQuery struct {
	TripID string `json:"trip_id"`
	UserID string `json:"user_id"`
}

// geometryTrips loads the trips a geometry request covers: one trip,
// one user's trips, or everything.
func (h *Handler) geometryTrips(r *http.Request) ([]models.Trip, error) {
	q := geometryQuery{
		TripID: r.URL.Query().Get("trip_id"),
		UserID: r.URL.Query().Get("user_id"),
	}
	switch {
	case q.TripID != "" && q.TripID != "all":
		trip, err := h.store.GetTrip(r.Context(), q.TripID)
		if err != nil {
			return nil, err
		}
		return []models.Trip{trip}, nil
	case q.UserID != "":
		return h.store.TripsForUser(r.Context(), q.UserID)
	default:
		return h.store.ListTrips(r.Context())
	}
}

// allTransports flattens every leg of the given trips in departure
// order.
func allTransports(trips []models.Trip) []models.Transport {
	var legs []models.Transport
	for i := range trips {
		legs = append(legs, trips[i].SortedTransports()...)
	}
	return legs
}

// GeometryArcs returns the 2D map arcs: Bezier-sampled polylines with
// frequency-derived line width and per-mode style.
func (h *Handler) GeometryArcs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := cache.GenerateKey("geometry/arcs", r.URL.Query().Encode())
	if cached, ok := h.cache.Get(key); ok {
		respondCached(w, cached, start)
		return
	}

	trips, err := h.geometryTrips(r)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	legs := allTransports(trips)
	freq := geo.CountRouteFrequencies(legs)

	arcs := make([]models.Arc, 0, len(legs))
	for i := range trips {
		for j := range trips[i].Transports {
			leg := &trips[i].Transports[j]
			for _, seg := range leg.Segments() {
				arcs = append(arcs, models.Arc{
					TripID: trips[i].ID,
					Mode:   leg.Mode,
					Points: geo.CurvePoints(seg[0], seg[1]),
					Weight: geo.LineWidth(freq[geo.RouteKey(seg[0], seg[1])]),
					Style:  models.StyleFor(leg.Mode),
				})
			}
		}
	}

	h.cache.Set(key, arcs)
	respondSuccess(w, http.StatusOK, arcs, start)
}

// GeometryGlobe returns the 3D globe arcs: endpoints plus altitude and
// frequency-derived opacity.
func (h *Handler) GeometryGlobe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := cache.GenerateKey("geometry/globe", r.URL.Query().Encode())
	if cached, ok := h.cache.Get(key); ok {
		respondCached(w, cached, start)
		return
	}

	trips, err := h.geometryTrips(r)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	legs := allTransports(trips)
	freq := geo.CountRouteFrequencies(legs)

	arcs := make([]models.GlobeArc, 0, len(legs))
	for i := range trips {
		for j := range trips[i].Transports {
			leg := &trips[i].Transports[j]
			for _, seg := range leg.Segments() {
				arcs = append(arcs, models.GlobeArc{
					TripID:   trips[i].ID,
					Mode:     leg.Mode,
					Start:    seg[0],
					End:      seg[1],
					Altitude: geo.ArcAltitude(seg[0], seg[1], leg.Mode),
					Opacity:  geo.ArcOpacity(freq[geo.RouteKey(seg[0], seg[1])]),
					Style:    models.StyleFor(leg.Mode),
				})
			}
		}
	}

	h.cache.Set(key, arcs)
	respondSuccess(w, http.StatusOK, arcs, start)
}

// GeometryFrequencies returns the canonical route-key to count map
// driving arc weight and opacity.
func (h *Handler) GeometryFrequencies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := cache.GenerateKey("geometry/frequencies", r.URL.Query().Encode())
	if cached, ok := h.cache.Get(key); ok {
		respondCached(w, cached, start)
		return
	}

	trips, err := h.geometryTrips(r)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	freq := geo.CountRouteFrequencies(allTransports(trips))

	h.cache.Set(key, freq)
	respondSuccess(w, http.StatusOK, freq, start)
}
