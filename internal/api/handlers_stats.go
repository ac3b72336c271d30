// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package api

import (
	"net/http"
	"time"

	"github.com/peregrine-app/peregrine/internal/cache"
	"github.com/peregrine-app/peregrine/internal/models"
	"github.com/peregrine-app/peregrine/internal/stats"
)

// FlightStats returns aggregated flight statistics, optionally limited
// to trips starting in one year (?year=) or one user (?user_id=).
func (h *Handler) FlightStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := cache.GenerateKey("stats/flights", r.URL.Query().Encode())
	if cached, ok := h.cache.Get(key); ok {
		respondCached(w, cached, start)
		return
	}

	var (
		trips []models.Trip
		err   error
	)
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		trips, err = h.store.TripsForUser(r.Context(), userID)
	} else {
		trips, err = h.store.ListTrips(r.Context())
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}

	if year := getIntParam(r, "year", 0); year > 0 {
		filtered := trips[:0]
		for _, t := range trips {
			if t.StartDate.Year() == year {
				filtered = append(filtered, t)
			}
		}
		trips = filtered
	}

	result := stats.Aggregate(trips)

	h.cache.Set(key, result)
	respondSuccess(w, http.StatusOK, result, start)
}
