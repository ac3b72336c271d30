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
	"github.com/peregrine-app/peregrine/internal/visits"
)

// CountryBadges returns the visited-country list and traveler rank,
// optionally limited to one user (?user_id=). Place names resolve
// through the geocoder; unresolved places are counted but excluded
// from the country list.
func (h *Handler) CountryBadges(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := cache.GenerateKey("badges/countries", r.URL.Query().Encode())
	if cached, ok := h.cache.Get(key); ok {
		respondCached(w, cached, start)
		return
	}

	if h.resolver == nil {
		respondError(w, http.StatusServiceUnavailable, codeInternal,
			"geocoder disabled; country badges unavailable", nil)
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

	badges := visits.Badges(r.Context(), trips, h.resolver)

	h.cache.Set(key, badges)
	respondSuccess(w, http.StatusOK, badges, start)
}
