// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peregrine-app/peregrine/internal/models"
	"github.com/peregrine-app/peregrine/internal/websocket"
)

// ListTrips returns all trips, newest first, optionally filtered by
// user_id.
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

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
	respondSuccess(w, http.StatusOK, trips, start)
}

// GetTrip returns a single trip by ID.
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	trip, err := h.store.GetTrip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, trip, start)
}

// CreateTrip stores a new trip and broadcasts the change.
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var trip models.Trip
	if !decodeAndValidate(w, r, &trip) {
		return
	}
	if err := h.store.CreateTrip(r.Context(), &trip); err != nil {
		respondStoreError(w, err)
		return
	}

	h.invalidateDerived()
	h.hub.BroadcastTripEvent(websocket.MessageTypeTripCreated, trip.ID, trip.UserID)
	respondSuccess(w, http.StatusCreated, trip, start)
}

// UpdateTrip replaces a trip. The path ID wins over any ID in the body.
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var trip models.Trip
	if !decodeAndValidate(w, r, &trip) {
		return
	}
	trip.ID = chi.URLParam(r, "id")

	if err := h.store.UpdateTrip(r.Context(), &trip); err != nil {
		respondStoreError(w, err)
		return
	}

	h.invalidateDerived()
	h.hub.BroadcastTripEvent(websocket.MessageTypeTripUpdated, trip.ID, trip.UserID)
	respondSuccess(w, http.StatusOK, trip, start)
}

// DeleteTrip removes a trip and everything nested under it.
func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	trip, err := h.store.GetTrip(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if err := h.store.DeleteTrip(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}

	h.invalidateDerived()
	h.hub.BroadcastTripEvent(websocket.MessageTypeTripDeleted, id, trip.UserID)
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": id}, start)
}

// AddAccommodation attaches an accommodation to a trip.
func (h *Handler) AddAccommodation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	tripID := chi.URLParam(r, "id")

	var acc models.Accommodation
	if !decodeAndValidate(w, r, &acc) {
		return
	}
	if err := h.store.AddAccommodation(r.Context(), tripID, &acc); err != nil {
		respondStoreError(w, err)
		return
	}

	h.hub.BroadcastTripEvent(websocket.MessageTypeTripUpdated, tripID, "")
	respondSuccess(w, http.StatusCreated, acc, start)
}

// DeleteAccommodation removes one accommodation from a trip.
func (h *Handler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	tripID := chi.URLParam(r, "id")
	accID := chi.URLParam(r, "accID")

	if err := h.store.DeleteAccommodation(r.Context(), tripID, accID); err != nil {
		respondStoreError(w, err)
		return
	}

	h.hub.BroadcastTripEvent(websocket.MessageTypeTripUpdated, tripID, "")
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": accID}, start)
}

// invalidateDerived drops memoized geometry, statistics, and badge
// responses after any trip mutation and tells connected clients to
// refetch their derived views.
func (h *Handler) invalidateDerived() {
	h.cache.Clear()
	h.hub.BroadcastStatsUpdate()
}
