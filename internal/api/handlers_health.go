// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package api

import (
	"net/http"
	"time"
)

// HealthData is the payload of the health endpoint.
type HealthData struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Clients       int    `json:"websocket_clients"`
	CacheKeys     int    `json:"cache_keys"`
}

// Health reports server status, uptime, and a few live gauges.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, HealthData{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		Clients:       h.hub.ClientCount(),
		CacheKeys:     h.cache.Len(),
	}, start)
}

// HealthLive is the liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady is the readiness probe: dependencies are reachable. The
// store is in-process, so readiness reduces to a store round trip.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if _, err := h.store.ListUsers(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, codeInternal, "store unavailable", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"}, start)
}
