// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peregrine-app/peregrine/internal/leave"
	"github.com/peregrine-app/peregrine/internal/models"
)

// ListLeaveRequests returns leave requests, optionally filtered by
// user_id, sorted by start date.
func (h *Handler) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requests, err := h.store.ListLeaveRequests(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, requests, start)
}

// GetLeaveRequest returns one leave request.
func (h *Handler) GetLeaveRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := h.store.GetLeaveRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, req, start)
}

// CreateLeaveRequest stores a new request after checking date sanity
// and overlaps with the user's existing non-rejected requests.
func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LeaveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.EndDate.Before(req.StartDate) {
		respondError(w, http.StatusBadRequest, codeValidation,
			"end_date must not precede start_date", nil)
		return
	}

	existing, err := h.store.ListLeaveRequests(r.Context(), req.UserID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if conflicts := leave.ConflictsWith(req, existing); len(conflicts) > 0 {
		respondError(w, http.StatusConflict, codeConflict,
			"leave request overlaps an existing request",
			map[string]interface{}{"conflicting_ids": conflictIDs(conflicts)})
		return
	}

	if err := h.store.CreateLeaveRequest(r.Context(), &req); err != nil {
		respondStoreError(w, err)
		return
	}

	h.hub.BroadcastLeaveUpdate(req.ID, req.UserID, string(req.Status))
	respondSuccess(w, http.StatusCreated, req, start)
}

// UpdateLeaveRequest replaces a request, re-running the overlap check
// against the user's other requests.
func (h *Handler) UpdateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LeaveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")
	if req.EndDate.Before(req.StartDate) {
		respondError(w, http.StatusBadRequest, codeValidation,
			"end_date must not precede start_date", nil)
		return
	}

	existing, err := h.store.ListLeaveRequests(r.Context(), req.UserID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if conflicts := leave.ConflictsWith(req, existing); len(conflicts) > 0 {
		respondError(w, http.StatusConflict, codeConflict,
			"leave request overlaps an existing request",
			map[string]interface{}{"conflicting_ids": conflictIDs(conflicts)})
		return
	}

	if err := h.store.UpdateLeaveRequest(r.Context(), &req); err != nil {
		respondStoreError(w, err)
		return
	}

	h.hub.BroadcastLeaveUpdate(req.ID, req.UserID, string(req.Status))
	respondSuccess(w, http.StatusOK, req, start)
}

// DeleteLeaveRequest removes a request.
func (h *Handler) DeleteLeaveRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	req, err := h.store.GetLeaveRequest(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if err := h.store.DeleteLeaveRequest(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}

	h.hub.BroadcastLeaveUpdate(id, req.UserID, "deleted")
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": id}, start)
}

// LeaveBalance returns the vacation balance for one user and year.
// year defaults to the current year.
func (h *Handler) LeaveBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, codeValidation, "user_id is required", nil)
		return
	}
	year := getIntParam(r, "year", time.Now().Year())

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	requests, err := h.store.ListLeaveRequests(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, leave.Balance(user, requests, year), start)
}

func conflictIDs(requests []models.LeaveRequest) []string {
	ids := make([]string, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}
	return ids
}
