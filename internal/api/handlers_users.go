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
)

// ListUsers returns all users sorted by name.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, users, start)
}

// GetUser returns one user by ID.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	user, err := h.store.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, user, start)
}

// CreateUser stores a new user.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var user models.User
	if !decodeAndValidate(w, r, &user) {
		return
	}
	if err := h.store.CreateUser(r.Context(), &user); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, user, start)
}

// UpdateUser replaces a user. The path ID wins over the body.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var user models.User
	if !decodeAndValidate(w, r, &user) {
		return
	}
	user.ID = chi.URLParam(r, "id")

	if err := h.store.UpdateUser(r.Context(), &user); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, user, start)
}

// DeleteUser removes a user.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": id}, start)
}
