// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peregrine-app/peregrine/internal/models"
)

// Memory is the in-memory Store implementation. All methods return
// deep-enough copies so callers can never mutate stored state through
// a returned value.
type Memory struct {
	mu     sync.RWMutex
	trips  map[string]models.Trip
	users  map[string]models.User
	leaves map[string]models.LeaveRequest
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		trips:  make(map[string]models.Trip),
		users:  make(map[string]models.User),
		leaves: make(map[string]models.LeaveRequest),
	}
}

// copyTrip returns a trip with its slices and coordinate pointers
// duplicated, so callers can never mutate stored state through a
// returned value.
func copyTrip(t models.Trip) models.Trip {
	out := t
	out.Coordinate = copyGeoPoint(t.Coordinate)
	if t.Transports != nil {
		out.Transports = make([]models.Transport, len(t.Transports))
		for i, tr := range t.Transports {
			tr.OriginCoordinate = copyGeoPoint(tr.OriginCoordinate)
			tr.DestinationCoordinate = copyGeoPoint(tr.DestinationCoordinate)
			if tr.Waypoints != nil {
				wps := make([]models.Waypoint, len(tr.Waypoints))
				copy(wps, tr.Waypoints)
				tr.Waypoints = wps
			}
			out.Transports[i] = tr
		}
	}
	if t.Accommodations != nil {
		out.Accommodations = make([]models.Accommodation, len(t.Accommodations))
		copy(out.Accommodations, t.Accommodations)
	}
	return out
}

func copyGeoPoint(p *models.GeoPoint) *models.GeoPoint {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// ListTrips returns all trips ordered by start date descending
// (newest first), matching the dashboard's default view.
func (m *Memory) ListTrips(ctx context.Context) ([]models.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	trips := make([]models.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		trips = append(trips, copyTrip(t))
	}
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].StartDate.Equal(trips[j].StartDate) {
			return trips[i].StartDate.After(trips[j].StartDate)
		}
		return trips[i].ID < trips[j].ID
	})
	return trips, nil
}

// TripsForUser returns the trips owned by one user, newest first.
func (m *Memory) TripsForUser(ctx context.Context, userID string) ([]models.Trip, error) {
	all, err := m.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	trips := all[:0]
	for _, t := range all {
		if t.UserID == userID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

// GetTrip returns one trip by ID.
func (m *Memory) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.trips[id]
	if !ok {
		return models.Trip{}, fmt.Errorf("trip %q: %w", id, ErrNotFound)
	}
	return copyTrip(t), nil
}

// CreateTrip stores a new trip, assigning an ID and timestamps.
func (m *Memory) CreateTrip(ctx context.Context, trip *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if trip.ID == "" {
		trip.ID = uuid.New().String()
	} else if _, exists := m.trips[trip.ID]; exists {
		return fmt.Errorf("trip %q: %w", trip.ID, ErrConflict)
	}

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	m.trips[trip.ID] = copyTrip(*trip)
	return nil
}

// UpdateTrip replaces a stored trip.
func (m *Memory) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.trips[trip.ID]
	if !ok {
		return fmt.Errorf("trip %q: %w", trip.ID, ErrNotFound)
	}
	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now()
	m.trips[trip.ID] = copyTrip(*trip)
	return nil
}

// DeleteTrip removes a trip.
func (m *Memory) DeleteTrip(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.trips[id]; !ok {
		return fmt.Errorf("trip %q: %w", id, ErrNotFound)
	}
	delete(m.trips, id)
	return nil
}

// AddAccommodation attaches an accommodation to a trip, assigning an ID.
func (m *Memory) AddAccommodation(ctx context.Context, tripID string, acc *models.Accommodation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trips[tripID]
	if !ok {
		return fmt.Errorf("trip %q: %w", tripID, ErrNotFound)
	}
	if acc.ID == "" {
		acc.ID = uuid.New().String()
	}
	acc.TripID = tripID
	t.Accommodations = append(t.Accommodations, *acc)
	t.UpdatedAt = time.Now()
	m.trips[tripID] = t
	return nil
}

// DeleteAccommodation removes an accommodation from a trip.
func (m *Memory) DeleteAccommodation(ctx context.Context, tripID, accID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trips[tripID]
	if !ok {
		return fmt.Errorf("trip %q: %w", tripID, ErrNotFound)
	}
	for i := range t.Accommodations {
		if t.Accommodations[i].ID == accID {
			t.Accommodations = append(t.Accommodations[:i], t.Accommodations[i+1:]...)
			t.UpdatedAt = time.Now()
			m.trips[tripID] = t
			return nil
		}
	}
	return fmt.Errorf("accommodation %q: %w", accID, ErrNotFound)
}

// ListUsers returns all users ordered by name.
func (m *Memory) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// GetUser returns one user by ID.
func (m *Memory) GetUser(ctx context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	return u, nil
}

// CreateUser stores a new user, assigning an ID.
func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	} else if _, exists := m.users[user.ID]; exists {
		return fmt.Errorf("user %q: %w", user.ID, ErrConflict)
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

// UpdateUser replaces a stored user.
func (m *Memory) UpdateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.users[user.ID]
	if !ok {
		return fmt.Errorf("user %q: %w", user.ID, ErrNotFound)
	}
	user.CreatedAt = existing.CreatedAt
	m.users[user.ID] = *user
	return nil
}

// DeleteUser removes a user.
func (m *Memory) DeleteUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	delete(m.users, id)
	return nil
}

// ListLeaveRequests returns a user's leave requests ordered by start
// date. An empty userID returns every request.
func (m *Memory) ListLeaveRequests(ctx context.Context, userID string) ([]models.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reqs := make([]models.LeaveRequest, 0, len(m.leaves))
	for _, r := range m.leaves {
		if userID == "" || r.UserID == userID {
			reqs = append(reqs, r)
		}
	}
	sort.Slice(reqs, func(i, j int) bool {
		if !reqs[i].StartDate.Equal(reqs[j].StartDate) {
			return reqs[i].StartDate.Before(reqs[j].StartDate)
		}
		return reqs[i].ID < reqs[j].ID
	})
	return reqs, nil
}

// GetLeaveRequest returns one leave request by ID.
func (m *Memory) GetLeaveRequest(ctx context.Context, id string) (models.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.leaves[id]
	if !ok {
		return models.LeaveRequest{}, fmt.Errorf("leave request %q: %w", id, ErrNotFound)
	}
	return r, nil
}

// CreateLeaveRequest stores a new leave request, assigning an ID.
func (m *Memory) CreateLeaveRequest(ctx context.Context, req *models.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.New().String()
	} else if _, exists := m.leaves[req.ID]; exists {
		return fmt.Errorf("leave request %q: %w", req.ID, ErrConflict)
	}
	if req.Status == "" {
		req.Status = models.LeaveStatusRequested
	}
	req.CreatedAt = time.Now()
	m.leaves[req.ID] = *req
	return nil
}

// UpdateLeaveRequest replaces a stored leave request.
func (m *Memory) UpdateLeaveRequest(ctx context.Context, req *models.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.leaves[req.ID]
	if !ok {
		return fmt.Errorf("leave request %q: %w", req.ID, ErrNotFound)
	}
	req.CreatedAt = existing.CreatedAt
	m.leaves[req.ID] = *req
	return nil
}

// DeleteLeaveRequest removes a leave request.
func (m *Memory) DeleteLeaveRequest(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.leaves[id]; !ok {
		return fmt.Errorf("leave request %q: %w", id, ErrNotFound)
	}
	delete(m.leaves, id)
	return nil
}
