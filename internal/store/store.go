// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package store defines the data-access ports for Peregrine and ships
// an in-memory implementation. The application does not own a
// persistence engine; anything implementing these interfaces can be
// injected.
package store

import (
	"context"
	"errors"

	"github.com/peregrine-app/peregrine/internal/models"
)

// Sentinel errors returned by store implementations.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// TripStore is the data-access port for trips and their nested
// accommodations.
type TripStore interface {
	ListTrips(ctx context.Context) ([]models.Trip, error)
	TripsForUser(ctx context.Context, userID string) ([]models.Trip, error)
	GetTrip(ctx context.Context, id string) (models.Trip, error)
	CreateTrip(ctx context.Context, trip *models.Trip) error
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	DeleteTrip(ctx context.Context, id string) error

	AddAccommodation(ctx context.Context, tripID string, acc *models.Accommodation) error
	DeleteAccommodation(ctx context.Context, tripID, accID string) error
}

// UserStore is the data-access port for users.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error
}

// LeaveStore is the data-access port for leave requests.
type LeaveStore interface {
	ListLeaveRequests(ctx context.Context, userID string) ([]models.LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, id string) (models.LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, req *models.LeaveRequest) error
	UpdateLeaveRequest(ctx context.Context, req *models.LeaveRequest) error
	DeleteLeaveRequest(ctx context.Context, id string) error
}

// Store combines all data-access ports.
type Store interface {
	TripStore
	UserStore
	LeaveStore
}
