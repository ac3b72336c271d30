// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/peregrine-app/peregrine/internal/models"
)

// Seed loads demonstration data into the store: one user with a
// transatlantic round trip and a regional train trip. Used when the
// server starts with seeding enabled so the dashboard and map are not
// empty on first run.
func Seed(ctx context.Context, s Store) error {
	user := models.User{
		ID:              "u-demo",
		Name:            "Alex Demo",
		Email:           "alex@example.com",
		AnnualLeaveDays: 28,
	}
	if err := s.CreateUser(ctx, &user); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	jfk := &models.GeoPoint{Lat: 40.6413, Lng: -73.7781}
	lhr := &models.GeoPoint{Lat: 51.4700, Lng: -0.4543}
	cdg := &models.GeoPoint{Lat: 49.0097, Lng: 2.5479}

	london := models.Trip{
		ID:        "t-london",
		UserID:    user.ID,
		Name:      "London & Paris",
		StartDate: date(2024, 5, 3),
		EndDate:   date(2024, 5, 12),
		Status:    models.TripStatusPast,
		Transports: []models.Transport{
			{
				ID: "tr-1", Mode: models.ModeFlight,
				Origin: "New York JFK", Destination: "London Heathrow",
				OriginCode: "JFK", DestCode: "LHR",
				OriginCoordinate: jfk, DestinationCoordinate: lhr,
				DistanceKm:    5540,
				DepartureTime: "2024-05-03T19:30:00Z", ArrivalTime: "2024-05-04T07:25:00Z",
				Airline: "British Airways", FlightNumber: "BA112",
				Aircraft: "Boeing 777-300ER", Seat: "31A", Class: "Economy",
			},
			{
				ID: "tr-2", Mode: models.ModeTrain,
				Origin: "London St Pancras", Destination: "Paris Gare du Nord",
				OriginCoordinate:      &models.GeoPoint{Lat: 51.5322, Lng: -0.1271},
				DestinationCoordinate: &models.GeoPoint{Lat: 48.8809, Lng: 2.3553},
				DistanceKm:            492,
				DepartureTime:         "2024-05-08T09:01:00Z", ArrivalTime: "2024-05-08T12:17:00Z",
			},
			{
				ID: "tr-3", Mode: models.ModeFlight,
				Origin: "Paris CDG", Destination: "New York JFK",
				OriginCode: "CDG", DestCode: "JFK",
				OriginCoordinate: cdg, DestinationCoordinate: jfk,
				DistanceKm:    5834,
				DepartureTime: "2024-05-12T10:40:00Z", ArrivalTime: "2024-05-12T13:05:00Z",
				Airline: "Air France", FlightNumber: "AF006",
				Aircraft: "Airbus A350-900", Seat: "24C", Class: "Premium Economy",
			},
		},
		Accommodations: []models.Accommodation{
			{
				ID: "a-1", TripID: "t-london", Name: "Hoxton Southwark",
				Address: "32 Blackfriars Rd, London",
				CheckIn: date(2024, 5, 4), CheckOut: date(2024, 5, 8),
			},
		},
	}
	if err := s.CreateTrip(ctx, &london); err != nil {
		return fmt.Errorf("seed trip: %w", err)
	}

	leave := models.LeaveRequest{
		ID:        "l-demo",
		UserID:    user.ID,
		Type:      models.LeaveVacation,
		Status:    models.LeaveStatusApproved,
		StartDate: date(2024, 5, 3),
		EndDate:   date(2024, 5, 12),
		Note:      "London & Paris trip",
	}
	if err := s.CreateLeaveRequest(ctx, &leave); err != nil {
		return fmt.Errorf("seed leave: %w", err)
	}

	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
