// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package visits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peregrine-app/peregrine/internal/geocode"
	"github.com/peregrine-app/peregrine/internal/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return ts
}

// stubResolver resolves from a fixed table; unknown places come back
// unresolved, places in failures error out.
type stubResolver struct {
	table    map[string]geocode.Resolution
	failures map[string]bool
}

func (s *stubResolver) Resolve(ctx context.Context, place string) (geocode.Resolution, error) {
	if s.failures[place] {
		return geocode.Resolution{Place: place, Status: geocode.StatusUnresolved}, errors.New("boom")
	}
	if res, ok := s.table[place]; ok {
		return res, nil
	}
	return geocode.Resolution{Place: place, Status: geocode.StatusUnresolved}, nil
}

func resolved(country, code, city string) geocode.Resolution {
	return geocode.Resolution{
		Status:      geocode.StatusResolved,
		Country:     country,
		CountryCode: code,
		City:        city,
	}
}

func simpleTrip(legs ...models.Transport) models.Trip {
	return models.Trip{Transports: legs}
}

func leg(origin, dest, dep, arr string) models.Transport {
	return models.Transport{Origin: origin, Destination: dest, DepartureTime: dep, ArrivalTime: arr}
}

func TestAggregateCountries(t *testing.T) {
	resolver := &stubResolver{table: map[string]geocode.Resolution{
		"Lisbon": resolved("Portugal", "pt", "Lisbon"),
		"Porto":  resolved("Portugal", "pt", "Porto"),
		"Tokyo":  resolved("Japan", "jp", "Tokyo"),
	}}

	trips := []models.Trip{
		simpleTrip(
			leg("Berlin", "Lisbon", "2024-01-01T08:00:00Z", "2024-01-01T11:00:00Z"),
			leg("Lisbon", "Porto", "2024-01-05T08:00:00Z", "2024-01-05T09:00:00Z"),
		),
		simpleTrip(
			leg("Berlin", "Tokyo", "2024-06-01T10:00:00Z", "2024-06-02T06:00:00Z"),
		),
	}

	countries, unresolved := AggregateCountries(context.Background(), trips, resolver)

	if unresolved != 0 {
		t.Errorf("unresolved = %d, want 0", unresolved)
	}
	if len(countries) != 2 {
		t.Fatalf("countries = %+v, want Japan and Portugal", countries)
	}

	// Alphabetical: Japan then Portugal.
	japan, portugal := countries[0], countries[1]
	if japan.Name != "Japan" || japan.Code != "JP" || japan.Region != "Asia" {
		t.Errorf("japan = %+v", japan)
	}
	if portugal.Visits != 2 || len(portugal.Cities) != 2 {
		t.Errorf("portugal = %+v, want 2 visits and 2 cities", portugal)
	}
	if portugal.Region != "Europe" {
		t.Errorf("portugal region = %q", portugal.Region)
	}

	// Last visit is the max arrival across trips.
	wantLast := mustDate(t, "2024-01-05").Add(9 * time.Hour)
	if !portugal.LastVisit.Equal(wantLast) {
		t.Errorf("portugal last visit = %v, want %v", portugal.LastVisit, wantLast)
	}
}

func TestAggregateCountriesUnresolvedExcluded(t *testing.T) {
	resolver := &stubResolver{
		table:    map[string]geocode.Resolution{"Lisbon": resolved("Portugal", "pt", "Lisbon")},
		failures: map[string]bool{"Nowhere": true},
	}

	trips := []models.Trip{
		simpleTrip(
			leg("Berlin", "Lisbon", "2024-01-01T08:00:00Z", "2024-01-01T11:00:00Z"),
			leg("Lisbon", "Atlantis", "2024-01-05T08:00:00Z", "2024-01-05T09:00:00Z"),
			leg("Atlantis", "Nowhere", "2024-01-08T08:00:00Z", "2024-01-08T09:00:00Z"),
		),
	}

	countries, unresolved := AggregateCountries(context.Background(), trips, resolver)

	if len(countries) != 1 || countries[0].Name != "Portugal" {
		t.Errorf("countries = %+v, want only Portugal", countries)
	}
	// One unresolved (no data) plus one failed lookup.
	if unresolved != 2 {
		t.Errorf("unresolved = %d, want 2", unresolved)
	}
}

func TestAggregateCountriesKeysOnNameWithoutCode(t *testing.T) {
	resolver := &stubResolver{table: map[string]geocode.Resolution{
		"Somewhere": {Status: geocode.StatusResolved, Country: "Ruritania"},
	}}

	trips := []models.Trip{
		simpleTrip(leg("Berlin", "Somewhere", "2024-01-01T08:00:00Z", "2024-01-01T11:00:00Z")),
	}

	countries, _ := AggregateCountries(context.Background(), trips, resolver)
	if len(countries) != 1 || countries[0].Name != "Ruritania" || countries[0].Code != "" {
		t.Errorf("countries = %+v", countries)
	}
}

func TestBadges(t *testing.T) {
	resolver := &stubResolver{table: map[string]geocode.Resolution{
		"Lisbon": resolved("Portugal", "pt", "Lisbon"),
		"Tokyo":  resolved("Japan", "jp", "Tokyo"),
	}}

	trips := []models.Trip{
		simpleTrip(leg("Berlin", "Lisbon", "2024-01-01T08:00:00Z", "2024-01-01T11:00:00Z")),
		simpleTrip(leg("Berlin", "Tokyo", "2024-06-01T10:00:00Z", "2024-06-02T06:00:00Z")),
	}

	badges := Badges(context.Background(), trips, resolver)
	if len(badges.Countries) != 2 {
		t.Fatalf("badges = %+v", badges)
	}
	if badges.Rank.Current.Name != "Day Tripper" {
		t.Errorf("rank = %+v, want Day Tripper at 2 countries", badges.Rank)
	}
}
