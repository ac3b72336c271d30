// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geocode

import (
	"context"
	"errors"
	"testing"
)

// mockResolver counts lookups and serves canned resolutions.
type mockResolver struct {
	calls   int
	results map[string]Resolution
	err     error
}

func (m *mockResolver) Resolve(ctx context.Context, place string) (Resolution, error) {
	m.calls++
	if m.err != nil {
		return Resolution{Place: place, Status: StatusUnresolved}, m.err
	}
	if res, ok := m.results[place]; ok {
		return res, nil
	}
	return Resolution{Place: place, Status: StatusUnresolved}, nil
}

func lisbon() Resolution {
	return Resolution{
		Place:       "Lisbon",
		Status:      StatusResolved,
		Country:     "Portugal",
		CountryCode: "pt",
		City:        "Lisbon",
	}
}

func TestCachedResolverMemoizes(t *testing.T) {
	mock := &mockResolver{results: map[string]Resolution{"Lisbon": lisbon()}}
	resolver := NewCachedResolver(mock, NewMemoryStore(), 1000)

	ctx := context.Background()
	first, _ := resolver.Resolve(ctx, "Lisbon")
	second, _ := resolver.Resolve(ctx, "Lisbon")

	if !first.Resolved() || !second.Resolved() {
		t.Fatalf("expected resolved results, got %+v / %+v", first, second)
	}
	if mock.calls != 1 {
		t.Errorf("expected 1 upstream lookup, got %d", mock.calls)
	}
}

func TestCachedResolverKeyNormalization(t *testing.T) {
	mock := &mockResolver{results: map[string]Resolution{"Lisbon": lisbon()}}
	resolver := NewCachedResolver(mock, NewMemoryStore(), 1000)

	ctx := context.Background()
	resolver.Resolve(ctx, "Lisbon")
	res, _ := resolver.Resolve(ctx, "  lisbon ")

	if mock.calls != 1 {
		t.Errorf("expected normalized key to hit cache, got %d upstream lookups", mock.calls)
	}
	if res.Country != "Portugal" {
		t.Errorf("expected cached Portugal result, got %+v", res)
	}
}

func TestCachedResolverNegativeCaching(t *testing.T) {
	mock := &mockResolver{}
	resolver := NewCachedResolver(mock, NewMemoryStore(), 1000)

	ctx := context.Background()
	// Completed-but-empty lookups are cached.
	resolver.Resolve(ctx, "Atlantis")
	res, _ := resolver.Resolve(ctx, "Atlantis")

	if res.Resolved() {
		t.Errorf("expected unresolved, got %+v", res)
	}
	if mock.calls != 1 {
		t.Errorf("expected negative caching to avoid a second lookup, got %d", mock.calls)
	}
}

func TestCachedResolverErrorsAreNotCached(t *testing.T) {
	mock := &mockResolver{err: errors.New("connection refused")}
	resolver := NewCachedResolver(mock, NewMemoryStore(), 1000)

	ctx := context.Background()
	res, err := resolver.Resolve(ctx, "Lisbon")
	if err != nil {
		t.Fatalf("lookup errors must be absorbed, got %v", err)
	}
	if res.Resolved() {
		t.Errorf("expected unresolved after failure, got %+v", res)
	}

	// The failure must not be cached: a recovered geocoder gets retried.
	mock.err = nil
	mock.results = map[string]Resolution{"Lisbon": lisbon()}
	res, _ = resolver.Resolve(ctx, "Lisbon")
	if !res.Resolved() {
		t.Errorf("expected retry after recovery, got %+v", res)
	}
	if mock.calls != 2 {
		t.Errorf("expected 2 upstream lookups, got %d", mock.calls)
	}
}

func TestResolveAllDeduplicates(t *testing.T) {
	mock := &mockResolver{results: map[string]Resolution{"Lisbon": lisbon()}}
	resolver := NewCachedResolver(mock, NewMemoryStore(), 1000)

	results := resolver.ResolveAll(context.Background(), []string{
		"Lisbon", "lisbon", " LISBON ", "Atlantis", "",
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 distinct results, got %d: %v", len(results), results)
	}
	if mock.calls != 2 {
		t.Errorf("expected 2 upstream lookups, got %d", mock.calls)
	}
	if !results["lisbon"].Resolved() {
		t.Errorf("expected lisbon resolved, got %+v", results["lisbon"])
	}
}

func TestResolveAllContextCancelled(t *testing.T) {
	mock := &mockResolver{results: map[string]Resolution{"Lisbon": lisbon()}}
	// One request per hour: the second lookup would block on the limiter.
	resolver := NewCachedResolver(mock, NewMemoryStore(), 1.0/3600)

	ctx, cancel := context.WithCancel(context.Background())
	resolver.Resolve(ctx, "Lisbon")
	cancel()

	// Cancelled context: the queued lookup degrades to unresolved.
	res, err := resolver.Resolve(ctx, "Porto")
	if err != nil {
		t.Fatalf("expected nil error on cancellation, got %v", err)
	}
	if res.Resolved() {
		t.Errorf("expected unresolved on cancellation, got %+v", res)
	}
	if mock.calls != 1 {
		t.Errorf("cancelled lookup must not reach upstream, calls = %d", mock.calls)
	}
}

func TestCacheKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Lisbon", "lisbon"},
		{"  New York  ", "new york"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := CacheKey(tt.input); got != tt.want {
			t.Errorf("CacheKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
