// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geocode

import (
	"context"
	"strings"
)

// Status is the outcome variant of a place lookup.
type Status string

// Lookup outcomes.
const (
	// StatusResolved means the geocoder returned country data.
	StatusResolved Status = "resolved"

	// StatusUnresolved means the lookup completed but produced no
	// country data, or the lookup failed and the failure was absorbed.
	StatusUnresolved Status = "unresolved"
)

// Resolution is the result of resolving one place name.
type Resolution struct {
	// Place is the raw query string the resolution was requested for.
	Place string `json:"place"`

	Status Status `json:"status"`

	// Country fields are populated only when Status is StatusResolved.
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"` // ISO 3166-1 alpha-2, lowercase
	City        string `json:"city,omitempty"`
}

// Resolved reports whether the resolution carries country data.
func (r Resolution) Resolved() bool {
	return r.Status == StatusResolved
}

// Resolver resolves a place name to a country/city.
//
// Implementations return an error only for lookup failures (network,
// service outage, open circuit). A lookup that completes without
// finding country data returns a Resolution with StatusUnresolved and
// a nil error.
type Resolver interface {
	Resolve(ctx context.Context, place string) (Resolution, error)
}

// CacheKey normalizes a place name into its cache key. Lookups for
// " Lisbon " and "lisbon" hit the same entry.
func CacheKey(place string) string {
	return strings.ToLower(strings.TrimSpace(place))
}
