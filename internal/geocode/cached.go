// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geocode

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/peregrine-app/peregrine/internal/logging"
	"github.com/peregrine-app/peregrine/internal/metrics"
)

// CachedResolver memoizes resolutions by normalized place string and
// rate-limits outbound lookups. It is the Resolver the rest of the
// application uses.
//
// Failure semantics: lookup errors are absorbed. The failed place is
// reported as unresolved and the batch continues; errored lookups are
// NOT cached, so a later batch retries them. Completed-but-empty
// lookups ARE cached (negative caching) to respect the geocoder's rate
// limits.
type CachedResolver struct {
	inner   Resolver
	store   Store
	limiter *rate.Limiter
}

// NewCachedResolver wraps a resolver with caching and rate limiting.
// requestsPerSecond caps outbound lookups; zero or negative means the
// Nominatim-policy default of one per second.
func NewCachedResolver(inner Resolver, store Store, requestsPerSecond float64) *CachedResolver {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &CachedResolver{
		inner:   inner,
		store:   store,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Resolve resolves one place, consulting the cache first. The returned
// error is always nil; failures degrade to an unresolved result.
func (r *CachedResolver) Resolve(ctx context.Context, place string) (Resolution, error) {
	key := CacheKey(place)
	if key == "" {
		return Resolution{Place: place, Status: StatusUnresolved}, nil
	}

	if cached, ok, err := r.store.Get(key); err == nil && ok {
		metrics.GeocodeCacheHits.Inc()
		return cached, nil
	} else if err != nil {
		// A broken cache store degrades to a miss.
		logging.Ctx(ctx).Warn().Err(err).Str("place", place).Msg("Geocode cache read failed")
	}
	metrics.GeocodeCacheMisses.Inc()

	if err := r.limiter.Wait(ctx); err != nil {
		// Context cancelled while queued; report unresolved, do not cache.
		return Resolution{Place: place, Status: StatusUnresolved}, nil
	}

	res, err := r.inner.Resolve(ctx, place)
	if err != nil {
		metrics.GeocodeLookups.WithLabelValues("error").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("place", place).Msg("Geocode lookup failed")
		return Resolution{Place: place, Status: StatusUnresolved}, nil
	}

	metrics.GeocodeLookups.WithLabelValues(string(res.Status)).Inc()

	if err := r.store.Put(key, res); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("place", place).Msg("Geocode cache write failed")
	}
	return res, nil
}

// ResolveAll resolves a set of place names sequentially, deduplicating
// by cache key. The result maps each distinct cache key to its
// resolution. Resolution runs in input order; lookups are serialized
// through the rate limiter rather than parallelized, to respect the
// external service's limits.
func (r *CachedResolver) ResolveAll(ctx context.Context, places []string) map[string]Resolution {
	results := make(map[string]Resolution)
	for _, place := range places {
		key := CacheKey(place)
		if key == "" {
			continue
		}
		if _, done := results[key]; done {
			continue
		}
		res, _ := r.Resolve(ctx, place)
		results[key] = res
	}
	return results
}
