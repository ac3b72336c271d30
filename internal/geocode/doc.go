// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

/*
Package geocode resolves free-form place names to countries and cities
through an external geocoding service.

The resolution outcome is an explicit variant, not an exception: a
lookup that succeeds but finds nothing returns a Resolution with
StatusUnresolved, while a transport or service failure returns an
error. Callers that only care about "do we have country data" can treat
both the same; callers that monitor the integration can tell them
apart.

Layers, outermost first:

  - CachedResolver: memoizes by raw place string through an injectable
    Store (in-memory or BadgerDB), rate-limits outbound lookups, and
    converts errors into unresolved results so a batch never fails.
  - Client: HTTP client for a Nominatim-style search endpoint, wrapped
    in a circuit breaker so a dead geocoder stops consuming the rate
    budget.

Lookups in a batch run sequentially on purpose; the public Nominatim
usage policy caps clients at one request per second.
*/
package geocode
