// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package api exposes the HTTP surface over chi: trip, user, and leave
// CRUD; the geometry endpoints feeding the 2D map and 3D globe; flight
// statistics; country badges; live updates over websocket; and the
// Prometheus scrape endpoint.
//
// Every response uses the models.APIResponse envelope. Expensive
// read endpoints (statistics, geometry, badges) memoize through the
// response cache and are invalidated on any mutating operation.
package api
