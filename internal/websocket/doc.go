// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package websocket pushes live updates to connected dashboard clients
// over gorilla/websocket. A single Hub owns the client set and fans out
// typed messages; each Client runs a read pump (for ping/pong) and a
// write pump (broadcasts plus keepalive pings).
//
// The API layer broadcasts after every mutating operation so that open
// dashboards refresh trips, leave calendars, and statistics without
// polling. Broadcasts are best effort: a full client buffer drops the
// client rather than blocking the hub.
package websocket
