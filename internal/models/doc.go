// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

/*
Package models defines data structures for the Peregrine application.

It is the single source of truth for domain entities, derived analytics
records, and API response envelopes.

Model Categories:

1. Domain Models:
  - Trip: A journey with transports, accommodations and a date range
  - Transport: One directed leg between two named locations
  - Waypoint: An intermediate stop splitting a transport leg
  - Accommodation: A stay attached to a trip
  - User: An account with a leave entitlement
  - LeaveRequest: A booked absence

2. Derived Models (never persisted):
  - FlightStatistics: Aggregate travel counters and top-N lists
  - RouteFrequency: Canonical route key to occurrence count
  - VisitedCountry: Country-level visit aggregation for badges
  - TravelerRank: Named rank ladder over visited-country counts

3. API Models:
  - APIResponse: Standard response wrapper
  - APIError: Error details
  - Metadata: Response metadata (timestamp, query time, cache flag)

Thread Safety:

All models are plain data structures. They are safe for concurrent read
access and carry no internal synchronization.
*/
package models
