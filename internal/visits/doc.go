// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

/*
Package visits determines which transport destinations count as genuine
visited places and aggregates them into country badges.

Two heuristic filters run over a trip's chronologically sorted legs:

  - Return legs: a destination matching the trip's original origin
    (case-insensitive, trimmed) is never a visit.
  - Layovers: a destination matching the next leg's origin with less
    than 24 hours between arrival and the next departure is a
    connection, not a visit. When the timestamps do not parse, a
    same-location pair of consecutive legs is conservatively treated
    as a layover.

The string match is exact by design: "LHR" and "LGW", or differently
formatted names for the same place, will not match. That false-negative
risk is a known limitation of the heuristic, kept as-is.

Surviving destinations resolve to countries through a geocode.Resolver;
unresolved places are counted but excluded from the badge list.
*/
package visits
