// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

/*
Package geo implements the geospatial route-rendering engine.

Everything in this package is a pure function over coordinates: no
hidden state, no I/O, deterministic output for a given input. The
functions fall into four groups:

  - Arc generation: CurvePoints produces the quadratic-Bezier polyline
    the 2D map draws between two endpoints, with antimeridian
    unwrapping so Pacific crossings take the short way around.
    ArcAltitude produces the apex height the 3D globe uses.
  - Distance: Haversine great-circle distance and the underlying
    central angle.
  - Route canonicalization: RouteKey builds a symmetric key for an
    unordered coordinate pair, and CountRouteFrequencies tallies legs
    (including waypoint-split sub-segments) per canonical route.
  - Visual weighting: LineWidth (linear) and ArcOpacity (logarithmic)
    derive clamped render weights from route frequency.

Coordinate precision is truncated to two decimals before keying, which
intentionally merges near-duplicate coordinates such as the same
airport reported by slightly different sources.
*/
package geo
