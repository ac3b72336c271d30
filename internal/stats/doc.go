// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package stats aggregates travel statistics over trips.
//
// Aggregate is a single deterministic pass over flight legs producing
// totals, extremes, grouped top-N counts, and the derived
// circumnavigation and days-in-air ratios consumed by the dashboard.
package stats
