// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package cache provides a thread-safe in-memory TTL cache used to
// memoize expensive API responses such as flight statistics, geometry
// payloads, and country badges. Entries expire after a configurable
// duration and a background goroutine sweeps expired entries
// periodically.
//
// Cache keys are derived from the endpoint name and its query
// parameters via GenerateKey, which hashes the JSON-serialized
// parameters so that structurally equal queries share an entry.
package cache
