// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package validation wraps go-playground/validator v10 behind a
// thread-safe singleton with custom validators for the travel domain
// and human-readable error translation.
//
// Beyond the built-in tags (required, email, latitude, longitude,
// oneof, min, max) it registers:
//
//   - trip_timestamp: a transport departure/arrival string in any of
//     the accepted layouts (RFC3339, date-time without zone, or a bare
//     date)
//   - transport_mode: one of the known transport modes
//   - leave_type / leave_status: known leave enums
//
// Handlers call ValidateStruct on decoded request bodies and convert
// the returned RequestValidationError into the API error envelope.
package validation
