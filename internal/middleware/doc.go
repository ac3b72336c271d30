// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package middleware provides the HTTP middleware that wraps the API
// router: request ID propagation, Prometheus instrumentation, and gzip
// response compression. All middleware uses the standard
// func(http.Handler) http.Handler shape so it composes with chi's
// Use().
package middleware
