// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package config loads the server configuration with koanf v2 from
// three layered sources, in ascending precedence:
//
//  1. Built-in defaults (structs provider)
//  2. An optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables (HTTP_PORT, GEOCODER_URL, LOG_LEVEL, ...)
//
// Load returns a fully validated Config; an invalid value in any layer
// fails startup rather than limping along with a partial config.
package config
