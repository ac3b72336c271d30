// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package main is the entry point for the Peregrine server.
//
// Peregrine is a self-hosted travel and leave management backend: trips
// with multi-modal transport legs, rendered flight arcs for 2D map and
// 3D globe views, flight statistics, visited-country badges, and team
// leave tracking with vacation balances.
//
// Startup order:
//
//  1. Configuration (koanf: defaults, config.yaml, environment)
//  2. Logging (zerolog)
//  3. Geocode cache (BadgerDB) and the rate-limited Nominatim resolver
//  4. In-memory store, optionally seeded with demo data
//  5. WebSocket hub for live dashboard updates
//  6. HTTP server (chi) with graceful shutdown on SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/peregrine-app/peregrine/internal/api"
	"github.com/peregrine-app/peregrine/internal/cache"
	"github.com/peregrine-app/peregrine/internal/config"
	"github.com/peregrine-app/peregrine/internal/geocode"
	"github.com/peregrine-app/peregrine/internal/logging"
	"github.com/peregrine-app/peregrine/internal/store"
	"github.com/peregrine-app/peregrine/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Bool("geocoder", cfg.Geocoder.Enabled).
		Msg("starting peregrine")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver, geocodeDB := buildResolver(cfg)
	if geocodeDB != nil {
		defer func() {
			if err := geocodeDB.Close(); err != nil {
				logging.Error().Err(err).Msg("failed to close geocode cache")
			}
		}()
	}

	mem := store.NewMemory()
	if cfg.Store.SeedDemoData {
		if err := store.Seed(ctx, mem); err != nil {
			logging.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logging.Info().Msg("seeded demo data")
	}

	hub := websocket.NewHub()
	go func() {
		if err := hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("websocket hub exited")
		}
	}()

	respCache := cache.New(cfg.API.CacheTTL)
	defer respCache.Close()

	handler := api.NewHandler(mem, respCache, resolver, hub, cfg)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("server shutdown failed")
			_ = server.Close()
		}
	}()

	logging.Info().Str("addr", server.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal().Err(err).Msg("server failed")
	}
	logging.Info().Msg("peregrine stopped")
}

// buildResolver assembles the geocoder: Nominatim client behind a
// circuit breaker, wrapped with the rate-limited BadgerDB-backed cache.
// Returns a nil resolver when geocoding is disabled; the returned DB
// must be closed by the caller when non-nil.
func buildResolver(cfg *config.Config) (geocode.Resolver, *badger.DB) {
	if !cfg.Geocoder.Enabled {
		logging.Info().Msg("geocoder disabled; country badges unavailable")
		return nil, nil
	}

	opts := badger.DefaultOptions(cfg.Geocoder.CachePath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		logging.Warn().Err(err).Str("path", cfg.Geocoder.CachePath).
			Msg("geocode cache unavailable, falling back to in-memory cache")
		return newCachedResolver(cfg, geocode.NewMemoryStore()), nil
	}

	return newCachedResolver(cfg, geocode.NewBadgerStore(db)), db
}

func newCachedResolver(cfg *config.Config, s geocode.Store) *geocode.CachedResolver {
	client := geocode.NewClient(geocode.ClientConfig{
		BaseURL: cfg.Geocoder.BaseURL,
		Timeout: cfg.Geocoder.Timeout,
	})
	return geocode.NewCachedResolver(client, s, cfg.Geocoder.RatePerS)
}
