// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peregrine-app/peregrine/internal/cache"
	"github.com/peregrine-app/peregrine/internal/config"
	"github.com/peregrine-app/peregrine/internal/geocode"
	"github.com/peregrine-app/peregrine/internal/middleware"
	"github.com/peregrine-app/peregrine/internal/store"
	"github.com/peregrine-app/peregrine/internal/websocket"
)

// Handler carries the dependencies shared by all endpoint handlers.
type Handler struct {
	store    store.Store
	cache    *cache.Cache
	resolver geocode.Resolver
	hub      *websocket.Hub
	cfg      *config.Config

	startedAt time.Time
}

// NewHandler wires the handler dependencies. The resolver may be nil
// when geocoding is disabled; badge endpoints then respond 503.
func NewHandler(s store.Store, c *cache.Cache, resolver geocode.Resolver, hub *websocket.Hub, cfg *config.Config) *Handler {
	return &Handler{
		store:     s,
		cache:     c,
		resolver:  resolver,
		hub:       hub,
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Routes builds the chi router with the full middleware stack and all
// API routes mounted under /api/v1.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.API.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Compression)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			// Permissive limit so monitoring can poll freely.
			r.Use(httprate.LimitByIP(1000, time.Minute))
			r.Get("/", h.Health)
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(httprate.Limit(
				h.cfg.API.RateLimitRequests,
				h.cfg.API.RateLimitWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
			))
			r.Use(middleware.Prometheus)

			r.Route("/trips", func(r chi.Router) {
				r.Get("/", h.ListTrips)
				r.Post("/", h.CreateTrip)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetTrip)
					r.Put("/", h.UpdateTrip)
					r.Delete("/", h.DeleteTrip)
					r.Post("/accommodations", h.AddAccommodation)
					r.Delete("/accommodations/{accID}", h.DeleteAccommodation)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.ListUsers)
				r.Post("/", h.CreateUser)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetUser)
					r.Put("/", h.UpdateUser)
					r.Delete("/", h.DeleteUser)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", h.ListLeaveRequests)
				r.Post("/", h.CreateLeaveRequest)
				r.Get("/balance", h.LeaveBalance)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetLeaveRequest)
					r.Put("/", h.UpdateLeaveRequest)
					r.Delete("/", h.DeleteLeaveRequest)
				})
			})

			r.Route("/geometry", func(r chi.Router) {
				r.Get("/arcs", h.GeometryArcs)
				r.Get("/globe", h.GeometryGlobe)
				r.Get("/frequencies", h.GeometryFrequencies)
			})

			r.Get("/stats/flights", h.FlightStats)
			r.Get("/badges/countries", h.CountryBadges)

			r.Get("/ws", h.WebSocket)
		})
	})

	return r
}
