// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

// Package metrics defines the Prometheus instrumentation for Peregrine:
// HTTP endpoint latency and throughput, geocoder lookups and cache
// efficiency, and websocket connections. All collectors register
// through promauto and are exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP endpoint metrics.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peregrine_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peregrine_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Geocoder metrics.
	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peregrine_geocode_lookups_total",
			Help: "Total number of outbound geocoder lookups by outcome",
		},
		[]string{"outcome"}, // "resolved", "unresolved", "error"
	)

	GeocodeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peregrine_geocode_cache_hits_total",
			Help: "Total number of geocode cache hits",
		},
	)

	GeocodeCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peregrine_geocode_cache_misses_total",
			Help: "Total number of geocode cache misses",
		},
	)

	GeocoderBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "peregrine_geocoder_breaker_state",
			Help: "Geocoder circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
	)

	// Response cache metrics.
	ResponseCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peregrine_response_cache_hits_total",
			Help: "Total number of analytics response cache hits",
		},
	)

	ResponseCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peregrine_response_cache_misses_total",
			Help: "Total number of analytics response cache misses",
		},
	)

	// WebSocket metrics.
	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "peregrine_websocket_connections",
			Help: "Current number of connected websocket clients",
		},
	)

	WebSocketMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peregrine_websocket_messages_sent_total",
			Help: "Total number of websocket messages broadcast",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
