// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/peregrine-app/peregrine/internal/logging"
	"github.com/peregrine-app/peregrine/internal/metrics"
)

// userAgent identifies Peregrine to the geocoding service, as the
// Nominatim usage policy requires.
const userAgent = "peregrine/1.0 (+https://github.com/peregrine-app/peregrine)"

// ClientConfig configures the geocoder HTTP client.
type ClientConfig struct {
	// BaseURL is the Nominatim-style endpoint, e.g.
	// https://nominatim.openstreetmap.org
	BaseURL string

	// Timeout bounds a single lookup request.
	Timeout time.Duration
}

// Client resolves place names against a Nominatim-style HTTP search
// endpoint. Requests go through a circuit breaker so a dead or
// rate-limiting geocoder fails fast instead of queueing behind
// timeouts.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[Resolution]
}

// nominatimResult is the subset of a Nominatim jsonv2 search result the
// resolver reads.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
	} `json:"address"`
}

// NewClient creates a geocoder client.
//
// Circuit breaker configuration: opens after a 60% failure rate over at
// least 5 requests in a 1-minute window, retries after 2 minutes.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[Resolution](gobreaker.Settings{
		Name:        "geocoder",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Geocoder circuit breaker state change")
			metrics.GeocoderBreakerState.Set(breakerStateValue(to))
		},
	})

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		cb:      cb,
	}
}

// breakerStateValue maps a breaker state to its metric gauge value.
func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}

// Resolve looks up a single place name. A lookup that completes with no
// match returns StatusUnresolved with a nil error; transport failures
// and open-circuit rejections return an error.
func (c *Client) Resolve(ctx context.Context, place string) (Resolution, error) {
	result, err := c.cb.Execute(func() (Resolution, error) {
		return c.lookup(ctx, place)
	})
	if err != nil {
		return Resolution{Place: place, Status: StatusUnresolved}, err
	}
	return result, nil
}

// lookup performs the actual HTTP search request.
func (c *Client) lookup(ctx context.Context, place string) (Resolution, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=jsonv2&limit=1&addressdetails=1",
		c.baseURL, url.QueryEscape(place))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Resolution{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Resolution{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Resolution{}, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Resolution{}, fmt.Errorf("read geocode response: %w", err)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return Resolution{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(results) == 0 || results[0].Address.Country == "" {
		return Resolution{Place: place, Status: StatusUnresolved}, nil
	}

	addr := results[0].Address
	city := addr.City
	if city == "" {
		city = addr.Town
	}
	if city == "" {
		city = addr.Village
	}

	return Resolution{
		Place:       place,
		Status:      StatusResolved,
		Country:     addr.Country,
		CountryCode: addr.CountryCode,
		City:        city,
	}, nil
}
