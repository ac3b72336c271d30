// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package visits

import (
	"context"
	"sort"
	"strings"

	"github.com/peregrine-app/peregrine/internal/geocode"
	"github.com/peregrine-app/peregrine/internal/models"
)

// AggregateCountries resolves every visited destination across the
// given trips and groups the results by country.
//
// Grouping keys on the ISO country code when the geocoder supplied
// one, falling back to the country name. Per country it accumulates
// the distinct city set, the visit count, and the latest arrival date.
// Unresolved places contribute to the returned unresolved counter and
// nothing else; resolution failures never abort the aggregation.
func AggregateCountries(ctx context.Context, trips []models.Trip, resolver geocode.Resolver) ([]models.VisitedCountry, int) {
	type bucket struct {
		country models.VisitedCountry
		cities  map[string]struct{}
	}
	buckets := make(map[string]*bucket)
	unresolved := 0

	for ti := range trips {
		for _, visit := range VisitedDestinations(&trips[ti]) {
			res, err := resolver.Resolve(ctx, visit.Place)
			if err != nil || !res.Resolved() {
				unresolved++
				continue
			}

			key := res.CountryCode
			if key == "" {
				key = strings.ToLower(res.Country)
			}

			b, ok := buckets[key]
			if !ok {
				b = &bucket{
					country: models.VisitedCountry{
						Code:   strings.ToUpper(res.CountryCode),
						Name:   res.Country,
						Region: RegionFor(res.CountryCode),
					},
					cities: make(map[string]struct{}),
				}
				buckets[key] = b
			}

			b.country.Visits++
			if res.City != "" {
				b.cities[res.City] = struct{}{}
			}
			if visit.ArrivedAt.After(b.country.LastVisit) {
				b.country.LastVisit = visit.ArrivedAt
			}
		}
	}

	countries := make([]models.VisitedCountry, 0, len(buckets))
	for _, b := range buckets {
		cities := make([]string, 0, len(b.cities))
		for city := range b.cities {
			cities = append(cities, city)
		}
		sort.Strings(cities)
		b.country.Cities = cities
		countries = append(countries, b.country)
	}

	// Alphabetical for stable API output.
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries, unresolved
}

// Badges builds the full badge view for a set of trips: the visited
// countries plus the rank derived from the country count.
func Badges(ctx context.Context, trips []models.Trip, resolver geocode.Resolver) models.CountryBadges {
	countries, unresolved := AggregateCountries(ctx, trips, resolver)
	return models.CountryBadges{
		Countries:  countries,
		Rank:       RankFor(len(countries)),
		Unresolved: unresolved,
	}
}
