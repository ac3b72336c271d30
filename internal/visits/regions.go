// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package visits

import (
	"strings"
)

// countryRegions maps ISO 3166-1 alpha-2 codes to continental regions.
// The table covers the codes the geocoder commonly returns; unknown
// codes map to empty string.
var countryRegions = map[string]string{
	// Europe
	"ad": "Europe", "al": "Europe", "at": "Europe", "ba": "Europe",
	"be": "Europe", "bg": "Europe", "by": "Europe", "ch": "Europe",
	"cy": "Europe", "cz": "Europe", "de": "Europe", "dk": "Europe",
	"ee": "Europe", "es": "Europe", "fi": "Europe", "fr": "Europe",
	"gb": "Europe", "gr": "Europe", "hr": "Europe", "hu": "Europe",
	"ie": "Europe", "is": "Europe", "it": "Europe", "li": "Europe",
	"lt": "Europe", "lu": "Europe", "lv": "Europe", "mc": "Europe",
	"md": "Europe", "me": "Europe", "mk": "Europe", "mt": "Europe",
	"nl": "Europe", "no": "Europe", "pl": "Europe", "pt": "Europe",
	"ro": "Europe", "rs": "Europe", "ru": "Europe", "se": "Europe",
	"si": "Europe", "sk": "Europe", "sm": "Europe", "ua": "Europe",
	"va": "Europe",

	// Asia
	"ae": "Asia", "af": "Asia", "am": "Asia", "az": "Asia",
	"bd": "Asia", "bh": "Asia", "bn": "Asia", "bt": "Asia",
	"cn": "Asia", "ge": "Asia", "hk": "Asia", "id": "Asia",
	"il": "Asia", "in": "Asia", "iq": "Asia", "ir": "Asia",
	"jo": "Asia", "jp": "Asia", "kg": "Asia", "kh": "Asia",
	"kr": "Asia", "kw": "Asia", "kz": "Asia", "la": "Asia",
	"lb": "Asia", "lk": "Asia", "mm": "Asia", "mn": "Asia",
	"mo": "Asia", "mv": "Asia", "my": "Asia", "np": "Asia",
	"om": "Asia", "ph": "Asia", "pk": "Asia", "qa": "Asia",
	"sa": "Asia", "sg": "Asia", "sy": "Asia", "th": "Asia",
	"tj": "Asia", "tm": "Asia", "tr": "Asia", "tw": "Asia",
	"uz": "Asia", "vn": "Asia", "ye": "Asia",

	// Africa
	"ao": "Africa", "bf": "Africa", "bi": "Africa", "bj": "Africa",
	"bw": "Africa", "cd": "Africa", "cf": "Africa", "cg": "Africa",
	"ci": "Africa", "cm": "Africa", "cv": "Africa", "dj": "Africa",
	"dz": "Africa", "eg": "Africa", "er": "Africa", "et": "Africa",
	"ga": "Africa", "gh": "Africa", "gm": "Africa", "gn": "Africa",
	"gq": "Africa", "gw": "Africa", "ke": "Africa", "km": "Africa",
	"lr": "Africa", "ls": "Africa", "ly": "Africa", "ma": "Africa",
	"mg": "Africa", "ml": "Africa", "mr": "Africa", "mu": "Africa",
	"mw": "Africa", "mz": "Africa", "na": "Africa", "ne": "Africa",
	"ng": "Africa", "rw": "Africa", "sc": "Africa", "sd": "Africa",
	"sl": "Africa", "sn": "Africa", "so": "Africa", "ss": "Africa",
	"st": "Africa", "sz": "Africa", "td": "Africa", "tg": "Africa",
	"tn": "Africa", "tz": "Africa", "ug": "Africa", "za": "Africa",
	"zm": "Africa", "zw": "Africa",

	// North America
	"ag": "North America", "bb": "North America", "bs": "North America",
	"bz": "North America", "ca": "North America", "cr": "North America",
	"cu": "North America", "dm": "North America", "do": "North America",
	"gd": "North America", "gt": "North America", "hn": "North America",
	"ht": "North America", "jm": "North America", "kn": "North America",
	"lc": "North America", "mx": "North America", "ni": "North America",
	"pa": "North America", "pr": "North America", "sv": "North America",
	"tt": "North America", "us": "North America", "vc": "North America",

	// South America
	"ar": "South America", "bo": "South America", "br": "South America",
	"cl": "South America", "co": "South America", "ec": "South America",
	"gy": "South America", "pe": "South America", "py": "South America",
	"sr": "South America", "uy": "South America", "ve": "South America",

	// Oceania
	"au": "Oceania", "fj": "Oceania", "fm": "Oceania", "ki": "Oceania",
	"mh": "Oceania", "nr": "Oceania", "nz": "Oceania", "pg": "Oceania",
	"pw": "Oceania", "sb": "Oceania", "to": "Oceania", "tv": "Oceania",
	"vu": "Oceania", "ws": "Oceania",

	// Antarctica
	"aq": "Antarctica",
}

// RegionFor returns the continental region for an ISO country code, or
// empty string when the code is unknown.
func RegionFor(countryCode string) string {
	return countryRegions[strings.ToLower(countryCode)]
}
