// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geo

import (
	"math"
)

const (
	// 2D line width: linear in frequency, clamped.
	baseLineWidth = 2.0
	lineWidthStep = 1.0
	maxLineWidth  = 8.0

	// 3D opacity: logarithmic in frequency, clamped.
	baseArcOpacity   = 0.35
	arcOpacityFactor = 0.25
	maxArcOpacity    = 0.9
)

// LineWidth maps a route frequency to a 2D polyline width in pixels.
// Frequency 1 maps to the baseline width; each repeat widens the line
// linearly up to the clamp, so busy routes stand out without dominating.
func LineWidth(frequency int) float64 {
	if frequency < 1 {
		frequency = 1
	}
	width := baseLineWidth + float64(frequency-1)*lineWidthStep
	if width > maxLineWidth {
		width = maxLineWidth
	}
	return width
}

// ArcOpacity maps a route frequency to a 3D arc opacity. The scale is
// logarithmic so the tenth repetition of a commute adds far less than
// the second, clamped below full opacity so overlapping arcs stay
// readable.
func ArcOpacity(frequency int) float64 {
	if frequency < 1 {
		frequency = 1
	}
	opacity := baseArcOpacity + math.Log(float64(frequency))*arcOpacityFactor
	if opacity > maxArcOpacity {
		opacity = maxArcOpacity
	}
	return opacity
}
