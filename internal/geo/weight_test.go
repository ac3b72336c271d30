// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package geo

import (
	"testing"
)

func TestLineWidth(t *testing.T) {
	tests := []struct {
		frequency int
		want      float64
	}{
		{1, baseLineWidth},
		{2, baseLineWidth + lineWidthStep},
		{100, maxLineWidth},
		{0, baseLineWidth},  // degenerate inputs clamp to baseline
		{-5, baseLineWidth},
	}

	for _, tt := range tests {
		if got := LineWidth(tt.frequency); got != tt.want {
			t.Errorf("LineWidth(%d) = %f, want %f", tt.frequency, got, tt.want)
		}
	}
}

func TestLineWidthMonotonic(t *testing.T) {
	prev := LineWidth(1)
	for f := 2; f <= 20; f++ {
		cur := LineWidth(f)
		if cur < prev {
			t.Fatalf("LineWidth not monotonic at frequency %d: %f < %f", f, cur, prev)
		}
		prev = cur
	}
}

func TestArcOpacity(t *testing.T) {
	if got := ArcOpacity(1); got != baseArcOpacity {
		t.Errorf("ArcOpacity(1) = %f, want baseline %f", got, baseArcOpacity)
	}
	if got := ArcOpacity(0); got != baseArcOpacity {
		t.Errorf("ArcOpacity(0) = %f, want baseline %f", got, baseArcOpacity)
	}
	if got := ArcOpacity(1000); got > maxArcOpacity {
		t.Errorf("ArcOpacity(1000) = %f exceeds clamp %f", got, maxArcOpacity)
	}
}

func TestArcOpacityMonotonicAndSublinear(t *testing.T) {
	prev := ArcOpacity(1)
	for f := 2; f <= 50; f++ {
		cur := ArcOpacity(f)
		if cur < prev {
			t.Fatalf("ArcOpacity not monotonic at frequency %d", f)
		}
		prev = cur
	}

	// Logarithmic growth: the step from 10 to 11 must be smaller than
	// the step from 1 to 2.
	early := ArcOpacity(2) - ArcOpacity(1)
	late := ArcOpacity(11) - ArcOpacity(10)
	if late >= early {
		t.Errorf("expected sublinear growth: early step %f, late step %f", early, late)
	}
}
