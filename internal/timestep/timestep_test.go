// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timestep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextHonoursCFLFormula(t *testing.T) {
	opt := DefaultOptions(10.0)
	zero := 0.0
	opt.MinDt = &zero // explicit zero floor so the raw CFL value is observable
	c := New(opt)

	dxMin, chiMax := 0.1, 1.0
	want := opt.Safety * dxMin * dxMin / (2 * chiMax)
	got := c.Next(dxMin, chiMax)
	require.InDelta(t, want, got, 1e-9)
}

func TestNextClampsToMaxDt(t *testing.T) {
	opt := DefaultOptions(1.0)
	c := New(opt)
	got := c.Next(1000.0, 1e-9) // huge CFL estimate
	require.LessOrEqual(t, got, opt.MaxDt)
}

func TestNextEnforcesGrowthCap(t *testing.T) {
	opt := DefaultOptions(100.0)
	c := New(opt)
	first := c.Next(1.0, 1.0)
	// drastically shrink chiMax so the raw CFL estimate would jump far above
	// GrowthCap*first; the controller must still cap the growth.
	second := c.Next(1.0, 1e-9)
	require.LessOrEqual(t, second, first*opt.GrowthCap+1e-9)
}

func TestNextEnforcesFloor(t *testing.T) {
	opt := DefaultOptions(10.0)
	c := New(opt)
	got := c.Next(1e-9, 1e12) // tiny CFL estimate
	require.GreaterOrEqual(t, got, opt.MaxDt*opt.MinDtFraction-1e-15)
}

func TestResetClearsGrowthCapHistory(t *testing.T) {
	opt := DefaultOptions(100.0)
	c := New(opt)
	c.Next(1.0, 1.0)
	c.Reset()
	// immediately after reset, a huge CFL estimate should clamp only to
	// MaxDt, not to the pre-reset growth cap.
	got := c.Next(1000.0, 1e-9)
	require.Equal(t, opt.MaxDt, got)
}

func TestMaxOfReturnsLargestAcrossAllThreeSlices(t *testing.T) {
	got := MaxOf([]float64{0.1, 0.2}, []float64{0.05}, []float64{0.3, 0.01})
	require.Equal(t, 0.3, got)
}
