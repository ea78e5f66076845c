// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGaussianDiffusion1DMatchesInitialConditionAtTimeZero(t *testing.T) {
	got := GaussianDiffusion1D(0, 0, 1.0, 2.0)
	require.InDelta(t, 2.0, got, 1e-9)
}

func TestGaussianDiffusion1DSpreadsAndFlattensOverTime(t *testing.T) {
	peakEarly := GaussianDiffusion1D(0, 0.1, 1.0, 1.0)
	peakLate := GaussianDiffusion1D(0, 10.0, 1.0, 1.0)
	require.Greater(t, peakEarly, peakLate) // peak decays as variance grows
}

func TestPecletSweepProfileHitsBoundaryValues(t *testing.T) {
	require.InDelta(t, 0.0, PecletSweepProfile(0, 1.0, 5.0), 1e-9)
	require.InDelta(t, 1.0, PecletSweepProfile(1.0, 1.0, 5.0), 1e-9)
}

func TestPecletSweepProfileDegeneratesToLinearAtZeroPeclet(t *testing.T) {
	got := PecletSweepProfile(0.5, 2.0, 0)
	require.InDelta(t, 0.25, got, 1e-9)
}

func TestRMSErrorIsZeroForIdenticalProfiles(t *testing.T) {
	v := []float64{1, 2, 3}
	require.Equal(t, 0.0, RMSError(v, v))
}

func TestRMSErrorIsInfiniteForMismatchedLengths(t *testing.T) {
	got := RMSError([]float64{1, 2}, []float64{1, 2, 3})
	require.True(t, math.IsInf(got, 1))
}

func TestRMSErrorIsPositiveForDifferingProfiles(t *testing.T) {
	got := RMSError([]float64{1, 2, 3}, []float64{1, 2, 4})
	require.Greater(t, got, 0.0)
}
