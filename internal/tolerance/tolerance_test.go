// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolerance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhysicalToleranceBelowThresholdUsesAbsoluteAlone(t *testing.T) {
	eq := Equation{Absolute: 10, Relative: 1e-4, MinValueThreshold: 100}
	require.Equal(t, 10.0, eq.PhysicalTolerance(5))
}

func TestPhysicalToleranceAboveThresholdUsesMaxOfAbsoluteAndRelative(t *testing.T) {
	eq := Equation{Absolute: 10, Relative: 1e-4, MinValueThreshold: 100}
	// relative term: 1e-4 * 1e6 = 100, which dominates the absolute floor of 10.
	require.InDelta(t, 100.0, eq.PhysicalTolerance(1e6), 1e-9)
}

func TestScaledToleranceDividesByReferenceScalePlusEpsilon(t *testing.T) {
	eq := Equation{Absolute: 10, Relative: 1e-4, MinValueThreshold: 100}
	got := eq.ScaledTolerance(5, 1000, 1e-6)
	require.InDelta(t, 10.0/1000.0, got, 1e-9)
}

func TestDefaultsProvidesAllFourBlocks(t *testing.T) {
	d := Defaults()
	require.NotZero(t, d.IonTemperature.Absolute)
	require.NotZero(t, d.ElectronTemperature.Absolute)
	require.NotZero(t, d.ElectronDensity.Absolute)
	require.NotZero(t, d.PoloidalFlux.Absolute)
}

func TestDefaultPhysicalThresholdsAreAllPositive(t *testing.T) {
	pt := DefaultPhysicalThresholds()
	require.Greater(t, pt.MinHeatingPowerForTauE, 0.0)
	require.Greater(t, pt.MinFusionPowerForQ, 0.0)
	require.Greater(t, pt.MinStoredEnergyForPlasma, 0.0)
}
