// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolerance implements the per-equation numerical tolerance
// configuration described in §4.11: absolute/relative/min-value-threshold
// triples, reference-state scaling, and the companion physical thresholds
// used by diagnostics.
package tolerance

import "math"

// Equation is one equation's tolerance triple (§4.11).
type Equation struct {
	Absolute         float64
	Relative         float64
	MinValueThreshold float64
}

// PhysicalTolerance returns max(absolute, relative*|v|) when |v| is at or
// above MinValueThreshold, else absolute alone (§4.11).
func (e Equation) PhysicalTolerance(v float64) float64 {
	if math.Abs(v) < e.MinValueThreshold {
		return e.Absolute
	}
	return math.Max(e.Absolute, e.Relative*math.Abs(v))
}

// ScaledTolerance returns the physical tolerance divided by the same
// (x_ref + eps) scale factor the Newton solver uses, so comparisons happen
// consistently in scaled space (§4.7 step 1, §4.11).
func (e Equation) ScaledTolerance(v, xRef, eps float64) float64 {
	return e.PhysicalTolerance(v) / (xRef + eps)
}

// Set holds the four equations' tolerances in canonical block order.
type Set struct {
	IonTemperature      Equation
	ElectronTemperature Equation
	ElectronDensity     Equation
	PoloidalFlux        Equation
}

// Defaults returns the ITER-scale calibrated defaults named in §4.11.
func Defaults() Set {
	tempTol := Equation{Absolute: 10, Relative: 1e-4, MinValueThreshold: 100}
	return Set{
		IonTemperature:      tempTol,
		ElectronTemperature: tempTol,
		ElectronDensity:     Equation{Absolute: 1e17, Relative: 1e-4, MinValueThreshold: 1e18},
		PoloidalFlux:        Equation{Absolute: 1e-3, Relative: 1e-5, MinValueThreshold: 0.1},
	}
}

// PhysicalThresholds are the companion diagnostic-only thresholds §4.11
// names: not used by the solver's convergence check, only by derived
// scalar diagnostics.
type PhysicalThresholds struct {
	MinHeatingPowerForTauE   float64 // [W]
	MinFusionPowerForQ       float64 // [W]
	FuelFractionTolerance    float64
	FluxVariationThreshold   float64
	MinStoredEnergyForPlasma float64 // [J]
}

// DefaultPhysicalThresholds returns reasonable ITER-scale defaults.
func DefaultPhysicalThresholds() PhysicalThresholds {
	return PhysicalThresholds{
		MinHeatingPowerForTauE:   1e3,
		MinFusionPowerForQ:       1e3,
		FuelFractionTolerance:    1e-6,
		FluxVariationThreshold:   1e-6,
		MinStoredEnergyForPlasma: 1e3,
	}
}
