// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coeffs implements the finite-volume coefficient builder (§4.5):
// the single barrier where heating densities cross from physics units
// (MW/m^3) into solver units (eV m^-3 s^-1), the Patankar power-law face
// scheme, the metric flux-divergence form, and the Sauter bootstrap
// current. No other package performs this unit conversion (§9's
// "boundary barrier for units" architectural invariant).
package coeffs

const elementaryChargeJ = 1.602176634e-19

// HeatingConversionFactor converts 1 MW/m^3 into eV m^-3 s^-1:
// 1e6 W/m^3 = 1e6 J s^-1 m^-3, and 1 J = 1/e eV.
const HeatingConversionFactor = 1e6 / elementaryChargeJ

// MWm3ToEVm3s converts a heating density from MW/m^3 (physics units) to
// eV m^-3 s^-1 (solver units). This function and MWm3SliceToEVm3s below
// are the only places in Gotenx where a physics-unit heating density
// becomes a solver-unit one.
func MWm3ToEVm3s(mwPerM3 float64) float64 {
	return mwPerM3 * HeatingConversionFactor
}

// MWm3SliceToEVm3s converts a whole heating-density slice into a new
// slice, leaving the input untouched.
func MWm3SliceToEVm3s(mwPerM3 []float64) []float64 {
	out := make([]float64, len(mwPerM3))
	for i, v := range mwPerM3 {
		out[i] = MWm3ToEVm3s(v)
	}
	return out
}
