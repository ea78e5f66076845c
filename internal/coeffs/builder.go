// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeffs

import (
	"fmt"
	"math"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/source"
	"github.com/1amageek/gotenx/internal/transport"
)

const muNaught = 4 * math.Pi * 1e-7

// EquationCoeffs is the per-equation coefficient bundle the Newton solver
// consumes (§3): transient multipliers, face diffusion/convection, a
// cell-centred source in solver units, and boundary descriptors.
type EquationCoeffs struct {
	TransientIn  []float64 // multiplier on (x_new-x_old)/dt, cell-centred
	TransientOut []float64
	Diffusion    []float64 // face-valued, length N+1
	Convection   []float64 // face-valued, length N+1
	Source       []float64 // cell-centred, solver units
	Boundaries   EquationBoundaries
}

// All holds the four equations' coefficients in the canonical block order
// (Ti, Te, ne, psi), matching profiles.Flatten's layout.
type All struct {
	IonTemperature      EquationCoeffs
	ElectronTemperature EquationCoeffs
	ElectronDensity     EquationCoeffs
	PoloidalFlux        EquationCoeffs
}

// Boundaries bundles the four equations' boundary descriptors (§4.6), the
// shape a configuration supplies per equation per end.
type Boundaries struct {
	IonTemperature      EquationBoundaries
	ElectronTemperature EquationBoundaries
	ElectronDensity     EquationBoundaries
	PoloidalFlux        EquationBoundaries
}

// DebugMagnitudeGuard, when true, makes Build reject SourceTerms whose
// peak heating exceeds the §4.5/§4.12 plausibility bound of 1000 MW/m^3
// with a structured error identifying the probable unit mistake, instead
// of relying solely on the composite's debug-assert. Off by default so
// production runs that have been validated once pay no extra cost.
var DebugMagnitudeGuard = false

const maxPlausibleHeatingMWm3 = 1000.0

// Build is the finite-volume coefficient builder and the sole unit barrier
// (§4.5, §9): it is the only function in Gotenx that converts heating
// densities from MW/m^3 (physics units, as produced by internal/source)
// into eV m^-3 s^-1 (solver units, as consumed by internal/solver).
func Build(p *profiles.Profiles, tc transport.Coefficients, st source.Terms, g *geometry.Geometry, bc Boundaries, sauter SauterCoefficients) (All, error) {
	if DebugMagnitudeGuard {
		if err := checkMagnitude(st); err != nil {
			return All{}, err
		}
	}

	n := p.Len()

	bootstrap := BootstrapCurrentDensity(p, g, sauter)
	totalCurrent := make([]float64, n)
	for i := range totalCurrent {
		totalCurrent[i] = st.CurrentSource[i] + bootstrap[i]
	}

	ionSource := coeffsMWToEV(st.IonHeating)
	electronSource := coeffsMWToEV(st.ElectronHeating)

	heatCapacity := make([]float64, n)
	for i := range heatCapacity {
		heatCapacity[i] = 1.5 * p.ElectronDensity[i]
	}

	teFaceValues := g.InterpToFaces(p.ElectronTemperature)
	etaFace := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		etaFace[i] = spitzerResistivityEV(teFaceValues[i]) / muNaught
	}

	ion := EquationCoeffs{
		TransientIn:  heatCapacity,
		TransientOut: heatCapacity,
		Diffusion:    scaleByFaceDensity(tc.ChiIon, p.ElectronDensity, g),
		Convection:   scaleByFaceDensity(tc.ConvectionVelocity, p.ElectronDensity, g),
		Source:       ionSource,
		Boundaries:   bc.IonTemperature,
	}
	electron := EquationCoeffs{
		TransientIn:  heatCapacity,
		TransientOut: heatCapacity,
		Diffusion:    scaleByFaceDensity(tc.ChiElectron, p.ElectronDensity, g),
		Convection:   scaleByFaceDensity(tc.ConvectionVelocity, p.ElectronDensity, g),
		Source:       electronSource,
		Boundaries:   bc.ElectronTemperature,
	}
	density := EquationCoeffs{
		TransientIn:  onesLike(n),
		TransientOut: onesLike(n),
		Diffusion:    tc.ParticleDiffusivity,
		Convection:   tc.ConvectionVelocity,
		Source:       st.ParticleSource,
		Boundaries:   bc.ElectronDensity,
	}
	psi := EquationCoeffs{
		TransientIn:  onesLike(n),
		TransientOut: onesLike(n),
		Diffusion:    etaFace,
		Convection:   make([]float64, n+1),
		Source:       totalCurrent,
		Boundaries:   bc.PoloidalFlux,
	}

	return All{IonTemperature: ion, ElectronTemperature: electron, ElectronDensity: density, PoloidalFlux: psi}, nil
}

func coeffsMWToEV(mw []float64) []float64 {
	out := make([]float64, len(mw))
	for i, v := range mw {
		out[i] = MWm3ToEVm3s(v)
	}
	return out
}

func scaleByFaceDensity(faceChi []float64, cellDensity []float64, g *geometry.Geometry) []float64 {
	densityFace := g.InterpToFaces(cellDensity)
	out := make([]float64, len(faceChi))
	for i := range out {
		out[i] = faceChi[i] * densityFace[i]
	}
	return out
}

func onesLike(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1
	}
	return s
}

func spitzerResistivityEV(teEV float64) float64 {
	teKeV := math.Max(teEV, 1) / 1000.0
	const lnLambda = 17.0
	return 1.65e-9 * lnLambda / math.Pow(teKeV, 1.5)
}

// checkMagnitude implements the §4.12 debug-only unit-plausibility check:
// SourceTerms with peak heating above 1000 MW/m^3 are rejected, identifying
// the probable MW<->eV mistake at source rather than letting it propagate
// silently into the solver.
func checkMagnitude(st source.Terms) error {
	peak := 0.0
	for _, v := range st.IonHeating {
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}
	for _, v := range st.ElectronHeating {
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}
	if peak > maxPlausibleHeatingMWm3 {
		return fmt.Errorf("coeffs: peak heating %g MW/m^3 exceeds plausibility guard %g MW/m^3 (probable MW<->eV unit mistake)", peak, maxPlausibleHeatingMWm3)
	}
	return nil
}
