// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagnostics computes the derived scalar quantities described in
// §4.11/§4.12: fusion gain Q, stored thermal energy, energy confinement
// time tau_E, normalised beta, and plasma current. These are read-only
// functions of a Profiles/Geometry/Terms snapshot; none mutate state.
package diagnostics

import (
	"math"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/source"
	"github.com/1amageek/gotenx/internal/tolerance"
)

const elementaryChargeJ = 1.602176634e-19

// ThermalEnergy returns W_th [J], the volume-integrated 1.5*n*(Ti+Te).
func ThermalEnergy(p *profiles.Profiles, g *geometry.Geometry) float64 {
	sum := 0.0
	for i := range p.ElectronDensity {
		sum += 1.5 * p.ElectronDensity[i] * (p.IonTemperature[i] + p.ElectronTemperature[i]) * elementaryChargeJ * g.CellVolumes[i]
	}
	return sum
}

// FusionPower returns the total D-T fusion power [W] (alpha + neutron),
// recovered from the Fusion model's AlphaPower metadata entry and the
// fixed 14.1/3.5 MeV neutron/alpha energy split (§4.4).
func FusionPower(t source.Terms) float64 {
	var alphaPower float64
	for _, m := range t.Metadata {
		alphaPower += m.AlphaPower
	}
	if alphaPower <= 0 {
		return 0
	}
	const neutronToAlphaRatio = 14.1 / 3.5
	return alphaPower * (1 + neutronToAlphaRatio)
}

// AuxiliaryPower returns the total externally-injected heating power [W]
// from every non-fusion, non-ohmic, non-exchange source model (ECRH,
// NBI-like models tagged Category=Auxiliary).
func AuxiliaryPower(t source.Terms) float64 {
	return t.IntegratedPower(source.Auxiliary)
}

// Q returns the fusion gain Q = P_fusion / P_auxiliary, per §4.12's
// PhysicalTolerance-gated definition: Q is reported as +Inf when the
// auxiliary-power denominator is below thresh.MinHeatingPowerForTauE
// (and fusion power is positive; 0 otherwise), matching the physical convention that an unheated but
// fusion-producing plasma has unbounded gain.
func Q(t source.Terms, thresh tolerance.PhysicalThresholds) float64 {
	aux := AuxiliaryPower(t)
	fusion := FusionPower(t)
	if aux < thresh.MinHeatingPowerForTauE {
		if fusion > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return fusion / aux
}

// TauE returns the energy confinement time [s]: W_th / P_heating, where
// P_heating is the total absorbed heating power (auxiliary + fusion alpha
// + ohmic, excluding radiated losses). Returns 0 when heating power is
// below thresh.MinHeatingPowerForTauE to avoid a meaningless blow-up.
func TauE(wth float64, heatingPower float64, thresh tolerance.PhysicalThresholds) float64 {
	if heatingPower < thresh.MinHeatingPowerForTauE {
		return 0
	}
	return wth / heatingPower
}

// HeatingPower returns the total ion+electron heating power [W] integrated
// from a Terms snapshot's densities (excluding the sign-preserving
// exchange term's cancellation, which nets to zero over the whole domain
// by construction, §4.4's additivity invariant).
func HeatingPower(t source.Terms, g *geometry.Geometry) float64 {
	const mw2w = 1e6
	sum := 0.0
	for i, v := range t.IonHeating {
		if v > 0 {
			sum += v * mw2w * g.CellVolumes[i]
		}
	}
	for i, v := range t.ElectronHeating {
		if v > 0 {
			sum += v * mw2w * g.CellVolumes[i]
		}
	}
	return sum
}

// PlasmaCurrent returns Ip [A], the surface integral of the total
// (ohmic+bootstrap) current density over the plasma cross-section.
func PlasmaCurrent(currentDensity []float64, g *geometry.Geometry) float64 {
	sum := 0.0
	for i, j := range currentDensity {
		area := g.CellVolumes[i] / (2 * math.Pi * g.MajorRadius)
		sum += j * area
	}
	return sum
}

// BetaN returns the normalised beta, beta_N = beta[%] * a[m] * B_t[T] / Ip[MA],
// where beta is the volume-averaged plasma pressure over the magnetic
// pressure (§4.12).
func BetaN(p *profiles.Profiles, g *geometry.Geometry, ip float64) float64 {
	if ip == 0 {
		return 0
	}
	n := p.Len()
	pressureSum, volumeSum := 0.0, 0.0
	for i := 0; i < n; i++ {
		pressureSum += p.ElectronDensity[i] * (p.IonTemperature[i] + p.ElectronTemperature[i]) * elementaryChargeJ * g.CellVolumes[i]
		volumeSum += g.CellVolumes[i]
	}
	avgPressure := pressureSum / volumeSum

	const muNaught = 4 * math.Pi * 1e-7
	magneticPressure := g.ToroidalField * g.ToroidalField / (2 * muNaught)
	beta := 100 * avgPressure / magneticPressure // percent

	ipMA := ip / 1e6
	return beta * g.MinorRadius * g.ToroidalField / ipMA
}
