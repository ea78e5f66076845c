// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
)

func init() {
	Register("ohmic", func(params map[string]float64) (Model, error) {
		return &Ohmic{
			FluxVariationThreshold: getOr(params, "flux_variation_threshold", 1e-6),
			ZEff:                   getOr(params, "z_eff", 1.5),
		}, nil
	})
}

// Ohmic implements Spitzer-resistivity ohmic heating, skipped (per §4.4)
// when the flux variation across the step is below a configurable
// threshold — a quasi-steady psi is not worth recomputing P_ohmic for.
type Ohmic struct {
	FluxVariationThreshold float64
	ZEff                   float64

	// PreviousFlux, when set by the orchestrator between steps, lets the
	// model judge its own flux-variation skip condition. Nil on the first
	// call, in which case the model always computes.
	PreviousFlux []float64
}

func (o *Ohmic) Name() string { return "ohmic" }

// spitzerResistivity returns the parallel Spitzer resistivity [Ohm*m] for
// electron temperature Te [eV] and effective charge Zeff.
func spitzerResistivity(teEV, zEff float64) float64 {
	teKeV := math.Max(teEV, 1) / 1000.0
	// eta_Spitzer = 1.65e-9 * Zeff * lnLambda / Te[keV]^1.5  [Ohm*m], with
	// a fixed Coulomb logarithm of 17 (typical tokamak core value).
	const lnLambda = 17.0
	return 1.65e-9 * zEff * lnLambda / math.Pow(teKeV, 1.5)
}

func (o *Ohmic) ComputeTerms(p *profiles.Profiles, g *geometry.Geometry) (Terms, error) {
	n := p.Len()
	out := Zero(n)

	if o.skip(p) {
		out.Metadata = []Metadata{{Name: "ohmic", Category: Ohmic}}
		return out, nil
	}

	var electronPowerW float64
	for i := 0; i < n; i++ {
		eta := spitzerResistivity(p.ElectronTemperature[i], o.ZEff)
		// current density from the poloidal flux gradient via the metric
		// Jacobian (1/g0) dpsi/drho, matching the §4.5 metric flux-
		// divergence form used for the psi equation itself.
		var dpsidrho float64
		if i == 0 {
			dpsidrho = (p.PoloidalFlux[1] - p.PoloidalFlux[0]) / math.Max(g.Rho[1]-g.Rho[0], 1e-10)
		} else if i == n-1 {
			dpsidrho = (p.PoloidalFlux[n-1] - p.PoloidalFlux[n-2]) / math.Max(g.Rho[n-1]-g.Rho[n-2], 1e-10)
		} else {
			dpsidrho = (p.PoloidalFlux[i+1] - p.PoloidalFlux[i-1]) / math.Max(g.Rho[i+1]-g.Rho[i-1], 1e-10)
		}
		jPhi := dpsidrho / g.G0[i]
		powerDensityW := eta * jPhi * jPhi // W/m^3

		out.ElectronHeating[i] = powerDensityW / 1e6
		electronPowerW += powerDensityW * g.CellVolumes[i]
	}

	out.Metadata = []Metadata{{
		Name:          "ohmic",
		Category:      Ohmic,
		ElectronPower: electronPowerW,
	}}
	return out, nil
}

// skip implements the §4.4 flux-variation skip: if PreviousFlux has been
// recorded and the relative change is below FluxVariationThreshold, ohmic
// heating is treated as unchanged and zero is contributed for this step
// (the caller, not this model, is responsible for reusing the last
// non-zero contribution if it wants one).
func (o *Ohmic) skip(p *profiles.Profiles) bool {
	if o.PreviousFlux == nil || len(o.PreviousFlux) != p.Len() {
		return false
	}
	var maxRel float64
	for i, psi := range p.PoloidalFlux {
		ref := math.Max(math.Abs(o.PreviousFlux[i]), 1e-10)
		rel := math.Abs(psi-o.PreviousFlux[i]) / ref
		if rel > maxRel {
			maxRel = rel
		}
	}
	return maxRel < o.FluxVariationThreshold
}
