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
	Register("radiation", func(params map[string]float64) (Model, error) {
		species := Carbon
		if v, ok := params["species"]; ok {
			species = Species(int(v))
		}
		return &Radiation{
			Species:          species,
			ImpurityFraction: getOr(params, "impurity_fraction", 0.01),
		}, nil
	})
}

// Radiation implements bremsstrahlung and impurity line radiation (§4.4).
// Both are pure loss terms: negative electron heating, zero particle or
// current contribution.
type Radiation struct {
	Species          Species
	ImpurityFraction float64 // n_impurity / n_e
}

func (r *Radiation) Name() string { return "radiation" }

// bremsstrahlungPowerDensity returns P_brem [W/m^3] (NRL formulary form).
func bremsstrahlungPowerDensity(ne, teEV, zEff float64) float64 {
	teKeV := math.Max(teEV, 1) / 1000.0
	// P_brem [W/cm^3] = 1.69e-32 * ne[cm^-3]^2 * Zeff * sqrt(Te[keV])
	neCM3 := ne * 1e-6
	pBremCM3 := 1.69e-32 * neCM3 * neCM3 * zEff * math.Sqrt(teKeV)
	return pBremCM3 * 1e6 // W/cm^3 -> W/m^3
}

func (r *Radiation) ComputeTerms(p *profiles.Profiles, g *geometry.Geometry) (Terms, error) {
	n := p.Len()
	out := Zero(n)

	var electronPowerW float64
	for i := 0; i < n; i++ {
		ne := p.ElectronDensity[i]
		nImpurity := r.ImpurityFraction * ne

		pBrem := bremsstrahlungPowerDensity(ne, p.ElectronTemperature[i], 1.0+r.ImpurityFraction)
		lz := CoolingRate(r.Species, p.ElectronTemperature[i])
		pLine := ne * nImpurity * lz // W/m^3

		total := pBrem + pLine // positive magnitude; contributed as a loss
		out.ElectronHeating[i] = -total / 1e6
		electronPowerW += -total * g.CellVolumes[i]
	}

	out.Metadata = []Metadata{{
		Name:          "radiation_" + r.Species.String(),
		Category:      Radiation,
		ElectronPower: electronPowerW,
	}}
	return out, nil
}
