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
	Register("exchange", func(params map[string]float64) (Model, error) {
		return &Exchange{ZEff: getOr(params, "z_eff", 1.0)}, nil
	})
}

// Exchange implements ion-electron collisional energy exchange. Returns
// exactly cancelling ion/electron power contributions (§4.4): whatever
// energy leaves electrons enters ions, and vice versa.
type Exchange struct {
	ZEff float64
}

func (e *Exchange) Name() string { return "exchange" }

// collisionFrequency returns the ion-electron energy-equilibration
// frequency nu_ei [1/s] (NRL plasma formulary form).
func collisionFrequency(ne, teEV, zEff float64) float64 {
	teKeV := math.Max(teEV, 1) / 1000.0
	const lnLambda = 17.0
	// nu_ei [1/s] = 3.2e-15 * ne[m^-3] * Zeff * lnLambda / Te[keV]^1.5
	return 3.2e-15 * ne * zEff * lnLambda / math.Pow(teKeV, 1.5)
}

func (e *Exchange) ComputeTerms(p *profiles.Profiles, g *geometry.Geometry) (Terms, error) {
	n := p.Len()
	out := Zero(n)

	var ionPowerW, electronPowerW float64
	for i := 0; i < n; i++ {
		nu := collisionFrequency(p.ElectronDensity[i], p.ElectronTemperature[i], e.ZEff)
		deltaTeV := p.ElectronTemperature[i] - p.IonTemperature[i]
		// P_ei [W/m^3] = (3/2) n_e nu_ei (Te - Ti) * e, with e the
		// elementary charge converting eV to joules.
		const elementaryCharge = 1.602176634e-19
		pEI := 1.5 * p.ElectronDensity[i] * nu * deltaTeV * elementaryCharge

		out.IonHeating[i] = pEI / 1e6
		out.ElectronHeating[i] = -pEI / 1e6

		ionPowerW += pEI * g.CellVolumes[i]
		electronPowerW += -pEI * g.CellVolumes[i]
	}

	out.Metadata = []Metadata{{
		Name:          "exchange",
		Category:      Other,
		IonPower:      ionPowerW,
		ElectronPower: electronPowerW,
	}}
	return out, nil
}
