// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"math"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
)

func init() {
	Register("density_transition", func(params map[string]float64) (Model, error) {
		return &DensityTransition{
			TransitionDensity: getOr(params, "transition_density", 5e19),
			TransitionWidth:   getOr(params, "transition_width", 5e18),
			IonMassNumber:     getOr(params, "ion_mass_number", 2.0), // deuterium by default
			ITG: CriticalGradient{
				CriticalGradientLength: getOr(params, "itg_critical_gradient_length", 3.0),
				Stiffness:              getOr(params, "itg_stiffness", 2.0),
				ChiBase:                getOr(params, "itg_chi_base", 0.1),
			},
			RIBase: getOr(params, "ri_base", 0.05),
		}, nil
	})
}

// DensityTransition blends an ITG-regime transport model with a
// resistive-interchange (RI) transport model via a sigmoid in local n_e
// around a configured transition density (§4.3). Isotope mass enters only
// through the ion sound Larmor radius in the RI sub-model — the ITG
// sub-model is isotope-blind, so there is no double scaling of the isotope
// effect across the blend.
type DensityTransition struct {
	TransitionDensity float64 // [m^-3]
	TransitionWidth   float64 // [m^-3]
	IonMassNumber     float64 // atomic mass units; isotope effect enters only here
	ITG               CriticalGradient
	RIBase            float64
}

func (d *DensityTransition) Name() string { return "density_transition" }

func (d *DensityTransition) ComputeCoefficients(p *profiles.Profiles, g *geometry.Geometry) (Coefficients, error) {
	itg, err := d.ITG.ComputeCoefficients(p, g)
	if err != nil {
		return Coefficients{}, err
	}

	n := g.N
	neFace := g.InterpToFaces(p.ElectronDensity)
	teFace := g.InterpToFaces(p.ElectronTemperature)

	chiFace := make([]float64, n+1)
	for i := 0; i < n+1; i++ {
		sigmoid := 1.0 / (1.0 + math.Exp(-(neFace[i]-d.TransitionDensity)/math.Max(d.TransitionWidth, 1e-6)))

		// ion sound Larmor radius rho_s ∝ sqrt(m_i * Te) / (e B): the only
		// place isotope mass enters this model.
		teJ := teFace[i] * elementaryCharge
		ionMassKg := d.IonMassNumber * protonMass
		rhoS := math.Sqrt(ionMassKg*teJ) / (elementaryCharge * g.ToroidalField)
		chiRI := d.RIBase * (rhoS / g.MinorRadius) * 1e3

		chiFace[i] = sigmoid*chiRI + (1-sigmoid)*itg.ChiIon[i]
	}

	out := Coefficients{
		ChiIon:              chiFace,
		ChiElectron:         scaleSlice(chiFace, 0.75),
		ParticleDiffusivity: scaleSlice(chiFace, 0.25),
		ConvectionVelocity:  make([]float64, n+1),
	}
	out.Clip()
	return out, nil
}
