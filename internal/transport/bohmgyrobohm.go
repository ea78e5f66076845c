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
	Register("bohm_gyrobohm", func(params map[string]float64) (Model, error) {
		return &BohmGyroBohm{
			BohmCoeff:    getOr(params, "bohm_coeff", 8e-5),
			GyroBohmCoeff: getOr(params, "gyrobohm_coeff", 3.5e-2),
		}, nil
	})
}

// BohmGyroBohm implements the empirical semi-analytic Bohm/gyro-Bohm
// transport scaling (§4.3): chi = c_B * chi_Bohm + c_gB * chi_gyroBohm.
type BohmGyroBohm struct {
	BohmCoeff     float64
	GyroBohmCoeff float64
}

func (b *BohmGyroBohm) Name() string { return "bohm_gyrobohm" }

const (
	elementaryCharge = 1.602176634e-19
	protonMass       = 1.67262192369e-27
)

func (b *BohmGyroBohm) ComputeCoefficients(p *profiles.Profiles, g *geometry.Geometry) (Coefficients, error) {
	n := g.N
	chiCell := make([]float64, n)
	for i := 0; i < n; i++ {
		teJ := p.ElectronTemperature[i] * elementaryCharge
		bt := g.ToroidalField
		// Bohm diffusivity: chi_Bohm = Te / (16 e B)
		chiBohm := teJ / (16 * elementaryCharge * bt)

		// gyro-Bohm diffusivity: chi_gB = chi_Bohm * (rho_s / a), where
		// rho_s is the ion sound Larmor radius.
		rhoS := math.Sqrt(protonMass*teJ) / (elementaryCharge * bt)
		chiGyroBohm := chiBohm * (rhoS / g.MinorRadius)

		chiCell[i] = b.BohmCoeff*chiBohm + b.GyroBohmCoeff*chiGyroBohm
	}

	chiFace := g.InterpToFaces(chiCell)
	out := Coefficients{
		ChiIon:              append([]float64(nil), chiFace...),
		ChiElectron:         append([]float64(nil), chiFace...),
		ParticleDiffusivity: scaleSlice(chiFace, 0.3),
		ConvectionVelocity:  make([]float64, g.N+1),
	}
	out.Clip()
	return out, nil
}

func scaleSlice(s []float64, f float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v * f
	}
	return out
}
