// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
)

func init() {
	Register("constant", func(params map[string]float64) (Model, error) {
		return &Constant{
			ChiIon:              getOr(params, "chi_ion", 1.0),
			ChiElectron:         getOr(params, "chi_electron", 1.0),
			ParticleDiffusivity: getOr(params, "particle_diffusivity", 0.5),
			ConvectionVelocity:  getOr(params, "convection_velocity", 0.0),
		}, nil
	})
}

// Constant returns configured constants everywhere, for testing and
// debugging (§4.3).
type Constant struct {
	ChiIon              float64
	ChiElectron         float64
	ParticleDiffusivity float64
	ConvectionVelocity  float64
}

func (c *Constant) Name() string { return "constant" }

func (c *Constant) ComputeCoefficients(p *profiles.Profiles, g *geometry.Geometry) (Coefficients, error) {
	n := g.N + 1
	out := Coefficients{
		ChiIon:              fill(n, c.ChiIon),
		ChiElectron:         fill(n, c.ChiElectron),
		ParticleDiffusivity: fill(n, c.ParticleDiffusivity),
		ConvectionVelocity:  fill(n, c.ConvectionVelocity),
	}
	out.Clip()
	return out, nil
}

func fill(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
