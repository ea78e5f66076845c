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
	Register("critical_gradient", func(params map[string]float64) (Model, error) {
		return &CriticalGradient{
			CriticalGradientLength: getOr(params, "critical_gradient_length", 3.0),
			Stiffness:              getOr(params, "stiffness", 2.0),
			ChiBase:                getOr(params, "chi_base", 0.1),
		}, nil
	})
}

// CriticalGradient implements an ITG-style stiff-transport closure: chi is
// near-zero below a critical inverse gradient length and rises steeply
// (stiffly) above it (§4.3).
type CriticalGradient struct {
	CriticalGradientLength float64 // R/LT_crit
	Stiffness              float64 // chi growth rate above threshold
	ChiBase                float64 // floor diffusivity below threshold
}

func (c *CriticalGradient) Name() string { return "critical_gradient" }

func (c *CriticalGradient) ComputeCoefficients(p *profiles.Profiles, g *geometry.Geometry) (Coefficients, error) {
	n := g.N
	gradTi := g.Gradient(p.IonTemperature) // face-valued, length n+1
	tiFace := g.InterpToFaces(p.IonTemperature)

	chiFace := make([]float64, n+1)
	for i := range chiFace {
		invLT := -gradTi[i] / math.Max(tiFace[i], 1e-3) // 1/LT
		normalisedGradient := invLT * g.MajorRadius

		excess := normalisedGradient - c.CriticalGradientLength
		if excess < 0 {
			chiFace[i] = c.ChiBase
		} else {
			chiFace[i] = c.ChiBase + c.Stiffness*excess*excess
		}
	}

	out := Coefficients{
		ChiIon:              chiFace,
		ChiElectron:         scaleSlice(chiFace, 0.7),
		ParticleDiffusivity: scaleSlice(chiFace, 0.2),
		ConvectionVelocity:  make([]float64, n+1),
	}
	out.Clip()
	return out, nil
}
