// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
)

// SurrogateInput is the fixed input signature a QLKNN-style learned
// transport surrogate consumes at one cell (§4.3: "treated by the core as
// an opaque callable with a fixed input/output signature").
type SurrogateInput struct {
	NormalisedIonGradient      float64
	NormalisedElectronGradient float64
	NormalisedDensityGradient  float64
	Rho                        float64
	SafetyFactor               float64
}

// SurrogateOutput is the surrogate's fixed output signature.
type SurrogateOutput struct {
	ChiIon              float64
	ChiElectron         float64
	ParticleDiffusivity float64
	ConvectionVelocity  float64
}

// Surrogate is the opaque callable contract: Gotenx's core does not care
// whether it is backed by a neural network, a lookup table, or a closed
// form — it only ever calls Predict with the fixed signature above.
type Surrogate interface {
	Predict(in SurrogateInput) SurrogateOutput
}

func init() {
	Register("qlknn", func(params map[string]float64) (Model, error) {
		return &QLKNN{Surrogate: nil}, nil
	})
}

// QLKNN wraps an opaque quasilinear transport surrogate (§4.3). Gotenx's
// core never inspects the surrogate's internals; if none is configured, a
// conservative closed-form stand-in (scaled critical-gradient response) is
// used so the model is still runnable without a trained network attached.
type QLKNN struct {
	Surrogate Surrogate
}

func (q *QLKNN) Name() string { return "qlknn" }

func (q *QLKNN) ComputeCoefficients(p *profiles.Profiles, g *geometry.Geometry) (Coefficients, error) {
	n := g.N
	gradTi := g.Gradient(p.IonTemperature)
	gradTe := g.Gradient(p.ElectronTemperature)
	gradNe := g.Gradient(p.ElectronDensity)
	tiFace := g.InterpToFaces(p.IonTemperature)
	teFace := g.InterpToFaces(p.ElectronTemperature)
	neFace := g.InterpToFaces(p.ElectronDensity)
	rhoFace := g.InterpToFaces(g.Rho)
	qFace := g.InterpToFaces(g.SafetyFactor)

	out := Coefficients{
		ChiIon:              make([]float64, n+1),
		ChiElectron:         make([]float64, n+1),
		ParticleDiffusivity: make([]float64, n+1),
		ConvectionVelocity:  make([]float64, n+1),
	}

	for i := 0; i < n+1; i++ {
		in := SurrogateInput{
			NormalisedIonGradient:      -gradTi[i] / maxf(tiFace[i], 1e-3),
			NormalisedElectronGradient: -gradTe[i] / maxf(teFace[i], 1e-3),
			NormalisedDensityGradient:  -gradNe[i] / maxf(neFace[i], 1e16),
			Rho:                        rhoFace[i],
			SafetyFactor:               qFace[i],
		}
		var predicted SurrogateOutput
		if q.Surrogate != nil {
			predicted = q.Surrogate.Predict(in)
		} else {
			predicted = fallbackPredict(in)
		}
		out.ChiIon[i] = predicted.ChiIon
		out.ChiElectron[i] = predicted.ChiElectron
		out.ParticleDiffusivity[i] = predicted.ParticleDiffusivity
		out.ConvectionVelocity[i] = predicted.ConvectionVelocity
	}
	out.Clip()
	return out, nil
}

// fallbackPredict is a deterministic closed-form response used only when
// no trained surrogate is attached, so tests and example configurations
// can exercise the QLKNN code path without a model file.
func fallbackPredict(in SurrogateInput) SurrogateOutput {
	base := 0.1 + 0.5*maxf(in.NormalisedIonGradient-2, 0)
	return SurrogateOutput{
		ChiIon:              base,
		ChiElectron:         base * 0.8,
		ParticleDiffusivity: base * 0.3,
		ConvectionVelocity:  0,
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
