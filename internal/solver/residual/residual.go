// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package residual implements the spatial operator (§4.7 step 2): the
// semi-discrete residual R(x) of the four coupled equations, assembled
// equation by equation using the metric flux-divergence form, and its
// finite-difference Jacobian fallback.
package residual

import (
	"github.com/1amageek/gotenx/internal/coeffs"
	"github.com/1amageek/gotenx/internal/geometry"
)

// Equation assembles R(x) for a single cell-centred field given its
// coefficients, the geometry, dt, and the old (start-of-step) field value.
// R_i = (x_i - xOld_i)*transient_i/dt - divergence(flux)_i - source_i,
// using the metric form (1/g0) d(g0*F)/drho with g0 interpolated to faces
// (§4.5).
func Equation(x, xOld []float64, c coeffs.EquationCoeffs, g *geometry.Geometry, dt float64) []float64 {
	n := len(x)
	r := make([]float64, n)

	flux := faceFlux(x, c, g)

	drho := 1.0 / float64(g.N)
	for i := 0; i < n; i++ {
		divergence := (g.G0Face[i+1]*flux[i+1] - g.G0Face[i]*flux[i]) / (g.G0[i] * drho)
		transientTerm := c.TransientOut[i]*x[i]/dt - c.TransientIn[i]*xOld[i]/dt
		r[i] = transientTerm - divergence - c.Source[i]
	}
	return r
}

// faceFlux computes the total flux D*dx/drho - v*x at every face, the
// quantity whose divergence Equation subtracts,
// encoding the boundary descriptors into the two end faces via their ghost
// cell treatment (§4.6), and using the Patankar power-law scheme at
// internal faces (§4.5).
func faceFlux(x []float64, c coeffs.EquationCoeffs, g *geometry.Geometry) []float64 {
	n := len(x)
	flux := make([]float64, n+1)

	for i := 1; i < n; i++ {
		dx := g.CellDistance[i-1]
		grad := (x[i] - x[i-1]) / dx
		diffusiveFlux := c.Diffusion[i] * grad

		pe := coeffs.Peclet(c.Convection[i], dx, c.Diffusion[i])
		alpha := coeffs.PowerLawWeight(pe)
		up, down := coeffs.FaceUpwindDownwind(c.Convection[i], x[i-1], x[i])
		xFace := coeffs.FaceValue(alpha, up, down)
		convectiveFlux := -c.Convection[i] * xFace

		flux[i] = diffusiveFlux + convectiveFlux
	}

	// boundary faces: ghost-cell treatment per the equation's descriptors.
	halfDx0 := g.CellDistance[0] / 2
	faceValLo, ghostCoeffLo := c.Boundaries.Lo.ApplyGhost(x[0], halfDx0, c.Diffusion[0])
	flux[0] = ghostCoeffLo * (x[0] - faceValLo)

	halfDxN := g.CellDistance[n-2] / 2
	faceValHi, ghostCoeffHi := c.Boundaries.Hi.ApplyGhost(x[n-1], halfDxN, c.Diffusion[n])
	flux[n] = ghostCoeffHi * (faceValHi - x[n-1])

	return flux
}
