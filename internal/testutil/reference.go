// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil implements the closed-form reference solutions §8's
// testable properties S1 and S4 check numerical results against, plus an
// RMS error helper.
package testutil

import "math"

// GaussianDiffusion1D returns the analytical solution of
// du/dt = chi * d2u/dx2 on an infinite domain with the initial condition
// u(x,0) = amplitude*exp(-x^2), the S1 reference solution (§8 item 1).
// The closed form follows from convolving the initial Gaussian with the
// diffusion heat kernel: variance grows as sigma0^2 + 2*chi*t, with
// sigma0^2 = 1/2 for exp(-x^2).
func GaussianDiffusion1D(x, t, chi, amplitude float64) float64 {
	sigma0Sq := 0.5
	sigmaSq := sigma0Sq + 2*chi*t
	norm := math.Sqrt(sigma0Sq / sigmaSq)
	return amplitude * norm * math.Exp(-x*x/(2*sigmaSq))
}

// PecletSweepProfile returns the analytical steady-state solution of the
// 1-D convection-diffusion equation v*du/dx = D*d2u/dx2 on [0, L] with
// Dirichlet boundaries u(0)=0, u(L)=1: u(x) = (exp(Pe*x/L)-1)/(exp(Pe)-1),
// the S4 reference solution (§8 item 4). At Pe=0 this is the degenerate
// linear profile x/L, handled as a limit to avoid a 0/0 division.
func PecletSweepProfile(x, length, peclet float64) float64 {
	if math.Abs(peclet) < 1e-9 {
		return x / length
	}
	return (math.Exp(peclet*x/length) - 1) / (math.Exp(peclet) - 1)
}

// RMSError returns the root-mean-square relative error between a computed
// profile and a reference profile of the same length, the metric every
// §8 accuracy property is stated against.
func RMSError(computed, reference []float64) float64 {
	if len(computed) != len(reference) || len(computed) == 0 {
		return math.Inf(1)
	}
	var sumSq, refSumSq float64
	for i := range computed {
		d := computed[i] - reference[i]
		sumSq += d * d
		refSumSq += reference[i] * reference[i]
	}
	if refSumSq == 0 {
		return math.Sqrt(sumSq / float64(len(computed)))
	}
	return math.Sqrt(sumSq / refSumSq)
}
