// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package newton

import (
	"testing"

	"github.com/1amageek/gotenx/internal/coeffs"
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/tolerance"
	"github.com/stretchr/testify/require"
)

func uniformCoeffs(n int) coeffs.EquationCoeffs {
	diff := make([]float64, n+1)
	for i := range diff {
		diff[i] = 1.0
	}
	return coeffs.EquationCoeffs{
		TransientIn:  onesLike(n),
		TransientOut: onesLike(n),
		Diffusion:    diff,
		Convection:   make([]float64, n+1),
		Source:       make([]float64, n),
		Boundaries: coeffs.EquationBoundaries{
			Lo: coeffs.Boundary{Kind: coeffs.Neumann, Value: 0},
			Hi: coeffs.Boundary{Kind: coeffs.Neumann, Value: 0},
		},
	}
}

func onesLike(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1
	}
	return s
}

// This diffusion-only system is linear in x (coefficients do not depend on
// the unknown), so a Newton step with an exact Jacobian converges in a
// single iteration; with the finite-difference Jacobian's truncation error
// the test allows up to three.
func TestSolveConvergesQuicklyOnLinearDiffusionStep(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 10, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)
	n := g.N

	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		ti[i] = 1000 + 10*float64(i)
		te[i] = 1000 + 10*float64(i)
		ne[i] = 1e19
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)

	all := coeffs.All{
		IonTemperature:      uniformCoeffs(n),
		ElectronTemperature: uniformCoeffs(n),
		ElectronDensity:     uniformCoeffs(n),
		PoloidalFlux:        uniformCoeffs(n),
	}

	tol := tolerance.Defaults()
	res, err := Solve(p, all, g, 1e-3, tol, DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.LessOrEqual(t, res.Iterations, 3)
}

func TestSolveReportsConvergenceFailureWithoutPanicking(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 10, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)
	n := g.N

	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		ti[i], te[i], ne[i] = 1000, 1000, 1e19
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)

	all := coeffs.All{
		IonTemperature:      uniformCoeffs(n),
		ElectronTemperature: uniformCoeffs(n),
		ElectronDensity:     uniformCoeffs(n),
		PoloidalFlux:        uniformCoeffs(n),
	}

	opt := DefaultOptions()
	opt.MaxIterations = 0 // force the iteration budget to be exhausted immediately
	tol := tolerance.Defaults()
	// an impossibly tight tolerance plus zero iterations guarantees non-convergence.
	tol.IonTemperature.Absolute = 0
	tol.IonTemperature.Relative = 0
	tol.IonTemperature.MinValueThreshold = 0

	res, err := Solve(p, all, g, 1e-3, tol, opt)
	require.Error(t, err)
	require.False(t, res.Converged)
}
