// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package residual

import (
	"testing"

	"github.com/1amageek/gotenx/internal/coeffs"
	"github.com/stretchr/testify/require"
)

func uniformEquation(n int) coeffs.EquationCoeffs {
	return coeffs.EquationCoeffs{
		TransientIn:  constField(n, 1.0),
		TransientOut: constField(n, 1.0),
		Diffusion:    constField(n+1, 1.0),
		Convection:   make([]float64, n+1),
		Source:       make([]float64, n),
		Boundaries: coeffs.EquationBoundaries{
			Lo: coeffs.Boundary{Kind: coeffs.Neumann, Value: 0},
			Hi: coeffs.Boundary{Kind: coeffs.Neumann, Value: 0},
		},
	}
}

func TestSystemAssemblesFourBlocksInCanonicalOrder(t *testing.T) {
	g := newTestGeometry(t)
	n := g.N
	all := coeffs.All{
		IonTemperature:      uniformEquation(n),
		ElectronTemperature: uniformEquation(n),
		ElectronDensity:     uniformEquation(n),
		PoloidalFlux:        uniformEquation(n),
	}

	x := make([]float64, 4*n)
	for i := range x {
		x[i] = 500.0
	}

	r := System(x, x, all, g, 1.0)
	require.Len(t, r, 4*n)
	for i, v := range r {
		require.InDeltaf(t, 0.0, v, 1e-8, "index %d", i)
	}
}

func TestJacobianFDProducesFiniteSquareMatrix(t *testing.T) {
	g := newTestGeometry(t)
	n := g.N
	all := coeffs.All{
		IonTemperature:      uniformEquation(n),
		ElectronTemperature: uniformEquation(n),
		ElectronDensity:     uniformEquation(n),
		PoloidalFlux:        uniformEquation(n),
	}

	m := 4 * n
	x := make([]float64, m)
	for i := range x {
		x[i] = 500.0 + float64(i)
	}

	jac, err := JacobianFD(x, x, all, g, 1.0, 1e-6)
	require.NoError(t, err)
	require.Len(t, jac, m*m)
	for i, v := range jac {
		require.Falsef(t, v != v, "NaN at %d", i)
	}

	// the transient term d(TransientOut*x/dt)/dx and the diffusive coupling
	// both add positively to the diagonal entry of each row.
	require.Greater(t, jac[0*m+0], 0.0)
}
