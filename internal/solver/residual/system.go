// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package residual

import (
	"github.com/1amageek/gotenx/internal/array"
	"github.com/1amageek/gotenx/internal/coeffs"
	"github.com/1amageek/gotenx/internal/geometry"
)

// System assembles the full flattened residual R(x) ∈ R^(4N) in
// equation-block order (Ti, Te, ne, psi), matching profiles.Flatten's
// layout (§4.7).
func System(x, xOld []float64, all coeffs.All, g *geometry.Geometry, dt float64) []float64 {
	n := g.N
	r := make([]float64, 4*n)
	copy(r[0:n], Equation(x[0:n], xOld[0:n], all.IonTemperature, g, dt))
	copy(r[n:2*n], Equation(x[n:2*n], xOld[n:2*n], all.ElectronTemperature, g, dt))
	copy(r[2*n:3*n], Equation(x[2*n:3*n], xOld[2*n:3*n], all.ElectronDensity, g, dt))
	copy(r[3*n:4*n], Equation(x[3*n:4*n], xOld[3*n:4*n], all.PoloidalFlux, g, dt))
	return r
}

// JacobianFD assembles the dense (4N)x(4N) Jacobian of System by forward
// finite differences, one column per state component. Each column is an
// independent evaluation of System; per §5's mandatory eval rule for
// independent-iteration loops, every column's result is wrapped in an
// array.Array and materialised (Eval) before the next column starts, so no
// pending computation graph can accumulate across the loop.
func JacobianFD(x, xOld []float64, all coeffs.All, g *geometry.Geometry, dt float64, eps float64) ([]float64, error) {
	m := len(x)
	r0 := System(x, xOld, all, g, dt)
	jac := make([]float64, m*m)

	for j := 0; j < m; j++ {
		xp := append([]float64(nil), x...)
		step := eps * maxAbs(x[j], 1)
		xp[j] += step

		rp := System(xp, xOld, all, g, dt)

		// materialise this column's result before moving to column j+1,
		// per the package contract.
		col := array.New(toFloat32(rp), array.CPU)
		evaluated, err := col.Eval()
		if err != nil {
			return nil, err
		}
		colData := evaluated.Data()

		for i := 0; i < m; i++ {
			jac[i*m+j] = (float64(colData[i]) - r0[i]) / step
		}
	}
	return jac, nil
}

func maxAbs(v, floor float64) float64 {
	a := v
	if a < 0 {
		a = -a
	}
	if a < floor {
		return floor
	}
	return a
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
