// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SolveDense solves the small dense linear system A x = b, where A is
// row-major n*n and b has length n. It is the matrix-vector solve primitive
// named in the array contract (§4.1); callers needing a preconditioned
// Newton step build A and b in float64 (gonum's LU factorisation is
// float64-only) from already-evaluated single-precision arrays and cast the
// solution back.
func SolveDense(n int, a []float64, b []float64) ([]float64, error) {
	if len(a) != n*n {
		return nil, fmt.Errorf("array: SolveDense: matrix has %d entries, want %d", len(a), n*n)
	}
	if len(b) != n {
		return nil, fmt.Errorf("array: SolveDense: rhs has %d entries, want %d", len(b), n)
	}
	A := mat.NewDense(n, n, a)
	B := mat.NewDense(n, 1, b)
	var lu mat.LU
	lu.Factorize(A)
	if ok := lu.Cond() < 1e16; !ok {
		// still attempt the solve; near-singular systems are a solver
		// concern (Newton backs off dt), not an array-layer error.
	}
	var x mat.Dense
	if err := lu.SolveTo(&x, false, B); err != nil {
		return nil, fmt.Errorf("array: SolveDense: %w", err)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.At(i, 0)
	}
	return out, nil
}
