// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrator

import "github.com/1amageek/gotenx/internal/array"

// HeatingSensitivity computes d(W_thermal)/d(scale) at scale=1 for the toy
// loss W_thermal(scale) = sum_i 1.5*density_i*(ti_i+te_i)*scale*volume_i*e,
// the §4.10 gradient-preserving mode's simplest exercised case: scaling
// every cell's heating contribution uniformly and differentiating the
// resulting stored energy with respect to that scale through the tape-
// based engine rather than the Newton-solved pipeline (§9's note that the
// full transport/source graph is not taped end to end).
func HeatingSensitivity(density, ti, te, volume []float64, elementaryCharge float64) (value float64, gradient float64) {
	n := len(density)
	loss := func(xs []*array.Value) *array.Value {
		scale := xs[0]
		total := array.Const(0)
		for i := 0; i < n; i++ {
			cell := array.Const(1.5 * density[i] * (ti[i] + te[i]) * volume[i] * elementaryCharge)
			total = total.Add(cell.Mul(scale))
		}
		return total
	}
	v, grad := array.Grad(loss, []float64{1.0})
	return v, grad[0]
}
