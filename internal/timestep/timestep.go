// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timestep implements the adaptive CFL-based time-step controller
// described in §4.8: a diffusive CFL estimate from the current transport
// coefficients, a bounded per-step growth rate, and absolute floor/ceiling
// clamps.
package timestep

import "math"

// Options configures the controller (§4.8).
type Options struct {
	Safety        float64  // CFL safety factor, default 0.5
	GrowthCap     float64  // max multiplicative growth per step, default 1.2
	MaxDt         float64  // absolute ceiling [s]
	MinDt         *float64 // optional explicit floor [s]; overrides MinDtFraction when set
	MinDtFraction float64  // floor = MaxDt * MinDtFraction when MinDt is nil, default 0.001
}

// DefaultOptions returns the §4.8 defaults given a required MaxDt.
func DefaultOptions(maxDt float64) Options {
	return Options{
		Safety:        0.5,
		GrowthCap:     1.2,
		MaxDt:         maxDt,
		MinDtFraction: 0.001,
	}
}

// Controller tracks the previous step's dt to enforce the growth cap.
type Controller struct {
	opt     Options
	prevDt  float64
	started bool
}

// New constructs a Controller.
func New(opt Options) *Controller {
	return &Controller{opt: opt}
}

func (c *Controller) floor() float64 {
	if c.opt.MinDt != nil {
		return *c.opt.MinDt
	}
	frac := c.opt.MinDtFraction
	if frac <= 0 {
		frac = 0.001
	}
	return c.opt.MaxDt * frac
}

// Next computes the next dt from the largest face-valued diffusivity
// chiMax (see MaxOf) and the minimum cell spacing dxMin: dt_CFL = safety * dxMin^2 / (2*chiMax),
// clamped to [floor, MaxDt] and to at most GrowthCap times the previous
// step's dt (§4.8).
func (c *Controller) Next(dxMin float64, chiMax float64) float64 {
	chiMax = math.Max(chiMax, 1e-12)
	dtCFL := c.opt.Safety * dxMin * dxMin / (2 * chiMax)

	dt := math.Min(dtCFL, c.opt.MaxDt)
	if c.started {
		dt = math.Min(dt, c.prevDt*c.opt.GrowthCap)
	}
	floor := c.floor()
	if dt < floor {
		dt = floor
	}
	if dt > c.opt.MaxDt {
		dt = c.opt.MaxDt
	}

	c.prevDt = dt
	c.started = true
	return dt
}

// Reset clears growth-cap history, e.g. after a convergence-failure
// step-size retreat that should not be constrained by the pre-failure dt.
func (c *Controller) Reset() {
	c.started = false
	c.prevDt = 0
}

// MaxOf returns the largest of the three face-valued diffusivity arrays'
// maxima, the chiMax the CFL estimate is built from.
func MaxOf(chiIon, chiElectron, particleDiffusivity []float64) float64 {
	m := 0.0
	for _, s := range [][]float64{chiIon, chiElectron, particleDiffusivity} {
		for _, v := range s {
			if v > m {
				m = v
			}
		}
	}
	return m
}
