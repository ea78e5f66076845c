// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transport implements the pluggable transport-coefficient models
// (§4.3): constant, Bohm-GyroBohm, critical-gradient/ITG, a QLKNN-style
// opaque surrogate, and a density-transition blend. Every model returns
// face-valued diffusivities and a convection velocity in SI units.
package transport

import (
	"fmt"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
)

// Coefficients holds the four face-valued transport quantities (§3),
// length N+1.
type Coefficients struct {
	ChiIon               []float64 // [m^2/s]
	ChiElectron          []float64 // [m^2/s]
	ParticleDiffusivity  []float64 // [m^2/s]
	ConvectionVelocity   []float64 // [m/s]
}

// chiMin and chiMax are the clipping bounds the density-transition model's
// invariant names (§4.3); applied uniformly so every model returns finite,
// non-negative, bounded diffusivities.
const (
	chiMin = 1e-6
	chiMax = 100.0
)

// Clip bounds every diffusivity to [chiMin, chiMax] and every convection
// velocity to a finite range, enforcing the §4.3 invariant regardless of
// which model produced the coefficients.
func (c *Coefficients) Clip() {
	clipSlice(c.ChiIon, chiMin, chiMax)
	clipSlice(c.ChiElectron, chiMin, chiMax)
	clipSlice(c.ParticleDiffusivity, chiMin, chiMax)
	clipSlice(c.ConvectionVelocity, -1e4, 1e4)
}

func clipSlice(s []float64, lo, hi float64) {
	for i, v := range s {
		if v < lo || !isFinite(v) {
			s[i] = lo
		} else if v > hi {
			s[i] = hi
		}
	}
}

func isFinite(x float64) bool {
	return x == x && x > -1e308 && x < 1e308
}

// Model is the capability set every transport model implements (§4.3).
type Model interface {
	Name() string
	ComputeCoefficients(p *profiles.Profiles, g *geometry.Geometry) (Coefficients, error)
}

// allocators is the model registry, the same shape as the source package's
// and gofem's mconduct registry (DESIGN.md).
var allocators = map[string]func(params map[string]float64) (Model, error){}

// Register adds a named model constructor to the registry.
func Register(name string, allocator func(params map[string]float64) (Model, error)) {
	allocators[name] = allocator
}

// New constructs a registered transport model by name.
func New(name string, params map[string]float64) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("transport: model %q is not registered", name)
	}
	return allocator(params)
}

func getOr(m map[string]float64, key string, def float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
