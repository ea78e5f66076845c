// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"fmt"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
)

// Model is the capability set every source model implements (§4.4):
// compute per-cell physics-unit densities plus one metadata entry per
// invocation. Models must be pure with respect to their arguments — no
// hidden mutation of profiles or geometry (§5's shared-resource policy).
type Model interface {
	Name() string
	ComputeTerms(p *profiles.Profiles, g *geometry.Geometry) (Terms, error)
}

// allocators is the model registry, the same shape as gofem's
// mconduct/mdl-gen `map[string]func() Model` pattern (DESIGN.md).
var allocators = map[string]func(params map[string]float64) (Model, error){}

// Register adds a named model constructor to the registry. Built-in models
// call this from an init() in their own file, mirroring the teacher.
func Register(name string, allocator func(params map[string]float64) (Model, error)) {
	allocators[name] = allocator
}

// New constructs a registered model by name with the given parameters.
func New(name string, params map[string]float64) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("source: model %q is not registered", name)
	}
	return allocator(params)
}
