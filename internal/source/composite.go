// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"github.com/1amageek/gotenx/internal/gerr"
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
)

// Composite holds an ordered collection of source models and aggregates
// their contributions by elementwise sum and metadata concatenation
// (§4.4). An empty Composite returns zero densities and empty-but-present
// metadata (§3's additivity invariant, §8 item 4).
type Composite struct {
	models []Model
}

// NewComposite returns a Composite over the given models, in order.
func NewComposite(models ...Model) *Composite {
	return &Composite{models: append([]Model(nil), models...)}
}

// ComputeTerms aggregates every model's contribution. If an individual
// model fails, the composite substitutes a zero-valued Terms (with an
// empty metadata entry) for that model, logs the failure, and continues —
// the orchestrator never aborts a step because one physics model raised an
// error (§4.4, §7's "physics model errors" recovery policy).
func (c *Composite) ComputeTerms(p *profiles.Profiles, g *geometry.Geometry) (Terms, error) {
	n := p.Len()
	total := Zero(n)
	for _, m := range c.models {
		t, err := m.ComputeTerms(p, g)
		if err != nil {
			gerr.Log.WithField("model", m.Name()).WithError(err).
				Warn("source model failed; substituting zero contribution")
			t = Zero(n)
		}
		if gerr.Debug {
			assertMagnitude(m.Name(), t)
		}
		total = total.Add(t)
	}
	return total, nil
}

// Models returns the ordered collection, read-only.
func (c *Composite) Models() []Model { return c.models }

// maxPlausibleHeating is the §4.5/§4.12 debug-only unit guard: SourceTerms
// heating above this magnitude in MW/m^3 almost certainly indicates a
// MW<->eV unit-conversion mistake made before crossing the coefficient
// builder's barrier.
const maxPlausibleHeating = 1000.0

func assertMagnitude(name string, t Terms) {
	for _, v := range t.IonHeating {
		gerr.Assert(v < maxPlausibleHeating, "source %q: ion heating %g MW/m^3 exceeds plausibility guard %g", name, v, maxPlausibleHeating)
	}
	for _, v := range t.ElectronHeating {
		gerr.Assert(v < maxPlausibleHeating, "source %q: electron heating %g MW/m^3 exceeds plausibility guard %g", name, v, maxPlausibleHeating)
	}
}
