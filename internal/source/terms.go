// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source implements the pluggable source-model pipeline (§4.4):
// fusion, ohmic heating, ion-electron exchange, radiation, ECRH, gas puff,
// pedestal, and the composite aggregator that drives them from the
// orchestrator. Every model speaks physics units (MW/m^3); the solver-unit
// conversion happens only at the coefficient builder (§4.5, §9).
package source

// Category is the closed set of source-model categories that drives
// metadata aggregation (§9: "closed-set tagged variants ... categorisation
// matters").
type Category int

const (
	Fusion Category = iota
	Auxiliary
	Ohmic
	Radiation
	Other
)

func (c Category) String() string {
	switch c {
	case Fusion:
		return "fusion"
	case Auxiliary:
		return "auxiliary"
	case Ohmic:
		return "ohmic"
	case Radiation:
		return "radiation"
	default:
		return "other"
	}
}

// Metadata is one model's integrated scalar contribution, in watts.
type Metadata struct {
	Name        string
	Category    Category
	IonPower    float64 // [W]
	ElectronPower float64 // [W]
	AlphaPower  float64 // [W], fusion models only; zero otherwise
}

// Terms is the per-cell source-density bundle a model (or the composite)
// produces. Densities are always in physics units: MW/m^3 for heating,
// m^-3 s^-1 for particles, A/m^2 for current. Metadata is always present,
// possibly empty — callers never observe a nil slice semantically, only
// len(Metadata) == 0.
type Terms struct {
	IonHeating      []float64 // [MW/m^3]
	ElectronHeating []float64 // [MW/m^3]
	ParticleSource  []float64 // [m^-3 s^-1]
	CurrentSource   []float64 // [A/m^2]
	Metadata        []Metadata
}

// Zero returns a zero-valued Terms of length n with empty-but-present
// metadata, the contract required for an empty composite (§3, §4.4).
func Zero(n int) Terms {
	return Terms{
		IonHeating:      make([]float64, n),
		ElectronHeating: make([]float64, n),
		ParticleSource:  make([]float64, n),
		CurrentSource:   make([]float64, n),
		Metadata:        []Metadata{},
	}
}

// Add returns the elementwise sum of t and o's densities and the
// concatenation of their metadata, the additivity invariant in §3/§8.
func (t Terms) Add(o Terms) Terms {
	n := len(t.IonHeating)
	out := Zero(n)
	for i := 0; i < n; i++ {
		out.IonHeating[i] = t.IonHeating[i] + o.IonHeating[i]
		out.ElectronHeating[i] = t.ElectronHeating[i] + o.ElectronHeating[i]
		out.ParticleSource[i] = t.ParticleSource[i] + o.ParticleSource[i]
		out.CurrentSource[i] = t.CurrentSource[i] + o.CurrentSource[i]
	}
	out.Metadata = append(append([]Metadata{}, t.Metadata...), o.Metadata...)
	return out
}

// IntegratedPower sums a category's metadata entries into
// (ion_power + electron_power), the exact-equality invariant in §8 item 11.
func (t Terms) IntegratedPower(cat Category) float64 {
	var total float64
	for _, m := range t.Metadata {
		if m.Category == cat {
			total += m.IonPower + m.ElectronPower
		}
	}
	return total
}
