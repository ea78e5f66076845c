// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profiles implements the four core-plasma state fields (§3):
// ion temperature, electron temperature, electron density, and poloidal
// magnetic flux. Profiles are owned by the simulation orchestrator and
// cloned defensively before being handed to a transport or source model.
package profiles

import (
	"fmt"
	"math"
)

// DefaultDensityFloor is the minimum electron density [m^-3] enforced
// unless a configuration overrides it (§3).
const DefaultDensityFloor = 1e16

// MinTemperature is the physical clipping floor for both temperature
// fields [eV] (§4.7 step 7).
const MinTemperature = 1.0

// Profiles holds the four state fields, each a length-N vector over cells.
type Profiles struct {
	IonTemperature      []float64 // [eV]
	ElectronTemperature []float64 // [eV]
	ElectronDensity     []float64 // [m^-3]
	PoloidalFlux        []float64 // [Wb]

	DensityFloor float64 // [m^-3], ≥ DefaultDensityFloor
}

// New constructs a Profiles value, validating the positivity/finiteness
// invariants (§3) and defaulting DensityFloor when unset.
func New(ti, te, ne, psi []float64, densityFloor float64) (*Profiles, error) {
	n := len(ti)
	if len(te) != n || len(ne) != n || len(psi) != n {
		return nil, fmt.Errorf("profiles: field length mismatch: Ti=%d Te=%d ne=%d psi=%d", len(ti), len(te), len(ne), len(psi))
	}
	if densityFloor <= 0 {
		densityFloor = DefaultDensityFloor
	}
	p := &Profiles{
		IonTemperature:      append([]float64(nil), ti...),
		ElectronTemperature: append([]float64(nil), te...),
		ElectronDensity:     append([]float64(nil), ne...),
		PoloidalFlux:        append([]float64(nil), psi...),
		DensityFloor:        densityFloor,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Len returns the number of cells.
func (p *Profiles) Len() int { return len(p.IonTemperature) }

// Validate checks the §3 invariants: temperatures > 0, density above the
// floor, and all values finite.
func (p *Profiles) Validate() error {
	for i, t := range p.IonTemperature {
		if !finite(t) {
			return fmt.Errorf("profiles: ion_temperature[%d] is not finite", i)
		}
		if t <= 0 {
			return fmt.Errorf("profiles: ion_temperature[%d]=%g must be > 0", i, t)
		}
	}
	for i, t := range p.ElectronTemperature {
		if !finite(t) {
			return fmt.Errorf("profiles: electron_temperature[%d] is not finite", i)
		}
		if t <= 0 {
			return fmt.Errorf("profiles: electron_temperature[%d]=%g must be > 0", i, t)
		}
	}
	for i, n := range p.ElectronDensity {
		if !finite(n) {
			return fmt.Errorf("profiles: electron_density[%d] is not finite", i)
		}
		if n <= p.DensityFloor {
			return fmt.Errorf("profiles: electron_density[%d]=%g must exceed density_floor=%g", i, n, p.DensityFloor)
		}
	}
	for i, psi := range p.PoloidalFlux {
		if !finite(psi) {
			return fmt.Errorf("profiles: poloidal_flux[%d] is not finite", i)
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Clone returns a cheap, independent copy: each field's backing array is
// duplicated so a source or transport model may read it without ever
// observing a mutation the orchestrator makes after the call returns.
func (p *Profiles) Clone() *Profiles {
	return &Profiles{
		IonTemperature:      append([]float64(nil), p.IonTemperature...),
		ElectronTemperature: append([]float64(nil), p.ElectronTemperature...),
		ElectronDensity:     append([]float64(nil), p.ElectronDensity...),
		PoloidalFlux:        append([]float64(nil), p.PoloidalFlux...),
		DensityFloor:        p.DensityFloor,
	}
}

// ClipPhysicalFloors enforces T ≥ MinTemperature and n_e ≥ DensityFloor in
// place, the §4.7 step-7 physical clipping. newton.Solve applies it once,
// to the converged state; intermediate Newton iterates are not clipped.
// This is the only place profiles are corrected by clipping rather
// than by rejecting the step with an error (§7's "physical floors ...
// enforced by clipping, not by error").
func (p *Profiles) ClipPhysicalFloors() {
	for i := range p.IonTemperature {
		if p.IonTemperature[i] < MinTemperature {
			p.IonTemperature[i] = MinTemperature
		}
	}
	for i := range p.ElectronTemperature {
		if p.ElectronTemperature[i] < MinTemperature {
			p.ElectronTemperature[i] = MinTemperature
		}
	}
	for i := range p.ElectronDensity {
		if p.ElectronDensity[i] < p.DensityFloor {
			p.ElectronDensity[i] = p.DensityFloor
		}
	}
}

// Flatten lays the four fields out as a single (4N)-length vector in
// equation-block order (Ti, Te, ne, psi), matching the Newton solver's
// flattened state layout (§4.7).
func (p *Profiles) Flatten() []float64 {
	n := p.Len()
	x := make([]float64, 4*n)
	copy(x[0:n], p.IonTemperature)
	copy(x[n:2*n], p.ElectronTemperature)
	copy(x[2*n:3*n], p.ElectronDensity)
	copy(x[3*n:4*n], p.PoloidalFlux)
	return x
}

// Unflatten writes a flattened (4N)-length state vector back into a
// Profiles value of the same length.
func (p *Profiles) Unflatten(x []float64) {
	n := p.Len()
	copy(p.IonTemperature, x[0:n])
	copy(p.ElectronTemperature, x[n:2*n])
	copy(p.ElectronDensity, x[2*n:3*n])
	copy(p.PoloidalFlux, x[3*n:4*n])
}
