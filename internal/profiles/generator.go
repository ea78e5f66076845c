// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiles

import "math"

// Generator builds an initial Profiles value from a normalised radial
// coordinate rho ∈ [0,1] per cell, the "or a profile-generator spec"
// alternative to an explicit initial_profiles array (§6).
type Generator interface {
	Generate(rho []float64, densityFloor float64) (*Profiles, error)
}

// Peaked is a parabolic profile generator: field(rho) = (core-edge)*(1-rho^2)^alpha + edge,
// the standard parametric initial condition for tokamak core simulations.
type Peaked struct {
	CoreIonTemperature      float64
	EdgeIonTemperature      float64
	CoreElectronTemperature float64
	EdgeElectronTemperature float64
	CoreDensity             float64
	EdgeDensity             float64
	Alpha                   float64 // peaking exponent, default 1
	InitialFlux             []float64
}

func (p Peaked) Generate(rho []float64, densityFloor float64) (*Profiles, error) {
	n := len(rho)
	alpha := p.Alpha
	if alpha <= 0 {
		alpha = 1
	}
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	for i, r := range rho {
		shape := math.Pow(math.Max(1-r*r, 0), alpha)
		ti[i] = (p.CoreIonTemperature-p.EdgeIonTemperature)*shape + p.EdgeIonTemperature
		te[i] = (p.CoreElectronTemperature-p.EdgeElectronTemperature)*shape + p.EdgeElectronTemperature
		ne[i] = (p.CoreDensity-p.EdgeDensity)*shape + p.EdgeDensity
	}
	psi := p.InitialFlux
	if psi == nil {
		psi = make([]float64, n)
	}
	return New(ti, te, ne, psi, densityFloor)
}

// Gaussian is a Gaussian-bump profile generator, the S1 test scenario's
// initial condition shape (§8 item 1): field(rho) = amplitude*exp(-(rho/width)^2) + floor.
type Gaussian struct {
	IonTemperatureAmplitude      float64
	ElectronTemperatureAmplitude float64
	DensityAmplitude             float64
	Width                        float64
	TemperatureFloor             float64
	DensityFloorOffset           float64
	InitialFlux                  []float64
}

func (g Gaussian) Generate(rho []float64, densityFloor float64) (*Profiles, error) {
	n := len(rho)
	width := g.Width
	if width <= 0 {
		width = 1
	}
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	for i, r := range rho {
		bump := math.Exp(-(r * r) / (width * width))
		ti[i] = g.IonTemperatureAmplitude*bump + g.TemperatureFloor
		te[i] = g.ElectronTemperatureAmplitude*bump + g.TemperatureFloor
		ne[i] = g.DensityAmplitude*bump + densityFloor + g.DensityFloorOffset
	}
	psi := g.InitialFlux
	if psi == nil {
		psi = make([]float64, n)
	}
	return New(ti, te, ne, psi, densityFloor)
}
