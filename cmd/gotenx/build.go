// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/1amageek/gotenx/internal/coeffs"
	cfgpkg "github.com/1amageek/gotenx/internal/config"
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/source"
	"github.com/1amageek/gotenx/internal/transport"
)

// buildGeometry constructs a geometry.Geometry from the config's Geometry
// block.
func buildGeometry(c cfgpkg.Geometry) (*geometry.Geometry, error) {
	return geometry.New(geometry.Params{
		N:             c.N,
		MajorRadius:   c.MajorRadius,
		MinorRadius:   c.MinorRadius,
		ToroidalField: c.ToroidalField,
		SafetyFactor:  c.SafetyFactor,
	})
}

// buildTransport constructs the configured transport model by name.
func buildTransport(spec cfgpkg.ModelSpec) (transport.Model, error) {
	return transport.New(spec.Name, spec.Params)
}

// buildSources constructs the source composite from the ordered list of
// model specs.
func buildSources(specs []cfgpkg.ModelSpec) (*source.Composite, error) {
	models := make([]source.Model, 0, len(specs))
	for _, s := range specs {
		m, err := source.New(s.Name, s.Params)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", s.Name, err)
		}
		models = append(models, m)
	}
	return source.NewComposite(models...), nil
}

// buildBoundaries converts the JSON boundary configuration into
// coeffs.Boundaries.
func buildBoundaries(b cfgpkg.Boundaries) coeffs.Boundaries {
	return coeffs.Boundaries{
		IonTemperature:      buildEquationBoundaries(b.IonTemperature),
		ElectronTemperature: buildEquationBoundaries(b.ElectronTemperature),
		ElectronDensity:     buildEquationBoundaries(b.ElectronDensity),
		PoloidalFlux:        buildEquationBoundaries(b.PoloidalFlux),
	}
}

func buildEquationBoundaries(eb cfgpkg.EquationBoundaries) coeffs.EquationBoundaries {
	return coeffs.EquationBoundaries{
		Lo: buildBoundary(eb.Lo),
		Hi: buildBoundary(eb.Hi),
	}
}

func buildBoundary(b cfgpkg.Boundary) coeffs.Boundary {
	kind := coeffs.Neumann
	if b.Kind == "dirichlet" {
		kind = coeffs.Dirichlet
	}
	return coeffs.Boundary{Kind: kind, Value: b.Value}
}

// defaultSauter returns the §4.5 default Sauter bootstrap-current
// coefficients; a future config field can override these per-run.
func defaultSauter() coeffs.SauterCoefficients {
	return coeffs.DefaultSauterCoefficients()
}

// buildInitialProfiles constructs the starting condition from the config's
// initial_profiles block. An explicit ion_temperature array takes over the
// whole condition (all four arrays must then be present and match the
// geometry's cell count); otherwise a peaked parabolic generator runs
// using whatever generator fields were given, defaulting the rest.
func buildInitialProfiles(g *geometry.Geometry, densityFloor float64, ip cfgpkg.InitialProfiles) (*profiles.Profiles, error) {
	if ip.Explicit() {
		if n := len(ip.IonTemperature); n != g.N {
			return nil, fmt.Errorf("initial_profiles: ion_temperature has length %d, want %d (geometry.n)", n, g.N)
		}
		return profiles.New(ip.IonTemperature, ip.ElectronTemperature, ip.ElectronDensity, ip.PoloidalFlux, densityFloor)
	}

	gen := profiles.Peaked{
		CoreIonTemperature:      10000,
		EdgeIonTemperature:      100,
		CoreElectronTemperature: 10000,
		EdgeElectronTemperature: 100,
		CoreDensity:             1e20,
		EdgeDensity:             densityFloor * 2,
		Alpha:                   1,
	}
	if ip.CoreIonTemperature != 0 {
		gen.CoreIonTemperature = ip.CoreIonTemperature
	}
	if ip.EdgeIonTemperature != 0 {
		gen.EdgeIonTemperature = ip.EdgeIonTemperature
	}
	if ip.CoreElectronTemperature != 0 {
		gen.CoreElectronTemperature = ip.CoreElectronTemperature
	}
	if ip.EdgeElectronTemperature != 0 {
		gen.EdgeElectronTemperature = ip.EdgeElectronTemperature
	}
	if ip.CoreDensity != 0 {
		gen.CoreDensity = ip.CoreDensity
	}
	if ip.EdgeDensity != 0 {
		gen.EdgeDensity = ip.EdgeDensity
	}
	if ip.Alpha != 0 {
		gen.Alpha = ip.Alpha
	}
	return gen.Generate(g.Rho, densityFloor)
}
