// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate implements the pre-simulation configuration checks
// described in §4.10: mesh range checks, a CFL stability estimate, ECRH
// deposition sanity, the fusion fuel-fraction-sum invariant, and (in debug
// builds only) source-magnitude plausibility. Every failure is a
// structured gerr.Error, never a bare string, so cmd/gotenx can render an
// actionable report.
package validate

import (
	"fmt"
	"strings"

	"github.com/1amageek/gotenx/internal/gerr"
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/source"
	"github.com/1amageek/gotenx/internal/timestep"
	"github.com/1amageek/gotenx/internal/transport"
)

const (
	minCells = 10
	maxCells = 500
)

// Report collects every check's outcome: Errors are fatal (Run should
// refuse to proceed), Warnings are informational.
type Report struct {
	Errors   []*gerr.Error
	Warnings []string
}

// OK reports whether the configuration is free of fatal errors.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// String renders a human-readable report, one line per finding, in the
// style of gosl/io's Pf-based summaries the teacher repo uses for its own
// diagnostic dumps.
func (r Report) String() string {
	var b strings.Builder
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "ERROR: %s\n", e.Error())
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "WARNING: %s\n", w)
	}
	if len(r.Errors) == 0 && len(r.Warnings) == 0 {
		b.WriteString("OK: no issues found\n")
	}
	return b.String()
}

// Input bundles everything a pre-run validation pass inspects.
type Input struct {
	Geometry   *geometry.Geometry
	Profiles   *profiles.Profiles
	Transport  transport.Model
	Sources    *source.Composite
	Timestep   timestep.Options
	EcrhPower  map[string]float64 // rho -> power_mw, for deposition-in-domain checks
}

// Run performs every §4.10 check and returns a Report; it never returns a
// Go error itself — every finding is a Report entry so cmd/gotenx can
// render the whole set at once instead of failing fast on the first.
func Run(in Input) Report {
	var rep Report

	checkMeshRange(in.Geometry, &rep)
	checkCFLStability(in.Geometry, in.Timestep, &rep)
	checkFusionFuelFractions(in.Sources, &rep)
	checkECRHDeposition(in.Sources, in.Geometry, &rep)
	if gerr.Debug {
		checkSourceMagnitudes(in.Sources, in.Profiles, in.Geometry, &rep)
	}

	return rep
}

func checkMeshRange(g *geometry.Geometry, rep *Report) {
	if g == nil {
		rep.Errors = append(rep.Errors, gerr.New(gerr.Configuration, "geometry", "geometry is nil", "construct a geometry before validating"))
		return
	}
	if g.N < minCells || g.N > maxCells {
		rep.Errors = append(rep.Errors, gerr.New(gerr.Configuration, "geometry.n",
			fmt.Sprintf("N=%d out of range [%d, %d]", g.N, minCells, maxCells), "choose a cell count within the supported range"))
	}
}

// checkCFLStability warns when the configured MaxDt is far above what a
// typical transport-coefficient magnitude would allow, the common
// misconfiguration of a user porting a time step from a coarser mesh
// (§4.10).
func checkCFLStability(g *geometry.Geometry, opt timestep.Options, rep *Report) {
	if g == nil || g.N < 2 {
		return
	}
	dxMin := g.CellDistance[0]
	for _, d := range g.CellDistance {
		if d < dxMin {
			dxMin = d
		}
	}
	const assumedChi = 10.0 // representative ITG-scale chi [m^2/s]
	dtCFL := 0.5 * dxMin * dxMin / (2 * assumedChi)
	if opt.MaxDt > 50*dtCFL {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf(
			"configured max_dt=%g s is more than 50x the CFL estimate %g s at chi=%g m^2/s; the controller will clamp it but convergence may be slow",
			opt.MaxDt, dtCFL, assumedChi))
	}
}

// checkFusionFuelFractions enforces the §4.4 invariant that a configured
// Fusion model's deuterium+tritium fractions sum to 1 within tolerance.
func checkFusionFuelFractions(sources *source.Composite, rep *Report) {
	if sources == nil {
		return
	}
	for _, m := range sources.Models() {
		f, ok := m.(*source.Fusion)
		if !ok {
			continue
		}
		sum := f.DeuteriumFraction + f.TritiumFraction
		if sum < 0.999999 || sum > 1.000001 {
			rep.Errors = append(rep.Errors, gerr.New(gerr.Configuration, "fusion.fuel_fractions",
				fmt.Sprintf("deuterium_fraction+tritium_fraction=%g, must sum to 1", sum),
				"adjust the fuel fractions to sum to exactly 1"))
		}
	}
}

// checkECRHDeposition warns when a configured ECRH model's deposition rho
// falls outside [0,1] or its width is implausibly large relative to the
// domain, both of which silently spread power outside the intended region.
func checkECRHDeposition(sources *source.Composite, g *geometry.Geometry, rep *Report) {
	if sources == nil {
		return
	}
	for _, m := range sources.Models() {
		e, ok := m.(*source.ECRH)
		if !ok {
			continue
		}
		if e.DepositionRho < 0 || e.DepositionRho > 1 {
			rep.Errors = append(rep.Errors, gerr.New(gerr.Configuration, "ecrh.deposition_rho",
				fmt.Sprintf("deposition_rho=%g outside [0,1]", e.DepositionRho),
				"deposition_rho must lie within the normalised radial domain"))
		}
		if e.Width > 0.5 {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("ecrh width=%g is large relative to the domain; deposition will not be localised", e.Width))
		}
	}
}

// checkSourceMagnitudes runs every configured source model once at the
// given profile and geometry and reports any implausible heating
// magnitude, the debug-only companion to coeffs.DebugMagnitudeGuard
// (§4.12).
func checkSourceMagnitudes(sources *source.Composite, p *profiles.Profiles, g *geometry.Geometry, rep *Report) {
	if sources == nil || p == nil || g == nil {
		return
	}
	const maxPlausibleHeatingMWm3 = 1000.0
	t, err := sources.ComputeTerms(p, g)
	if err != nil {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("source magnitude probe failed: %v", err))
		return
	}
	for _, v := range append(append([]float64{}, t.IonHeating...), t.ElectronHeating...) {
		if v > maxPlausibleHeatingMWm3 {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("peak heating %g MW/m^3 exceeds plausibility guard %g MW/m^3", v, maxPlausibleHeatingMWm3))
			break
		}
	}
}
