// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orchestrator drives the simulation step loop described in §4.9:
// compute dt, evaluate transport and source models, build coefficients,
// Newton-solve, periodically renormalise for conservation, and sample
// diagnostics. It is the only package that calls internal/solver/newton.
package orchestrator

import (
	"context"
	"time"

	"github.com/1amageek/gotenx/internal/coeffs"
	"github.com/1amageek/gotenx/internal/gerr"
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/solver/newton"
	"github.com/1amageek/gotenx/internal/source"
	"github.com/1amageek/gotenx/internal/timestep"
	"github.com/1amageek/gotenx/internal/tolerance"
	"github.com/1amageek/gotenx/internal/transport"
)

// SampleStrategy selects how often Run invokes the sample callback (§4.9).
type SampleStrategy int

const (
	SampleEveryStep SampleStrategy = iota
	SampleEveryK
	SampleOnDemand
)

// ConservationRenormalizeEvery is the default period (in steps) at which
// Run rescales profiles to restore exact particle/energy conservation
// against accumulated floating-point drift (§4.9, §8 item 11).
const ConservationRenormalizeEvery = 1000

// Config bundles everything a Run call needs beyond the initial profiles.
type Config struct {
	Geometry           *geometry.Geometry
	Transport          transport.Model
	Sources            *source.Composite
	Boundaries         coeffs.Boundaries
	Sauter             coeffs.SauterCoefficients
	Tolerances         tolerance.Set
	NewtonOptions      newton.Options
	Timestep           timestep.Options
	MaxSteps           int
	EndTime            float64
	SampleStrategy     SampleStrategy
	SampleEveryKSteps  int
	RenormalizeEvery   int // 0 defaults to ConservationRenormalizeEvery
	// GradientPreserving is not read by Run: every run uses the adaptive
	// timestep controller, and no separate gradient-preserving mode exists.
	GradientPreserving bool
}

// StepRecord is what Run reports to the sample callback after each
// accepted step.
type StepRecord struct {
	Step       int
	Time       float64
	Dt         float64
	Newton     newton.Result
	Profiles   *profiles.Profiles
	Renormed   bool
}

// Stats summarises a completed run (§4.9's wall-time statistics).
type Stats struct {
	Steps        int
	FinalTime    float64
	WallTime     time.Duration
	Renormalizes int
	Retries      int
}

// Run drives the step loop from t=0 to Config.EndTime (or MaxSteps,
// whichever binds first), calling sample after every step selected by
// SampleStrategy. It honours ctx cancellation cooperatively between steps,
// returning a Cancellation-kind gerr.Error rather than a partial silent
// stop (§5, §7).
func Run(ctx context.Context, p *profiles.Profiles, cfg Config, sample func(StepRecord)) (Stats, error) {
	start := time.Now()
	stats := Stats{}
	renormEvery := cfg.RenormalizeEvery
	if renormEvery <= 0 {
		renormEvery = ConservationRenormalizeEvery
	}

	tsCtl := timestep.New(cfg.Timestep)
	sampler := samplerFor(cfg.SampleStrategy, cfg.SampleEveryKSteps)

	initialParticles := totalParticles(p, cfg.Geometry)
	initialEnergy := totalThermalEnergy(p, cfg.Geometry)

	t := 0.0
	for step := 0; cfg.MaxSteps <= 0 || step < cfg.MaxSteps; step++ {
		select {
		case <-ctx.Done():
			return stats, gerr.Wrap(gerr.Cancellation, "", ctx.Err(), "simulation cancelled by caller")
		default:
		}

		if cfg.EndTime > 0 && t >= cfg.EndTime {
			break
		}

		tc, err := cfg.Transport.ComputeCoefficients(p, cfg.Geometry)
		if err != nil {
			return stats, gerr.Wrap(gerr.PhysicsModel, "transport", err, "transport model failed; check its parameters")
		}
		tc.Clip()

		st, err := cfg.Sources.ComputeTerms(p, cfg.Geometry)
		if err != nil {
			return stats, gerr.Wrap(gerr.PhysicsModel, "source", err, "source composite failed unexpectedly")
		}

		dxMin := minPositive(cfg.Geometry.CellDistance)
		chiMax := timestep.MaxOf(tc.ChiIon, tc.ChiElectron, tc.ParticleDiffusivity)
		dt := tsCtl.Next(dxMin, chiMax)
		if cfg.EndTime > 0 && t+dt > cfg.EndTime {
			dt = cfg.EndTime - t
		}

		all, err := coeffs.Build(p, tc, st, cfg.Geometry, cfg.Boundaries, cfg.Sauter)
		if err != nil {
			return stats, gerr.Wrap(gerr.UnitPlausibility, "coeffs", err, "coefficient builder rejected this step's source terms")
		}

		result, err := newton.Solve(p, all, cfg.Geometry, dt, cfg.Tolerances, cfg.NewtonOptions)
		if err != nil {
			return stats, err
		}
		if !result.Converged {
			return stats, gerr.New(gerr.SolverConvergence, "", "step did not converge", "reduce dt or inspect transport stiffness")
		}

		t += dt
		renormed := false
		if (step+1)%renormEvery == 0 {
			renormalize(p, cfg.Geometry, initialParticles, initialEnergy)
			stats.Renormalizes++
			renormed = true
		}

		stats.Steps++
		stats.FinalTime = t

		if sample != nil && sampler.ShouldSample(step) {
			sample(StepRecord{Step: step, Time: t, Dt: dt, Newton: result, Profiles: p.Clone(), Renormed: renormed})
		}
	}

	stats.WallTime = time.Since(start)
	return stats, nil
}

func minPositive(s []float64) float64 {
	m := -1.0
	for _, v := range s {
		if v > 0 && (m < 0 || v < m) {
			m = v
		}
	}
	if m < 0 {
		return 1e-6
	}
	return m
}

func totalParticles(p *profiles.Profiles, g *geometry.Geometry) float64 {
	sum := 0.0
	for i, n := range p.ElectronDensity {
		sum += n * g.CellVolumes[i]
	}
	return sum
}

func totalThermalEnergy(p *profiles.Profiles, g *geometry.Geometry) float64 {
	const elementaryCharge = 1.602176634e-19
	sum := 0.0
	for i := range p.ElectronDensity {
		sum += 1.5 * p.ElectronDensity[i] * (p.IonTemperature[i] + p.ElectronTemperature[i]) * elementaryCharge * g.CellVolumes[i]
	}
	return sum
}

// renormalize rescales electron density and the temperature fields in
// place by the ratio of the original conserved totals to the current ones,
// bounding long-run floating-point drift accumulated across many implicit
// steps (§4.9, §8 item 11). The correction is a uniform multiplicative
// factor, never a per-cell redistribution, so it does not disturb profile
// shape.
func renormalize(p *profiles.Profiles, g *geometry.Geometry, targetParticles, targetEnergy float64) {
	currentParticles := totalParticles(p, g)
	if currentParticles > 0 {
		ratio := targetParticles / currentParticles
		for i := range p.ElectronDensity {
			p.ElectronDensity[i] *= ratio
		}
	}
	currentEnergy := totalThermalEnergy(p, g)
	if currentEnergy > 0 {
		ratio := targetEnergy / currentEnergy
		for i := range p.IonTemperature {
			p.IonTemperature[i] *= ratio
			p.ElectronTemperature[i] *= ratio
		}
	}
	p.ClipPhysicalFloors()
}
