// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	cfgpkg "github.com/1amageek/gotenx/internal/config"
	"github.com/1amageek/gotenx/internal/gerr"
	"github.com/1amageek/gotenx/internal/orchestrator"
	"github.com/1amageek/gotenx/internal/solver/newton"
	"github.com/1amageek/gotenx/internal/timestep"
	"github.com/1amageek/gotenx/internal/tolerance"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation to completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyLogLevel()
		return runSimulation()
	},
}

func runSimulation() error {
	if configPath == "" {
		return gerr.New(gerr.Configuration, "config", "no --config path given", "pass --config path/to/config.json")
	}
	c, err := cfgpkg.Read(configPath)
	if err != nil {
		return err
	}
	if debugFlag {
		c.Debug = true
	}
	gerr.Debug = c.Debug

	g, err := buildGeometry(c.Geometry)
	if err != nil {
		return gerr.Wrap(gerr.Configuration, "geometry", err, "check geometry parameters")
	}
	tr, err := buildTransport(c.Transport)
	if err != nil {
		return gerr.Wrap(gerr.Configuration, "transport", err, "check the configured transport model name")
	}
	sources, err := buildSources(c.Sources)
	if err != nil {
		return gerr.Wrap(gerr.Configuration, "sources", err, "check the configured source model names")
	}

	p, err := buildInitialProfiles(g, c.DensityFloor, c.InitialProfiles)
	if err != nil {
		return gerr.Wrap(gerr.Configuration, "initial_profiles", err, "check initial profile parameters")
	}

	if maxDtFlag > 0 {
		c.Time.MaxDt = maxDtFlag
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := orchestrator.Config{
		Geometry:         g,
		Transport:        tr,
		Sources:          sources,
		Boundaries:       buildBoundaries(c.Boundaries),
		Sauter:           defaultSauter(),
		Tolerances:       tolerance.Defaults(),
		NewtonOptions:    newton.DefaultOptions(),
		Timestep: timestep.Options{
			Safety:        c.Time.Safety,
			GrowthCap:     c.Time.GrowthCap,
			MaxDt:         c.Time.MaxDt,
			MinDtFraction: c.Time.MinDtFraction,
		},
		MaxSteps:          c.Time.MaxSteps,
		EndTime:           c.Time.EndTime,
		SampleStrategy:    orchestrator.SampleEveryK,
		SampleEveryKSteps: 100,
		RenormalizeEvery:  c.RenormalizeEvery,
	}
	if c.Time.MinDt != nil {
		minDt := c.Time.MinDtValue()
		cfg.Timestep.MinDt = &minDt
	}

	thresh := tolerance.DefaultPhysicalThresholds()
	result := orchestrator.SimulationResult{RunID: orchestrator.NewRunID()}

	stats, err := orchestrator.Run(ctx, p, cfg, func(rec orchestrator.StepRecord) {
		st, termsErr := sources.ComputeTerms(rec.Profiles, g)
		if termsErr != nil {
			gerr.Log.WithField("step", rec.Step).WithError(termsErr).Warn("snapshot source recompute failed; recording profiles only")
		}
		snap := orchestrator.NewSnapshot(rec.Time, rec.Profiles, g, st, thresh)
		result.Snapshots = append(result.Snapshots, snap)
		gerr.Log.WithField("step", rec.Step).WithField("t", rec.Time).WithField("dt", rec.Dt).
			WithField("q", snap.Q).WithField("w_th", snap.ThermalEnergy).Info("snapshot")
	})
	if err != nil {
		return err
	}
	result.Final = p
	result.Stats = stats

	fmt.Printf("run %s complete: steps=%d final_time=%g wall_time=%s snapshots=%d\n",
		result.RunID, stats.Steps, stats.FinalTime, stats.WallTime, len(result.Snapshots))
	if n := len(result.Snapshots); n > 0 {
		last := result.Snapshots[n-1]
		fmt.Printf("final: Q=%g W_th=%g J tau_E=%g s fusion=%g W aux=%g W\n",
			last.Q, last.ThermalEnergy, last.TauE, last.FusionPower, last.AuxiliaryPower)
	}
	return nil
}

func init() {
	runCmd.Flags().Float64Var(&maxDtFlag, "max-dt", 0, "override configured max_dt")
}

var maxDtFlag float64
