// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrator

import (
	"github.com/1amageek/gotenx/internal/diagnostics"
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/source"
	"github.com/1amageek/gotenx/internal/tolerance"
	"github.com/google/uuid"
)

// Snapshot is one sampled instant: profiles plus the derived scalars named
// in §6's SimulationResult (fusion power, alpha power, auxiliary power,
// ohmic power, radiation power, Q_fusion, W_thermal, tau_E, beta_N, Ip).
type Snapshot struct {
	Time               float64
	Profiles           *profiles.Profiles
	FusionPower        float64
	AlphaPower         float64
	AuxiliaryPower     float64
	OhmicPower         float64
	RadiationPower     float64
	TotalIonHeating    float64
	TotalElectronHeating float64
	Q                  float64
	ThermalEnergy      float64
	TauE               float64
	BetaN              float64
	PlasmaCurrent      float64
}

// SimulationResult is the full §6 output bundle: a run identifier (for
// downstream NetCDF history-attribute correlation), the final profiles,
// a time-indexed snapshot sequence, and run statistics.
type SimulationResult struct {
	RunID     string
	Snapshots []Snapshot
	Final     *profiles.Profiles
	Stats     Stats
}

// NewSnapshot builds a Snapshot from a profiles/geometry/terms triple at
// the given time, computing the derived scalars from internal/diagnostics.
// BetaN and PlasmaCurrent are not computed here and are left zero; no
// caller in this module fills them in.
func NewSnapshot(t float64, p *profiles.Profiles, g *geometry.Geometry, st source.Terms, thresh tolerance.PhysicalThresholds) Snapshot {
	wth := diagnostics.ThermalEnergy(p, g)
	heating := diagnostics.HeatingPower(st, g)
	fusion := diagnostics.FusionPower(st)
	return Snapshot{
		Time:                 t,
		Profiles:             p.Clone(),
		FusionPower:          fusion,
		AlphaPower:           fusion / (1 + 14.1/3.5),
		AuxiliaryPower:       diagnostics.AuxiliaryPower(st),
		OhmicPower:           st.IntegratedPower(source.Ohmic),
		RadiationPower:       st.IntegratedPower(source.Radiation),
		TotalIonHeating:      sumPositive(st.IonHeating),
		TotalElectronHeating: sumPositive(st.ElectronHeating),
		Q:                    diagnostics.Q(st, thresh),
		ThermalEnergy:        wth,
		TauE:                 diagnostics.TauE(wth, heating, thresh),
		BetaN:                0, // not computed; see the NewSnapshot doc
		PlasmaCurrent:        0,
	}
}

func sumPositive(s []float64) float64 {
	sum := 0.0
	for _, v := range s {
		if v > 0 {
			sum += v
		}
	}
	return sum
}

// NewRunID mints a run identifier for a SimulationResult, per §6's NetCDF
// history-attribute correlation requirement.
func NewRunID() string {
	return uuid.NewString()
}
