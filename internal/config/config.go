// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the layered simulation configuration described
// in §6: a JSON file (gofem's inp.ReadSim-style decode) provides the base,
// environment variables override it, and CLI flags (wired by cmd/gotenx)
// override both. Defaults fill anything left unset.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Geometry mirrors geometry.Params with JSON tags for file-based config.
type Geometry struct {
	N             int       `json:"n"`
	MajorRadius   float64   `json:"major_radius"`
	MinorRadius   float64   `json:"minor_radius"`
	ToroidalField float64   `json:"toroidal_field"`
	SafetyFactor  []float64 `json:"safety_factor,omitempty"`
}

// ModelSpec names a registered transport/source model plus its parameters,
// the JSON encoding of the registry pattern both internal/transport and
// internal/source use.
type ModelSpec struct {
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params,omitempty"`
}

// Time configures the adaptive step controller (§4.8). MinDt is retained
// as a deprecated alias for MinDtFraction*MaxDt: configurations written
// before MinDtFraction existed keep working unchanged.
type Time struct {
	Safety        float64  `json:"safety"`
	GrowthCap     float64  `json:"growth_cap"`
	MaxDt         float64  `json:"max_dt"`
	MinDt         *float64 `json:"min_dt,omitempty"`          // deprecated: prefer MinDtFraction
	MinDtFraction float64  `json:"min_dt_fraction,omitempty"`
	EndTime       float64  `json:"end_time"`
	MaxSteps      int      `json:"max_steps"`
}

// Boundary mirrors coeffs.Boundary for JSON configuration.
type Boundary struct {
	Kind  string  `json:"kind"` // "dirichlet" or "neumann"
	Value float64 `json:"value"`
}

// EquationBoundaries mirrors coeffs.EquationBoundaries.
type EquationBoundaries struct {
	Lo Boundary `json:"lo"`
	Hi Boundary `json:"hi"`
}

// Boundaries bundles all four equations' boundary configuration.
type Boundaries struct {
	IonTemperature      EquationBoundaries `json:"ion_temperature"`
	ElectronTemperature EquationBoundaries `json:"electron_temperature"`
	ElectronDensity     EquationBoundaries `json:"electron_density"`
	PoloidalFlux        EquationBoundaries `json:"poloidal_flux"`
}

// InitialProfiles configures the starting condition (§6): either an
// explicit per-cell array for each field (IonTemperature's length must
// match geometry.N) or the parameters of a peaked parabolic generator.
// An explicit IonTemperature array, when present, takes precedence over
// every generator field.
type InitialProfiles struct {
	IonTemperature      []float64 `json:"ion_temperature,omitempty"`
	ElectronTemperature []float64 `json:"electron_temperature,omitempty"`
	ElectronDensity     []float64 `json:"electron_density,omitempty"`
	PoloidalFlux        []float64 `json:"poloidal_flux,omitempty"`

	CoreIonTemperature      float64 `json:"core_ion_temperature,omitempty"`
	EdgeIonTemperature      float64 `json:"edge_ion_temperature,omitempty"`
	CoreElectronTemperature float64 `json:"core_electron_temperature,omitempty"`
	EdgeElectronTemperature float64 `json:"edge_electron_temperature,omitempty"`
	CoreDensity             float64 `json:"core_density,omitempty"`
	EdgeDensity             float64 `json:"edge_density,omitempty"`
	Alpha                   float64 `json:"alpha,omitempty"`
}

// Explicit reports whether the caller supplied a full explicit array
// override rather than generator parameters.
func (ip InitialProfiles) Explicit() bool { return ip.IonTemperature != nil }

// Config is the top-level simulation configuration a JSON file or `gotenx
// run` flags populate (§6).
type Config struct {
	Key              string          `json:"key"`
	Geometry         Geometry        `json:"geometry"`
	Transport        ModelSpec       `json:"transport"`
	Sources          []ModelSpec     `json:"sources"`
	Time             Time            `json:"time"`
	Boundaries       Boundaries      `json:"boundaries"`
	InitialProfiles  InitialProfiles `json:"initial_profiles,omitempty"`
	DensityFloor     float64         `json:"density_floor,omitempty"`
	Debug            bool            `json:"debug,omitempty"`
	RenormalizeEvery int             `json:"renormalize_every,omitempty"`
}

// SetDefault fills every zero-valued field with the §4.8/§4.11 defaults,
// the same "SetDefault before unmarshal" idiom gofem's inp.ReadSim uses so
// a partially-specified file only overrides what it actually names.
func (c *Config) SetDefault() {
	if c.Time.Safety == 0 {
		c.Time.Safety = 0.5
	}
	if c.Time.GrowthCap == 0 {
		c.Time.GrowthCap = 1.2
	}
	if c.Time.MinDtFraction == 0 && c.Time.MinDt == nil {
		c.Time.MinDtFraction = 0.001
	}
	if c.DensityFloor == 0 {
		c.DensityFloor = 1e16
	}
	if c.RenormalizeEvery == 0 {
		c.RenormalizeEvery = 1000
	}
}

// Read loads a Config from a JSON file, applies defaults before decoding
// (so a short file only overrides the fields it names), then layers
// GOTENX_-prefixed environment variables on top, mirroring gofem's
// inp.ReadSim decode-then-patch structure.
func Read(path string) (*Config, error) {
	var c Config
	c.SetDefault()

	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("config: cannot read %q: %v", path, err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, chk.Err("config: cannot unmarshal %q: %v", path, err)
	}

	applyEnvOverrides(&c)
	return &c, nil
}

// applyEnvOverrides layers GOTENX_-prefixed environment variables over a
// decoded Config, the env tier of the CLI > env > file > defaults stack
// (§6). Only the handful of fields operators commonly override at deploy
// time are wired; anything else is file- or flag-only.
func applyEnvOverrides(c *Config) {
	if v, ok := os.LookupEnv("GOTENX_MAX_DT"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Time.MaxDt = f
		}
	}
	if v, ok := os.LookupEnv("GOTENX_END_TIME"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Time.EndTime = f
		}
	}
	if v, ok := os.LookupEnv("GOTENX_MAX_STEPS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Time.MaxSteps = n
		}
	}
	if v, ok := os.LookupEnv("GOTENX_DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// MinDtValue resolves the deprecated MinDt override against MinDtFraction,
// returning the effective floor in seconds.
func (t Time) MinDtValue() float64 {
	if t.MinDt != nil {
		return *t.MinDt
	}
	frac := t.MinDtFraction
	if frac <= 0 {
		frac = 0.001
	}
	return t.MaxDt * frac
}
