// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	cfgpkg "github.com/1amageek/gotenx/internal/config"
	"github.com/1amageek/gotenx/internal/gerr"
	"github.com/1amageek/gotenx/internal/timestep"
	"github.com/1amageek/gotenx/internal/validate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run pre-simulation configuration checks without simulating",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyLogLevel()
		return runValidate()
	},
}

func runValidate() error {
	if configPath == "" {
		return gerr.New(gerr.Configuration, "config", "no --config path given", "pass --config path/to/config.json")
	}
	c, err := cfgpkg.Read(configPath)
	if err != nil {
		return err
	}

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

	rep := validate.Run(validate.Input{
		Geometry:  g,
		Profiles:  p,
		Transport: tr,
		Sources:   sources,
		Timestep: timestep.Options{
			MaxDt: c.Time.MaxDt,
		},
	})

	fmt.Print(rep.String())
	if !rep.OK() {
		os.Exit(1)
	}
	return nil
}
