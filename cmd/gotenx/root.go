// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/1amageek/gotenx/internal/gerr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "gotenx",
	Short: "Tokamak plasma core transport simulation engine",
}

// Execute runs the root command, exiting 1 on any error the way the
// teacher's own CLI entrypoints do.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON simulation configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug-build assertions and magnitude guards")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}

func applyLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		gerr.Log.Fatalf("invalid log level: %s", logLevel)
	}
	gerr.Log.SetLevel(level)
	gerr.Debug = debugFlag
}
