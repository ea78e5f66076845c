// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeffs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMWm3ToEVm3sConversionFactor(t *testing.T) {
	// 1 MW/m^3 = 1e6 J/(s*m^3) = 1e6/e eV/(s*m^3)
	got := MWm3ToEVm3s(1.0)
	require.InDelta(t, 6.2415090744e24, got, 1e18)
}

func TestMWm3ToEVm3sIsLinear(t *testing.T) {
	require.InDelta(t, 2*MWm3ToEVm3s(1.0), MWm3ToEVm3s(2.0), 1e10)
	require.Equal(t, 0.0, MWm3ToEVm3s(0))
}

func TestMWm3SliceToEVm3sDoesNotMutateInput(t *testing.T) {
	in := []float64{1, 2, 3}
	out := MWm3SliceToEVm3s(in)
	require.Equal(t, []float64{1, 2, 3}, in)
	require.InDelta(t, MWm3ToEVm3s(2), out[1], 1e10)
}
