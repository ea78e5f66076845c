// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"testing"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/stretchr/testify/require"
)

func TestECRHDeliversExactlyTheConfiguredTotalPower(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 40, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)
	n := g.N
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		ti[i], te[i], ne[i] = 2000, 2000, 1e19
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)

	m, err := New("ecrh", map[string]float64{"power_mw": 10, "deposition_rho": 0.5, "width": 0.1})
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)

	require.InDelta(t, 10e6, terms.Metadata[0].ElectronPower, 10e6*1e-9)
	for i, v := range terms.IonHeating {
		require.Equalf(t, 0.0, v, "cell %d", i)
	}
}

func TestECRHDepositsMoreNearTheConfiguredRho(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 40, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)
	n := g.N
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		ti[i], te[i], ne[i] = 2000, 2000, 1e19
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)

	m, err := New("ecrh", map[string]float64{"power_mw": 10, "deposition_rho": 0.3, "width": 0.05})
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)

	var peakIdx int
	for i := range terms.ElectronHeating {
		if terms.ElectronHeating[i] > terms.ElectronHeating[peakIdx] {
			peakIdx = i
		}
	}
	require.InDelta(t, 0.3, g.Rho[peakIdx], 0.05)
}
