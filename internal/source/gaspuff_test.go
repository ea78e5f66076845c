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

func TestGasPuffConservesTheConfiguredParticleRate(t *testing.T) {
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

	const rate = 1e21
	m, err := New("gas_puff", map[string]float64{"rate": rate, "penetration_depth": 0.05})
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)

	var totalParticlesPerSecond float64
	for i, v := range terms.ParticleSource[:g.N] {
		totalParticlesPerSecond += v * g.CellVolumes[i]
	}
	require.InDelta(t, rate, totalParticlesPerSecond, rate*0.01)
}

func TestGasPuffPeaksNearTheEdge(t *testing.T) {
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

	m, err := New("gas_puff", map[string]float64{"rate": 1e20, "penetration_depth": 0.05})
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)

	require.Greater(t, terms.ParticleSource[n-1], terms.ParticleSource[0])
}
