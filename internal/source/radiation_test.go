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

func TestRadiationIsAPureElectronLossTerm(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 8, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
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

	m, err := New("radiation", map[string]float64{"species": float64(Tungsten)})
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)

	for i := range terms.ElectronHeating {
		require.Lessf(t, terms.ElectronHeating[i], 0.0, "cell %d", i)
		require.Equalf(t, 0.0, terms.IonHeating[i], "cell %d", i)
		require.Equalf(t, 0.0, terms.ParticleSource[i], "cell %d", i)
		require.Equalf(t, 0.0, terms.CurrentSource[i], "cell %d", i)
	}
	require.Len(t, terms.Metadata, 1)
	require.Equal(t, Radiation, terms.Metadata[0].Category)
	require.Less(t, terms.Metadata[0].ElectronPower, 0.0)
}

func TestRadiationScalesWithImpurityFraction(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 8, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
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

	low, err := New("radiation", map[string]float64{"impurity_fraction": 0.001})
	require.NoError(t, err)
	high, err := New("radiation", map[string]float64{"impurity_fraction": 0.1})
	require.NoError(t, err)

	lowTerms, err := low.ComputeTerms(p, g)
	require.NoError(t, err)
	highTerms, err := high.ComputeTerms(p, g)
	require.NoError(t, err)

	require.Less(t, highTerms.Metadata[0].ElectronPower, lowTerms.Metadata[0].ElectronPower)
}
