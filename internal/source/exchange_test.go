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

func TestExchangeCancelsExactlyBetweenIonsAndElectrons(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 8, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)
	n := g.N
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		ti[i] = 1000
		te[i] = 2000 // Te > Ti drives heat from electrons to ions
		ne[i] = 1e19
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)

	m, err := New("exchange", nil)
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)

	for i := range terms.IonHeating {
		require.InDeltaf(t, -terms.IonHeating[i], terms.ElectronHeating[i], 1e-12, "cell %d", i)
	}
	require.Len(t, terms.Metadata, 1)
	require.InDelta(t, -terms.Metadata[0].ElectronPower, terms.Metadata[0].IonPower, 1e-6)

	// Te > Ti: energy flows into ions.
	require.Greater(t, terms.IonHeating[0], 0.0)
	require.Less(t, terms.ElectronHeating[0], 0.0)
}

func TestExchangeIsZeroWhenTemperaturesAreEqual(t *testing.T) {
	g, err := geometry.New(geometry.Params{N: 8, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)
	n := g.N
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		ti[i], te[i], ne[i] = 1500, 1500, 1e19
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)

	m, err := New("exchange", nil)
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)
	for i, v := range terms.IonHeating {
		require.InDeltaf(t, 0.0, v, 1e-12, "cell %d", i)
	}
}
