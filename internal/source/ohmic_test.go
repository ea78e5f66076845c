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

func newOhmicFixtures(t *testing.T) (*profiles.Profiles, *geometry.Geometry) {
	t.Helper()
	g, err := geometry.New(geometry.Params{N: 12, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)
	n := g.N
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		ti[i], te[i], ne[i] = 2000, 2000, 1e19
		psi[i] = float64(i) * 0.1 // nonzero gradient drives a current
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)
	return p, g
}

func TestOhmicProducesElectronHeatingOnlyFromNonZeroFluxGradient(t *testing.T) {
	p, g := newOhmicFixtures(t)
	m, err := New("ohmic", nil)
	require.NoError(t, err)
	terms, err := m.ComputeTerms(p, g)
	require.NoError(t, err)

	for i, v := range terms.ElectronHeating {
		require.GreaterOrEqualf(t, v, 0.0, "cell %d", i)
	}
	for i, v := range terms.IonHeating {
		require.Equalf(t, 0.0, v, "cell %d", i)
	}
	require.Greater(t, terms.Metadata[0].ElectronPower, 0.0)
}

func TestOhmicSkipsWhenFluxIsQuasiSteady(t *testing.T) {
	p, g := newOhmicFixtures(t)
	o := &Ohmic{ZEff: 1.5, FluxVariationThreshold: 1e-3, PreviousFlux: append([]float64(nil), p.PoloidalFlux...)}

	terms, err := o.ComputeTerms(p, g)
	require.NoError(t, err)
	for i, v := range terms.ElectronHeating {
		require.Equalf(t, 0.0, v, "cell %d", i)
	}
	require.Equal(t, 0.0, terms.Metadata[0].ElectronPower)
}

func TestOhmicComputesWhenFluxHasChangedBeyondThreshold(t *testing.T) {
	p, g := newOhmicFixtures(t)
	stalePrevious := make([]float64, p.Len())
	for i := range stalePrevious {
		stalePrevious[i] = p.PoloidalFlux[i] * 10 // far from current flux
	}
	o := &Ohmic{ZEff: 1.5, FluxVariationThreshold: 1e-6, PreviousFlux: stalePrevious}

	terms, err := o.ComputeTerms(p, g)
	require.NoError(t, err)
	require.Greater(t, terms.Metadata[0].ElectronPower, 0.0)
}
