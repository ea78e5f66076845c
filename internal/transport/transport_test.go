// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"testing"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/stretchr/testify/require"
)

func newFixtures(t *testing.T) (*profiles.Profiles, *geometry.Geometry) {
	t.Helper()
	g, err := geometry.New(geometry.Params{N: 20, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)

	n := g.N
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		frac := float64(n-i) / float64(n)
		ti[i] = 100 + 9900*frac
		te[i] = 100 + 9900*frac
		ne[i] = 1e19 + 1e20*frac
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)
	return p, g
}

func requireClipInvariant(t *testing.T, c Coefficients, n int) {
	t.Helper()
	require.Len(t, c.ChiIon, n+1)
	require.Len(t, c.ChiElectron, n+1)
	require.Len(t, c.ParticleDiffusivity, n+1)
	require.Len(t, c.ConvectionVelocity, n+1)
	for _, s := range [][]float64{c.ChiIon, c.ChiElectron, c.ParticleDiffusivity} {
		for i, v := range s {
			require.GreaterOrEqualf(t, v, chiMin, "index %d", i)
			require.LessOrEqualf(t, v, chiMax, "index %d", i)
		}
	}
	for i, v := range c.ConvectionVelocity {
		require.Falsef(t, v != v, "NaN convection at %d", i)
	}
}

func TestConstantModelReturnsConfiguredValuesClipped(t *testing.T) {
	p, g := newFixtures(t)
	m, err := New("constant", map[string]float64{"chi_ion": 2.0, "chi_electron": 3.0})
	require.NoError(t, err)
	require.Equal(t, "constant", m.Name())

	c, err := m.ComputeCoefficients(p, g)
	require.NoError(t, err)
	requireClipInvariant(t, c, g.N)
	for _, v := range c.ChiIon {
		require.InDelta(t, 2.0, v, 1e-9)
	}
}

func TestBohmGyroBohmProducesBoundedPositiveCoefficients(t *testing.T) {
	p, g := newFixtures(t)
	m, err := New("bohm_gyrobohm", nil)
	require.NoError(t, err)
	c, err := m.ComputeCoefficients(p, g)
	require.NoError(t, err)
	requireClipInvariant(t, c, g.N)
}

func TestCriticalGradientIsFlatBelowThresholdAndRisesAboveIt(t *testing.T) {
	p, g := newFixtures(t)
	m, err := New("critical_gradient", map[string]float64{"chi_base": 0.05, "critical_gradient_length": 1e9})
	require.NoError(t, err)
	c, err := m.ComputeCoefficients(p, g)
	require.NoError(t, err)
	requireClipInvariant(t, c, g.N)
	// an unreachably high critical gradient length forces every face to the
	// flat base value.
	for i, v := range c.ChiIon {
		require.InDeltaf(t, 0.05, v, 1e-9, "face %d", i)
	}
}

func TestQLKNNFallsBackToDeterministicClosedFormWithoutASurrogate(t *testing.T) {
	p, g := newFixtures(t)
	m, err := New("qlknn", nil)
	require.NoError(t, err)
	c, err := m.ComputeCoefficients(p, g)
	require.NoError(t, err)
	requireClipInvariant(t, c, g.N)
}

type stubSurrogate struct{}

func (stubSurrogate) Predict(in SurrogateInput) SurrogateOutput {
	return SurrogateOutput{ChiIon: 1.0, ChiElectron: 1.0, ParticleDiffusivity: 1.0, ConvectionVelocity: 0}
}

func TestQLKNNDelegatesToAnAttachedSurrogate(t *testing.T) {
	p, g := newFixtures(t)
	q := &QLKNN{Surrogate: stubSurrogate{}}
	c, err := q.ComputeCoefficients(p, g)
	require.NoError(t, err)
	for _, v := range c.ChiIon {
		require.InDelta(t, 1.0, v, 1e-9)
	}
}

func TestDensityTransitionBlendsTowardRIAboveTransitionDensity(t *testing.T) {
	p, g := newFixtures(t)
	m, err := New("density_transition", map[string]float64{"transition_density": 1e10, "transition_width": 1e9})
	require.NoError(t, err)
	c, err := m.ComputeCoefficients(p, g)
	require.NoError(t, err)
	requireClipInvariant(t, c, g.N)
}

func TestNewRejectsUnregisteredModelName(t *testing.T) {
	_, err := New("not_a_real_model", nil)
	require.Error(t, err)
}
