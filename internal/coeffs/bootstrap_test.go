// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeffs

import (
	"testing"

	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/stretchr/testify/require"
)

func newBootstrapFixtures(t *testing.T) (*profiles.Profiles, *geometry.Geometry) {
	t.Helper()
	g, err := geometry.New(geometry.Params{N: 20, MajorRadius: 6.2, MinorRadius: 2.0, ToroidalField: 5.3})
	require.NoError(t, err)

	n := g.N
	ti := make([]float64, n)
	te := make([]float64, n)
	ne := make([]float64, n)
	psi := make([]float64, n)
	for i := range ti {
		// peaked profile so the pressure gradient (and hence bootstrap
		// current) is nonzero and has a consistent sign across the domain.
		frac := float64(n-i) / float64(n)
		ti[i] = 100 + 9900*frac
		te[i] = 100 + 9900*frac
		ne[i] = 1e19 + 1e20*frac
	}
	p, err := profiles.New(ti, te, ne, psi, 1e16)
	require.NoError(t, err)
	return p, g
}

func TestBootstrapCurrentMagnitudeClipped(t *testing.T) {
	p, g := newBootstrapFixtures(t)
	j := BootstrapCurrentDensity(p, g, DefaultSauterCoefficients())
	require.Len(t, j, g.N)
	for i, v := range j {
		require.LessOrEqualf(t, v, maxBootstrapMagnitude, "cell %d", i)
		require.GreaterOrEqualf(t, v, -maxBootstrapMagnitude, "cell %d", i)
	}
}

func TestBootstrapCurrentFiniteEverywhere(t *testing.T) {
	p, g := newBootstrapFixtures(t)
	j := BootstrapCurrentDensity(p, g, DefaultSauterCoefficients())
	for i, v := range j {
		require.Falsef(t, v != v, "NaN at cell %d", i) // NaN != NaN
	}
}
