// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeffs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowerLawWeightExactValues(t *testing.T) {
	require.InDelta(t, 1.0, PowerLawWeight(0), 1e-12)
	require.InDelta(t, math.Pow(0.5, 5), PowerLawWeight(5), 1e-12)
	require.Equal(t, 0.0, PowerLawWeight(10.0001))
	require.Equal(t, 0.0, PowerLawWeight(50))
	require.Equal(t, PowerLawWeight(-5), PowerLawWeight(5)) // symmetric in |Pe|
}

func TestPecletZeroDiffusivityDoesNotDivideByZero(t *testing.T) {
	pe := Peclet(1.0, 1.0, 0.0)
	require.False(t, math.IsInf(pe, 0))
	require.False(t, math.IsNaN(pe))
}

func TestFaceValueBlendsUpwindDownwind(t *testing.T) {
	require.InDelta(t, 5.0, FaceValue(1.0, 5.0, 9.0), 1e-12) // alpha=1: pure upwind
	require.InDelta(t, 9.0, FaceValue(0.0, 5.0, 9.0), 1e-12) // alpha=0: pure downwind
}

func TestHighPecletIsStableUpwind(t *testing.T) {
	// at Pe=1e7 the scheme must degrade to pure upwinding with no
	// oscillation: alpha=0 means the face value is exactly the downwind
	// (central) blend with no upwind contribution beyond convection's own
	// sign selection in FaceUpwindDownwind.
	up, down := FaceUpwindDownwind(10.0, 1.0, 2.0)
	alpha := PowerLawWeight(Peclet(10.0, 1.0, 1e-6))
	face := FaceValue(alpha, up, down)
	require.InDelta(t, down, face, 1e-9)
}
