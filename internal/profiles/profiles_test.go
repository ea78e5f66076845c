// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveTemperature(t *testing.T) {
	_, err := New([]float64{0, 100}, []float64{100, 100}, []float64{1e18, 1e18}, []float64{0, 0}, 0)
	require.Error(t, err)
}

func TestNewRejectsDensityBelowFloor(t *testing.T) {
	_, err := New([]float64{100, 100}, []float64{100, 100}, []float64{1e10, 1e18}, []float64{0, 0}, 0)
	require.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	p, err := New([]float64{100, 200}, []float64{100, 200}, []float64{1e18, 2e18}, []float64{0, 1}, 0)
	require.NoError(t, err)
	clone := p.Clone()
	clone.IonTemperature[0] = 999
	require.NotEqual(t, clone.IonTemperature[0], p.IonTemperature[0])
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	p, err := New([]float64{100, 200}, []float64{150, 250}, []float64{1e18, 2e18}, []float64{0.1, 0.2}, 0)
	require.NoError(t, err)
	x := p.Flatten()
	require.Len(t, x, 8)

	q, err := New([]float64{1, 1}, []float64{1, 1}, []float64{1e18, 1e18}, []float64{0, 0}, 0)
	require.NoError(t, err)
	q.Unflatten(x)
	require.Equal(t, p.IonTemperature, q.IonTemperature)
	require.Equal(t, p.ElectronTemperature, q.ElectronTemperature)
	require.Equal(t, p.ElectronDensity, q.ElectronDensity)
	require.Equal(t, p.PoloidalFlux, q.PoloidalFlux)
}

func TestClipPhysicalFloorsEnforcesMinimums(t *testing.T) {
	p := &Profiles{
		IonTemperature:      []float64{0.1, 50},
		ElectronTemperature: []float64{0.1, 50},
		ElectronDensity:     []float64{1, 1e18},
		PoloidalFlux:        []float64{0, 0},
		DensityFloor:        1e16,
	}
	p.ClipPhysicalFloors()
	require.Equal(t, MinTemperature, p.IonTemperature[0])
	require.Equal(t, MinTemperature, p.ElectronTemperature[0])
	require.Equal(t, p.DensityFloor, p.ElectronDensity[0])
}

func TestPeakedGeneratorDecaysTowardEdge(t *testing.T) {
	rho := []float64{0, 0.5, 1.0}
	gen := Peaked{CoreIonTemperature: 1000, EdgeIonTemperature: 10, CoreElectronTemperature: 1000,
		EdgeElectronTemperature: 10, CoreDensity: 1e20, EdgeDensity: 2e16, Alpha: 1}
	p, err := gen.Generate(rho, 1e16)
	require.NoError(t, err)
	require.Greater(t, p.IonTemperature[0], p.IonTemperature[1])
	require.Greater(t, p.IonTemperature[1], p.IonTemperature[2])
}
