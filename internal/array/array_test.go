// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEval(t *testing.T) {
	a := New([]float32{1, 2, 3}, CPU)
	b := New([]float32{10, 20, 30}, CPU)
	out, err := a.Add(b).Eval()
	require.NoError(t, err)
	require.Equal(t, []float32{11, 22, 33}, out.Data())
}

func TestShapeMismatchPropagatesThroughEval(t *testing.T) {
	a := New([]float32{1, 2}, CPU)
	b := New([]float32{1, 2, 3}, CPU)
	_, err := a.Add(b).Eval()
	require.Error(t, err)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestSelectChoosesByCondition(t *testing.T) {
	cond := New([]float32{1, 0, 1}, CPU)
	a := New([]float32{10, 10, 10}, CPU)
	b := New([]float32{20, 20, 20}, CPU)
	out, err := Select(cond, a, b).Eval()
	require.NoError(t, err)
	require.Equal(t, []float32{10, 20, 10}, out.Data())
}

func TestPendingCountsComposedOps(t *testing.T) {
	a := New([]float32{1, 2, 3}, CPU)
	require.Equal(t, 0, a.Pending())
	chained := a.Scale(2).AddScalar(1).Sqrt()
	require.Equal(t, 3, chained.Pending())
}

func TestClipBounds(t *testing.T) {
	a := New([]float32{-5, 0.5, 100}, CPU)
	out, err := a.Clip(0, 10).Eval()
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0.5, 10}, out.Data())
}

func TestEvaluatedArrayRoundTrip(t *testing.T) {
	a := New([]float32{1, 2, 3}, CPU)
	ev, err := a.Eval()
	require.NoError(t, err)
	back := ev.ToArray()
	require.Equal(t, a.Len(), back.Len())
	data, err := back.Eval()
	require.NoError(t, err)
	require.Equal(t, ev.Data(), data.Data())
}
