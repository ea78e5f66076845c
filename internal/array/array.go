// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package array implements the numeric primitive used throughout Gotenx: a
// single-precision, lazily-evaluated dense vector with elementwise
// arithmetic, reductions, and a materialisation wrapper safe to share across
// concurrency boundaries or to store in long-lived structures.
package array

import (
	"fmt"
	"math"
)

// Device selects the backend a computation graph targets. Gotenx's current
// deployment is CPU-only; GPU is reserved for a future backend, kept in the
// contract because spec §4.1 treats the device choice as load-bearing.
type Device int

const (
	CPU Device = iota
	GPU
)

func (d Device) String() string {
	if d == GPU {
		return "gpu"
	}
	return "cpu"
}

// ShapeError reports elementwise operations attempted on incompatible shapes.
type ShapeError struct {
	Op   string
	A, B int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("array: shape mismatch in %s: %d vs %d", e.Op, e.A, e.B)
}

// Array is a lazily-evaluated single-precision vector. Elementwise
// operations compose a pending computation graph; nothing executes until
// Eval is called. Arrays must not escape the function that constructs them
// — only an *EvaluatedArray may cross a concurrency boundary or be stored
// in a long-lived struct, per the package-level contract.
type Array struct {
	n       int
	device  Device
	compute func() []float32
	pending int // count of composed-but-unevaluated ops, for graph diagnostics
	err     error
}

// New wraps data in a graph node that is already materialised (pending=0).
// The data is copied. New accepts float32 data only, matching the hardware
// constraint that double-precision GPU arrays cannot be constructed;
// callers holding float64 values convert them before the call.
func New(data []float32, device Device) *Array {
	snapshot := make([]float32, len(data))
	copy(snapshot, data)
	return &Array{
		n:      len(data),
		device: device,
		compute: func() []float32 {
			return snapshot
		},
	}
}

// Zeros returns an n-length array of zeros on the given device.
func Zeros(n int, device Device) *Array {
	return New(make([]float32, n), device)
}

// Full returns an n-length array filled with v.
func Full(n int, v float32, device Device) *Array {
	data := make([]float32, n)
	for i := range data {
		data[i] = v
	}
	return New(data, device)
}

// Len returns the number of elements without forcing evaluation.
func (a *Array) Len() int { return a.n }

// Device returns the backend this array targets.
func (a *Array) Device() Device { return a.device }

// Pending returns the number of composed-but-unevaluated operations chained
// onto this node. Debug builds use this to catch graph accumulation in
// independent-iteration loops (spec §5's mandatory per-iteration eval rule).
func (a *Array) Pending() int { return a.pending }

func (a *Array) binary(b *Array, op string, f func(x, y float32) float32) *Array {
	if a.n != b.n {
		return &Array{n: a.n, err: &ShapeError{Op: op, A: a.n, B: b.n}}
	}
	device := a.device
	out := &Array{n: a.n, device: device, pending: a.pending + b.pending + 1}
	out.compute = func() []float32 {
		av := a.materialise()
		bv := b.materialise()
		r := make([]float32, len(av))
		for i := range r {
			r[i] = f(av[i], bv[i])
		}
		return r
	}
	if a.err != nil {
		out.err = a.err
	} else if b.err != nil {
		out.err = b.err
	}
	return out
}

func (a *Array) unary(op string, f func(x float32) float32) *Array {
	out := &Array{n: a.n, device: a.device, pending: a.pending + 1, err: a.err}
	out.compute = func() []float32 {
		av := a.materialise()
		r := make([]float32, len(av))
		for i := range r {
			r[i] = f(av[i])
		}
		return r
	}
	return out
}

func (a *Array) materialise() []float32 {
	if a.compute == nil {
		return make([]float32, a.n)
	}
	return a.compute()
}

// Add returns a + b, elementwise.
func (a *Array) Add(b *Array) *Array { return a.binary(b, "add", func(x, y float32) float32 { return x + y }) }

// Sub returns a - b, elementwise.
func (a *Array) Sub(b *Array) *Array { return a.binary(b, "sub", func(x, y float32) float32 { return x - y }) }

// Mul returns a * b, elementwise.
func (a *Array) Mul(b *Array) *Array { return a.binary(b, "mul", func(x, y float32) float32 { return x * y }) }

// Div returns a / b, elementwise.
func (a *Array) Div(b *Array) *Array { return a.binary(b, "div", func(x, y float32) float32 { return x / y }) }

// Scale returns a * s.
func (a *Array) Scale(s float32) *Array {
	return a.unary("scale", func(x float32) float32 { return x * s })
}

// AddScalar returns a + s.
func (a *Array) AddScalar(s float32) *Array {
	return a.unary("add_scalar", func(x float32) float32 { return x + s })
}

// Sqrt returns sqrt(a), elementwise.
func (a *Array) Sqrt() *Array {
	return a.unary("sqrt", func(x float32) float32 { return float32(math.Sqrt(float64(x))) })
}

// Exp returns exp(a), elementwise.
func (a *Array) Exp() *Array {
	return a.unary("exp", func(x float32) float32 { return float32(math.Exp(float64(x))) })
}

// Log returns log(a), elementwise. Callers that might pass non-positive
// values must guard with Clip or Select beforehand; log of a non-positive
// argument is a physics-model error, not an array-layer one.
func (a *Array) Log() *Array {
	return a.unary("log", func(x float32) float32 { return float32(math.Log(float64(x))) })
}

// Pow returns a**p, elementwise.
func (a *Array) Pow(p float64) *Array {
	return a.unary("pow", func(x float32) float32 { return float32(math.Pow(float64(x), p)) })
}

// Clip clamps every element to [lo, hi].
func (a *Array) Clip(lo, hi float32) *Array {
	return a.unary("clip", func(x float32) float32 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	})
}

// Select returns, per element, a if cond > 0 else b. This is the required
// substitute for value-dependent `if` control flow: spec §4.10/§9 forbid
// branching on array values because it breaks the AD graph, so all
// threshold logic in the residual-assembly path must route through Select.
func Select(cond, a, b *Array) *Array {
	if cond.n != a.n || a.n != b.n {
		return &Array{n: a.n, err: &ShapeError{Op: "select", A: cond.n, B: a.n}}
	}
	out := &Array{n: a.n, device: a.device, pending: cond.pending + a.pending + b.pending + 1}
	out.compute = func() []float32 {
		cv := cond.materialise()
		av := a.materialise()
		bv := b.materialise()
		r := make([]float32, len(av))
		for i := range r {
			if cv[i] > 0 {
				r[i] = av[i]
			} else {
				r[i] = bv[i]
			}
		}
		return r
	}
	return out
}

// Sum forces evaluation and returns the sum of all elements.
func (a *Array) Sum() float32 {
	v := a.materialise()
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// Mean forces evaluation and returns the arithmetic mean.
func (a *Array) Mean() float32 {
	if a.n == 0 {
		return 0
	}
	return a.Sum() / float32(a.n)
}

// Max forces evaluation and returns the maximum element.
func (a *Array) Max() float32 {
	v := a.materialise()
	if len(v) == 0 {
		return 0
	}
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Min forces evaluation and returns the minimum element.
func (a *Array) Min() float32 {
	v := a.materialise()
	if len(v) == 0 {
		return 0
	}
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Err returns the first shape-mismatch error recorded while building this
// node's graph, nil if none. Eval propagates it.
func (a *Array) Err() error { return a.err }

// Eval materialises the pending computation graph, returning an
// EvaluatedArray safe to share and store. This is the only legal way an
// Array's data may cross a function boundary per the package contract.
func (a *Array) Eval() (*EvaluatedArray, error) {
	if a.err != nil {
		return nil, a.err
	}
	data := a.materialise()
	out := make([]float32, len(data))
	copy(out, data)
	return &EvaluatedArray{n: a.n, device: a.device, data: out}, nil
}

// MustEval is Eval but panics on a shape error; reserved for call sites
// where the shapes are a programming invariant, never data-dependent
// (e.g. geometry construction).
func (a *Array) MustEval() *EvaluatedArray {
	e, err := a.Eval()
	if err != nil {
		panic(err)
	}
	return e
}

// EvaluatedArray is a materialised array: its computation graph has already
// executed. It is the only array type safe to share across goroutines or to
// embed in a long-lived struct (SimulationState, geometry, profiles).
type EvaluatedArray struct {
	n      int
	device Device
	data   []float32
}

// NewEvaluatedArray materialises a by calling Eval internally, so the
// caller never holds an un-evaluated graph past this call.
func NewEvaluatedArray(a *Array) (*EvaluatedArray, error) {
	return a.Eval()
}

// Data returns a copy of the underlying values; callers must not rely on
// aliasing since EvaluatedArray is meant to be treated as immutable.
func (e *EvaluatedArray) Data() []float32 {
	out := make([]float32, len(e.data))
	copy(out, e.data)
	return out
}

// At returns the i-th element.
func (e *EvaluatedArray) At(i int) float32 { return e.data[i] }

// Len returns the number of elements.
func (e *EvaluatedArray) Len() int { return e.n }

// Device returns the backend this array was evaluated on.
func (e *EvaluatedArray) Device() Device { return e.device }

// ToArray re-wraps the evaluated data in a new, already-materialised Array
// graph node, for composing further lazy operations on a stored result.
func (e *EvaluatedArray) ToArray() *Array { return New(e.data, e.device) }
