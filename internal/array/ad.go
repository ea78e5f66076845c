// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import "math"

// Value is a scalar node in a reverse-mode autodiff tape. It underlies the
// `grad`/`vjp` primitives named in the array contract (§4.1); the Newton
// Jacobian itself uses the finite-difference fallback (see
// internal/solver/residual) because the full transport/source pipeline
// mixes too much host-side branching to tape cleanly end to end, but this
// engine is exactly what the gradient-preserving orchestrator mode and
// diagnostics like dQ_fusion/dP_actuator are built on.
type Value struct {
	v        float64
	grad     float64
	children []*Value
	backward func(out *Value)
}

// Const returns a tape leaf with no dependency on any input.
func Const(v float64) *Value { return &Value{v: v} }

// Var returns a tape leaf representing a differentiable input.
func Var(v float64) *Value { return &Value{v: v} }

// Val returns the forward value.
func (a *Value) Val() float64 { return a.v }

// Grad returns the accumulated adjoint after Backward has run.
func (a *Value) Grad() float64 { return a.grad }

func op(v float64, children []*Value, backward func(out *Value)) *Value {
	return &Value{v: v, children: children, backward: backward}
}

// Add returns a + b on the tape.
func (a *Value) Add(b *Value) *Value {
	return op(a.v+b.v, []*Value{a, b}, func(out *Value) {
		a.grad += out.grad
		b.grad += out.grad
	})
}

// Sub returns a - b on the tape.
func (a *Value) Sub(b *Value) *Value {
	return op(a.v-b.v, []*Value{a, b}, func(out *Value) {
		a.grad += out.grad
		b.grad -= out.grad
	})
}

// Mul returns a * b on the tape.
func (a *Value) Mul(b *Value) *Value {
	return op(a.v*b.v, []*Value{a, b}, func(out *Value) {
		a.grad += b.v * out.grad
		b.grad += a.v * out.grad
	})
}

// Div returns a / b on the tape.
func (a *Value) Div(b *Value) *Value {
	return op(a.v/b.v, []*Value{a, b}, func(out *Value) {
		a.grad += out.grad / b.v
		b.grad -= out.grad * a.v / (b.v * b.v)
	})
}

// Exp returns exp(a) on the tape.
func (a *Value) Exp() *Value {
	e := math.Exp(a.v)
	return op(e, []*Value{a}, func(out *Value) {
		a.grad += e * out.grad
	})
}

// Log returns log(a) on the tape.
func (a *Value) Log() *Value {
	return op(math.Log(a.v), []*Value{a}, func(out *Value) {
		a.grad += out.grad / a.v
	})
}

// Pow returns a**p on the tape, p a constant exponent.
func (a *Value) Pow(p float64) *Value {
	return op(math.Pow(a.v, p), []*Value{a}, func(out *Value) {
		a.grad += p * math.Pow(a.v, p-1) * out.grad
	})
}

// backwardFrom runs reverse-mode accumulation over the tape rooted at a, in
// reverse topological order, seeding a's own adjoint with seed.
func (a *Value) backwardFrom(seed float64) {
	order := topoSort(a)
	a.grad = seed
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.backward != nil {
			n.backward(n)
		}
	}
}

func topoSort(root *Value) []*Value {
	var order []*Value
	visited := make(map[*Value]bool)
	var visit func(n *Value)
	visit = func(n *Value) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, c := range n.children {
			visit(c)
		}
		order = append(order, n)
	}
	visit(root)
	return order
}

// Backward zeros all adjoints reachable from a and runs reverse
// accumulation seeded with 1, the usual entry point for Grad.
func (a *Value) Backward() {
	for _, n := range topoSort(a) {
		n.grad = 0
	}
	a.backwardFrom(1)
}

// Grad computes d f(x) / d x_i for every input, where f builds a scalar
// output from the tape variables xs.
func Grad(f func(xs []*Value) *Value, x []float64) (value float64, gradient []float64) {
	xs := make([]*Value, len(x))
	for i, xi := range x {
		xs[i] = Var(xi)
	}
	y := f(xs)
	y.Backward()
	gradient = make([]float64, len(x))
	for i, xi := range xs {
		gradient[i] = xi.grad
	}
	return y.v, gradient
}

// Vjp computes the vector-Jacobian product v^T J for a vector-valued
// function f built from tape variables xs, seeding each output's adjoint
// with the matching entry of v (the cotangent vector) before accumulating.
// Per §5's mandatory eval rule, callers that invoke Vjp inside a
// column-by-column Jacobian loop must materialise (Eval) each iteration's
// result array before starting the next; Value itself has no lazy graph to
// accumulate, but the array wrapping the resulting gradient slice does.
func Vjp(f func(xs []*Value) []*Value, x []float64, v []float64) []float64 {
	xs := make([]*Value, len(x))
	for i, xi := range x {
		xs[i] = Var(xi)
	}
	ys := f(xs)
	if len(ys) != len(v) {
		panic("array: Vjp: cotangent length mismatch")
	}
	// Combine outputs into one scalar loss = sum(v_i * y_i) and run a
	// single backward pass; summing first avoids double-propagating
	// through any node shared by more than one output's subgraph.
	loss := op(0, ys, func(*Value) {})
	total := 0.0
	for i, y := range ys {
		total += v[i] * y.v
	}
	loss.v = total
	loss.backward = func(out *Value) {
		for i, y := range ys {
			y.grad += v[i] * out.grad
		}
	}
	loss.Backward()
	out := make([]float64, len(xs))
	for i, xi := range xs {
		out[i] = xi.grad
	}
	return out
}
