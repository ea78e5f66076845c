// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package newton implements the fully-implicit Newton-Raphson solve of
// §4.7: reference scaling, a finite-difference Jacobian (gofem's
// Domain.Kb/Domain.Fb assembly reimagined as a dense (4N)x(4N) system,
// since Gotenx's 1-D mesh never needs gofem's sparse-triplet path),
// diagonal preconditioning, backtracking line search, and per-equation
// convergence against internal/tolerance.
package newton

import (
	"math"

	"github.com/1amageek/gotenx/internal/array"
	"github.com/1amageek/gotenx/internal/coeffs"
	"github.com/1amageek/gotenx/internal/gerr"
	"github.com/1amageek/gotenx/internal/geometry"
	"github.com/1amageek/gotenx/internal/profiles"
	"github.com/1amageek/gotenx/internal/solver/residual"
	"github.com/1amageek/gotenx/internal/tolerance"
)

// Options configures the solve (§4.7).
type Options struct {
	MaxIterations   int
	FDStep          float64 // relative finite-difference step, default 1e-6
	LineSearchSteps int     // number of backtracking halvings, default 5 (1, 1/2, ..., 1/32)
	ScaleEpsilon    float64 // eps in x_scaled = x/(x_ref+eps), absolute, default 1e-6
}

// DefaultOptions returns the §4.7 defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations:   30,
		FDStep:          1e-6,
		LineSearchSteps: 5,
		ScaleEpsilon:    1e-6,
	}
}

// Result reports the solve's outcome for diagnostics and the orchestrator's
// convergence-failure handling (§7).
type Result struct {
	Converged  bool
	Iterations int
	FinalNorm  float64
}

// Solve advances p in place from time t to t+dt using the implicit
// residual System(x) = 0, with tolerances tol gating per-equation
// convergence. The reference-scaling vector xRef (§4.7 step 1) is not
// passed in: Solve computes it once from the start-of-step state, one
// value per equation block (see referenceScale).
func Solve(p *profiles.Profiles, all coeffs.All, g *geometry.Geometry, dt float64, tol tolerance.Set, opt Options) (Result, error) {
	n := p.Len()
	x := p.Flatten()
	xOld := append([]float64(nil), x...)
	xRef := referenceScale(x, n)

	for iter := 0; iter < opt.MaxIterations; iter++ {
		r := residual.System(x, xOld, all, g, dt)

		if converged(x, r, xRef, tol, opt.ScaleEpsilon) {
			p.Unflatten(x)
			p.ClipPhysicalFloors()
			return Result{Converged: true, Iterations: iter, FinalNorm: scaledNorm(r, xRef, opt.ScaleEpsilon)}, nil
		}

		jac, err := residual.JacobianFD(x, xOld, all, g, dt, opt.FDStep)
		if err != nil {
			return Result{Iterations: iter}, gerr.Wrap(gerr.SolverConvergence, "jacobian", err, "finite-difference Jacobian assembly failed")
		}

		scaledJac, scaledR := precondition(jac, r, xRef, opt.ScaleEpsilon, len(x))

		delta, err := array.SolveDense(len(x), scaledJac, negate(scaledR))
		if err != nil {
			return Result{Iterations: iter}, gerr.Wrap(gerr.NumericalDegeneracy, "linear_solve", err, "preconditioned Jacobian is singular or ill-conditioned; check transport/source coefficients for NaN or zero diffusivity")
		}

		// unscale: delta was solved in scaled space, x_scaled = x/(xRef+eps),
		// so the physical-space update is delta_scaled * (xRef+eps).
		for i := range delta {
			delta[i] *= xRef[i] + opt.ScaleEpsilon
		}

		xNext, newNorm, ok := lineSearch(x, delta, xOld, all, g, dt, xRef, opt)
		if !ok {
			return Result{Iterations: iter, FinalNorm: newNorm}, gerr.New(gerr.SolverConvergence, "line_search", "backtracking line search failed to find a reducing step", "the Newton direction may be poor; inspect transport/source coefficients for stiffness or sign errors")
		}
		x = xNext
	}

	rFinal := residual.System(x, xOld, all, g, dt)
	finalNorm := scaledNorm(rFinal, xRef, opt.ScaleEpsilon)
	if converged(x, rFinal, xRef, tol, opt.ScaleEpsilon) {
		p.Unflatten(x)
		p.ClipPhysicalFloors()
		return Result{Converged: true, Iterations: opt.MaxIterations, FinalNorm: finalNorm}, nil
	}
	return Result{Converged: false, Iterations: opt.MaxIterations, FinalNorm: finalNorm},
		gerr.New(gerr.SolverConvergence, "", "Newton iteration did not converge within the iteration budget", "increase MaxIterations, shrink dt, or check for a stiff/ill-posed transport coefficient")
}

// referenceScale picks, per equation block, the mean magnitude of the
// block's entries as x_ref (§4.7 step 1): a single scalar per block rather
// than per-cell, so the scaling does not itself hide spatial structure in
// the convergence check.
func referenceScale(x []float64, n int) []float64 {
	xRef := make([]float64, len(x))
	for block := 0; block < 4; block++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += math.Abs(x[block*n+i])
		}
		mean := sum / float64(n)
		for i := 0; i < n; i++ {
			xRef[block*n+i] = mean
		}
	}
	return xRef
}

func scaledNorm(r, xRef []float64, eps float64) float64 {
	sum := 0.0
	for i, v := range r {
		s := v / (xRef[i] + eps)
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(r)))
}

// converged checks every component of x against its equation's tolerance,
// per §4.11: residual below the per-equation scaled tolerance everywhere.
func converged(x, r, xRef []float64, tol tolerance.Set, eps float64) bool {
	n := len(x) / 4
	blocks := []tolerance.Equation{tol.IonTemperature, tol.ElectronTemperature, tol.ElectronDensity, tol.PoloidalFlux}
	for block := 0; block < 4; block++ {
		eq := blocks[block]
		for i := 0; i < n; i++ {
			idx := block*n + i
			t := eq.ScaledTolerance(x[idx], xRef[idx], eps)
			if math.Abs(r[idx]/(xRef[idx]+eps)) > t {
				return false
			}
		}
	}
	return true
}

// precondition scales the columns of J by S = diag(xRef_i+eps), i.e. it
// forms J*S, which is solving the system in scaled variables
// x_scaled = x/(xRef+eps) (§4.7 step 4). Rows are not scaled: the returned
// residual is an unscaled copy of r, and no symmetric D^-1/2 J D^-1/2 form
// is applied.
func precondition(jac, r, xRef []float64, eps float64, m int) ([]float64, []float64) {
	scale := make([]float64, m)
	for i := range scale {
		scale[i] = xRef[i] + eps
	}
	scaledJac := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			scaledJac[i*m+j] = jac[i*m+j] * scale[j]
		}
	}
	scaledR := make([]float64, m)
	copy(scaledR, r)
	return scaledJac, scaledR
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

// lineSearch backtracks alpha in {1, 1/2, ..., 1/2^steps} until the scaled
// residual norm at x+alpha*delta is no larger than at x (§4.7 step 6).
func lineSearch(x, delta, xOld []float64, all coeffs.All, g *geometry.Geometry, dt float64, xRef []float64, opt Options) ([]float64, float64, bool) {
	r0 := residual.System(x, xOld, all, g, dt)
	norm0 := scaledNorm(r0, xRef, opt.ScaleEpsilon)

	alpha := 1.0
	for step := 0; step <= opt.LineSearchSteps; step++ {
		xTrial := make([]float64, len(x))
		for i := range xTrial {
			xTrial[i] = x[i] + alpha*delta[i]
		}
		rTrial := residual.System(xTrial, xOld, all, g, dt)
		normTrial := scaledNorm(rTrial, xRef, opt.ScaleEpsilon)
		if !math.IsNaN(normTrial) && normTrial <= norm0 {
			return xTrial, normTrial, true
		}
		alpha /= 2
	}
	return x, norm0, false
}
