// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gerr implements the structured error taxonomy described in
// spec §7: configuration, physics-model, solver-convergence, numerical-
// degeneracy, unit-plausibility and I/O errors all carry a Kind, an
// offending field, and an actionable hint, never a bare string. It wraps
// github.com/cpmech/gosl/chk the way the teacher repo does for panics in
// debug builds.
package gerr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind classifies an Error per the §7 taxonomy.
type Kind int

const (
	Configuration Kind = iota
	PhysicsModel
	SolverConvergence
	NumericalDegeneracy
	UnitPlausibility
	Cancellation
	IO
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case PhysicsModel:
		return "physics_model"
	case SolverConvergence:
		return "solver_convergence"
	case NumericalDegeneracy:
		return "numerical_degeneracy"
	case UnitPlausibility:
		return "unit_plausibility"
	case Cancellation:
		return "cancellation"
	case IO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the structured error value every fallible Gotenx boundary
// returns. Field and Hint may be empty when not applicable.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Hint    string
	Cause   error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Field != "" {
		s = fmt.Sprintf("%s (field=%s)", s, e.Field)
	}
	if e.Hint != "" {
		s = fmt.Sprintf("%s; hint: %s", s, e.Hint)
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs a structured Error.
func New(kind Kind, field, message, hint string) *Error {
	return &Error{Kind: kind, Field: field, Message: message, Hint: hint}
}

// Wrap constructs a structured Error around a lower-level cause, e.g. an
// I/O error surfaced at a reader/writer boundary.
func Wrap(kind Kind, field string, cause error, hint string) *Error {
	return &Error{Kind: kind, Field: field, Message: cause.Error(), Hint: hint, Cause: cause}
}

// Debug gates the unit-plausibility assertions described in §7: enabled in
// debug builds, a silent no-op in release builds to avoid cost in
// production runs that have already been validated. Set by cmd/gotenx's
// --debug flag; never mutated elsewhere.
var Debug = false

// Assert panics with a gosl-style chk.Panic message when cond is false and
// Debug is enabled; it is a no-op in release builds. This is the one place
// Gotenx panics rather than returns an error, matching §7's "debug-build
// assertions ... invariant-violation is a programming error" policy.
func Assert(cond bool, format string, args ...any) {
	if cond || !Debug {
		return
	}
	chk.Panic(format, args...)
}
