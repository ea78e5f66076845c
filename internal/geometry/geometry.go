// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry implements the immutable radial mesh and metric tensors
// a Gotenx simulation runs on. Geometry is constructed once and never
// mutated afterwards; every field is a plain read-only slice or scalar.
package geometry

import (
	"fmt"
	"math"
)

const minCells = 10
const maxCells = 500

// faceSpacingFloor is the epsilon regularisation floor applied to cell
// spacing in gradient denominators (§4.2).
const faceSpacingFloor = 1e-10

// Geometry holds the normalised radial mesh and the metric data derived
// from a circular (or shaped) tokamak cross-section. Cell-centred slices
// have length N; face-valued quantities (FaceAreas, G0Face) have length
// N+1, matching the coefficient builder's face interpolation contract
// (§4.5); CellDistance, between adjacent cell centres, has length N-1.
type Geometry struct {
	N int // number of cells, N ∈ [10, 500]

	Rho          []float64 // normalised toroidal flux, cell-centred, monotone non-decreasing, ∈ [0, 1.01]
	Radii        []float64 // minor-radius coordinate of each cell centre [m]
	CellDistance []float64 // distance between adjacent cell centres [m], length N-1
	CellVolumes  []float64 // [m^3]
	FaceAreas    []float64 // [m^2], length N+1
	G0           []float64 // Jacobian g0, cell-centred, length N
	G1           []float64 // Jacobian g1, cell-centred, length N
	G2           []float64 // Jacobian g2, cell-centred, length N
	G0Face       []float64 // g0 interpolated to faces, length N+1

	MajorRadius   float64 // R0 [m]
	MinorRadius   float64 // a [m]
	ToroidalField float64 // B_t [T]

	// SafetyFactor is the q-profile, cell-centred. If the constructor is
	// given an explicit profile it is used verbatim (preferred per spec
	// §9's Open Question); otherwise it falls back to q ≈ 1 + (r/a)^2.
	SafetyFactor []float64
}

// Params configures a circular-geometry construction.
type Params struct {
	N             int
	MajorRadius   float64
	MinorRadius   float64
	ToroidalField float64
	// SafetyFactor, when non-nil, must have length N and is used verbatim
	// instead of the q ≈ 1 + (r/a)^2 approximation.
	SafetyFactor []float64
}

// New builds an immutable circular-geometry mesh uniform in rho ∈ [0, 1].
func New(p Params) (*Geometry, error) {
	if p.N < minCells || p.N > maxCells {
		return nil, fmt.Errorf("geometry: N=%d out of range [%d, %d]", p.N, minCells, maxCells)
	}
	if p.MajorRadius <= 0 || p.MinorRadius <= 0 || p.ToroidalField <= 0 {
		return nil, fmt.Errorf("geometry: major/minor radius and toroidal field must be positive")
	}
	if p.SafetyFactor != nil && len(p.SafetyFactor) != p.N {
		return nil, fmt.Errorf("geometry: explicit safety factor has length %d, want %d", len(p.SafetyFactor), p.N)
	}

	g := &Geometry{
		N:             p.N,
		MajorRadius:   p.MajorRadius,
		MinorRadius:   p.MinorRadius,
		ToroidalField: p.ToroidalField,
	}

	n := p.N
	drho := 1.0 / float64(n)
	g.Rho = make([]float64, n)
	g.Radii = make([]float64, n)
	g.G0 = make([]float64, n)
	g.G1 = make([]float64, n)
	g.G2 = make([]float64, n)
	g.CellVolumes = make([]float64, n)
	g.SafetyFactor = make([]float64, n)

	for i := 0; i < n; i++ {
		rho := (float64(i) + 0.5) * drho
		g.Rho[i] = rho
		r := rho * p.MinorRadius
		g.Radii[i] = r

		// Shafranov-shell metric for a large-aspect-ratio circular
		// cross-section: g0 = R0 * r (toroidal Jacobian proxy), g1 ~ 1,
		// g2 ~ r^2 / R0 (poloidal-field metric weight).
		g0 := p.MajorRadius * math.Max(r, faceSpacingFloor)
		g.G0[i] = g0
		g.G1[i] = 1.0
		g.G2[i] = r * r / p.MajorRadius
		// shell volume element: V_i = 2*pi*R0 * 2*pi*r * dr
		g.CellVolumes[i] = 4 * math.Pi * math.Pi * p.MajorRadius * r * (p.MinorRadius * drho)

		if p.SafetyFactor != nil {
			g.SafetyFactor[i] = p.SafetyFactor[i]
		} else {
			a := r / p.MinorRadius
			g.SafetyFactor[i] = 1 + a*a
		}
	}

	g.CellDistance = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		g.CellDistance[i] = math.Max(g.Radii[i+1]-g.Radii[i], faceSpacingFloor)
	}

	g.FaceAreas = make([]float64, n+1)
	g.G0Face = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		rFace := float64(i) * drho * p.MinorRadius
		g.FaceAreas[i] = 4 * math.Pi * math.Pi * p.MajorRadius * math.Max(rFace, faceSpacingFloor)
		g.G0Face[i] = p.MajorRadius * math.Max(rFace, faceSpacingFloor)
	}

	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Geometry) validate() error {
	if g.Rho[0] < 0 || g.Rho[g.N-1] > 1.01 {
		return fmt.Errorf("geometry: rho out of bounds [0, 1.01]: min=%g max=%g", g.Rho[0], g.Rho[g.N-1])
	}
	for i := 1; i < g.N; i++ {
		if g.Rho[i] < g.Rho[i-1] {
			return fmt.Errorf("geometry: rho not monotone non-decreasing at cell %d", i)
		}
	}
	for i, v := range g.CellVolumes {
		if v <= 0 {
			return fmt.Errorf("geometry: non-positive cell volume at cell %d", i)
		}
	}
	for i, a := range g.FaceAreas {
		if a < 0 {
			return fmt.Errorf("geometry: negative face area at face %d", i)
		}
	}
	return nil
}

// InterpToFaces linearly interpolates a cell-centred quantity to the N+1
// faces, copying the adjacent cell value at the two boundary faces.
func (g *Geometry) InterpToFaces(cell []float64) []float64 {
	n := g.N
	face := make([]float64, n+1)
	face[0] = cell[0]
	face[n] = cell[n-1]
	for i := 1; i < n; i++ {
		face[i] = 0.5 * (cell[i-1] + cell[i])
	}
	return face
}

// UpwindToFaces interpolates a cell-centred quantity to faces using pure
// upwinding by the sign of the given face velocity.
func (g *Geometry) UpwindToFaces(cell []float64, velocity []float64) []float64 {
	n := g.N
	face := make([]float64, n+1)
	face[0] = cell[0]
	face[n] = cell[n-1]
	for i := 1; i < n; i++ {
		if velocity[i] >= 0 {
			face[i] = cell[i-1]
		} else {
			face[i] = cell[i]
		}
	}
	return face
}

// Gradient returns the central-difference gradient of a cell-centred
// quantity at faces, with an epsilon floor on the denominator (§4.2).
func (g *Geometry) Gradient(cell []float64) []float64 {
	n := g.N
	grad := make([]float64, n+1)
	grad[0] = 0
	grad[n] = 0
	for i := 1; i < n; i++ {
		dx := math.Max(g.CellDistance[i-1], faceSpacingFloor)
		grad[i] = (cell[i] - cell[i-1]) / dx
	}
	return grad
}
