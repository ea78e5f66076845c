// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "math"

// Species is the closed set of selectable impurity species (§4.4).
type Species int

const (
	Carbon Species = iota
	Neon
	Argon
	Tungsten
)

func (s Species) String() string {
	switch s {
	case Carbon:
		return "carbon"
	case Neon:
		return "neon"
	case Argon:
		return "argon"
	case Tungsten:
		return "tungsten"
	default:
		return "unknown"
	}
}

// adasInterval is one contiguous fit interval of a 5th-order polynomial in
// log10(Te[eV]), covering [loEV, hiEV).
type adasInterval struct {
	loEV, hiEV float64
	coeffs     [6]float64 // c0 + c1*x + ... + c5*x^5, x = log10(Te[eV])
}

// adasFits holds, per species, the contiguous intervals spanning
// [100, 1e5] eV with no gaps (§4.4). Coefficients are representative
// ADAS-style cooling-rate fits (log10 L_z[W m^3] vs log10 Te[eV]), not a
// literal ADAS database extract.
var adasFits = map[Species][]adasInterval{
	Carbon: {
		{100, 1000, [6]float64{-33.4, 0.9, -0.3, 0, 0, 0}},
		{1000, 10000, [6]float64{-34.0, -0.1, 0.05, 0, 0, 0}},
		{10000, 100000, [6]float64{-34.5, -0.2, 0, 0, 0, 0}},
	},
	Neon: {
		{100, 1000, [6]float64{-32.9, 0.7, -0.25, 0, 0, 0}},
		{1000, 10000, [6]float64{-33.6, -0.05, 0.02, 0, 0, 0}},
		{10000, 100000, [6]float64{-34.1, -0.15, 0, 0, 0, 0}},
	},
	Argon: {
		{100, 1000, [6]float64{-32.2, 0.5, -0.2, 0, 0, 0}},
		{1000, 10000, [6]float64{-33.0, 0.0, 0.01, 0, 0, 0}},
		{10000, 100000, [6]float64{-33.6, -0.1, 0, 0, 0, 0}},
	},
	Tungsten: {
		{100, 1000, [6]float64{-31.5, 0.3, -0.1, 0, 0, 0}},
		{1000, 10000, [6]float64{-32.2, 0.1, 0, 0, 0, 0}},
		{10000, 100000, [6]float64{-32.8, -0.05, 0, 0, 0, 0}},
	},
}

// CoolingRate returns L_z(Te) [W m^3], the impurity radiative cooling-rate
// coefficient, for the given species at electron temperature teEV [eV],
// evaluated via the contiguous ADAS-style polynomial fit.
func CoolingRate(species Species, teEV float64) float64 {
	teEV = math.Min(math.Max(teEV, 100), 99999.999)
	x := math.Log10(teEV)
	for _, iv := range adasFits[species] {
		if teEV >= iv.loEV && teEV < iv.hiEV {
			logLz := iv.coeffs[0]
			xp := 1.0
			for k := 1; k < 6; k++ {
				xp *= x
				logLz += iv.coeffs[k] * xp
			}
			return math.Pow(10, logLz)
		}
	}
	// fall through for Te at the top edge (100000 eV exactly)
	last := adasFits[species][len(adasFits[species])-1]
	logLz := last.coeffs[0]
	xp := 1.0
	for k := 1; k < 6; k++ {
		xp *= x
		logLz += last.coeffs[k] * xp
	}
	return math.Pow(10, logLz)
}
