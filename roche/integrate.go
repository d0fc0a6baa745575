/*
Copyright © 2026 the rotstars authors.
This file is part of rotstars.

rotstars is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

rotstars is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with rotstars.  If not, see <http://www.gnu.org/licenses/>.
*/

package roche

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultResolution is the default number of colatitude grid points used
// for surface integrals. The error of an integral falls roughly as
// 1/resolution, and the cost grows linearly with it, so lower resolutions
// trade accuracy for speed.
const DefaultResolution = 5001

// Colatitudes returns the interior points of a uniform grid of n points
// running from the equator (π/2) to the pole (0), together with the grid
// spacing. The two endpoints are excluded, which keeps the grid away from
// the coordinate singularity at the pole.
func Colatitudes(n int) (theta []float64, dTheta float64, err error) {
	if n < 3 {
		return nil, 0, &DomainError{Param: "resolution", Value: float64(n),
			Reason: "need at least 3 grid points"}
	}
	grid := floats.Span(make([]float64, n), math.Pi/2, 0)
	// The grid runs towards the pole, so its step is negative; the
	// magnitude is returned to keep the integrals positive.
	return grid[1 : n-1], (math.Pi / 2) / float64(n-1), nil
}

// Integrate integrates f over the surface of a star that is symmetric about
// its equator, using n colatitude grid points:
//
//	2 Σ 2π f(θᵢ) sin(θᵢ) Δθ
//
// The sum covers one hemisphere and is doubled for the whole star.
func Integrate(f func(theta float64) float64, n int) (float64, error) {
	theta, dTheta, err := Colatitudes(n)
	if err != nil {
		return math.NaN(), err
	}
	terms := make([]float64, len(theta))
	for i, th := range theta {
		terms[i] = 2 * math.Pi * f(th) * math.Sin(th)
	}
	return 2 * floats.Sum(terms) * dTheta, nil
}

// Area returns the surface area of a Roche rotator, in units of the squared
// polar radius, by brute-force integration over n colatitude points.
// It returns ≈ 4π for wfrac → 0.
func Area(wfrac float64, n int) (float64, error) {
	if err := checkWfrac(wfrac); err != nil {
		return math.NaN(), err
	}
	return Integrate(func(th float64) float64 {
		r := Radius(th, wfrac)
		return r * r
	}, n)
}

// CranmerArea returns the Roche area from the polynomial fit of
// Cranmer (1996, thesis, eq. 4.23), in units of the squared polar radius.
func CranmerArea(wfrac float64) (float64, error) {
	if err := checkWfrac(wfrac); err != nil {
		return math.NaN(), err
	}
	w2 := wfrac * wfrac
	// Horner form of 1 + 0.19444w² + 0.28053w⁴ - 1.9014w⁶ + 6.8298w⁸ - 9.502w¹⁰ + 4.6631w¹².
	p := 4.6631
	for _, c := range []float64{-9.502, 6.8298, -1.9014, 0.28053, 0.19444, 1} {
		p = p*w2 + c
	}
	return 4 * math.Pi * p, nil
}

// EllipsoidArea returns the area of an oblate ellipsoid with
// equatorial-to-polar radius ratio rf, in units of the squared polar
// radius, by brute-force integration over n colatitude points.
func EllipsoidArea(rf float64, n int) (float64, error) {
	if rf < 1 {
		return math.NaN(), &DomainError{Param: "radius ratio", Value: rf, Reason: "must be ≥ 1"}
	}
	return Integrate(func(th float64) float64 {
		r := EllipsoidRadius(th, rf)
		return r * r
	}, n)
}

// EllipsoidAreaApprox returns the area of an oblate ellipsoid (a = b = rf,
// c = 1) from the Knud Thomsen approximation with p = 1.6075, which is
// accurate to about 1%.
func EllipsoidAreaApprox(rf float64) float64 {
	const p = 1.6075
	ap := math.Pow(rf, p)
	return 4 * math.Pi * math.Pow((ap*ap+2*ap)/3, 1/p)
}
