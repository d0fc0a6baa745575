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
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// BetaVonZeipel is the classical gravity-darkening exponent of a
	// non-rotating star.
	BetaVonZeipel = 0.25

	// BetaCritical is the empirical exponent at critical rotation.
	BetaCritical = 0.13535

	// BetaSamples is the number of interior colatitudes sampled by FitBeta.
	BetaSamples = 99

	// MinFitSamples is the fewest valid samples FitBeta will fit.
	MinFitSamples = 3

	// MinGravitySpread is the smallest range of ln g FitBeta will fit.
	// Slower rotators, below wfrac ≈ 1e-5, have a surface gravity that is
	// constant to rounding error.
	MinGravitySpread = 1e-10
)

// SurfaceSample holds the local surface quantities at one colatitude, in
// units where the polar radius, mass and gravitational constant are 1.
type SurfaceSample struct {
	Theta   float64 // colatitude in radians
	Radius  float64 // surface radius
	Gravity float64 // magnitude of the effective gravity

	// Correction is the flux correction sqrt(tan θ'/tan θ).
	Correction float64

	// Teff is the effective temperature proxy Correction·Gravity^¼.
	Teff float64
}

// BetaFit holds the result of a gravity-darkening fit.
type BetaFit struct {
	Wfrac float64

	// Omega is the angular velocity in units of the Keplerian angular
	// velocity at the equator.
	Omega float64

	// Beta and Intercept define ln(Teff) = Beta·ln(g) + Intercept.
	Beta, Intercept float64

	// Samples are the samples used in the fit. Discarded counts the samples
	// dropped because their temperature proxy was not a number.
	Samples   []SurfaceSample
	Discarded int
}

// Beta returns the gravity-darkening exponent β (Teff ∝ g^β) of a Roche
// rotator with rotation rate wfrac, following Espinosa Lara & Rieutord
// (2011). It is 0.25 for wfrac = 0 and 0.13535 for wfrac = 1.
func Beta(wfrac float64) (float64, error) {
	fit, err := FitBeta(wfrac)
	if err != nil {
		return math.NaN(), err
	}
	return fit.Beta, nil
}

// BetaFromOblateness returns the gravity-darkening exponent for a star with
// the given oblateness R_eq/R_pole.
func BetaFromOblateness(ob float64) (float64, error) {
	wfrac, err := OblatenessToWfrac(ob)
	if err != nil {
		return math.NaN(), err
	}
	return Beta(wfrac)
}

// FitBeta computes local gravity and flux at BetaSamples colatitudes and
// fits the power law Teff ∝ g^β by least squares in log-log space.
func FitBeta(wfrac float64) (*BetaFit, error) {
	if err := checkWfrac(wfrac); err != nil {
		return nil, err
	}
	switch wfrac {
	case 0:
		return &BetaFit{Wfrac: wfrac, Beta: BetaVonZeipel}, nil
	case 1:
		return &BetaFit{Wfrac: wfrac, Omega: 1, Beta: BetaCritical}, nil
	}

	omega, err := equatorialOmega(wfrac)
	if err != nil {
		return nil, err
	}
	fit := &BetaFit{Wfrac: wfrac, Omega: omega}

	theta := floats.Span(make([]float64, BetaSamples+2), 0, math.Pi/2)
	theta = theta[1 : BetaSamples+1]
	for _, th := range theta {
		s, err := surfaceSample(omega, th)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(s.Teff) {
			fit.Discarded++
			continue
		}
		fit.Samples = append(fit.Samples, s)
	}
	fit.Intercept, fit.Beta, err = fitPowerLaw(fit.Samples)
	if err != nil {
		return nil, err
	}
	return fit, nil
}

// fitPowerLaw fits ln Teff = beta·ln g + intercept to samples by least
// squares.
func fitPowerLaw(samples []SurfaceSample) (intercept, beta float64, err error) {
	if len(samples) < MinFitSamples {
		return math.NaN(), math.NaN(), &DegeneracyError{Valid: len(samples), Required: MinFitSamples,
			Reason: "too few valid samples"}
	}
	lnG := make([]float64, len(samples))
	lnT := make([]float64, len(samples))
	for i, s := range samples {
		lnG[i] = math.Log(s.Gravity)
		lnT[i] = math.Log(s.Teff)
	}
	if floats.Max(lnG)-floats.Min(lnG) < MinGravitySpread {
		return math.NaN(), math.NaN(), &DegeneracyError{Valid: len(samples), Required: MinFitSamples,
			Reason: "no spread in surface gravity"}
	}
	intercept, beta = stat.LinearRegression(lnG, lnT, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return math.NaN(), math.NaN(), &DegeneracyError{Valid: len(samples), Required: MinFitSamples,
			Reason: "non-finite slope"}
	}
	return intercept, beta, nil
}

// equatorialOmega solves (3/(2+ω²))³ ω² = wfrac² for ω.
func equatorialOmega(wfrac float64) (float64, error) {
	return newton("omega", wfrac, func(w float64) (float64, float64) {
		w2 := w * w
		a := 3 / (2 + w2)
		f := a*a*a*w2 - wfrac*wfrac
		d := w2 + 2
		d2 := d * d
		df := -108 * w * (w2 - 1) / (d2 * d2)
		return f, df
	})
}

// surfaceSample solves for the surface radius and the auxiliary angle θ' at
// colatitude theta. A non-finite θ' iteration leaves Teff as NaN.
func surfaceSample(omega, theta float64) (SurfaceSample, error) {
	w2 := omega * omega
	sin, cos := math.Sincos(theta)
	sin2 := sin * sin

	r, err := newton("radius", 1, func(r float64) (float64, float64) {
		f := w2*r*r*r*sin2 - (2+w2)*r + 2
		df := 3*w2*r*r*sin2 - (2 + w2)
		return f, df
	})
	if err != nil {
		return SurfaceSample{}, err
	}

	ftheta := w2*r*r*r*cos*cos*cos/3 + cos + math.Log(math.Tan(theta/2))
	n, err := newton("theta-prime", theta, func(n float64) (float64, float64) {
		f := math.Cos(n) + math.Log(math.Tan(n/2)) - ftheta
		df := -math.Sin(n) + 1/math.Sin(n)
		return f, df
	})
	var cerr *ConvergenceError
	if errors.As(err, &cerr) && (math.IsNaN(cerr.Last) || math.IsInf(cerr.Last, 0)) {
		n = math.NaN()
	} else if err != nil {
		return SurfaceSample{}, err
	}

	g := math.Sqrt(1/(r*r*r*r) + w2*w2*r*r*sin2 - 2*w2*sin2/r)
	corr := math.Sqrt(math.Tan(n) / math.Tan(theta))
	return SurfaceSample{
		Theta:      theta,
		Radius:     r,
		Gravity:    g,
		Correction: corr,
		Teff:       corr * math.Sqrt(math.Sqrt(g)),
	}, nil
}
