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

// Package photosphere solves for the photospheric parameters of a rigidly
// rotating star under the Roche approximation and the von Zeipel
// gravity-darkening law T_eff ∝ g^β.
package photosphere

import (
	"fmt"
	"math"

	"github.com/mcoughlin/rotstars/cgs"
	"github.com/mcoughlin/rotstars/roche"
	"github.com/mcoughlin/rotstars/sptype"
	"github.com/sirupsen/logrus"
)

// ReferenceWfrac is the near-zero rotation rate of the calibration integral
// that fixes the constant-luminosity solution.
const ReferenceWfrac = 1e-4

// Sigma4b returns the σ₄ᵦ normalization of Cranmer (1996, eq. 4.22) for a
// star of the given mass (M☉) and rotation rate.
type Sigma4b interface {
	Sigma4b(mass, wfrac float64) (float64, error)
}

// SpectralTable looks up stellar parameters by spectral type.
type SpectralTable interface {
	Lookup(spType string) (sptype.Row, error)
}

// Input holds the parameters of one star.
type Input struct {
	Mass  float64 // [M☉]
	RPole float64 // polar radius [R☉]

	// TPole is the polar effective temperature [K]. It is ignored when
	// UseLuminosity is set, in which case it is derived from Luminosity [L☉].
	TPole         float64
	Luminosity    float64
	UseLuminosity bool

	Wfrac float64 // Ω/Ω_crit
	Beta  float64 // gravity-darkening exponent

	// SpectralType, if set, overrides Mass, RPole and TPole with the
	// row of the solver's spectral table.
	SpectralType string
}

// Result holds the photospheric solution of a rotating star. Temperatures
// are in K, areas in cm², luminosities in L☉, velocities in cm s⁻¹ and
// surface gravities in cgs.
type Result struct {
	Input Input

	// Mass, RPole and TPoleInput are the parameters actually used, after
	// luminosity conversion and spectral-type lookup.
	Mass, RPole, TPoleInput float64

	Oblateness float64 // R_eq/R_pole
	W          float64 // v_rot/v_orb

	// TPole and TEqConstL are the polar and equatorial temperatures of the
	// star that keeps the luminosity of its non-rotating counterpart.
	// TEq is the equatorial temperature at the input proportionality
	// constant.
	TPole, TEq, TEqConstL float64

	// TRatio is TPole/TEqConstL.
	TRatio float64

	// AreaRPole is the surface area in units of the squared polar radius.
	Area, AreaRPole float64

	// Luminosity is the luminosity of the rotating star at the input polar
	// temperature. LuminosityNonRotating is that of a spherical star with the
	// same polar radius and temperature, which is also the luminosity of the
	// constant-luminosity solution.
	Luminosity, LuminosityNonRotating float64

	OmegaCrit float64 // critical angular velocity [rad s⁻¹]

	VRot, VOrb, VCrit float64

	LogGPole, LogGEq float64

	// C and Cw are the von Zeipel proportionality constants of the input
	// and the constant-luminosity solutions.
	C, Cw float64
}

// Solver computes photospheric solutions. The zero value is not usable;
// use New.
type Solver struct {
	Constants cgs.Constants

	// Resolution is the number of colatitude grid points of the surface
	// integrals. See roche.DefaultResolution.
	Resolution int

	// Sigma4b is required only for luminosity input.
	Sigma4b Sigma4b

	// Table is required only when Input.SpectralType is set.
	Table SpectralTable

	Log logrus.FieldLogger
}

// New returns a Solver with the default constants and resolution.
func New() *Solver {
	return &Solver{
		Constants:  cgs.Default,
		Resolution: roche.DefaultResolution,
		Log:        logrus.StandardLogger(),
	}
}

func (s *Solver) log() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

// Solve returns the photospheric solution for in. It has no side effects,
// and identical inputs give identical results.
func (s *Solver) Solve(in Input) (*Result, error) {
	if err := s.Constants.Validate(); err != nil {
		return nil, fmt.Errorf("photosphere: %w", err)
	}
	if !(in.Wfrac >= 0 && in.Wfrac < 1) {
		return nil, &roche.DomainError{Param: "wfrac", Value: in.Wfrac, Reason: "must be within [0, 1)"}
	}
	if !(in.Beta > 0) {
		return nil, &roche.DomainError{Param: "beta", Value: in.Beta, Reason: "must be positive"}
	}
	cst := s.Constants
	n := s.Resolution
	if n == 0 {
		n = roche.DefaultResolution
	}

	wfrac := in.Wfrac
	if wfrac == 0 {
		wfrac = 1e-9
	}
	beta := in.Beta
	log := s.log().WithFields(logrus.Fields{"wfrac": in.Wfrac, "beta": beta})

	var mass, rp, tp float64
	if in.SpectralType != "" {
		if s.Table == nil {
			return nil, fmt.Errorf("photosphere: spectral type %q given but no spectral table is configured",
				in.SpectralType)
		}
		row, err := s.Table.Lookup(in.SpectralType)
		if err != nil {
			return nil, fmt.Errorf("photosphere: %w", err)
		}
		log.WithField("type", row.Type).Debug("using spectral-type parameters")
		mass, rp, tp = row.Mass, row.RPole, row.TPole
	} else {
		if !(in.Mass > 0) {
			return nil, &roche.DomainError{Param: "mass", Value: in.Mass, Reason: "must be positive"}
		}
		if !(in.RPole > 0) {
			return nil, &roche.DomainError{Param: "polar radius", Value: in.RPole, Reason: "must be positive"}
		}
		mass, rp = in.Mass, in.RPole
		if in.UseLuminosity {
			if !(in.Luminosity > 0) {
				return nil, &roche.DomainError{Param: "luminosity", Value: in.Luminosity, Reason: "must be positive"}
			}
			if s.Sigma4b == nil {
				return nil, fmt.Errorf("photosphere: luminosity input requires a sigma4b table")
			}
			s4b, err := s.Sigma4b.Sigma4b(mass, wfrac)
			if err != nil {
				return nil, fmt.Errorf("photosphere: converting luminosity: %w", err)
			}
			M, R := mass*cst.Msun, rp*cst.Rsun
			tp = math.Pow(in.Luminosity*cst.Lsun/cst.Sigma/s4b, 0.25) * math.Pow(cst.G*M/(R*R), beta)
			log.WithFields(logrus.Fields{"sigma4b": s4b, "tpole": tp}).Debug("converted luminosity to polar temperature")
		} else {
			if !(in.TPole > 0) {
				return nil, &roche.DomainError{Param: "polar temperature", Value: in.TPole, Reason: "must be positive"}
			}
			tp = in.TPole
		}
	}

	m := newModel(cst, mass, rp, beta, n)
	R, GM, wcrit := m.R, m.GM, m.wcrit
	C := math.Pow(tp, 1/beta) / math.Abs(GM/(R*R))
	g := m.gravity

	lw, err := m.integral(wfrac)
	if err != nil {
		return nil, fmt.Errorf("photosphere: luminosity integral: %w", err)
	}
	l0, err := m.integral(ReferenceWfrac)
	if err != nil {
		return nil, fmt.Errorf("photosphere: reference luminosity integral: %w", err)
	}
	if !(lw > 0) || math.IsInf(lw, 0) {
		return nil, fmt.Errorf("photosphere: luminosity integral is %g", lw)
	}
	Cw := math.Pow(l0/lw, 1/(4*beta)) * C

	area, err := roche.Area(wfrac, n)
	if err != nil {
		return nil, fmt.Errorf("photosphere: area: %w", err)
	}
	ob := roche.Radius(math.Pi/2, wfrac)
	gPole := math.Abs(g(wfrac, 0))
	gEq := math.Abs(g(wfrac, math.Pi/2))

	res := &Result{
		Input:                 in,
		Mass:                  mass,
		RPole:                 rp,
		TPoleInput:            tp,
		Oblateness:            ob,
		W:                     math.Sqrt(2 * (ob - 1)),
		TPole:                 math.Pow(Cw*gPole, beta),
		TEq:                   math.Pow(C*gEq, beta),
		TEqConstL:             math.Pow(Cw*gEq, beta),
		AreaRPole:             area,
		Area:                  area * R * R,
		Luminosity:            cst.Sigma * R * R * math.Pow(C, 4*beta) * lw / cst.Lsun,
		LuminosityNonRotating: 4 * math.Pi * R * R * cst.Sigma * math.Pow(tp, 4) / cst.Lsun,
		OmegaCrit:             wcrit,
		VRot:                  wcrit * wfrac * R * ob,
		VOrb:                  math.Sqrt(GM / (R * ob)),
		VCrit:                 wcrit * R * roche.Radius(math.Pi/2, 1),
		LogGPole:              math.Log10(gPole),
		LogGEq:                math.Log10(gEq),
		C:                     C,
		Cw:                    Cw,
	}
	res.TRatio = res.TPole / res.TEqConstL
	log.WithFields(logrus.Fields{"oblateness": ob, "tpole": res.TPole}).Debug("solved photosphere")
	return res, nil
}

// model holds the physical scales of a Roche rotator.
type model struct {
	R, GM, wcrit, beta float64
	n                  int
}

func newModel(cst cgs.Constants, mass, rpole, beta float64, n int) model {
	R := rpole * cst.Rsun
	GM := cst.G * mass * cst.Msun
	return model{R: R, GM: GM, wcrit: math.Sqrt(8 * GM / (27 * R * R * R)), beta: beta, n: n}
}

// gravity returns the radial effective gravity at colatitude th for
// rotation rate w. It is negative where gravity exceeds the centrifugal
// acceleration.
func (m model) gravity(w, th float64) float64 {
	r := roche.Radius(th, w)
	sin := math.Sin(th)
	rr := m.R * r
	return (m.wcrit*w)*(m.wcrit*w)*m.R*r*sin*sin - m.GM/(rr*rr)
}

// integral integrates r²|g|^(4β) over the surface, in units of the squared
// polar radius.
func (m model) integral(w float64) (float64, error) {
	return roche.Integrate(func(th float64) float64 {
		r := roche.Radius(th, w)
		return r * r * math.Pow(math.Abs(m.gravity(w, th)), 4*m.beta)
	}, m.n)
}

// GravityIntegral returns σ₄ᵦ, the surface integral of |g|^(4β) in cgs
// units, for a star of the given mass (M☉), polar radius (R☉) and rotation.
// A star with polar temperature T_pole then has luminosity
// σ T_pole⁴ σ₄ᵦ / g_pole^(4β).
func (s *Solver) GravityIntegral(mass, rpole, wfrac, beta float64) (float64, error) {
	if err := s.Constants.Validate(); err != nil {
		return math.NaN(), fmt.Errorf("photosphere: %w", err)
	}
	switch {
	case !(wfrac >= 0 && wfrac < 1):
		return math.NaN(), &roche.DomainError{Param: "wfrac", Value: wfrac, Reason: "must be within [0, 1)"}
	case !(beta > 0):
		return math.NaN(), &roche.DomainError{Param: "beta", Value: beta, Reason: "must be positive"}
	case !(mass > 0):
		return math.NaN(), &roche.DomainError{Param: "mass", Value: mass, Reason: "must be positive"}
	case !(rpole > 0):
		return math.NaN(), &roche.DomainError{Param: "polar radius", Value: rpole, Reason: "must be positive"}
	}
	if wfrac == 0 {
		wfrac = 1e-9
	}
	n := s.Resolution
	if n == 0 {
		n = roche.DefaultResolution
	}
	m := newModel(s.Constants, mass, rpole, beta, n)
	l, err := m.integral(wfrac)
	if err != nil {
		return math.NaN(), fmt.Errorf("photosphere: %w", err)
	}
	return l * m.R * m.R, nil
}
