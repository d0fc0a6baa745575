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

// Package photometry computes synthetic magnitudes of spherical and
// rotating stars from black-body or model-atmosphere fluxes.
package photometry

import (
	"fmt"
	"math"

	"github.com/mcoughlin/rotstars/cgs"
	"github.com/mcoughlin/rotstars/roche"
	"gonum.org/v1/gonum/interp"
)

// BlackBody returns the Planck spectral radiance B_λ(T)
// [erg s⁻¹ cm⁻² cm⁻¹ sr⁻¹] at wavelength lambda [cm] and temperature T [K].
func BlackBody(c cgs.Constants, T, lambda float64) float64 {
	l5 := lambda * lambda * lambda * lambda * lambda
	return 2 * c.H * c.C * c.C / l5 / math.Expm1(c.H*c.C/(lambda*c.K*T))
}

// FluxModel is a grid of model stellar atmospheres, such as the Kurucz
// models.
type FluxModel interface {
	// Flux returns the emergent flux [erg s⁻¹ cm⁻² Hz⁻¹ sr⁻¹] of the model
	// with the given effective temperature [K] and log₁₀ surface gravity
	// [cgs], at increasing wavelengths [nm].
	Flux(teff, logg float64) (lambda, flux []float64, err error)
}

// Band is a photometric band.
type Band struct {
	Lambda0 float64 // effective wavelength [Å]
	F0      float64 // zero-point flux [erg s⁻¹ cm⁻² Å⁻¹]
}

// V is the Johnson V band.
var V = Band{Lambda0: 5466, F0: 3.6e-9}

// Geometry is the shape assumed for the surface area of a rotating star.
type Geometry int

const (
	// Roche is the equipotential surface of a Roche rotator.
	Roche Geometry = iota
	// Ellipsoid is an oblate ellipsoid with the oblateness of the
	// Roche rotator.
	Ellipsoid
)

func (g Geometry) String() string {
	switch g {
	case Roche:
		return "roche"
	case Ellipsoid:
		return "ellipsoid"
	default:
		return fmt.Sprintf("Geometry(%d)", int(g))
	}
}

// ParseGeometry returns the geometry named s.
func ParseGeometry(s string) (Geometry, error) {
	switch s {
	case "roche":
		return Roche, nil
	case "ellipsoid":
		return Ellipsoid, nil
	}
	return 0, fmt.Errorf("photometry: unknown geometry %q", s)
}

// Photometer computes magnitudes. Radii are in R☉, temperatures in K,
// luminosities in L☉ and distances in pc. Rotation is given as
// W = v_rot/v_orb.
type Photometer struct {
	Constants  cgs.Constants
	Resolution int
	Band       Band
	Geometry   Geometry

	// Model is required only by the model-atmosphere magnitudes.
	Model FluxModel
}

// New returns a V-band Photometer with Roche geometry.
func New() *Photometer {
	return &Photometer{
		Constants:  cgs.Default,
		Resolution: roche.DefaultResolution,
		Band:       V,
		Geometry:   Roche,
	}
}

func (p *Photometer) mag(fluxLambda, r, d float64) float64 {
	c := p.Constants
	x := r * c.Rsun / (d * c.Parsec)
	return -2.5 * math.Log10(fluxLambda*x*x/p.Band.F0)
}

// bbFlux returns the black-body surface flux [erg s⁻¹ cm⁻² Å⁻¹] at the band
// wavelength.
func (p *Photometer) bbFlux(T float64) float64 {
	return BlackBody(p.Constants, T, p.Band.Lambda0*1e-8) * math.Pi * 1e-8
}

// modelFlux returns the model surface flux [erg s⁻¹ cm⁻² Å⁻¹] at the band
// wavelength.
func (p *Photometer) modelFlux(T, logg float64) (float64, error) {
	if p.Model == nil {
		return math.NaN(), fmt.Errorf("photometry: no flux model configured")
	}
	lambda, flux, err := p.Model.Flux(T, logg)
	if err != nil {
		return math.NaN(), fmt.Errorf("photometry: flux model at teff=%g, logg=%g: %w", T, logg, err)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(lambda, flux); err != nil {
		return math.NaN(), fmt.Errorf("photometry: flux model at teff=%g, logg=%g: %w", T, logg, err)
	}
	l0 := p.Band.Lambda0
	fnu := pl.Predict(l0 * 1e-1)
	return p.Constants.C * 1e8 * fnu / (l0 * l0) * 4 * math.Pi, nil
}

// MagBB returns the magnitude of a spherical black body of radius R and
// temperature T at distance d.
func (p *Photometer) MagBB(R, T, d float64) float64 {
	return p.mag(p.bbFlux(T), R, d)
}

// MagModel returns the magnitude of a spherical star of radius R,
// temperature T and surface gravity logg at distance d, from the flux model.
func (p *Photometer) MagModel(R, T, d, logg float64) (float64, error) {
	f, err := p.modelFlux(T, logg)
	if err != nil {
		return math.NaN(), err
	}
	return p.mag(f, R, d), nil
}

// Area returns the surface area, in units of the squared polar radius, of
// a star rotating at W.
func (p *Photometer) Area(W float64) (float64, error) {
	wfrac, err := roche.WToWfrac(W)
	if err != nil {
		return math.NaN(), fmt.Errorf("photometry: %w", err)
	}
	n := p.Resolution
	if n == 0 {
		n = roche.DefaultResolution
	}
	switch p.Geometry {
	case Roche:
		return roche.Area(wfrac, n)
	case Ellipsoid:
		return roche.EllipsoidArea(roche.Radius(math.Pi/2, wfrac), n)
	}
	return math.NaN(), fmt.Errorf("photometry: unknown %v", p.Geometry)
}

// AverageLuminosity returns the luminosity of a star rotating at W with
// polar radius Rp and a uniform effective temperature teff.
func (p *Photometer) AverageLuminosity(Rp, teff, W float64) (float64, error) {
	a, err := p.Area(W)
	if err != nil {
		return math.NaN(), err
	}
	return a / (4 * math.Pi) * Rp * Rp * math.Pow(teff/p.Constants.Tsun, 4), nil
}

// AverageTeff returns the uniform effective temperature of a star rotating
// at W with polar radius Rp and luminosity L.
func (p *Photometer) AverageTeff(Rp, L, W float64) (float64, error) {
	a, err := p.Area(W)
	if err != nil {
		return math.NaN(), err
	}
	return math.Pow(L/(a*Rp*Rp/(4*math.Pi)), 0.25) * p.Constants.Tsun, nil
}

// effective returns the radius of the sphere with the area of a star
// rotating at W, and the uniform temperature that gives it luminosity L.
func (p *Photometer) effective(Rp, L, W float64) (reff, teff float64, err error) {
	a, err := p.Area(W)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	reff = math.Sqrt(a/(4*math.Pi)) * Rp
	teff = math.Pow(L/(reff*reff), 0.25) * p.Constants.Tsun
	return reff, teff, nil
}

// MagAvgBB returns the orientation-averaged magnitude of a black-body star
// rotating at W with polar radius Rp and luminosity L, at distance d. The
// star is treated as a sphere with its surface area and a uniform
// temperature.
func (p *Photometer) MagAvgBB(Rp, L, d, W float64) (float64, error) {
	reff, teff, err := p.effective(Rp, L, W)
	if err != nil {
		return math.NaN(), err
	}
	return p.MagBB(reff, teff, d), nil
}

// MagAvgModel is like MagAvgBB, using the flux model with surface
// gravity logg.
func (p *Photometer) MagAvgModel(Rp, L, d, W, logg float64) (float64, error) {
	reff, teff, err := p.effective(Rp, L, W)
	if err != nil {
		return math.NaN(), err
	}
	return p.MagModel(reff, teff, d, logg)
}
