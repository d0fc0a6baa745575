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

// Package plot draws gravity-darkening diagnostics with gonum/plot.
package plot

import (
	"fmt"
	"math"

	"github.com/mcoughlin/rotstars/roche"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// XYs implements the gonum.org/v1/plot/plotter.XYer interface.
type XYs []XY

// XY is an x and y value.
type XY struct{ X, Y float64 }

// Len returns the number of X,Y pairs.
func (xys XYs) Len() int {
	return len(xys)
}

// XY return the x and y values at index i, where i < Len()
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// Profile returns the surface gravity and temperature proxy of the fitted
// samples as functions of colatitude in degrees.
func Profile(fit *roche.BetaFit) (gravity, teff XYs) {
	gravity = make(XYs, len(fit.Samples))
	teff = make(XYs, len(fit.Samples))
	for i, s := range fit.Samples {
		deg := s.Theta * 180 / math.Pi
		gravity[i] = XY{X: deg, Y: s.Gravity}
		teff[i] = XY{X: deg, Y: s.Teff}
	}
	return gravity, teff
}

// LogLog returns the samples in the plane of the fit, ln g versus ln Teff,
// together with the fitted line evaluated at the same gravities.
func LogLog(fit *roche.BetaFit) (samples, line XYs) {
	samples = make(XYs, len(fit.Samples))
	line = make(XYs, len(fit.Samples))
	for i, s := range fit.Samples {
		lg := math.Log(s.Gravity)
		samples[i] = XY{X: lg, Y: math.Log(s.Teff)}
		line[i] = XY{X: lg, Y: fit.Intercept + fit.Beta*lg}
	}
	return samples, line
}

// SaveBetaProfile draws the gravity-darkening fit to path. The image format
// is taken from the file extension.
func SaveBetaProfile(fit *roche.BetaFit, path string) error {
	if len(fit.Samples) == 0 {
		return fmt.Errorf("plot: no surface samples for wfrac = %g", fit.Wfrac)
	}
	p := gonumplot.New()
	p.Title.Text = fmt.Sprintf("wfrac = %.3f, β = %.4f", fit.Wfrac, fit.Beta)
	p.X.Label.Text = "ln g"
	p.Y.Label.Text = "ln Teff"

	samples, line := LogLog(fit)
	s, err := plotter.NewScatter(samples)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	l, err := plotter.NewLine(line)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(s, l)
	p.Legend.Add("samples", s)
	p.Legend.Add("fit", l)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: saving %s: %w", path, err)
	}
	return nil
}

// SaveBetaCurve draws β as a function of wfrac to path.
func SaveBetaCurve(wfrac, beta []float64, path string) error {
	if len(wfrac) != len(beta) {
		return fmt.Errorf("plot: %d rotation rates for %d exponents", len(wfrac), len(beta))
	}
	xys := make(XYs, len(wfrac))
	for i := range wfrac {
		xys[i] = XY{X: wfrac[i], Y: beta[i]}
	}
	p := gonumplot.New()
	p.X.Label.Text = "Ω/Ω_crit"
	p.Y.Label.Text = "β"
	l, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(l)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: saving %s: %w", path, err)
	}
	return nil
}
