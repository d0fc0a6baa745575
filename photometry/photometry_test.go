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

package photometry

import (
	"errors"
	"math"
	"testing"

	"github.com/mcoughlin/rotstars/cgs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackBody(t *testing.T) {
	c := cgs.Default
	const T = 10000.
	// Wien's displacement law.
	peak := 0.28977719 / T
	b := BlackBody(c, T, peak)
	assert.Greater(t, b, BlackBody(c, T, 0.95*peak))
	assert.Greater(t, b, BlackBody(c, T, 1.05*peak))

	// Rayleigh-Jeans limit.
	const lambda = 10.
	rj := 2 * c.C * c.K * T / math.Pow(lambda, 4)
	assert.InEpsilon(t, rj, BlackBody(c, T, lambda), 1e-5)
}

func TestMagBB(t *testing.T) {
	p := New()
	assert.InDelta(t, 4.474067971241427, p.MagBB(6, 18703, 279), 1e-9)
	// The Sun at 10 pc.
	assert.InDelta(t, 4.853490506565674, p.MagBB(1, 5772, 10), 1e-9)
	assert.InDelta(t, 5, p.MagBB(6, 18703, 2790)-p.MagBB(6, 18703, 279), 1e-12)
}

func TestAverages(t *testing.T) {
	p := New()
	l, err := p.AverageLuminosity(6, 18703, 0.732)
	require.NoError(t, err)
	assert.InEpsilon(t, 5249.582189764385, l, 1e-9)

	teff, err := p.AverageTeff(6, 5224, 0.732)
	require.NoError(t, err)
	assert.InEpsilon(t, 18680.172442601543, teff, 1e-9)

	m, err := p.MagAvgBB(6, 5224, 279, 0.732)
	require.NoError(t, err)
	assert.InDelta(t, 4.172833741480277, m, 1e-9)

	// A non-rotating Sun.
	l, err = p.AverageLuminosity(1, p.Constants.Tsun, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1, l, 1e-3)

	p.Geometry = Ellipsoid
	l, err = p.AverageLuminosity(6, 18703, 0.732)
	require.NoError(t, err)
	assert.InEpsilon(t, 5575.211516505393, l, 1e-9)
	m, err = p.MagAvgBB(6, 5224, 279, 0.732)
	require.NoError(t, err)
	assert.InDelta(t, 4.138079758914462, m, 1e-9)

	_, err = p.AverageTeff(6, 5224, 1.2)
	assert.Error(t, err)
}

func TestAverageRoundTrip(t *testing.T) {
	p := New()
	for _, g := range []Geometry{Roche, Ellipsoid} {
		p.Geometry = g
		l, err := p.AverageLuminosity(4, 15000, 0.5)
		require.NoError(t, err)
		teff, err := p.AverageTeff(4, l, 0.5)
		require.NoError(t, err)
		assert.InEpsilon(t, 15000, teff, 1e-12, "%v", g)
	}
}

// flatModel has the same flux density at every wavelength.
type flatModel float64

func (f flatModel) Flux(teff, logg float64) ([]float64, []float64, error) {
	if logg > 5 {
		return nil, nil, errors.New("no model")
	}
	return []float64{100, 500, 1000, 2000}, []float64{float64(f), float64(f), float64(f), float64(f)}, nil
}

func TestMagModel(t *testing.T) {
	p := New()
	_, err := p.MagModel(6, 18703, 279, 3.5)
	assert.Error(t, err, "no model configured")

	const fnu = 1e-4
	p.Model = flatModel(fnu)
	m, err := p.MagModel(6, 18703, 279, 3.5)
	require.NoError(t, err)
	c := p.Constants
	flambda := c.C * 1e8 * fnu / (5466 * 5466) * 4 * math.Pi
	dist := math.Pow(6*c.Rsun/(279*c.Parsec), 2)
	assert.InDelta(t, -2.5*math.Log10(flambda*dist/3.6e-9), m, 1e-12)

	_, err = p.MagModel(6, 18703, 279, 6)
	assert.Error(t, err)

	// For a flat spectrum the magnitude depends only on the effective
	// radius.
	avg, err := p.MagAvgModel(6, 5224, 279, 0.732, 3.5)
	require.NoError(t, err)
	a, err := p.Area(0.732)
	require.NoError(t, err)
	assert.InDelta(t, m-2.5*math.Log10(a/(4*math.Pi)), avg, 1e-12)
}

func TestParseGeometry(t *testing.T) {
	for _, g := range []Geometry{Roche, Ellipsoid} {
		got, err := ParseGeometry(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	_, err := ParseGeometry("sphere")
	assert.Error(t, err)
}
