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

package hdust

import (
	"math"
	"strings"
	"testing"

	"github.com/mcoughlin/rotstars/cgs"
	"github.com/mcoughlin/rotstars/photosphere"
	"github.com/mcoughlin/rotstars/roche"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacySource = `# two-star source
STAR = 2
 M = 1.0
 R_pole = 1.0
 M = 4.8
 R_pole = 3.2
 R_eq/R_pole = 1.4
 Teff_pole = 1.8d4
`

const singleSource = `STAR = 1
M = 4.8 Msun
R_pole = 3.2
W = 0.6
Beta_GD = 0.22
L = 800.0
`

type constSigma4b float64

func (s constSigma4b) Sigma4b(mass, wfrac float64) (float64, error) { return float64(s), nil }

func TestReadSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   Source
	}{
		{
			name:   "legacy",
			source: legacySource,
			want:   Source{Stars: 2, Mass: 4.8, RPole: 3.2, Oblateness: 1.4, TPole: 18000},
		},
		{
			name:   "single",
			source: singleSource,
			want:   Source{Stars: 1, Mass: 4.8, RPole: 3.2, W: 0.6, Beta: 0.22, Luminosity: 800},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := ReadSource(strings.NewReader(test.source))
			require.NoError(t, err)
			assert.Equal(t, test.want, *s)
			assert.Equal(t, test.want.Stars == 2, s.Legacy())
		})
	}
}

func TestReadSourceErrors(t *testing.T) {
	for _, src := range []string{
		"M = 4.8\n",
		"STAR = 1.5\n",
		"STAR = 2\nM = 4.8\nR_pole = 3.2\n",
		"STAR = 1\nM = 4.8\nR_pole = 3.2\nW = 0.6\nBeta_GD = 0.22\n",
		"STAR = 1\nM = 4.8\nR_pole = 3.2\nW = 0.6\nBeta_GD = 0.22\nL = .e.\n",
	} {
		_, err := ReadSource(strings.NewReader(src))
		assert.Error(t, err, src)
	}
}

func TestStar(t *testing.T) {
	legacy, err := ReadSource(strings.NewReader(legacySource))
	require.NoError(t, err)
	star, err := legacy.Star(nil)
	require.NoError(t, err)
	assert.Equal(t, 4.8, star.Mass)
	assert.InDelta(t, 3.2*1.4, star.REq, 1e-12)
	assert.Equal(t, 18000., star.TPole)

	single, err := ReadSource(strings.NewReader(singleSource))
	require.NoError(t, err)
	s := photosphere.New()
	s.Resolution = 501
	s.Sigma4b = constSigma4b(1e17)
	star, err = single.Star(s)
	require.NoError(t, err)

	wfrac, err := roche.WToWfrac(0.6)
	require.NoError(t, err)
	r, err := s.Solve(photosphere.Input{Mass: 4.8, RPole: 3.2, Luminosity: 800, UseLuminosity: true,
		Wfrac: wfrac, Beta: 0.22})
	require.NoError(t, err)
	assert.Equal(t, Star{Mass: 4.8, REq: 3.2 * r.Oblateness, TPole: r.TPole}, star)
	// The oblateness of a Roche rotator is 1 + W²/2.
	assert.InDelta(t, 3.2*1.18, star.REq, 1e-9)

	// Luminosity input needs a sigma4b table.
	_, err = single.Star(photosphere.New())
	assert.Error(t, err)
}

func TestNameOblateness(t *testing.T) {
	tests := []struct {
		path   string
		legacy bool
		want   float64
		err    bool
	}{
		{path: "/data/Be_M04.80_ob1.40_H0.30_Z0.014_bE_Ell.txt", legacy: true, want: 1.4},
		{path: "Be_M04.80_W0.60_t0.50_Z0.014.src", legacy: false, want: 1.18},
		{path: "Be_M04.80_W0.60_t0.50_Z0.014.src", legacy: true, err: true},
		{path: "star.txt", legacy: false, err: true},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			ob, err := NameOblateness(test.path, test.legacy)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, test.want, ob, 1e-12)
		})
	}
}

func TestVRot(t *testing.T) {
	c := cgs.Default
	star := Star{Mass: 4.8, REq: 4.48, TPole: 18000}
	v, err := VRot(c, star, 1.4)
	require.NoError(t, err)
	want := math.Sqrt(0.8) * math.Sqrt(c.G*c.Msun*4.8/(4.48*c.Rsun)) / 1e5
	assert.InEpsilon(t, want, v, 1e-9)
	assert.InDelta(t, 404.369, v, 1e-3)

	v, err = VRot(c, star, 1)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = VRot(c, star, 1.6)
	assert.ErrorIs(t, err, roche.ErrDomain)
}
