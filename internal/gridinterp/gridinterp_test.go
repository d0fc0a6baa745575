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

package gridinterp

import (
	"testing"

	"github.com/ctessum/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plane fills a 3-d grid with f(x, y, z) = 1 + 2x - y + 0.5z, which
// multilinear interpolation reproduces exactly.
func plane(t *testing.T) *Regular {
	x := []float64{0, 1, 3}
	y := []float64{-1, 0.5}
	z := []float64{10, 20, 25, 40}
	v := sparse.ZerosDense(len(x), len(y), len(z))
	for i, xi := range x {
		for j, yj := range y {
			for k, zk := range z {
				v.Set(1+2*xi-yj+0.5*zk, i, j, k)
			}
		}
	}
	g, err := New(v, x, y, z)
	require.NoError(t, err)
	return g
}

func TestLinear(t *testing.T) {
	g := plane(t)
	f := func(x, y, z float64) float64 { return 1 + 2*x - y + 0.5*z }
	tests := [][3]float64{
		{0, -1, 10},
		{3, 0.5, 40},
		{0.5, 0, 15},
		{2.2, -0.3, 33},
		{1, 0.5, 25},
	}
	for _, x := range tests {
		assert.InDelta(t, f(x[0], x[1], x[2]), g.Linear(x[0], x[1], x[2]), 1e-12, "%v", x)
		assert.True(t, g.Inside(x[0], x[1], x[2]))
	}
	// Clamped outside.
	assert.InDelta(t, f(3, 0.5, 10), g.Linear(5, 2, 0), 1e-12)
	assert.False(t, g.Inside(5, 2, 0))
}

func TestNearest(t *testing.T) {
	g := plane(t)
	assert.Equal(t, g.Values.Get(1, 1, 2), g.Nearest(1.4, 0.4, 24))
	assert.Equal(t, g.Values.Get(2, 0, 3), g.Nearest(100, -100, 100))

	a := []float64{1, 2, 4}
	assert.Equal(t, 0, Nearest(a, -3))
	assert.Equal(t, 0, Nearest(a, 1.4))
	assert.Equal(t, 1, Nearest(a, 2.9))
	assert.Equal(t, 2, Nearest(a, 3.1))
	assert.Equal(t, 2, Nearest(a, 9))
}

func TestSingletonAxis(t *testing.T) {
	v := sparse.ZerosDense(2, 1)
	v.Set(1, 0, 0)
	v.Set(3, 1, 0)
	g, err := New(v, []float64{0, 1}, []float64{5})
	require.NoError(t, err)
	assert.InDelta(t, 2, g.Linear(0.5, 7), 1e-12)
}

func TestNewErrors(t *testing.T) {
	v := sparse.ZerosDense(2, 2)
	_, err := New(v, []float64{0, 1})
	assert.Error(t, err)
	_, err = New(v, []float64{0, 1}, []float64{0, 1, 2})
	assert.Error(t, err)
	_, err = New(v, []float64{0, 1}, []float64{1, 1})
	assert.Error(t, err)
}
