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

// Package gridinterp interpolates functions tabulated on rectilinear grids.
package gridinterp

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/interp"
)

// Regular is a function tabulated at every combination of the values
// of its axes.
type Regular struct {
	Axes   [][]float64
	Values *sparse.DenseArray
}

// New returns a Regular grid after checking that every axis is strictly
// increasing and that the shape of values matches the axes.
func New(values *sparse.DenseArray, axes ...[]float64) (*Regular, error) {
	if len(values.Shape) != len(axes) {
		return nil, fmt.Errorf("gridinterp: %d-dimensional values for %d axes", len(values.Shape), len(axes))
	}
	for i, a := range axes {
		if len(a) == 0 {
			return nil, fmt.Errorf("gridinterp: axis %d is empty", i)
		}
		if values.Shape[i] != len(a) {
			return nil, fmt.Errorf("gridinterp: axis %d has %d values but the grid has %d", i, len(a), values.Shape[i])
		}
		for j := 1; j < len(a); j++ {
			if !(a[j] > a[j-1]) {
				return nil, fmt.Errorf("gridinterp: axis %d is not strictly increasing at index %d", i, j)
			}
		}
	}
	return &Regular{Axes: axes, Values: values}, nil
}

// Inside reports whether x lies within the bounds of every axis.
func (g *Regular) Inside(x ...float64) bool {
	for i, a := range g.Axes {
		if !(x[i] >= a[0] && x[i] <= a[len(a)-1]) {
			return false
		}
	}
	return true
}

// Linear returns the multilinear interpolation of the grid at x. Coordinates
// outside an axis are clamped to its ends.
func (g *Regular) Linear(x ...float64) float64 {
	if len(x) != len(g.Axes) {
		panic(fmt.Errorf("gridinterp: %d coordinates for %d axes", len(x), len(g.Axes)))
	}
	return g.linear(0, make([]int, len(x)), x)
}

func (g *Regular) linear(axis int, index []int, x []float64) float64 {
	a := g.Axes[axis]
	if axis == len(g.Axes)-1 {
		row := make([]float64, len(a))
		for j := range a {
			index[axis] = j
			row[j] = g.Values.Get(index...)
		}
		if len(a) == 1 {
			return row[0]
		}
		var pl interp.PiecewiseLinear
		if err := pl.Fit(a, row); err != nil {
			panic(err) // axes were checked in New
		}
		return pl.Predict(x[axis])
	}
	lo, hi, w := bracket(a, x[axis])
	index[axis] = lo
	v := g.linear(axis+1, index, x)
	if w == 0 {
		return v
	}
	index[axis] = hi
	vhi := g.linear(axis+1, index, x)
	return v*(1-w) + vhi*w
}

// Nearest returns the grid value at the grid point closest to x along
// every axis.
func (g *Regular) Nearest(x ...float64) float64 {
	index := make([]int, len(g.Axes))
	for i, a := range g.Axes {
		index[i] = Nearest(a, x[i])
	}
	return g.Values.Get(index...)
}

// Nearest returns the index of the value of the increasing slice a that is
// closest to x.
func Nearest(a []float64, x float64) int {
	lo, hi, w := bracket(a, x)
	if w > 0.5 {
		return hi
	}
	return lo
}

// bracket returns the indices of the values of the increasing slice a
// that enclose x, and the fractional position of x between them.
// Values of x outside a are clamped.
func bracket(a []float64, x float64) (lo, hi int, w float64) {
	n := len(a)
	switch {
	case math.IsNaN(x) || x <= a[0]:
		return 0, 0, 0
	case x >= a[n-1]:
		return n - 1, n - 1, 0
	}
	i := sort.SearchFloat64s(a, x)
	if a[i] == x {
		return i, i, 0
	}
	return i - 1, i, (x - a[i-1]) / (a[i] - a[i-1])
}
