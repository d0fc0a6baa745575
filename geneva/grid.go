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

package geneva

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/mcoughlin/rotstars/internal/gridinterp"
	"github.com/mcoughlin/rotstars/internal/ncvar"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Axes are the coordinates of a pre-computed grid.
type Axes struct {
	Mass       []float64 // [M☉]
	Oblateness []float64
	T          []float64 // age in units of the main-sequence lifetime
}

// DefaultAxes returns the standard grid axes for the low- or high-mass
// model set.
func DefaultAxes(highMass bool) Axes {
	t := append(floats.Span(make([]float64, 10), 0, 0.9), floats.Span(make([]float64, 21), 1, 1.1)...)
	if highMass {
		return Axes{
			Mass:       append([]float64(nil), HighMass.Mass...),
			Oblateness: []float64{1, 1.05633802817},
			T:          t,
		}
	}
	return Axes{
		Mass:       append([]float64(nil), LowMass.Mass...),
		Oblateness: floats.Span(make([]float64, 6), 1, 1.5),
		T:          t,
	}
}

func (ax Axes) shape() []int { return []int{len(ax.Mass), len(ax.Oblateness), len(ax.T)} }

// Grid holds Archive.Interp evaluated at every point of its axes, for fast
// lookups.
type Grid struct {
	Axes Axes

	// RPole [R☉], LogL and Age [Myr] have shape
	// [len(Mass), len(Oblateness), len(T)].
	RPole, LogL, Age *sparse.DenseArray

	Log logrus.FieldLogger

	grids [3]*gridinterp.Regular
}

func newGrid(ax Axes, rpole, logL, age *sparse.DenseArray) (*Grid, error) {
	g := &Grid{Axes: ax, RPole: rpole, LogL: logL, Age: age, Log: logrus.StandardLogger()}
	for i, v := range []*sparse.DenseArray{rpole, logL, age} {
		var err error
		g.grids[i], err = gridinterp.New(v, ax.Mass, ax.Oblateness, ax.T)
		if err != nil {
			return nil, fmt.Errorf("geneva: %w", err)
		}
	}
	return g, nil
}

// PreCompute evaluates a.Interp at every point of ax. Masses are computed
// concurrently.
func PreCompute(ctx context.Context, a *Archive, ax Axes) (*Grid, error) {
	rpole := sparse.ZerosDense(ax.shape()...)
	logL := sparse.ZerosDense(ax.shape()...)
	age := sparse.ZerosDense(ax.shape()...)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range ax.Mass {
		i, m := i, m
		g.Go(func() error {
			for j, ob := range ax.Oblateness {
				for k, t := range ax.T {
					if err := ctx.Err(); err != nil {
						return err
					}
					p, err := a.Interp(m, ob, t)
					if err != nil {
						return fmt.Errorf("geneva: mass %g, oblateness %g, t %g: %w", m, ob, t, err)
					}
					rpole.Set(p.RPole, i, j, k)
					logL.Set(p.LogL, i, j, k)
					age.Set(p.Age, i, j, k)
				}
			}
			a.log().WithField("mass", m).Debug("pre-computed mass")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return newGrid(ax, rpole, logL, age)
}

// Interp interpolates the grid trilinearly. Outside the grid, the closest
// grid point is used.
func (g *Grid) Interp(mass, ob, t float64) Point {
	var out [3]float64
	if g.grids[0].Inside(mass, ob, t) {
		for i, gr := range g.grids {
			out[i] = gr.Linear(mass, ob, t)
		}
	} else {
		if g.Log != nil {
			g.Log.WithFields(logrus.Fields{"mass": mass, "oblateness": ob, "t": t}).
				Warn("parameters out of the grid range, taking the closest model")
		}
		for i, gr := range g.grids {
			out[i] = gr.Nearest(mass, ob, t)
		}
	}
	return Point{RPole: out[0], LogL: out[1], Age: out[2]}
}

var gridVars = []string{"mass", "oblateness", "t", "rpole", "logL", "age"}

// WriteGrid stores g as a netCDF file.
func WriteGrid(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("geneva: %w", err)
	}
	dims := []string{"mass", "oblateness", "t"}
	h := cdf.NewHeader(dims, g.Axes.shape())
	h.AddAttribute("", "comment", "Interpolated Geneva stellar models")
	for i, d := range dims {
		h.AddVariable(gridVars[i], []string{d}, []float64{0})
	}
	for _, v := range []struct{ name, units string }{
		{"rpole", "Rsun"}, {"logL", "log10(L/Lsun)"}, {"age", "Myr"},
	} {
		h.AddVariable(v.name, dims, []float64{0})
		h.AddAttribute(v.name, "units", v.units)
	}
	h.Define()
	cf, err := cdf.Create(f, h)
	if err != nil {
		f.Close()
		return fmt.Errorf("geneva: creating %s: %w", path, err)
	}
	data := [][]float64{g.Axes.Mass, g.Axes.Oblateness, g.Axes.T,
		g.RPole.Elements, g.LogL.Elements, g.Age.Elements}
	for i, name := range gridVars {
		if err := ncvar.Write(cf, name, data[i]); err != nil {
			f.Close()
			return fmt.Errorf("geneva: writing %s: %w", path, err)
		}
	}
	return f.Close()
}

// ReadGrid reads a grid written by WriteGrid.
func ReadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geneva: %w", err)
	}
	defer f.Close()
	cf, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("geneva: opening %s: %w", path, err)
	}
	data := make([][]float64, len(gridVars))
	for i, name := range gridVars {
		if data[i], err = ncvar.Read(cf, name); err != nil {
			return nil, fmt.Errorf("geneva: %s: %w", path, err)
		}
	}
	ax := Axes{Mass: data[0], Oblateness: data[1], T: data[2]}
	cubes := make([]*sparse.DenseArray, 3)
	for i := range cubes {
		cubes[i] = sparse.ZerosDense(ax.shape()...)
		if len(cubes[i].Elements) != len(data[3+i]) {
			return nil, fmt.Errorf("geneva: %s: %s has %d values; want %d",
				path, gridVars[3+i], len(data[3+i]), len(cubes[i].Elements))
		}
		copy(cubes[i].Elements, data[3+i])
	}
	return newGrid(ax, cubes[0], cubes[1], cubes[2])
}
