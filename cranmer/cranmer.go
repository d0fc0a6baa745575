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

// Package cranmer tabulates the σ₄ᵦ luminosity normalization of Cranmer
// (1996, eq. 4.22) as a function of stellar mass and rotation rate.
//
// σ₄ᵦ is the surface integral of |g|^(4β), so that a rotating star with polar
// temperature T_pole radiates L = σ T_pole⁴ σ₄ᵦ / g_pole^(4β). Tables are
// computed with a mass-radius relation and the gravity-darkening exponent
// of roche.Beta, and are stored as netCDF files.
package cranmer

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/mcoughlin/rotstars/internal/gridinterp"
	"github.com/mcoughlin/rotstars/internal/ncvar"
	"github.com/mcoughlin/rotstars/photosphere"
	"github.com/mcoughlin/rotstars/roche"
	"github.com/mcoughlin/rotstars/sptype"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/interp"
)

// Table holds σ₄ᵦ [cgs] at every combination of Mass [M☉] and Wfrac.
type Table struct {
	Mass, Wfrac []float64
	Values      *sparse.DenseArray

	grid *gridinterp.Regular
}

// New returns a table with the given axes and values, which must have
// shape [len(mass), len(wfrac)].
func New(mass, wfrac []float64, values *sparse.DenseArray) (*Table, error) {
	g, err := gridinterp.New(values, mass, wfrac)
	if err != nil {
		return nil, fmt.Errorf("cranmer: %w", err)
	}
	return &Table{Mass: mass, Wfrac: wfrac, Values: values, grid: g}, nil
}

// Sigma4b returns σ₄ᵦ at the given mass [M☉] and rotation rate by bilinear
// interpolation. Points outside the table are an error.
func (t *Table) Sigma4b(mass, wfrac float64) (float64, error) {
	if !t.grid.Inside(mass, wfrac) {
		switch {
		case !(mass >= t.Mass[0] && mass <= t.Mass[len(t.Mass)-1]):
			return 0, &roche.DomainError{Param: "mass", Value: mass,
				Reason: fmt.Sprintf("outside the σ₄ᵦ table range [%g, %g]", t.Mass[0], t.Mass[len(t.Mass)-1])}
		default:
			return 0, &roche.DomainError{Param: "wfrac", Value: wfrac,
				Reason: fmt.Sprintf("outside the σ₄ᵦ table range [%g, %g]", t.Wfrac[0], t.Wfrac[len(t.Wfrac)-1])}
		}
	}
	return t.grid.Linear(mass, wfrac), nil
}

// MassRadius returns the polar radius [R☉] as a function of mass [M☉],
// interpolated linearly between the rows of a spectral-type table.
func MassRadius(tab *sptype.Table) (func(mass float64) float64, error) {
	rows := append([]sptype.Row(nil), tab.Rows...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Mass < rows[j].Mass })
	m := make([]float64, len(rows))
	r := make([]float64, len(rows))
	for i, row := range rows {
		m[i], r[i] = row.Mass, row.RPole
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(m, r); err != nil {
		return nil, fmt.Errorf("cranmer: mass-radius relation from %s: %w", tab.Name, err)
	}
	return pl.Predict, nil
}

// Compute tabulates σ₄ᵦ on the given axes, using radius for the polar
// radius of each mass and roche.Beta for the gravity-darkening exponent.
// Rows are computed concurrently.
func Compute(ctx context.Context, s *photosphere.Solver, mass, wfrac []float64, radius func(mass float64) float64) (*Table, error) {
	betas := make([]float64, len(wfrac))
	for j, w := range wfrac {
		b, err := roche.Beta(w)
		if err != nil {
			return nil, fmt.Errorf("cranmer: %w", err)
		}
		betas[j] = b
	}
	values := sparse.ZerosDense(len(mass), len(wfrac))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range mass {
		i, m := i, m
		g.Go(func() error {
			rp := radius(m)
			for j, w := range wfrac {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := s.GravityIntegral(m, rp, w, betas[j])
				if err != nil {
					return fmt.Errorf("cranmer: mass %g, wfrac %g: %w", m, w, err)
				}
				values.Set(v, i, j)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return New(mass, wfrac, values)
}

// DefaultMass and DefaultWfrac are the axes of the standard table.
var (
	DefaultMass  = []float64{1.7, 2, 2.5, 3, 4, 5, 7, 9, 12, 15, 20}
	DefaultWfrac = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.85, 0.9, 0.95, 0.99}
)

// WriteFile stores t as a netCDF file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cranmer: %w", err)
	}
	h := cdf.NewHeader([]string{"mass", "wfrac"}, []int{len(t.Mass), len(t.Wfrac)})
	h.AddAttribute("", "comment", "Cranmer (1996) sigma4b normalization")
	h.AddVariable("mass", []string{"mass"}, []float64{0})
	h.AddAttribute("mass", "units", "Msun")
	h.AddVariable("wfrac", []string{"wfrac"}, []float64{0})
	h.AddAttribute("wfrac", "description", "Omega/Omega_crit")
	h.AddVariable("sigma4b", []string{"mass", "wfrac"}, []float64{0})
	h.AddAttribute("sigma4b", "units", "cgs")
	h.Define()
	cf, err := cdf.Create(f, h)
	if err != nil {
		f.Close()
		return fmt.Errorf("cranmer: creating %s: %w", path, err)
	}
	for _, v := range []struct {
		name string
		data []float64
	}{
		{"mass", t.Mass},
		{"wfrac", t.Wfrac},
		{"sigma4b", t.Values.Elements},
	} {
		if err := ncvar.Write(cf, v.name, v.data); err != nil {
			f.Close()
			return fmt.Errorf("cranmer: writing %s: %w", path, err)
		}
	}
	return f.Close()
}

// ReadFile reads a table written by WriteFile.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cranmer: %w", err)
	}
	defer f.Close()
	cf, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("cranmer: opening %s: %w", path, err)
	}
	var data [3][]float64
	for i, name := range []string{"mass", "wfrac", "sigma4b"} {
		if data[i], err = ncvar.Read(cf, name); err != nil {
			return nil, fmt.Errorf("cranmer: %s: %w", path, err)
		}
	}
	values := sparse.ZerosDense(len(data[0]), len(data[1]))
	if len(values.Elements) != len(data[2]) {
		return nil, fmt.Errorf("cranmer: %s: sigma4b has %d values; want %d", path, len(data[2]), len(values.Elements))
	}
	copy(values.Elements, data[2])
	return New(data[0], data[1], values)
}
