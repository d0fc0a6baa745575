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
	"fmt"
	"math"
	"sort"

	"github.com/mcoughlin/rotstars/roche"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/interp"
)

// Point holds the stellar parameters interpolated from the models.
type Point struct {
	RPole float64 // polar radius [R☉]
	LogL  float64 // log₁₀(L/L☉)
	Age   float64 // [Myr]
}

// Closest interpolates between the rotating models of the tabulated mass
// closest to mass [M☉], at oblateness ob and at age t in units of the
// main-sequence lifetime.
//
// In each track the model with age closest to t is used, and the models are
// interpolated linearly in their current Ω/Ω_crit. If the star rotates
// faster than every model, the fastest model is used.
func (a *Archive) Closest(mass, ob, t float64) (Point, error) {
	w, err := roche.OblatenessToWfrac(ob)
	if err != nil {
		return Point{}, fmt.Errorf("geneva: %w", err)
	}
	models := ModelSet(mass)
	im := 0
	for i, m := range models.Mass {
		if math.Abs(mass-m) < math.Abs(mass-models.Mass[im]) {
			im = i
		}
	}
	log := a.log().WithFields(logrus.Fields{"mass": models.Mass[im], "oblateness": ob, "t": t})

	samples := make([]sample, len(models.Rotation))
	for iv := range models.Rotation {
		track, err := a.Track(models.FileName(im, iv, a.Z))
		if err != nil {
			return Point{}, err
		}
		i, tmax, err := track.closestAge(t)
		if err != nil {
			return Point{}, err
		}
		if t > tmax {
			log.Warnf("requested age not available in %s, taking t/tMS=%.2f", track.Name, tmax)
		}
		samples[iv] = sample{
			w:     track.Omega[i],
			point: Point{RPole: track.RPole[i], LogL: track.LogL[i], Age: track.Age[i] / 1e6},
		}
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].w < samples[j].w })

	fastest := samples[len(samples)-1]
	if w > fastest.w {
		log.Warnf("no model rotating this fast at this age, taking omega=%.2f instead of omega=%.2f",
			fastest.w, w)
		return fastest.point, nil
	}

	// Models that have spun down to the same Ω/Ω_crit can't be told apart.
	uniq := samples[:1]
	for _, s := range samples[1:] {
		if s.w > uniq[len(uniq)-1].w {
			uniq = append(uniq, s)
		}
	}
	if len(uniq) == 1 {
		return uniq[0].point, nil
	}
	ws := make([]float64, len(uniq))
	vals := make([][]float64, 3)
	for i := range vals {
		vals[i] = make([]float64, len(uniq))
	}
	for i, s := range uniq {
		ws[i] = s.w
		vals[0][i], vals[1][i], vals[2][i] = s.point.RPole, s.point.LogL, s.point.Age
	}
	var out [3]float64
	for i, v := range vals {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(ws, v); err != nil {
			return Point{}, fmt.Errorf("geneva: interpolating in rotation: %w", err)
		}
		out[i] = pl.Predict(w)
	}
	return Point{RPole: out[0], LogL: out[1], Age: out[2]}, nil
}

type sample struct {
	w     float64
	point Point
}

// Interp interpolates the models linearly in mass between the two
// tabulated masses enclosing mass [M☉], using Closest at each of them.
// Masses outside the models are taken from the closest tabulated mass.
func (a *Archive) Interp(mass, ob, t float64) (Point, error) {
	masses := ModelSet(mass).Mass
	lo, hi := masses[0], masses[len(masses)-1]
	if mass < lo || mass > hi {
		a.log().WithField("mass", mass).Warnf("mass out of the range [%g, %g], taking the closest model", lo, hi)
		return a.Closest(mass, ob, t)
	}
	i := sort.SearchFloat64s(masses, mass)
	if masses[i] == mass {
		return a.Closest(mass, ob, t)
	}
	ml, mr := masses[i-1], masses[i]
	l, err := a.Closest(ml, ob, t)
	if err != nil {
		return Point{}, err
	}
	r, err := a.Closest(mr, ob, t)
	if err != nil {
		return Point{}, err
	}
	wl, wr := (mr-mass)/(mr-ml), (mass-ml)/(mr-ml)
	return Point{
		RPole: wl*l.RPole + wr*r.RPole,
		LogL:  wl*l.LogL + wr*r.LogL,
		Age:   wl*l.Age + wr*r.Age,
	}, nil
}
