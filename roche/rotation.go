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

package roche

import "math"

// MaxOblateness is the equatorial-to-polar radius ratio at critical rotation.
const MaxOblateness = 1.5

// WfracToW converts wfrac = Ω/Ω_crit into W = v_rot/v_orb, the ratio of the
// equatorial rotation velocity to the Keplerian velocity at the equator.
func WfracToW(wfrac float64) (float64, error) {
	if err := checkWfrac(wfrac); err != nil {
		return math.NaN(), err
	}
	if wfrac == 0 {
		return 0, nil
	}
	gam := 2 * math.Cos((math.Pi+math.Acos(wfrac))/3)
	return math.Min(math.Sqrt(gam*gam*gam/wfrac), 1), nil
}

// WToWfrac converts W = v_rot/v_orb into wfrac = Ω/Ω_crit
// (Faes 2015, eq. 1.23).
func WToWfrac(W float64) (float64, error) {
	if !(W >= 0 && W <= 1) {
		return math.NaN(), &DomainError{Param: "W", Value: W, Reason: "must be within [0, 1]"}
	}
	return math.Min(math.Sqrt(27./8*W*W/math.Pow(1+0.5*W*W, 3)), 1), nil
}

// OblatenessToWfrac converts the oblateness R_eq/R_pole into
// wfrac = Ω/Ω_crit (Ekström et al. 2008, eq. 9).
func OblatenessToWfrac(ob float64) (float64, error) {
	if !(ob >= 1 && ob <= MaxOblateness) {
		return math.NaN(), &DomainError{Param: "oblateness", Value: ob,
			Reason: "must be within [1, 1.5]"}
	}
	return math.Min(math.Pow(1.5, 1.5)*math.Sqrt(2*(ob-1)/(ob*ob*ob)), 1), nil
}

// Rotation is a validated rotation state. The zero value is a non-rotating
// star.
type Rotation struct {
	wfrac float64
}

// FromWfrac returns the rotation with Ω/Ω_crit = wfrac.
func FromWfrac(wfrac float64) (Rotation, error) {
	if err := checkWfrac(wfrac); err != nil {
		return Rotation{}, err
	}
	return Rotation{wfrac: wfrac}, nil
}

// FromW returns the rotation with v_rot/v_orb = W.
func FromW(W float64) (Rotation, error) {
	w, err := WToWfrac(W)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{wfrac: w}, nil
}

// FromOblateness returns the rotation with R_eq/R_pole = ob.
func FromOblateness(ob float64) (Rotation, error) {
	w, err := OblatenessToWfrac(ob)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{wfrac: w}, nil
}

// Wfrac returns Ω/Ω_crit.
func (r Rotation) Wfrac() float64 { return r.wfrac }

// W returns v_rot/v_orb.
func (r Rotation) W() float64 {
	W, _ := WfracToW(r.wfrac)
	return W
}

// Oblateness returns R_eq/R_pole.
func (r Rotation) Oblateness() float64 { return Radius(math.Pi/2, r.wfrac) }
