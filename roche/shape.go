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

/*
Package roche models the surface of a rigidly rotating, centrally condensed
star (a Roche rotator) and the von Zeipel gravity darkening of its
photosphere.

Rotation is measured by wfrac = Ω/Ω_crit, where Ω_crit is the break-up
angular velocity. Radii are normalized to the polar radius and colatitude θ
is measured from the pole (θ = 0) to the equator (θ = π/2).
*/
package roche

import "math"

// wfracFloor replaces a zero rotation rate, where the closed-form radius
// is 0/0. The limit value is still 1.
const wfracFloor = 1e-9

// Radius returns the Roche surface radius at colatitude theta, normalized
// to the polar radius, for rotation rate wfrac.
//
// The closed form is r = -3 cos((arccos(u) + 4π)/3) / u with u = wfrac sinθ,
// which is evaluated as the equivalent 3 sin(arcsin(u)/3) / u to avoid
// cancellation at small u. Radius(0, w) is exactly 1 and Radius(π/2, w)
// is the oblateness. Radius returns NaN if wfrac is outside [0, 1].
func Radius(theta, wfrac float64) float64 {
	if wfrac == 0 {
		wfrac = wfracFloor
	}
	if theta == 0 {
		return 1
	}
	u := wfrac * math.Sin(theta)
	return 3 * math.Sin(math.Asin(u)/3) / u
}

// Oblateness returns the ratio of equatorial to polar radius,
// Radius(π/2, wfrac). It lies within [1, 1.5].
func Oblateness(wfrac float64) (float64, error) {
	if err := checkWfrac(wfrac); err != nil {
		return math.NaN(), err
	}
	return Radius(math.Pi/2, wfrac), nil
}

// EllipsoidRadius returns the radius of an oblate ellipsoid with
// equatorial-to-polar radius ratio rf at colatitude theta, normalized to
// the polar radius.
func EllipsoidRadius(theta, rf float64) float64 {
	c, s := math.Cos(theta), rf*math.Sin(theta)
	return math.Sqrt(c*c + s*s)
}
