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

// Package cgs holds the physical constants, in CGS units, used by the
// rotating-star solvers. Solvers take a Constants value rather than reading
// package-level state so that callers can substitute their own values.
package cgs

import (
	"fmt"
	"math"
)

// Constants is a set of physical constants in CGS units.
type Constants struct {
	G      float64 `toml:"G"`      // gravitational constant [cm³ g⁻¹ s⁻²]
	Msun   float64 `toml:"Msun"`   // solar mass [g]
	Rsun   float64 `toml:"Rsun"`   // solar radius [cm]
	Lsun   float64 `toml:"Lsun"`   // solar luminosity [erg s⁻¹]
	Tsun   float64 `toml:"Tsun"`   // solar effective temperature [K]
	Sigma  float64 `toml:"Sigma"`  // Stefan-Boltzmann constant [erg cm⁻² s⁻¹ K⁻⁴]
	Parsec float64 `toml:"Parsec"` // [cm]
	C      float64 `toml:"C"`      // speed of light [cm s⁻¹]
	H      float64 `toml:"H"`      // Planck constant [erg s]
	K      float64 `toml:"K"`      // Boltzmann constant [erg K⁻¹]
}

// Default holds CODATA 2018 and IAU 2015 nominal values.
var Default = Constants{
	G:      6.67430e-8,
	Msun:   1.98847e33,
	Rsun:   6.957e10,
	Lsun:   3.828e33,
	Tsun:   5772,
	Sigma:  5.670374419e-5,
	Parsec: 3.0856775814913673e18,
	C:      2.99792458e10,
	H:      6.62607015e-27,
	K:      1.380649e-16,
}

// Validate returns an error if any constant is not a positive finite number.
func (c Constants) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"G", c.G}, {"Msun", c.Msun}, {"Rsun", c.Rsun}, {"Lsun", c.Lsun},
		{"Tsun", c.Tsun}, {"Sigma", c.Sigma}, {"Parsec", c.Parsec},
		{"C", c.C}, {"H", c.H}, {"K", c.K},
	} {
		if !(v.val > 0) || math.IsInf(v.val, 0) {
			return fmt.Errorf("cgs: constant %s = %g must be positive and finite", v.name, v.val)
		}
	}
	return nil
}

// OrDefault returns c, or Default if c is the zero value.
func (c Constants) OrDefault() Constants {
	if c == (Constants{}) {
		return Default
	}
	return c
}
