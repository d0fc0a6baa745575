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

// Package hdust reads the stellar parameters of HDUST source files.
//
// Two layouts exist. Legacy two-star files (STAR = 2) give the oblateness
// and polar temperature of the second star directly. Single-star files give
// W, the gravity-darkening exponent and the luminosity, from which the
// shape and polar temperature are solved.
package hdust

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/mcoughlin/rotstars/cgs"
	"github.com/mcoughlin/rotstars/photosphere"
	"github.com/mcoughlin/rotstars/roche"
)

// Source holds the parameters of a source file. Mass, RPole and
// Luminosity are those of star number Stars.
type Source struct {
	Stars int

	Mass  float64 // [M☉]
	RPole float64 // [R☉]

	// Oblateness and TPole [K] are set by legacy files only.
	Oblateness, TPole float64

	// W, Beta and Luminosity [L☉] are set by single-star files only.
	W, Beta, Luminosity float64
}

// Legacy reports whether s was read from a two-star file.
func (src *Source) Legacy() bool { return src.Stars == 2 }

// ReadSource reads a source file. Each parameter is a "name = value" pair;
// names repeated for several stars are counted by line.
func ReadSource(r io.Reader) (*Source, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hdust: reading source: %w", err)
	}

	nf, err := param(lines, "STAR", 1)
	if err != nil {
		return nil, err
	}
	n := int(nf)
	if float64(n) != nf || n < 1 {
		return nil, fmt.Errorf("hdust: invalid star number %g", nf)
	}
	s := &Source{Stars: n}
	for _, p := range []struct {
		name string
		nth  int
		dst  *float64
	}{
		{"M", n, &s.Mass},
		{"R_pole", n, &s.RPole},
	} {
		if *p.dst, err = param(lines, p.name, p.nth); err != nil {
			return nil, err
		}
	}
	if s.Legacy() {
		if s.Oblateness, err = param(lines, "R_eq/R_pole", 1); err != nil {
			return nil, err
		}
		if s.TPole, err = param(lines, "Teff_pole", 1); err != nil {
			return nil, err
		}
		return s, nil
	}
	if s.W, err = param(lines, "W", 1); err != nil {
		return nil, err
	}
	if s.Beta, err = param(lines, "Beta_GD", 1); err != nil {
		return nil, err
	}
	if s.Luminosity, err = param(lines, "L", n); err != nil {
		return nil, err
	}
	return s, nil
}

// param returns the value of name on the nth line that sets it.
func param(lines []string, name string, nth int) (float64, error) {
	re := regexp.MustCompile(`(?:^|\s)` + regexp.QuoteMeta(name) + `\s*=\s*([-+0-9.eEdD]+)`)
	count := 0
	for _, l := range lines {
		m := re.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		count++
		if count < nth {
			continue
		}
		// Fortran double-precision exponents.
		v, err := strconv.ParseFloat(strings.NewReplacer("d", "e", "D", "e").Replace(m[1]), 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("hdust: parameter %s: %w", name, err)
		}
		return v, nil
	}
	return math.NaN(), fmt.Errorf("hdust: parameter %s: found %d of %d occurrences", name, count, nth)
}

// Star holds the parameters of a source star.
type Star struct {
	Mass  float64 // [M☉]
	REq   float64 // equatorial radius [R☉]
	TPole float64 // polar effective temperature [K]
}

// Star returns the mass, equatorial radius and polar temperature of the
// source. Single-star sources are solved at constant luminosity with s,
// which then needs a sigma4b table.
func (src *Source) Star(s *photosphere.Solver) (Star, error) {
	if src.Legacy() {
		return Star{Mass: src.Mass, REq: src.RPole * src.Oblateness, TPole: src.TPole}, nil
	}
	wfrac, err := roche.WToWfrac(src.W)
	if err != nil {
		return Star{}, fmt.Errorf("hdust: %w", err)
	}
	r, err := s.Solve(photosphere.Input{
		Mass:          src.Mass,
		RPole:         src.RPole,
		Luminosity:    src.Luminosity,
		UseLuminosity: true,
		Wfrac:         wfrac,
		Beta:          src.Beta,
	})
	if err != nil {
		return Star{}, fmt.Errorf("hdust: %w", err)
	}
	return Star{Mass: r.Mass, REq: r.RPole * r.Oblateness, TPole: r.TPole}, nil
}

var (
	legacyName = regexp.MustCompile(`_ob(.+?)_H`)
	wName      = regexp.MustCompile(`_W(.+?)_t`)
)

// NameOblateness returns the oblateness encoded in the name of a source
// file, e.g. Be_M04.80_ob1.40_H0.30_Z0.014_bE_Ell in legacy naming or
// Be_M04.80_W0.60_t0.50_Z0.014 otherwise, where the oblateness is 1 + W²/2.
func NameOblateness(path string, legacy bool) (float64, error) {
	name := filepath.Base(path)
	re := wName
	if legacy {
		re = legacyName
	}
	m := re.FindStringSubmatch(name)
	if m == nil {
		return math.NaN(), fmt.Errorf("hdust: no rotation in file name %s", name)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("hdust: file name %s: %w", name, err)
	}
	if legacy {
		return v, nil
	}
	return 1 + v*v/2, nil
}

// VRot returns the equatorial rotation velocity [km s⁻¹] of star at
// oblateness ob, W(ob)·sqrt(GM/R_eq).
func VRot(c cgs.Constants, star Star, ob float64) (float64, error) {
	r, err := roche.FromOblateness(ob)
	if err != nil {
		return math.NaN(), fmt.Errorf("hdust: %w", err)
	}
	return r.W() * math.Sqrt(c.G*c.Msun*star.Mass/(star.REq*c.Rsun)) * 1e-5, nil
}
