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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// columns are the zero-based indices of the track columns that are read:
// age, mass, log L, log Teff, central H and He fractions, polar-to-equatorial
// radius ratio, Ω/Ω_crit and polar radius.
var columns = [...]int{1, 2, 3, 4, 21, 22, 34, 39, 44}

// headerLines is the number of lines preceding the data in a track file.
const headerLines = 2

// Track is one Geneva evolutionary track.
type Track struct {
	Name string

	Age        []float64 // [yr]
	Mass       []float64 // [M☉]
	LogL       []float64 // log₁₀(L/L☉)
	LogTeff    []float64 // log₁₀(T_eff/K)
	Hfrac      []float64 // central hydrogen mass fraction
	Hefrac     []float64 // central helium mass fraction
	Oblateness []float64 // R_eq/R_pole
	Omega      []float64 // Ω/Ω_crit
	RPole      []float64 // [R☉]
}

// ParseTrack reads a track in the Geneva .dat format.
func ParseTrack(name string, r io.Reader) (*Track, error) {
	t := &Track{Name: name}
	dst := []*[]float64{&t.Age, &t.Mass, &t.LogL, &t.LogTeff, &t.Hfrac, &t.Hefrac,
		&t.Oblateness, &t.Omega, &t.RPole}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for s.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) <= columns[len(columns)-1] {
			return nil, fmt.Errorf("geneva: %s line %d: %d columns; need at least %d",
				name, line, len(fields), columns[len(columns)-1]+1)
		}
		for i, c := range columns {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, fmt.Errorf("geneva: %s line %d column %d: %w", name, line, c, err)
			}
			*dst[i] = append(*dst[i], v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("geneva: reading %s: %w", name, err)
	}
	if len(t.Age) == 0 {
		return nil, fmt.Errorf("geneva: %s has no data", name)
	}
	// The file stores R_pole/R_eq.
	for i, v := range t.Oblateness {
		t.Oblateness[i] = 1 / v
	}
	return t, nil
}

// TMS returns the main-sequence lifetime [yr]: the age of the last model
// before central hydrogen is exhausted. If hydrogen is never exhausted, it
// returns the age of the last model.
func (t *Track) TMS() (float64, error) {
	for i, h := range t.Hfrac {
		if h == 0 {
			if i == 0 {
				return 0, fmt.Errorf("geneva: %s starts with no central hydrogen", t.Name)
			}
			return t.Age[i-1], nil
		}
	}
	return t.Age[len(t.Age)-1], nil
}

// closestAge returns the index of the model whose age in units of the
// main-sequence lifetime is closest to tfrac, and the largest such age in
// the track.
func (t *Track) closestAge(tfrac float64) (index int, max float64, err error) {
	tms, err := t.TMS()
	if err != nil {
		return 0, 0, err
	}
	best := -1.
	for i, age := range t.Age {
		f := age / tms
		if f > max || i == 0 {
			max = f
		}
		d := f - tfrac
		if d < 0 {
			d = -d
		}
		if i == 0 || d < best {
			index, best = i, d
		}
	}
	return index, max, nil
}
