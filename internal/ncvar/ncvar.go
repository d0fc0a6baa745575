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

// Package ncvar reads and writes whole float64 variables of netCDF files.
package ncvar

import (
	"fmt"

	"github.com/ctessum/cdf"
)

// Write writes data to the variable name, which must already be defined.
func Write(f *cdf.File, name string, data []float64) error {
	end := f.Header.Lengths(name)
	n := 1
	for _, l := range end {
		n *= l
	}
	if n != len(data) {
		return fmt.Errorf("ncvar: variable %s holds %d values, not %d", name, n, len(data))
	}
	w := f.Writer(name, make([]int, len(end)), end)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("ncvar: writing variable %s: %w", name, err)
	}
	return nil
}

// Read reads every value of the variable name.
func Read(f *cdf.File, name string) ([]float64, error) {
	r := f.Reader(name, nil, nil)
	if r == nil {
		return nil, fmt.Errorf("ncvar: no variable %s", name)
	}
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("ncvar: reading variable %s: %w", name, err)
	}
	data, ok := buf.([]float64)
	if !ok {
		return nil, fmt.Errorf("ncvar: variable %s has type %T; want []float64", name, buf)
	}
	return data, nil
}
