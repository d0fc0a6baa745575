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

// Package sptype provides spectral-type lookup tables for B stars: polar
// temperature, mass, polar radius and luminosity by spectral subtype.
// The built-in tables are returned as fresh copies, so callers may modify
// them without affecting other users.
package sptype

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

// ErrUnknownType is returned when a spectral type is not in a table.
var ErrUnknownType = errors.New("sptype: unknown spectral type")

// Row holds the stellar parameters of one spectral subtype.
type Row struct {
	Type       string  `toml:"type"`
	TPole      float64 `toml:"tpole"`      // polar effective temperature [K]
	Teff       float64 `toml:"teff"`       // mean effective temperature [K]
	Mass       float64 `toml:"mass"`       // [M☉]
	RPole      float64 `toml:"rpole"`      // polar radius [R☉]
	Luminosity float64 `toml:"luminosity"` // [L☉]

	// BValue is the de Jager & Nieuwenhuijzen spectral-type parameter,
	// or zero when the table does not carry it.
	BValue float64 `toml:"bvalue"`
}

// Table is a named list of spectral subtypes.
type Table struct {
	Name string `toml:"name"`
	Rows []Row  `toml:"row"`
}

// Lookup returns the row for the given spectral type, e.g. "B2.0".
func (t *Table) Lookup(spType string) (Row, error) {
	for _, r := range t.Rows {
		if r.Type == spType {
			return r, nil
		}
	}
	return Row{}, fmt.Errorf("%w %q in table %s", ErrUnknownType, spType, t.Name)
}

// Types returns the spectral types in the table, in table order.
func (t *Table) Types() []string {
	o := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		o[i] = r.Type
	}
	return o
}

// Decode reads a TOML table of the form
//
//	name = "mytable"
//	[[row]]
//	type = "B2.0"
//	tpole = 23121.0
//	mass = 8.62
//	rpole = 4.28
//	luminosity = 4691.7
//
// Rows that leave teff unset take it from tpole.
func Decode(r io.Reader) (*Table, error) {
	t := new(Table)
	if _, err := toml.NewDecoder(r).Decode(t); err != nil {
		return nil, fmt.Errorf("sptype: decoding table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate checks the rows of a table read from a file and fills in
// missing mean temperatures.
func (t *Table) validate() error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("sptype: table %q has no rows", t.Name)
	}
	for i, row := range t.Rows {
		if row.Type == "" {
			return fmt.Errorf("sptype: table %q: row %d has no type", t.Name, i)
		}
		if !(row.TPole > 0 && row.Mass > 0 && row.RPole > 0) {
			return fmt.Errorf("sptype: table %q: row %s: tpole, mass and rpole must be positive",
				t.Name, row.Type)
		}
		if row.Teff == 0 {
			t.Rows[i].Teff = row.TPole
		}
	}
	return nil
}

// Encode writes t in the format read by Decode.
func (t *Table) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(t); err != nil {
		return fmt.Errorf("sptype: encoding table %s: %w", t.Name, err)
	}
	return nil
}

var builtin = map[string]func() *Table{
	"harmanec1988":      Harmanec1988,
	"schmidtkaller1982": SchmidtKaller1982,
	"dejager1987v":      DeJager1987V,
	"dejager1987iv":     DeJager1987IV,
	"dejager1987iii":    DeJager1987III,
	"beatlas":           BeAtlas,
	"beatlasn":          BeAtlasN,
}

// Names returns the names of the built-in tables.
func Names() []string {
	o := make([]string, 0, len(builtin))
	for n := range builtin {
		o = append(o, n)
	}
	sort.Strings(o)
	return o
}

// ByName returns a copy of the built-in table with the given name.
func ByName(name string) (*Table, error) {
	f, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("sptype: no built-in table %q; options are %v", name, Names())
	}
	return f(), nil
}
