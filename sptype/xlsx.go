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

package sptype

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
)

// xlsxColumns are the column headings of a spreadsheet table, in the order
// written by WriteXLSX.
var xlsxColumns = []string{"type", "tpole", "teff", "mass", "rpole", "luminosity", "bvalue"}

// OpenXLSX reads a table from the spreadsheet at path. See ReadXLSX.
func OpenXLSX(path string) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sptype: %w", err)
	}
	return fromXLSX(f)
}

// ReadXLSX reads a table from the first sheet of a spreadsheet. The first
// row holds the column headings, which are the keys read by Decode in any
// case and order. The type, tpole, mass and rpole columns are required.
// Blank rows are skipped and blank cells read as zero. The table takes the
// name of the sheet.
func ReadXLSX(b []byte) (*Table, error) {
	f, err := xlsx.OpenBinary(b)
	if err != nil {
		return nil, fmt.Errorf("sptype: %w", err)
	}
	return fromXLSX(f)
}

func fromXLSX(f *xlsx.File) (*Table, error) {
	if len(f.Sheets) == 0 || len(f.Sheets[0].Rows) == 0 {
		return nil, fmt.Errorf("sptype: empty spreadsheet")
	}
	sheet := f.Sheets[0]

	col := make(map[string]int)
	for j, c := range sheet.Rows[0].Cells {
		col[strings.ToLower(strings.TrimSpace(c.Value))] = j
	}
	for _, name := range []string{"type", "tpole", "mass", "rpole"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("sptype: sheet %s: missing column %q", sheet.Name, name)
		}
	}

	t := &Table{Name: sheet.Name}
	for i, row := range sheet.Rows {
		// Skip column headers and blank rows.
		if i == 0 || len(row.Cells) == 0 || cell(row, col["type"]) == "" {
			continue
		}
		var r Row
		r.Type = cell(row, col["type"])
		for _, v := range []struct {
			name string
			dst  *float64
		}{
			{"tpole", &r.TPole}, {"teff", &r.Teff}, {"mass", &r.Mass},
			{"rpole", &r.RPole}, {"luminosity", &r.Luminosity}, {"bvalue", &r.BValue},
		} {
			j, ok := col[v.name]
			if !ok {
				continue
			}
			s := cell(row, j)
			if s == "" {
				continue
			}
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("sptype: sheet %s: row %d: %s: %w", sheet.Name, i, v.name, err)
			}
			*v.dst = x
		}
		t.Rows = append(t.Rows, r)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// cell returns the trimmed value of column j of row, or "" if the row is
// too short.
func cell(row *xlsx.Row, j int) string {
	if j >= len(row.Cells) {
		return ""
	}
	return strings.TrimSpace(row.Cells[j].Value)
}

// WriteXLSX writes t to w as a spreadsheet in the format read by ReadXLSX.
func (t *Table) WriteXLSX(w io.Writer) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(t.Name)
	if err != nil {
		return fmt.Errorf("sptype: creating sheet %s: %w", t.Name, err)
	}
	header := sheet.AddRow()
	for _, c := range xlsxColumns {
		header.AddCell().SetString(c)
	}
	for _, r := range t.Rows {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Type)
		for _, v := range []float64{r.TPole, r.Teff, r.Mass, r.RPole, r.Luminosity, r.BValue} {
			row.AddCell().SetFloat(v)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("sptype: writing spreadsheet: %w", err)
	}
	return nil
}
