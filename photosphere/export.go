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

package photosphere

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// SheetName is the name of the worksheet written by WriteXLSX.
const SheetName = "rotstars"

// Columns are the column headings written by WriteXLSX.
var Columns = []string{
	"SpType", "Mass", "Rpole", "Wfrac", "Beta", "Tpole_in",
	"Oblateness", "W", "Tpole", "Teq", "Teq_constL", "Tpole/Teq",
	"Area", "Luminosity", "Luminosity_nonrot",
	"vrot", "vorb", "vcrit", "logg_pole", "logg_eq",
}

func (r *Result) row() []float64 {
	return []float64{
		r.Mass, r.RPole, r.Input.Wfrac, r.Input.Beta, r.TPoleInput,
		r.Oblateness, r.W, r.TPole, r.TEq, r.TEqConstL, r.TRatio,
		r.Area, r.Luminosity, r.LuminosityNonRotating,
		r.VRot / 1e5, r.VOrb / 1e5, r.VCrit / 1e5, r.LogGPole, r.LogGEq,
	}
}

// NewXLSX returns a spreadsheet with one row per result. Velocities are
// in km s⁻¹.
func NewXLSX(results []*Result) (*xlsx.File, error) {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("photosphere: creating sheet: %w", err)
	}
	header := sheet.AddRow()
	for _, c := range Columns {
		header.AddCell().SetString(c)
	}
	for _, r := range results {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Input.SpectralType)
		for _, v := range r.row() {
			row.AddCell().SetFloat(v)
		}
	}
	return f, nil
}

// WriteXLSX writes results to w as a spreadsheet.
func WriteXLSX(w io.Writer, results []*Result) error {
	f, err := NewXLSX(results)
	if err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("photosphere: writing spreadsheet: %w", err)
	}
	return nil
}
