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
)

// Summary writes a human-readable summary of r to w. Entries marked "*"
// belong to the constant-luminosity solution.
func (r *Result) Summary(w io.Writer) error {
	lines := []struct {
		format string
		val    float64
	}{
		{"wfrac     = %.4f\n", r.Input.Wfrac},
		{"W         = %.4f\n", r.W},
		{"Star Mass = %.2f Msun\n", r.Mass},
		{"Rpole     = %.2f Rsun\n", r.RPole},
		{"Req       = %.2f Rpole\n", r.Oblateness},
		{"Teff_pol  = %.1f\n", r.TPoleInput},
		{"Star Area = %.2f Rpole^2\n", r.AreaRPole},
		{"Star Lum. = %.1f\n", r.Luminosity},
		{"Star Lum.*= %.1f\n", r.LuminosityNonRotating},
		{"vrot(km/s)= %.1f\n", r.VRot / 1e5},
		{"vorb(km/s)= %.1f\n", r.VOrb / 1e5},
		{"vcrt(km/s)= %.1f\n", r.VCrit / 1e5},
		{"log(g)pole= %.2f\n", r.LogGPole},
		{"log(g)eq  = %.2f\n", r.LogGEq},
		{"Teff_eq   = %.1f\n", r.TEq},
		{"Teff_eq*  = %.1f\n", r.TEqConstL},
		{"Teff_pol* = %.2f\n", r.TPole},
		{"T_pol/eq* = %.4f\n", r.TRatio},
	}
	if _, err := fmt.Fprintln(w, "# Parameters:"); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, l.format, l.val); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, `# "*" == case where L is constant!`)
	return err
}
