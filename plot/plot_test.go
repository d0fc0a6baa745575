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

package plot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mcoughlin/rotstars/roche"
)

func TestXYs(t *testing.T) {
	xys := XYs{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if xys.Len() != 2 {
		t.Fatalf("length %d", xys.Len())
	}
	if x, y := xys.XY(1); x != 3 || y != 4 {
		t.Errorf("XY(1) = %v, %v", x, y)
	}
}

func TestLogLog(t *testing.T) {
	fit, err := roche.FitBeta(0.8)
	if err != nil {
		t.Fatal(err)
	}
	samples, line := LogLog(fit)
	if samples.Len() != len(fit.Samples) || line.Len() != len(fit.Samples) {
		t.Fatalf("lengths %d, %d", samples.Len(), line.Len())
	}
	for i := range samples {
		if d := math.Abs(samples[i].Y - line[i].Y); d > 0.05 {
			t.Errorf("sample %d is %g from the fit", i, d)
		}
	}
	g, teff := Profile(fit)
	if g[0].X <= 0 || g[len(g)-1].X >= 90 {
		t.Errorf("colatitudes %g to %g", g[0].X, g[len(g)-1].X)
	}
	if teff[0].Y <= teff[len(teff)-1].Y {
		t.Error("the pole should be hotter than the equator")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	fit, err := roche.FitBeta(0.9)
	if err != nil {
		t.Fatal(err)
	}
	profile := filepath.Join(dir, "profile.png")
	if err := SaveBetaProfile(fit, profile); err != nil {
		t.Fatal(err)
	}
	curve := filepath.Join(dir, "beta.svg")
	if err := SaveBetaCurve([]float64{0, 0.5, 1}, []float64{0.25, 0.2368, 0.13535}, curve); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{profile, curve} {
		fi, err := os.Stat(f)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", f)
		}
	}

	zero, err := roche.FitBeta(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveBetaProfile(zero, filepath.Join(dir, "zero.png")); err == nil {
		t.Error("a fit without samples should not plot")
	}
	if err := SaveBetaCurve([]float64{0}, nil, curve); err == nil {
		t.Error("mismatched lengths should not plot")
	}
}
