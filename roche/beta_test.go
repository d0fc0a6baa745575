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

package roche

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
)

func TestBetaLimits(t *testing.T) {
	if b, err := Beta(0); err != nil || b != 0.25 {
		t.Errorf("Beta(0) = %v, %v; want 0.25", b, err)
	}
	if b, err := Beta(1); err != nil || b != 0.13535 {
		t.Errorf("Beta(1) = %v, %v; want 0.13535", b, err)
	}
	if b, err := BetaFromOblateness(1.5); err != nil || b != 0.13535 {
		t.Errorf("BetaFromOblateness(1.5) = %v, %v; want 0.13535", b, err)
	}
	if b, err := BetaFromOblateness(1); err != nil || b != 0.25 {
		t.Errorf("BetaFromOblateness(1) = %v, %v; want 0.25", b, err)
	}
}

func TestBetaDomain(t *testing.T) {
	for _, w := range []float64{-0.01, 1.01, math.NaN()} {
		_, err := Beta(w)
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Errorf("Beta(%g): expected *DomainError, got %v", w, err)
			continue
		}
		if derr.Param != "wfrac" {
			t.Errorf("Beta(%g): param %q", w, derr.Param)
		}
	}
}

func TestBeta(t *testing.T) {
	tests := []struct {
		wfrac, beta float64
	}{
		{wfrac: 0.1, beta: 0.24950500805275805},
		{wfrac: 0.3, beta: 0.2454567607122366},
		{wfrac: 0.5, beta: 0.23680917678493413},
		{wfrac: 0.7, beta: 0.22186851968255822},
		{wfrac: 0.8, beta: 0.21053477091476044},
		{wfrac: 0.9, beta: 0.19377259309775122},
		{wfrac: 0.95, beta: 0.18036971856542838},
		{wfrac: 0.99, beta: 0.15913353765072633},
	}
	prev := BetaVonZeipel
	for _, test := range tests {
		t.Run(fmt.Sprint(test.wfrac), func(t *testing.T) {
			b, err := Beta(test.wfrac)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(b-test.beta) > 1e-6 {
				t.Errorf("beta: %v != %v", b, test.beta)
			}
			if b >= prev {
				t.Errorf("beta %v does not decrease from %v", b, prev)
			}
			prev = b
		})
	}
}

func TestFitBeta(t *testing.T) {
	fit, err := FitBeta(0.8)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(fit.Samples) + fit.Discarded; n != BetaSamples {
		t.Errorf("%d samples, want %d", n, BetaSamples)
	}
	if math.Abs(fit.Omega-0.530564989) > 1e-6 {
		t.Errorf("omega: %v", fit.Omega)
	}
	for i, s := range fit.Samples {
		if s.Theta <= 0 || s.Theta >= math.Pi/2 {
			t.Fatalf("sample %d outside the open interval: θ=%v", i, s.Theta)
		}
		if s.Radius < 1 || s.Radius > 1.5 {
			t.Errorf("sample %d radius %v", i, s.Radius)
		}
		if i > 0 && s.Gravity >= fit.Samples[i-1].Gravity {
			t.Errorf("gravity does not decrease towards the equator at θ=%v", s.Theta)
		}
	}

	// The fit has no hidden state.
	fit2, err := FitBeta(0.8)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fit, fit2) {
		t.Error("repeated fits differ")
	}
}

func TestBetaDegenerate(t *testing.T) {
	sample := func(g, teff float64) SurfaceSample { return SurfaceSample{Gravity: g, Teff: teff} }
	tests := []struct {
		name   string
		fit    func() error
		valid  int
		reason string
	}{
		{
			name: "too few samples",
			fit: func() error {
				_, _, err := fitPowerLaw([]SurfaceSample{sample(1, 1), sample(0.5, 0.9)})
				return err
			},
			valid:  2,
			reason: "too few valid samples",
		},
		{
			name: "constant gravity",
			fit: func() error {
				_, _, err := fitPowerLaw([]SurfaceSample{sample(2, 1), sample(2, 1.1), sample(2, 1.2)})
				return err
			},
			valid:  3,
			reason: "no spread in surface gravity",
		},
		{
			name: "negligible rotation",
			fit: func() error {
				_, err := FitBeta(1e-9)
				return err
			},
			valid:  BetaSamples,
			reason: "no spread in surface gravity",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.fit()
			var derr *DegeneracyError
			if !errors.As(err, &derr) || !errors.Is(err, ErrDegenerate) {
				t.Fatalf("expected *DegeneracyError, got %v", err)
			}
			if derr.Valid != test.valid || derr.Required != MinFitSamples {
				t.Errorf("valid %d required %d; want %d and %d", derr.Valid, derr.Required, test.valid, MinFitSamples)
			}
			if derr.Reason != test.reason {
				t.Errorf("reason %q, want %q", derr.Reason, test.reason)
			}
		})
	}
}

func TestFitPowerLaw(t *testing.T) {
	var samples []SurfaceSample
	for _, g := range []float64{1, 0.8, 0.5, 0.3} {
		samples = append(samples, SurfaceSample{Gravity: g, Teff: 2 * math.Pow(g, 0.2)})
	}
	intercept, beta, err := fitPowerLaw(samples)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(beta-0.2) > 1e-12 || math.Abs(intercept-math.Ln2) > 1e-12 {
		t.Errorf("beta %v intercept %v; want 0.2 and ln 2", beta, intercept)
	}
}

func TestNewton(t *testing.T) {
	x, err := newton("sqrt2", 1, func(x float64) (float64, float64) { return x*x - 2, 2 * x })
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-math.Sqrt2) > 1e-9 {
		t.Errorf("x = %v, want √2", x)
	}

	_, err = newton("no root", 1, func(x float64) (float64, float64) { return x*x + 1, 2 * x })
	var cerr *ConvergenceError
	if !errors.As(err, &cerr) || !errors.Is(err, ErrConvergence) {
		t.Fatalf("expected *ConvergenceError, got %v", err)
	}
	if cerr.Solver != "no root" {
		t.Errorf("solver = %q", cerr.Solver)
	}

	_, err = newton("nan", 1, func(x float64) (float64, float64) { return math.NaN(), 1 })
	if !errors.As(err, &cerr) || !math.IsNaN(cerr.Last) {
		t.Errorf("expected NaN convergence error, got %v", err)
	}
}
