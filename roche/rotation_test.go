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
	"testing"
)

func TestWfracW(t *testing.T) {
	tests := []struct {
		wfrac, W float64
	}{
		{wfrac: 0, W: 0},
		{wfrac: 0.1, W: 0.054554653861375244},
		{wfrac: 0.5, W: 0.2894445231873701},
		{wfrac: 0.8, W: 0.530564989003998},
		{wfrac: 0.99, W: 0.8828323883746989},
		{wfrac: 1, W: 1},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.wfrac), func(t *testing.T) {
			W, err := WfracToW(test.wfrac)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(W-test.W) > 1e-12 {
				t.Errorf("W: %v != %v", W, test.W)
			}
			w, err := WToWfrac(W)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(w-test.wfrac) > 1e-9 {
				t.Errorf("round trip: %v != %v", w, test.wfrac)
			}
		})
	}
}

func TestOblatenessRoundTrip(t *testing.T) {
	for ob := 1.0; ob < 1.5; ob += 0.01 {
		w, err := OblatenessToWfrac(ob)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Oblateness(w)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-ob) > 1e-4 {
			t.Errorf("oblateness %g round trips to %g", ob, got)
		}
	}
	if w, err := OblatenessToWfrac(1.25); err != nil || math.Abs(w-0.92951600308978) > 1e-12 {
		t.Errorf("OblatenessToWfrac(1.25) = %v, %v", w, err)
	}
}

func TestRotation(t *testing.T) {
	r, err := FromOblateness(1.1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Wfrac()-0.7121358652733096) > 1e-12 {
		t.Errorf("wfrac: %v", r.Wfrac())
	}
	// ob = 1 + W²/2 for a Roche rotator.
	if math.Abs(r.W()-math.Sqrt(2*0.1)) > 1e-9 {
		t.Errorf("W: %v", r.W())
	}
	if math.Abs(r.Oblateness()-1.1) > 1e-9 {
		t.Errorf("oblateness: %v", r.Oblateness())
	}

	r2, err := FromW(r.W())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r2.Wfrac()-r.Wfrac()) > 1e-9 {
		t.Errorf("FromW: %v != %v", r2.Wfrac(), r.Wfrac())
	}

	var zero Rotation
	if zero.Wfrac() != 0 || zero.W() != 0 || math.Abs(zero.Oblateness()-1) > 1e-12 {
		t.Errorf("zero rotation: %+v", zero)
	}
}

func TestRotationDomain(t *testing.T) {
	tests := []struct {
		name string
		f    func() (Rotation, error)
	}{
		{name: "wfrac", f: func() (Rotation, error) { return FromWfrac(1.01) }},
		{name: "W", f: func() (Rotation, error) { return FromW(-0.2) }},
		{name: "oblateness low", f: func() (Rotation, error) { return FromOblateness(0.9) }},
		{name: "oblateness high", f: func() (Rotation, error) { return FromOblateness(1.6) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.f()
			var derr *DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("expected *DomainError, got %v", err)
			}
			if !errors.Is(err, ErrDomain) {
				t.Errorf("%v does not match ErrDomain", err)
			}
		})
	}
}
