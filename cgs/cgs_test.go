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

package cgs

import "testing"

func TestValidate(t *testing.T) {
	if err := Default.Validate(); err != nil {
		t.Fatal(err)
	}
	c := Default
	c.Sigma = 0
	if err := c.Validate(); err == nil {
		t.Error("zero Stefan-Boltzmann constant should not validate")
	}
}

func TestOrDefault(t *testing.T) {
	if got := (Constants{}).OrDefault(); got != Default {
		t.Errorf("zero value: %+v", got)
	}
	c := Default
	c.G = 1
	if got := c.OrDefault(); got.G != 1 {
		t.Errorf("G = %g, want 1", got.G)
	}
}
