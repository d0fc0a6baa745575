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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			tab, err := ByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, tab.Name)
			assert.Len(t, tab.Rows, len(tab.Types()))
			for _, r := range tab.Rows {
				assert.True(t, r.TPole >= r.Teff, "%s: tpole %g < teff %g", r.Type, r.TPole, r.Teff)
				assert.Greater(t, r.Mass, 0.)
				assert.Greater(t, r.RPole, 0.)
				assert.Greater(t, r.Luminosity, 0.)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tab := Harmanec1988()
	r, err := tab.Lookup("B2.0")
	require.NoError(t, err)
	assert.Equal(t, Row{Type: "B2.0", TPole: 23121, Teff: 23121, Mass: 8.62, RPole: 4.28,
		Luminosity: 4691.72482578}, r)

	_, err = tab.Lookup("O9.5")
	assert.True(t, errors.Is(err, ErrUnknownType), "%v", err)

	// The undefined rows of the BeAtlas tables are omitted.
	_, err = BeAtlas().Lookup("B0.0")
	assert.True(t, errors.Is(err, ErrUnknownType))
	_, err = BeAtlasN().Lookup("B9.0")
	assert.True(t, errors.Is(err, ErrUnknownType))
	r, err = BeAtlasN().Lookup("B0.0")
	require.NoError(t, err)
	assert.Equal(t, 28905.8, r.TPole)

	r, err = DeJager1987IV().Lookup("B1.0")
	require.NoError(t, err)
	assert.Equal(t, Row{Type: "B1.0", BValue: 1.5, TPole: 22915, Teff: 22915, Mass: 10.17,
		RPole: 6.11, Luminosity: 9222}, r)
}

func TestCopies(t *testing.T) {
	a := Harmanec1988()
	a.Rows[0].Mass = -1
	b := Harmanec1988()
	assert.Equal(t, 14.57, b.Rows[0].Mass)
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("nosuchtable")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	const data = `
name = "custom"

[[row]]
type = "B2.0"
tpole = 23000.0
mass = 8.5
rpole = 4.3
luminosity = 4700.0

[[row]]
type = "B3.0"
tpole = 19000.0
teff = 18000.0
mass = 6.0
rpole = 3.5
luminosity = 1500.0
`
	tab, err := Decode(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "custom", tab.Name)
	assert.Equal(t, []string{"B2.0", "B3.0"}, tab.Types())
	assert.Equal(t, 23000., tab.Rows[0].Teff)
	assert.Equal(t, 18000., tab.Rows[1].Teff)

	_, err = Decode(strings.NewReader("name = \"empty\"\n"))
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("[[row]]\ntype = \"B1.0\"\nmass = 1.0\n"))
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("[[row"))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	want := SchmidtKaller1982()
	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))
	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
