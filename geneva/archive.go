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

/*
Package geneva reads the Geneva grids of rotating stellar models
(Ekström et al. 2012; Georgy et al. 2013) and interpolates them in mass,
rotation and main-sequence age.

Model archives are .tar.gz files holding one .dat track per mass and
initial rotation rate, named M<mass>Z<metallicity>00V<rotation>.dat.
*/
package geneva

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Models lists the masses and initial rotation rates of a set of
// Geneva tracks.
type Models struct {
	Mass    []float64
	MassStr []string

	// Rotation holds the initial Ω/Ω_crit of the rotating models.
	Rotation    []float64
	RotationStr []string
}

// MaxLowMass is the largest mass of the low-mass model set.
const MaxLowMass = 20.0

// LowMass is the model set for stars up to 20 M☉.
var LowMass = Models{
	Mass:        []float64{1.7, 2, 2.5, 3, 4, 5, 7, 9, 12, 15, 20},
	MassStr:     []string{"1p700", "2p000", "2p500", "3p000", "4p000", "5p000", "7p000", "9p000", "12p00", "15p00", "20p00"},
	Rotation:    []float64{0, 0.1, 0.3, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95},
	RotationStr: []string{"00000", "10000", "30000", "50000", "60000", "70000", "80000", "90000", "95000"},
}

// HighMass is the model set for stars above 20 M☉.
var HighMass = Models{
	Mass:        []float64{20, 25, 32, 40, 60, 85, 120},
	MassStr:     []string{"20p00", "25p00", "32p00", "40p00", "60p00", "85p00", "120p0"},
	Rotation:    []float64{0, 0.568},
	RotationStr: []string{"00000", "56800"},
}

// ModelSet returns the model set covering the given mass [M☉].
func ModelSet(mass float64) Models {
	if mass <= MaxLowMass {
		return LowMass
	}
	return HighMass
}

// FileName returns the name of the track with mass index im and rotation
// index iv at metallicity z.
func (m Models) FileName(im, iv int, z string) string {
	return fmt.Sprintf("M%sZ%s00V%s.dat", m.MassStr[im], z, m.RotationStr[iv])
}

var metallicity = regexp.MustCompile(`^M[0-9p]+Z([0-9]{3})00V[0-9]+\.dat$`)

// ErrNoTrack is returned when an archive lacks a requested track.
var ErrNoTrack = errors.New("geneva: track not in archive")

// Archive holds every track of a model archive. It is read completely when
// opened, and is safe for concurrent use.
type Archive struct {
	// Z is the metallicity code of the archive, e.g. "014" for Z = 0.014.
	Z string

	Log logrus.FieldLogger

	tracks map[string]*Track
}

// OpenArchive reads the archive at path.
func OpenArchive(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geneva: %w", err)
	}
	defer f.Close()
	a, err := ReadArchive(f)
	if err != nil {
		return nil, fmt.Errorf("geneva: reading %s: %w", path, err)
	}
	return a, nil
}

// ReadArchive reads a gzipped tar archive of tracks. Members that are not
// .dat files are skipped. The metallicity is taken from the first track.
func ReadArchive(r io.Reader) (*Archive, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("geneva: %w", err)
	}
	defer gz.Close()

	a := &Archive{Log: logrus.StandardLogger(), tracks: make(map[string]*Track)}
	tr := tar.NewReader(gz)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("geneva: %w", err)
		}
		name := path.Base(h.Name)
		if !h.FileInfo().Mode().IsRegular() || !strings.HasSuffix(name, ".dat") {
			continue
		}
		if a.Z == "" {
			m := metallicity.FindStringSubmatch(name)
			if m == nil {
				return nil, fmt.Errorf("geneva: can't find the metallicity in track name %q", name)
			}
			a.Z = m[1]
		}
		t, err := ParseTrack(name, tr)
		if err != nil {
			return nil, err
		}
		a.tracks[name] = t
	}
	if len(a.tracks) == 0 {
		return nil, fmt.Errorf("geneva: archive holds no tracks")
	}
	return a, nil
}

// Track returns the named track.
func (a *Archive) Track(name string) (*Track, error) {
	t, ok := a.tracks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoTrack, name)
	}
	return t, nil
}

// Names returns the names of the tracks in the archive, sorted.
func (a *Archive) Names() []string {
	o := make([]string, 0, len(a.tracks))
	for n := range a.tracks {
		o = append(o, n)
	}
	sort.Strings(o)
	return o
}

func (a *Archive) log() logrus.FieldLogger {
	if a.Log == nil {
		return logrus.StandardLogger()
	}
	return a.Log
}
