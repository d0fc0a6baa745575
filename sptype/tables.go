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

// Harmanec1988 returns B-star parameters from Harmanec (1988), with B1.5 and
// B2.5 interpolated.
func Harmanec1988() *Table {
	t := &Table{Name: "harmanec1988"}
	for _, r := range [][5]float64{
		// Teff, Mass, Rp, Lum
		{29854.0, 14.57, 5.80, 23948.8487173},
		{28510.0, 13.19, 5.46, 17651.9502267},
		{26182.0, 11.03, 4.91, 10152.9628687},
		{24599.0, 9.72, 4.58, 6883.65832266},
		{23121.0, 8.62, 4.28, 4691.72482578},
		{20980.0, 7.18, 3.90, 2641.00783143},
		{19055.0, 6.07, 3.56, 1497.45695726},
		{17179.0, 5.12, 3.26, 829.555139678},
		{15488.0, 4.36, 3.01, 467.232334920},
		{14093.0, 3.80, 2.81, 279.154727515},
		{12942.0, 3.38, 2.65, 176.569574061},
		{11561.0, 2.91, 2.44, 95.3190701227},
		{10351.0, 2.52, 2.25, 52.0850169839},
	} {
		t.Rows = append(t.Rows, Row{TPole: r[0], Teff: r[0], Mass: r[1], RPole: r[2], Luminosity: r[3]})
	}
	return t.typed(bTypes)
}

// SchmidtKaller1982 returns B-star parameters from Schmidt-Kaller (1982), as
// used by Porter (1996) and Townsend et al. (2004).
func SchmidtKaller1982() *Table {
	t := &Table{Name: "schmidtkaller1982"}
	for _, r := range [][4]float64{
		{30105.0, 17.5, 7.70, 43651.0},
		{27859.0, 14.6, 6.90, 25703.0},
		{25985.0, 12.5, 6.30, 16218.0},
		{24347.0, 10.8, 5.70, 10232.0},
		{22813.0, 9.6, 5.40, 7079.0},
		{21498.0, 8.6, 5.00, 4786.0},
		{20222.0, 7.7, 4.70, 3311.0},
		{18206.0, 6.4, 4.20, 1737.0},
		{16673.0, 5.5, 3.80, 1000.0},
		{15302.0, 4.8, 3.50, 602.0},
		{14103.0, 4.2, 3.20, 363.0},
		{13202.0, 3.8, 3.00, 245.0},
		{12246.0, 3.4, 2.80, 158.0},
	} {
		t.Rows = append(t.Rows, Row{TPole: r[0], Teff: r[0], Mass: r[1], RPole: r[2], Luminosity: r[3]})
	}
	return t.typed(bTypes)
}

// deJager holds de Jager & Nieuwenhuijzen (1987) parameters:
// b-value, then Teff, Mass, Rp, Lum for luminosity classes V, IV and III.
var deJager = [][13]float64{
	{1.200, 26841, 13.8, 6.58, 20134.0, 26911, 15.11, 7.84, 28919.0, 25030, 14.8, 9.93, 34661.0},
	{1.350, 24944, 11.4, 5.82, 11742.0, 24809, 12.30, 6.90, 16183.0, 23009, 12.2, 8.92, 19969.0},
	{1.500, 23213, 9.63, 5.16, 6917.0, 22915, 10.17, 6.11, 9222.0, 21198, 10.2, 8.05, 11731.0},
	{1.650, 21629, 8.17, 4.58, 4118.0, 21204, 8.54, 5.44, 5355.0, 19570, 8.65, 7.31, 7032.0},
	{1.800, 20178, 7.01, 4.08, 2478.0, 19655, 7.27, 4.87, 3171.0, 18105, 7.43, 6.69, 4305.0},
	{1.875, 19498, 6.51, 3.86, 1930.0, 18935, 6.74, 4.62, 2458.0, 17427, 6.93, 6.41, 3396.0},
	{1.950, 18846, 6.07, 3.65, 1508.0, 18250, 6.27, 4.39, 1915.0, 16782, 6.48, 6.16, 2693.0},
	{2.100, 17621, 5.31, 3.28, 928.0, 16972, 5.48, 3.99, 1181.0, 15586, 5.71, 5.71, 1723.0},
	{2.250, 16493, 4.69, 2.95, 578.0, 15810, 4.84, 3.64, 743.0, 14502, 5.10, 5.33, 1128.0},
	{2.400, 15452, 4.18, 2.67, 364.0, 14749, 4.33, 3.36, 478.0, 13519, 4.60, 5.03, 756.0},
	{2.550, 14491, 3.75, 2.42, 232.0, 13780, 3.91, 3.12, 314.0, 12624, 4.20, 4.78, 520.0},
	{2.700, 13601, 3.40, 2.21, 150.0, 12893, 3.57, 2.92, 211.0, 11809, 3.86, 4.58, 366.0},
	{2.850, 12778, 3.10, 2.03, 98.0, 12080, 3.29, 2.76, 145.0, 11065, 3.59, 4.43, 264.0},
}

func deJagerClass(name string, offset int) *Table {
	t := &Table{Name: name}
	for _, r := range deJager {
		t.Rows = append(t.Rows, Row{
			BValue:     r[0],
			TPole:      r[offset],
			Teff:       r[offset],
			Mass:       r[offset+1],
			RPole:      r[offset+2],
			Luminosity: r[offset+3],
		})
	}
	return t.typed(bTypes)
}

// DeJager1987V returns main-sequence (class V) parameters from de Jager &
// Nieuwenhuijzen (1987), as used by Cranmer (2005).
func DeJager1987V() *Table { return deJagerClass("dejager1987v", 1) }

// DeJager1987IV returns class IV parameters from de Jager & Nieuwenhuijzen
// (1987).
func DeJager1987IV() *Table { return deJagerClass("dejager1987iv", 5) }

// DeJager1987III returns class III parameters from de Jager & Nieuwenhuijzen
// (1987).
func DeJager1987III() *Table { return deJagerClass("dejager1987iii", 9) }

// beAtlas holds BeAtlas parameters (core hydrogen fraction 0.3, oblateness
// 1.10): Tpole, Teff, Mass, Rp, Lum.
var beAtlas = [][5]float64{
	{28905.8, 26765.7, 14.6, 7.50, 31183.26},
	{26945.8, 24950.9, 12.5, 6.82, 19471.38},
	{25085.2, 23228.2, 10.8, 6.23, 12204.70},
	{23629.3, 21879.9, 9.6, 5.80, 8327.67},
	{22296.1, 20645.4, 8.6, 5.43, 5785.96},
	{20919.7, 19370.9, 7.7, 5.11, 3971.25},
	{18739.3, 17351.9, 6.4, 4.62, 2090.08},
	{17063.8, 15800.5, 5.5, 4.26, 1221.76},
	{15587.7, 14433.6, 4.8, 4.02, 757.60},
	{14300.3, 13241.6, 4.2, 3.72, 459.55},
	{13329.9, 12343.0, 3.8, 3.55, 315.96},
	{12307.1, 11395.9, 3.4, 3.37, 206.89},
}

func beAtlasTable(name string, types []string) *Table {
	t := &Table{Name: name}
	for _, r := range beAtlas {
		t.Rows = append(t.Rows, Row{TPole: r[0], Teff: r[1], Mass: r[2], RPole: r[3], Luminosity: r[4]})
	}
	return t.typed(types)
}

// BeAtlas returns the BeAtlas grid parameters. B0.0 is not defined.
func BeAtlas() *Table { return beAtlasTable("beatlas", bTypes[1:]) }

// BeAtlasN returns the BeAtlas grid parameters shifted by one subtype.
// B9.0 is not defined.
func BeAtlasN() *Table { return beAtlasTable("beatlasn", bTypes[:len(bTypes)-1]) }

var bTypes = []string{"B0.0", "B0.5", "B1.0", "B1.5", "B2.0", "B2.5", "B3.0",
	"B4.0", "B5.0", "B6.0", "B7.0", "B8.0", "B9.0"}

// typed assigns spectral types to the rows in order.
func (t *Table) typed(types []string) *Table {
	if len(types) != len(t.Rows) {
		panic("sptype: table " + t.Name + " has mismatched types")
	}
	for i := range t.Rows {
		t.Rows[i].Type = types[i]
	}
	return t
}
