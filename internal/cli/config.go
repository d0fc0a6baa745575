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

// Package cli holds the rotstars command-line interface and its
// configuration.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcoughlin/rotstars/cgs"
	"github.com/mcoughlin/rotstars/sptype"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
type Cfg struct {
	*viper.Viper

	Log *logrus.Logger

	Root, starCmd, betaCmd, areaCmd, convertCmd, tableCmd, magCmd, sigma4bCmd, sourceCmd *cobra.Command
	genevaCmd, genevaInterpCmd, genevaPreComputeCmd                             *cobra.Command
}

// InitializeConfig builds the command tree and binds its flags to the
// configuration.
func InitializeConfig() *Cfg {
	cfg := &Cfg{Viper: viper.New(), Log: logrus.New()}
	cfg.SetEnvPrefix("ROTSTARS")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	cfg.Root = &cobra.Command{
		Use:   "rotstars",
		Short: "Photospheric parameters of rapidly rotating stars.",
		Long: `rotstars computes the shape, gravity darkening, temperatures, luminosity and
magnitudes of rigidly rotating stars in the Roche approximation, and
interpolates Geneva rotating stellar models.

Configuration can be given with command-line flags, with environment
variables prefixed by ROTSTARS_ (e.g. ROTSTARS_WFRAC=0.8), or with a TOML
configuration file. Physical constants can be overridden in the
[constants] section of the configuration file.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setConfig(cfg, cmd)
		},
	}

	cfg.starCmd = &cobra.Command{
		Use:   "star",
		Short: "Solve for the photosphere of a rotating star.",
		Long: `star solves for the photospheric parameters of a rotating star given its mass,
polar radius and polar temperature, or its luminosity (which requires a
sigma4b table), or a spectral type. If beta is not positive it is computed
from the rotation rate.`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStar(cfg, cmd)
		},
	}

	cfg.betaCmd = &cobra.Command{
		Use:               "beta",
		Short:             "Compute the gravity-darkening exponent.",
		Long:              "beta computes the gravity-darkening exponent of Espinosa Lara & Rieutord (2011) for each rotation rate.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBeta(cfg, cmd)
		},
	}

	cfg.areaCmd = &cobra.Command{
		Use:               "area",
		Short:             "Compute the surface area of a rotating star.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cfg, cmd)
		},
	}

	cfg.convertCmd = &cobra.Command{
		Use:               "convert",
		Short:             "Convert between wfrac, W and oblateness.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cfg, cmd)
		},
	}

	cfg.tableCmd = &cobra.Command{
		Use:   "table",
		Short: "Solve every spectral type at every rotation rate.",
		Long: `table solves the photosphere of every star of a spectral-type table at each
rotation rate, and writes the results to a spreadsheet.`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cfg, cmd)
		},
	}

	cfg.magCmd = &cobra.Command{
		Use:               "mag",
		Short:             "Compute the averaged black-body magnitude of a rotating star.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMag(cfg, cmd)
		},
	}

	cfg.sigma4bCmd = &cobra.Command{
		Use:   "sigma4b",
		Short: "Compute the sigma4b luminosity normalization table.",
		Long: `sigma4b tabulates the sigma4b normalization of Cranmer (1996) on a grid of
masses and rotation rates, using the mass-radius relation of a spectral-type
table, and saves it as a netCDF file.`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSigma4b(cfg, cmd)
		},
	}

	cfg.sourceCmd = &cobra.Command{
		Use:   "source [file]",
		Short: "Read the star of an HDUST source file.",
		Long: `source reads the mass, equatorial radius and polar temperature of the star of
an HDUST source file, and its rotation velocity from the oblateness encoded
in the file name. Single-star files are solved at constant luminosity, which
requires a sigma4b table.`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSource(cfg, cmd, args[0])
		},
	}

	cfg.genevaCmd = &cobra.Command{
		Use:               "geneva",
		Short:             "Interpolate Geneva rotating stellar models.",
		DisableAutoGenTag: true,
	}

	cfg.genevaInterpCmd = &cobra.Command{
		Use:   "interp",
		Short: "Interpolate the polar radius, luminosity and age of a star.",
		Long: `interp interpolates a Geneva model archive, or a grid pre-computed from one,
at the given mass, oblateness and age in units of the main-sequence
lifetime.`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenevaInterp(cfg, cmd)
		},
	}

	cfg.genevaPreComputeCmd = &cobra.Command{
		Use:               "precompute",
		Short:             "Pre-compute an interpolation grid from a Geneva model archive.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenevaPreCompute(cfg, cmd)
		},
	}

	cfg.Root.AddCommand(cfg.starCmd, cfg.betaCmd, cfg.areaCmd, cfg.convertCmd, cfg.tableCmd,
		cfg.magCmd, cfg.sigma4bCmd, cfg.sourceCmd, cfg.genevaCmd)
	cfg.genevaCmd.AddCommand(cfg.genevaInterpCmd, cfg.genevaPreComputeCmd)

	// Options are the configuration options available to rotstars.
	options := []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name:       "config",
			usage:      "config specifies the TOML configuration file to use.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.Root.PersistentFlags()},
		},
		{
			name:       "log-level",
			usage:      "log-level is the logging level: debug, info, warn or error.",
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{cfg.Root.PersistentFlags()},
		},
		{
			name:       "format",
			usage:      "format is the output format: text or debug.",
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{cfg.Root.PersistentFlags()},
		},
		{
			name:       "resolution",
			usage:      "resolution is the number of colatitude points in surface integrals. Lower values are faster and less accurate.",
			defaultVal: 5001,
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags(), cfg.areaCmd.Flags(), cfg.tableCmd.Flags(), cfg.magCmd.Flags(), cfg.sigma4bCmd.Flags(), cfg.sourceCmd.Flags()},
		},
		{
			name:       "mass",
			usage:      "mass is the stellar mass in solar masses.",
			shorthand:  "m",
			defaultVal: 10.3065,
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags(), cfg.genevaInterpCmd.Flags()},
		},
		{
			name:       "rpole",
			usage:      "rpole is the polar radius in solar radii.",
			defaultVal: 5.38462,
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags(), cfg.magCmd.Flags()},
		},
		{
			name:       "tpole",
			usage:      "tpole is the polar effective temperature in K.",
			defaultVal: 20000.,
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags()},
		},
		{
			name:       "luminosity",
			usage:      "luminosity is the luminosity in solar units. For star, a positive value is used instead of tpole.",
			shorthand:  "L",
			defaultVal: 0.,
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags(), cfg.magCmd.Flags()},
		},
		{
			name:       "wfrac",
			usage:      "wfrac is the rotation rate Omega/Omega_crit. beta, area and table accept a comma-separated list.",
			shorthand:  "w",
			defaultVal: "0.8",
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags(), cfg.betaCmd.Flags(), cfg.areaCmd.Flags(), cfg.tableCmd.Flags()},
		},
		{
			name:       "W",
			usage:      "W is the rotation rate v_rot/v_orb.",
			defaultVal: 0.732,
			flagsets:   []*pflag.FlagSet{cfg.magCmd.Flags()},
		},
		{
			name:       "beta",
			usage:      "beta is the gravity-darkening exponent. Values ≤ 0 are computed from the rotation rate.",
			shorthand:  "b",
			defaultVal: 0.25,
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags()},
		},
		{
			name:       "sptype",
			usage:      "sptype is a spectral type (e.g. B2.0) whose mass, polar radius and temperature override the other inputs.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags()},
		},
		{
			name:       "sptable",
			usage:      fmt.Sprintf("sptable is the spectral-type table: one of %v, or the path to a TOML or .xlsx table.", sptype.Names()),
			defaultVal: "harmanec1988",
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags(), cfg.tableCmd.Flags(), cfg.sigma4bCmd.Flags()},
		},
		{
			name:       "sigma4b",
			usage:      "sigma4b is the path to a netCDF sigma4b table, required for luminosity input.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.starCmd.Flags(), cfg.sourceCmd.Flags()},
		},
		{
			name:       "legacy-name",
			usage:      "legacy-name reads the oblateness from _ob<oblateness>_H in source file names instead of _W<W>_t.",
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{cfg.sourceCmd.Flags()},
		},
		{
			name:       "plot",
			usage:      "plot is the path of an image to draw the gravity-darkening fit (one rotation rate) or beta curve (several) to.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.betaCmd.Flags()},
		},
		{
			name:       "oblateness",
			usage:      "oblateness is the ratio of equatorial to polar radius.",
			defaultVal: 1.1,
			flagsets:   []*pflag.FlagSet{cfg.genevaInterpCmd.Flags()},
		},
		{
			name:       "method",
			usage:      "method is the area calculation: roche, cranmer or ellipsoid.",
			defaultVal: "roche",
			flagsets:   []*pflag.FlagSet{cfg.areaCmd.Flags()},
		},
		{
			name:       "from",
			usage:      "from is the rotation encoding of value: wfrac, W or oblateness.",
			defaultVal: "wfrac",
			flagsets:   []*pflag.FlagSet{cfg.convertCmd.Flags()},
		},
		{
			name:       "value",
			usage:      "value is the rotation rate to convert.",
			defaultVal: 0.8,
			flagsets:   []*pflag.FlagSet{cfg.convertCmd.Flags()},
		},
		{
			name:       "output",
			usage:      "output is the path of the output file.",
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.tableCmd.Flags(), cfg.sigma4bCmd.Flags(), cfg.genevaPreComputeCmd.Flags()},
		},
		{
			name:       "distance",
			usage:      "distance is the distance to the star in pc.",
			shorthand:  "d",
			defaultVal: 279.,
			flagsets:   []*pflag.FlagSet{cfg.magCmd.Flags()},
		},
		{
			name:       "lambda0",
			usage:      "lambda0 is the effective wavelength of the band in Å.",
			defaultVal: 5466.,
			flagsets:   []*pflag.FlagSet{cfg.magCmd.Flags()},
		},
		{
			name:       "f0",
			usage:      "f0 is the zero-point flux of the band in erg/s/cm²/Å.",
			defaultVal: 3.6e-9,
			flagsets:   []*pflag.FlagSet{cfg.magCmd.Flags()},
		},
		{
			name:       "geometry",
			usage:      "geometry is the surface shape: roche or ellipsoid.",
			defaultVal: "roche",
			flagsets:   []*pflag.FlagSet{cfg.magCmd.Flags()},
		},
		{
			name:       "masses",
			usage:      "masses is the comma-separated list of masses of the sigma4b table, in solar masses.",
			defaultVal: "1.7,2,2.5,3,4,5,7,9,12,15,20",
			flagsets:   []*pflag.FlagSet{cfg.sigma4bCmd.Flags()},
		},
		{
			name:       "archive",
			usage:      "archive is the path to a Geneva model archive (Z<metallicity>.tar.gz).",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.genevaInterpCmd.Flags(), cfg.genevaPreComputeCmd.Flags()},
		},
		{
			name:       "grid",
			usage:      "grid is the path to a pre-computed netCDF grid. If set, it is used instead of the archive.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.genevaInterpCmd.Flags()},
		},
		{
			name:       "t",
			usage:      "t is the age in units of the main-sequence lifetime.",
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{cfg.genevaInterpCmd.Flags()},
		},
		{
			name:       "high-mass",
			usage:      "high-mass selects the grid axes of the models above 20 solar masses.",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{cfg.genevaPreComputeCmd.Flags()},
		},
	}

	// Set the options.
	for _, option := range options {
		if option.name == "" {
			panic("missing option name")
		}
		if option.usage == "" {
			panic("missing option usage")
		}
		for _, set := range option.flagsets {
			switch option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
			case int:
				set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
			default:
				panic(fmt.Errorf("invalid argument type %T", option.defaultVal))
			}
		}
		if len(option.flagsets) > 0 {
			cfg.BindPFlag(option.name, option.flagsets[0].Lookup(option.name))
		}
	}
	return cfg
}

// setConfig binds the flags of the executing command, reads the
// configuration file and sets the log level.
func setConfig(cfg *Cfg, cmd *cobra.Command) error {
	// Several commands share option names, so the flags of the command
	// being run take precedence.
	if err := cfg.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if cfgpath := cfg.GetString("config"); cfgpath != "" {
		cfg.SetConfigFile(cfgpath)
		cfg.SetConfigType("toml")
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("rotstars: problem reading configuration file: %v", err)
		}
	}
	lvl, err := logrus.ParseLevel(cfg.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("rotstars: %w", err)
	}
	cfg.Log.SetLevel(lvl)
	cfg.Log.SetOutput(cmd.ErrOrStderr())
	return nil
}

// constants returns the physical constants, with any overrides from the
// [constants] section of the configuration file.
func (cfg *Cfg) constants() (cgs.Constants, error) {
	c := cgs.Default
	if cfg.IsSet("constants") {
		if err := cfg.UnmarshalKey("constants", &c); err != nil {
			return c, fmt.Errorf("rotstars: reading constants: %w", err)
		}
	}
	return c, c.Validate()
}

// floats returns the comma-separated list of numbers of option key.
func (cfg *Cfg) floats(key string) ([]float64, error) {
	v := cfg.Get(key)
	s, ok := v.(string)
	if !ok {
		f, err := cast.ToFloat64SliceE(v)
		if err != nil {
			return nil, fmt.Errorf("rotstars: %s: %w", key, err)
		}
		return f, nil
	}
	var o []float64
	for _, p := range strings.Split(s, ",") {
		f, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("rotstars: %s: %w", key, err)
		}
		o = append(o, f)
	}
	return o, nil
}

// spectralTable returns the built-in table named by option sptable, or
// reads it from a TOML or spreadsheet file.
func (cfg *Cfg) spectralTable() (*sptype.Table, error) {
	name := cfg.GetString("sptable")
	switch {
	case strings.HasSuffix(name, ".xlsx"):
		return sptype.OpenXLSX(os.ExpandEnv(name))
	case !strings.HasSuffix(name, ".toml"):
		return sptype.ByName(name)
	}
	f, err := os.Open(os.ExpandEnv(name))
	if err != nil {
		return nil, fmt.Errorf("rotstars: %w", err)
	}
	defer f.Close()
	return sptype.Decode(f)
}
