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

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/mcoughlin/rotstars/cranmer"
	"github.com/mcoughlin/rotstars/hdust"
	"github.com/mcoughlin/rotstars/photometry"
	"github.com/mcoughlin/rotstars/photosphere"
	"github.com/mcoughlin/rotstars/plot"
	"github.com/mcoughlin/rotstars/roche"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// output writes v to w in the configured format. Values that implement
// summarizer are written with their summary in text format.
func (cfg *Cfg) output(w io.Writer, v interface{}) error {
	switch f := cfg.GetString("format"); f {
	case "text":
		if s, ok := v.(summarizer); ok {
			return s.Summary(w)
		}
		_, err := fmt.Fprintln(w, v)
		return err
	case "debug":
		_, err := pretty.Fprintf(w, "%# v\n", v)
		return err
	default:
		return fmt.Errorf("rotstars: invalid format %q", f)
	}
}

type summarizer interface {
	Summary(io.Writer) error
}

// solver returns a photosphere solver with the configured constants,
// resolution, spectral table and logger.
func (cfg *Cfg) solver() (*photosphere.Solver, error) {
	c, err := cfg.constants()
	if err != nil {
		return nil, err
	}
	tab, err := cfg.spectralTable()
	if err != nil {
		return nil, err
	}
	s := photosphere.New()
	s.Constants = c
	s.Resolution = cfg.GetInt("resolution")
	s.Table = tab
	s.Log = cfg.Log
	return s, nil
}

func runStar(cfg *Cfg, cmd *cobra.Command) error {
	s, err := cfg.solver()
	if err != nil {
		return err
	}
	wfrac := cfg.GetFloat64("wfrac")
	in := photosphere.Input{
		Mass:         cfg.GetFloat64("mass"),
		RPole:        cfg.GetFloat64("rpole"),
		TPole:        cfg.GetFloat64("tpole"),
		Wfrac:        wfrac,
		Beta:         cfg.GetFloat64("beta"),
		SpectralType: cfg.GetString("sptype"),
	}
	if in.Beta <= 0 {
		if in.Beta, err = roche.Beta(wfrac); err != nil {
			return err
		}
		cfg.Log.WithField("beta", in.Beta).Debug("computed gravity-darkening exponent")
	}
	if L := cfg.GetFloat64("luminosity"); L > 0 {
		in.Luminosity = L
		in.UseLuminosity = true
		path := cfg.GetString("sigma4b")
		if path == "" {
			return fmt.Errorf("rotstars: luminosity input requires a sigma4b table")
		}
		if s.Sigma4b, err = cranmer.ReadFile(os.ExpandEnv(path)); err != nil {
			return err
		}
	}
	r, err := s.Solve(in)
	if err != nil {
		return err
	}
	return cfg.output(cmd.OutOrStdout(), r)
}

func runBeta(cfg *Cfg, cmd *cobra.Command) error {
	wfracs, err := cfg.floats("wfrac")
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	betas := make([]float64, len(wfracs))
	var fit *roche.BetaFit
	for i, wfrac := range wfracs {
		if fit, err = roche.FitBeta(wfrac); err != nil {
			return err
		}
		betas[i] = fit.Beta
		if fit.Discarded > 0 {
			cfg.Log.WithFields(logrus.Fields{
				"wfrac":     wfrac,
				"discarded": fit.Discarded,
			}).Warn("discarded surface samples that did not converge")
		}
		if cfg.GetString("format") == "debug" {
			if err := cfg.output(w, fit); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "wfrac = %.4f  beta = %.6f\n", wfrac, fit.Beta); err != nil {
			return err
		}
	}
	path := cfg.GetString("plot")
	switch {
	case path == "":
		return nil
	case len(wfracs) == 1:
		return plot.SaveBetaProfile(fit, os.ExpandEnv(path))
	default:
		return plot.SaveBetaCurve(wfracs, betas, os.ExpandEnv(path))
	}
}

func runArea(cfg *Cfg, cmd *cobra.Command) error {
	wfracs, err := cfg.floats("wfrac")
	if err != nil {
		return err
	}
	n := cfg.GetInt("resolution")
	method := strings.ToLower(cfg.GetString("method"))
	for _, wfrac := range wfracs {
		var a float64
		switch method {
		case "roche":
			a, err = roche.Area(wfrac, n)
		case "cranmer":
			a, err = roche.CranmerArea(wfrac)
		case "ellipsoid":
			var ob float64
			if ob, err = roche.Oblateness(wfrac); err == nil {
				a, err = roche.EllipsoidArea(ob, n)
			}
		default:
			return fmt.Errorf("rotstars: invalid area method %q", method)
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "wfrac = %.4f  area = %.6f Rpole^2\n", wfrac, a); err != nil {
			return err
		}
	}
	return nil
}

func runConvert(cfg *Cfg, cmd *cobra.Command) error {
	v := cfg.GetFloat64("value")
	var (
		r   roche.Rotation
		err error
	)
	switch from := strings.ToLower(cfg.GetString("from")); from {
	case "wfrac":
		r, err = roche.FromWfrac(v)
	case "w":
		r, err = roche.FromW(v)
	case "oblateness", "ob":
		r, err = roche.FromOblateness(v)
	default:
		return fmt.Errorf("rotstars: invalid rotation encoding %q", from)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wfrac      = %.6f\nW          = %.6f\noblateness = %.6f\n",
		r.Wfrac(), r.W(), r.Oblateness())
	return err
}

func runTable(cfg *Cfg, cmd *cobra.Command) error {
	s, err := cfg.solver()
	if err != nil {
		return err
	}
	wfracs, err := cfg.floats("wfrac")
	if err != nil {
		return err
	}
	out := cfg.GetString("output")
	if out == "" {
		return fmt.Errorf("rotstars: table requires an output file")
	}
	tab, err := cfg.spectralTable()
	if err != nil {
		return err
	}
	var inputs []photosphere.Input
	for _, wfrac := range wfracs {
		beta, err := roche.Beta(wfrac)
		if err != nil {
			return err
		}
		for _, row := range tab.Rows {
			inputs = append(inputs, photosphere.Input{
				SpectralType: row.Type,
				Wfrac:        wfrac,
				Beta:         beta,
			})
		}
	}
	cfg.Log.WithField("stars", len(inputs)).Info("solving spectral-type table")
	results, err := s.SolveAll(context.Background(), inputs)
	if err != nil {
		return err
	}
	f, err := os.Create(os.ExpandEnv(out))
	if err != nil {
		return fmt.Errorf("rotstars: %w", err)
	}
	if err := photosphere.WriteXLSX(f, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("rotstars: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d stars to %s\n", len(results), out)
	return err
}

func runMag(cfg *Cfg, cmd *cobra.Command) error {
	c, err := cfg.constants()
	if err != nil {
		return err
	}
	g, err := photometry.ParseGeometry(cfg.GetString("geometry"))
	if err != nil {
		return err
	}
	p := photometry.New()
	p.Constants = c
	p.Resolution = cfg.GetInt("resolution")
	p.Geometry = g
	p.Band = photometry.Band{Lambda0: cfg.GetFloat64("lambda0"), F0: cfg.GetFloat64("f0")}

	rp, L, W := cfg.GetFloat64("rpole"), cfg.GetFloat64("luminosity"), cfg.GetFloat64("W")
	if L <= 0 {
		return fmt.Errorf("rotstars: mag requires a positive luminosity")
	}
	teff, err := p.AverageTeff(rp, L, W)
	if err != nil {
		return err
	}
	m, err := p.MagAvgBB(rp, L, cfg.GetFloat64("distance"), W)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Teff = %.1f K\nmag  = %.4f\n", teff, m)
	return err
}

func runSigma4b(cfg *Cfg, cmd *cobra.Command) error {
	s, err := cfg.solver()
	if err != nil {
		return err
	}
	out := cfg.GetString("output")
	if out == "" {
		return fmt.Errorf("rotstars: sigma4b requires an output file")
	}
	masses, err := cfg.floats("masses")
	if err != nil {
		return err
	}
	tab, err := cfg.spectralTable()
	if err != nil {
		return err
	}
	radius, err := cranmer.MassRadius(tab)
	if err != nil {
		return err
	}
	cfg.Log.WithFields(logrus.Fields{
		"masses": len(masses),
		"wfracs": len(cranmer.DefaultWfrac),
	}).Info("computing sigma4b table")
	t, err := cranmer.Compute(context.Background(), s, masses, cranmer.DefaultWfrac, radius)
	if err != nil {
		return err
	}
	if err := t.WriteFile(os.ExpandEnv(out)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote sigma4b table to %s\n", out)
	return err
}

func runSource(cfg *Cfg, cmd *cobra.Command, path string) error {
	s, err := cfg.solver()
	if err != nil {
		return err
	}
	path = os.ExpandEnv(path)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("rotstars: %w", err)
	}
	src, err := hdust.ReadSource(f)
	f.Close()
	if err != nil {
		return err
	}
	if !src.Legacy() {
		table := cfg.GetString("sigma4b")
		if table == "" {
			return fmt.Errorf("rotstars: single-star source files require a sigma4b table")
		}
		if s.Sigma4b, err = cranmer.ReadFile(os.ExpandEnv(table)); err != nil {
			return err
		}
	}
	star, err := src.Star(s)
	if err != nil {
		return err
	}
	ob, err := hdust.NameOblateness(path, cfg.GetBool("legacy-name"))
	if err != nil {
		return err
	}
	vrot, err := hdust.VRot(s.Constants, star, ob)
	if err != nil {
		return err
	}
	cfg.Log.WithFields(logrus.Fields{"stars": src.Stars, "oblateness": ob}).Debug("read source file")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "M     = %.4f Msun\nReq   = %.4f Rsun\nTpole = %.1f K\nvrot  = %.2f km/s\n",
		star.Mass, star.REq, star.TPole, vrot)
	return err
}
