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
	"os"

	"github.com/mcoughlin/rotstars/geneva"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// archive opens the configured Geneva model archive.
func (cfg *Cfg) archive() (*geneva.Archive, error) {
	path := cfg.GetString("archive")
	if path == "" {
		return nil, fmt.Errorf("rotstars: no Geneva model archive specified")
	}
	a, err := geneva.OpenArchive(os.ExpandEnv(path))
	if err != nil {
		return nil, err
	}
	a.Log = cfg.Log
	cfg.Log.WithFields(logrus.Fields{"archive": path, "Z": a.Z, "tracks": len(a.Names())}).
		Debug("opened Geneva model archive")
	return a, nil
}

func runGenevaInterp(cfg *Cfg, cmd *cobra.Command) error {
	mass, ob, t := cfg.GetFloat64("mass"), cfg.GetFloat64("oblateness"), cfg.GetFloat64("t")
	var p geneva.Point
	if path := cfg.GetString("grid"); path != "" {
		g, err := geneva.ReadGrid(os.ExpandEnv(path))
		if err != nil {
			return err
		}
		g.Log = cfg.Log
		p = g.Interp(mass, ob, t)
	} else {
		a, err := cfg.archive()
		if err != nil {
			return err
		}
		if p, err = a.Interp(mass, ob, t); err != nil {
			return err
		}
	}
	if cfg.GetString("format") == "debug" {
		return cfg.output(cmd.OutOrStdout(), p)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Rpole = %.4f Rsun\nlogL  = %.4f\nage   = %.4f Myr\n",
		p.RPole, p.LogL, p.Age)
	return err
}

func runGenevaPreCompute(cfg *Cfg, cmd *cobra.Command) error {
	out := cfg.GetString("output")
	if out == "" {
		return fmt.Errorf("rotstars: precompute requires an output file")
	}
	a, err := cfg.archive()
	if err != nil {
		return err
	}
	ax := geneva.DefaultAxes(cfg.GetBool("high-mass"))
	cfg.Log.WithField("points", len(ax.Mass)*len(ax.Oblateness)*len(ax.T)).
		Info("pre-computing Geneva interpolation grid")
	g, err := geneva.PreCompute(context.Background(), a, ax)
	if err != nil {
		return err
	}
	if err := geneva.WriteGrid(os.ExpandEnv(out), g); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote grid to %s\n", out)
	return err
}
