/*
 * sigmaac.go, part of dmdpost.
 *
 * Copyright 2026 The dmdpost authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"

	"github.com/grieder/test-DMD/params"
	"github.com/grieder/test-DMD/sigmaac"
	"github.com/spf13/cobra"
)

var sigmaacCmd = &cobra.Command{
	Use:   "sigmaac",
	Short: "AC scattering time and Drude dielectric function from phonon linewidths.",
	Long: `Reads sigmaAC.in, Gph.qList, Gph.dat and phononElectronLinewidth.out, evaluates
the frequency-dependent scattering time and the Drude dielectric function, and writes
tauAC.dat, ReEpsDrude.dat and ImEpsDrude.dat, plus the figures tauAC and epsDrude.
The flags override the values in sigmaAC.in.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := sigmaac.Run(vp.GetString("dir"), sigmaac.Options{
			Viper:      vp,
			Plot:       !vp.GetBool("no-plot"),
			PlotFormat: plotFormat("png"),
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := printACSummary(out, res); err != nil {
			return err
		}
		for _, w := range res.Written {
			fmt.Fprintf(out, "Wrote %s\n", w)
		}
		return nil
	},
}

//flag name -> key in sigmaAC.in
var acFlags = []struct {
	flag, key, usage string
}{
	{"temperature", params.KeyT, "temperature in K"},
	{"omega-max", params.KeyOmegaMax, "maximum frequency in eV (excluded)"},
	{"domega", params.KeyDOmega, "frequency step in eV"},
	{"pol-theta", params.KeyPolTheta, "polar angle of the polarization, in degrees"},
	{"pol-phi", params.KeyPolPhi, "azimuth of the polarization, in degrees"},
}

func init() {
	def := params.Defaults()
	defaults := map[string]float64{
		params.KeyT:        def.T,
		params.KeyOmegaMax: def.OmegaMax,
		params.KeyDOmega:   def.DOmega,
		params.KeyPolTheta: def.PolTheta,
		params.KeyPolPhi:   def.PolPhi,
	}
	for _, f := range acFlags {
		sigmaacCmd.Flags().Float64(f.flag, defaults[f.key], f.usage)
	}
}
