/*
 * t1.go, part of dmdpost.
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

	"github.com/grieder/test-DMD/spinecho"
	"github.com/spf13/cobra"
)

var t1Cmd = &cobra.Command{
	Use:   "t1",
	Short: "Compare the spin decay of T1 runs with the expected exponential.",
	Long: `Reads T1x.out, T1y.out and T1z.out (axes whose log is missing are skipped),
normalizes the spin decay of each axis, compares it with exp(-t/tauSpinEY),
fits the actual decay time, and draws everything in T1.pdf.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := spinecho.Run(vp.GetString("dir"), spinecho.Options{
			Plot:     !vp.GetBool("no-plot"),
			PlotName: "T1." + plotFormat("pdf"),
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := printT1Summary(out, res); err != nil {
			return err
		}
		if res.PlotFile != "" {
			fmt.Fprintf(out, "Wrote %s\n", res.PlotFile)
		}
		return nil
	},
}
