/*
 * summary.go, part of dmdpost.
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
	"io"
	"math"
	"strings"

	dmd "github.com/grieder/test-DMD"
	"github.com/grieder/test-DMD/sigmaac"
	"github.com/grieder/test-DMD/spinecho"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func fmtFloat(f float64) string {
	if math.IsNaN(f) {
		return "-"
	}
	return fmt.Sprintf("%.6g", f)
}

func rightAligned(t *tablewriter.Table) {
	t.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
}

//printT1Summary prints, per axis, the expected and fitted T1.
func printT1Summary(w io.Writer, res *spinecho.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header("Axis", "File", "Samples", "tau expected [ps]", "tau fit [ps]", "fit/expected")
	rightAligned(table)
	data := make([][]string, 0, len(res.Curves))
	for _, c := range res.Curves {
		data = append(data, []string{
			c.Axis,
			c.File,
			fmt.Sprintf("%d", len(c.Time)),
			fmtFloat(c.TauExpected / dmd.Ps),
			fmtFloat(c.TauFit / dmd.Ps),
			fmtFloat(c.Ratio()),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if len(res.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped axes (no log): %s\n", strings.Join(res.Skipped, ", "))
	}
	return nil
}

//printACSummary prints the parameters and Fermi-level quantities used, and a
//few points of the result.
func printACSummary(w io.Writer, res *sigmaac.Result) error {
	p := res.Params
	table := tablewriter.NewWriter(w)
	table.Header("Quantity", "Value")
	rows := [][]string{
		{"T [K]", fmtFloat(p.T)},
		{"omegaMax [eV]", fmtFloat(p.OmegaMax)},
		{"domega [eV]", fmtFloat(p.DOmega)},
		{"polarization", fmt.Sprintf("(%.4f, %.4f, %.4f)", res.Pol.AtVec(0), res.Pol.AtVec(1), res.Pol.AtVec(2))},
		{"q-points", fmt.Sprintf("%d", res.NQ)},
		{"modes", fmt.Sprintf("%d", res.NModes)},
		{"gEf [1/Eh/cell]", fmtFloat(res.Fermi.GEf)},
		{"Omega [a0^3]", fmtFloat(res.Fermi.Omega)},
		{"frequencies", fmt.Sprintf("%d", len(res.OmegaEV))},
	}
	tau := func(i int) []string {
		return []string{fmt.Sprintf("tau(%.4g eV) [fs]", res.OmegaEV[i]), fmtFloat(res.TauFs[i])}
	}
	//first non-zero and last frequencies
	n := len(res.TauFs)
	if n > 1 {
		rows = append(rows, tau(1))
	}
	if n > 2 {
		rows = append(rows, tau(n-1))
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
