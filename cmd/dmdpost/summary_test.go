/*
 * summary_test.go, part of dmdpost.
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
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/grieder/test-DMD/eph"
	"github.com/grieder/test-DMD/logscan"
	"github.com/grieder/test-DMD/params"
	"github.com/grieder/test-DMD/sigmaac"
	"github.com/grieder/test-DMD/spinecho"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFmtFloat(Te *testing.T) {
	assert.Equal(Te, "-", fmtFloat(math.NaN()))
	assert.Equal(Te, "1.5", fmtFloat(1.5))
	assert.Equal(Te, "+Inf", fmtFloat(math.Inf(1)))
}

func TestPrintT1Summary(Te *testing.T) {
	res := &spinecho.Result{
		Curves: []*spinecho.Curve{{
			Axis:        "z",
			File:        "T1z.out",
			Time:        []float64{1, 2, 3},
			TauExpected: 2000,
			TauFit:      1000,
		}},
		Skipped: []string{"x", "y"},
	}
	var buf bytes.Buffer
	require.NoError(Te, printT1Summary(&buf, res))
	out := buf.String()
	assert.Contains(Te, out, "T1z.out")
	assert.Contains(Te, out, "0.5")
	assert.Contains(Te, out, "Skipped axes (no log): x, y")
}

func TestPrintACSummary(Te *testing.T) {
	res := &sigmaac.Result{
		Params:  params.Defaults(),
		Fermi:   &logscan.FermiIntegrals{GEf: 12.5, Omega: 250, VV: mat.NewDense(3, 3, nil)},
		NQ:      2,
		NModes:  6,
		Pol:     eph.Polarization(0, 0),
		OmegaEV: []float64{0, 0.01},
		TauFs:   []float64{30, 25},
	}
	var buf bytes.Buffer
	require.NoError(Te, printACSummary(&buf, res))
	out := buf.String()
	assert.Contains(Te, out, "12.5")
	assert.Contains(Te, out, "(0.0000, 0.0000, 1.0000)")
	assert.Equal(Te, 1, strings.Count(out, "tau("))
	assert.Contains(Te, out, "tau(0.01 eV) [fs]")

	res.OmegaEV = append(res.OmegaEV, 0.02)
	res.TauFs = append(res.TauFs, 20)
	buf.Reset()
	require.NoError(Te, printACSummary(&buf, res))
	out = buf.String()
	assert.Equal(Te, 2, strings.Count(out, "tau("))
	assert.Contains(Te, out, "tau(0.02 eV) [fs]")

	res.OmegaEV = res.OmegaEV[:1]
	res.TauFs = res.TauFs[:1]
	buf.Reset()
	require.NoError(Te, printACSummary(&buf, res))
	assert.NotContains(Te, buf.String(), "tau(")
}

func TestPlotFormat(Te *testing.T) {
	vp = viper.New()
	assert.Equal(Te, "png", plotFormat("png"))
	vp.Set("plot-format", ".SVG")
	assert.Equal(Te, "svg", plotFormat("png"))
}
