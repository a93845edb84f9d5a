/*
 * figures.go, part of dmdpost.
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

package dmdplot

import (
	"fmt"
)

//T1 draws the normalized spin decay of each axis (with its exponential reference)
//on a logarithmic y axis that ends at 1. The x axis goes from xmin to xmax (in ps).
//ylabel is the spin component shown in the y axis label, e.g. "z".
func T1(series []Series, ylabel string, xmin, xmax float64, name string) error {
	p := newPlot("t [ps]", fmt.Sprintf("<S_%s(t)>", ylabel), false, true)
	n, err := addLines(p, series, false, true)
	if err != nil {
		return fmt.Errorf("dmdplot.T1: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("dmdplot.T1: %s: %w", name, ErrEmpty)
	}
	if xmax > xmin {
		p.X.Min = xmin
		p.X.Max = xmax
	}
	p.Y.Max = 1.0
	if p.Y.Min >= p.Y.Max {
		p.Y.Min = p.Y.Max / 10
	}
	p.Legend.Top = false
	return save(p, name, false, true)
}

//Tau draws the scattering time (fs) as a function of frequency (eV) in log-log scale.
//The zero frequency point is not shown.
func Tau(omegaEV, tauFs []float64, name string) error {
	s := []Series{{X: omegaEV, Y: tauFs}}
	return Lines(s, "ω [eV]", "τ [fs]", true, true, name)
}

//Epsilon draws the real and imaginary parts of the dielectric function as a
//function of frequency (eV). The y axis is restricted to [-10, 10].
func Epsilon(omegaEV []float64, eps []complex128, name string) error {
	if len(omegaEV) != len(eps) {
		return fmt.Errorf("dmdplot.Epsilon: %d frequencies but %d values", len(omegaEV), len(eps))
	}
	re := make([]float64, len(eps))
	im := make([]float64, len(eps))
	for i, v := range eps {
		re[i] = real(v)
		im[i] = imag(v)
	}
	p := newPlot("ω [eV]", "ε", false, false)
	series := []Series{
		{Label: "Re ε", X: omegaEV, Y: re},
		{Label: "Im ε", X: omegaEV, Y: im},
	}
	n, err := addLines(p, series, false, false)
	if err != nil {
		return fmt.Errorf("dmdplot.Epsilon: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("dmdplot.Epsilon: %s: %w", name, ErrEmpty)
	}
	p.Y.Min = -10
	p.Y.Max = 10
	return save(p, name, false, false)
}
