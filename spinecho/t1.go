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

//Package spinecho compares the spin decay of T1 (spin relaxation) runs, one
//per spin axis, with the exponential decay expected from the Elliott-Yafet
//relaxation time printed by the same runs.
package spinecho

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"path/filepath"

	dmd "github.com/grieder/test-DMD"
	"github.com/grieder/test-DMD/dmdplot"
	"github.com/grieder/test-DMD/logscan"
	"gonum.org/v1/gonum/stat"
)

//Axes are the spin axes, in the order of the spin components in the logs.
const Axes = "xyz"

//LogName returns the name of the log of the T1 run for the given axis (0, 1, 2).
func LogName(axis int) string {
	return fmt.Sprintf("T1%c.out", Axes[axis])
}

//Curve is the normalized spin decay for one axis. Time is in fs.
type Curve struct {
	Axis        string
	File        string
	Time        []float64
	Normalized  []float64 //spin component divided by its first retained value.
	Reference   []float64 //exp(-t/TauExpected)
	TauExpected float64   //fs
	TauFit      float64   //fs, NaN if the decay could not be fitted.
}

//Ratio returns TauFit/TauExpected.
func (C *Curve) Ratio() float64 {
	return C.TauFit / C.TauExpected
}

//NewCurve builds the curve for axis from the parsed log. The first sample is
//discarded, and the remaining ones are divided by the first remaining one, so
//Normalized[0] is exactly 1.
func NewCurve(axis string, l *logscan.T1Log) (*Curve, error) {
	errid := "spinecho.NewCurve"
	if !l.HasTau {
		return nil, fmt.Errorf("%s: axis %s: no %q line found", errid, axis, logscan.TauSpinMarker)
	}
	if len(l.Time) < 2 {
		return nil, fmt.Errorf("%s: axis %s: %d samples found, at least 2 needed", errid, axis, len(l.Time))
	}
	//sample 0 is the state before the first step, discarded.
	t := append([]float64(nil), l.Time[1:]...)
	s := l.Spin[1:]
	norm := make([]float64, len(s))
	ref := make([]float64, len(s))
	for i, v := range s {
		norm[i] = v / s[0]
		ref[i] = math.Exp(-t[i] / l.TauExpected)
	}
	c := &Curve{
		Axis:        axis,
		Time:        t,
		Normalized:  norm,
		Reference:   ref,
		TauExpected: l.TauExpected,
	}
	c.TauFit = FitTau(c.Time, c.Normalized)
	return c, nil
}

//FitTau fits ln(s) = a - t/tau by least squares, using only the positive, finite
//values of s, and returns tau. It returns NaN if less than 2 points can be used
//or if s does not decay.
func FitTau(t, s []float64) float64 {
	x := make([]float64, 0, len(t))
	y := make([]float64, 0, len(s))
	for i, v := range s {
		if v > 0 && !math.IsInf(v, 0) {
			x = append(x, t[i])
			y = append(y, math.Log(v))
		}
	}
	if len(x) < 2 {
		return math.NaN()
	}
	_, slope := stat.LinearRegression(x, y, nil, false)
	if slope >= 0 || math.IsNaN(slope) {
		return math.NaN()
	}
	return -1 / slope
}

//Options for Run.
type Options struct {
	Plot     bool
	PlotName string //default T1.pdf, in the same directory as the logs
}

//Result of a T1 comparison.
type Result struct {
	Curves   []*Curve
	Skipped  []string     //axes with no log
	Warnings []*dmd.Error //one, not critical, per skipped axis
	PlotFile string       //empty if no plot was made
}

//Run reads the logs T1x.out, T1y.out and T1z.out (each may also be compressed)
//in dir. Axes without log are skipped. At least one axis is needed.
func Run(dir string, opt Options) (*Result, error) {
	errid := "spinecho.Run"
	ret := &Result{}
	for i := range Axes {
		axis := string(Axes[i])
		name := filepath.Join(dir, LogName(i))
		if !dmd.Exists(name) {
			w := dmd.NewWarning(name, "not found, axis "+axis+" skipped", fs.ErrNotExist, errid)
			log.Print(w)
			ret.Skipped = append(ret.Skipped, axis)
			ret.Warnings = append(ret.Warnings, w)
			continue
		}
		var l *logscan.T1Log
		err := dmd.ReadWith(name, func(r io.Reader) error {
			var err error
			l, err = logscan.ParseT1(r, i)
			return err
		})
		if err != nil {
			return nil, dmd.Decorate(err, errid)
		}
		c, err := NewCurve(axis, l)
		if err != nil {
			return nil, dmd.NewError(name, "bad T1 log", err, errid)
		}
		c.File = name
		ret.Curves = append(ret.Curves, c)
	}
	if len(ret.Curves) == 0 {
		return nil, fmt.Errorf("%s: no T1 logs found in %s: %w", errid, dir, fs.ErrNotExist)
	}
	if opt.Plot {
		name := opt.PlotName
		if name == "" {
			name = "T1.pdf"
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		if err := Plot(ret.Curves, name); err != nil {
			return nil, fmt.Errorf("%s: %w", errid, err)
		}
		ret.PlotFile = name
	}
	return ret, nil
}

//Plot draws the curves (time in ps) with their exponential references.
//The x range and the y label are those of the last curve.
func Plot(curves []*Curve, name string) error {
	if len(curves) == 0 {
		return fmt.Errorf("spinecho.Plot: %w", dmdplot.ErrEmpty)
	}
	series := make([]dmdplot.Series, 0, 2*len(curves))
	for _, c := range curves {
		tps := make([]float64, len(c.Time))
		for i, v := range c.Time {
			tps[i] = v / dmd.Ps
		}
		series = append(series,
			dmdplot.Series{Label: "S_" + c.Axis, X: tps, Y: c.Normalized},
			dmdplot.Series{X: tps, Y: c.Reference, Reference: true})
	}
	last := curves[len(curves)-1]
	xmin := last.Time[0] / dmd.Ps
	xmax := last.Time[len(last.Time)-1] / dmd.Ps
	return dmdplot.T1(series, last.Axis, xmin, xmax, name)
}
