/*
 * plot.go, part of dmdpost.
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

//Package dmdplot draws the figures of the analysis with gonum/plot.
//The format of each figure follows the extension of its file name
//(pdf, png, svg, eps...).
package dmdplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//ErrEmpty is returned when a figure would have no points to draw.
var ErrEmpty = errors.New("nothing to plot")

//Default figure size.
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

//Series is one line in a figure. Reference series are drawn as thin black dotted
//lines and are not added to the legend.
type Series struct {
	Label     string
	X, Y      []float64
	Reference bool
}

//xys builds the points to plot. If logX or logY are true, points that can't be shown
//in a log axis (non-positive) are dropped. Non-finite points are always dropped.
func xys(x, y []float64, logX, logY bool) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("dmdplot: %d x values but %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, 0, len(x))
	for i, vx := range x {
		vy := y[i]
		if math.IsNaN(vx) || math.IsInf(vx, 0) || math.IsNaN(vy) || math.IsInf(vy, 0) {
			continue
		}
		if (logX && vx <= 0) || (logY && vy <= 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: vx, Y: vy})
	}
	return pts, nil
}

func newPlot(xlabel, ylabel string, logX, logY bool) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	if logX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	return p
}

//addLines adds the series to p. It returns the number of series that had
//something to draw.
func addLines(p *plot.Plot, series []Series, logX, logY bool) (int, error) {
	var drawn, colored int
	for _, s := range series {
		pts, err := xys(s.X, s.Y, logX, logY)
		if err != nil {
			return 0, fmt.Errorf("series %q: %w", s.Label, err)
		}
		if len(pts) == 0 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return 0, fmt.Errorf("series %q: %w", s.Label, err)
		}
		if s.Reference {
			l.LineStyle.Color = color.Black
			l.LineStyle.Width = vg.Points(1)
			l.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
		} else {
			l.LineStyle.Color = plotutil.Color(colored)
			l.LineStyle.Width = vg.Points(1.5)
			colored++
		}
		p.Add(l)
		if !s.Reference && s.Label != "" {
			p.Legend.Add(s.Label, l)
		}
		drawn++
	}
	return drawn, nil
}

//Lines draws the series given in a new figure and saves it to name. The
//axes are logarithmic if logX/logY are true.
func Lines(series []Series, xlabel, ylabel string, logX, logY bool, name string) error {
	p := newPlot(xlabel, ylabel, logX, logY)
	n, err := addLines(p, series, logX, logY)
	if err != nil {
		return fmt.Errorf("dmdplot.Lines: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("dmdplot.Lines: %s: %w", name, ErrEmpty)
	}
	return save(p, name, logX, logY)
}

//logRange makes sure a log axis has a positive, non-empty range,
//which is not the case when all the points have the same value.
func logRange(a *plot.Axis) {
	if a.Min <= 0 || math.IsInf(a.Min, 0) {
		a.Min = math.Min(a.Max, 1) / 10
	}
	if a.Max <= a.Min {
		a.Min, a.Max = a.Min/10, a.Min*10
	}
}

func save(p *plot.Plot, name string, logX, logY bool) error {
	if logX {
		logRange(&p.X)
	}
	if logY {
		logRange(&p.Y)
	}
	if err := p.Save(Width, Height, name); err != nil {
		return fmt.Errorf("dmdplot: can't save %s: %w", name, err)
	}
	return nil
}
