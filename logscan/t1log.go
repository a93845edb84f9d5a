/*
 * t1log.go, part of dmdpost.
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

package logscan

import (
	"fmt"
	"io"
)

//Markers in the output of a Lindblad T1 run.
const (
	TauSpinMarker = "tauSpinEY [fs]"
	StepMarker    = "Integrate: Step:"
)

//Token positions in the marker lines. The component for axis i (0, 1, 2 for
//x, y, z) is at the given position plus i.
const (
	tauSpinToken = 4
	timeToken    = 4
	spinToken    = 11
)

//T1Log contains the data read from the log of a T1 run, for one spin axis.
type T1Log struct {
	TauExpected float64 //Elliott-Yafet estimate of T1 for the axis, in fs.
	HasTau      bool    //false if no tauSpinEY line was found.
	Time        []float64
	Spin        []float64
}

//ParseT1 reads a T1 log for the spin axis given (0, 1 or 2). The expected
//relaxation time is taken from the last tauSpinEY line. Each "Integrate: Step:"
//line adds one (time, spin component) sample, in file order. No samples are
//discarded here.
func ParseT1(r io.Reader, axis int) (*T1Log, error) {
	errid := "ParseT1"
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("%s: invalid axis %d", errid, axis)
	}
	ret := &T1Log{Time: make([]float64, 0, 100), Spin: make([]float64, 0, 100)}
	s := NewScanner(
		Rule{Prefix: TauSpinMarker, Line: func(f []string) error {
			tau, err := Float(f, tauSpinToken+axis)
			if err != nil {
				return fmt.Errorf("%s line: %w", TauSpinMarker, err)
			}
			ret.TauExpected = tau
			ret.HasTau = true
			return nil
		}},
		Rule{Prefix: StepMarker, Line: func(f []string) error {
			t, err := Float(f, timeToken)
			if err != nil {
				return fmt.Errorf("%s time: %w", StepMarker, err)
			}
			spin, err := Float(f, spinToken+axis)
			if err != nil {
				return fmt.Errorf("%s spin: %w", StepMarker, err)
			}
			ret.Time = append(ret.Time, t)
			ret.Spin = append(ret.Spin, spin)
			return nil
		}},
	)
	if err := s.Scan(r); err != nil {
		return nil, fmt.Errorf("%s: %w", errid, err)
	}
	return ret, nil
}
