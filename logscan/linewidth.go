/*
 * linewidth.go, part of dmdpost.
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
	"log"

	"gonum.org/v1/gonum/mat"
)

//Markers in the log of phononElectronLinewidth.
const (
	GEfMarker   = "gEf = "
	OmegaMarker = "Omega = "
	VVMarker    = "vvEf:"
)

//FermiIntegrals are the Fermi-level quantities printed by phononElectronLinewidth.
//All are in atomic units.
type FermiIntegrals struct {
	GEf   float64    //density of states at the Fermi level, per Eh per unit cell
	Omega float64    //unit cell volume in a0^3
	VV    *mat.Dense //3x3 velocity-velocity tensor at the Fermi level
}

//ParseLinewidth reads the Fermi-level integrals from a phononElectronLinewidth log.
//If a marker appears more than once, the last occurrence is kept: later runs
//appended to the same log overwrite earlier values.
//gEf and Omega are required. If the vvEf block is missing, VV is left as zeros
//and a warning is logged.
func ParseLinewidth(r io.Reader) (*FermiIntegrals, error) {
	errid := "ParseLinewidth"
	ret := &FermiIntegrals{VV: mat.NewDense(3, 3, nil)}
	var haveGEf, haveOmega, haveVV bool
	s := NewScanner(
		Rule{Prefix: GEfMarker, Line: func(f []string) error {
			var err error
			ret.GEf, err = Float(f, 2)
			haveGEf = err == nil
			return err
		}},
		Rule{Prefix: OmegaMarker, Line: func(f []string) error {
			var err error
			ret.Omega, err = Float(f, 2)
			haveOmega = err == nil
			return err
		}},
		Rule{Prefix: VVMarker, Block: 3, BlockLine: func(row int, f []string) error {
			v, err := Floats(f, 1, 4)
			if err != nil {
				return fmt.Errorf("%s row %d: %w", VVMarker, row, err)
			}
			ret.VV.SetRow(row, v)
			haveVV = true
			return nil
		}},
	)
	if err := s.Scan(r); err != nil {
		return nil, fmt.Errorf("%s: %w", errid, err)
	}
	if !haveGEf {
		return nil, fmt.Errorf("%s: no line starting with %q found", errid, GEfMarker)
	}
	if !haveOmega {
		return nil, fmt.Errorf("%s: no line starting with %q found", errid, OmegaMarker)
	}
	if !haveVV {
		log.Printf("%s: no %s block found, the velocity tensor will be zero", errid, VVMarker)
	}
	return ret, nil
}
