/*
 * conversion.go, part of dmdpost.
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

package dmd

import "math"

//This provides the conversion factors to and from atomic units (Hartree, bohr,
//hbar=m_e=e=1) used by the simulation package.

//Conversions to atomic units. Multiply a value in the named unit to get it in
//atomic units, divide to go back.
const (
	EV      = 1 / 27.21138505 //Hartree per eV
	Kelvin  = 1. / 3.1577464e5
	Fs      = 1. / 0.02418884326 //atomic time units per femtosecond
	Deg2Rad = math.Pi / 180
)

//Ps is a picosecond in the units of the T1 logs, which are written in fs.
const Ps = 1000.
