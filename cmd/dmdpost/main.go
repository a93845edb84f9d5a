/*
 * main.go, part of dmdpost.
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

//dmdpost post-processes the output of T1 and phonon linewidth runs.
//Run it in the directory with the output files, or point it there with --dir.
//
//	dmdpost t1        compare T1x.out, T1y.out, T1z.out with the expected decay
//	dmdpost sigmaac   AC scattering time and Drude dielectric function
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dmdpost: ")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
