/*
 * doc.go, part of dmdpost.
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

/*
Package dmd is the root package of dmdpost, a small set of tools to post-process
the text output of electron-phonon and spin-relaxation (DMD / Lindblad) runs.

	**dmdpost Capabilities**

	Compares the spin decay of T1 runs (T1x.out, T1y.out, T1z.out) against the
	exponential expected from the Elliott-Yafet relaxation time, and fits the
	actual decay constant.

	Evaluates the frequency-dependent (AC) scattering rate from phonon linewidths
	(Gph.qList, Gph.dat) and Fermi-level integrals (phononElectronLinewidth.out),
	and the resulting Drude dielectric function.

	Writes numpy-style two column tables and plots (gonum/plot).

	Input files can be plain text or compressed with zstd (.zst) or gzip (.gz).

The root package only holds what all the subpackages share: atomic-unit
conversion factors, the error type and input-file opening. The work is done in
logscan (log parsing), table (numeric tables), eph (physics), params
(input parameters), dmdplot (figures), and the spinecho and sigmaac pipelines.
The dmdpost command in cmd/dmdpost wraps the two pipelines.
*/
package dmd
