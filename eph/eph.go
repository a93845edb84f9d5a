/*
 * eph.go, part of dmdpost.
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

//Package eph evaluates the frequency-dependent electron-phonon scattering rate
//and the Drude dielectric function it implies. Everything is in atomic units.
//The functions are pure: they only depend on their arguments.
package eph

import (
	"fmt"
	"math"

	dmd "github.com/grieder/test-DMD"
	"github.com/grieder/test-DMD/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Floor is the smallest magnitude allowed for beta*x in the Bose factors, and for
//the frequency in the Drude denominator.
const Floor = 1e-6

//FreqGrid returns the frequencies from 0 (included) to max (excluded)
//in steps of step, i.e. ceil(max/step) points.
func FreqGrid(max, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("eph.FreqGrid: invalid step %g", step)
	}
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("eph.FreqGrid: invalid maximum %g", max)
	}
	if max <= 0 {
		return []float64{}, nil
	}
	n := int(math.Ceil(max / step))
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = float64(i) * step
	}
	return ret, nil
}

//Bose evaluates Bose-Einstein related factors at inverse temperature Beta.
type Bose struct {
	Beta float64
}

//NewBose returns a Bose for the temperature kT (in Hartree).
func NewBose(kT float64) Bose {
	return Bose{Beta: 1 / kT}
}

//B returns the detailed-balance factor -beta*x/(exp(-beta*x)-1).
//beta*x is kept at least Floor in magnitude, with the sign of x (positive for x=0),
//so B is finite everywhere and goes to 1 as x goes to 0.
func (b Bose) B(x float64) float64 {
	bx := math.Copysign(math.Max(b.Beta*math.Abs(x), Floor), x)
	return -bx / math.Expm1(-bx)
}

//Occupation returns the Bose occupation of a phonon of frequency omegaPh.
//Frequencies below Floor are raised to Floor.
func (b Bose) Occupation(omegaPh float64) float64 {
	return 1 / math.Expm1(b.Beta*math.Max(omegaPh, Floor))
}

//Polarization returns the unit vector with polar angle theta and azimuth phi,
//both in degrees.
func Polarization(theta, phi float64) *mat.VecDense {
	sT, cT := math.Sincos(theta * dmd.Deg2Rad)
	sP, cP := math.Sincos(phi * dmd.Deg2Rad)
	return mat.NewVecDense(3, []float64{sT * cP, sT * sP, cT})
}

//Modes holds the phonon data needed for the scattering rate, for nq q-points
//and nModes modes. OmegaPh and G are nq x nModes.
type Modes struct {
	Weights []float64  //integration weight of each q-point
	OmegaPh *mat.Dense //phonon frequencies
	G       *mat.Dense //electron-phonon linewidths
}

//Dims returns the number of q-points and of modes.
func (m *Modes) Dims() (nq, nModes int) {
	return m.G.Dims()
}

//NewModes builds Modes from the q-point list (x, y, z, weight per row) and the
//linewidth table (one row per q-point and mode, grouped by q-point, with the
//phonon frequency in the first column and the linewidth in column gCol).
//The number of rows in gph must be a multiple of the number of q-points.
func NewModes(qlist, gph mat.Matrix, gCol int) (*Modes, error) {
	errid := "eph.NewModes"
	nq, qc := qlist.Dims()
	if qc < 4 {
		return nil, fmt.Errorf("%s: q-point list has %d columns, need 4: %w", errid, qc, dmd.ErrShape)
	}
	_, gc := gph.Dims()
	if gCol < 0 || gCol >= gc {
		return nil, fmt.Errorf("%s: linewidth column %d requested, but table has %d columns: %w", errid, gCol, gc, dmd.ErrShape)
	}
	w := mat.Col(nil, 3, qlist)
	if floats.Min(w) < 0 {
		return nil, fmt.Errorf("%s: negative q-point weight %g", errid, floats.Min(w))
	}
	omegaPh, err := table.Group(mat.Col(nil, 0, gph), nq)
	if err != nil {
		return nil, fmt.Errorf("%s: phonon frequencies: %w", errid, err)
	}
	g, err := table.Group(mat.Col(nil, gCol, gph), nq)
	if err != nil {
		return nil, fmt.Errorf("%s: linewidths: %w", errid, err)
	}
	return &Modes{Weights: w, OmegaPh: omegaPh, G: g}, nil
}

//ScatteringRate returns the inverse scattering time at each frequency in omega:
//
//	tauInv(w) = sum_qa w_q G_qa [B(w+wph) n + B(w-wph) (n+1)] / (gEf B(w))
//
//where wph and n are the frequency and occupation of mode a at q-point q.
//A structurally zero sum (e.g. all linewidths zero) gives exactly 0, whatever
//the normalization.
func ScatteringRate(m *Modes, b Bose, gEf float64, omega []float64) []float64 {
	nq, nModes := m.Dims()
	nph := mat.NewDense(nq, nModes, nil)
	nph.Apply(func(_, _ int, v float64) float64 { return b.Occupation(v) }, m.OmegaPh)
	ret := make([]float64, len(omega))
	terms := make([]float64, 0, nq*nModes)
	for o, w := range omega {
		terms = terms[:0]
		for q := 0; q < nq; q++ {
			wq := m.Weights[q]
			for a := 0; a < nModes; a++ {
				g := m.G.At(q, a)
				if wq == 0 || g == 0 {
					continue
				}
				wph := m.OmegaPh.At(q, a)
				n := nph.At(q, a)
				terms = append(terms, wq*g*(b.B(w+wph)*n+b.B(w-wph)*(n+1)))
			}
		}
		num := floats.Sum(terms)
		if num == 0 {
			continue
		}
		ret[o] = num / (gEf * b.B(w))
	}
	return ret
}

//DrudeEpsilon returns the complex dielectric function
//
//	eps(w) = 1 - 4 pi (pol.vv.pol) / (cellVolume w (w + i tauInv(w)))
//
//at each frequency in omega. Frequencies below Floor are raised to Floor.
//omega and tauInv must have the same length.
func DrudeEpsilon(pol mat.Vector, vv mat.Matrix, cellVolume float64, omega, tauInv []float64) ([]complex128, error) {
	if len(omega) != len(tauInv) {
		return nil, fmt.Errorf("eph.DrudeEpsilon: %d frequencies but %d rates: %w", len(omega), len(tauInv), dmd.ErrShape)
	}
	r, c := vv.Dims()
	if r != 3 || c != 3 || pol.Len() != 3 {
		return nil, fmt.Errorf("eph.DrudeEpsilon: need a 3x3 tensor and a 3-vector: %w", dmd.ErrShape)
	}
	weight := 4 * math.Pi * mat.Inner(pol, vv, pol)
	ret := make([]complex128, len(omega))
	for i, w := range omega {
		wr := math.Max(w, Floor)
		ret[i] = 1 - complex(weight, 0)/(complex(cellVolume*wr, 0)*complex(wr, tauInv[i]))
	}
	return ret, nil
}

//Tau returns 1/rate for each rate, converted to fs. A zero rate gives +Inf.
func Tau(rates []float64) []float64 {
	ret := make([]float64, len(rates))
	for i, v := range rates {
		ret[i] = (1 / v) / dmd.Fs
	}
	return ret
}
