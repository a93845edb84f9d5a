/*
 * eph_test.go, part of dmdpost.
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

package eph

import (
	"math"
	"math/cmplx"
	"testing"

	dmd "github.com/grieder/test-DMD"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFreqGrid(Te *testing.T) {
	g, err := FreqGrid(1, 0.5)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0.5}, g)
	g, err = FreqGrid(1.1, 0.5)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0.5, 1}, g)
	g, err = FreqGrid(0, 0.5)
	require.NoError(Te, err)
	assert.Empty(Te, g)
	_, err = FreqGrid(1, 0)
	assert.Error(Te, err)
	_, err = FreqGrid(math.NaN(), 0.1)
	assert.Error(Te, err)
}

func TestBose(Te *testing.T) {
	b := NewBose(300 * dmd.Kelvin)
	for _, x := range []float64{0, 1e-30, -1e-30, 1e-12} {
		v := b.B(x)
		assert.False(Te, math.IsNaN(v) || math.IsInf(v, 0), "B(%g)=%g", x, v)
		assert.InDelta(Te, 1, v, 1e-5)
	}
	//detailed balance: B(x)-B(-x) = beta*x
	x := 0.3 * dmd.EV
	assert.InEpsilon(Te, b.Beta*x, b.B(x)-b.B(-x), 1e-9)
	assert.InEpsilon(Te, math.Exp(b.Beta*x), b.B(x)/b.B(-x), 1e-9)

	w := 0.02 * dmd.EV
	assert.InEpsilon(Te, 1/(math.Exp(b.Beta*w)-1), b.Occupation(w), 1e-12)
	n0 := b.Occupation(0)
	assert.False(Te, math.IsInf(n0, 0))
	assert.InEpsilon(Te, 1/math.Expm1(b.Beta*Floor), n0, 1e-12)
}

func TestPolarization(Te *testing.T) {
	p := Polarization(0, 0)
	assert.InDeltaSlice(Te, []float64{0, 0, 1}, p.RawVector().Data, 1e-15)
	p = Polarization(90, 90)
	assert.InDeltaSlice(Te, []float64{0, 1, 0}, p.RawVector().Data, 1e-15)
	p = Polarization(37, 211)
	assert.InDelta(Te, 1, mat.Norm(p, 2), 1e-14)
}

func testModes(Te *testing.T, g []float64) *Modes {
	qlist := mat.NewDense(2, 4, []float64{
		0, 0, 0, 0.25,
		0.5, 0, 0, 0.75,
	})
	gph := mat.NewDense(4, 3, []float64{
		0.01, 0, g[0],
		0.02, 0, g[1],
		0.015, 0, g[2],
		0.03, 0, g[3],
	})
	m, err := NewModes(qlist, gph, 2)
	require.NoError(Te, err)
	return m
}

func TestNewModes(Te *testing.T) {
	m := testModes(Te, []float64{1, 2, 3, 4})
	nq, nm := m.Dims()
	assert.Equal(Te, 2, nq)
	assert.Equal(Te, 2, nm)
	assert.Equal(Te, []float64{0.25, 0.75}, m.Weights)
	assert.Equal(Te, 0.015, m.OmegaPh.At(1, 0))
	assert.Equal(Te, 4.0, m.G.At(1, 1))

	qlist := mat.NewDense(2, 4, nil)
	_, err := NewModes(qlist, mat.NewDense(3, 3, nil), 2)
	assert.ErrorIs(Te, err, dmd.ErrShape)
	_, err = NewModes(qlist, mat.NewDense(4, 2, nil), 2)
	assert.ErrorIs(Te, err, dmd.ErrShape)
	_, err = NewModes(mat.NewDense(2, 3, nil), mat.NewDense(4, 3, nil), 2)
	assert.ErrorIs(Te, err, dmd.ErrShape)
	qlist.Set(1, 3, -1)
	_, err = NewModes(qlist, mat.NewDense(4, 3, nil), 2)
	assert.Error(Te, err)
}

func TestScatteringRateZero(Te *testing.T) {
	m := testModes(Te, []float64{0, 0, 0, 0})
	b := NewBose(300 * dmd.Kelvin)
	omega, err := FreqGrid(1*dmd.EV, 0.1*dmd.EV)
	require.NoError(Te, err)
	//gEf = 0 would give NaN if the zero sum were divided.
	for _, v := range ScatteringRate(m, b, 0, omega) {
		assert.Equal(Te, 0.0, v)
	}
}

func TestScatteringRate(Te *testing.T) {
	qlist := mat.NewDense(1, 4, []float64{0, 0, 0, 0.5})
	gph := mat.NewDense(1, 3, []float64{0.01, 0, 2e-3})
	m, err := NewModes(qlist, gph, 2)
	require.NoError(Te, err)
	kT := 300 * dmd.Kelvin
	b := NewBose(kT)
	gEf := 10.0
	omega := []float64{0.005, 0.05}
	got := ScatteringRate(m, b, gEf, omega)
	require.Len(Te, got, 2)

	bf := func(x float64) float64 { return (x / kT) / (1 - math.Exp(-x/kT)) }
	n := 1 / (math.Exp(0.01/kT) - 1)
	for i, w := range omega {
		want := 0.5 * 2e-3 * (bf(w+0.01)*n + bf(w-0.01)*(n+1)) / (gEf * bf(w))
		assert.InEpsilon(Te, want, got[i], 1e-9)
		assert.Greater(Te, got[i], 0.0)
	}

	//linear in G and in 1/gEf
	m.G.Scale(3, m.G)
	got3 := ScatteringRate(m, b, 2*gEf, omega)
	assert.InEpsilon(Te, 1.5*got[1], got3[1], 1e-12)
}

func TestDrudeEpsilon(Te *testing.T) {
	pol := Polarization(0, 0)
	vv := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
	})
	vol := 250.0
	omega := []float64{0, 0.01, 0.1}
	tauInv := []float64{1e-3, 2e-3, 0}
	eps, err := DrudeEpsilon(pol, vv, vol, omega, tauInv)
	require.NoError(Te, err)
	require.Len(Te, eps, 3)
	for i, w := range omega {
		wr := math.Max(w, Floor)
		want := 1 - complex(4*math.Pi*3, 0)/complex(vol*wr, 0)/complex(wr, tauInv[i])
		assert.InDelta(Te, 0, cmplx.Abs(want-eps[i])/cmplx.Abs(want), 1e-12)
		assert.False(Te, cmplx.IsNaN(eps[i]) || cmplx.IsInf(eps[i]))
	}
	//no scattering, real epsilon
	assert.Equal(Te, 0.0, imag(eps[2]))

	_, err = DrudeEpsilon(pol, vv, vol, omega, tauInv[:2])
	assert.ErrorIs(Te, err, dmd.ErrShape)
	_, err = DrudeEpsilon(pol, mat.NewDense(2, 2, nil), vol, omega, tauInv)
	assert.ErrorIs(Te, err, dmd.ErrShape)
}

func TestTau(Te *testing.T) {
	t := Tau([]float64{1 / dmd.Fs, 0})
	assert.InDelta(Te, 1, t[0], 1e-12)
	assert.True(Te, math.IsInf(t[1], 1))
}
