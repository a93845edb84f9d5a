/*
 * table_test.go, part of dmdpost.
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

package table

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	dmd "github.com/grieder/test-DMD"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLoad(Te *testing.T) {
	in := `# iq  w  header
1 0.5
2 0.25 # trailing comment

3 0.125`
	m, err := Load(strings.NewReader(in))
	require.NoError(Te, err)
	r, c := m.Dims()
	assert.Equal(Te, 3, r)
	assert.Equal(Te, 2, c)
	assert.Equal(Te, []float64{0.5, 0.25, 0.125}, Column(m, 1))
}

func TestLoadShape(Te *testing.T) {
	_, err := Load(strings.NewReader("1 2\n3\n"))
	require.Error(Te, err)
	assert.ErrorIs(Te, err, dmd.ErrShape)
	assert.Contains(Te, err.Error(), "line 2")

	_, err = Load(strings.NewReader("# only a comment\n\n"))
	assert.ErrorIs(Te, err, dmd.ErrShape)

	_, err = Load(strings.NewReader("1 x\n"))
	require.Error(Te, err)
	assert.NotErrorIs(Te, err, dmd.ErrShape)
}

func TestSaveLoad(Te *testing.T) {
	x := []float64{0, 0.01, 0.02}
	y := []float64{1.5e3, -2.25e-7, 3}
	var buf bytes.Buffer
	require.NoError(Te, Save(&buf, "omega[eV] tauAC[fs]", x, y))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(Te, lines, 4)
	assert.Equal(Te, "# omega[eV] tauAC[fs]", lines[0])
	assert.Equal(Te, "0.000000000000000000e+00 1.500000000000000000e+03", lines[1])

	m, err := Load(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, x, Column(m, 0))
	assert.Equal(Te, y, Column(m, 1))
}

func TestSaveNonFinite(Te *testing.T) {
	var buf bytes.Buffer
	require.NoError(Te, Save(&buf, "", []float64{0, 1}, []float64{math.Inf(1), math.NaN()}, []float64{-2, math.Inf(-1)}))
	assert.Equal(Te, "0.000000000000000000e+00 inf -2.000000000000000000e+00\n"+
		"1.000000000000000000e+00 nan -inf\n", buf.String())
	m, err := Load(&buf)
	require.NoError(Te, err)
	assert.True(Te, math.IsInf(m.At(0, 1), 1))
	assert.True(Te, math.IsNaN(m.At(1, 1)))
	assert.True(Te, math.IsInf(m.At(1, 2), -1))
}

func TestSaveShape(Te *testing.T) {
	var buf bytes.Buffer
	err := Save(&buf, "", []float64{1, 2}, []float64{1})
	assert.ErrorIs(Te, err, dmd.ErrShape)
	assert.Error(Te, Save(&buf, "x"))
}

func TestWriteFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "ReEpsDrude.dat")
	require.NoError(Te, WriteFile(name, "omega[eV] ReEps", []float64{1, 2}, []float64{-3, 4}))
	m, err := LoadFile(name)
	require.NoError(Te, err)
	assert.True(Te, mat.Equal(m, mat.NewDense(2, 2, []float64{1, -3, 2, 4})))

	_, err = LoadFile(filepath.Join(Te.TempDir(), "nope.dat"))
	assert.Error(Te, err)
}

func TestGroup(Te *testing.T) {
	col := []float64{1, 2, 3, 4, 5, 6}
	g, err := Group(col, 2)
	require.NoError(Te, err)
	r, c := g.Dims()
	assert.Equal(Te, 2, r)
	assert.Equal(Te, 3, c)
	assert.Equal(Te, []float64{4, 5, 6}, mat.Row(nil, 1, g))
	//the input is not aliased.
	col[0] = 100
	assert.Equal(Te, 1.0, g.At(0, 0))

	_, err = Group(col, 4)
	assert.ErrorIs(Te, err, dmd.ErrShape)
	_, err = Group(col, 0)
	assert.ErrorIs(Te, err, dmd.ErrShape)
	_, err = Group(nil, 1)
	assert.ErrorIs(Te, err, dmd.ErrShape)
}
