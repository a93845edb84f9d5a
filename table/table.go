/*
 * table.go, part of dmdpost.
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

//Package table reads and writes the whitespace-separated numeric tables
//used as input and output of the analysis, in the layout numpy's loadtxt
//and savetxt use.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	dmd "github.com/grieder/test-DMD"
	"gonum.org/v1/gonum/mat"
)

//Comment starts a comment, which runs to the end of the line.
const Comment = "#"

//Load reads a numeric table from r. Blank lines and comments are skipped.
//All the data rows must have the same number of columns.
func Load(r io.Reader) (*mat.Dense, error) {
	errid := "table.Load"
	inp := bufio.NewReader(r)
	data := make([]float64, 0, 512)
	cols := -1
	rows := 0
	var line string
	var err error
	for nline := 1; ; nline++ {
		line, err = inp.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: line %d: %w", errid, nline, err)
		}
		if line == "" && err != nil {
			break
		}
		if i := strings.Index(line, Comment); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) != 0 {
			if cols < 0 {
				cols = len(fields)
			} else if len(fields) != cols {
				return nil, fmt.Errorf("%s: line %d has %d columns, expected %d: %w", errid, nline, len(fields), cols, dmd.ErrShape)
			}
			for i, v := range fields {
				f, err2 := strconv.ParseFloat(v, 64)
				if err2 != nil {
					return nil, fmt.Errorf("%s: line %d, column %d: %w", errid, nline, i+1, err2)
				}
				data = append(data, f)
			}
			rows++
		}
		if err != nil {
			break
		}
	}
	if rows == 0 {
		return nil, fmt.Errorf("%s: no data found: %w", errid, dmd.ErrShape)
	}
	return mat.NewDense(rows, cols, data), nil
}

//LoadFile reads the table in the file name, which may be compressed (see dmd.Open).
func LoadFile(name string) (*mat.Dense, error) {
	var ret *mat.Dense
	err := dmd.ReadWith(name, func(r io.Reader) error {
		var err error
		ret, err = Load(r)
		return err
	})
	if err != nil {
		return nil, dmd.Decorate(err, "LoadFile")
	}
	return ret, nil
}

//Column returns a copy of the column c of m.
func Column(m mat.Matrix, c int) []float64 {
	r, _ := m.Dims()
	return mat.Col(make([]float64, r), c, m)
}

//Group reshapes the flat column col into a matrix with groups rows,
//so that consecutive elements of col fill a row. The length of col must be
//a multiple of groups, otherwise an error wrapping dmd.ErrShape is returned.
func Group(col []float64, groups int) (*mat.Dense, error) {
	if groups <= 0 {
		return nil, fmt.Errorf("table.Group: invalid number of groups %d: %w", groups, dmd.ErrShape)
	}
	if len(col) == 0 || len(col)%groups != 0 {
		return nil, fmt.Errorf("table.Group: %d rows can't be split in %d groups: %w", len(col), groups, dmd.ErrShape)
	}
	d := make([]float64, len(col))
	copy(d, col)
	return mat.NewDense(groups, len(col)/groups, d), nil
}
