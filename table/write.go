/*
 * write.go, part of dmdpost.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	dmd "github.com/grieder/test-DMD"
)

//Save writes the columns given to w, preceded by a "# header" line.
//Numbers are written with 18 decimals in exponential notation and separated by
//one space. Infinities and NaN are written inf, -inf and nan. All columns must have the same length.
func Save(w io.Writer, header string, cols ...[]float64) error {
	if len(cols) == 0 {
		return fmt.Errorf("table.Save: no columns given")
	}
	n := len(cols[0])
	for i, c := range cols {
		if len(c) != n {
			return fmt.Errorf("table.Save: column %d has %d elements, expected %d: %w", i, len(c), n, dmd.ErrShape)
		}
	}
	out := bufio.NewWriter(w)
	if header != "" {
		if _, err := fmt.Fprintf(out, "%s %s\n", Comment, header); err != nil {
			return err
		}
	}
	buf := make([]byte, 0, 32*len(cols))
	for i := 0; i < n; i++ {
		buf = buf[:0]
		for j, c := range cols {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = appendFloat(buf, c[i])
		}
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}
	return out.Flush()
}

//appendFloat appends v with 18 decimals in exponential notation. Infinities and
//NaN are spelled inf, -inf and nan, as numpy writes them.
func appendFloat(buf []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(buf, "nan"...)
	case math.IsInf(v, 1):
		return append(buf, "inf"...)
	case math.IsInf(v, -1):
		return append(buf, "-inf"...)
	}
	return strconv.AppendFloat(buf, v, 'e', 18, 64)
}

//WriteFile writes the columns to the file name (see Save), replacing
//any previous content.
func WriteFile(name, header string, cols ...[]float64) error {
	f, err := os.Create(name)
	if err != nil {
		return dmd.NewError(name, "can't create", err, "WriteFile")
	}
	if err = Save(f, header, cols...); err != nil {
		f.Close()
		return dmd.NewError(name, "can't write", err, "WriteFile")
	}
	if err = f.Close(); err != nil {
		return dmd.NewError(name, "can't close", err, "WriteFile")
	}
	return nil
}
