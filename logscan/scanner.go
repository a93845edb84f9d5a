/*
 * scanner.go, part of dmdpost.
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

//Package logscan reads the free-form text logs written by the simulation
//programs. Lines are recognized by a literal prefix, and the numbers needed
//are taken from fixed token positions.
package logscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//Rule is applied to every line that starts with Prefix.
//Line, if not nil, receives the whitespace-separated tokens of the line.
//If Block is larger than 0, the Block lines that follow the marker line
//are passed, in order, to BlockLine, with row going from 0 to Block-1.
type Rule struct {
	Prefix    string
	Line      func(fields []string) error
	Block     int
	BlockLine func(row int, fields []string) error
}

//Scanner dispatches the lines of a log to a set of rules.
type Scanner struct {
	rules []Rule
}

//NewScanner returns a scanner with the given rules.
func NewScanner(rules ...Rule) *Scanner {
	return &Scanner{rules: rules}
}

//Scan reads r line by line and applies the rules. Lines that match no rule
//are ignored. A marker of a block rule that shows up again restarts the block,
//so, as for the single-line rules, the last occurrence wins.
//The first error returned by a rule stops the scan, and is returned with the
//line number where it happened.
func (S *Scanner) Scan(r io.Reader) error {
	inp := bufio.NewReader(r)
	pending := make([]int, len(S.rules)) //block lines still to be read, per rule
	var line string
	var err error
	for nline := 1; ; nline++ {
		line, err = inp.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("Scan: line %d: %w", nline, err)
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		var fields []string //only split when some rule needs it
		for i, rule := range S.rules {
			match := strings.HasPrefix(line, rule.Prefix)
			if fields == nil && (match || pending[i] > 0) {
				fields = strings.Fields(line)
			}
			//a new marker restarts the block instead of being read as one of its rows.
			if pending[i] > 0 && !(match && rule.Block > 0) {
				row := rule.Block - pending[i]
				pending[i]--
				if rule.BlockLine != nil {
					if err2 := rule.BlockLine(row, fields); err2 != nil {
						return fmt.Errorf("Scan: line %d: %w", nline, err2)
					}
				}
			}
			if !match {
				continue
			}
			if rule.Line != nil {
				if err2 := rule.Line(fields); err2 != nil {
					return fmt.Errorf("Scan: line %d: %w", nline, err2)
				}
			}
			if rule.Block > 0 {
				pending[i] = rule.Block
			}
		}
		if err != nil {
			break //EOF, but the last line was still processed.
		}
	}
	return nil
}

//Float parses the i-th token in fields as a float64.
func Float(fields []string, i int) (float64, error) {
	if i < 0 || i >= len(fields) {
		return 0, fmt.Errorf("token %d requested but line has only %d tokens: %q", i, len(fields), strings.Join(fields, " "))
	}
	f, err := strconv.ParseFloat(fields[i], 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: %w", i, err)
	}
	return f, nil
}

//Floats parses the tokens from ini (inclusive) to end (exclusive) of fields.
func Floats(fields []string, ini, end int) ([]float64, error) {
	ret := make([]float64, 0, end-ini)
	for i := ini; i < end; i++ {
		f, err := Float(fields, i)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}
	return ret, nil
}
