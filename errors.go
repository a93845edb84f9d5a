/*
 * errors.go, part of dmdpost.
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

import (
	"errors"
	"fmt"
	"strings"
)

//ErrShape is wrapped by every error caused by tables whose row counts
//are not consistent with each other.
var ErrShape = errors.New("inconsistent table shape")

//Error is the error type for problems tied to an input file.
//The Decorate method allows to add the names of the functions the error
//went through, without changing its type. The wrapped cause, if any, is
//available through errors.Unwrap.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	cause    error
}

//NewError returns a critical Error for the file filename, with the
//given message and (possibly nil) cause. callers are added as decoration.
func NewError(filename, message string, cause error, callers ...string) *Error {
	return &Error{message: message, filename: filename, deco: callers, critical: true, cause: cause}
}

//NewWarning is like NewError, but the returned Error is not critical: the run
//can go on without the file.
func NewWarning(filename, message string, cause error, callers ...string) *Error {
	e := NewError(filename, message, cause, callers...)
	e.critical = false
	return e
}

func (E *Error) Error() string {
	ret := E.message
	if E.filename != "" {
		ret = fmt.Sprintf("file %s: %s", E.filename, E.message)
	}
	if len(E.deco) > 0 {
		ret = strings.Join(E.deco, ": ") + ": " + ret
	}
	if E.cause != nil {
		ret += ": " + E.cause.Error()
	}
	return ret
}

//Decorate adds deco to the list of callers, unless it is empty, and returns the current list.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append([]string{deco}, E.deco...)
	}
	return E.deco
}

//FileName returns the file to which the error is associated
func (E *Error) FileName() string { return E.filename }

//Critical returns whether the error should stop the run.
func (E *Error) Critical() bool { return E.critical }

func (E *Error) Unwrap() error { return E.cause }

//Decorate adds caller to err if err is an *Error (anywhere in its chain),
//and returns err. Other errors are returned unchanged.
func Decorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
