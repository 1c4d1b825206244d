// seehuhn.de/go/minipdf - a library for writing minimal PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"errors"
	"strconv"
)

var (
	// ErrNoRoot is returned when a document is written before a root
	// object has been set.
	ErrNoRoot = errors.New("missing document root")

	errVersion     = errors.New("unsupported PDF version")
	errNilIndirect = errors.New("cannot add nil object")
	errNonFinite   = errors.New("real number is not finite")
)

// DoubleRegistrationError indicates an attempt to add an object to a
// document, which has already been added before.
type DoubleRegistrationError struct {
	// Number is the object number assigned by the first registration.
	Number int
}

func (err *DoubleRegistrationError) Error() string {
	return "object already added as object " + strconv.Itoa(err.Number)
}

// UnresolvedReferenceError indicates that a reference to an object was
// written, before the object was added to a document.
type UnresolvedReferenceError struct {
	Target *Indirect
}

func (err *UnresolvedReferenceError) Error() string {
	if err.Target == nil {
		return "reference to nil object"
	}
	return "reference to unregistered object"
}
