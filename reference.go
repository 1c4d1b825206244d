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
	"fmt"
	"io"
	"strconv"
)

// Indirect is an object which is stored in a PDF file as an indirect
// object.  The object number and generation number are assigned when the
// object is added to a [Document].
type Indirect struct {
	// Object is the value stored in the indirect object.
	Object Object

	number     int
	generation uint16
}

// NewIndirect wraps obj so that it can be added to a [Document].
func NewIndirect(obj Object) *Indirect {
	return &Indirect{Object: obj}
}

// Number returns the object number, or 0 if x has not been added to a
// document.
func (x *Indirect) Number() int {
	return x.number
}

// Generation returns the generation number.  This is always 0.
func (x *Indirect) Generation() uint16 {
	return x.generation
}

// IsRegistered reports whether x has been added to a document.
func (x *Indirect) IsRegistered() bool {
	return x != nil && x.number > 0
}

// Reference returns a reference to x.  The reference can be created at any
// time, but x must be added to a document before the reference is written.
func (x *Indirect) Reference() Reference {
	return Reference{target: x}
}

func (x *Indirect) String() string {
	if !x.IsRegistered() {
		return "obj_?"
	}
	s := "obj_" + strconv.Itoa(x.number)
	if x.generation > 0 {
		s += "@" + strconv.FormatUint(uint64(x.generation), 10)
	}
	return s
}

// Reference represents a reference to an indirect object in a PDF file.
//
// A Reference does not own the object it points to.  The object number is
// looked up when the reference is written.
type Reference struct {
	target *Indirect
}

// Target returns the indirect object the reference points to.
func (x Reference) Target() *Indirect {
	return x.target
}

// PDF implements the [Object] interface.
// If the target has not been added to a document, an
// [*UnresolvedReferenceError] is returned and nothing is written.
func (x Reference) PDF(w io.Writer) error {
	if !x.target.IsRegistered() {
		return &UnresolvedReferenceError{Target: x.target}
	}
	_, err := fmt.Fprintf(w, "%d %d R", x.target.number, x.target.generation)
	return err
}
