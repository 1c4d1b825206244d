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
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Object represents an object in a PDF file.  The basic types of PDF
// objects, which implement this interface, are: [Array], [Bool], [*Dict],
// [HexString], [Integer], [Name], [Null], [Number], [OctalString], [Real],
// [Reference], [*Stream], and [String].
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	// Calling PDF repeatedly on an unchanged object produces the same
	// output every time.
	PDF(w io.Writer) error
}

// Format returns the PDF file representation of obj as a string.
func Format(obj Object) (string, error) {
	if obj == nil {
		return "null", nil
	}
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.
type Real float64

// PDF implements the [Object] interface.
// NaN and infinite values cannot be represented and give an error.
func (x Real) PDF(w io.Writer) error {
	if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return fmt.Errorf("%w: %g", errNonFinite, float64(x))
	}
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// Number is a numeric constant given as text.  The text is written to the
// PDF file exactly as supplied; the caller is responsible for choosing
// between integer and decimal notation.
type Number string

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	_, err := io.WriteString(w, string(x))
	return err
}

// String represents a literal string in a PDF file.  The bytes are written
// between parentheses without any escaping.  Use [EscapeString] or
// [OctalString] for data which may contain backslashes, unbalanced
// parentheses or control characters.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	buf := make([]byte, 0, len(x)+2)
	buf = append(buf, '(')
	buf = append(buf, x...)
	buf = append(buf, ')')
	_, err := w.Write(buf)
	return err
}

// HexString represents a string in a PDF file, which is written using
// hexadecimal notation.
type HexString []byte

// PDF implements the [Object] interface.
func (x HexString) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<%x>", []byte(x))
	return err
}

// OctalString represents a literal string in a PDF file, where every byte
// is written as a three-digit octal escape sequence.  This can represent
// arbitrary binary data.
type OctalString []byte

// PDF implements the [Object] interface.
func (x OctalString) PDF(w io.Writer) error {
	buf := make([]byte, 0, 4*len(x)+2)
	buf = append(buf, '(')
	for _, c := range x {
		buf = append(buf, '\\', '0'+c>>6, '0'+(c>>3)&7, '0'+c&7)
	}
	buf = append(buf, ')')
	_, err := w.Write(buf)
	return err
}

// Name represents a name in a PDF file.  The name is written with a
// leading slash; no characters are escaped.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "/"+string(x))
	return err
}

// Array represent an array of objects in a PDF file.
// Nil elements are written as null.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		if isNull(val) {
			val = Null{}
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// isNull reports whether obj is nil or a nil pointer to one of the
// pointer object types.
func isNull(obj Object) bool {
	switch x := obj.(type) {
	case nil:
		return true
	case *Dict:
		return x == nil
	case *Stream:
		return x == nil
	}
	return false
}

// Null represents the null object in a PDF file.
type Null struct{}

// PDF implements the [Object] interface.
func (Null) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "null")
	return err
}
