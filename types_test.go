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
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-17), "-17"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Number("3.14159"), "3.14159"},
		{Number("007"), "007"},
		{String("a"), "(a)"},
		{String(""), "()"},
		{String("a (test version"), "(a (test version)"},
		{HexString{}, "<>"},
		{HexString{0x00, 0xFF, 0x1A}, "<00ff1a>"},
		{OctalString{}, "()"},
		{OctalString{0, 8, 255}, `(\000\010\377)`},
		{OctalString("A"), `(\101)`},
		{Name("Type"), "/Type"},
		{Name(""), "/"},
		{Array{}, "[]"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{Name("A"), Array{Bool(true)}}, "[/A [true]]"},
		{Null{}, "null"},
		{NewDict(), "<<\n>>"},
		{&Dict{}, "<<\n>>"},
	}
	for _, test := range cases {
		out, err := Format(test.in)
		if err != nil {
			t.Errorf("%v: %v", test.in, err)
			continue
		}
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestOctalStringAllBytes(t *testing.T) {
	in := make(OctalString, 256)
	for i := range in {
		in[i] = byte(i)
	}
	out, err := Format(in)
	if err != nil {
		t.Fatal(err)
	}

	b := &strings.Builder{}
	b.WriteString("(")
	for i := range 256 {
		fmt.Fprintf(b, `\%03o`, i)
	}
	b.WriteString(")")
	if out != b.String() {
		t.Errorf("wrong octal string:\n%s\n%s", out, b.String())
	}
}

func TestFormatIdempotent(t *testing.T) {
	dict := NewDict()
	dict.Set("A", Array{Integer(1), HexString("x")})
	dict.Set("B", OctalString("y"))

	first, err := Format(dict)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Format(dict)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("output changed:\n%q\n%q", first, second)
	}
}

func TestNestedUnresolvedReference(t *testing.T) {
	obj := NewIndirect(Integer(1))
	arr := Array{Integer(0), obj.Reference()}

	_, err := Format(arr)
	var refErr *UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected UnresolvedReferenceError, got %v", err)
	}
	if refErr.Target != obj {
		t.Error("wrong target in error")
	}
}

func TestRealNotFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Format(Real(x))
		if !errors.Is(err, errNonFinite) {
			t.Errorf("%g: expected an error, got %v", x, err)
		}
	}
}

func TestNilPointerIsNull(t *testing.T) {
	var dict *Dict
	var stream *Stream
	cases := []Object{
		dict,
		stream,
		Array{dict, stream},
	}
	want := []string{"null", "null", "[null null]"}
	for i, obj := range cases {
		out, err := Format(obj)
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if out != want[i] {
			t.Errorf("%d: expected %q, got %q", i, want[i], out)
		}
	}
}
