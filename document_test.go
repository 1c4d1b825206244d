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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddNumbering(t *testing.T) {
	doc := NewDocument(nil)

	a := NewIndirect(Integer(1))
	b := NewIndirect(Integer(2))
	c := NewIndirect(Integer(3))
	d := NewIndirect(Integer(4))

	err := doc.Add(a)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Add(b, c)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Add()
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Add(d)
	if err != nil {
		t.Fatal(err)
	}

	var numbers []int
	for _, obj := range doc.Objects() {
		numbers = append(numbers, obj.Number())
		if obj.Generation() != 0 {
			t.Errorf("object %d: generation %d", obj.Number(), obj.Generation())
		}
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, numbers); diff != "" {
		t.Errorf("wrong numbering (-want +got):\n%s", diff)
	}
	if a.Number() != 1 || b.Number() != 2 || c.Number() != 3 || d.Number() != 4 {
		t.Error("objects numbered out of call order")
	}
	if doc.Len() != 4 {
		t.Errorf("wrong length %d", doc.Len())
	}
}

func TestDoubleRegistration(t *testing.T) {
	doc := NewDocument(nil)
	obj := NewIndirect(NewDict())

	err := doc.Add(obj)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Add(obj)
	var dupErr *DoubleRegistrationError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DoubleRegistrationError, got %v", err)
	}
	if dupErr.Number != 1 {
		t.Errorf("wrong number in error: %d", dupErr.Number)
	}
	if doc.Len() != 1 {
		t.Errorf("object added twice, length %d", doc.Len())
	}
}

func TestDoubleRegistrationOtherDocument(t *testing.T) {
	obj := NewIndirect(Null{})

	err := NewDocument(nil).Add(obj)
	if err != nil {
		t.Fatal(err)
	}
	err = NewDocument(nil).Add(obj)
	var dupErr *DoubleRegistrationError
	if !errors.As(err, &dupErr) {
		t.Errorf("expected DoubleRegistrationError, got %v", err)
	}
}

func TestDoubleRegistrationInBatch(t *testing.T) {
	doc := NewDocument(nil)
	a := NewIndirect(Integer(1))
	b := NewIndirect(Integer(2))

	err := doc.Add(a, b, a)
	var dupErr *DoubleRegistrationError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DoubleRegistrationError, got %v", err)
	}

	// objects before the failing one stay registered
	if doc.Len() != 2 || a.Number() != 1 || b.Number() != 2 {
		t.Errorf("unexpected state after failed add: len=%d", doc.Len())
	}
}

func TestAddNil(t *testing.T) {
	doc := NewDocument(nil)
	err := doc.Add(nil)
	if err == nil {
		t.Error("expected an error for a nil object")
	}
}

func TestReference(t *testing.T) {
	obj := NewIndirect(NewDict())
	ref := obj.Reference()

	_, err := Format(ref)
	var refErr *UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected UnresolvedReferenceError, got %v", err)
	}

	doc := NewDocument(nil)
	err = doc.Add(NewIndirect(Null{}), NewIndirect(Null{}), obj)
	if err != nil {
		t.Fatal(err)
	}

	// the reference resolves the number at write time
	out, err := Format(ref)
	if err != nil {
		t.Fatal(err)
	}
	if out != "3 0 R" {
		t.Errorf("wrong reference %q", out)
	}
	if ref.Target() != obj {
		t.Error("wrong target")
	}
}

func TestNilReference(t *testing.T) {
	_, err := Format(Reference{})
	var refErr *UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Errorf("expected UnresolvedReferenceError, got %v", err)
	}
}

func TestIndirectString(t *testing.T) {
	obj := NewIndirect(Null{})
	if s := obj.String(); s != "obj_?" {
		t.Errorf("wrong description %q", s)
	}
	err := NewDocument(nil).Add(obj)
	if err != nil {
		t.Fatal(err)
	}
	if s := obj.String(); s != "obj_1" {
		t.Errorf("wrong description %q", s)
	}
}

func TestDocumentVersion(t *testing.T) {
	if v := NewDocument(nil).Version(); v != V1_3 {
		t.Errorf("wrong default version %s", v)
	}
	if v := NewDocument(&DocumentOptions{Version: V1_7}).Version(); v != V1_7 {
		t.Errorf("wrong version %s", v)
	}
}
