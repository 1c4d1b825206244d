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
	"io"
	"slices"
	"strconv"
	"strings"
)

// Dict represent a Dictionary object in a PDF file.
//
// Entries are written in the order in which the keys were first set.
// The zero value is an empty dictionary, ready to use.
type Dict struct {
	keys []Name
	vals map[Name]Object
}

// NewDict returns a new, empty dictionary.
func NewDict() *Dict {
	return &Dict{}
}

// dictKey strips the leading slash, if any, so that "Type" and "/Type"
// refer to the same entry.
func dictKey(key Name) Name {
	return Name(strings.TrimPrefix(string(key), "/"))
}

// Set sets the value for the given key.  If the key is already present,
// the value is replaced and the entry keeps its position.  A nil value,
// including a nil *Dict or *Stream, is stored as [Null].
func (d *Dict) Set(key Name, val Object) {
	key = dictKey(key)
	if isNull(val) {
		val = Null{}
	}
	if d.vals == nil {
		d.vals = make(map[Name]Object)
	}
	if _, seen := d.vals[key]; !seen {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
}

// Get returns the value stored for key, or nil if the key is not present.
func (d *Dict) Get(key Name) Object {
	return d.vals[dictKey(key)]
}

// Delete removes the entry for key.  Deleting a missing key is a no-op.
func (d *Dict) Delete(key Name) {
	key = dictKey(key)
	if _, seen := d.vals[key]; !seen {
		return
	}
	delete(d.vals, key)
	d.keys = slices.DeleteFunc(d.keys, func(k Name) bool { return k == key })
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys of the dictionary, in insertion order.
func (d *Dict) Keys() []Name {
	return slices.Clone(d.keys)
}

func (d *Dict) String() string {
	res := "Dict"
	if tp, ok := d.Get("Type").(Name); ok {
		res = string(tp) + " Dict"
	}
	return "<" + res + ", " + strconv.Itoa(d.Len()) + " entries>"
}

// PDF implements the [Object] interface.
//
// Each entry is written on a line of its own.  An empty dictionary is
// written as "<<\n>>".
func (d *Dict) PDF(w io.Writer) error {
	if d == nil {
		return Null{}.PDF(w)
	}
	_, err := io.WriteString(w, "<<\n")
	if err != nil {
		return err
	}
	for _, key := range d.keys {
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = d.vals[key].PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " \n")
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, ">>")
	return err
}
