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
	"slices"
	"time"

	"golang.org/x/exp/maps"
)

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  The zero value represents
// an empty information dictionary.
//
// The Document Information Dictionary is documented in section
// 14.3.3 of ISO 32000-2:2020.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the document,
	// if the document was converted to PDF from another format.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time

	// ModDate gives the date and time the document was most recently modified.
	ModDate time.Time

	// Trapped indicates whether the document has been modified to include
	// trapping information.  If this is nil, the trapping status is unknown
	// and no entry is written.
	Trapped *bool

	// Custom contains non-standard fields.  These are written after the
	// standard fields, sorted by key.
	Custom map[string]string
}

// AsDict returns the information dictionary for info.
// Empty fields are omitted.
func (info *Info) AsDict() (*Dict, error) {
	dict := NewDict()

	text := []struct {
		key Name
		val string
	}{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Keywords", info.Keywords},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	}
	for _, field := range text {
		if field.val == "" {
			continue
		}
		obj, err := TextString(field.val)
		if err != nil {
			return nil, err
		}
		dict.Set(field.key, obj)
	}

	if !info.CreationDate.IsZero() {
		dict.Set("CreationDate", Date(info.CreationDate))
	}
	if !info.ModDate.IsZero() {
		dict.Set("ModDate", Date(info.ModDate))
	}
	if info.Trapped != nil {
		if *info.Trapped {
			dict.Set("Trapped", Name("True"))
		} else {
			dict.Set("Trapped", Name("False"))
		}
	}

	keys := maps.Keys(info.Custom)
	slices.Sort(keys)
	for _, key := range keys {
		obj, err := TextString(info.Custom[key])
		if err != nil {
			return nil, err
		}
		dict.Set(Name(key), obj)
	}

	return dict, nil
}
