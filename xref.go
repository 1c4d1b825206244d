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
)

// freeEntry heads the linked list of free objects.  Object 0 is always
// free and has the maximal generation number.
const freeEntry = "0000000000 65535 f \n"

// writeXRefTable writes a cross-reference table with a single subsection.
// The entry for object i+1 is at offset xref[i].  Each entry is exactly
// 20 bytes long.  All objects have generation number 0.
func writeXRefTable(w io.Writer, xref []int64) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", len(xref)+1)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, freeEntry)
	if err != nil {
		return err
	}
	for _, pos := range xref {
		_, err = fmt.Fprintf(w, "%010d %05d n \n", pos, 0)
		if err != nil {
			return err
		}
	}
	return nil
}

// trailer returns the trailer dictionary.  The caller must check that the
// root is set.
func (doc *Document) trailer() *Dict {
	trailer := NewDict()
	trailer.Set("Size", Integer(len(doc.objects)+1))
	trailer.Set("Root", doc.root.Reference())
	if doc.info != nil {
		trailer.Set("Info", doc.info.Reference())
	}
	return trailer
}
