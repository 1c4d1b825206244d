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
	"os"
)

// binaryMarker is the comment on the second line of the file.  The
// high-bit bytes signal that the file contains binary data.
const binaryMarker = "%\xE7\xF3\xCF\xD3\n"

// Render returns the complete PDF file.
//
// The document may be rendered any number of times.  As long as the
// document and its objects are not modified in between, the output is
// the same every time.
func (doc *Document) Render() ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := doc.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the complete PDF file to the named file.  If a file
// with the same name exists, it is overwritten.  Nothing is written if the
// document cannot be rendered.
func (doc *Document) WriteFile(name string) error {
	data, err := doc.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

// WriteTo writes the complete PDF file to w.
// This implements the io.WriterTo interface.
//
// If the root object or the info object have not been added to the
// document, an error is returned before anything is written.  Unresolved
// references inside the objects are only detected while writing, in which
// case w holds incomplete output.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	if doc.root == nil {
		return 0, ErrNoRoot
	}
	if !doc.root.IsRegistered() {
		return 0, &UnresolvedReferenceError{Target: doc.root}
	}
	if doc.info != nil && !doc.info.IsRegistered() {
		return 0, &UnresolvedReferenceError{Target: doc.info}
	}
	ver, err := doc.version.ToString()
	if err != nil {
		return 0, err
	}

	out := &posWriter{w: w}

	_, err = fmt.Fprintf(out, "%%PDF-%s\n", ver)
	if err != nil {
		return out.pos, err
	}
	_, err = io.WriteString(out, binaryMarker)
	if err != nil {
		return out.pos, err
	}

	xref := make([]int64, len(doc.objects))
	for i, obj := range doc.objects {
		xref[i] = out.pos
		err = writeIndirect(out, obj)
		if err != nil {
			return out.pos, fmt.Errorf("object %d: %w", obj.number, err)
		}
	}

	xRefPos := out.pos
	err = writeXRefTable(out, xref)
	if err != nil {
		return out.pos, err
	}

	_, err = io.WriteString(out, "trailer\n")
	if err != nil {
		return out.pos, err
	}
	err = doc.trailer().PDF(out)
	if err != nil {
		return out.pos, err
	}

	_, err = fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF", xRefPos)
	return out.pos, err
}

func writeIndirect(w io.Writer, obj *Indirect) error {
	_, err := fmt.Fprintf(w, "%d %d obj \n", obj.number, obj.generation)
	if err != nil {
		return err
	}
	val := obj.Object
	if isNull(val) {
		val = Null{}
	}
	err = val.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendobj\n\n")
	return err
}

// posWriter keeps track of the number of bytes written, so that the byte
// offsets for the cross-reference table are known.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
