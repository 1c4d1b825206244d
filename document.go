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

import "slices"

// DocumentOptions allows to influence the way a PDF document is written.
type DocumentOptions struct {
	// Version is the PDF version written into the file header.
	// If this is zero, DefaultVersion is used.
	Version Version
}

// Document collects the indirect objects of a PDF file.
//
// Objects are numbered consecutively, starting at 1, in the order they are
// added.  A Document is not safe for concurrent use.
type Document struct {
	version Version
	objects []*Indirect
	root    *Indirect
	info    *Indirect
}

// NewDocument creates a new, empty document.  If opt is nil, default
// options are used.
func NewDocument(opt *DocumentOptions) *Document {
	if opt == nil {
		opt = &DocumentOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = DefaultVersion
	}
	return &Document{
		version: ver,
	}
}

// Version returns the PDF version used in the file header.
func (doc *Document) Version() Version {
	return doc.version
}

// Add registers objects with the document, in the order given.  Each object
// is assigned the next free object number and generation 0.
//
// If one of the objects has been added before, a [*DoubleRegistrationError]
// is returned.  Objects preceding the failing one remain registered.
func (doc *Document) Add(objs ...*Indirect) error {
	for _, obj := range objs {
		if obj == nil {
			return errNilIndirect
		}
		if obj.IsRegistered() {
			return &DoubleRegistrationError{Number: obj.number}
		}
		obj.generation = 0
		obj.number = len(doc.objects) + 1
		doc.objects = append(doc.objects, obj)
	}
	return nil
}

// SetRoot sets the object which is referenced by the /Root entry of the
// trailer.  This is normally the document catalog.  The object must be
// added to the document separately.
func (doc *Document) SetRoot(root *Indirect) {
	doc.root = root
}

// SetInfo sets the object which is referenced by the /Info entry of the
// trailer.  Use nil to omit the /Info entry.  The object must be added to
// the document separately.
func (doc *Document) SetInfo(info *Indirect) {
	doc.info = info
}

// Len returns the number of objects in the document.
func (doc *Document) Len() int {
	return len(doc.objects)
}

// Objects returns the objects of the document, ordered by object number.
func (doc *Document) Objects() []*Indirect {
	return slices.Clone(doc.objects)
}
