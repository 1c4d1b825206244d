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

// Package pdf provides support for writing minimal PDF files.
//
// A PDF file is a container of objects (typically Dictionaries and Streams),
// followed by a cross-reference table which gives the byte offset of every
// object.  A [Document] collects the objects and writes the file:
//
//	doc := pdf.NewDocument(nil)
//
//	catalog := pdf.NewDict()
//	catalog.Set("Type", pdf.Name("Catalog"))
//	root := pdf.NewIndirect(catalog)
//
//	err := doc.Add(root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc.SetRoot(root)
//
//	err = doc.WriteFile("out.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Objects which are referenced from other objects are wrapped using
// [NewIndirect] and added to the document.  [Indirect.Reference] gives a
// reference which can be stored inside dictionaries and arrays.  Object
// numbers are assigned by [Document.Add], so a reference can be created
// before the object it points to has been added.
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	*Dict
//	HexString
//	Integer
//	Name
//	Null
//	Number
//	OctalString
//	Real
//	Reference
//	*Stream
//	String
//
// Stream data can be compressed or encoded using the filters
// [FilterFlate], [FilterASCIIHex], [FilterASCII85] and [FilterRunLength].
package pdf
