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

package pdf_test

import (
	"bytes"
	"fmt"
	"strings"

	pdf "seehuhn.de/go/minipdf"
)

func ExampleFormat() {
	box := pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Real(595.5), pdf.Integer(842)}
	out, err := pdf.Format(box)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	out, err = pdf.Format(pdf.EscapeString([]byte("a (b")))
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// [0 0 595.5 842]
	// (a \(b)
}

func ExampleDocument_Render() {
	doc := pdf.NewDocument(nil)

	catalog := pdf.NewDict()
	catalog.Set("Type", pdf.Name("Catalog"))
	root := pdf.NewIndirect(catalog)
	err := doc.Add(root)
	if err != nil {
		panic(err)
	}
	doc.SetRoot(root)

	out, err := doc.Render()
	if err != nil {
		panic(err)
	}
	_, body, _ := bytes.Cut(out, []byte("\xD3\n"))
	for _, line := range strings.Split(string(body), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	// 1 0 obj
	// <<
	//  /Type /Catalog
	// >>
	// endobj
	//
	// xref
	// 0 2
	// 0000000000 65535 f
	// 0000000015 00000 n
	// trailer
	// <<
	//  /Size 2
	//  /Root 1 0 R
	// >>
	// startxref
	// 55
	// %%EOF
}
