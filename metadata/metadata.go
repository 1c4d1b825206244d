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

// Package metadata creates XMP metadata streams for PDF documents.
package metadata

import (
	"bytes"
	"errors"

	"golang.org/x/text/language"
	pdf "seehuhn.de/go/minipdf"
	"seehuhn.de/go/xmp"
)

// PDF 2.0 sections: 14.3

// Stream represents an XMP metadata stream.
type Stream struct {
	Data *xmp.Packet
}

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

var errNotMetadata = errors.New("not an XMP metadata stream")

var defaultLang = language.MustParse("x-default")

// FromInfo converts the fields of a document information dictionary
// into an XMP packet.  Empty fields are omitted.
func FromInfo(info *pdf.Info) (*Stream, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(defaultLang, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(defaultLang, info.Subject)
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}

	pdfInfo := &PDF{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// AsStream serializes the packet into a metadata stream.
// The filters, if any, are applied in the given order.
func (s *Stream) AsStream(filters ...pdf.Filter) (*pdf.Stream, error) {
	buf := &bytes.Buffer{}
	err := s.Data.Write(buf, nil)
	if err != nil {
		return nil, err
	}

	stm := pdf.NewStream(buf.Bytes())
	stm.Set("Type", pdf.Name("Metadata"))
	stm.Set("Subtype", pdf.Name("XML"))
	for _, f := range filters {
		err = stm.AppendFilter(f)
		if err != nil {
			return nil, err
		}
	}
	return stm, nil
}

// Read decodes a metadata stream created by [Stream.AsStream].
func Read(stm *pdf.Stream) (*Stream, error) {
	if stm.Get("Type") != pdf.Name("Metadata") || stm.Get("Subtype") != pdf.Name("XML") {
		return nil, errNotMetadata
	}
	body, err := stm.Decode()
	if err != nil {
		return nil, err
	}

	packet, err := xmp.Read(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Equal reports whether s and other represent the same XMP metadata.
func (s *Stream) Equal(other *Stream) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Data.Equal(other.Data)
}
