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
	"compress/zlib"
	"fmt"
	"io"

	"seehuhn.de/go/minipdf/internal/filter/ascii85"
	"seehuhn.de/go/minipdf/internal/filter/asciihex"
	"seehuhn.de/go/minipdf/internal/filter/runlength"
)

// Filter represents a PDF stream filter.
//
// For every byte sequence x, Decode(Encode(x)) must return x.  Filters are
// stateless and can be used concurrently for different streams.
type Filter interface {
	// Name returns the name used in the /Filter entry of the stream
	// dictionary.
	Name() Name

	// Encode applies the filter to data.
	Encode(data []byte) ([]byte, error)

	// Decode reverses the effect of Encode.
	Decode(data []byte) ([]byte, error)
}

// FilterFlate is the FlateDecode filter, using zlib compression.
//
// The zero value uses the default compression level.
type FilterFlate struct {
	// Level is the zlib compression level.  If this is 0,
	// zlib.DefaultCompression is used.
	Level int
}

// Name implements the [Filter] interface.
func (f FilterFlate) Name() Name {
	return "FlateDecode"
}

// Encode implements the [Filter] interface.
func (f FilterFlate) Encode(data []byte) ([]byte, error) {
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	return encodeWith(data, func(w io.WriteCloser) (io.WriteCloser, error) {
		return zlib.NewWriterLevel(w, level)
	})
}

// Decode implements the [Filter] interface.
func (f FilterFlate) Decode(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("FlateDecode: %w", err)
	}
	defer zr.Close()
	return decodeFrom(f.Name(), zr)
}

// FilterASCIIHex is the ASCIIHexDecode filter.
type FilterASCIIHex struct{}

// Name implements the [Filter] interface.
func (f FilterASCIIHex) Name() Name {
	return "ASCIIHexDecode"
}

// Encode implements the [Filter] interface.
func (f FilterASCIIHex) Encode(data []byte) ([]byte, error) {
	return encodeWith(data, func(w io.WriteCloser) (io.WriteCloser, error) {
		return asciihex.Encode(w, 79), nil
	})
}

// Decode implements the [Filter] interface.
func (f FilterASCIIHex) Decode(data []byte) ([]byte, error) {
	return decodeFrom(f.Name(), asciihex.Decode(bytes.NewReader(data)))
}

// FilterASCII85 is the ASCII85Decode filter.
type FilterASCII85 struct{}

// Name implements the [Filter] interface.
func (f FilterASCII85) Name() Name {
	return "ASCII85Decode"
}

// Encode implements the [Filter] interface.
func (f FilterASCII85) Encode(data []byte) ([]byte, error) {
	return encodeWith(data, func(w io.WriteCloser) (io.WriteCloser, error) {
		return ascii85.Encode(w), nil
	})
}

// Decode implements the [Filter] interface.
func (f FilterASCII85) Decode(data []byte) ([]byte, error) {
	return decodeFrom(f.Name(), ascii85.Decode(bytes.NewReader(data)))
}

// FilterRunLength is the RunLengthDecode filter.
type FilterRunLength struct{}

// Name implements the [Filter] interface.
func (f FilterRunLength) Name() Name {
	return "RunLengthDecode"
}

// Encode implements the [Filter] interface.
func (f FilterRunLength) Encode(data []byte) ([]byte, error) {
	return encodeWith(data, func(w io.WriteCloser) (io.WriteCloser, error) {
		return runlength.Encode(w), nil
	})
}

// Decode implements the [Filter] interface.
func (f FilterRunLength) Decode(data []byte) ([]byte, error) {
	return decodeFrom(f.Name(), runlength.Decode(bytes.NewReader(data)))
}

// encodeWith runs data through the streaming encoder returned by open.
func encodeWith(data []byte, open func(io.WriteCloser) (io.WriteCloser, error)) ([]byte, error) {
	buf := &bytes.Buffer{}
	w, err := open(withoutClose{buf})
	if err != nil {
		return nil, err
	}
	_, err = w.Write(data)
	if err != nil {
		return nil, err
	}
	err = w.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeFrom(name Name, r io.Reader) ([]byte, error) {
	res, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

// withoutClose turns an io.Writer into an io.WriteCloser.
type withoutClose struct {
	io.Writer
}

func (w withoutClose) Close() error {
	return nil
}
