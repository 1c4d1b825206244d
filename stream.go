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

// Stream represent a stream object in a PDF file.
//
// The /Length and /Filter entries of the stream dictionary are derived
// from the payload and the filter chain.  They are recomputed every time
// the stream is written, overwriting any values set by the caller.
type Stream struct {
	Dict

	data     []byte
	filtered []byte
	filters  []Filter
}

// NewStream returns a new stream object with the given payload and an
// empty stream dictionary.
func NewStream(data []byte) *Stream {
	return &Stream{
		data:     data,
		filtered: data,
	}
}

// AppendFilter adds f to the end of the filter chain.  The filtered
// payload and the stream dictionary are updated immediately.
func (x *Stream) AppendFilter(f Filter) error {
	x.filters = append(x.filters, f)
	return x.refresh()
}

// Filters returns the filter chain, in the order the filters are applied.
func (x *Stream) Filters() []Filter {
	return slices.Clone(x.filters)
}

// Data returns the unfiltered payload of the stream.
func (x *Stream) Data() []byte {
	return x.data
}

// Filtered returns the payload after all filters have been applied.
// This is the data which is written to the PDF file.
func (x *Stream) Filtered() ([]byte, error) {
	err := x.refresh()
	if err != nil {
		return nil, err
	}
	return x.filtered, nil
}

// Decode reverses the filter chain on the filtered payload.
func (x *Stream) Decode() ([]byte, error) {
	data, err := x.Filtered()
	if err != nil {
		return nil, err
	}
	for i := len(x.filters) - 1; i >= 0; i-- {
		data, err = x.filters[i].Decode(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// refresh applies the filters to the payload and updates the
// /Length and /Filter entries.
func (x *Stream) refresh() error {
	data := x.data
	for _, f := range x.filters {
		var err error
		data, err = f.Encode(data)
		if err != nil {
			return err
		}
	}
	x.filtered = data

	x.Set("Length", Integer(len(data)))
	if len(x.filters) > 0 {
		names := make(Array, len(x.filters))
		for i, f := range x.filters {
			names[i] = f.Name()
		}
		x.Set("Filter", names)
	}
	return nil
}

func (x *Stream) String() string {
	res := []string{"Stream"}
	if tp, ok := x.Get("Type").(Name); ok {
		res[0] = string(tp) + " Stream"
	}
	res = append(res, strconv.Itoa(len(x.filtered))+" bytes")
	for _, f := range x.filters {
		res = append(res, string(f.Name()))
	}
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
// A nil *Stream is written as null.
func (x *Stream) PDF(w io.Writer) error {
	if x == nil {
		return Null{}.PDF(w)
	}
	err := x.refresh()
	if err != nil {
		return err
	}

	err = x.Dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(x.filtered)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}
