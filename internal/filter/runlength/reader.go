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

package runlength

import (
	"bufio"
	"io"
)

// Decode returns a Reader which decodes run-length encoded data read from r.
// Reading stops at the end-of-data marker.  Input which ends without the
// marker is accepted.
func Decode(r io.Reader) io.Reader {
	return &decoder{br: bufio.NewReader(r)}
}

type decoder struct {
	br  *bufio.Reader
	err error

	literal bool
	count   int
	val     byte
}

// Read implements the io.Reader interface.
func (d *decoder) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}

	n := 0
	for n < len(p) {
		if d.count > 0 {
			k := min(d.count, len(p)-n)
			if d.literal {
				m, err := io.ReadFull(d.br, p[n:n+k])
				n += m
				d.count -= m
				if err != nil {
					if err == io.EOF {
						err = io.ErrUnexpectedEOF
					}
					d.err = err
					return n, err
				}
			} else {
				for i := range k {
					p[n+i] = d.val
				}
				n += k
				d.count -= k
			}
			continue
		}

		length, err := d.br.ReadByte()
		if err != nil {
			d.err = err
			if err == io.EOF && n > 0 {
				err = nil
			}
			return n, err
		}

		switch {
		case length == eod:
			d.err = io.EOF
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		case length < eod:
			d.literal = true
			d.count = int(length) + 1
		default:
			b, err := d.br.ReadByte()
			if err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				d.err = err
				return n, err
			}
			d.literal = false
			d.count = 257 - int(length)
			d.val = b
		}
	}
	return n, nil
}
