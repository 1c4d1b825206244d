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


// Package asciihex implements the ASCIIHexDecode filter.
package asciihex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// errCharacter is wrapped by the error for a byte which is neither a hex
// digit, white space nor the end marker.
var errCharacter = errors.New("invalid character in ASCIIHex stream")

// nibble maps hex digits to their value.  White space maps to skip,
// all other bytes to bad.
var nibble [256]byte

const (
	skip = 0xFE
	bad  = 0xFF
)

func init() {
	for i := range nibble {
		nibble[i] = bad
	}
	for c := byte('0'); c <= '9'; c++ {
		nibble[c] = c - '0'
	}
	for c := byte(0); c < 6; c++ {
		nibble['a'+c] = 10 + c
		nibble['A'+c] = 10 + c
	}
	for _, c := range []byte{0, 9, 10, 12, 13, 32} {
		nibble[c] = skip
	}
}

// Decode returns a Reader which decodes ASCII hexadecimal data read from r.
// White space is ignored, and a '>' ends the data.  If the data ends after
// an odd number of digits, the missing final digit is taken to be 0.
// A missing end marker gives io.ErrUnexpectedEOF.
func Decode(r io.Reader) io.Reader {
	return &reader{r: bufio.NewReader(r)}
}

type reader struct {
	r   *bufio.Reader
	err error

	// pos counts the input bytes consumed, for error messages.
	pos int64

	// A digit which still waits for its partner.
	pending  byte
	havePend bool
}

func (r *reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && r.err == nil {
		c, err := r.r.ReadByte()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			r.err = err
			break
		}
		r.pos++

		if c == '>' {
			if r.havePend {
				p[n] = r.pending << 4
				n++
				r.havePend = false
			}
			r.err = io.EOF
			break
		}

		v := nibble[c]
		switch {
		case v == skip:
			// white space
		case v == bad:
			r.err = fmt.Errorf("%w: %q at offset %d", errCharacter, c, r.pos-1)
		case r.havePend:
			p[n] = r.pending<<4 | v
			n++
			r.havePend = false
		default:
			r.pending = v
			r.havePend = true
		}
	}

	if n > 0 {
		return n, nil
	}
	return 0, r.err
}
