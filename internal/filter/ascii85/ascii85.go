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

// Package ascii85 implements the ASCII85Decode filter.
//
// Unlike encoding/ascii85, the encoded data is terminated by the "~>"
// end-of-data marker used in PDF files.
package ascii85

import (
	"errors"
	"io"
)

var (
	errEndMarker = errors.New("invalid end marker in ASCII85 stream")
	errShortTail = errors.New("unexpected end marker in ASCII85 stream")
	errCharacter = errors.New("invalid character in ASCII85 stream")
)

// lineLength is the maximal length of an output line, excluding the newline.
const lineLength = 75

// Encode returns a WriteCloser which writes the ASCII85 encoding of all
// data to w.  Close writes the "~>" end marker and closes w.
func Encode(w io.WriteCloser) io.WriteCloser {
	return &writer{
		w:   w,
		buf: make([]byte, 0, lineLength+3),
	}
}

// Decode returns a Reader which decodes ASCII85 data read from r.
// White space in the input is ignored.
func Decode(r io.Reader) io.Reader {
	return &reader{r: r}
}

type reader struct {
	r io.Reader

	// err is returned once all decoded bytes are consumed,
	// readErr is the pending error from the underlying reader.
	err     error
	readErr error

	in       [512]byte
	pos, end int

	out  [4]byte
	tail []byte

	v     uint32
	k     int
	atEnd bool
}

func (r *reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.err != nil {
		return 0, r.err
	}

	if len(r.tail) > 0 {
		n = copy(p, r.tail)
		r.tail = r.tail[n:]
	}

	for n < len(p) {
		for r.pos == r.end && r.readErr == nil {
			r.end, r.readErr = r.r.Read(r.in[:])
			r.pos = 0
			if r.readErr == io.EOF {
				r.readErr = io.ErrUnexpectedEOF
			}
		}
		if r.pos == r.end {
			r.err = r.readErr
			return n, r.err
		}
		c := r.in[r.pos]
		r.pos++

		if r.atEnd {
			// '~' must be followed by '>'
			if c == '>' {
				r.err = io.EOF
			} else {
				r.err = errEndMarker
			}
			if r.err == io.EOF && n > 0 {
				return n, nil
			}
			return n, r.err
		}

		switch {
		case isSpace(c):
			continue
		case c >= '!' && c < '!'+85:
			r.v = r.v*85 + uint32(c-'!')
			r.k++
		case c == 'z' && r.k == 0:
			r.v = 0
			r.k = 5
		case c == '~':
			if r.k == 1 {
				r.err = errShortTail
				return n, r.err
			}
			if r.k > 1 {
				for i := r.k; i < 5; i++ {
					r.v = r.v*85 + 84
				}
				r.emit()
				m := copy(p[n:], r.out[:r.k-1])
				n += m
				r.tail = r.out[m : r.k-1]
			}
			r.atEnd = true
			continue
		default:
			r.err = errCharacter
			return n, r.err
		}

		if r.k == 5 {
			r.emit()
			m := copy(p[n:], r.out[:])
			n += m
			r.tail = r.out[m:]
			r.v = 0
			r.k = 0
		}
	}
	return n, nil
}

func (r *reader) emit() {
	r.out[0] = byte(r.v >> 24)
	r.out[1] = byte(r.v >> 16)
	r.out[2] = byte(r.v >> 8)
	r.out[3] = byte(r.v)
}

type writer struct {
	w   io.WriteCloser
	buf []byte
	v   uint32
	k   int
}

func (w *writer) Write(p []byte) (int, error) {
	for i, b := range p {
		w.v = w.v<<8 | uint32(b)
		w.k++
		if w.k < 4 {
			continue
		}

		if len(w.buf)+5 > lineLength {
			if err := w.flush(); err != nil {
				return i, err
			}
		}
		if w.v == 0 {
			w.buf = append(w.buf, 'z')
		} else {
			w.buf = appendGroup(w.buf, w.v, 5)
		}
		w.v = 0
		w.k = 0
	}
	return len(p), nil
}

func (w *writer) Close() error {
	if w.k > 0 {
		if len(w.buf)+w.k+1 > lineLength {
			if err := w.flush(); err != nil {
				return err
			}
		}
		v := w.v << ((4 - w.k) * 8)
		w.buf = appendGroup(w.buf, v, w.k+1)
		w.v = 0
		w.k = 0
	}
	if len(w.buf)+2 > lineLength {
		if err := w.flush(); err != nil {
			return err
		}
	}
	w.buf = append(w.buf, '~', '>')
	if err := w.flush(); err != nil {
		return err
	}
	return w.w.Close()
}

// appendGroup appends the first k base-85 digits of v to buf.
func appendGroup(buf []byte, v uint32, k int) []byte {
	var c [5]byte
	for i := 4; i >= 0; i-- {
		c[i] = byte(v%85) + '!'
		v /= 85
	}
	return append(buf, c[:k]...)
}

func (w *writer) flush() error {
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	w.buf = w.buf[:0]
	return err
}

func isSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}
