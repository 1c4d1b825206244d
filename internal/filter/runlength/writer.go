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

// Package runlength implements the RunLengthDecode filter.
//
// Data is split into runs.  A length byte n < 128 is followed by n+1
// literal bytes, a length byte n > 128 is followed by a single byte which
// is repeated 257-n times.  The length byte 128 marks the end of data.
package runlength

import "io"

const eod = 128

// Encode returns a WriteCloser which encodes data in run-length format
// and writes the result to w.  Close writes the end-of-data marker and
// closes w.
func Encode(w io.WriteCloser) io.WriteCloser {
	return &encoder{w: w}
}

type encoder struct {
	w io.WriteCloser

	// lit[0] is reserved for the length byte of a literal run.
	lit  [129]byte
	nLit int

	rep    int
	repVal byte
}

// Write implements the io.Writer interface.
func (e *encoder) Write(p []byte) (int, error) {
	for i, b := range p {
		if e.rep > 0 {
			if b == e.repVal && e.rep < 128 {
				e.rep++
				continue
			}
			if err := e.emitRepeat(); err != nil {
				return i, err
			}
		}

		e.lit[1+e.nLit] = b
		e.nLit++

		// Three equal bytes in a row are cheaper as a repeat run.
		if e.nLit >= 3 {
			k := e.nLit - 2
			if e.lit[k] == e.lit[k+1] && e.lit[k+1] == e.lit[k+2] {
				if e.nLit > 3 {
					if err := e.emitLiteral(e.nLit - 3); err != nil {
						return i, err
					}
				}
				e.nLit = 0
				e.rep = 3
				e.repVal = b
				continue
			}
		}

		if e.nLit == 128 {
			if err := e.emitLiteral(128); err != nil {
				return i, err
			}
		}
	}
	return len(p), nil
}

func (e *encoder) emitLiteral(count int) error {
	e.lit[0] = byte(count - 1)
	_, err := e.w.Write(e.lit[:count+1])
	e.nLit = 0
	return err
}

func (e *encoder) emitRepeat() error {
	_, err := e.w.Write([]byte{byte(257 - e.rep), e.repVal})
	e.rep = 0
	return err
}

// Close flushes pending runs, writes the end-of-data marker and closes the
// underlying writer.
func (e *encoder) Close() error {
	if e.rep > 0 {
		if err := e.emitRepeat(); err != nil {
			return err
		}
	}
	if e.nLit > 0 {
		if err := e.emitLiteral(e.nLit); err != nil {
			return err
		}
	}
	if _, err := e.w.Write([]byte{eod}); err != nil {
		return err
	}
	return e.w.Close()
}
