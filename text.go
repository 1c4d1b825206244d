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
	"fmt"
	"time"

	"golang.org/x/text/encoding/unicode"
)

// EscapeString returns a String which represents the bytes in l, with all
// characters escaped which cannot appear literally inside a PDF literal
// string.  Parentheses are only escaped if they are not balanced.
func EscapeString(l []byte) String {
	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	buf := make([]byte, 0, len(l)+2)
	for _, c := range l {
		switch {
		case c == '\r':
			buf = append(buf, `\r`...)
		case c == '\n':
			buf = append(buf, `\n`...)
		case c == '\t':
			buf = append(buf, `\t`...)
		case c == '\b':
			buf = append(buf, `\b`...)
		case c == '\f':
			buf = append(buf, `\f`...)
		case c == '\\':
			buf = append(buf, `\\`...)
		case !balanced && (c == '(' || c == ')'):
			buf = append(buf, '\\', c)
		case c < 32 || c >= 127:
			buf = fmt.Appendf(buf, `\%03o`, c)
		default:
			buf = append(buf, c)
		}
	}
	return String(buf)
}

// TextString encodes s as a PDF "text string".
//
// Printable ASCII text is returned as an escaped [String].  All other text
// is encoded as UTF-16BE with a byte order mark, and returned as a
// [HexString].
func TextString(s string) (Object, error) {
	if isPlainText(s) {
		return EscapeString([]byte(s)), nil
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return HexString(buf), nil
}

func isPlainText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 32 || c >= 127) && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}

// Date creates a PDF String object encoding the given date and time,
// in the form D:YYYYMMDDHHmmSS+HH'mm.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}
