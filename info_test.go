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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestInfoEmpty(t *testing.T) {
	info := &Info{}
	dict, err := info.AsDict()
	if err != nil {
		t.Fatal(err)
	}
	out, err := Format(dict)
	if err != nil {
		t.Fatal(err)
	}
	if out != "<<\n>>" {
		t.Errorf("wrong output %q", out)
	}
}

func TestInfoFields(t *testing.T) {
	trapped := false
	info := &Info{
		Producer:     "minipdf",
		Title:        "A (Test) Document",
		Author:       "Jochen Voß",
		CreationDate: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Trapped:      &trapped,
		Custom: map[string]string{
			"Zeta":  "last",
			"Alpha": "first",
		},
	}
	dict, err := info.AsDict()
	if err != nil {
		t.Fatal(err)
	}

	wantKeys := []Name{"Title", "Author", "Producer", "CreationDate", "Trapped", "Alpha", "Zeta"}
	if diff := cmp.Diff(wantKeys, dict.Keys()); diff != "" {
		t.Errorf("wrong keys (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(String("A (Test) Document"), dict.Get("Title")); diff != "" {
		t.Errorf("wrong title (-want +got):\n%s", diff)
	}
	if _, isHex := dict.Get("Author").(HexString); !isHex {
		t.Errorf("non-ASCII author not hex encoded: %T", dict.Get("Author"))
	}
	if diff := cmp.Diff(String("D:20250301120000+00'00"), dict.Get("CreationDate")); diff != "" {
		t.Errorf("wrong date (-want +got):\n%s", diff)
	}
	if dict.Get("Trapped") != Name("False") {
		t.Errorf("wrong /Trapped %v", dict.Get("Trapped"))
	}
}

func TestInfoTrapped(t *testing.T) {
	trapped := true
	dict, err := (&Info{Trapped: &trapped}).AsDict()
	if err != nil {
		t.Fatal(err)
	}
	out, err := Format(dict)
	if err != nil {
		t.Fatal(err)
	}
	if out != "<<\n /Trapped /True \n>>" {
		t.Errorf("wrong output %q", out)
	}
}

func TestInfoCustomOrder(t *testing.T) {
	info := &Info{
		Title: "T",
		Custom: map[string]string{
			"Gamma": "3",
			"Alpha": "1",
			"Delta": "4",
			"Beta":  "2",
		},
	}
	dict, err := info.AsDict()
	if err != nil {
		t.Fatal(err)
	}
	out, err := Format(dict)
	if err != nil {
		t.Fatal(err)
	}
	want := "<<\n /Title (T) \n /Alpha (1) \n /Beta (2) \n /Delta (4) \n /Gamma (3) \n>>"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("wrong output (-want +got):\n%s", diff)
	}
}
