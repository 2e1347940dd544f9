// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinctrl

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func TestConvertLines(t *testing.T) {
	a, err := txtar.ParseFile(filepath.Join("testdata", "banks.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	var in, want string
	for _, f := range a.Files {
		switch f.Name {
		case "input":
			in = string(f.Data)
		case "stdout":
			want = string(f.Data)
		}
	}
	out, err := ConvertLines(strings.Split(in, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(out, "\n") + "\n"; got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestConvertUnknown(t *testing.T) {
	lines := []string{
		`EXYNOS9_PIN_BANK_EINTG(bank_type_off, 4, 0x0a0, "gpm0", 0x14, 0x18),`,
		`EXYNOS9_PIN_BANK_EINTN(bank_type_off, 4, 0x0c0, "gpm1"),`,
		`EXYNOS9_PIN_BANK_EINTG(bank_type_off, 4, 0x0e0, "gpm2", 0x1c, 0x20),`,
	}
	out, err := ConvertLines(lines)
	var ue *UnknownBankError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want *UnknownBankError", err)
	}
	if ue.Line != 2 || ue.Macro != "EXYNOS9_PIN_BANK_EINTN" {
		t.Errorf("got line %d, macro %s", ue.Line, ue.Macro)
	}
	if want := "line 2: pinctrl: unknown type EXYNOS9_PIN_BANK_EINTN: " + lines[1]; ue.Error() != want {
		t.Errorf("got %q, want %q", ue.Error(), want)
	}
	if len(out) != 1 {
		t.Errorf("got %d converted lines, want 1", len(out))
	}
	for _, line := range []string{"/* ALIVE */", `EXYNOS8_PIN_BANK_EINTN(bank_type_alive, 6)`} {
		if _, err := Convert(line); err == nil {
			t.Errorf("%q: no error", line)
		}
	}
}
