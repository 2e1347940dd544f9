// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pinctrl converts the Exynos8/Exynos9 pin bank macros to the
// EXYNOS850_PIN_BANK_* form.
package pinctrl

import (
	"strconv"
	"strings"
)

type bank struct {
	macro string
	nargs int // number of arguments kept after the dropped bank type
}

var banks = map[string]bank{
	"EXYNOS8_PIN_BANK_EINTN": {"EXYNOS850_PIN_BANK_EINTN", 3},
	"EXYNOS9_PIN_BANK_EINTW": {"EXYNOS850_PIN_BANK_EINTW", 4},
	"EXYNOS9_PIN_BANK_EINTG": {"EXYNOS850_PIN_BANK_EINTG", 4},
}

// UnknownBankError reports a line that is not a known pin bank macro.
type UnknownBankError struct {
	Line  int // 1-based line number, 0 if unknown
	Macro string
	Text  string
}

func (e *UnknownBankError) Error() string {
	s := "pinctrl: unknown type " + e.Macro + ": " + e.Text
	if e.Line == 0 {
		return s
	}
	return "line " + strconv.Itoa(e.Line) + ": " + s
}

// Convert converts one pin bank macro invocation. The first argument (the
// bank type) is dropped, the trailing ones not used by the EXYNOS850 macros
// too:
//
//	EXYNOS8_PIN_BANK_EINTN(t, n, off, id)           EXYNOS850_PIN_BANK_EINTN(n, off, id),
//	EXYNOS9_PIN_BANK_EINTG(t, n, off, id, eoff, f)  EXYNOS850_PIN_BANK_EINTG(n, off, id, eoff),
func Convert(line string) (string, error) {
	line = strings.TrimSpace(line)
	macro, args, ok := strings.Cut(line, "(")
	macro = strings.TrimSpace(macro)
	b, known := banks[macro]
	if !ok || !known {
		return "", &UnknownBankError{Macro: macro, Text: line}
	}
	if i := strings.LastIndexByte(args, ')'); i >= 0 {
		args = args[:i]
	}
	f := strings.Split(args, ",")
	if len(f) < 1+b.nargs {
		return "", &UnknownBankError{Macro: macro, Text: line}
	}
	f = f[1 : 1+b.nargs]
	for i, a := range f {
		f[i] = strings.TrimSpace(a)
	}
	return b.macro + "(" + strings.Join(f, ", ") + "),", nil
}

// ConvertLines converts all non-blank lines. It stops at the first line that
// cannot be converted.
func ConvertLines(lines []string) ([]string, error) {
	var out []string
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := Convert(line)
		if err != nil {
			if ue, ok := err.(*UnknownBankError); ok {
				ue.Line = i + 1
			}
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}
