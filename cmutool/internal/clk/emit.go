// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clk

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var ErrNoField = errors.New("no register field description")

// Decl is a clock declaration in the form used by the Samsung clock drivers.
type Decl struct {
	Kind    Kind
	ID      string   // clock ID constant, e.g. MOUT_CLKCMU_APM_BUS
	Name    string   // canonical clock name, e.g. mout_clkcmu_apm_bus
	Parents []string // canonical parent names
	Reg     string   // control register constant, e.g. CLK_CON_MUX_CLKCMU_APM_BUS
	Args    []string // remaining macro arguments (bit fields or gate flags)
	Res     *Result
}

// Generate resolves the parents of the clock and builds its declaration.
// Only mux, divider and gate clocks can be declared.
func Generate(clock string, lines []string) (*Decl, error) {
	clock = strings.TrimSpace(clock)
	kind := KindOf(clock)
	switch kind {
	case KindMux, KindDiv, KindGate:
	default:
		return nil, fmt.Errorf("%s: cannot declare a clock of the %s kind", clock, kind)
	}
	name, err := Canonical(clock)
	if err != nil {
		return nil, err
	}
	res, err := Resolve(clock, lines)
	if err != nil {
		return nil, err
	}
	d := &Decl{
		Kind:    kind,
		ID:      strings.ToUpper(name),
		Name:    name,
		Parents: res.Parents,
		Reg:     "CLK_CON_" + strings.ToUpper(clock),
		Res:     res,
	}
	switch kind {
	case KindMux:
		d.Args, err = muxSelect(clock, lines)
	case KindDiv:
		d.Args, err = divRatio(clock, lines)
	default:
		d.Args = []string{"21", "CLK_IGNORE_UNUSED", "0"}
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// bitField returns the second and the third argument of the macro in line.
func bitField(line string) ([]string, bool) {
	args := strings.Split(line, ",")
	if len(args) < 3 {
		return nil, false
	}
	return []string{strings.TrimSpace(args[1]), strings.TrimSpace(args[2])}, true
}

// muxSelect returns the offset and width of the select field from the first
// line that mentions the clock together with MUX_SEL or SELECT.
func muxSelect(clock string, lines []string) ([]string, error) {
	up := strings.ToUpper(clock)
	for _, line := range lines {
		if !strings.Contains(line, up) {
			continue
		}
		if !strings.Contains(line, "MUX_SEL") && !strings.Contains(line, "SELECT") {
			continue
		}
		if f, ok := bitField(line); ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%s: %w (MUX_SEL/SELECT)", clock, ErrNoField)
}

// divRatio returns the offset and width of the DIVRATIO field from the last
// SFR_ACCESS line that describes it.
func divRatio(clock string, lines []string) ([]string, error) {
	re := regexp.MustCompile(
		`SFR_ACCESS\(CLK_CON_(?:DIV_)?` + regexp.QuoteMeta(strings.ToUpper(clock)) + `_DIVRATIO`,
	)
	var field []string
	for _, line := range lines {
		if !re.MatchString(line) {
			continue
		}
		if f, ok := bitField(line); ok {
			field = f
		}
	}
	if field == nil {
		return nil, fmt.Errorf("%s: %w (DIVRATIO)", clock, ErrNoField)
	}
	return field, nil
}

// WriteTo writes the declaration to w as C source text.
func (d *Decl) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	args := strings.Join(d.Args, ", ")
	switch d.Kind {
	case KindMux:
		pname := d.Name + "_p"
		quoted := make([]string, len(d.Parents))
		for i, p := range d.Parents {
			quoted[i] = `"` + p + `"`
		}
		fmt.Fprintf(&b, "PNAME(%s) = { %s };\n", pname, strings.Join(quoted, ", "))
		fmt.Fprintf(&b, "MUX(%s, \"%s\", %s, %s, %s),\n", d.ID, d.Name, pname, d.Reg, args)
	case KindDiv:
		fmt.Fprintf(&b, "DIV(%s, \"%s\", \"%s\", %s, %s),\n", d.ID, d.Name, d.Parents[0], d.Reg, args)
	case KindGate:
		fmt.Fprintf(&b, "GATE(%s, \"%s\", \"%s\", %s, %s),\n", d.ID, d.Name, d.Parents[0], d.Reg, args)
	default:
		return 0, fmt.Errorf("%s: cannot declare a clock of the %s kind", d.Name, d.Kind)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
