// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clk resolves the parents of the clocks described in a CMU register
// definition source and generates the Samsung common clock framework
// declarations (PNAME/MUX, DIV, GATE) for them.
package clk

import (
	"strconv"
	"strings"
)

// Kind describes the clock tree node type encoded in the clock name prefix.
type Kind int

const (
	KindEmpty   Kind = iota // empty name
	KindMux                 // MUX_*, mout_*
	KindPLL                 // PLL_*, fout_*
	KindOsc                 // OSCCLK
	KindDiv                 // DIV_*, dout_*
	KindGate                // GATE_*, GOUT_*
	KindUnknown             // anything else
)

var kindNames = [...]string{
	KindEmpty:   "empty",
	KindMux:     "mux",
	KindPLL:     "pll",
	KindOsc:     "oscclk",
	KindDiv:     "div",
	KindGate:    "gate",
	KindUnknown: "unknown",
}

func (k Kind) String() string {
	if uint(k) < uint(len(kindNames)) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var prefixKinds = map[string]Kind{
	"mux":    KindMux,
	"mout":   KindMux,
	"pll":    KindPLL,
	"fout":   KindPLL,
	"oscclk": KindOsc,
	"div":    KindDiv,
	"dout":   KindDiv,
	"gate":   KindGate,
	"gout":   KindGate,
}

// canonical prefixes, the names that start with them are left as they are
var canonPrefix = map[string]bool{
	"mout": true, "fout": true, "dout": true, "gout": true, "oscclk": true,
}

func prefix(name string) string {
	p, _, _ := strings.Cut(name, "_")
	return strings.ToLower(p)
}

// KindOf returns the kind of the clock name determined by the part of the
// name before the first underscore. Leading and trailing white space is
// ignored.
func KindOf(name string) Kind {
	name = strings.TrimSpace(name)
	if name == "" {
		return KindEmpty
	}
	if k, ok := prefixKinds[prefix(name)]; ok {
		return k
	}
	return KindUnknown
}

// NameError reports a clock name that cannot be converted to the canonical
// form.
type NameError struct {
	Name   string // the offending name
	Reason string
}

func (e *NameError) Error() string {
	return "clk: " + e.Reason + ": " + strings.TrimSpace(e.Name)
}

// Canonical converts the raw clock name to the lowercase identifier used in
// the generated declarations:
//
//	MUX_A_B          mout_a_b
//	PLL_A_*          fout_a_pll
//	OSCCLK           oscclk
//	DIV_PLL_A_B_*    dout_a_b
//	DIV_A_B          dout_a_b
//	GATE_A, GOUT_A   gout_a
//
// Names that are already canonical are returned unchanged. Canonical returns
// an empty string and nil error for an empty (or blank) name.
func Canonical(name string) (string, error) {
	name = strings.TrimSpace(name)
	kind := KindOf(name)
	switch kind {
	case KindEmpty:
		return "", nil
	case KindUnknown:
		return "", &NameError{name, "unknown clock name prefix " + prefix(name)}
	}
	lname := strings.ToLower(name)
	p := prefix(name)
	if canonPrefix[p] {
		if kind == KindOsc && lname != "oscclk" {
			return "", &NameError{name, "malformed oscillator name"}
		}
		return lname, nil
	}
	fields := strings.Split(lname, "_")
	rest := fields[1:]
	if len(rest) == 0 || rest[0] == "" {
		return "", &NameError{name, "no name after the " + p + " prefix"}
	}
	switch kind {
	case KindMux:
		return "mout_" + strings.Join(rest, "_"), nil
	case KindPLL:
		return "fout_" + rest[0] + "_pll", nil
	case KindDiv:
		if len(rest) >= 3 && rest[0] == "pll" {
			return "dout_" + rest[1] + "_" + rest[2], nil
		}
		return "dout_" + strings.Join(rest, "_"), nil
	default: // KindGate
		return "gout_" + strings.Join(rest, "_"), nil
	}
}
