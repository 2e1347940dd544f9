// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clk

import (
	"errors"
	"testing"
)

var canonicalTests = []struct {
	in, out string
	kind    Kind
}{
	{"MUX_CLKCMU_APM_BUS", "mout_clkcmu_apm_bus", KindMux},
	{"\tmux_cmu_bus ", "mout_cmu_bus", KindMux},
	{"PLL_SHARED0", "fout_shared0_pll", KindPLL},
	{"PLL_SHARED0_DIV4", "fout_shared0_pll", KindPLL},
	{"OSCCLK", "oscclk", KindOsc},
	{" oscclk\n", "oscclk", KindOsc},
	{"DIV_PLL_SHARED0_DIV2", "dout_shared0_div2", KindDiv},
	{"DIV_PLL_MMC", "dout_pll_mmc", KindDiv},
	{"DIV_CLKCMU_APM_BUS", "dout_clkcmu_apm_bus", KindDiv},
	{"GATE_CLKCMU_PERIS_BUS", "gout_clkcmu_peris_bus", KindGate},
	{"GOUT_CLKCMU_PERIS_BUS", "gout_clkcmu_peris_bus", KindGate},
	{"mout_cpu", "mout_cpu", KindMux},
	{"fout_shared1_pll", "fout_shared1_pll", KindPLL},
	{"DOUT_SHARED0_DIV2", "dout_shared0_div2", KindDiv},
}

func TestCanonical(t *testing.T) {
	for _, tc := range canonicalTests {
		if k := KindOf(tc.in); k != tc.kind {
			t.Errorf("KindOf(%q) = %v, want %v", tc.in, k, tc.kind)
		}
		out, err := Canonical(tc.in)
		if err != nil {
			t.Errorf("Canonical(%q): %v", tc.in, err)
			continue
		}
		if out != tc.out {
			t.Errorf("Canonical(%q) = %q, want %q", tc.in, out, tc.out)
		}
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	for _, tc := range canonicalTests {
		once, err := Canonical(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Canonical(once)
		if err != nil {
			t.Errorf("Canonical(%q): %v", once, err)
			continue
		}
		if twice != once {
			t.Errorf("Canonical(Canonical(%q)) = %q, want %q", tc.in, twice, once)
		}
	}
}

func TestCanonicalEmpty(t *testing.T) {
	for _, in := range []string{"", " ", "\n\t"} {
		out, err := Canonical(in)
		if out != "" || err != nil {
			t.Errorf("Canonical(%q) = %q, %v; want empty name, nil", in, out, err)
		}
		if k := KindOf(in); k != KindEmpty {
			t.Errorf("KindOf(%q) = %v, want %v", in, k, KindEmpty)
		}
	}
}

func TestCanonicalErrors(t *testing.T) {
	for _, in := range []string{"FOO_BAR", "/* CLK */", "MUX", "MUX_", "OSCCLK_X", "PLL"} {
		out, err := Canonical(in)
		var ne *NameError
		if !errors.As(err, &ne) {
			t.Errorf("Canonical(%q) = %q, %v; want *NameError", in, out, err)
			continue
		}
		if ne.Name != in {
			t.Errorf("NameError.Name = %q, want %q", ne.Name, in)
		}
	}
	if k := KindOf("FOO_BAR"); k != KindUnknown {
		t.Errorf("KindOf(FOO_BAR) = %v, want %v", k, KindUnknown)
	}
}
