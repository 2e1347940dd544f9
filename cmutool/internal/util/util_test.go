// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const sample = "enum clk_id cmucal_mux_clkcmu_apm_bus_parents[] = {\r\n" +
	"\tDIV_CLKCMU_APM_BUS,\n" +
	"};\n"

var sampleLines = []string{
	"enum clk_id cmucal_mux_clkcmu_apm_bus_parents[] = {",
	"\tDIV_CLKCMU_APM_BUS,",
	"};",
}

func TestSplitLines(t *testing.T) {
	lines, err := SplitLines(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(lines, sampleLines) {
		t.Errorf("got %q, want %q", lines, sampleLines)
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "input-clk")
	if err := os.WriteFile(plain, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	var zbuf bytes.Buffer
	zw, err := zstd.NewWriter(&zbuf)
	if err != nil {
		t.Fatal(err)
	}
	zw.Write([]byte(sample))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	zname := filepath.Join(dir, "input-clk.zst")
	if err := os.WriteFile(zname, zbuf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	var gbuf bytes.Buffer
	gw := gzip.NewWriter(&gbuf)
	gw.Write([]byte(sample))
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	gname := filepath.Join(dir, "input-clk.gz")
	if err := os.WriteFile(gname, gbuf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{plain, zname, gname} {
		t.Run(filepath.Base(name), func(t *testing.T) {
			lines, err := ReadLines(name)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(lines, sampleLines) {
				t.Errorf("got %q, want %q", lines, sampleLines)
			}
		})
	}
}

func TestReadLinesMissing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "cmu_clocks"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}
