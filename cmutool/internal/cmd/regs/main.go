// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regs

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/embeddedgo/cmutools/cmutool/internal/regs"
	"github.com/embeddedgo/cmutools/cmutool/internal/util"
	"github.com/marcinbor85/gohex"
)

const Descr = "sort the CMU register offsets and generate the clock IDs"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] [INPUT]\nOptions:\n",
			cmd,
		)
		fs.PrintDefaults()
	}
	hexFile := fs.String(
		"hex", "",
		"write the register block image with clock IDs to the Intel HEX `FILE`",
	)
	fs.Parse(args)
	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(1)
	}
	input := "cmu_clocks"
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	}
	lines, err := util.ReadLines(input)
	util.FatalErr("", err)
	w := bufio.NewWriter(os.Stdout)
	mem, err := run(w, lines, *hexFile != "")
	util.FatalErr("", w.Flush())
	util.FatalErr(input, err)
	if mem == nil {
		return
	}
	of, err := os.Create(*hexFile)
	util.FatalErr("", err)
	err = mem.DumpIntelHex(of, 16)
	if cerr := of.Close(); err == nil {
		err = cerr
	}
	util.FatalErr("dumpintelhex", err)
}

// run writes the sorted register offsets, the register list and the clock IDs
// to w. If assigning IDs stops at an unknown register, the IDs assigned so far
// are written before the error is returned. The memory image of the register
// block is returned if image is true.
func run(w io.Writer, lines []string, image bool) (*gohex.Memory, error) {
	rs, err := regs.Parse(lines)
	if err != nil {
		return nil, err
	}
	regs.SortByOffset(rs)
	if err = regs.WriteDefines(w, rs); err != nil {
		return nil, err
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return nil, err
	}
	if err = regs.WriteList(w, rs); err != nil {
		return nil, err
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return nil, err
	}
	ids, idErr := regs.AssignIDs(rs)
	if err = regs.WriteIDs(w, ids); err != nil {
		return nil, err
	}
	if idErr != nil || !image {
		return nil, idErr
	}
	return regs.Image(rs, ids)
}
