// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lookup

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/embeddedgo/cmutools/cmutool/internal/clk"
	"github.com/embeddedgo/cmutools/cmutool/internal/util"
	"golang.org/x/sync/errgroup"
)

const Descr = "generate the MUX/DIV/GATE declarations of the clocks"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] CLOCK...\nOptions:\n",
			cmd,
		)
		fs.PrintDefaults()
	}
	input := fs.String(
		"i", "input-clk",
		"register definition `FILE` (.zst, .gz files are decompressed)",
	)
	verbose := fs.Bool("v", false, "print diagnostic information")
	fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}
	lines, err := util.ReadLines(*input)
	util.FatalErr("", err)
	w := bufio.NewWriter(os.Stdout)
	err = run(w, fs.Args(), lines, *verbose)
	util.FatalErr("", w.Flush())
	util.FatalErr(cmd, err)
}

// run writes the declarations of the clocks to w. Nothing is written if any
// of the clocks fails. A parents enum without the closing brace in range only
// causes a warning.
func run(w io.Writer, clocks, lines []string, verbose bool) error {
	decls, err := generate(clocks, lines)
	if errors.Is(err, clk.ErrTooManyParents) {
		util.Warn("%v", err)
		return nil
	}
	if err != nil {
		return err
	}
	for _, d := range decls {
		if verbose {
			if d.Res.Fallback {
				util.Warn("%s: parent taken from the CLK_DIV/CLK_GATE line", d.Res.Clock)
			} else {
				util.Warn(
					"%s: found parents structure at lines %d-%d",
					d.Res.Clock, d.Res.Start+1, d.Res.End+1,
				)
			}
		}
		for _, ne := range d.Res.Skipped {
			util.Warn("%s: %v", d.Res.Clock, ne)
		}
		if _, err := d.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// generate generates the declarations of all clocks concurrently. The
// declarations are returned in the order of clocks. If some clocks fail, the
// error of the first one in that order is returned, except ErrTooManyParents
// which is returned only if no other error occurred.
func generate(clocks, lines []string) ([]*clk.Decl, error) {
	decls := make([]*clk.Decl, len(clocks))
	errs := make([]error, len(clocks))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range clocks {
		g.Go(func() error {
			decls[i], errs[i] = clk.Generate(c, lines)
			return nil
		})
	}
	g.Wait()
	var overrun error
	for _, err := range errs {
		switch {
		case err == nil:
		case errors.Is(err, clk.ErrTooManyParents):
			if overrun == nil {
				overrun = err
			}
		default:
			return nil, err
		}
	}
	if overrun != nil {
		return nil, overrun
	}
	return decls, nil
}
