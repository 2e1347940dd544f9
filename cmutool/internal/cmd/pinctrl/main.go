// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinctrl

import (
	"os"
	"strings"

	"github.com/embeddedgo/cmutools/cmutool/internal/pinctrl"
	"github.com/embeddedgo/cmutools/cmutool/internal/util"
)

const Descr = "convert the Exynos8/9 pin bank macros to the EXYNOS850 form"

func Main(cmd string, args []string) {
	if len(args) > 1 || len(args) == 1 && strings.HasPrefix(args[0], "-") {
		util.Fatal("Usage:\n  %s [INPUT]", cmd)
	}
	input := "input"
	if len(args) == 1 {
		input = args[0]
	}
	lines, err := util.ReadLines(input)
	util.FatalErr("", err)
	out, err := pinctrl.ConvertLines(lines)
	if len(out) != 0 {
		os.Stdout.WriteString(strings.Join(out, "\n") + "\n")
	}
	util.FatalErr(input, err)
}
