// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clk

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTooManyParents is returned by Resolve if the parents enum has been found
// but its closing brace is not within maxBlockLines lines from its beginning.
// The callers are expected to treat it as "nothing to do" rather than a
// failure.
var ErrTooManyParents = errors.New("too many parents?")

// ErrNoParents is returned by Resolve if no parent of the clock has been found.
var ErrNoParents = errors.New("no parents found")

// maxBlockLines limits the forward scan for the end of the parents enum.
const maxBlockLines = 10

// Result describes the parents found for a clock.
type Result struct {
	Clock    string
	Parents  []string     // canonical parent names in the declaration order
	Skipped  []*NameError // parent names that could not be converted
	Start    int          // first line of the parents enum or -1
	End      int          // line of the closing brace or -1
	Fallback bool         // the parent was taken from a CLK_DIV/CLK_GATE line
}

type scanState int

const (
	searching scanState = iota
	foundStart
	foundEnd
	overrun
)

// Resolve finds the parents of the clock in the lines of a register definition
// source. The parents are taken from the last line that contains
// "<clock>_parents" and "enum" up to the nearest line with a closing brace. If
// there is no such enum, the single parent is taken from the second argument
// of the first CLK_DIV(<CLOCK>, ...) or CLK_GATE(<CLOCK>, ...) line.
//
// Resolve returns ErrNoParents (wrapped) if no usable parent has been found and
// ErrTooManyParents (wrapped) if the enum has no closing brace in range. The
// result is returned in both cases.
func Resolve(clock string, lines []string) (*Result, error) {
	r := &Result{Clock: clock, Start: -1, End: -1}
	state := searching
	key := strings.ToLower(clock) + "_parents"
	for i, line := range lines {
		if strings.Contains(line, "enum") && strings.Contains(strings.ToLower(line), key) {
			r.Start = i
			state = foundStart
		}
	}
	if state == searching {
		if parent, ok := singleParent(clock, lines); ok {
			r.Fallback = true
			r.add(parent)
		}
		return r.check()
	}
	for n := 0; state == foundStart; n++ {
		i := r.Start + n
		switch {
		case n == maxBlockLines || i == len(lines):
			state = overrun
		case strings.Contains(lines[i], "}"):
			r.End = i
			state = foundEnd
		}
	}
	if state == overrun {
		return r, fmt.Errorf("%s: %w", clock, ErrTooManyParents)
	}
	block := strings.Join(lines[r.Start:r.End+1], "\n")
	if _, list, ok := strings.Cut(block, "{"); ok {
		list, _, _ = strings.Cut(list, "}")
		for _, name := range strings.Split(list, ",") {
			r.add(name)
		}
	}
	return r.check()
}

func (r *Result) check() (*Result, error) {
	if len(r.Parents) == 0 {
		return r, fmt.Errorf("%s: %w", r.Clock, ErrNoParents)
	}
	return r, nil
}

func (r *Result) add(name string) {
	cname, err := Canonical(name)
	if err != nil {
		var ne *NameError
		if errors.As(err, &ne) {
			r.Skipped = append(r.Skipped, ne)
		}
		return
	}
	if cname != "" {
		r.Parents = append(r.Parents, cname)
	}
}

// singleParent returns the second argument of the first CLK_DIV or CLK_GATE
// macro that describes the clock.
func singleParent(clock string, lines []string) (string, bool) {
	re := regexp.MustCompile(
		`(?i)CLK_(?:DIV|GATE)\(` + regexp.QuoteMeta(strings.ToUpper(clock)) + `,`,
	)
	for _, line := range lines {
		if !re.MatchString(line) {
			continue
		}
		args := strings.Split(line, ",")
		return strings.TrimPrefix(args[1], " "), true
	}
	return "", false
}
