// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regs converts a list of CMU register descriptions to the register
// offset constants, the register list and the clock ID constants used by the
// Samsung clock drivers.
package regs

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/marcinbor85/gohex"
)

type Register struct {
	Name   string // e.g. CLK_CON_MUX_CLKCMU_APM_BUS
	Value  string // offset as written in the source, e.g. 0x1004
	Offset uint64
}

type SyntaxError struct {
	Line int // 1-based line number
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regs: line %d: %s: %s", e.Line, e.Msg, e.Text)
}

func parseHex(s string) (uint64, error) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return strconv.ParseUint(s, 16, 64)
}

// Parse parses the register descriptions of the form
//
//	MACRO(NAME, OFFSET, ...)
//
// one per line. The OFFSET is a hexadecimal number with an optional 0x
// prefix. Blank lines are ignored.
func Parse(lines []string) ([]*Register, error) {
	var regs []*Register
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		_, args, ok := strings.Cut(line, "(")
		if !ok {
			return nil, &SyntaxError{i + 1, line, "no opening parenthesis"}
		}
		f := strings.Split(args, ",")
		if len(f) < 2 {
			return nil, &SyntaxError{i + 1, line, "no register offset"}
		}
		r := &Register{
			Name:  strings.TrimSpace(f[0]),
			Value: strings.TrimSpace(strings.TrimRight(f[1], ") ;")),
		}
		if r.Name == "" {
			return nil, &SyntaxError{i + 1, line, "no register name"}
		}
		var err error
		if r.Offset, err = parseHex(r.Value); err != nil {
			return nil, &SyntaxError{i + 1, line, "bad register offset " + r.Value}
		}
		regs = append(regs, r)
	}
	return regs, nil
}

// SortByOffset sorts the registers according to the Offset field. The order
// of registers with equal offsets is preserved.
func SortByOffset(regs []*Register) {
	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].Offset < regs[j].Offset
	})
}

// WriteDefines writes the register offset constants.
func WriteDefines(w io.Writer, regs []*Register) error {
	for _, r := range regs {
		if _, err := fmt.Fprintf(w, "#define %s  %s\n", r.Name, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteList writes the register names as the C array initializer elements.
func WriteList(w io.Writer, regs []*Register) error {
	for _, r := range regs {
		if _, err := fmt.Fprintf(w, "%s,\n", r.Name); err != nil {
			return err
		}
	}
	return nil
}

// ClockID is a clock ID constant assigned to the clock controlled by Reg.
type ClockID struct {
	Name string // e.g. MOUT_CLKCMU_APM_BUS
	ID   int
	Reg  *Register
}

// UnknownRegisterError reports a register that does not belong to any
// recognized clock register group.
type UnknownRegisterError struct {
	Reg   *Register
	Group string
}

func (e *UnknownRegisterError) Error() string {
	return fmt.Sprintf("regs: unknown register group %s: %s", e.Group, e.Reg.Name)
}

var idPrefixes = map[string]string{
	"CLK_CON_MUX":  "MOUT_",
	"CLK_CON_DIV":  "DOUT_",
	"CLK_CON_GATE": "GOUT_",
}

// AssignIDs assigns consecutive clock IDs, starting from 1, to the clocks
// controlled by the registers:
//
//	PLL_CON0_PLL_X    FOUT_X_PLL
//	CLK_CON_MUX_X     MOUT_X
//	CLK_CON_DIV_X     DOUT_X
//	CLK_CON_GATE_X    GOUT_X
//
// PLL_LOCKTIME_PLL_* and PLL_CON3_PLL_* registers are skipped. AssignIDs stops
// at the first register of any other form and returns the IDs assigned so far
// together with an *UnknownRegisterError.
func AssignIDs(regs []*Register) ([]*ClockID, error) {
	var ids []*ClockID
	for _, r := range regs {
		f := strings.Split(r.Name, "_")
		group := strings.Join(f[:min(3, len(f))], "_")
		var name string
		switch group {
		case "PLL_LOCKTIME_PLL", "PLL_CON3_PLL":
			continue
		case "PLL_CON0_PLL":
			if len(f) > 3 {
				name = "FOUT_" + f[3] + "_PLL"
			}
		default:
			if p, ok := idPrefixes[group]; ok && len(f) > 3 {
				name = p + strings.Join(f[3:], "_")
			}
		}
		if name == "" {
			return ids, &UnknownRegisterError{r, group}
		}
		ids = append(ids, &ClockID{Name: name, ID: len(ids) + 1, Reg: r})
	}
	return ids, nil
}

// WriteIDs writes the clock ID constants.
func WriteIDs(w io.Writer, ids []*ClockID) error {
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "#define %s  %d\n", id.Name, id.ID); err != nil {
			return err
		}
	}
	return nil
}

// Image returns the memory image of the register block in which every 32-bit
// register holds the ID of the clock it controls (little-endian) or zero if
// there is no such clock.
func Image(regs []*Register, ids []*ClockID) (*gohex.Memory, error) {
	idmap := make(map[*Register]int, len(ids))
	for _, id := range ids {
		idmap[id.Reg] = id.ID
	}
	mem := gohex.NewMemory()
	for _, r := range regs {
		if r.Offset > 0xffffffff-3 {
			return nil, fmt.Errorf("regs: %s: offset %#x does not fit in 32 bits", r.Name, r.Offset)
		}
		word := binary.LittleEndian.AppendUint32(nil, uint32(idmap[r]))
		if err := mem.AddBinary(uint32(r.Offset), word); err != nil {
			return nil, fmt.Errorf("regs: %s: %w", r.Name, err)
		}
	}
	return mem, nil
}
