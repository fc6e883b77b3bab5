/*
 * machine.go, part of spinverter.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package pms

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/internal/logging"
)

// State is the block the Machine is in.
type State int

const (
	Idle State = iota
	InSpinBlock
	InCouplingBlock
	InParameterBlock
)

func (S State) String() string {
	switch S {
	case Idle:
		return "idle"
	case InSpinBlock:
		return "spin block"
	case InCouplingBlock:
		return "coupling block"
	case InParameterBlock:
		return "parameter block"
	}
	return "unknown state"
}

//Section headers, and the state each one opens.
const (
	headerSpecies    = "ACTIVE SPECIES:"
	headerShifts     = "CHEMICAL SHIFTS(PPM):"
	headerCouplings  = "COUPLING CONSTANTS(HZ):"
	headerParameters = "CONTROL PARAMETERS:"
	commentMark      = "*"
)

var sections = []struct {
	header string
	state  State
}{
	{headerShifts, InSpinBlock},
	{headerCouplings, InCouplingBlock},
	{headerParameters, InParameterBlock},
}

// Machine runs the PMS block grammar over lines fed one at a time.
// The zero value is not usable, use NewMachine.
type Machine struct {
	state   State
	pending *SpinGroup //the open spin group, if any
	file    *File
	line    int
}

// NewMachine returns a Machine in the Idle state, with an empty model.
func NewMachine() *Machine {
	return &Machine{file: new(File)}
}

// State returns the current block.
func (M *Machine) State() State { return M.state }

// Pending returns the open, not yet sealed, spin group, or nil.
func (M *Machine) Pending() *SpinGroup { return M.pending }

// Line returns the number of lines fed so far.
func (M *Machine) Line() int { return M.line }

func (M *Machine) seal() {
	if M.pending != nil {
		M.file.SpinGroups = append(M.file.SpinGroups, *M.pending)
		M.pending = nil
	}
}

// Feed processes one line, without its line terminator. The returned error
// is located at the line.
func (M *Machine) Feed(line string) error {
	M.line++
	if err := M.feed(line); err != nil {
		spinverter.Locate(err, M.line, line, "")
		return spinverter.ErrDecorate(err, "Feed")
	}
	return nil
}

func (M *Machine) feed(line string) error {
	if strings.HasPrefix(line, commentMark) {
		return nil
	}
	if strings.HasPrefix(line, headerSpecies) {
		M.file.ActiveSpecies = strings.TrimSpace(strings.SplitN(line, ":", 3)[1])
		return nil
	}
	for _, s := range sections {
		if strings.HasPrefix(line, s.header) {
			if M.pending != nil {
				logging.Warn("pms: section change discards an unsealed spin group", "group", M.pending.Name, "line", M.line)
				M.pending = nil
			}
			M.state = s.state
			return nil
		}
	}
	blank := strings.TrimSpace(line) == ""
	switch M.state {
	case InSpinBlock:
		if blank {
			M.seal()
			M.state = Idle
			return nil
		}
		if r, _ := utf8.DecodeRuneInString(line); unicode.IsSpace(r) {
			if M.pending == nil {
				return structural("spin line with no open spin group")
			}
			s, err := ParseSpin(line)
			if err != nil {
				return err
			}
			M.pending.Spins = append(M.pending.Spins, *s)
			return nil
		}
		sg, err := ParseSpinGroup(line)
		if err != nil {
			return err
		}
		M.seal()
		M.pending = sg
	case InCouplingBlock:
		if blank {
			M.state = Idle
			return nil
		}
		c, err := ParseCoupling(line)
		if err != nil {
			return err
		}
		M.file.Couplings = append(M.file.Couplings, *c)
	case InParameterBlock:
		if line == "" {
			M.state = Idle
			return nil
		}
		if blank {
			return nil
		}
		p, err := ParseParameter(line)
		if err != nil {
			return err
		}
		if !p.apply(M.file) {
			logging.Debug("pms: skipping control parameter", "label", p.Label, "line", M.line)
		}
	}
	return nil
}

// Finish seals the open spin group, if any, and returns the model. The
// Machine should not be fed after Finish.
func (M *Machine) Finish() *File {
	M.seal()
	M.state = Idle
	return M.file
}

const maxLine = 16 * 1024 * 1024

// Parse reads a PMS file from r. The first error aborts the parse and
// no model is returned.
func Parse(r io.Reader) (*File, error) {
	M := NewMachine()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		if err := M.Feed(strings.TrimRight(scanner.Text(), "\r")); err != nil {
			return nil, spinverter.ErrDecorate(err, "pms.Parse")
		}
	}
	if err := scanner.Err(); err != nil {
		E := spinverter.Wrap(err, spinverter.IOFailure, "pms", "can't read input")
		E.Line = M.Line() + 1
		E.Decorate("pms.Parse")
		return nil, E
	}
	return M.Finish(), nil
}

// ReadFile opens and parses the PMS file name, which may be compressed.
func ReadFile(name string) (*File, error) {
	r, err := spinverter.Open(name)
	if err != nil {
		return nil, spinverter.ErrDecorate(err, "pms.ReadFile")
	}
	defer r.Close()
	F, err := Parse(r)
	if err != nil {
		spinverter.Locate(err, 0, "", name)
		return nil, spinverter.ErrDecorate(err, "pms.ReadFile")
	}
	F.Name = name
	logging.Info("pms: read file", "file", name, "spin_groups", len(F.SpinGroups), "spins", F.NumSpins(), "couplings", len(F.Couplings))
	return F, nil
}
