/*
 * mms.go, part of spinverter.
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

package mms

import (
	"bufio"
	"io"
	"strings"

	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/internal/logging"
)

// File is the in-memory model of an MMS file. Records keep the order in
// which they appear.
type File struct {
	Header         *Header //nil if the file had no V record
	Atoms          []Atom
	Bonds          []Bond
	AtomNames      []AtomName
	SpinGroups     []SpinGroup
	CouplingGroups []CouplingGroup
	Name           string //file name, empty when parsed from a stream
}

// AtomName returns the atom-name record for atom i. The record at
// position i is used when its atom index matches, otherwise the records
// are searched by atom index.
func (F *File) AtomName(i int) (AtomName, bool) {
	if i >= 0 && i < len(F.AtomNames) && F.AtomNames[i].AtomNumber == i {
		return F.AtomNames[i], true
	}
	for _, v := range F.AtomNames {
		if v.AtomNumber == i {
			return v, true
		}
	}
	return AtomName{}, false
}

// Atom returns the i-th atom.
func (F *File) Atom(i int) (Atom, bool) {
	if i < 0 || i >= len(F.Atoms) {
		return Atom{}, false
	}
	return F.Atoms[i], true
}

// SpinGroupByIndex returns the spin group with the given stable index.
func (F *File) SpinGroupByIndex(index int) (*SpinGroup, bool) {
	if index >= 0 && index < len(F.SpinGroups) && F.SpinGroups[index].Index == index {
		return &F.SpinGroups[index], true
	}
	for i, v := range F.SpinGroups {
		if v.Index == index {
			return &F.SpinGroups[i], true
		}
	}
	return nil, false
}

// Counts returns the number of atoms, bonds, spin groups and coupling groups read.
func (F *File) Counts() (atoms, bonds, spingroups, couplings int) {
	return len(F.Atoms), len(F.Bonds), len(F.SpinGroups), len(F.CouplingGroups)
}

//Record-type prefixes. Order matters: the most specific come first.
const (
	tagHeader   = "V"
	tagAtomName = "I A NAME"
	tagSpin     = "N G"
	tagCoupling = "N C"
	tagAtom     = "A"
	tagBond     = "B"
)

const maxLine = 16 * 1024 * 1024

// Parse reads an MMS file from r. Lines that match no record type are
// ignored. Any malformed record aborts the parse, and a nil File is
// returned with the error.
func Parse(r io.Reader) (*File, error) {
	F := new(File)
	var nameLines []int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	lineno := 0
	for scanner.Scan() {
		lineno++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		var err error
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, tagHeader):
			if F.Header != nil {
				logging.Warn("mms: repeated header record, keeping the last one", "line", lineno)
			}
			F.Header, err = ParseHeader(line)
		case strings.HasPrefix(line, tagAtomName):
			var n *AtomName
			if n, err = ParseAtomName(line); err == nil {
				F.AtomNames = append(F.AtomNames, *n)
				nameLines = append(nameLines, lineno)
			}
		case strings.HasPrefix(line, tagSpin):
			var sg *SpinGroup
			if sg, err = ParseSpinGroup(line, len(F.SpinGroups)); err == nil {
				F.SpinGroups = append(F.SpinGroups, *sg)
			}
		case strings.HasPrefix(line, tagCoupling):
			var cg *CouplingGroup
			if cg, err = ParseCouplingGroup(line); err == nil {
				F.CouplingGroups = append(F.CouplingGroups, *cg)
			}
		case strings.HasPrefix(line, tagAtom):
			var a *Atom
			if a, err = ParseAtom(line); err == nil {
				F.Atoms = append(F.Atoms, *a)
			}
		case strings.HasPrefix(line, tagBond):
			var b *Bond
			if b, err = ParseBond(line); err == nil {
				F.Bonds = append(F.Bonds, *b)
			}
		default:
			logging.Debug("mms: ignoring line", "line", lineno)
		}
		if err != nil {
			spinverter.Locate(err, lineno, raw, "")
			return nil, spinverter.ErrDecorate(err, "mms.Parse")
		}
	}
	if err := scanner.Err(); err != nil {
		E := spinverter.Wrap(err, spinverter.IOFailure, "mms", "can't read input")
		E.Line = lineno + 1
		E.Decorate("mms.Parse")
		return nil, E
	}
	if err := F.check(nameLines); err != nil {
		return nil, spinverter.ErrDecorate(err, "mms.Parse")
	}
	return F, nil
}

//check verifies that every atom-name record points to an existing atom. Files
//with no atom records are accepted as they are. Count mismatches with the
//header are only logged.
func (F *File) check(nameLines []int) error {
	if len(F.Atoms) > 0 {
		for i, n := range F.AtomNames {
			if n.AtomNumber < 0 || n.AtomNumber >= len(F.Atoms) {
				E := spinverter.Errorf(spinverter.DanglingReference, "mms", "atom name %q refers to atom %d, but the file has %d atoms", n.Name, n.AtomNumber, len(F.Atoms))
				return E.At(nameLines[i], "")
			}
			if z := F.Atoms[n.AtomNumber].AtomicNumber; z != n.AtomicNumber {
				logging.Warn("mms: atom name and atom disagree on the atomic number", "name", n.Name, "atom", n.AtomNumber, "name_z", n.AtomicNumber, "atom_z", z)
			}
		}
	}
	if F.Header == nil {
		return nil
	}
	if F.Header.Atoms != len(F.Atoms) {
		logging.Warn("mms: atom count differs from header", "header", F.Header.Atoms, "read", len(F.Atoms))
	}
	if F.Header.Bonds != len(F.Bonds) {
		logging.Warn("mms: bond count differs from header", "header", F.Header.Bonds, "read", len(F.Bonds))
	}
	if F.Header.CouplingGroups != len(F.CouplingGroups) {
		logging.Warn("mms: coupling group count differs from header", "header", F.Header.CouplingGroups, "read", len(F.CouplingGroups))
	}
	return nil
}

// ReadFile opens and parses the MMS file name, which may be compressed.
func ReadFile(name string) (*File, error) {
	r, err := spinverter.Open(name)
	if err != nil {
		return nil, spinverter.ErrDecorate(err, "mms.ReadFile")
	}
	defer r.Close()
	F, err := Parse(r)
	if err != nil {
		spinverter.Locate(err, 0, "", name)
		return nil, spinverter.ErrDecorate(err, "mms.ReadFile")
	}
	F.Name = name
	logging.Info("mms: read file", "file", name, "atoms", len(F.Atoms), "spin_groups", len(F.SpinGroups), "coupling_groups", len(F.CouplingGroups))
	return F, nil
}
