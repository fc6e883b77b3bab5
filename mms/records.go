/*
 * records.go, part of spinverter.
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
	"fmt"
	"strconv"
	"strings"

	"github.com/rmera/spinverter"
)

//Each parser takes one line and returns the record or an *spinverter.Error of kind
//MalformedRecord. Line numbers are added by Parse.

// Header is the V record that opens the file.
type Header struct {
	Tag              string
	Revision         int
	Keys             [3]int
	Reserved         int
	Atoms            int
	Bonds            int
	CouplingGroups   int
	CouplingPartners int
}

// Atom is an A record. Its identity is its 0-based position in the file.
type Atom struct {
	AtomicNumber int
	Charge       float64
	FormalCharge int
	T1           int
	T2           int
	Selected     int
	Ch2          int
	U1           int
	U2           int
	U3           int
	ChargeLock   int
	PositionLock int
	X, Y, Z      float64
}

// String serializes the atom back into an A record.
func (A Atom) String() string {
	return fmt.Sprintf("A %d %s %d %d %d %d %d %d %d %d %d %d %s %s %s", A.AtomicNumber, ftoa(A.Charge),
		A.FormalCharge, A.T1, A.T2, A.Selected, A.Ch2, A.U1, A.U2, A.U3, A.ChargeLock, A.PositionLock,
		ftoa(A.X), ftoa(A.Y), ftoa(A.Z))
}

// BondType is the bond order code of a B record.
type BondType byte

const (
	Single   BondType = 'S'
	Double   BondType = 'D'
	Triple   BondType = 'T'
	Aromatic BondType = 'C'
)

func (B BondType) String() string {
	switch B {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	}
	return fmt.Sprintf("BondType(%q)", byte(B))
}

// Bond is a B record, joining two atoms by index.
type Bond struct {
	A1, A2   int
	Type     BondType
	Reserved int //always 0 in the files seen so far
}

// String serializes the bond back into a B record.
func (B Bond) String() string {
	return fmt.Sprintf("B %d %d %c %d", B.A1, B.A2, byte(B.Type), B.Reserved)
}

// AtomName is an "I A NAME" record.
type AtomName struct {
	AtomNumber   int
	AtomicNumber int //repeats the atom's own atomic number
	Name         string
}

// MagneticGroup is one magnetically equivalent nucleus of a spin group.
type MagneticGroup struct {
	Atom  int
	Shift spinverter.Optional
	Range spinverter.Optional
}

// SpinGroup is an "N G" record. Clusters holds the chemically equivalent
// clusters, each one a list of magnetically equivalent nuclei.
type SpinGroup struct {
	Name           string
	ObservedShift  spinverter.Optional
	PredictedShift spinverter.Optional
	LineWidth      float64
	Decoupling     int
	Suppressed     int
	Reliability    float64
	Range          float64
	RangeLock      int
	Weight         int
	NumClusters    int
	Clusters       [][]MagneticGroup
	Index          int //order of appearance, referenced by the coupling groups
}

// CouplingDirect is the coupling type of direct bond couplings.
const CouplingDirect = 1

// CouplingGroup is an "N C" record coupling two spin groups. SG1Index and
// SG2Index select a member within each spin group.
type CouplingGroup struct {
	Type       int
	SG1        int
	SG1Index   int
	SG2        int
	SG2Index   int
	GroupID    int
	BondLength int
	Observed   float64
	Predicted  float64
	Quality    int
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

//fields collects the first conversion error, so records can be filled in
//one go and checked at the end, as the PDB reader does.
type fields struct {
	tok    []string
	record string
	err    error
}

func newFields(line, record string) *fields {
	return &fields{tok: joinBarred(strings.Fields(line)), record: record}
}

func (f *fields) need(n int) error {
	if len(f.tok) < n {
		return malformed("%s record needs at least %d fields, got %d", f.record, n, len(f.tok))
	}
	return nil
}

func (f *fields) fail(i int, what string, err error) {
	if f.err == nil {
		f.err = malformed("%s record: can't parse %s from %q: %w", f.record, what, f.tok[i], err)
	}
}

func (f *fields) atoi(i int, what string) int {
	n, err := strconv.Atoi(f.tok[i])
	if err != nil {
		f.fail(i, what, err)
	}
	return n
}

func (f *fields) float(i int, what string) float64 {
	n, err := strconv.ParseFloat(f.tok[i], 64)
	if err != nil {
		f.fail(i, what, err)
	}
	return n
}

func (f *fields) clean(i int, what string) spinverter.Optional {
	o, err := spinverter.Clean(f.tok[i])
	if err != nil {
		f.fail(i, what, err)
	}
	return o
}

func malformed(msg string, args ...any) *spinverter.Error {
	return spinverter.Errorf(spinverter.MalformedRecord, "mms", msg, args...)
}

//joinBarred merges a |bar delimited| name that contains spaces back into one token.
func joinBarred(tok []string) []string {
	for i := 0; i < len(tok); i++ {
		t := tok[i]
		if !strings.HasPrefix(t, "|") || (len(t) > 1 && strings.HasSuffix(t, "|")) {
			continue
		}
		for j := i + 1; j < len(tok); j++ {
			if strings.HasSuffix(tok[j], "|") {
				merged := strings.Join(tok[i:j+1], " ")
				out := make([]string, 0, len(tok)-(j-i))
				out = append(out, tok[:i]...)
				out = append(out, merged)
				return append(out, tok[j+1:]...)
			}
		}
		return tok //never closed, leave it alone
	}
	return tok
}

func unbar(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "|") && strings.HasSuffix(s, "|") {
		return s[1 : len(s)-1]
	}
	return s
}

// ParseHeader parses a V record: V rev k1 k2 k3 reserved atoms bonds cgroups cpartners.
func ParseHeader(line string) (*Header, error) {
	f := newFields(line, "header")
	if err := f.need(10); err != nil {
		return nil, err
	}
	h := &Header{Tag: f.tok[0]}
	h.Revision = f.atoi(1, "revision")
	for i := range h.Keys {
		h.Keys[i] = f.atoi(2+i, "key")
	}
	h.Reserved = f.atoi(5, "reserved field")
	h.Atoms = f.atoi(6, "atom count")
	h.Bonds = f.atoi(7, "bond count")
	h.CouplingGroups = f.atoi(8, "coupling group count")
	h.CouplingPartners = f.atoi(9, "coupling partner count")
	if f.err != nil {
		return nil, f.err
	}
	return h, nil
}

// ParseAtom parses an A record.
func ParseAtom(line string) (*Atom, error) {
	f := newFields(line, "atom")
	if err := f.need(16); err != nil {
		return nil, err
	}
	a := &Atom{
		AtomicNumber: f.atoi(1, "atomic number"),
		Charge:       f.float(2, "charge"),
		FormalCharge: f.atoi(3, "formal charge"),
		T1:           f.atoi(4, "t1"),
		T2:           f.atoi(5, "t2"),
		Selected:     f.atoi(6, "selection flag"),
		Ch2:          f.atoi(7, "ch2"),
		U1:           f.atoi(8, "u1"),
		U2:           f.atoi(9, "u2"),
		U3:           f.atoi(10, "u3"),
		ChargeLock:   f.atoi(11, "charge lock"),
		PositionLock: f.atoi(12, "position lock"),
		X:            f.float(13, "x coordinate"),
		Y:            f.float(14, "y coordinate"),
		Z:            f.float(15, "z coordinate"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return a, nil
}

// ParseBond parses a B record.
func ParseBond(line string) (*Bond, error) {
	f := newFields(line, "bond")
	if err := f.need(5); err != nil {
		return nil, err
	}
	b := &Bond{A1: f.atoi(1, "first atom"), A2: f.atoi(2, "second atom"), Reserved: f.atoi(4, "reserved field")}
	if f.err != nil {
		return nil, f.err
	}
	t := f.tok[3]
	if len(t) != 1 {
		return nil, malformed("bond record: unknown bond type %q", t)
	}
	switch BondType(t[0]) {
	case Single, Double, Triple, Aromatic:
		b.Type = BondType(t[0])
	default:
		return nil, malformed("bond record: unknown bond type %q", t)
	}
	return b, nil
}

// ParseAtomName parses an "I A NAME idx atomicnumber |name|" record.
func ParseAtomName(line string) (*AtomName, error) {
	f := newFields(line, "atom name")
	if err := f.need(6); err != nil {
		return nil, err
	}
	n := &AtomName{
		AtomNumber:   f.atoi(3, "atom index"),
		AtomicNumber: f.atoi(4, "atomic number"),
		Name:         unbar(f.tok[5]),
	}
	if f.err != nil {
		return nil, f.err
	}
	return n, nil
}

// ParseSpinGroup parses an "N G" record. index is the stable index given
// to the group, its order of appearance in the file.
func ParseSpinGroup(line string, index int) (*SpinGroup, error) {
	f := newFields(line, "spin group")
	if err := f.need(13); err != nil {
		return nil, err
	}
	sg := &SpinGroup{
		Name:           unbar(f.tok[2]),
		ObservedShift:  f.clean(3, "observed shift"),
		PredictedShift: f.clean(4, "predicted shift"),
		LineWidth:      f.float(5, "line width"),
		Decoupling:     f.atoi(6, "decoupling flag"),
		Suppressed:     f.atoi(7, "suppression flag"),
		Reliability:    f.float(8, "reliability"),
		Range:          f.float(9, "range"),
		RangeLock:      f.atoi(10, "range lock"),
		Weight:         f.atoi(11, "group weight"),
		NumClusters:    f.atoi(12, "cluster count"),
		Index:          index,
	}
	if f.err != nil {
		return nil, f.err
	}
	var err error
	sg.Clusters, err = parseClusters(f.tok[12:])
	if err != nil {
		return nil, err
	}
	return sg, nil
}

//parseClusters reads the nested list that closes a spin group record:
//
//	n <open> { m <open> (atom shift range)*m <close> }*n [<close>]
//
//The <open> tokens are skipped without looking at them. A <close>, and
//anything left after the declared structure, must not be a number: a number
//there means a cluster holds more members than it declares.
func parseClusters(tok []string) ([][]MagneticGroup, error) {
	f := &fields{tok: tok, record: "spin group"}
	at := func(i int, what string) error {
		if i >= len(tok) {
			return malformed("spin group record: ran out of fields reading %s (field %d of %d)", what, i+1, len(tok))
		}
		return nil
	}
	n := f.atoi(0, "cluster count")
	if f.err != nil {
		return nil, f.err
	}
	if n < 0 {
		return nil, malformed("spin group record: negative cluster count %d", n)
	}
	clusters := make([][]MagneticGroup, 0, n)
	cursor := 2
	for c := 0; c < n; c++ {
		if err := at(cursor, fmt.Sprintf("size of cluster %d", c)); err != nil {
			return nil, err
		}
		m := f.atoi(cursor, "cluster size")
		if f.err != nil {
			return nil, f.err
		}
		if m < 0 {
			return nil, malformed("spin group record: negative size %d for cluster %d", m, c)
		}
		cursor += 2
		members := make([]MagneticGroup, 0, m)
		for k := 0; k < m; k++ {
			if err := at(cursor+2, fmt.Sprintf("member %d of cluster %d", k, c)); err != nil {
				return nil, err
			}
			members = append(members, MagneticGroup{
				Atom:  f.atoi(cursor, "member atom"),
				Shift: f.clean(cursor+1, "member shift"),
				Range: f.clean(cursor+2, "member range"),
			})
			if f.err != nil {
				return nil, f.err
			}
			cursor += 3
		}
		if err := at(cursor, fmt.Sprintf("end of cluster %d", c)); err != nil {
			return nil, err
		}
		if isNumber(tok[cursor]) {
			return nil, malformed("spin group record: cluster %d declares %d members but has more (field %d is %q)", c, m, cursor+1, tok[cursor])
		}
		cursor++
		clusters = append(clusters, members)
	}
	for ; cursor < len(tok); cursor++ {
		if isNumber(tok[cursor]) {
			return nil, malformed("spin group record: %d clusters declared, but field %d (%q) is left over", n, cursor+1, tok[cursor])
		}
	}
	return clusters, nil
}

func isNumber(t string) bool {
	_, err := strconv.ParseFloat(t, 64)
	return err == nil
}

// ParseCouplingGroup parses an "N C" record.
func ParseCouplingGroup(line string) (*CouplingGroup, error) {
	f := newFields(line, "coupling group")
	if err := f.need(12); err != nil {
		return nil, err
	}
	cg := &CouplingGroup{
		Type:       f.atoi(2, "coupling type"),
		SG1:        f.atoi(3, "first spin group"),
		SG1Index:   f.atoi(4, "first spin group member"),
		SG2:        f.atoi(5, "second spin group"),
		SG2Index:   f.atoi(6, "second spin group member"),
		GroupID:    f.atoi(7, "group id"),
		BondLength: f.atoi(8, "bond length"),
		Observed:   f.float(9, "observed coupling"),
		Predicted:  f.float(10, "predicted coupling"),
		Quality:    f.atoi(11, "prediction quality"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return cg, nil
}
