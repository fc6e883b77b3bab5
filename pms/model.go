/*
 * model.go, part of spinverter.
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
	"github.com/rmera/spinverter"
)

// Spin is one nucleus, or set of equivalent nuclei, of a spin group.
type Spin struct {
	Name                string
	Species             int
	Shift               spinverter.Optional
	MagneticEquivalence int
	ChemicalEquivalence int
	Locked              bool
	PredictedShift      spinverter.Optional
	PredictedRange      spinverter.Optional
	WidthLocked         bool
	Width               float64
	ResponseLocked      bool
	Response            float64
}

// SpinGroup is a named group of spins sharing a population.
type SpinGroup struct {
	Name             string
	TwoSpin          int //twice the spin quantum number
	Species          string
	PopulationLocked bool
	Population       float64
	Spins            []Spin
}

// Spin returns the spin with the given name.
func (S *SpinGroup) Spin(name string) (*Spin, bool) {
	for i, v := range S.Spins {
		if v.Name == name {
			return &S.Spins[i], true
		}
	}
	return nil, false
}

// NumSpins returns the number of spins in the group.
func (S *SpinGroup) NumSpins() int { return len(S.Spins) }

// CouplingType tells scalar from dipolar couplings.
type CouplingType int

const (
	J CouplingType = iota
	D
)

func (C CouplingType) String() string {
	if C == D {
		return "D"
	}
	return "J"
}

// Coupling links two spins, by name.
type Coupling struct {
	Name      string
	Constant  float64
	Type      CouplingType
	SG1, SG2  string
	Locked    bool
	Predicted spinverter.Optional
	Range     spinverter.Optional
}

// Names reports whether the coupling has spin on either side.
func (C Coupling) Names(spin string) bool {
	return C.SG1 == spin || C.SG2 == spin
}

// Partner returns the spin on the other side of the coupling from spin,
// and whether the coupling is between a spin and itself.
func (C Coupling) Partner(spin string) (other string, self bool) {
	if C.SG1 == C.SG2 {
		return C.SG1, true
	}
	if C.SG1 == spin {
		return C.SG2, false
	}
	return C.SG1, false
}

// File is the in-memory model of a PMS file.
type File struct {
	ActiveSpecies string
	SpinGroups    []SpinGroup
	Couplings     []Coupling
	Frequency     spinverter.Optional //MHz
	LeftPPM       spinverter.Optional
	RightPPM      spinverter.Optional
	Name          string //file name, empty when parsed from a stream
}

// SpinGroup returns the spin group with the given name.
func (F *File) SpinGroup(name string) (*SpinGroup, bool) {
	for i, v := range F.SpinGroups {
		if v.Name == name {
			return &F.SpinGroups[i], true
		}
	}
	return nil, false
}

// CouplingsOf returns, in file order, the couplings that name spin on either side.
func (F *File) CouplingsOf(spin string) []Coupling {
	var ret []Coupling
	for _, c := range F.Couplings {
		if c.Names(spin) {
			ret = append(ret, c)
		}
	}
	return ret
}

// NumSpins returns the total number of spins in the file.
func (F *File) NumSpins() int {
	n := 0
	for _, v := range F.SpinGroups {
		n += len(v.Spins)
	}
	return n
}
