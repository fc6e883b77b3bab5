/*
 * molecule.go, part of spinverter.
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
	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/v3"
)

// NmToAngstrom converts MMS coordinates, which are in nm, to Angstroms.
const NmToAngstrom = 10.0

// Coords returns the atom positions as a len(Atoms)x3 matrix, in Angstroms
// if angstrom is true and in the units of the file otherwise.
func (F *File) Coords(angstrom bool) (*v3.Matrix, error) {
	if len(F.Atoms) == 0 {
		return nil, spinverter.NewError(spinverter.DanglingReference, "mms", "no atoms to take coordinates from")
	}
	scale := 1.0
	if angstrom {
		scale = NmToAngstrom
	}
	data := make([]float64, 0, 3*len(F.Atoms))
	for _, a := range F.Atoms {
		data = append(data, a.X*scale, a.Y*scale, a.Z*scale)
	}
	return v3.NewMatrix(data)
}

// Symbols returns the element symbol of every atom.
func (F *File) Symbols() ([]string, error) {
	s := make([]string, 0, len(F.Atoms))
	for i, a := range F.Atoms {
		sym, ok := spinverter.Symbol(a.AtomicNumber)
		if !ok {
			return nil, spinverter.Errorf(spinverter.MalformedRecord, "mms", "atom %d has unknown atomic number %d", i, a.AtomicNumber)
		}
		s = append(s, sym)
	}
	return s, nil
}

// BondLengths returns the length of every bond, in Angstroms.
func (F *File) BondLengths() ([]float64, error) {
	coords, err := F.Coords(true)
	if err != nil {
		return nil, spinverter.ErrDecorate(err, "BondLengths")
	}
	lengths := make([]float64, 0, len(F.Bonds))
	for i, b := range F.Bonds {
		d, err := coords.Distance(b.A1, b.A2)
		if err != nil {
			return nil, spinverter.Errorf(spinverter.DanglingReference, "mms", "bond %d joins atoms %d and %d: %w", i, b.A1, b.A2, err)
		}
		lengths = append(lengths, d)
	}
	return lengths, nil
}
