/*
 * atomicdata.go, part of spinverter.
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

package spinverter

// Nuclide is an NMR-active isotope as the writers label it.
type Nuclide struct {
	Tag          string //as in the SPECIES= field of PMS files, e.g. "1H"
	AtomicNumber int
	Symbol       string
	SpinByTwo    int //twice the nuclear spin quantum number
}

// Proton is the only channel the spin-sim writer emits.
var Proton = Nuclide{Tag: "1H", AtomicNumber: 1, Symbol: "H", SpinByTwo: 1}

//A map between atomic numbers and element symbols.
//Note that just common organic and "bio-elements" are present
var numberSymbol = map[int]string{
	1:  "H",
	2:  "He",
	3:  "Li",
	4:  "Be",
	5:  "B",
	6:  "C",
	7:  "N",
	8:  "O",
	9:  "F",
	11: "Na",
	12: "Mg",
	13: "Al",
	14: "Si",
	15: "P",
	16: "S",
	17: "Cl",
	19: "K",
	20: "Ca",
	24: "Cr",
	25: "Mn",
	26: "Fe",
	27: "Co",
	29: "Cu",
	30: "Zn",
	34: "Se",
	35: "Br",
	50: "Sn",
	53: "I",
}

// Symbol returns the element symbol for the given atomic number.
func Symbol(atomicNumber int) (string, bool) {
	s, ok := numberSymbol[atomicNumber]
	return s, ok
}
