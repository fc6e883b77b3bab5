/*
 * doc.go, part of spinverter.
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

/*Package mms reads MMS spin files. An MMS file is line oriented, each line a
record whose type is given by its first tokens:

	V         header: revision, keys and record counts
	A         atom: atomic number, charges, flags and x y z coordinates
	B         bond between two atoms, S D T or C (aromatic)
	I A NAME  name of an atom, between bars: |H12|
	N G       spin group, with its chemically and magnetically equivalent nuclei
	N C       coupling between members of two spin groups

Atoms and spin groups are referred to by their 0-based order of appearance.
Any other line is ignored.*/
package mms
