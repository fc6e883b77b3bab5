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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package spinverter holds the pieces shared by the spinverter packages, which
convert NMR spin-simulation description files into the Mnova spin-simulation
XML format.



	**spinverter Capabilities**


    Reads MMS files (package mms): header, atoms, bonds, atom names,
	spin groups with their chemically and magnetically equivalent clusters,
	and coupling groups.

    Reads PMS files (package pms): spin groups, spins, couplings and the
	control parameters that define the spectrometer frequency and the
	spectral window.

    Resolves the J-couplings of every emitted spin under magnetic equivalence
	and writes the spin system as Mnova spin-sim XML (package mnova). Existing
	spin-sim files can be read back.

    Draws a stick spectrum of a resolved spin system (package spinplot).

    Reads input files compressed with gzip, zstd or xz.


This package provides the missing-value cleaner used by both formats
(the literal "-1e+012" means "no prediction available"), the Optional type,
the Error type returned by every package, and the file helpers.*/
package spinverter
