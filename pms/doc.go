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

/*Package pms reads PMS spin files. A PMS file is organized in blocks, each
opened by a header line:

	ACTIVE SPECIES:1H
	CHEMICAL SHIFTS(PPM):
	SG1 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1.0
	  H1 1 2.0 1*2*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)= 1.0 RESP(Y)= 1.0

	COUPLING CONSTANTS(HZ):
	1 J12 7.1 J H1 H2 STAT=Y 0 7.0 0 0.5

	CONTROL PARAMETERS:
	1 400.13 : FIELD (MHz)

Spin groups start at an unindented line inside the chemical shifts block, and
take every following indented line as one of their spins. A group is sealed
by a blank line, by the next group, or by the end of the input. Lines starting
with * are comments.

The block grammar is run by Machine, one line at a time. Parse and ReadFile
drive a Machine over a whole stream.*/
package pms
