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

/*Package mnova writes, and reads back, the Mnova spin-simulation XML format.

MMS and PMS models are first resolved into a Document (FromMMS, FromPMS),
where every magnetically equivalent nucleus has become its own group with
its couplings spelled out, and then encoded (Encode). The Write functions do
both steps.

Numbers are written as Mnova expects them: shifts, populations and
spectrum values with the shortest precise decimal (1.0, 1.23, 499.82867),
coupling constants rounded half up to two decimals and line widths to one.*/
package mnova
