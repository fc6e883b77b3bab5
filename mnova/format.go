/*
 * format.go, part of spinverter.
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

package mnova

import (
	"math"
	"strconv"
	"strings"
)

//Mnova reads the numbers as the original spin-sim writers print them, which
//is the way the JVM prints doubles. These functions reproduce that.

//decimal formats f the way Double.toString does: the shortest digits that
//read back as f, with at least one fractional digit, and in E notation
//when |f| is outside [1e-3, 1e7).
func decimal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}

//fixed formats f with the given number of decimals, rounding half up (away
//from zero) on the shortest decimal representation of f, so 12.345 gives
//12.35 even though the nearest double is a bit below 12.345.
func fixed(f float64, places int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal(f)
	}
	sign := ""
	if math.Signbit(f) {
		sign = "-"
	}
	s := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)
	ipart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		frac += strings.Repeat("0", places-len(frac))
		return sign + join(ipart, frac)
	}
	up := frac[places] >= '5'
	digits := []byte(ipart + frac[:places])
	if up {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}
	n := len(digits) - places
	return sign + join(string(digits[:n]), string(digits[n:]))
}

func join(ipart, frac string) string {
	if frac == "" {
		return ipart
	}
	return ipart + "." + frac
}

//coupling, width and qconst are the three fixed formats of the group element.
func coupling(f float64) string { return fixed(f, 2) }

func width(f float64) string { return fixed(f, 1) }

func qconst(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
