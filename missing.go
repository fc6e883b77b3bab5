/*
 * missing.go, part of spinverter.
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

import (
	"strconv"
)

// MissingToken is the literal both formats write where no prediction
// is available.
const MissingToken = "-1e+012"

// Optional is a float64 that may be absent.
type Optional struct {
	Value float64
	Valid bool
}

// Some returns a present Optional holding f.
func Some(f float64) Optional { return Optional{Value: f, Valid: true} }

// None returns an absent Optional.
func None() Optional { return Optional{} }

// Get returns the value and whether it is present.
func (O Optional) Get() (float64, bool) { return O.Value, O.Valid }

// Or returns the value if present, def otherwise.
func (O Optional) Or(def float64) float64 {
	if O.Valid {
		return O.Value
	}
	return def
}

func (O Optional) String() string {
	if !O.Valid {
		return "absent"
	}
	return strconv.FormatFloat(O.Value, 'g', -1, 64)
}

// OrElse returns the first present value among opts, or def if none is.
func OrElse(def float64, opts ...Optional) float64 {
	for _, o := range opts {
		if o.Valid {
			return o.Value
		}
	}
	return def
}

// Clean maps the missing-value token to an absent Optional and
// parses anything else as a float. Only the exact MissingToken literal
// is treated as missing, other spellings of the same number are kept.
func Clean(tok string) (Optional, error) {
	if tok == MissingToken {
		return None(), nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return None(), err
	}
	return Some(f), nil
}
