/*
 * missing_test.go, part of spinverter.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(Te *testing.T) {
	o, err := Clean(MissingToken)
	require.NoError(Te, err)
	assert.False(Te, o.Valid)
	assert.Equal(Te, "absent", o.String())
	//same number, different spelling: a real value.
	o, err = Clean("-1e12")
	require.NoError(Te, err)
	assert.Equal(Te, Some(-1e12), o)
	for tok, want := range map[string]float64{"0": 0, "1.23": 1.23, "-4.5e-3": -4.5e-3} {
		o, err := Clean(tok)
		require.NoError(Te, err, tok)
		v, ok := o.Get()
		assert.True(Te, ok, tok)
		assert.Equal(Te, want, v, tok)
	}
	_, err = Clean("N/A")
	assert.Error(Te, err)
}

func TestOrElse(Te *testing.T) {
	assert.Equal(Te, 2.0, OrElse(0, None(), Some(2), Some(3)))
	assert.Equal(Te, 7.5, OrElse(7.5, None(), None()))
	assert.Equal(Te, 0.0, OrElse(0))
	assert.Equal(Te, 1.5, Some(1.5).Or(9))
	assert.Equal(Te, 9.0, None().Or(9))
	assert.Equal(Te, "1.5", Some(1.5).String())
}
