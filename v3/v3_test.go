/*
 * v3_test.go, part of spinverter.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, []float64{3, 4, 0}, A.Vec(1))
	d, err := A.Distance(0, 1)
	require.NoError(Te, err)
	assert.InDelta(Te, 5.0, d, 1e-12)
	_, err = A.Distance(0, 2)
	assert.Error(Te, err)
}

func TestNewMatrixBadLength(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "not divisible")
	_, err = NewMatrix(nil)
	assert.Error(Te, err)
}

func TestErrorDecorate(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0})
	require.NoError(Te, err)
	_, err = A.Distance(0, 1)
	var E *Error
	require.ErrorAs(Te, err, &E)
	assert.Equal(Te, []string{"Distance", "BondLengths"}, E.Decorate("BondLengths"))
	assert.Equal(Te, []string{"Distance", "BondLengths"}, E.Decorate(""))
	assert.True(Te, E.Critical())
}

func TestNVecsPanics(Te *testing.T) {
	A := &Matrix{mat.NewDense(2, 2, nil)}
	assert.PanicsWithValue(Te, ErrNotXx3Matrix, func() { A.NVecs() })
}
