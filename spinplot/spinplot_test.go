/*
 * spinplot_test.go, part of spinverter.
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

package spinplot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/mnova"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func ethanol() *mnova.Document {
	return &mnova.Document{
		Systems: []mnova.System{
			{Population: 1, Groups: []mnova.Group{
				{Name: "CH3-1", Number: 3, Shift: 1.2},
				{Name: "CH2-1", Number: 2, Shift: 3.7},
			}},
			{Population: 0.1, Groups: []mnova.Group{{Name: "OH-1", Number: 1, Shift: 21}}},
		},
		Spectrum: mnova.Spectrum{Frequency: 400, Points: 65536, From: 0, To: 20},
	}
}

func TestSticks(Te *testing.T) {
	p, err := Sticks(ethanol(), "ethanol")
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, p.X.Min)
	assert.Equal(Te, 21.0, p.X.Max, "the window grows to show every stick")
	assert.InDelta(Te, 3.6, p.Y.Max, 1e-9)
	assert.Equal(Te, "ethanol", p.Title.Text)
}

func TestSave(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "ethanol.png")
	require.NoError(Te, Save(ethanol(), "ethanol", name, 12*vg.Centimeter))
	b, err := os.ReadFile(name)
	require.NoError(Te, err)
	assert.True(Te, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestEmpty(Te *testing.T) {
	_, err := Sticks(&mnova.Document{}, "nothing")
	assert.ErrorIs(Te, err, spinverter.ErrStructural)
	assert.NotErrorIs(Te, err, spinverter.ErrDanglingReference)
}

func TestColors(Te *testing.T) {
	r, g, b := colors(0, 3)
	assert.Equal(Te, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r2, g2, b2 := colors(2, 3)
	assert.NotEqual(Te, [3]uint8{r, g, b}, [3]uint8{r2, g2, b2})
}
