/*
 * machine_test.go, part of spinverter.
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

package pms

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/spinverter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ethyl = `* two spin groups, the second one is not a proton
ACTIVE SPECIES:1H
CHEMICAL SHIFTS(PPM):
SG1 2*SPIN= 1 SPECIES=1H POPULATION(N)= 0.75
  1 CH3 1 1.25 1*3*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)= 1.0 RESP(Y)= 1.0
  2 CH2 1 3.6/ 1*2*1 STAT=N 0 3.55 0 0.1 WIDTH(N)= 0.8 RESP(Y)= 1.0
SG2 2*SPIN= 1 SPECIES=13C POPULATION(Y)= 0.25
  C1 1 14.1 1*1*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)= 2.0 RESP(Y)= 1.0

COUPLING CONSTANTS(HZ):
1 J12 7.1 J CH3 CH2 STAT=Y 0 7.0 0 0.5
2 D13 0.4 D CH3 C1 STAT=N

CONTROL PARAMETERS:
1 400.13 : FIELD (MHz)
2 8.0 : Left freq (ppm)
3 0.5 : Right freq (ppm)
4 65536 : points
`

func TestParse(Te *testing.T) {
	F, err := Parse(strings.NewReader(ethyl))
	require.NoError(Te, err)
	assert.Equal(Te, "1H", F.ActiveSpecies)
	require.Len(Te, F.SpinGroups, 2)
	assert.Equal(Te, 3, F.NumSpins())

	sg, ok := F.SpinGroup("SG1")
	require.True(Te, ok)
	assert.Equal(Te, 1, sg.TwoSpin)
	assert.Equal(Te, "1H", sg.Species)
	assert.True(Te, sg.PopulationLocked)
	assert.Equal(Te, 0.75, sg.Population)
	ch2, ok := sg.Spin("CH2")
	require.True(Te, ok)
	assert.Equal(Te, spinverter.Some(3.6), ch2.Shift)
	assert.Equal(Te, 2, ch2.MagneticEquivalence)
	assert.Equal(Te, 1, ch2.ChemicalEquivalence)
	assert.True(Te, ch2.Locked)
	assert.True(Te, ch2.WidthLocked)
	assert.False(Te, ch2.ResponseLocked)
	assert.Equal(Te, spinverter.Some(0.1), ch2.PredictedRange)
	ch3, _ := sg.Spin("CH3")
	assert.False(Te, ch3.PredictedShift.Valid)
	assert.Equal(Te, 3, ch3.MagneticEquivalence)

	sg2, _ := F.SpinGroup("SG2")
	assert.False(Te, sg2.PopulationLocked)
	assert.Equal(Te, "C1", sg2.Spins[0].Name)

	require.Len(Te, F.Couplings, 2)
	assert.Equal(Te, J, F.Couplings[0].Type)
	assert.Equal(Te, spinverter.Some(7.0), F.Couplings[0].Predicted)
	assert.Equal(Te, spinverter.Some(0.5), F.Couplings[0].Range)
	assert.Equal(Te, D, F.Couplings[1].Type)
	assert.True(Te, F.Couplings[1].Locked)
	assert.False(Te, F.Couplings[1].Predicted.Valid)
	assert.False(Te, F.Couplings[1].Range.Valid)
	assert.Len(Te, F.CouplingsOf("C1"), 1)
	assert.Len(Te, F.CouplingsOf("CH3"), 2)

	assert.Equal(Te, spinverter.Some(400.13), F.Frequency)
	assert.Equal(Te, spinverter.Some(8.0), F.LeftPPM)
	assert.Equal(Te, spinverter.Some(0.5), F.RightPPM)
}

func TestScenarioB(Te *testing.T) {
	M := NewMachine()
	require.NoError(Te, M.Feed("CHEMICAL SHIFTS(PPM):"))
	require.NoError(Te, M.Feed("SG1 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1.0"))
	require.NoError(Te, M.Feed("  1 H1 1 2.0 1*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)= 1.0 RESP(Y)= 1.0"))
	require.NotNil(Te, M.Pending())
	require.NoError(Te, M.Feed(""))
	assert.Nil(Te, M.Pending())
	assert.Equal(Te, Idle, M.State())
	F := M.Finish()
	require.Len(Te, F.SpinGroups, 1)
	require.Len(Te, F.SpinGroups[0].Spins, 1)
	s := F.SpinGroups[0].Spins[0]
	assert.Equal(Te, "H1", s.Name)
	assert.Equal(Te, 1, s.Species)
	assert.Equal(Te, spinverter.Some(2.0), s.Shift)
	assert.Equal(Te, 1, s.MagneticEquivalence)
	assert.False(Te, F.SpinGroups[0].PopulationLocked)
}

func TestBlankLines(Te *testing.T) {
	M := NewMachine()
	//nothing open: a no-op.
	require.NoError(Te, M.Feed(""))
	require.NoError(Te, M.Feed("CHEMICAL SHIFTS(PPM):"))
	require.NoError(Te, M.Feed("   "))
	assert.Equal(Te, Idle, M.State())
	assert.Empty(Te, M.file.SpinGroups)

	require.NoError(Te, M.Feed("CHEMICAL SHIFTS(PPM):"))
	require.NoError(Te, M.Feed("A 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1.0"))
	require.NoError(Te, M.Feed("B 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1.0"))
	assert.Len(Te, M.file.SpinGroups, 1, "a new header seals the previous group")
	before := len(M.file.SpinGroups)
	require.NoError(Te, M.Feed(""))
	assert.Equal(Te, before+1, len(M.file.SpinGroups))
	require.NoError(Te, M.Feed(""))
	assert.Equal(Te, before+1, len(M.file.SpinGroups))
	assert.Equal(Te, "B", M.Finish().SpinGroups[1].Name)
}

func TestSealAtEOF(Te *testing.T) {
	in := "CHEMICAL SHIFTS(PPM):\nSG1 2*SPIN= 1 SPECIES=1H POPULATION(Y)=1.0\n  H1 1 2.0 1*1*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)= 1.0 RESP(Y)= 1.0"
	F, err := Parse(strings.NewReader(in))
	require.NoError(Te, err)
	require.Len(Te, F.SpinGroups, 1)
	assert.Equal(Te, 1.0, F.SpinGroups[0].Population)
	assert.Len(Te, F.SpinGroups[0].Spins, 1)
}

func TestSectionChangeDiscards(Te *testing.T) {
	in := "CHEMICAL SHIFTS(PPM):\nSG1 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1.0\nCOUPLING CONSTANTS(HZ):\n1 J 1.0 J A B STAT=Y\n"
	F, err := Parse(strings.NewReader(in))
	require.NoError(Te, err)
	assert.Empty(Te, F.SpinGroups)
	assert.Len(Te, F.Couplings, 1)
}

func TestStructuralErrors(Te *testing.T) {
	cases := map[string]string{
		"orphan spin":     "CHEMICAL SHIFTS(PPM):\n  H1 1 2.0 1*1 STAT=Y 0 1 0 1 WIDTH(Y)= 1.0 RESP(Y)= 1.0\n",
		"no spin label":   "CHEMICAL SHIFTS(PPM):\nSG1 SPIN= 1 SPECIES=1H POPULATION(Y)= 1.0\n",
		"no species":      "CHEMICAL SHIFTS(PPM):\nSG1 2*SPIN= 1 1H POPULATION(Y)= 1.0\n",
		"no population":   "CHEMICAL SHIFTS(PPM):\nSG1 2*SPIN= 1 SPECIES=1H 1.0\n",
		"no stat":         "CHEMICAL SHIFTS(PPM):\nG 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1\n  H1 1 2.0 1*1 Y 0 1 0 1 WIDTH(Y)= 1.0 RESP(Y)= 1.0\n",
		"no width":        "CHEMICAL SHIFTS(PPM):\nG 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1\n  H1 1 2.0 1*1 STAT=Y 0 1 0 1 W= 1.0 RESP(Y)= 1.0\n",
		"coupling status": "COUPLING CONSTANTS(HZ):\n1 J12 7.1 J H1 H2 Y\n",
	}
	for name, in := range cases {
		F, err := Parse(strings.NewReader(in))
		assert.Nil(Te, F, name)
		assert.ErrorIs(Te, err, spinverter.ErrStructural, name)
	}
	_, err := Parse(strings.NewReader(cases["orphan spin"]))
	var E *spinverter.Error
	require.ErrorAs(Te, err, &E)
	assert.Equal(Te, 2, E.Line)
}

func TestMalformed(Te *testing.T) {
	cases := map[string]string{
		"coupling type":  "COUPLING CONSTANTS(HZ):\n1 J12 7.1 X H1 H2 STAT=Y\n",
		"short coupling": "COUPLING CONSTANTS(HZ):\n1 J12 7.1 J\n",
		"bad predicted":  "COUPLING CONSTANTS(HZ):\n1 J12 7.1 J H1 H2 STAT=Y 0 seven\n",
		"short spin":     "CHEMICAL SHIFTS(PPM):\nG 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1\n  H1 1 2.0 1*1 STAT=Y\n",
		"bad shift":      "CHEMICAL SHIFTS(PPM):\nG 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1\n  H1 1 two 1*1 STAT=Y 0 1 0 1 WIDTH(Y)= 1.0 RESP(Y)= 1.0\n",
		"bad population": "CHEMICAL SHIFTS(PPM):\nG 2*SPIN= 1 SPECIES=1H POPULATION(Y)= all\n",
		"bad parameter":  "CONTROL PARAMETERS:\n1 fast : FIELD\n",
		"no resp":        "CHEMICAL SHIFTS(PPM):\nG 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1\n  H1 1 2.0 1*1 STAT=Y 0 1 0 1 WIDTH(Y)=1.0\n",
		"bad width":      "CHEMICAL SHIFTS(PPM):\nG 2*SPIN= 1 SPECIES=1H POPULATION(Y)= 1\n  H1 1 2.0 1*1 STAT=Y 0 1 0 1 WIDTH(Y)=wide RESP(Y)= 1.0\n",
	}
	for name, in := range cases {
		F, err := Parse(strings.NewReader(in))
		assert.Nil(Te, F, name)
		assert.ErrorIs(Te, err, spinverter.ErrMalformedRecord, name)
	}
}

func TestAttachedSpinValues(Te *testing.T) {
	for _, line := range []string{
		"  1 H1 1 2.0 1*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)=1.0 RESP(N)=0.5",
		"  H1 1 2.0 1*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)=1.0 RESP(N)=0.5",
		"  1 H1 1 2.0 1*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)=1.0 RESP(N)= 0.5",
	} {
		s, err := ParseSpin(line)
		require.NoError(Te, err, line)
		assert.Equal(Te, "H1", s.Name, line)
		assert.Equal(Te, spinverter.Some(2.0), s.Shift, line)
		assert.Equal(Te, 1.0, s.Width, line)
		assert.False(Te, s.WidthLocked, line)
		assert.Equal(Te, 0.5, s.Response, line)
		assert.True(Te, s.ResponseLocked, line)
	}
	in := "CHEMICAL SHIFTS(PPM):\nSG1 2*SPIN= 1 SPECIES=1H POPULATION(Y)=1.0\n  1 H1 1 2.0 1*2 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)=1.0 RESP(N)=0.5\n"
	F, err := Parse(strings.NewReader(in))
	require.NoError(Te, err)
	require.Len(Te, F.SpinGroups, 1)
	require.Len(Te, F.SpinGroups[0].Spins, 1)
	assert.Equal(Te, 2, F.SpinGroups[0].Spins[0].ChemicalEquivalence)
}

func TestOptionalCouplingColumns(Te *testing.T) {
	c, err := ParseCoupling("1 J12 7.1 J H1 H2 STAT=Y 0 7.0")
	require.NoError(Te, err)
	assert.Equal(Te, spinverter.Some(7.0), c.Predicted)
	assert.False(Te, c.Range.Valid)
	c, err = ParseCoupling("1 J12 7.1 J H1 H2 STAT=Y 0 -1e+012 0 -1e+012")
	require.NoError(Te, err)
	assert.False(Te, c.Predicted.Valid)
	assert.False(Te, c.Range.Valid)
	other, self := c.Partner("H2")
	assert.Equal(Te, "H1", other)
	assert.False(Te, self)
}

func TestParameterBlock(Te *testing.T) {
	M := NewMachine()
	require.NoError(Te, M.Feed("CONTROL PARAMETERS:"))
	require.NoError(Te, M.Feed("  "))
	assert.Equal(Te, InParameterBlock, M.State(), "only an empty line closes the block")
	require.NoError(Te, M.Feed("9 123.0 : Something else"))
	require.NoError(Te, M.Feed(""))
	assert.Equal(Te, Idle, M.State())
	F := M.Finish()
	assert.False(Te, F.Frequency.Valid)
}

func TestReadFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "ethyl.pms.zst")
	w, err := spinverter.Create(name)
	require.NoError(Te, err)
	_, err = io.WriteString(w, ethyl)
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	F, err := ReadFile(name)
	require.NoError(Te, err)
	assert.Equal(Te, name, F.Name)
	assert.Len(Te, F.SpinGroups, 2)
}
