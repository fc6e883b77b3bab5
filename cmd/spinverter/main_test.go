/*
 * main_test.go, part of spinverter.
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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rmera/spinverter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propane = `V 3 0 0 0 0 4 0 3 0
I A NAME 0 6 |C1|
I A NAME 1 1 |H1|
I A NAME 2 1 |H2|
N G |C1| 20.1 -1e+012 2.0 0 0 0.9 0.1 0 1 1 ( 1 ( 0 20.1 0.1 ) )
N G |CH3| -1e+012 0.91 1.0 0 0 0.9 0.1 0 1 1 ( 1 ( 1 0.91 0.1 ) )
N G |CH2| 1.33 1.30 1.2 0 0 0.9 0.1 0 1 1 ( 1 ( 2 1.33 0.1 ) )
N C 1 1 0 2 1 0 3 7.345 7.0 2
`

const ethyl = `ACTIVE SPECIES:1H
CHEMICAL SHIFTS(PPM):
SG1 2*SPIN= 1 SPECIES=1H POPULATION(N)= 1.0
  1 CH3 1 1.25 1*3*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)= 1.0 RESP(Y)= 1.0
  2 CH2 1 3.6 1*2*1 STAT=Y 0 -1e+012 0 -1e+012 WIDTH(Y)= 0.8 RESP(Y)= 1.0

COUPLING CONSTANTS(HZ):
1 J12 7.1 J CH3 CH2 STAT=Y

CONTROL PARAMETERS:
1 400.13 : FIELD (MHz)
`

//fixture writes content to name in a temporary directory, compressing it if
//the name asks for it.
func fixture(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	w, err := spinverter.Create(path)
	require.NoError(Te, err)
	_, err = io.WriteString(w, content)
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	return path
}

//run parses args like main does, and runs the selected command.
func run(Te *testing.T, args ...string) (string, error) {
	Te.Helper()
	var cli CLI
	var out bytes.Buffer
	parser, err := kong.New(&cli,
		kong.Name("spinverter"),
		kong.Writers(&out, &out),
		kong.Exit(func(int) { Te.Fatal("unexpected exit") }),
	)
	require.NoError(Te, err)
	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	require.NoError(Te, cli.initLogging(io.Discard))
	err = ctx.Run(ctx)
	return out.String(), err
}

func TestConvertMMS(Te *testing.T) {
	in := fixture(Te, "propane.mms", propane)
	out, err := run(Te, "convert", in)
	require.NoError(Te, err)
	xml := filepath.Join(filepath.Dir(in), "propane.xml")
	assert.Contains(Te, out, xml)
	assert.Contains(Te, out, "1 spin systems, 2 groups")
	_, err = os.Stat(xml)
	require.NoError(Te, err)

	out, err = run(Te, "check", xml)
	require.NoError(Te, err)
	assert.Contains(Te, out, "499.82867 MHz, 65536 points, -2 to 14 ppm")
}

func TestConvertPMS(Te *testing.T) {
	in := fixture(Te, "ethyl.pms.gz", ethyl)
	xml := filepath.Join(Te.TempDir(), "ethyl.xml.zst")
	out, err := run(Te, "convert", in, "-o", xml, "--points", "1024", "--from", "0.5", "--to", "8")
	require.NoError(Te, err)
	//three CH3 instances and two CH2 ones.
	assert.Contains(Te, out, "1 spin systems, 5 groups")

	out, err = run(Te, "check", xml)
	require.NoError(Te, err)
	assert.Contains(Te, out, "400.13 MHz, 1024 points, 0.5 to 8 ppm")
}

func TestOutputName(Te *testing.T) {
	cases := map[string]string{
		"a/propane.mms":    "a/propane.xml",
		"a/propane.mms.gz": "a/propane.xml",
		"ethyl.pms.zst":    "ethyl.xml",
		"no_extension":     "no_extension.xml",
		"dotted.name.pms":  "dotted.name.xml",
	}
	for in, want := range cases {
		assert.Equal(Te, want, outputName(in, ".xml"), in)
	}
}

func TestFormat(Te *testing.T) {
	in := fixture(Te, "ethyl.txt", ethyl)
	_, err := run(Te, "info", in)
	assert.ErrorContains(Te, err, "--format")

	out, err := run(Te, "info", "--format", "pms", in)
	require.NoError(Te, err)
	assert.Contains(Te, out, "format:   pms")
	assert.Contains(Te, out, "spins:    2")
	digest, err := spinverter.FileDigest(in)
	require.NoError(Te, err)
	assert.Contains(Te, out, digest)
}

func TestInfoMMS(Te *testing.T) {
	in := fixture(Te, "propane.mms.xz", propane)
	out, err := run(Te, "info", in)
	require.NoError(Te, err)
	assert.Contains(Te, out, "format:   mms")
	assert.Contains(Te, out, "spin groups: 3")
	assert.Contains(Te, out, "coupling groups: 1")
}

func TestShow(Te *testing.T) {
	in := fixture(Te, "ethyl.pms", ethyl)
	out, err := run(Te, "show", in)
	require.NoError(Te, err)
	assert.Contains(Te, out, "ActiveSpecies: (string) (len=2) \"1H\"")

	out, err = run(Te, "show", "--resolved", in)
	require.NoError(Te, err)
	assert.Contains(Te, out, "\"CH2-2\"")
}

func TestPlot(Te *testing.T) {
	in := fixture(Te, "propane.mms", propane)
	png := filepath.Join(Te.TempDir(), "propane.png")
	_, err := run(Te, "plot", in, "-o", png, "--width", "8")
	require.NoError(Te, err)
	b, err := os.ReadFile(png)
	require.NoError(Te, err)
	assert.Equal(Te, []byte("\x89PNG"), b[:4])
}

func TestFailures(Te *testing.T) {
	in := fixture(Te, "broken.mms", "V 1 0 0 0 0 1 0 0 0\nA 6 0.0 0\n")
	_, err := run(Te, "convert", in)
	assert.ErrorIs(Te, err, spinverter.ErrMalformedRecord)
	assert.ErrorContains(Te, err, "line 2")
	_, err = os.Stat(filepath.Join(filepath.Dir(in), "broken.xml"))
	assert.ErrorIs(Te, err, os.ErrNotExist)

	notxml := fixture(Te, "nothing.xml", "<other/>")
	_, err = run(Te, "check", notxml)
	assert.ErrorIs(Te, err, spinverter.ErrMalformedRecord)

	_, err = run(Te, "convert", filepath.Join(Te.TempDir(), "missing.mms"))
	assert.Error(Te, err)
}

func TestVersion(Te *testing.T) {
	out, err := run(Te, "version")
	require.NoError(Te, err)
	assert.Equal(Te, "spinverter "+version+"\n", out)
}
