/*
 * main.go, part of spinverter.
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

// Command spinverter converts MMS and PMS spin files into Mnova spin-sim XML,
// and inspects both the inputs and the results.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/internal/logging"
	"github.com/rmera/spinverter/mms"
	"github.com/rmera/spinverter/mnova"
	"github.com/rmera/spinverter/pms"
	"github.com/rmera/spinverter/spinplot"
)

const version = "0.2.0"

// CLI defines the command-line interface for spinverter.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" env:"SPINVERTER_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" env:"SPINVERTER_LOG_FORMAT"`

	Convert ConvertCmd `cmd:"" help:"Convert an MMS or PMS file to Mnova spin-sim XML"`
	Show    ShowCmd    `cmd:"" help:"Dump the parsed model of an MMS or PMS file"`
	Check   CheckCmd   `cmd:"" help:"Read back a spin-sim XML file and summarize it"`
	Plot    PlotCmd    `cmd:"" help:"Draw the stick spectrum of an MMS or PMS file"`
	Info    InfoCmd    `cmd:"" help:"Print the record counts and digest of an MMS or PMS file"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func (c *CLI) initLogging(w io.Writer) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.Init(level, format, w)
	return nil
}

// InputFlags select the file to read and its format.
type InputFlags struct {
	Input  string `arg:"" help:"MMS or PMS file, optionally compressed (.gz, .zst, .xz)" type:"existingfile"`
	Format string `help:"Input format (mms or pms), taken from the extension if not given"`
}

// SpectrumFlags override the spectrum block of the output.
type SpectrumFlags struct {
	Points    int      `help:"Points of the simulated spectrum" default:"65536"`
	Frequency *float64 `help:"Spectrometer frequency in MHz"`
	From      *float64 `help:"Lower bound of the spectral window, in ppm"`
	To        *float64 `help:"Upper bound of the spectral window, in ppm"`
}

func (s SpectrumFlags) options() mnova.Options {
	opt := func(f *float64) spinverter.Optional {
		if f == nil {
			return spinverter.None()
		}
		return spinverter.Some(*f)
	}
	return mnova.Options{Points: s.Points, Frequency: opt(s.Frequency), From: opt(s.From), To: opt(s.To)}
}

//model is whichever of the two formats was read.
type model struct {
	mms *mms.File
	pms *pms.File
}

func (i InputFlags) read() (*model, error) {
	format := strings.ToLower(i.Format)
	if format == "" {
		format = spinverter.BaseExt(i.Input)
	}
	switch format {
	case "mms":
		F, err := mms.ReadFile(i.Input)
		if err != nil {
			return nil, err
		}
		return &model{mms: F}, nil
	case "pms":
		F, err := pms.ReadFile(i.Input)
		if err != nil {
			return nil, err
		}
		return &model{pms: F}, nil
	}
	return nil, fmt.Errorf("can't tell the format of %s, use --format mms or --format pms", i.Input)
}

func (m *model) document(opts mnova.Options) (*mnova.Document, error) {
	if m.mms != nil {
		return mnova.FromMMS(m.mms, opts)
	}
	return mnova.FromPMS(m.pms, opts)
}

func (m *model) value() any {
	if m.mms != nil {
		return m.mms
	}
	return m.pms
}

var compressed = map[string]bool{".gz": true, ".zst": true, ".zstd": true, ".xz": true}

//outputName replaces the extension of in, and any compression suffix, with ext.
func outputName(in, ext string) string {
	name := in
	if compressed[strings.ToLower(filepath.Ext(name))] {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// ConvertCmd writes the spin-sim XML of an input file.
type ConvertCmd struct {
	InputFlags `embed:""`

	Out      string        `short:"o" help:"Output file, the input name with a .xml extension by default. A .gz, .zst or .xz suffix compresses it." type:"path"`
	Spectrum SpectrumFlags `embed:""`
}

func (c *ConvertCmd) Run(ctx *kong.Context) error {
	m, err := c.read()
	if err != nil {
		return err
	}
	doc, err := m.document(c.Spectrum.options())
	if err != nil {
		return err
	}
	out := c.Out
	if out == "" {
		out = outputName(c.Input, ".xml")
	}
	if err := mnova.WriteFile(out, doc); err != nil {
		return err
	}
	digest, err := spinverter.FileDigest(c.Input)
	if err != nil {
		return err
	}
	S := doc.Summary()
	logging.Info("converted", "input", c.Input, "output", out, "blake3", digest,
		"systems", S.Systems, "groups", S.Groups, "jcouplings", S.JCoupling, "dcouplings", S.DCoupling)
	fmt.Fprintf(ctx.Stdout, "%s: %s\n", out, S)
	return nil
}

// ShowCmd dumps the parsed model.
type ShowCmd struct {
	InputFlags `embed:""`

	Resolved bool          `help:"Dump the resolved spin-sim document instead of the file model"`
	Spectrum SpectrumFlags `embed:""`
}

func (c *ShowCmd) Run(ctx *kong.Context) error {
	m, err := c.read()
	if err != nil {
		return err
	}
	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	if !c.Resolved {
		dumper.Fdump(ctx.Stdout, m.value())
		return nil
	}
	doc, err := m.document(c.Spectrum.options())
	if err != nil {
		return err
	}
	dumper.Fdump(ctx.Stdout, doc)
	return nil
}

// CheckCmd reads a spin-sim file back.
type CheckCmd struct {
	Path string `arg:"" help:"Spin-sim XML file, optionally compressed" type:"existingfile"`
}

func (c *CheckCmd) Run(ctx *kong.Context) error {
	r, err := spinverter.Open(c.Path)
	if err != nil {
		return err
	}
	defer r.Close()
	doc, err := mnova.Read(r)
	if err != nil {
		return spinverter.Locate(err, 0, "", c.Path)
	}
	s := doc.Spectrum
	fmt.Fprintf(ctx.Stdout, "%s: %s\n", c.Path, doc.Summary())
	fmt.Fprintf(ctx.Stdout, "spectrum: %g MHz, %d points, %g to %g ppm\n", s.Frequency, s.Points, s.From, s.To)
	return nil
}

// PlotCmd draws a stick spectrum.
type PlotCmd struct {
	InputFlags `embed:""`

	Out      string        `short:"o" help:"Output image; png, svg or pdf by extension. The input name with .png by default." type:"path"`
	Title    string        `help:"Plot title, the input file name by default"`
	Width    float64       `help:"Width of the plot in cm" default:"16"`
	Spectrum SpectrumFlags `embed:""`
}

func (c *PlotCmd) Run(ctx *kong.Context) error {
	m, err := c.read()
	if err != nil {
		return err
	}
	doc, err := m.document(c.Spectrum.options())
	if err != nil {
		return err
	}
	out := c.Out
	if out == "" {
		out = outputName(c.Input, ".png")
	}
	title := c.Title
	if title == "" {
		title = filepath.Base(c.Input)
	}
	if err := spinplot.Save(doc, title, out, vg.Length(c.Width)*vg.Centimeter); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "%s: %d groups\n", out, len(doc.Groups()))
	return nil
}

// InfoCmd prints record counts and the input digest.
type InfoCmd struct {
	InputFlags `embed:""`
}

func (c *InfoCmd) Run(ctx *kong.Context) error {
	m, err := c.read()
	if err != nil {
		return err
	}
	digest, err := spinverter.FileDigest(c.Input)
	if err != nil {
		return err
	}
	w := ctx.Stdout
	fmt.Fprintf(w, "file:     %s\n", c.Input)
	fmt.Fprintf(w, "blake3:   %s\n", digest)
	if F := m.mms; F != nil {
		atoms, bonds, sgs, cgs := F.Counts()
		fmt.Fprintf(w, "format:   mms\natoms:    %d\nbonds:    %d\nnames:    %d\nspin groups: %d\ncoupling groups: %d\n", atoms, bonds, len(F.AtomNames), sgs, cgs)
		return nil
	}
	F := m.pms
	fmt.Fprintf(w, "format:   pms\nspin groups: %d\nspins:    %d\ncouplings: %d\nfrequency: %s\n", len(F.SpinGroups), F.NumSpins(), len(F.Couplings), F.Frequency)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "spinverter %s\n", version)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("spinverter"),
		kong.Description("Convert MMS and PMS spin files to Mnova spin-sim XML"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(cli.initLogging(os.Stderr))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
