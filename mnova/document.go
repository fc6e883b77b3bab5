/*
 * document.go, part of spinverter.
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
	"fmt"

	"github.com/rmera/spinverter"
)

// Document is a resolved spin-sim file: one or more spin systems and the
// spectrum they are simulated on.
type Document struct {
	Systems  []System
	Spectrum Spectrum
}

// System is a spin system with its relative population.
type System struct {
	Population float64
	Groups     []Group
}

// Group is one emitted nucleus, or set of chemically equivalent nuclei.
type Group struct {
	Name      string
	SpinByTwo int
	LineWidth float64
	Number    int //chemically equivalent nuclei in the group
	Shift     float64
	QConst    float64 //quadrupolar constant, always 0 for protons
	Couplings []Coupling
}

// Coupling is a coupling from a group to the group called Partner.
type Coupling struct {
	Partner  string
	Constant float64 //Hz
	Dipolar  bool    //a dCoupling rather than a jCoupling
}

// Spectrum is the simulated acquisition: spectrometer frequency in MHz, the
// number of points and the window in ppm.
type Spectrum struct {
	Frequency float64
	Points    int
	From      float64
	To        float64
}

// Groups returns the groups of all the systems, in order.
func (D *Document) Groups() []Group {
	var ret []Group
	for _, s := range D.Systems {
		ret = append(ret, s.Groups...)
	}
	return ret
}

// Group returns the first group called name.
func (D *Document) Group(name string) (*Group, bool) {
	for i := range D.Systems {
		for j := range D.Systems[i].Groups {
			if D.Systems[i].Groups[j].Name == name {
				return &D.Systems[i].Groups[j], true
			}
		}
	}
	return nil, false
}

// Summary counts the parts of a Document.
type Summary struct {
	Systems   int
	Groups    int
	Nuclei    int //sum of the group Numbers
	JCoupling int
	DCoupling int
}

func (S Summary) String() string {
	return fmt.Sprintf("%d spin systems, %d groups (%d nuclei), %d J couplings, %d dipolar couplings", S.Systems, S.Groups, S.Nuclei, S.JCoupling, S.DCoupling)
}

// Summary returns the counts of systems, groups and couplings in D.
func (D *Document) Summary() Summary {
	S := Summary{Systems: len(D.Systems)}
	for _, g := range D.Groups() {
		S.Groups++
		S.Nuclei += g.Number
		for _, c := range g.Couplings {
			if c.Dipolar {
				S.DCoupling++
			} else {
				S.JCoupling++
			}
		}
	}
	return S
}

// DefaultPoints is the number of points of the simulated spectrum.
const DefaultPoints = 65536

// Options overrides parts of the spectrum block. The zero value keeps the
// values each format provides.
type Options struct {
	Points    int
	Frequency spinverter.Optional
	From      spinverter.Optional
	To        spinverter.Optional
}

// SetDefaults fills the unset fields of O.
func (O *Options) SetDefaults() {
	if O.Points <= 0 {
		O.Points = DefaultPoints
	}
}

//spectrum builds the spectrum block from the format's values, letting the
//options override them.
func (O Options) spectrum(freq, from, to float64) Spectrum {
	O.SetDefaults()
	return Spectrum{
		Frequency: O.Frequency.Or(freq),
		Points:    O.Points,
		From:      O.From.Or(from),
		To:        O.To.Or(to),
	}
}

func options(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}
