/*
 * encode.go, part of spinverter.
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
	"encoding/xml"
	"io"
	"strconv"

	"github.com/rmera/spinverter"
)

// Element names of the spin-sim format.
const (
	elemRoot      = "mnova-spinsim"
	elemSystem    = "spin-system"
	elemSummary   = "summary"
	elemPop       = "population"
	elemGroup     = "group"
	elemShift     = "shift"
	elemQConst    = "qConst"
	elemJCoupling = "jCoupling"
	elemDCoupling = "dCoupling"
	elemSpectrum  = "spectrum"
	elemFrequency = "frequency"
	elemPoints    = "points"
	elemFrom      = "from"
	elemTo        = "to"
)

//encoder writes tokens until the first error, which is kept.
type encoder struct {
	enc *xml.Encoder
	err error
}

func (E *encoder) token(t xml.Token) {
	if E.err == nil {
		E.err = E.enc.EncodeToken(t)
	}
}

func (E *encoder) start(name string, attr ...xml.Attr) {
	E.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attr})
}

func (E *encoder) end(name string) {
	E.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (E *encoder) text(name, value string, attr ...xml.Attr) {
	E.start(name, attr...)
	E.token(xml.CharData(value))
	E.end(name)
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// Encode writes doc to w as an indented spin-sim XML document.
func Encode(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return encodeErr(err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	E := &encoder{enc: enc}
	E.start(elemRoot)
	for _, sys := range doc.Systems {
		E.start(elemSystem)
		E.start(elemSummary)
		E.end(elemSummary)
		E.text(elemPop, decimal(sys.Population))
		for _, g := range sys.Groups {
			E.group(g)
		}
		E.end(elemSystem)
	}
	s := doc.Spectrum
	E.start(elemSpectrum)
	E.text(elemFrequency, decimal(s.Frequency))
	E.text(elemPoints, strconv.Itoa(s.Points))
	E.text(elemFrom, decimal(s.From))
	E.text(elemTo, decimal(s.To))
	E.end(elemSpectrum)
	E.end(elemRoot)
	if E.err == nil {
		E.err = enc.Flush()
	}
	if E.err == nil {
		_, E.err = io.WriteString(w, "\n")
	}
	return encodeErr(E.err)
}

func (E *encoder) group(g Group) {
	E.start(elemGroup,
		attr("name", g.Name),
		attr("spinByTwo", strconv.Itoa(g.SpinByTwo)),
		attr("lineWidth", width(g.LineWidth)),
		attr("number", strconv.Itoa(g.Number)))
	E.text(elemShift, decimal(g.Shift))
	E.text(elemQConst, qconst(g.QConst))
	for _, c := range g.Couplings {
		name := elemJCoupling
		if c.Dipolar {
			name = elemDCoupling
		}
		E.text(name, coupling(c.Constant), attr("name", c.Partner))
	}
	E.end(elemGroup)
}

func encodeErr(err error) error {
	if err == nil {
		return nil
	}
	E := spinverter.Wrap(err, spinverter.IOFailure, "mnova", "can't write output")
	E.Decorate("Encode")
	return E
}
