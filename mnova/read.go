/*
 * read.go, part of spinverter.
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
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/rmera/spinverter"
)

var (
	xpRoot      = xpath.MustCompile("/" + elemRoot)
	xpSystems   = xpath.MustCompile(elemSystem)
	xpGroups    = xpath.MustCompile(elemGroup)
	xpCouplings = xpath.MustCompile("*[self::" + elemJCoupling + " or self::" + elemDCoupling + "]")
	xpSpectrum  = xpath.MustCompile(elemSpectrum)
)

func malformed(msg string, args ...any) *spinverter.Error {
	return spinverter.Errorf(spinverter.MalformedRecord, "mnova", msg, args...)
}

//reader collects the first conversion error.
type reader struct {
	err error
}

func (R *reader) child(n *xmlquery.Node, name string) string {
	c := n.SelectElement(name)
	if c == nil {
		if R.err == nil {
			R.err = malformed("%s element has no %s", n.Data, name)
		}
		return ""
	}
	return strings.TrimSpace(c.InnerText())
}

func (R *reader) float(s, what string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && R.err == nil {
		R.err = malformed("can't parse %s from %q: %w", what, s, err)
	}
	return f
}

func (R *reader) int(s, what string) int {
	i, err := strconv.Atoi(s)
	if err != nil && R.err == nil {
		R.err = malformed("can't parse %s from %q: %w", what, s, err)
	}
	return i
}

// Read parses a spin-sim XML document, such as those written by Encode.
func Read(r io.Reader) (*Document, error) {
	top, err := xmlquery.Parse(r)
	if err != nil {
		return nil, spinverter.Wrap(err, spinverter.MalformedRecord, "mnova", "can't parse XML")
	}
	root := xmlquery.QuerySelector(top, xpRoot)
	if root == nil {
		return nil, malformed("no %s root element", elemRoot)
	}
	R := new(reader)
	doc := new(Document)
	for _, sn := range xmlquery.QuerySelectorAll(root, xpSystems) {
		sys := System{Population: R.float(R.child(sn, elemPop), "population")}
		for _, gn := range xmlquery.QuerySelectorAll(sn, xpGroups) {
			g := Group{
				Name:      gn.SelectAttr("name"),
				SpinByTwo: R.int(gn.SelectAttr("spinByTwo"), "spinByTwo"),
				LineWidth: R.float(gn.SelectAttr("lineWidth"), "lineWidth"),
				Number:    R.int(gn.SelectAttr("number"), "number"),
				Shift:     R.float(R.child(gn, elemShift), "shift"),
			}
			if q := gn.SelectElement(elemQConst); q != nil {
				g.QConst = R.float(strings.TrimSpace(q.InnerText()), "qConst")
			}
			for _, cn := range xmlquery.QuerySelectorAll(gn, xpCouplings) {
				g.Couplings = append(g.Couplings, Coupling{
					Partner:  cn.SelectAttr("name"),
					Constant: R.float(strings.TrimSpace(cn.InnerText()), "coupling constant"),
					Dipolar:  cn.Data == elemDCoupling,
				})
			}
			sys.Groups = append(sys.Groups, g)
		}
		doc.Systems = append(doc.Systems, sys)
	}
	sp := xmlquery.QuerySelector(root, xpSpectrum)
	if sp == nil {
		return nil, malformed("no %s element", elemSpectrum)
	}
	doc.Spectrum = Spectrum{
		Frequency: R.float(R.child(sp, elemFrequency), "frequency"),
		Points:    R.int(R.child(sp, elemPoints), "points"),
		From:      R.float(R.child(sp, elemFrom), "from"),
		To:        R.float(R.child(sp, elemTo), "to"),
	}
	if R.err != nil {
		return nil, spinverter.ErrDecorate(R.err, "mnova.Read")
	}
	return doc, nil
}
