/*
 * records.go, part of spinverter.
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
	"strconv"
	"strings"

	"github.com/rmera/spinverter"
)

func malformed(msg string, args ...any) *spinverter.Error {
	return spinverter.Errorf(spinverter.MalformedRecord, "pms", msg, args...)
}

func structural(msg string, args ...any) *spinverter.Error {
	return spinverter.Errorf(spinverter.StructuralError, "pms", msg, args...)
}

//tokens splits a spin or coupling line. "/" is an alternate separator there.
func tokens(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, "/", " "))
}

//labeled reads a "LABEL= value" pair starting at tok[i]. The value may also be
//attached to the label, as in "LABEL=value". It returns the label, the value and
//the index of the first token after the pair.
func labeled(tok []string, i int, prefix string) (label, value string, next int, err error) {
	if i >= len(tok) || !strings.HasPrefix(tok[i], prefix) {
		got := "end of line"
		if i < len(tok) {
			got = strconv.Quote(tok[i])
		}
		return "", "", i, structural("expected a %s field, got %s", prefix, got)
	}
	t := tok[i]
	eq := strings.Index(t, "=")
	if eq >= 0 && eq < len(t)-1 {
		return t[:eq+1], t[eq+1:], i + 1, nil
	}
	if i+1 >= len(tok) {
		return "", "", i, malformed("%s field has no value", prefix)
	}
	return t, tok[i+1], i + 2, nil
}

// ParseSpinGroup parses a spin group header line:
//
//	name 2*SPIN= n SPECIES=s POPULATION(X)= p
//
// Any token after the population is ignored. The population is locked
// unless the label is POPULATION(Y)=.
func ParseSpinGroup(line string) (*SpinGroup, error) {
	tok := strings.Fields(line)
	if len(tok) == 0 {
		return nil, malformed("empty spin group header")
	}
	sg := &SpinGroup{Name: tok[0]}
	_, v, next, err := labeled(tok, 1, "2*SPIN=")
	if err != nil {
		return nil, err
	}
	if sg.TwoSpin, err = strconv.Atoi(v); err != nil {
		return nil, malformed("spin group %s: can't parse 2*SPIN from %q: %w", sg.Name, v, err)
	}
	if next >= len(tok) || !strings.HasPrefix(tok[next], "SPECIES=") {
		return nil, structural("spin group %s: missing SPECIES= field", sg.Name)
	}
	sg.Species = strings.TrimPrefix(tok[next], "SPECIES=")
	label, v, _, err := labeled(tok, next+1, "POPULATION(")
	if err != nil {
		return nil, err
	}
	sg.PopulationLocked = label != "POPULATION(Y)="
	if sg.Population, err = strconv.ParseFloat(v, 64); err != nil {
		return nil, malformed("spin group %s: can't parse population from %q: %w", sg.Name, v, err)
	}
	return sg, nil
}

//statField is the position of the STAT= field in a spin line without its
//leading index. rangeField is the last positional field before WIDTH.
const (
	statField  = 4
	rangeField = 8
)

// ParseSpin parses an indented spin line:
//
//	[idx] name species shift me*ce STAT=X a predicted b range WIDTH(X)= w RESP(X)= r
//
// The leading index is optional, and the width and response values may be
// attached to their labels, as in WIDTH(Y)=1.0. The multiplicity field may
// carry more than two parts. The last two are the magnetic and chemical
// equivalence. An N in STAT, WIDTH or RESP means the value is locked.
func ParseSpin(line string) (*Spin, error) {
	tok := tokens(line)
	switch {
	case len(tok) > statField && strings.HasPrefix(tok[statField], "STAT="):
	case len(tok) > statField+1 && strings.HasPrefix(tok[statField+1], "STAT="):
		tok = tok[1:] //leading index
	case len(tok) <= rangeField:
		return nil, malformed("spin line needs at least %d fields, got %d", rangeField+1, len(tok))
	default:
		return nil, structural("spin line: expected a STAT= field, got %q", tok[statField])
	}
	if len(tok) <= rangeField {
		return nil, malformed("spin line needs at least %d fields, got %d", rangeField+1, len(tok))
	}
	var err error
	fail := func(what, t string, e error) {
		if err == nil {
			err = malformed("spin line: can't parse %s from %q: %w", what, t, e)
		}
	}
	clean := func(what string, i int) spinverter.Optional {
		o, e := spinverter.Clean(tok[i])
		if e != nil {
			fail(what, tok[i], e)
		}
		return o
	}
	s := &Spin{Name: tok[0]}
	if s.Species, err = strconv.Atoi(tok[1]); err != nil {
		return nil, malformed("spin line: can't parse species from %q: %w", tok[1], err)
	}
	s.Shift = clean("shift", 2)
	mult := strings.Split(tok[3], "*")
	if len(mult) < 2 {
		return nil, malformed("spin line: multiplicity %q is not of the form me*ce", tok[3])
	}
	me, e := strconv.Atoi(mult[len(mult)-2])
	if e != nil {
		fail("magnetic equivalence", tok[3], e)
	}
	ce, e := strconv.Atoi(mult[len(mult)-1])
	if e != nil {
		fail("chemical equivalence", tok[3], e)
	}
	s.MagneticEquivalence, s.ChemicalEquivalence = me, ce
	s.Locked = tok[statField] == "STAT=N"
	s.PredictedShift = clean("predicted shift", 6)
	s.PredictedRange = clean("predicted range", rangeField)

	//WIDTH and RESP, each with its value attached or as the next field.
	i := rangeField + 1
	locked := func(prefix, what string, dest *float64) (bool, error) {
		if i >= len(tok) {
			return false, malformed("spin line: missing %s field", prefix)
		}
		label, v, next, lerr := labeled(tok, i, prefix)
		if lerr != nil {
			return false, lerr
		}
		i = next
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			fail(what, v, perr)
		}
		*dest = f
		return label == prefix+"N)=", nil
	}
	if s.WidthLocked, e = locked("WIDTH(", "width", &s.Width); e != nil {
		return nil, e
	}
	if s.ResponseLocked, e = locked("RESP(", "response", &s.Response); e != nil {
		return nil, e
	}
	if err != nil {
		return nil, err
	}
	if me < 1 || ce < 1 {
		return nil, malformed("spin %s: equivalences must be positive, got %d*%d", s.Name, me, ce)
	}
	return s, nil
}

// ParseCoupling parses a coupling line:
//
//	idx name constant J|D sg1 sg2 STAT=X a [predicted] b [range]
//
// The predicted value and its range are absent when their columns are.
func ParseCoupling(line string) (*Coupling, error) {
	tok := tokens(line)
	if len(tok) < 7 {
		return nil, malformed("coupling line needs at least 7 fields, got %d", len(tok))
	}
	c := &Coupling{Name: tok[1], SG1: tok[4], SG2: tok[5]}
	var err error
	if c.Constant, err = strconv.ParseFloat(tok[2], 64); err != nil {
		return nil, malformed("coupling %s: can't parse constant from %q: %w", c.Name, tok[2], err)
	}
	switch tok[3] {
	case "J":
		c.Type = J
	case "D":
		c.Type = D
	default:
		return nil, malformed("coupling %s: unknown coupling type %q", c.Name, tok[3])
	}
	if !strings.HasPrefix(tok[6], "STAT=") {
		return nil, structural("coupling %s: expected a STAT= field, got %q", c.Name, tok[6])
	}
	c.Locked = tok[6] == "STAT=N"
	if len(tok) > 8 {
		if c.Predicted, err = spinverter.Clean(tok[8]); err != nil {
			return nil, malformed("coupling %s: can't parse predicted value from %q: %w", c.Name, tok[8], err)
		}
	}
	if len(tok) > 10 {
		if c.Range, err = spinverter.Clean(tok[10]); err != nil {
			return nil, malformed("coupling %s: can't parse predicted range from %q: %w", c.Name, tok[10], err)
		}
	}
	return c, nil
}

// Parameter is a control parameter line: a value and its label.
type Parameter struct {
	Value float64
	Label string
}

// ParseParameter parses a control parameter line. The value is the second
// field and the label every field from the fourth on.
func ParseParameter(line string) (*Parameter, error) {
	tok := strings.Fields(line)
	if len(tok) < 4 {
		return nil, malformed("parameter line needs at least 4 fields, got %d", len(tok))
	}
	v, err := strconv.ParseFloat(tok[1], 64)
	if err != nil {
		return nil, malformed("parameter %q: can't parse value from %q: %w", strings.Join(tok[3:], " "), tok[1], err)
	}
	return &Parameter{Value: v, Label: strings.Join(tok[3:], " ")}, nil
}

// apply sets the frequency or a window bound of F, if the parameter is
// one of those. It reports whether anything was set.
func (P *Parameter) apply(F *File) bool {
	switch {
	case strings.Contains(P.Label, "FIELD"):
		F.Frequency = spinverter.Some(P.Value)
	case strings.Contains(P.Label, "Left freq"):
		F.LeftPPM = spinverter.Some(P.Value)
	case strings.Contains(P.Label, "Right freq"):
		F.RightPPM = spinverter.Some(P.Value)
	default:
		return false
	}
	return true
}
