/*
 * resolve_pms.go, part of spinverter.
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
	"sort"

	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/internal/logging"
	"github.com/rmera/spinverter/pms"
)

// Spectrum block fallbacks for PMS files without control parameters.
const (
	PMSFrequency = 400.0
	PMSFrom      = 0.0
	PMSTo        = 20.0
)

// FromPMS resolves F into a Document with one spin system per proton spin
// group. Every spin gives one group per magnetically equivalent instance,
// named spin-instance, counting from 1.
func FromPMS(F *pms.File, opts Options) (*Document, error) {
	doc := new(Document)
	for i := range F.SpinGroups {
		sg := &F.SpinGroups[i]
		if sg.Species != spinverter.Proton.Tag {
			logging.Debug("mnova: skipping spin group", "group", sg.Name, "species", sg.Species)
			continue
		}
		sys := System{Population: sg.Population}
		for j := range sg.Spins {
			s := &sg.Spins[j]
			couplings := F.CouplingsOf(s.Name)
			for inst := 1; inst <= max(s.MagneticEquivalence, 1); inst++ {
				sys.Groups = append(sys.Groups, Group{
					Name:      instance(s.Name, inst),
					SpinByTwo: sg.TwoSpin,
					LineWidth: s.Width,
					Number:    s.ChemicalEquivalence,
					Shift:     spinverter.OrElse(0, s.Shift, s.PredictedShift),
					Couplings: ResolveSpin(sg, s, inst, couplings),
				})
			}
		}
		doc.Systems = append(doc.Systems, sys)
	}
	if len(doc.Systems) == 0 {
		logging.Warn("mnova: no proton spin groups to write", "file", F.Name)
	}
	doc.Spectrum = opts.spectrum(F.Frequency.Or(PMSFrequency), F.RightPPM.Or(PMSFrom), F.LeftPPM.Or(PMSTo))
	return doc, nil
}

func instance(spin string, inst int) string {
	return fmt.Sprintf("%s-%d", spin, inst)
}

//candidate is a coupling to a partner instance whose emission depends on
//the other couplings to the same partner.
type candidate struct {
	spin     string
	inst     int
	constant float64
	dipolar  bool
}

func (C candidate) coupling() Coupling {
	return Coupling{Partner: instance(C.spin, C.inst), Constant: C.constant, Dipolar: C.dipolar}
}

// ResolveSpin returns the couplings of the given instance (1-based) of spin,
// a member of group. Only the couplings that name spin are considered, and
// partners are looked up in group.
//
// A coupling of a spin with itself links its two instances, so it is
// only written for magnetic equivalence 2. A partner with one instance
// is coupled directly, and a spin with one instance is coupled to every
// instance of its partner. When both sides have two instances the coupling
// is deferred: candidates for each partner instance are collected over all
// couplings and resolved at the end, see resolveDeferred. Other
// combinations are not supported and are dropped.
func ResolveSpin(group *pms.SpinGroup, spin *pms.Spin, inst int, couplings []pms.Coupling) []Coupling {
	var ret []Coupling
	var deferred []candidate
	me := spin.MagneticEquivalence
	for _, c := range couplings {
		if !c.Names(spin.Name) {
			continue
		}
		dipolar := c.Type == pms.D
		other, self := c.Partner(spin.Name)
		if self {
			if me != 2 {
				logging.Debug("mnova: dropping self coupling", "spin", spin.Name, "coupling", c.Name, "equivalence", me)
				continue
			}
			ret = append(ret, Coupling{Partner: instance(spin.Name, 3-inst), Constant: c.Constant, Dipolar: dipolar})
			continue
		}
		partner, ok := group.Spin(other)
		if !ok {
			logging.Debug("mnova: coupling partner is not in the spin group", "spin", spin.Name, "partner", other, "group", group.Name)
			continue
		}
		pme := partner.MagneticEquivalence
		switch {
		case pme == 1:
			ret = append(ret, Coupling{Partner: instance(partner.Name, 1), Constant: c.Constant, Dipolar: dipolar})
		case me == 1:
			for k := 1; k <= pme; k++ {
				ret = append(ret, Coupling{Partner: instance(partner.Name, k), Constant: c.Constant, Dipolar: dipolar})
			}
		case me == 2 && pme == 2:
			for k := 1; k <= 2; k++ {
				deferred = append(deferred, candidate{spin: partner.Name, inst: k, constant: c.Constant, dipolar: dipolar})
			}
		default:
			logging.Warn("mnova: unsupported equivalence combination, coupling dropped", "spin", spin.Name, "equivalence", me, "partner", partner.Name, "partner_equivalence", pme, "coupling", c.Name)
		}
	}
	return append(ret, resolveDeferred(deferred, inst)...)
}

//resolveDeferred picks, for the current instance, among the couplings to
//partners that have two instances, when the current spin also has two.
//Candidates are bucketed by partner instance, in order of first appearance,
//and each bucket sorted by decreasing constant (ties in reverse order of
//appearance).
//
//A bucket with a single candidate is written if the first two candidates for
//that partner differ in their constants, or if the candidate's instance is
//the current one. Otherwise the candidate at position inst-1 (for instance 1)
//or 2-inst (for instance 2) of the bucket is selected, inst being the
//instance of the candidates in the bucket.
func resolveDeferred(deferred []candidate, inst int) []Coupling {
	if len(deferred) == 0 {
		return nil
	}
	var keys []string
	buckets := make(map[string][]candidate)
	byspin := make(map[string][]candidate)
	for _, d := range deferred {
		key := instance(d.spin, d.inst)
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], d)
		byspin[d.spin] = append(byspin[d.spin], d)
	}
	var ret []Coupling
	for _, key := range keys {
		b := append([]candidate(nil), buckets[key]...)
		sort.SliceStable(b, func(i, j int) bool { return b[i].constant < b[j].constant })
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		if len(b) == 1 {
			siblings := byspin[b[0].spin]
			if (len(siblings) > 1 && siblings[0].constant != siblings[1].constant) || b[0].inst == inst {
				ret = append(ret, b[0].coupling())
			}
			continue
		}
		idx := 2 - b[0].inst
		if inst == 1 {
			idx = b[0].inst - 1
		}
		if idx < 0 || idx >= len(b) {
			logging.Warn("mnova: can't resolve coupling between equivalent pairs", "partner", key, "candidates", len(b), "instance", inst)
			continue
		}
		ret = append(ret, b[idx].coupling())
	}
	return ret
}
