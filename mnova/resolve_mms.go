/*
 * resolve_mms.go, part of spinverter.
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
	"github.com/rmera/spinverter/internal/logging"
	"github.com/rmera/spinverter/mms"
)

// Spectrum block written for MMS files, which carry none.
const (
	MMSFrequency = 499.82867
	MMSFrom      = -2.0
	MMSTo        = 14.0
)

// FromMMS resolves the proton spin groups of F into a Document with a single
// spin system. A spin group is a proton group if the atom of its first
// magnetically equivalent nucleus is named as a hydrogen. One group is
// emitted per member of the first cluster.
//
// Couplings come from the direct-bond coupling groups. Those that refer to a
// spin group missing from F are dropped. A spin group whose atom has no atom
// name is an error.
func FromMMS(F *mms.File, opts Options) (*Document, error) {
	sys := System{Population: 1.0}
	for i := range F.SpinGroups {
		sg := &F.SpinGroups[i]
		if len(sg.Clusters) == 0 || len(sg.Clusters[0]) == 0 {
			logging.Debug("mnova: skipping spin group with no nuclei", "group", sg.Name, "index", sg.Index)
			continue
		}
		atom := sg.Clusters[0][0].Atom
		name, ok := F.AtomName(atom)
		if !ok {
			E := spinverter.Errorf(spinverter.DanglingReference, "mms", "spin group %d (%s) refers to atom %d, which has no atom name", sg.Index, sg.Name, atom)
			E.FileName = F.Name
			E.Decorate("FromMMS")
			return nil, E
		}
		if name.AtomicNumber != spinverter.Proton.AtomicNumber {
			continue
		}
		couplings := mmsCouplings(F, sg)
		number := sg.NumClusters * len(sg.Clusters[0])
		shift := spinverter.OrElse(0, sg.ObservedShift, sg.PredictedShift)
		for k := range sg.Clusters[0] {
			sys.Groups = append(sys.Groups, Group{
				Name:      mmsName(sg.Index, k),
				SpinByTwo: spinverter.Proton.SpinByTwo,
				LineWidth: sg.LineWidth,
				Number:    number,
				Shift:     shift,
				Couplings: append([]Coupling(nil), couplings...),
			})
		}
	}
	return &Document{
		Systems:  []System{sys},
		Spectrum: opts.spectrum(MMSFrequency, MMSFrom, MMSTo),
	}, nil
}

func mmsName(index, member int) string {
	return fmt.Sprintf("%s%d-%d", spinverter.Proton.Symbol, index, member)
}

//mmsCouplings returns the direct couplings of sg, in file order.
func mmsCouplings(F *mms.File, sg *mms.SpinGroup) []Coupling {
	var ret []Coupling
	for _, cg := range F.CouplingGroups {
		if cg.Type != mms.CouplingDirect {
			continue
		}
		var other, member int
		switch sg.Index {
		case cg.SG1:
			other, member = cg.SG2, cg.SG2Index
		case cg.SG2:
			other, member = cg.SG1, cg.SG1Index
		default:
			continue
		}
		if _, ok := F.SpinGroupByIndex(other); !ok {
			logging.Debug("mnova: dropping coupling to a missing spin group", "group", sg.Index, "partner", other)
			continue
		}
		ret = append(ret, Coupling{Partner: mmsName(other, member), Constant: cg.Observed})
	}
	return ret
}
