/*
 * spinplot.go, part of spinverter.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package spinplot draws a quick stick spectrum of a resolved spin system: one
//stick per group at its shift, as tall as the number of nuclei in the group.
//Couplings are not simulated.
package spinplot

import (
	"image/color"
	"math"

	"github.com/rmera/spinverter"
	"github.com/rmera/spinverter/mnova"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "ppm"
	p.Y.Label.Text = "Nuclei"
	//ppm grow to the left.
	p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())
	return p
}

// Sticks returns the stick plot of doc. Each spin system gets its own color.
func Sticks(doc *mnova.Document, title string) (*plot.Plot, error) {
	groups := doc.Groups()
	if len(groups) == 0 {
		return nil, spinverter.NewError(spinverter.StructuralError, "", "no groups to plot")
	}
	p := basicPlot(title)
	shifts := make([]float64, 0, len(groups))
	tall := 1.0
	labels := plotter.XYLabels{}
	for key, sys := range doc.Systems {
		r, g, b := colors(key, len(doc.Systems))
		for _, gr := range sys.Groups {
			h := float64(gr.Number)
			stick := plotter.XYs{{X: gr.Shift, Y: 0}, {X: gr.Shift, Y: h}}
			l, err := plotter.NewLine(stick)
			if err != nil {
				return nil, spinverter.ErrDecorate(spinverter.Wrap(err, spinverter.IOFailure, "mnova", "can't draw stick for "+gr.Name), "Sticks")
			}
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
			p.Add(l)
			labels.XYs = append(labels.XYs, plotter.XY{X: gr.Shift, Y: h})
			labels.Labels = append(labels.Labels, gr.Name)
			shifts = append(shifts, gr.Shift)
			tall = math.Max(tall, h)
		}
	}
	names, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, spinverter.ErrDecorate(spinverter.Wrap(err, spinverter.IOFailure, "mnova", "can't label sticks"), "Sticks")
	}
	p.Add(names)
	sp := doc.Spectrum
	p.X.Min = math.Min(math.Min(sp.From, sp.To), floats.Min(shifts))
	p.X.Max = math.Max(math.Max(sp.From, sp.To), floats.Max(shifts))
	p.Y.Min = 0
	p.Y.Max = tall * 1.2
	return p, nil
}

// Save draws the stick plot of doc into the file name. The format is
// taken from the extension (png, svg, pdf...). The plot is width wide and
// half as tall.
func Save(doc *mnova.Document, title, name string, width vg.Length) error {
	p, err := Sticks(doc, title)
	if err != nil {
		return err
	}
	if err := p.Save(width, width/2, name); err != nil {
		E := spinverter.Wrap(err, spinverter.IOFailure, "mnova", "can't save plot")
		E.FileName = name
		E.Decorate("Save")
		return E
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//colors spreads steps hues over the wheel, skipping the yellows.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
