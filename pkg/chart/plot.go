// Copyright (c) 2026 Tigera, Inc. All rights reserved.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chart

import (
	"fmt"
	"image/color"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var gridColor = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

// renderPlot draws a single y axis chart with gonum/plot.
func renderPlot(spec Spec, x []float64, ys [][]float64) error {
	p, err := newPlot(spec, x, ys)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(spec.Width)*vg.Inch, vg.Length(spec.Height)*vg.Inch, spec.Output)
}

func newPlot(spec Spec, x []float64, ys [][]float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(titleFontSize)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	if spec.Grid.Show {
		grid := plotter.NewGrid()
		grid.Vertical = gridLineStyle(spec.Grid)
		grid.Horizontal = gridLineStyle(spec.Grid)
		p.Add(grid)
	}

	for i, s := range spec.Series {
		xys := points(x, ys[i])
		if len(xys) == 0 {
			log.Warnf("Column %q has no values to draw", s.Column)
			continue
		}
		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", s.Column, err)
		}
		line.Color = s.Color
		line.Width = vg.Points(s.width())
		if s.Dashed {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		thumbs := []plot.Thumbnailer{line}

		if s.Marker != MarkerNone {
			scatter.Color = s.Color
			scatter.Radius = vg.Points(markerRadius)
			scatter.Shape = glyph(s.Marker)
			p.Add(scatter)
			thumbs = append(thumbs, scatter)
		}
		if spec.Legend && s.Label != "" {
			p.Legend.Add(s.Label, thumbs...)
		}
	}

	// Add widens the axes to the data, so the fixed range goes on last.
	if spec.YRange != nil {
		p.Y.Min = spec.YRange.Min
		p.Y.Max = spec.YRange.Max
	}
	placeLegend(&p.Legend, legendCorner(x, ys, p.X.Min, p.X.Max, p.Y.Min, p.Y.Max))
	return p, nil
}

// points pairs x and y by row, dropping rows where either value is missing.
// No sorting or resampling is done.
func points(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
	}
	return xys
}

type corner int

const (
	upperRight corner = iota
	upperLeft
	lowerLeft
	lowerRight
)

// Fraction of the data area a legend is assumed to cover when picking its corner.
const (
	legendWidthFrac  = 0.4
	legendHeightFrac = 0.3
)

// legendCorner picks the corner whose legend-sized box covers the fewest data points,
// preferring upper right, then upper left, lower left and lower right on ties.
func legendCorner(x []float64, ys [][]float64, xMin, xMax, yMin, yMax float64) corner {
	if !(xMax > xMin) || !(yMax > yMin) {
		return upperRight
	}
	left := xMin + legendWidthFrac*(xMax-xMin)
	right := xMax - legendWidthFrac*(xMax-xMin)
	bottom := yMin + legendHeightFrac*(yMax-yMin)
	top := yMax - legendHeightFrac*(yMax-yMin)

	var counts [4]int
	for _, y := range ys {
		for _, pt := range points(x, y) {
			if pt.Y >= top && pt.X >= right {
				counts[upperRight]++
			}
			if pt.Y >= top && pt.X <= left {
				counts[upperLeft]++
			}
			if pt.Y <= bottom && pt.X <= left {
				counts[lowerLeft]++
			}
			if pt.Y <= bottom && pt.X >= right {
				counts[lowerRight]++
			}
		}
	}
	best := upperRight
	for c := upperLeft; c <= lowerRight; c++ {
		if counts[c] < counts[best] {
			best = c
		}
	}
	return best
}

func placeLegend(l *plot.Legend, c corner) {
	l.Top = c == upperRight || c == upperLeft
	l.Left = c == upperLeft || c == lowerLeft
	inset := vg.Points(4)
	l.XOffs, l.YOffs = inset, inset
	if !l.Left {
		l.XOffs = -inset
	}
	if l.Top {
		l.YOffs = -inset
	}
}

func gridLineStyle(g Grid) draw.LineStyle {
	c := gridColor
	c.A = g.alpha()
	style := draw.LineStyle{
		Color: color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A},
		Width: vg.Points(0.8),
	}
	if g.Dashed {
		style.Dashes = []vg.Length{vg.Points(3.7), vg.Points(1.6)}
	}
	return style
}

func glyph(m Marker) draw.GlyphDrawer {
	switch m {
	case MarkerTriangle:
		return draw.PyramidGlyph{}
	case MarkerCross:
		return draw.CrossGlyph{}
	case MarkerSquare:
		return draw.BoxGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}
