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
	"image/color"
	"math"
	"os"
	"slices"

	log "github.com/sirupsen/logrus"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// renderDual draws a chart with a right hand y axis using go-chart, which gonum/plot has no support for.
func renderDual(spec Spec, x []float64, ys [][]float64) (err error) {
	c := newDualChart(spec, x, ys)

	f, err := os.Create(spec.Output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if err == nil {
			err = e
		}
	}()
	return c.Render(gochart.PNG, f)
}

// newDualChart builds the go-chart chart for spec. go-chart draws YAxisSecondary on the
// left and YAxis on the right, so Primary series go to YAxisSecondary and Secondary series to YAxis.
func newDualChart(spec Spec, x []float64, ys [][]float64) *gochart.Chart {
	c := &gochart.Chart{
		Title:      spec.Title,
		TitleStyle: gochart.Style{FontSize: titleFontSize},
		Width:      int(spec.Width * dpi),
		Height:     int(spec.Height * dpi),
		DPI:        dpi,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name: spec.XLabel,
		},
		YAxisSecondary: gochart.YAxis{
			Name: spec.YLabel,
		},
		YAxis: gochart.YAxis{
			Name: spec.SecondaryYLabel,
		},
	}

	grid := dualGridStyle(spec.Grid)
	c.XAxis.GridMajorStyle, c.XAxis.GridMinorStyle = grid, grid
	c.YAxisSecondary.GridMajorStyle, c.YAxisSecondary.GridMinorStyle = grid, grid
	c.YAxis.GridMajorStyle, c.YAxis.GridMinorStyle = gochart.Hidden(), gochart.Hidden()

	var xs, left, right []float64
	for i, s := range spec.Series {
		xys := points(x, ys[i])
		if len(xys) == 0 {
			log.Warnf("Column %q has no values to draw", s.Column)
			continue
		}
		series := markedSeries{
			ContinuousSeries: gochart.ContinuousSeries{
				Name:    s.Label,
				XValues: make([]float64, len(xys)),
				YValues: make([]float64, len(xys)),
				Style: gochart.Style{
					StrokeColor: drawingColor(s.Color),
					StrokeWidth: s.width(),
				},
			},
			Marker: s.Marker,
		}
		for j, pt := range xys {
			series.XValues[j], series.YValues[j] = pt.X, pt.Y
		}
		if s.Dashed {
			series.Style.StrokeDashArray = []float64{6, 3}
		}
		if s.Marker != MarkerNone {
			series.Style.DotColor = drawingColor(s.Color)
			series.Style.DotWidth = markerRadius
		}
		xs = append(xs, series.XValues...)
		if s.Axis == Secondary {
			series.YAxis = gochart.YAxisPrimary
			right = append(right, series.YValues...)
		} else {
			series.YAxis = gochart.YAxisSecondary
			left = append(left, series.YValues...)
		}
		c.Series = append(c.Series, series)
	}

	c.XAxis.Range = paddedRange(xs)
	if spec.YRange != nil {
		c.YAxisSecondary.Range = &gochart.ContinuousRange{Min: spec.YRange.Min, Max: spec.YRange.Max}
	} else {
		c.YAxisSecondary.Range = paddedRange(left)
	}
	c.YAxis.Range = paddedRange(right)

	if spec.Legend {
		c.Elements = []gochart.Renderable{gochart.Legend(c)}
	}
	return c
}

// paddedRange widens a range with no spread, which go-chart cannot draw, by one unit either side.
// An empty range becomes [0, 1]. Any other range is left for go-chart to work out.
func paddedRange(values []float64) gochart.Range {
	if len(values) == 0 {
		return &gochart.ContinuousRange{Min: 0, Max: 1}
	}
	lo, hi := slices.Min(values), slices.Max(values)
	if lo != hi {
		return nil
	}
	return &gochart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}

// markedSeries is a line series that draws its own markers, since go-chart only knows round dots.
type markedSeries struct {
	gochart.ContinuousSeries
	Marker Marker
}

// Render draws the line, then a marker at every point.
func (ms markedSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	style := ms.Style.InheritFrom(defaults)
	line := style
	line.DotWidth = 0
	line.DotColor = drawing.Color{}
	gochart.Draw.LineSeries(r, canvasBox, xrange, yrange, line, ms.ContinuousSeries)

	if ms.Marker == MarkerNone || !style.ShouldDrawDot() {
		return
	}
	radius := style.GetDotWidth()
	style.GetDotOptions().WriteDrawingOptionsToRenderer(r)
	for i := 0; i < ms.Len(); i++ {
		vx, vy := ms.GetValues(i)
		x := canvasBox.Left + xrange.Translate(vx)
		y := canvasBox.Bottom - yrange.Translate(vy)
		drawMarker(r, ms.Marker, radius, x, y)
	}
}

func drawMarker(r gochart.Renderer, m Marker, radius float64, x, y int) {
	d := int(math.Round(radius))
	switch m {
	case MarkerSquare:
		r.MoveTo(x-d, y-d)
		r.LineTo(x+d, y-d)
		r.LineTo(x+d, y+d)
		r.LineTo(x-d, y+d)
		r.Close()
		r.FillStroke()
	case MarkerTriangle:
		r.MoveTo(x, y-d)
		r.LineTo(x+d, y+d)
		r.LineTo(x-d, y+d)
		r.Close()
		r.FillStroke()
	case MarkerCross:
		r.MoveTo(x-d, y-d)
		r.LineTo(x+d, y+d)
		r.Stroke()
		r.MoveTo(x-d, y+d)
		r.LineTo(x+d, y-d)
		r.Stroke()
	default:
		r.Circle(radius, x, y)
		r.FillStroke()
	}
}

func dualGridStyle(g Grid) gochart.Style {
	if !g.Show {
		return gochart.Hidden()
	}
	style := gochart.Style{
		StrokeColor: drawing.Color{R: gridColor.R, G: gridColor.G, B: gridColor.B, A: g.alpha()},
		StrokeWidth: 0.8,
	}
	if g.Dashed {
		style.StrokeDashArray = []float64{3.7, 1.6}
	}
	return style
}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
