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

// Package chart draws line charts of result table columns against the client count.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/results"
)

// Axis selects the y axis a series is drawn against.
type Axis int

// Axis possible values.
const (
	Primary Axis = iota
	Secondary
)

// Marker is the glyph drawn at each data point.
type Marker int

// Marker possible values.
const (
	MarkerNone Marker = iota
	MarkerCircle
	MarkerTriangle
	MarkerCross
	MarkerSquare
)

// Colors used by the report charts.
var (
	TabBlue = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	TabRed  = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	Blue    = color.RGBA{B: 0xff, A: 0xff}
	Red     = color.RGBA{R: 0xff, A: 0xff}
	Green   = color.RGBA{G: 0x80, A: 0xff}
	Orange  = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
	Black   = color.RGBA{A: 0xff}
)

const (
	defaultLineWidth = 1.5
	markerRadius     = 3.0
	titleFontSize    = 14.0
	dpi              = 100.0
)

// Series is one column plotted against the x column.
type Series struct {
	Column string
	Label  string
	Color  color.RGBA
	Marker Marker
	Dashed bool
	// Width is the line width in points. Zero means 1.5.
	Width float64
	Axis  Axis
}

// Range is a fixed axis range.
type Range struct {
	Min float64
	Max float64
}

// Grid describes the background grid. Opacity of zero means opaque.
type Grid struct {
	Show    bool
	Dashed  bool
	Opacity float64
}

// Spec describes one chart and where it is saved.
type Spec struct {
	Title           string
	XColumn         string
	XLabel          string
	YLabel          string
	SecondaryYLabel string
	Series          []Series
	YRange          *Range
	Legend          bool
	Grid            Grid
	// Width and Height are the figure size in inches.
	Width  float64
	Height float64
	Output string
}

func (s Series) width() float64 {
	if s.Width <= 0 {
		return defaultLineWidth
	}
	return s.Width
}

func (g Grid) alpha() uint8 {
	if g.Opacity <= 0 || g.Opacity >= 1 {
		return 0xff
	}
	return uint8(g.Opacity * 0xff)
}

func (spec Spec) hasSecondary() bool {
	for _, s := range spec.Series {
		if s.Axis == Secondary {
			return true
		}
	}
	return false
}

func (spec Spec) validate() error {
	if spec.Output == "" {
		return fmt.Errorf("chart %q has no output path", spec.Title)
	}
	if len(spec.Series) == 0 {
		return fmt.Errorf("chart %q has no series", spec.Title)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("chart %q has invalid size %vx%v", spec.Title, spec.Width, spec.Height)
	}
	if spec.YRange != nil && spec.YRange.Min >= spec.YRange.Max {
		return fmt.Errorf("chart %q has empty y range [%v, %v]", spec.Title, spec.YRange.Min, spec.YRange.Max)
	}
	return nil
}

// Render draws spec from the columns of table and writes it as a PNG to spec.Output,
// creating the parent directory if needed. Every column is looked up before anything
// is drawn, so a missing column leaves no file behind. Rows with a missing value are
// left out of the series that has it.
func Render(table *results.Table, spec Spec) error {
	log.Debug("Entering chart.Render function")
	if err := spec.validate(); err != nil {
		return err
	}
	x, ys, err := columns(table, spec)
	if err != nil {
		return err
	}
	if !hasValues(x, ys) {
		return fmt.Errorf("chart %q has no values to draw", spec.Title)
	}
	if err := os.MkdirAll(filepath.Dir(spec.Output), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", spec.Output, err)
	}

	if spec.hasSecondary() {
		err = renderDual(spec, x, ys)
	} else {
		err = renderPlot(spec, x, ys)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", spec.Output, err)
	}
	log.Debugf("Wrote chart %s", spec.Output)
	return nil
}

func columns(table *results.Table, spec Spec) ([]float64, [][]float64, error) {
	x, err := table.Column(spec.XColumn)
	if err != nil {
		return nil, nil, err
	}
	ys := make([][]float64, len(spec.Series))
	for i, s := range spec.Series {
		ys[i], err = table.Column(s.Column)
		if err != nil {
			return nil, nil, err
		}
	}
	return x, ys, nil
}

// hasValues reports whether any series has a row where neither x nor y is missing.
func hasValues(x []float64, ys [][]float64) bool {
	for _, y := range ys {
		if len(points(x, y)) > 0 {
			return true
		}
	}
	return false
}
