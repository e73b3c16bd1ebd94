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

package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/chart"
	"github.com/ShreyashThok24731/cs744-project/pkg/config"
	"github.com/ShreyashThok24731/cs744-project/pkg/results"
	"github.com/ShreyashThok24731/cs744-project/pkg/stats"
)

// ResultsDir is where result CSVs are read from and charts are written to.
const ResultsDir = "results"

const (
	xLabel      = "Number of Clients (Load)"
	chartWidth  = 8
	chartHeight = 5
	lineWidth   = 2
)

var grid = chart.Grid{Show: true, Dashed: true, Opacity: 0.7}

// Generator charts workload results found in Dir.
type Generator struct {
	Dir string
	// Out receives the one line status messages for the operator.
	Out io.Writer
}

// New returns a Generator that reads and writes under ResultsDir and reports to stdout.
func New() *Generator {
	return &Generator{Dir: ResultsDir, Out: os.Stdout}
}

// InputPath returns the results CSV for a workload.
func (g *Generator) InputPath(workload string) string {
	return filepath.Join(g.Dir, workload+"_results.csv")
}

// Run processes every workload in order.
func (g *Generator) Run(workloads []config.Workload) []results.Result {
	var res []results.Result
	for _, w := range workloads {
		res = append(res, g.Process(w.Name, w.Title))
	}
	return res
}

// Process draws the throughput, latency and utilization charts for one workload.
// A missing or unreadable CSV is reported and skipped. A chart that fails to render stops the
// remaining charts for this workload; charts already written are left in place.
func (g *Generator) Process(workload, titleSuffix string) results.Result {
	log.Debugf("Entering Process function for %s", workload)
	path := g.InputPath(workload)
	res := results.Result{
		Workload: workload,
		Title:    titleSuffix,
		Source:   path,
	}

	table, err := results.LoadTable(path)
	if err != nil {
		res.Error = err.Error()
		if errors.Is(err, results.ErrMissingFile) {
			fmt.Fprintf(g.Out, "File not found: %s\n", path)
			res.Status = results.StatusMissing
		} else {
			fmt.Fprintf(g.Out, "Error reading CSV: %s\n", err)
			res.Status = results.StatusMalformed
		}
		log.WithError(err).Debugf("Skipping workload %s", workload)
		return res
	}

	summary, err := summarize(table)
	if err != nil {
		log.WithError(err).Warnf("Could not summarize %s", path)
	} else {
		res.Summary = &summary
	}

	for _, spec := range Charts(g.Dir, workload, titleSuffix) {
		err = chart.Render(table, spec)
		if err != nil {
			log.WithError(err).Errorf("Failed to draw %s", spec.Output)
			res.Status = results.StatusFailed
			res.Error = err.Error()
			return res
		}
		res.Charts = append(res.Charts, spec.Output)
		fmt.Fprintf(g.Out, "Saved: %s\n", spec.Output)
	}
	res.Status = results.StatusOK
	log.Infof("Charted %s (%d load levels)", workload, table.Len())
	return res
}

func summarize(table *results.Table) (stats.WorkloadSummary, error) {
	var cols [3][]float64
	for i, name := range []string{results.ColClients, results.ColThroughput, results.ColResponseTime} {
		values, err := table.Column(name)
		if err != nil {
			return stats.WorkloadSummary{}, err
		}
		cols[i] = values
	}
	return stats.Summarize(cols[0], cols[1], cols[2])
}

// Charts returns the charts drawn for a workload, in the order they are drawn.
func Charts(dir, workload, titleSuffix string) []chart.Spec {
	return []chart.Spec{
		metricChart(
			"Throughput: "+titleSuffix, "Throughput (Req/Sec)", results.ColThroughput, chart.TabBlue,
			filepath.Join(dir, workload+"_throughput.png"),
		),
		metricChart(
			"Response Time: "+titleSuffix, "Response Time (ms)", results.ColResponseTime, chart.TabRed,
			filepath.Join(dir, workload+"_latency.png"),
		),
		utilizationChart(dir, workload, titleSuffix),
	}
}

func metricChart(title, yLabel, column string, c color.RGBA, output string) chart.Spec {
	return chart.Spec{
		Title:   title,
		XColumn: results.ColClients,
		XLabel:  xLabel,
		YLabel:  yLabel,
		Series: []chart.Series{
			{Column: column, Color: c, Marker: chart.MarkerCircle, Width: lineWidth},
		},
		Grid:   grid,
		Width:  chartWidth,
		Height: chartHeight,
		Output: output,
	}
}

func utilizationChart(dir, workload, titleSuffix string) chart.Spec {
	return chart.Spec{
		Title:   "Resource Utilization: " + titleSuffix,
		XColumn: results.ColClients,
		XLabel:  xLabel,
		YLabel:  "Utilization (%)",
		Series: []chart.Series{
			{Column: results.ColServerCPU, Label: "Server CPU (Core 1)", Color: chart.Green, Marker: chart.MarkerCircle, Width: lineWidth},
			{Column: results.ColDBCPU, Label: "DB CPU (Core 2)", Color: chart.Orange, Marker: chart.MarkerTriangle, Width: lineWidth},
			{Column: results.ColDBIOWait, Label: "DB Disk Wait", Color: chart.Black, Marker: chart.MarkerCross, Dashed: true, Width: lineWidth},
		},
		YRange: &chart.Range{Min: -5, Max: 105},
		Legend: true,
		Grid:   grid,
		Width:  chartWidth,
		Height: chartHeight,
		Output: filepath.Join(dir, workload+"_utilization.png"),
	}
}
