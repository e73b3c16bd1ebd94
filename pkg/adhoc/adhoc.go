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

// Package adhoc draws the quick look charts for a single results CSV sitting in a working directory.
// Unlike the report generator nothing is recovered: the first error is returned.
package adhoc

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/chart"
	"github.com/ShreyashThok24731/cs744-project/pkg/results"
)

// Input and output file names, relative to the working directory.
const (
	PopularInput           = "get_popular_results.csv"
	PopularThroughputChart = "popular_throughput_latency.png"
	PopularCPUChart        = "popular_cpu.png"
	PutInput               = "put_all_results.csv"
	PutThroughputChart     = "put_throughput_latency.png"
)

const (
	xLabel      = "Number of Clients"
	chartWidth  = 10
	chartHeight = 6
)

var grid = chart.Grid{Show: true}

// PopularCharts draws the throughput/latency and CPU charts for the get_popular workload.
// The CPU chart is drawn second, so a table without CPU_Utilisation(%) still leaves the
// throughput/latency chart on disk.
func PopularCharts(dir string) error {
	log.Debug("Entering PopularCharts function")
	table, err := results.LoadTable(filepath.Join(dir, PopularInput))
	if err != nil {
		return err
	}
	for _, spec := range popularSpecs(dir) {
		err = chart.Render(table, spec)
		if err != nil {
			return err
		}
	}
	return nil
}

// PutCharts draws the throughput/latency chart for the put_all workload.
func PutCharts(dir string) error {
	log.Debug("Entering PutCharts function")
	table, err := results.LoadTable(filepath.Join(dir, PutInput))
	if err != nil {
		return err
	}
	return chart.Render(table, putSpec(dir))
}

func popularSpecs(dir string) []chart.Spec {
	return []chart.Spec{
		throughputLatency(
			"Throughput & Latency vs Number of Clients", "Throughput (ops/sec)",
			filepath.Join(dir, PopularThroughputChart),
		),
		{
			Title:   "CPU Utilization vs Number of Clients",
			XColumn: results.ColClients,
			XLabel:  xLabel,
			YLabel:  "CPU Utilization (%)",
			Series: []chart.Series{
				{Column: results.ColCPUUtilisation, Color: chart.TabBlue, Marker: chart.MarkerCircle},
			},
			Grid:   grid,
			Width:  chartWidth,
			Height: chartHeight,
			Output: filepath.Join(dir, PopularCPUChart),
		},
	}
}

func putSpec(dir string) chart.Spec {
	return throughputLatency(
		"Throughput and Latency vs Number of Clients", "Throughput",
		filepath.Join(dir, PutThroughputChart),
	)
}

// throughputLatency is the dual axis chart both workloads share: throughput on the left, latency on the right.
func throughputLatency(title, throughputLabel, output string) chart.Spec {
	return chart.Spec{
		Title:           title,
		XColumn:         results.ColClients,
		XLabel:          xLabel,
		YLabel:          throughputLabel,
		SecondaryYLabel: "Latency (ms)",
		Series: []chart.Series{
			{Column: results.ColThroughput, Color: chart.Blue, Marker: chart.MarkerCircle},
			{Column: results.ColResponseTime, Color: chart.Red, Marker: chart.MarkerSquare, Axis: chart.Secondary},
		},
		Grid:   grid,
		Width:  chartWidth,
		Height: chartHeight,
		Output: output,
	}
}
