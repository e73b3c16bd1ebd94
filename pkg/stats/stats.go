// Copyright (c) 2024-2026 Tigera, Inc. All rights reserved.

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

package stats

import (
	"fmt"
	"math"
	"slices"

	log "github.com/sirupsen/logrus"
)

// ResultSummary holds a statistical summary of a set of results
type ResultSummary struct {
	Min           float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max           float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Average       float64 `json:"avg,omitempty" yaml:"avg,omitempty"`
	P50           float64 `json:"P50,omitempty" yaml:"P50,omitempty"`
	P75           float64 `json:"P75,omitempty" yaml:"P75,omitempty"`
	P90           float64 `json:"P90,omitempty" yaml:"P90,omitempty"`
	P99           float64 `json:"P99,omitempty" yaml:"P99,omitempty"`
	Unit          string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	NumDataPoints int     `json:"datapoints,omitempty" yaml:"datapoints,omitempty"`
}

// WorkloadSummary describes one workload's results across all load levels.
type WorkloadSummary struct {
	LoadLevels     int           `json:"loadLevels" yaml:"loadLevels"`
	MaxClients     float64       `json:"maxClients" yaml:"maxClients"`
	Throughput     ResultSummary `json:"throughput" yaml:"throughput"`
	Latency        ResultSummary `json:"latency" yaml:"latency"`
	PeakThroughput float64       `json:"peakThroughput" yaml:"peakThroughput"`
	PeakClients    float64       `json:"peakClients" yaml:"peakClients"`
	LatencyAtPeak  float64       `json:"latencyAtPeak" yaml:"latencyAtPeak"`
}

// SummarizeResults summarizes the results
func SummarizeResults(results []float64) (ResultSummary, error) {
	log.Debug("Entering summarizeResults function")
	var err error
	summary := ResultSummary{}
	summary.NumDataPoints = len(results)
	if len(results) == 0 {
		log.Warning("No results to summarize")
		return summary, fmt.Errorf("no results to summarize")
	}
	summary.Min = slices.Min(results)
	summary.Max = slices.Max(results)
	summary.Average, err = average(results)
	if err != nil {
		log.WithError(err).Warning("Error summarizing stats")
		return summary, err
	}
	summary.P50, summary.P75, summary.P90, summary.P99, err = getPercentiles(results)
	if err != nil {
		log.WithError(err).Warning("Error summarizing stats")
		return summary, err
	}
	log.Debugf("Summary: %+v", summary)
	return summary, nil
}

// Summarize builds a WorkloadSummary from the Clients, Throughput and ResponseTime columns of a result table.
// Rows missing any of the three values (NaN) are left out. The peak is the first row with the highest throughput.
func Summarize(clients, throughput, latency []float64) (WorkloadSummary, error) {
	log.Debug("Entering Summarize function")
	var err error
	summary := WorkloadSummary{}
	if len(clients) != len(throughput) || len(clients) != len(latency) {
		return summary, fmt.Errorf("column lengths differ: clients=%d throughput=%d latency=%d", len(clients), len(throughput), len(latency))
	}
	clients, throughput, latency = completeRows(clients, throughput, latency)
	if len(clients) == 0 {
		return summary, fmt.Errorf("no results to summarize")
	}
	summary.LoadLevels = len(clients)
	summary.MaxClients = slices.Max(clients)

	summary.Throughput, err = SummarizeResults(throughput)
	if err != nil {
		return summary, err
	}
	summary.Throughput.Unit = "req/sec"
	summary.Latency, err = SummarizeResults(latency)
	if err != nil {
		return summary, err
	}
	summary.Latency.Unit = "ms"

	peak := 0
	for i := range throughput {
		if throughput[i] > throughput[peak] {
			peak = i
		}
	}
	summary.PeakThroughput = throughput[peak]
	summary.PeakClients = clients[peak]
	summary.LatencyAtPeak = latency[peak]
	log.Debugf("Workload summary: %+v", summary)
	return summary, nil
}

func completeRows(clients, throughput, latency []float64) ([]float64, []float64, []float64) {
	var c, t, l []float64
	for i := range clients {
		if math.IsNaN(clients[i]) || math.IsNaN(throughput[i]) || math.IsNaN(latency[i]) {
			log.Debugf("Skipping incomplete row %d", i+1)
			continue
		}
		c = append(c, clients[i])
		t = append(t, throughput[i])
		l = append(l, latency[i])
	}
	return c, t, l
}

func average(results []float64) (float64, error) {
	length := len(results)
	if length == 0 {
		return 0, fmt.Errorf("no results to average")
	}
	sum := float64(0)
	for i := 0; i < length; i++ {
		sum += results[i]
	}
	return sum / float64(length), nil
}

// getPercentiles sorts a copy, so callers keep their row order.
func getPercentiles(results []float64) (float64, float64, float64, float64, error) {
	log.Debug("Entering getPercentiles function")
	length := len(results)
	if length == 0 {
		return 0, 0, 0, 0, fmt.Errorf("no results to get percentiles from")
	}
	sorted := slices.Clone(results)
	slices.Sort(sorted)

	return getPercentile(sorted, 50), getPercentile(sorted, 75), getPercentile(sorted, 90), getPercentile(sorted, 99), nil
}

// getPercentile returns the percentile based on the nearest rank method.  It assumes the input slice is already sorted into ascending order.
func getPercentile(sortedresults []float64, percent float64) float64 {
	log.Debug("Entering getPercentile function")
	log.Debug("    sortedresults: ", sortedresults)
	length := len(sortedresults)

	if percent < 0 || percent > 100 {
		return math.NaN()
	}

	pos := int(math.Ceil(float64(length) * percent / 100))
	log.Debug("    pos: ", pos)

	if pos == 0 {
		return sortedresults[0]
	}
	return sortedresults[pos-1]
}
