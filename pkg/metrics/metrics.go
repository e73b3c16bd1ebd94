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

// Package metrics pushes the headline numbers of a report run to a Prometheus pushgateway.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sethvargo/go-retry"
	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/results"
)

// JobName is the pushgateway job the metrics are grouped under.
const JobName = "benchmark_report"

const maxRetries = 3

// retryBase is the first Fibonacci backoff step.
var retryBase = 1 * time.Second

// Collector holds one gauge per headline number, labelled by workload.
type Collector struct {
	registry       *prometheus.Registry
	charted        *prometheus.GaugeVec
	loadLevels     *prometheus.GaugeVec
	peakThroughput *prometheus.GaugeVec
	peakClients    *prometheus.GaugeVec
	latencyAverage *prometheus.GaugeVec
}

// NewCollector registers the report gauges on a fresh registry.
func NewCollector() *Collector {
	labels := []string{"workload"}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		charted: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchmark_report_charted",
			Help: "1 if every chart for the workload was written, 0 otherwise.",
		}, labels),
		loadLevels: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchmark_report_load_levels",
			Help: "Number of load levels in the results file.",
		}, labels),
		peakThroughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchmark_report_peak_throughput",
			Help: "Highest throughput across load levels, in requests per second.",
		}, labels),
		peakClients: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchmark_report_peak_clients",
			Help: "Client count at which the peak throughput was measured.",
		}, labels),
		latencyAverage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchmark_report_latency_avg_ms",
			Help: "Mean response time across load levels, in milliseconds.",
		}, labels),
	}
	c.registry.MustRegister(c.charted, c.loadLevels, c.peakThroughput, c.peakClients, c.latencyAverage)
	return c
}

// Observe sets the gauges for one workload. Summary gauges are only set when the results file could be read.
func (c *Collector) Observe(result results.Result) {
	charted := 0.0
	if result.Status == results.StatusOK {
		charted = 1
	}
	c.charted.WithLabelValues(result.Workload).Set(charted)
	if result.Summary == nil {
		return
	}
	s := result.Summary
	c.loadLevels.WithLabelValues(result.Workload).Set(float64(s.LoadLevels))
	c.peakThroughput.WithLabelValues(result.Workload).Set(s.PeakThroughput)
	c.peakClients.WithLabelValues(result.Workload).Set(s.PeakClients)
	c.latencyAverage.WithLabelValues(result.Workload).Set(s.Latency.Average)
}

// Push sends every gauge to the pushgateway at url, replacing the job's previous metrics.
func (c *Collector) Push(ctx context.Context, url string, webClient *http.Client) error {
	pusher := push.New(url, JobName).Gatherer(c.registry)
	if webClient != nil {
		pusher = pusher.Client(webClient)
	}
	b := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(retryBase))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		err := pusher.PushContext(ctx)
		if err != nil {
			log.WithError(err).Warn("failed to push metrics, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	log.Infof("Pushed report metrics to %s", url)
	return nil
}

// PushResults observes every result and pushes them when url is set.
func PushResults(ctx context.Context, url string, webClient *http.Client, reportResults []results.Result) error {
	if url == "" {
		log.Debug("No pushgateway URL provided, skipping push")
		return nil
	}
	c := NewCollector()
	for _, r := range reportResults {
		c.Observe(r)
	}
	return c.Push(ctx, url, webClient)
}
