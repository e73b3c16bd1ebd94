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

// Command report draws the throughput, latency and utilization charts for every workload
// from the CSVs in results/.
package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/config"
	"github.com/ShreyashThok24731/cs744-project/pkg/elasticsearch"
	"github.com/ShreyashThok24731/cs744-project/pkg/junit"
	"github.com/ShreyashThok24731/cs744-project/pkg/metrics"
	"github.com/ShreyashThok24731/cs744-project/pkg/report"
	"github.com/ShreyashThok24731/cs744-project/pkg/results"
)

func main() {
	config.InitLogging()
	cfg, clients, err := config.New()
	if err != nil {
		log.WithError(err).Fatal("failed to get config")
	}

	ctx := context.Background()
	startTime := time.Now()
	log.Debug("Number of workloads: ", len(config.Workloads))
	reportResults := report.New().Run(config.Workloads)
	publish(ctx, cfg, clients, reportResults, startTime)
}

// publish sends the run's results to every configured sink. Failures here never fail the run.
func publish(ctx context.Context, cfg config.Config, clients config.Clients, reportResults []results.Result, startTime time.Time) {
	if cfg.SummaryFile != "" {
		err := results.WriteSummary(cfg.SummaryFile, reportResults)
		if err != nil {
			log.WithError(err).Error("failed to write summary file")
		}
	}

	if cfg.JUnitReportFile != "" {
		suites, err := junit.GenerateJUnitReport(reportResults, startTime)
		if err != nil {
			log.WithError(err).Error("failed to generate JUnit report")
		} else {
			err = junit.WriteJUnitReport(cfg.JUnitReportFile, suites)
			if err != nil {
				log.WithError(err).Error("failed to write JUnit report")
			}
		}
	}

	for _, r := range reportResults {
		err := elasticsearch.UploadResult(ctx, cfg, clients.WebClient, r, false)
		if err != nil {
			log.WithError(err).Errorf("failed to upload %s result to elasticsearch", r.Workload)
		}
	}

	err := metrics.PushResults(ctx, cfg.PushgatewayURL, clients.WebClient, reportResults)
	if err != nil {
		log.WithError(err).Error("failed to push metrics")
	}
}
