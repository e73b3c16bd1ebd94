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

// Command popular-charts draws popular_throughput_latency.png and popular_cpu.png from
// get_popular_results.csv in the current directory.
package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/adhoc"
	"github.com/ShreyashThok24731/cs744-project/pkg/config"
)

func main() {
	config.InitLogging()
	err := adhoc.PopularCharts(".")
	if err != nil {
		log.WithError(err).Fatal("failed to draw get_popular charts")
	}
}
