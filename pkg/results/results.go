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

package results

import (
	"github.com/ShreyashThok24731/cs744-project/pkg/stats"
)

// Status is the outcome of charting one workload.
type Status string

// Status possible values.
const (
	StatusOK        Status = "ok"
	StatusMissing   Status = "missing"
	StatusMalformed Status = "malformed"
	StatusFailed    Status = "failed"
)

// Result represents the report generated for one workload.
type Result struct {
	Workload string                 `json:"workload" yaml:"workload"`
	Title    string                 `json:"title" yaml:"title"`
	Source   string                 `json:"source" yaml:"source"`
	Charts   []string               `json:"charts,omitempty" yaml:"charts,omitempty"`
	Summary  *stats.WorkloadSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Status   Status                 `json:"status" yaml:"status"`
	Error    string                 `json:"error,omitempty" yaml:"error,omitempty"`
}
