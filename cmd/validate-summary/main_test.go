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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShreyashThok24731/cs744-project/pkg/config"
	"github.com/ShreyashThok24731/cs744-project/pkg/results"
	"github.com/ShreyashThok24731/cs744-project/pkg/stats"
)

func writeSummary(t *testing.T, name string, peak float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := results.WriteSummary(path, []results.Result{
		{
			Workload: "get_popular",
			Title:    "CPU Bound (Cache Hits)",
			Source:   "results/get_popular_results.csv",
			Charts:   []string{"results/get_popular_throughput.png"},
			Summary:  &stats.WorkloadSummary{LoadLevels: 3, PeakThroughput: peak},
			Status:   results.StatusOK,
		},
		{
			Workload: "put_all",
			Title:    "Disk Bound (Writes)",
			Source:   "results/put_all_results.csv",
			Charts:   []string{"results/put_all_throughput.png", "results/put_all_latency.png"},
			Summary:  &stats.WorkloadSummary{LoadLevels: 5, PeakThroughput: peak / 2},
			Status:   results.StatusOK,
		},
	})
	require.NoError(t, err)
	return path
}

func TestValidate(t *testing.T) {
	ref, err := readSummary(writeSummary(t, "ref.json", 400))
	require.NoError(t, err)
	gen, err := readSummary(writeSummary(t, "gen.json", 512.5))
	require.NoError(t, err)

	assert.NoError(t, validate(ref, gen, config.Workloads))
}

func TestValidateYAMLAgainstJSON(t *testing.T) {
	ref, err := readSummary(writeSummary(t, "ref.json", 400))
	require.NoError(t, err)
	gen, err := readSummary(writeSummary(t, "gen.yaml", 512))
	require.NoError(t, err)

	assert.NoError(t, validate(ref, gen, config.Workloads))
}

func TestValidateWrongWorkloads(t *testing.T) {
	ref, err := readSummary(writeSummary(t, "ref.json", 400))
	require.NoError(t, err)

	err = validate(ref, ref[:1], config.Workloads)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "should contain 2 workloads, found 1")

	swapped := summaryFile{ref[1], ref[0]}
	err = validate(ref, swapped, config.Workloads)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0 is put_all, expected get_popular")
}

func TestValidateStructureMismatch(t *testing.T) {
	ref, err := readSummary(writeSummary(t, "ref.json", 400))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gen.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"workload": "get_popular", "title": "x", "source": "y", "status": "missing", "error": "gone"},
  {"workload": "put_all", "title": "x", "source": "y", "status": "missing", "error": "gone"}
]`), 0644))
	gen, err := readSummary(path)
	require.NoError(t, err)

	err = validate(ref, gen, config.Workloads)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "structure does not match reference")
}

func TestSummaryPaths(t *testing.T) {
	ref, gen := summaryPaths("")
	assert.Equal(t, "results/summary.json.reference", ref)
	assert.Equal(t, "results/summary.json", gen)

	ref, gen = summaryPaths("out/summary.yaml")
	assert.Equal(t, "out/summary.yaml.reference", ref)
	assert.Equal(t, "out/summary.yaml", gen)
}

func TestValidateYAMLSummaryFile(t *testing.T) {
	dir := t.TempDir()
	refPath, genPath := summaryPaths(filepath.Join(dir, "summary.yaml"))
	genFile := writeSummary(t, "summary.yaml", 512)
	data, err := os.ReadFile(genFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(refPath, data, 0644))
	require.NoError(t, os.WriteFile(genPath, data, 0644))

	ref, err := readSummary(refPath)
	require.NoError(t, err)
	gen, err := readSummary(genPath)
	require.NoError(t, err)
	require.Len(t, ref, 2)
	assert.Equal(t, "get_popular", ref[0]["workload"])
	assert.NoError(t, validate(ref, gen, config.Workloads))
}

func TestReadSummaryMissing(t *testing.T) {
	_, err := readSummary(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
