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

package config

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWebclient(t *testing.T) {
	cfg := Config{
		ProxyAddress: "localhost:1080",
	}
	client, err := createWebclient(cfg)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("SUMMARY_FILE", "results/summary.json")

	var cfg Config
	err := envconfig.Process("report", &cfg)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "results/summary.json", cfg.SummaryFile)
	assert.Equal(t, "", cfg.JUnitReportFile)
	assert.Equal(t, "elastic", cfg.ESUser)
	assert.Equal(t, "", cfg.PushgatewayURL)
}

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PUSHGATEWAY_URL", "http://pushgateway:9091")
	t.Setenv("JUNIT_REPORT_FILE", "/tmp/junit.xml")
	cfg, clients, err := New()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://pushgateway:9091", cfg.PushgatewayURL)
	assert.Equal(t, "/tmp/junit.xml", cfg.JUnitReportFile)
	assert.NotNil(t, clients.WebClient)
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, _, err := New()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field validation for 'LogLevel' failed on the 'oneof' tag")
}

func TestInvalidPushgatewayURL(t *testing.T) {
	cfg := Config{LogLevel: "info", PushgatewayURL: "not a url"}
	err := defaultAndValidate(&cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field validation for 'PushgatewayURL' failed on the 'url' tag")
}

func TestDefaultLogLevel(t *testing.T) {
	cfg := Config{}
	err := defaultAndValidate(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestWorkloads(t *testing.T) {
	require.Len(t, Workloads, 2)
	assert.Equal(t, Workload{Name: "get_popular", Title: "CPU Bound (Cache Hits)"}, Workloads[0])
	assert.Equal(t, Workload{Name: "put_all", Title: "Disk Bound (Writes)"}, Workloads[1])
	assert.NoError(t, ValidateWorkloads(Workloads))
}

func TestValidateWorkloads(t *testing.T) {
	tests := []struct {
		name      string
		workloads []Workload
		errText   string
	}{
		{
			name:      "empty list",
			workloads: nil,
			errText:   "no workloads configured",
		},
		{
			name:      "missing title",
			workloads: []Workload{{Name: "get_all"}},
			errText:   "Field validation for 'Title' failed on the 'required' tag",
		},
		{
			name:      "path separator in name",
			workloads: []Workload{{Name: "../get_all", Title: "x"}},
			errText:   "Field validation for 'Name' failed on the 'excludesall' tag",
		},
		{
			name: "duplicate name",
			workloads: []Workload{
				{Name: "mixed", Title: "Mixed"},
				{Name: "mixed", Title: "Mixed again"},
			},
			errText: `duplicate workload "mixed"`,
		},
		{
			name:      "valid",
			workloads: []Workload{{Name: "get_all", Title: "Cache Misses"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWorkloads(tt.workloads)
			if tt.errText == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}
