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
	"fmt"
	"net/http"
	"path"
	"runtime"
	"strconv"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

var validate *validator.Validate

// Config represents the global configuration for report generation.
// Nothing in here changes which charts are drawn or where they are saved;
// it only controls logging and the optional places a run summary is sent.
type Config struct {
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=panic fatal error warn warning info debug trace"`
	SummaryFile     string `envconfig:"SUMMARY_FILE" default:""`
	JUnitReportFile string `envconfig:"JUNIT_REPORT_FILE" default:""`
	ESUrl           string `envconfig:"ELASTICSEARCH_URL" default:"" validate:"omitempty,url"`
	ESUser          string `envconfig:"ELASTICSEARCH_USER" default:"elastic"`
	ESPassword      string `envconfig:"ELASTICSEARCH_TOKEN" default:""`
	ESAPIKey        string `envconfig:"ELASTICSEARCH_KEY" default:""`
	PushgatewayURL  string `envconfig:"PUSHGATEWAY_URL" default:"" validate:"omitempty,url"`
	ProxyAddress    string `envconfig:"HTTP_PROXY" default:""`
}

// Clients holds the clients used to talk to things
type Clients struct {
	WebClient *http.Client
}

// Workload is a named benchmark scenario and the label used in its chart titles.
type Workload struct {
	Name  string `validate:"required,printascii,excludesall=/\\"`
	Title string `validate:"required"`
}

// Workloads are the scenarios charted by the report generator, in order.
var Workloads = []Workload{
	{Name: "get_popular", Title: "CPU Bound (Cache Hits)"},
	{Name: "put_all", Title: "Disk Bound (Writes)"},
}

// InitLogging sets up the logrus formatter shared by every binary.
func InitLogging() {
	log.SetReportCaller(true)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			fileName := path.Base(frame.File) + ":" + strconv.Itoa(frame.Line)
			return "", fileName
		},
	})
}

// New returns a new instance of Config.
func New() (Config, Clients, error) {
	// get environment variables
	var config Config
	var clients Clients
	err := envconfig.Process("report", &config)
	if err != nil {
		return config, clients, err
	}

	err = defaultAndValidate(&config)
	if err != nil {
		return config, clients, err
	}

	loglevel, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return config, clients, fmt.Errorf("failed to parse log level: %w", err)
	}
	log.SetLevel(loglevel)
	log.Debugf("Config: %+v", config)

	clients.WebClient, err = createWebclient(config)
	if err != nil {
		return config, clients, fmt.Errorf("failed to create web client")
	}

	return config, clients, nil
}

func defaultAndValidate(cfg *Config) error {
	log.Debug("Entering defaultAndValidate")
	validate = validator.New(validator.WithRequiredStructEnabled())

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	err := validate.Struct(cfg)
	if err != nil {
		return err
	}
	if cfg.ESUrl != "" && cfg.ESAPIKey == "" && cfg.ESPassword == "" {
		log.Warn("ELASTICSEARCH_URL is set without credentials, results will not be uploaded")
	}
	return ValidateWorkloads(Workloads)
}

// ValidateWorkloads checks that every workload has a usable name and title, and that names are unique.
func ValidateWorkloads(workloads []Workload) error {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	if len(workloads) == 0 {
		return fmt.Errorf("no workloads configured")
	}
	seen := map[string]bool{}
	for _, w := range workloads {
		err := validate.Struct(w)
		if err != nil {
			return err
		}
		if seen[w.Name] {
			return fmt.Errorf("duplicate workload %q", w.Name)
		}
		seen[w.Name] = true
	}
	return nil
}

func createWebclient(config Config) (*http.Client, error) {
	var err error
	client := &http.Client{
		Transport: &http.Transport{},
		Timeout:   30 * time.Second,
	}
	if config.ProxyAddress != "" {
		// setup socks5 proxy
		dialer, err := proxy.SOCKS5("tcp", config.ProxyAddress, nil, proxy.Direct)
		if err != nil {
			return client, fmt.Errorf("failed to create proxy dialer")
		}
		client = &http.Client{
			Transport: &http.Transport{
				Dial: dialer.Dial,
			},
			Timeout: 30 * time.Second,
		}
	}
	return client, err
}
