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

package junit

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/results"
	"github.com/ShreyashThok24731/cs744-project/pkg/stats"
	"github.com/ShreyashThok24731/cs744-project/pkg/utils"
)

// SuiteName is the name of the single suite in the report.
const SuiteName = "report"

// JUnitTestSuites represents the top-level JUnit XML structure
type JUnitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite represents a test suite
type JUnitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Time      float64         `xml:"time,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase represents a single test case
type JUnitTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

// JUnitFailure represents a test failure
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// JUnitError represents a test error
type JUnitError struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// GenerateJUnitReport creates a JUnit XML report with one test case per charted workload.
// A workload with no usable results file is a failure; one whose charts could not all be drawn is an error.
func GenerateJUnitReport(reportResults []results.Result, startTime time.Time) (JUnitTestSuites, error) {
	if len(reportResults) == 0 {
		return JUnitTestSuites{}, fmt.Errorf("no results to report")
	}
	suite := JUnitTestSuite{
		Name:      SuiteName,
		Timestamp: startTime.Format(time.RFC3339),
		Time:      time.Since(startTime).Seconds(),
		TestCases: []JUnitTestCase{},
	}

	for _, result := range reportResults {
		testCase := createTestCase(result)
		suite.TestCases = append(suite.TestCases, testCase)
		suite.Tests++

		if testCase.Failure != nil {
			suite.Failures++
		}
		if testCase.Error != nil {
			suite.Errors++
		}
	}

	return JUnitTestSuites{Suites: []JUnitTestSuite{suite}}, nil
}

// createTestCase converts a workload result to a JUnit test case
func createTestCase(result results.Result) JUnitTestCase {
	tc := JUnitTestCase{
		Name:      utils.SanitizeString(result.Workload),
		Classname: fmt.Sprintf("%s.%s", SuiteName, utils.SanitizeString(result.Workload)),
		SystemOut: buildSystemOutput(result),
	}

	switch result.Status {
	case results.StatusOK:
	case results.StatusFailed:
		tc.Error = &JUnitError{
			Message: "Charts incomplete",
			Type:    "RenderError",
			Content: result.Error,
		}
	default:
		msg := failureMessage(result)
		tc.Failure = &JUnitFailure{
			Message: msg,
			Type:    "TestFailure",
			Content: result.Error,
		}
	}

	return tc
}

func failureMessage(result results.Result) string {
	switch result.Status {
	case results.StatusMissing:
		return fmt.Sprintf("No results file at %s", result.Source)
	case results.StatusMalformed:
		return fmt.Sprintf("Could not read %s", result.Source)
	default:
		return fmt.Sprintf("Unknown status %q", result.Status)
	}
}

// buildSystemOutput lists the charts written and the headline numbers
func buildSystemOutput(result results.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workload: %s\n", result.Workload)
	fmt.Fprintf(&b, "Title: %s\n", result.Title)
	fmt.Fprintf(&b, "Source: %s\n", result.Source)
	fmt.Fprintf(&b, "Status: %s\n", result.Status)
	if len(result.Charts) > 0 {
		b.WriteString("Charts:\n")
		for _, c := range result.Charts {
			fmt.Fprintf(&b, "  %s\n", c)
		}
	}
	if result.Summary != nil {
		s := result.Summary
		fmt.Fprintf(&b, "Load levels: %d (max clients %.0f)\n", s.LoadLevels, s.MaxClients)
		fmt.Fprintf(&b, "Peak throughput: %.2f at %.0f clients (latency %.2f ms)\n", s.PeakThroughput, s.PeakClients, s.LatencyAtPeak)
		appendStatsSummary(&b, "Throughput", s.Throughput)
		appendStatsSummary(&b, "Latency", s.Latency)
	}
	return b.String()
}

func appendStatsSummary(b *strings.Builder, label string, summary stats.ResultSummary) {
	if summary.NumDataPoints == 0 {
		return
	}
	unit := summary.Unit
	if unit != "" {
		unit = " " + unit
	}
	fmt.Fprintf(b, "%s: avg=%.2f%s (min=%.2f, max=%.2f, p50=%.2f, p90=%.2f, p99=%.2f, n=%d)\n",
		label,
		summary.Average,
		unit,
		summary.Min,
		summary.Max,
		summary.P50,
		summary.P90,
		summary.P99,
		summary.NumDataPoints,
	)
}

// WriteJUnitReport writes the JUnit XML report to a file
func WriteJUnitReport(filename string, suites JUnitTestSuites) error {
	log.Infof("Writing JUnit report to %s", filename)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create JUnit report file: %w", err)
	}
	defer file.Close()

	_, err = file.WriteString(xml.Header)
	if err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}

	encoder := xml.NewEncoder(file)
	encoder.Indent("", "  ")
	err = encoder.Encode(suites)
	if err != nil {
		return fmt.Errorf("failed to encode JUnit XML: %w", err)
	}

	return nil
}
