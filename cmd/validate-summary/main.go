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

// Command validate-summary checks the run summary written by the report command (SUMMARY_FILE,
// results/summary.json when unset) against <summary>.reference: one entry per configured
// workload, in order, with the same shape. Files ending in .yaml or .yml are read as YAML.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/ShreyashThok24731/cs744-project/pkg/config"
	"github.com/ShreyashThok24731/cs744-project/pkg/utils"
)

const (
	defaultSummaryFile = "results/summary.json"
	referenceSuffix    = ".reference"
)

type summaryFile []map[string]interface{}

func main() {
	config.InitLogging()
	cfg, _, err := config.New()
	if err != nil {
		log.WithError(err).Fatal("failed to get config")
	}
	refPath, genPath := summaryPaths(cfg.SummaryFile)
	ref, err := readSummary(refPath)
	if err != nil {
		log.WithError(err).Fatal("reference file error")
	}
	gen, err := readSummary(genPath)
	if err != nil {
		log.WithError(err).Fatal("generated file error")
	}
	err = validate(ref, gen, config.Workloads)
	if err != nil {
		log.WithError(err).Fatalf("%s is not valid", genPath)
	}
	fmt.Printf("%s is valid and matches reference structure.\n", genPath)
}

// summaryPaths returns the reference and generated summary paths for a SUMMARY_FILE setting.
func summaryPaths(summaryFile string) (string, string) {
	if summaryFile == "" {
		summaryFile = defaultSummaryFile
	}
	return summaryFile + referenceSuffix, summaryFile
}

func readSummary(path string) (summaryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var summary summaryFile
	if utils.IsYAMLPath(strings.TrimSuffix(path, referenceSuffix)) {
		var raw []map[interface{}]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		for _, entry := range raw {
			summary = append(summary, stringKeys(entry))
		}
		return summary, nil
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// stringKeys converts the map[interface{}]interface{} yaml.v2 produces into the JSON shape.
func stringKeys(m map[interface{}]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = convertYAML(v)
	}
	return out
}

func convertYAML(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		return stringKeys(t)
	case []interface{}:
		for i := range t {
			t[i] = convertYAML(t[i])
		}
		return t
	case int:
		return float64(t)
	default:
		return v
	}
}

func validate(ref, gen summaryFile, workloads []config.Workload) error {
	if len(gen) != len(workloads) {
		return fmt.Errorf("summary should contain %d workloads, found %d", len(workloads), len(gen))
	}
	for i, w := range workloads {
		if gen[i]["workload"] != w.Name {
			return fmt.Errorf("entry %d is %v, expected %s", i, gen[i]["workload"], w.Name)
		}
	}
	if !similarStructure(ref, gen) {
		return fmt.Errorf("structure does not match reference")
	}
	return nil
}

func similarStructure(a, b summaryFile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareTypes(a[i], b[i]) {
			return false
		}
	}
	return true
}

func compareTypes(a, b map[string]interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		if !sameType(va, vb) {
			return false
		}
	}
	return true
}

func sameType(a, b interface{}) bool {
	ta := reflect.TypeOf(a)
	tb := reflect.TypeOf(b)
	if ta == nil || tb == nil {
		return ta == tb
	}
	if ta.Kind() != tb.Kind() {
		return false
	}
	switch ta.Kind() {
	case reflect.Map:
		ma, ok1 := a.(map[string]interface{})
		mb, ok2 := b.(map[string]interface{})
		if !ok1 || !ok2 {
			return false
		}
		return compareTypes(ma, mb)
	case reflect.Slice:
		sa, ok1 := a.([]interface{})
		sb, ok2 := b.([]interface{})
		if !ok1 || !ok2 {
			return false
		}
		// chart lists differ in length between runs, so only element types are compared
		if len(sa) > 0 && len(sb) > 0 {
			return sameType(sa[0], sb[0])
		}
		return true
	default:
		return true
	}
}
