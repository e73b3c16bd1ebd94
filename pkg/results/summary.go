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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/ShreyashThok24731/cs744-project/pkg/utils"
)

// WriteSummary writes the results of a run to filename, as YAML if the name ends in .yaml or .yml
// and as indented JSON otherwise.
func WriteSummary(filename string, results []Result) (err error) {
	log.Debug("entering WriteSummary function")
	var output []byte
	if utils.IsYAMLPath(filename) {
		output, err = yaml.Marshal(results)
	} else {
		output, err = json.MarshalIndent(results, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal results: %s", err)
	}

	err = os.MkdirAll(filepath.Dir(filename), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filename, err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to open output file: %s", filename)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failure while closing output file: %s", closeErr)
		}
	}()
	_, err = file.Write(output)
	if err != nil {
		return fmt.Errorf("failed to write results to file: %s", err)
	}
	log.Infof("Wrote summary of %d workloads to %s", len(results), filename)
	return nil
}
