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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Column names written by the load generator.
const (
	ColClients        = "Clients"
	ColThroughput     = "Throughput"
	ColResponseTime   = "ResponseTime(ms)"
	ColServerCPU      = "Server_CPU(%)"
	ColDBCPU          = "DB_CPU(%)"
	ColDBIOWait       = "DB_IOWait(%)"
	ColCPUUtilisation = "CPU_Utilisation(%)"
	utf8BOM           = "\ufeff"
)

var (
	// ErrMissingFile is returned when the results CSV does not exist.
	ErrMissingFile = errors.New("results file not found")
	// ErrMalformedCSV is returned when the results CSV cannot be parsed as a table of numbers.
	ErrMalformedCSV = errors.New("malformed results file")
	// ErrMissingColumn is returned when a chart asks for a column the table does not have.
	ErrMissingColumn = errors.New("missing column")
)

// Table is a benchmark result table: one row per load level, in file order.
// It is never modified after loading.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]float64
	Source string
}

// LoadTable reads a results CSV with a header row into a Table.
func LoadTable(path string) (*Table, error) {
	log.Debug("Entering LoadTable function")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, err
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return nil, err
	}
	t.Source = path
	log.Debugf("Loaded %d rows and %d columns from %s", t.Len(), len(t.header), path)
	return t, nil
}

// ParseTable parses CSV data with a header row into a Table.
// Blank cells and cells missing from short rows read as NaN; rows longer than the header are malformed.
func ParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedCSV)
	}

	t := &Table{index: map[string]int{}}
	for i, name := range records[0] {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty name for column %d", ErrMalformedCSV, i+1)
		}
		if _, ok := t.index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformedCSV, name)
		}
		t.index[name] = i
		t.header = append(t.header, name)
	}

	for n, record := range records[1:] {
		if len(record) > len(t.header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformedCSV, n+2, len(record), len(t.header))
		}
		row := make([]float64, len(t.header))
		for i := range row {
			row[i] = math.NaN()
		}
		for i, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %q: %s", ErrMalformedCSV, n+2, t.header[i], err)
			}
			row[i] = v
		}
		t.rows = append(t.rows, row)
	}
	if len(t.rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrMalformedCSV)
	}
	return t, nil
}

// Len returns the number of rows (load levels) in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Header returns the column names in file order.
func (t *Table) Header() []string {
	return slices.Clone(t.header)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column's values in row order. Missing values are NaN.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	values := make([]float64, len(t.rows))
	for r, row := range t.rows {
		values[r] = row[i]
	}
	return values, nil
}
