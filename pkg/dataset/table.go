// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// FromRecords converts a header row plus data rows into a Dataset. Cells are
// typed with ParseCell; short rows get absent values for missing columns.
func FromRecords(records [][]string) visualization.Dataset {
	if len(records) == 0 {
		return visualization.Dataset{}
	}

	header := headerNames(records[0])
	ds := make(visualization.Dataset, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blankRecord(rec) {
			continue
		}
		var row visualization.Row
		for i, name := range header {
			cell := ""
			if i < len(rec) {
				cell = rec[i]
			}
			row.Set(name, ParseCell(cell))
		}
		ds = append(ds, row)
	}
	return ds
}

// ParseCell types a text cell: blank is absent, then number, then boolean,
// otherwise string. Zero-padded integers such as postal codes stay strings.
func ParseCell(cell string) visualization.Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return visualization.Absent()
	}
	if !zeroPadded(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return visualization.Number(f)
		}
	}
	switch strings.ToLower(s) {
	case "true":
		return visualization.Bool(true)
	case "false":
		return visualization.Bool(false)
	}
	return visualization.String(s)
}

func zeroPadded(s string) bool {
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}

func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		} else {
			seen[name] = 1
		}
		names[i] = name
	}
	return names
}

func blankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
