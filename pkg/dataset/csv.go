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
	"encoding/csv"
	"fmt"
	"io"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// ReadCSV reads comma-separated rows whose first record is the header.
func ReadCSV(r io.Reader) (visualization.Dataset, error) {
	return ReadDelimited(r, ',')
}

// ReadDelimited reads delimiter-separated rows whose first record is the header.
func ReadDelimited(r io.Reader, delimiter rune) (visualization.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return FromRecords(records), nil
}
