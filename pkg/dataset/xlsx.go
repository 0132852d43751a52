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
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// ReadXLSX reads one worksheet of an Excel file. An empty sheet name selects
// the active sheet.
func ReadXLSX(path, sheet string) (visualization.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readWorkbook(f, sheet)
}

// ReadXLSXFrom is ReadXLSX over an in-memory workbook.
func ReadXLSXFrom(r io.Reader, sheet string) (visualization.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (visualization.Dataset, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found (available: %v)", sheet, f.GetSheetList())
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return FromRecords(rows), nil
}
