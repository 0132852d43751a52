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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// Source describes where a dataset comes from. A non-empty Query selects
// the SQL path; otherwise Path is read as a file ("-" is stdin).
type Source struct {
	Path   string
	Format Format
	Sheet  string

	Driver string
	DSN    string
	Query  string
}

// Name is a short label for reports and logs.
func (s Source) Name() string {
	if s.Query != "" {
		return s.Driver + " query"
	}
	if s.Path == "-" || s.Path == "" {
		return "stdin"
	}
	return filepath.Base(s.Path)
}

// Load reads the dataset described by src.
func Load(ctx context.Context, src Source, stdin io.Reader) (visualization.Dataset, error) {
	if src.Query != "" {
		if src.DSN == "" {
			return nil, fmt.Errorf("a DSN is required for SQL sources")
		}
		return Query(ctx, src.Driver, src.DSN, src.Query)
	}

	format := src.Format
	if format == "" {
		format = DetectFormat(src.Path)
	}

	if src.Path == "" || src.Path == "-" {
		if format == FormatXLSX {
			return ReadXLSXFrom(stdin, src.Sheet)
		}
		return readStream(stdin, format)
	}

	if format == FormatXLSX {
		return ReadXLSX(src.Path, src.Sheet)
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", src.Path, err)
	}
	defer func() { _ = f.Close() }()
	return readStream(f, format)
}

// DetectFormat picks a format from the file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".tsv", ".tab":
		return FormatTSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatJSON
	}
}

func readStream(r io.Reader, format Format) (visualization.Dataset, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatTSV:
		return ReadDelimited(r, '\t')
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}
