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
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// ReadJSON reads either a bare array of row objects or a request envelope
// ({"data": [...]}) and returns its rows.
func ReadJSON(r io.Reader) (visualization.Dataset, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON input: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty JSON input")
	}

	switch trimmed[0] {
	case '[':
		var ds visualization.Dataset
		if err := json.Unmarshal(trimmed, &ds); err != nil {
			return nil, fmt.Errorf("failed to decode rows: %w", err)
		}
		if ds == nil {
			ds = visualization.Dataset{}
		}
		return ds, nil
	case '{':
		req, err := DecodeRequest(trimmed)
		if err != nil {
			return nil, err
		}
		return req.Data, nil
	default:
		return nil, fmt.Errorf("JSON input must be an array of rows or an object with a data array")
	}
}
