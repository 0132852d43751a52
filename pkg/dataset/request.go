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

// Package dataset turns external inputs (request bodies, JSON, CSV, XLSX
// and SQL result sets) into visualization.Dataset values.
package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// Request is the body of a chart suggestion call.
type Request struct {
	Data     visualization.Dataset `json:"data"`
	Question string                `json:"question,omitempty"`
}

// DecodeRequest validates body against the request schema and decodes it.
// Schema violations are returned as *ValidationError.
func DecodeRequest(body []byte) (*Request, error) {
	if err := ValidateRequest(body); err != nil {
		return nil, err
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &ValidationError{Errors: []string{fmt.Sprintf("invalid request body: %v", err)}}
	}
	if req.Data == nil {
		req.Data = visualization.Dataset{}
	}
	return &req, nil
}
