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
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidPayload is matched by every *ValidationError.
var ErrInvalidPayload = errors.New("invalid payload")

// RequestSchema describes the accepted request body. Rows are objects; any
// scalar is allowed as a cell value.
const RequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "data": {
      "type": "array",
      "items": {"type": "object"}
    },
    "question": {"type": ["string", "null"]}
  },
  "required": ["data"]
}`

// ValidationError lists every schema violation found in a payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// Unwrap lets callers test with errors.Is(err, ErrInvalidPayload).
func (e *ValidationError) Unwrap() error { return ErrInvalidPayload }

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func requestSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(RequestSchema))
	})
	return compiledSchema, schemaErr
}

// ValidateRequest checks body against RequestSchema.
func ValidateRequest(body []byte) error {
	schema, err := requestSchema()
	if err != nil {
		return fmt.Errorf("failed to compile request schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// malformed JSON surfaces here rather than as a result error
		return &ValidationError{Errors: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}

	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &ValidationError{Errors: errs}
	}
	return nil
}
