// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is one record of a dataset: an ordered mapping from column name to value.
type Row struct {
	keys   []string
	values map[string]Value
}

// NewRow builds a row from alternating key/value pairs, keeping key order.
// Values are converted with ValueOf.
func NewRow(kv ...interface{}) Row {
	r := Row{values: make(map[string]Value, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kv[i])
		}
		r.Set(key, ValueOf(kv[i+1]))
	}
	return r
}

// RowFromMap builds a row from a map using the given column order. Columns
// listed but missing from the map are stored as absent.
func RowFromMap(columns []string, m map[string]interface{}) Row {
	r := Row{values: make(map[string]Value, len(columns))}
	for _, c := range columns {
		r.Set(c, ValueOf(m[c]))
	}
	return r
}

// Set assigns a column value, appending the column if new.
func (r *Row) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the column value; missing columns are absent.
func (r Row) Get(key string) Value {
	return r.values[key]
}

// Keys returns the column names in insertion order.
func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of columns in the row.
func (r Row) Len() int { return len(r.keys) }

// MarshalJSON encodes the row as a JSON object in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := r.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("row must be a JSON object")
	}

	*r = Row{values: make(map[string]Value)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected row key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode column %q: %w", key, err)
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("failed to decode column %q: %w", key, err)
		}
		r.Set(key, v)
	}
	_, err = dec.Token()
	return err
}

// Dataset is an ordered sequence of rows. It may be empty.
type Dataset []Row

// Columns returns the first row's keys, or nil for an empty dataset.
func (ds Dataset) Columns() []string {
	if len(ds) == 0 {
		return nil
	}
	return ds[0].Keys()
}

// DatasetFromMaps converts decoded rows (for example from a SQL scan) into a
// Dataset using a fixed column order.
func DatasetFromMaps(columns []string, rows []map[string]interface{}) Dataset {
	ds := make(Dataset, 0, len(rows))
	for _, m := range rows {
		ds = append(ds, RowFromMap(columns, m))
	}
	return ds
}
