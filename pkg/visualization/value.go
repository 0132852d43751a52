// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the scalar held by a Value.
type ValueKind uint8

const (
	KindAbsent ValueKind = iota
	KindString
	KindNumber
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "absent"
	}
}

// Value is a single cell of a dataset row. The zero Value is absent.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

// Absent returns a Value with no content (JSON null or a missing key).
func Absent() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// ValueOf converts a decoded Go scalar into a Value. Unsupported types
// (nested objects, arrays) are kept as their fmt string form.
func ValueOf(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Absent()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return String(x.String())
	case []byte:
		return String(string(x))
	default:
		return String(fmt.Sprintf("%v", x))
	}
}

// Kind reports which scalar the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value is null/missing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the display form used for grouping and labels.
// Absent values render as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// NumberOK returns the numeric reading of the value: numbers as is,
// numeric strings parsed. Booleans and absent values are not numeric.
func (v Value) NumberOK() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		return parseNumber(v.str)
	default:
		return 0, false
	}
}

// Float returns the numeric reading of the value, coercing anything
// non-numeric to 0.
func (v Value) Float() float64 {
	f, ok := v.NumberOK()
	if !ok {
		return 0
	}
	return f
}

// BoolOK returns the boolean reading of the value: booleans as is and the
// literal strings "true"/"false".
func (v Value) BoolOK() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindString:
		switch v.str {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// StringOK returns the raw string when the value is a string.
func (v Value) StringOK() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Interface returns the plain Go form (nil, string, float64, bool).
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// MarshalJSON encodes the value as the matching JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber && (math.IsNaN(v.num) || math.IsInf(v.num, 0)) {
		return []byte("null"), nil
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON scalar. Objects and arrays are kept as their
// compact JSON text.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch raw.(type) {
	case map[string]interface{}, []interface{}:
		*v = String(strings.TrimSpace(string(data)))
	default:
		*v = ValueOf(raw)
	}
	return nil
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
