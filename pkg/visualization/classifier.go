// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"strings"
	"time"
)

// ColumnType is the inferred semantic kind of a column.
type ColumnType string

const (
	ColumnString  ColumnType = "string"
	ColumnNumber  ColumnType = "number"
	ColumnDate    ColumnType = "date"
	ColumnBoolean ColumnType = "boolean"
)

// classifierSampleSize is how many leading rows the classifier inspects.
const classifierSampleSize = 10

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"01/02/2006",
	"02/01/2006",
	"01/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan-2006",
	"Jan 2006",
	"January 2006",
}

// ColumnTypeClassifier infers a column's type from sampled values.
type ColumnTypeClassifier struct {
	lexicon *Lexicon
}

// NewColumnTypeClassifier creates a classifier using the lexicon's month names.
func NewColumnTypeClassifier(lexicon *Lexicon) *ColumnTypeClassifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &ColumnTypeClassifier{lexicon: lexicon}
}

// Classify returns the type of column across the first rows of ds.
// Absent values and blank strings are skipped; a column with no sampled
// values classifies as number because every check passes vacuously.
func (c *ColumnTypeClassifier) Classify(ds Dataset, column string) ColumnType {
	sample := c.sample(ds, column)

	switch {
	case all(sample, isNumericValue):
		return ColumnNumber
	case all(sample, isBooleanValue):
		return ColumnBoolean
	case all(sample, c.isDateValue):
		return ColumnDate
	default:
		return ColumnString
	}
}

func (c *ColumnTypeClassifier) sample(ds Dataset, column string) []Value {
	limit := len(ds)
	if limit > classifierSampleSize {
		limit = classifierSampleSize
	}
	out := make([]Value, 0, limit)
	for _, row := range ds[:limit] {
		v := row.Get(column)
		if v.IsAbsent() || isBlank(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func isBlank(v Value) bool {
	s, ok := v.StringOK()
	return ok && strings.TrimSpace(s) == ""
}

func all(values []Value, pred func(Value) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

func isNumericValue(v Value) bool {
	_, ok := v.NumberOK()
	return ok
}

func isBooleanValue(v Value) bool {
	_, ok := v.BoolOK()
	return ok
}

func (c *ColumnTypeClassifier) isDateValue(v Value) bool {
	s, ok := v.StringOK()
	if !ok {
		return false
	}
	if c.lexicon.ContainsMonthName(s) {
		return true
	}
	return isCalendarDate(s)
}

func isCalendarDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
