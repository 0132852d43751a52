// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func column(name string, values ...interface{}) Dataset {
	ds := make(Dataset, 0, len(values))
	for _, v := range values {
		ds = append(ds, NewRow(name, v))
	}
	return ds
}

func TestColumnTypeClassifier_Classify(t *testing.T) {
	c := NewColumnTypeClassifier(nil)

	tests := []struct {
		name string
		ds   Dataset
		want ColumnType
	}{
		{"numbers", column("v", 1, 2.5, 3), ColumnNumber},
		{"numeric strings", column("v", "10", " 20 ", "3.5"), ColumnNumber},
		{"booleans", column("v", true, false), ColumnBoolean},
		{"boolean strings", column("v", "true", "false"), ColumnBoolean},
		{"upper-case boolean strings", column("v", "TRUE", "False"), ColumnString},
		{"english months", column("v", "Jan", "Feb", "Mar"), ColumnDate},
		{"portuguese months", column("v", "janeiro", "fevereiro", "março"), ColumnDate},
		{"iso dates", column("v", "2024-01-01", "2024-02-01"), ColumnDate},
		{"month and year", column("v", "Jan 2024", "Feb 2024"), ColumnDate},
		{"strings", column("v", "North", "South"), ColumnString},
		{"month name inside a word", column("v", "Marketing", "Junior", "Decor"), ColumnDate},
		{"some values without a month name", column("v", "Marketing", "Sales"), ColumnString},
		{"mixed number and word", column("v", 1, "x"), ColumnString},
		{"absent skipped", column("v", nil, 4, nil), ColumnNumber},
		{"blank strings skipped", column("v", "", 5, "  ", "7"), ColumnNumber},
		{"blank strings skipped for dates", column("v", "Jan", ""), ColumnDate},
		{"mixed bool and number", column("v", true, 1), ColumnString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.ds, "v"))
		})
	}
}

// An all-absent or empty sample passes every "all values are X" check, so
// the first check (number) wins.
func TestColumnTypeClassifier_EmptySampleIsNumber(t *testing.T) {
	c := NewColumnTypeClassifier(nil)
	assert.Equal(t, ColumnNumber, c.Classify(column("v", nil, nil), "v"))
	assert.Equal(t, ColumnNumber, c.Classify(Dataset{}, "v"))
	assert.Equal(t, ColumnNumber, c.Classify(column("other", "x"), "v"))
}

func TestColumnTypeClassifier_SamplesFirstTenRows(t *testing.T) {
	values := make([]interface{}, 0, 12)
	for i := 0; i < 10; i++ {
		values = append(values, i)
	}
	values = append(values, "not a number", "still not")

	c := NewColumnTypeClassifier(nil)
	assert.Equal(t, ColumnNumber, c.Classify(column("v", values...), "v"))
}
