// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regionSales() Dataset {
	return Dataset{
		NewRow("region", "North", "total", 10),
		NewRow("region", "South", "total", 12),
	}
}

func monthlySales() Dataset {
	return Dataset{
		NewRow("month", "Jan", "total", 100),
		NewRow("month", "Feb", "total", 120),
		NewRow("month", "Mar", "total", 90),
	}
}

func TestDataStructureAnalyzer_Analyze(t *testing.T) {
	a := NewDataStructureAnalyzer(nil)

	tests := []struct {
		name string
		ds   Dataset
		want DataStructure
	}{
		{
			name: "categories with geography",
			ds:   regionSales(),
			want: DataStructure{
				HasCategories:     true,
				HasGeographicData: true,
				Columns:           []string{"region", "total"},
				ColumnTypes:       map[string]ColumnType{"region": ColumnString, "total": ColumnNumber},
				RowCount:          2,
				ColumnCount:       2,
			},
		},
		{
			name: "time series",
			ds:   monthlySales(),
			want: DataStructure{
				HasTimeSeries: true,
				Columns:       []string{"month", "total"},
				ColumnTypes:   map[string]ColumnType{"month": ColumnDate, "total": ColumnNumber},
				RowCount:      3,
				ColumnCount:   2,
			},
		},
		{
			name: "numeric comparison",
			ds: Dataset{
				NewRow("price", 1.5, "volume", 10),
				NewRow("price", 2.5, "volume", 7),
			},
			want: DataStructure{
				HasNumericalComparison: true,
				Columns:                []string{"price", "volume"},
				ColumnTypes:            map[string]ColumnType{"price": ColumnNumber, "volume": ColumnNumber},
				RowCount:               2,
				ColumnCount:            2,
			},
		},
		{
			name: "empty",
			ds:   Dataset{},
			want: DataStructure{
				Columns:     []string{},
				ColumnTypes: map[string]ColumnType{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Analyze(tt.ds))
		})
	}
}

func TestDataStructureAnalyzer_TimeColumnName(t *testing.T) {
	ds := Dataset{
		NewRow("order_date", "Q1", "total", 1),
		NewRow("order_date", "Q2", "total", 2),
	}
	s := NewDataStructureAnalyzer(nil).Analyze(ds)
	assert.True(t, s.HasTimeSeries)
	assert.Equal(t, ColumnString, s.TypeOf("order_date"))
}

func TestDataStructureAnalyzer_CategoryCardinality(t *testing.T) {
	build := func(n int) Dataset {
		ds := make(Dataset, 0, n)
		for i := 0; i < n; i++ {
			ds = append(ds, NewRow("product", fmt.Sprintf("p%d", i), "qty", i))
		}
		return ds
	}

	a := NewDataStructureAnalyzer(nil)
	assert.False(t, a.Analyze(build(1)).HasCategories)
	assert.True(t, a.Analyze(build(2)).HasCategories)
	assert.True(t, a.Analyze(build(20)).HasCategories)
	assert.False(t, a.Analyze(build(21)).HasCategories)
}

func TestColumnSummarizer_Summarize(t *testing.T) {
	ds := Dataset{
		NewRow("month", "Jan", "region", "North", "product", "A", "total", 1),
		NewRow("month", "Feb", "region", "South", "product", "B", "total", 2),
		NewRow("month", "Mar", "region", "North", "product", "A", "total", 3),
	}
	structure := NewDataStructureAnalyzer(nil).Analyze(ds)
	summary := NewColumnSummarizer(nil).Summarize(ds, structure)

	assert.Equal(t, []string{"region", "product"}, summary.StringColumns)
	assert.Equal(t, []string{"total"}, summary.NumberColumns)
	assert.Equal(t, []string{"month"}, summary.DateLikeColumns)
	assert.Equal(t, []string{"region", "product"}, summary.Categorical)
	assert.Equal(t, "region", summary.CategoryColumn)
	assert.Equal(t, 2, summary.CategoryUniqueCount())
	assert.Equal(t, 3, summary.Distinct["month"])
}

func TestColumnSummarizer_CategoryFallbacks(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
		want string
	}{
		{
			name: "high cardinality string",
			ds: func() Dataset {
				var ds Dataset
				for i := 0; i < 25; i++ {
					ds = append(ds, NewRow("sku", fmt.Sprintf("s%d", i), "qty", i))
				}
				return ds
			}(),
			want: "sku",
		},
		{name: "date only", ds: monthlySales(), want: "month"},
		{name: "numbers only", ds: Dataset{NewRow("a", 1, "b", 2)}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			structure := NewDataStructureAnalyzer(nil).Analyze(tt.ds)
			summary := NewColumnSummarizer(nil).Summarize(tt.ds, structure)
			require.NotNil(t, summary.Distinct)
			assert.Equal(t, tt.want, summary.CategoryColumn)
			assert.Equal(t, tt.want != "", summary.HasCategory())
		})
	}
}
